// Copyright 2020 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package htmltok

// attrBuffer is a helper buffer for Attr pointers, grown in thirds like
// bytes.Buffer, so a TokenCollector building up one tag's attributes reuses
// one backing array across tags; get still hands back one right-sized copy
// per tag that has attributes.
type attrBuffer struct {
	buf []*Attr
	pos int
}

func (buf *attrBuffer) growBy(n int) {
	buf.buf = append(buf.buf, make([]*Attr, n)...)
}

func (buf *attrBuffer) reset() {
	buf.pos = 0
}

func (buf *attrBuffer) add(attr *Attr) {
	if buf.pos == len(buf.buf) {
		buf.growBy(len(buf.buf)*2/3 + 1)
	}
	buf.buf[buf.pos] = attr
	buf.pos++
}

// get returns the attributes accumulated so far as a freshly allocated
// slice (since the StartTag token outlives the next tag's reuse of buf) and
// resets the buffer for the next tag.
func (buf *attrBuffer) get() []*Attr {
	if buf.pos == 0 {
		return nil
	}
	attrs := make([]*Attr, buf.pos)
	copy(attrs, buf.buf[:buf.pos])
	buf.reset()
	return attrs
}
