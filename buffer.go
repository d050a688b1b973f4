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

// compact runs after every driver pass (Write/End) and reclaims buffer space
// that can never be read again, per §4.4.
func (t *Tokenizer) compact() {
	switch {
	case t.sectionStart == -1:
		t.drop(t.index)
	case t.running && t.state == Text:
		if t.index > t.sectionStart {
			t.handler.OnText(t.buf[t.sectionStart:t.index])
		}
		t.sectionStart = t.index
		t.drop(t.index)
	case t.sectionStart == t.index:
		t.drop(t.index)
	default:
		t.drop(t.sectionStart)
	}
}

// drop discards the first n bytes of the buffer, shifting index and
// sectionStart down and accumulating the discarded count into
// bufferOffset so absolute offsets stay correct.
func (t *Tokenizer) drop(n int) {
	if n <= 0 {
		return
	}
	copy(t.buf, t.buf[n:])
	t.buf = t.buf[:len(t.buf)-n]
	t.index -= n
	if t.sectionStart >= 0 {
		t.sectionStart -= n
	}
	t.bufferOffset += n
}

// finish salvages any still-open section according to the current state
// and fires the terminal OnEnd event, per §4.5.
func (t *Tokenizer) finish() {
	if t.sectionStart >= 0 && t.index > t.sectionStart {
		data := t.buf[t.sectionStart:t.index]
		switch t.state {
		case InCdata, AfterCdata1, AfterCdata2:
			t.handler.OnCDATA(data)
		case InComment, AfterComment1, AfterComment2:
			t.handler.OnComment(data)
		case InNamedEntity:
			t.finishNamedEntityAtEOF(data)
		case InNumericEntity:
			t.finishNumericEntityAtEOF(data, 10, t.numericPrefixLen(10))
		case InHexEntity:
			t.finishNumericEntityAtEOF(data, 16, t.numericPrefixLen(16))
		case InTagName, BeforeAttributeName, InAttributeName, AfterAttributeName,
			BeforeAttributeValue, InAttributeValueDq, InAttributeValueSq, InAttributeValueNq,
			InClosingTagName, BeforeClosingTagName, AfterClosingTagName,
			BeforeSpecial, BeforeSpecialEnd, InSelfClosingTag:
			// Tag-structural states: drop silently.
		default:
			t.handler.OnText(data)
		}
	}
	t.handler.OnEnd()
}

func (t *Tokenizer) finishNamedEntityAtEOF(data []byte) {
	if t.xmlMode {
		emitByState(t.handler, t.baseState, data)
		return
	}
	name := string(data[1:])
	max := len(name)
	if max > 6 {
		max = 6
	}
	for l := max; l >= 2; l-- {
		if repl, ok := legacyEntities[name[:l]]; ok {
			emitByState(t.handler, t.baseState, []byte(repl))
			emitByState(t.handler, t.baseState, data[1+l:])
			return
		}
	}
	emitByState(t.handler, t.baseState, data)
}

func (t *Tokenizer) finishNumericEntityAtEOF(data []byte, base int, prefix int) {
	if t.xmlMode {
		emitByState(t.handler, t.baseState, data)
		return
	}
	if len(data) <= prefix {
		emitByState(t.handler, t.baseState, data)
		return
	}
	digits := data[prefix:]
	emitByState(t.handler, t.baseState, encodeCodePoint(decodeCodePoint(parseDigits(digits, base))))
}
