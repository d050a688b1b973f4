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

import "strings"

// specialTagSet is the caller-configured, pre-lowercased, deduplicated list
// of opaque-content tag names. It always contains "script" and "style".
type specialTagSet struct {
	names [][]byte
}

func newSpecialTagSet(extra []string) *specialTagSet {
	var s specialTagSet
	seen := make(map[string]bool, len(extra)+2)
	add := func(name string) {
		name = strings.ToLower(name)
		if len(name) < 2 || seen[name] {
			return
		}
		seen[name] = true
		s.names = append(s.names, []byte(name))
	}
	add("script")
	add("style")
	for _, n := range extra {
		add(n)
	}
	return &s
}

// matchBuffer holds the live candidate set during BeforeSpecial matching. It
// is grown in thirds and reused across documents the same way attrBuffer
// reuses its backing array for attribute pointers, since both exist purely
// to avoid a fresh allocation per tag.
type matchBuffer struct {
	buf []int
	pos int
}

func (b *matchBuffer) growBy(n int) {
	b.buf = append(b.buf, make([]int, n)...)
}

func (b *matchBuffer) reset() {
	b.pos = 0
}

func (b *matchBuffer) add(v int) {
	if b.pos == len(b.buf) {
		b.growBy(len(b.buf)*2/3 + 1)
	}
	b.buf[b.pos] = v
	b.pos++
}

func (b *matchBuffer) values() []int {
	return b.buf[:b.pos]
}

// filter keeps only the entries for which keep returns true, preserving order.
func (b *matchBuffer) filter(keep func(int) bool) {
	n := 0
	for i := 0; i < b.pos; i++ {
		if keep(b.buf[i]) {
			b.buf[n] = b.buf[i]
			n++
		}
	}
	b.pos = n
}

// beginSpecialMatch seeds the candidate set for a tag name starting with c.
// It reports whether at least one configured special tag starts with c.
func (t *Tokenizer) beginSpecialMatch(c byte) bool {
	t.matchSet.reset()
	lc := lower(c)
	for i, name := range t.special.names {
		if name[0] == lc {
			t.matchSet.add(i)
		}
	}
	t.matchDepth = 1
	return t.matchSet.pos > 0
}

// stepSpecialMatch advances the opening-tag candidate set by one character.
// It mutates t.state and t.specialTag directly, matching §4.2 item 2.
func (t *Tokenizer) stepSpecialMatch(c byte) {
	lc := lower(c)

	for _, idx := range t.matchSet.values() {
		name := t.special.names[idx]
		if t.matchDepth >= len(name) && (c == '/' || c == '>' || isWhitespace(c)) {
			t.specialTag = idx
			t.index--
			t.state = InTagName
			return
		}
	}

	t.matchSet.filter(func(idx int) bool {
		name := t.special.names[idx]
		return t.matchDepth < len(name) && name[t.matchDepth] == lc
	})

	if t.matchSet.pos == 0 {
		t.state = InTagName
		t.index--
		return
	}
	t.matchDepth++
}

// closeMatchResult is the tri-state result of matching one character of a
// closing tag's name against the active special tag, per §4.2 item 3.
type closeMatchResult int

const (
	noMatch closeMatchResult = iota
	hasMatching
	hasMatched
)

func (t *Tokenizer) matchSpecialClose(c byte) closeMatchResult {
	name := t.special.names[t.specialTag]
	if t.matchDepth >= len(name) {
		if c == '>' || isWhitespace(c) {
			return hasMatched
		}
		return noMatch
	}
	if name[t.matchDepth] == lower(c) {
		t.matchDepth++
		return hasMatching
	}
	return noMatch
}
