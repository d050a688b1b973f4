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

// cdataLiteral is the case-sensitive literal BeforeCdata1..5 match against,
// one letter per state.
const cdataLiteral = "CDATA"

// step dispatches a single byte to the handler for the current state. It is
// the dense jump table the design notes call for: a switch over State's
// integer representation.
func (t *Tokenizer) step(c byte) {
	switch t.state {
	case Text:
		t.stepText(c)
	case BeforeTagName:
		t.stepBeforeTagName(c)
	case InTagName:
		t.stepInTagName(c)
	case BeforeClosingTagName:
		t.stepBeforeClosingTagName(c)
	case InClosingTagName:
		t.stepInClosingTagName(c)
	case AfterClosingTagName:
		t.stepAfterClosingTagName(c)

	case BeforeAttributeName:
		t.stepBeforeAttributeName(c)
	case InAttributeName:
		t.stepInAttributeName(c)
	case AfterAttributeName:
		t.stepAfterAttributeName(c)
	case BeforeAttributeValue:
		t.stepBeforeAttributeValue(c)
	case InAttributeValueDq:
		t.stepInAttributeValueQuoted(c, '"', InAttributeValueDq)
	case InAttributeValueSq:
		t.stepInAttributeValueQuoted(c, '\'', InAttributeValueSq)
	case InAttributeValueNq:
		t.stepInAttributeValueNq(c)
	case InSelfClosingTag:
		t.stepInSelfClosingTag(c)

	case BeforeDeclaration:
		t.stepBeforeDeclaration(c)
	case InDeclaration:
		t.stepInDeclaration(c)
	case InProcessingInstruction:
		t.stepInProcessingInstruction(c)
	case BeforeComment:
		t.stepBeforeComment(c)
	case InComment:
		t.stepInComment(c)
	case AfterComment1:
		t.stepAfterComment1(c)
	case AfterComment2:
		t.stepAfterComment2(c)

	case BeforeCdata1, BeforeCdata2, BeforeCdata3, BeforeCdata4, BeforeCdata5:
		t.stepBeforeCdataLetter(c)
	case BeforeCdata6:
		t.stepBeforeCdata6(c)
	case InCdata:
		t.stepInCdata(c)
	case AfterCdata1:
		t.stepAfterCdata1(c)
	case AfterCdata2:
		t.stepAfterCdata2(c)

	case BeforeSpecial:
		t.stepSpecialMatch(c)
	case BeforeSpecialEnd:
		t.stepBeforeSpecialEnd(c)

	case BeforeEntity:
		t.stepBeforeEntity(c)
	case BeforeNumericEntity:
		t.stepBeforeNumericEntity(c)
	case InNamedEntity:
		t.stepNamedEntity(c)
	case InNumericEntity:
		t.stepNumericEntity(c)
	case InHexEntity:
		t.stepHexEntity(c)

	default:
		t.handler.OnError(wrapError(ErrUnknownState, t.GetAbsoluteIndex(), t.state), t.state)
	}
}

func (t *Tokenizer) stepText(c byte) {
	switch c {
	case '<':
		if t.index > t.sectionStart {
			t.handler.OnText(t.buf[t.sectionStart:t.index])
		}
		t.state = BeforeTagName
		t.sectionStart = t.index
	case '&':
		if t.decodeEntities && t.specialTag == -1 {
			if t.index > t.sectionStart {
				t.handler.OnText(t.buf[t.sectionStart:t.index])
			}
			t.baseState = Text
			t.sectionStart = t.index
			t.state = BeforeEntity
		}
	}
}

// stepBeforeTagName implements §4.1's BeforeTagName. Note that the
// "return to Text" branches deliberately leave sectionStart untouched: it
// still points at the '<' that triggered this attempt, so if the attempt
// turns out not to be a real tag the whole span (e.g. "< >", or a literal
// '<' inside a special tag's body) is captured as ordinary text once Text
// next flushes. Only paths that have already fired a callback for their
// span (declaration/PI start, a real tag name) reset sectionStart forward.
func (t *Tokenizer) stepBeforeTagName(c byte) {
	switch {
	case c == '/':
		t.state = BeforeClosingTagName
	case c == '<':
		if t.index > t.sectionStart {
			t.handler.OnText(t.buf[t.sectionStart:t.index])
		}
		t.sectionStart = t.index
	case c == '>' || isWhitespace(c) || t.specialTag != -1:
		t.state = Text
	case c == '!':
		t.state = BeforeDeclaration
		t.sectionStart = t.index + 1
	case c == '?':
		t.state = InProcessingInstruction
		t.sectionStart = t.index + 1
	default:
		if !t.xmlMode && t.beginSpecialMatch(c) {
			t.state = BeforeSpecial
		} else {
			t.state = InTagName
		}
		t.sectionStart = t.index
	}
}

func (t *Tokenizer) stepInTagName(c byte) {
	if c == '/' || c == '>' || isWhitespace(c) {
		t.handler.OnOpenTagName(t.buf[t.sectionStart:t.index])
		t.sectionStart = -1
		t.state = BeforeAttributeName
		t.index--
	}
}

func (t *Tokenizer) stepBeforeClosingTagName(c byte) {
	switch {
	case isWhitespace(c):
		// stay
	case c == '>':
		t.state = Text
		t.sectionStart = t.index + 1
	case t.specialTag != -1:
		t.matchDepth = 0
		if t.matchSpecialClose(c) == noMatch {
			t.index--
			t.state = Text
		} else {
			// Both HAS_MATCHING and HAS_MATCHED are treated as a cue to
			// enter BeforeSpecialEnd here; HAS_MATCHED on the very first
			// character can't happen given the length>=2 constraint on
			// special tag names, but the source this is ported from
			// collapses both cases the same way, so this does too.
			t.state = BeforeSpecialEnd
		}
	default:
		t.sectionStart = t.index
		t.state = InClosingTagName
	}
}

func (t *Tokenizer) stepInClosingTagName(c byte) {
	if c == '>' || isWhitespace(c) {
		t.handler.OnCloseTag(t.buf[t.sectionStart:t.index])
		t.sectionStart = -1
		t.state = AfterClosingTagName
		t.index--
	}
}

func (t *Tokenizer) stepAfterClosingTagName(c byte) {
	if c == '>' {
		t.state = Text
		t.sectionStart = t.index + 1
	}
}

func (t *Tokenizer) stepBeforeAttributeName(c byte) {
	switch {
	case c == '>':
		t.handler.OnOpenTagEnd()
		t.state = Text
		t.sectionStart = t.index + 1
	case c == '/':
		t.state = InSelfClosingTag
	case isWhitespace(c):
		// stay
	default:
		t.sectionStart = t.index
		t.state = InAttributeName
	}
}

func (t *Tokenizer) stepInAttributeName(c byte) {
	if c == '=' || c == '/' || c == '>' || isWhitespace(c) {
		t.handler.OnAttribName(t.buf[t.sectionStart:t.index])
		t.sectionStart = -1
		t.state = AfterAttributeName
		t.index--
	}
}

func (t *Tokenizer) stepAfterAttributeName(c byte) {
	switch {
	case c == '=':
		t.state = BeforeAttributeValue
	case c == '/' || c == '>':
		t.handler.OnAttribEnd()
		t.state = BeforeAttributeName
		t.index--
	case isWhitespace(c):
		// stay
	default:
		t.handler.OnAttribEnd()
		t.sectionStart = t.index
		t.state = InAttributeName
	}
}

func (t *Tokenizer) stepBeforeAttributeValue(c byte) {
	switch {
	case c == '"':
		t.state = InAttributeValueDq
		t.sectionStart = t.index + 1
	case c == '\'':
		t.state = InAttributeValueSq
		t.sectionStart = t.index + 1
	case isWhitespace(c):
		// stay
	default:
		t.state = InAttributeValueNq
		t.sectionStart = t.index
		t.index--
	}
}

func (t *Tokenizer) startAttrEntity(cur State) {
	if t.index > t.sectionStart {
		t.handler.OnAttribData(t.buf[t.sectionStart:t.index])
	}
	t.baseState = cur
	t.sectionStart = t.index
	t.state = BeforeEntity
}

func (t *Tokenizer) stepInAttributeValueQuoted(c byte, quote byte, cur State) {
	if c == quote {
		if t.index > t.sectionStart {
			t.handler.OnAttribData(t.buf[t.sectionStart:t.index])
		}
		t.handler.OnAttribEnd()
		t.state = BeforeAttributeName
		return
	}
	if c == '&' && t.decodeEntities {
		t.startAttrEntity(cur)
	}
}

func (t *Tokenizer) stepInAttributeValueNq(c byte) {
	if isWhitespace(c) || c == '>' {
		if t.index > t.sectionStart {
			t.handler.OnAttribData(t.buf[t.sectionStart:t.index])
		}
		t.handler.OnAttribEnd()
		t.state = BeforeAttributeName
		t.index--
		return
	}
	if c == '&' && t.decodeEntities {
		t.startAttrEntity(InAttributeValueNq)
	}
}

func (t *Tokenizer) stepInSelfClosingTag(c byte) {
	switch {
	case c == '>':
		t.handler.OnSelfClosingTag()
		t.state = Text
		t.sectionStart = t.index + 1
	case isWhitespace(c):
		// stay
	default:
		t.state = BeforeAttributeName
		t.index--
	}
}

func (t *Tokenizer) stepBeforeDeclaration(c byte) {
	switch c {
	case '[':
		t.state = BeforeCdata1
	case '-':
		t.state = BeforeComment
	default:
		// Step back so this byte (which may itself be '>') is evaluated by
		// InDeclaration's terminator check rather than silently skipped.
		t.state = InDeclaration
		t.index--
	}
}

func (t *Tokenizer) stepInDeclaration(c byte) {
	if c == '>' {
		t.handler.OnDeclaration(t.buf[t.sectionStart:t.index])
		t.state = Text
		t.sectionStart = t.index + 1
	}
}

func (t *Tokenizer) stepInProcessingInstruction(c byte) {
	if c == '>' {
		t.handler.OnProcessingInstruction(t.buf[t.sectionStart:t.index])
		t.state = Text
		t.sectionStart = t.index + 1
	}
}

func (t *Tokenizer) stepBeforeComment(c byte) {
	if c == '-' {
		t.state = InComment
		t.sectionStart = t.index + 1
		return
	}
	t.state = InDeclaration
	t.index--
}

func (t *Tokenizer) stepInComment(c byte) {
	if c == '-' {
		t.state = AfterComment1
	}
}

func (t *Tokenizer) stepAfterComment1(c byte) {
	if c == '-' {
		t.state = AfterComment2
	} else {
		t.state = InComment
	}
}

func (t *Tokenizer) stepAfterComment2(c byte) {
	switch c {
	case '>':
		t.handler.OnComment(t.buf[t.sectionStart : t.index-2])
		t.state = Text
		t.sectionStart = t.index + 1
	case '-':
		// stay: handles "--->"
	default:
		t.state = InComment
	}
}

func (t *Tokenizer) stepBeforeCdataLetter(c byte) {
	idx := int(t.state - BeforeCdata1)
	if c == cdataLiteral[idx] {
		t.state++
		return
	}
	t.state = InDeclaration
	t.index--
}

func (t *Tokenizer) stepBeforeCdata6(c byte) {
	if c == '[' {
		t.state = InCdata
		t.sectionStart = t.index + 1
		return
	}
	t.state = InDeclaration
	t.index--
}

func (t *Tokenizer) stepInCdata(c byte) {
	if c == ']' {
		t.state = AfterCdata1
	}
}

func (t *Tokenizer) stepAfterCdata1(c byte) {
	if c == ']' {
		t.state = AfterCdata2
	} else {
		t.state = InCdata
	}
}

func (t *Tokenizer) stepAfterCdata2(c byte) {
	switch c {
	case '>':
		t.handler.OnCDATA(t.buf[t.sectionStart : t.index-2])
		t.state = Text
		t.sectionStart = t.index + 1
	case ']':
		// stay: handles "]]]>"
	default:
		t.state = InCdata
	}
}

func (t *Tokenizer) stepBeforeSpecialEnd(c byte) {
	switch t.matchSpecialClose(c) {
	case hasMatching:
		// stay
	case hasMatched:
		name := t.special.names[t.specialTag]
		t.sectionStart = t.index - len(name)
		t.specialTag = -1
		t.state = InClosingTagName
		t.index--
	case noMatch:
		t.index--
		t.state = Text
	}
}

func (t *Tokenizer) stepBeforeEntity(c byte) {
	if c == '#' {
		t.state = BeforeNumericEntity
		return
	}
	t.state = InNamedEntity
	t.index--
}

func (t *Tokenizer) stepBeforeNumericEntity(c byte) {
	if c == 'x' || c == 'X' {
		t.state = InHexEntity
		return
	}
	t.state = InNumericEntity
	t.index--
}
