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

// Options configures a Tokenizer. It is a plain struct with exported fields,
// mirroring the teacher's own ReadComment/ReadDirective style rather than a
// functional-options builder: there is no validation that benefits from
// being hidden behind constructor functions, and the fields are cheap to
// zero-value (everything defaults to off).
type Options struct {
	// XMLMode restricts named-entity decoding to the five XML predefined
	// entities, disables legacy (unterminated) entity lookup, requires
	// strict-case "CDATA" handling, and disables special-tag recognition.
	XMLMode bool

	// DecodeEntities enables entity decoding in Text and attribute-value
	// states. It is off by default, matching the teacher's own opt-in
	// ReadComment/ReadDirective fields.
	DecodeEntities bool

	// SpecialTags lists additional tag names whose bodies are treated as
	// opaque text until a matching close tag is seen. "script" and "style"
	// are always included. Names shorter than 2 bytes are dropped silently.
	SpecialTags []string
}

// Tokenizer is a resumable, chunk-fed HTML/XML lexer. See the package doc
// for the overall model. A Tokenizer is not safe for concurrent use from
// multiple goroutines; serialize calls to Write, End, Pause, Resume, and
// Reset the way the teacher's Decoder expects serialized calls to Token.
type Tokenizer struct {
	state     State
	baseState State

	buf          []byte
	bufferOffset int
	index        int
	sectionStart int

	specialTag int // -1 means "none"
	matchSet   matchBuffer
	matchDepth int

	running bool
	ended   bool

	xmlMode        bool
	decodeEntities bool
	special        *specialTagSet

	handler Handler
}

// NewTokenizer constructs a Tokenizer that drives handler as it consumes
// input via Write and End.
func NewTokenizer(opts Options, handler Handler) *Tokenizer {
	t := &Tokenizer{
		xmlMode:        opts.XMLMode,
		decodeEntities: opts.DecodeEntities,
		special:        newSpecialTagSet(opts.SpecialTags),
		handler:        handler,
	}
	t.resetState()
	return t
}

// resetState restores every field but the handler and options to their
// constructor defaults; shared by NewTokenizer and Reset.
func (t *Tokenizer) resetState() {
	t.state = Text
	t.baseState = Text
	t.buf = t.buf[:0]
	t.bufferOffset = 0
	t.index = 0
	t.sectionStart = 0
	t.specialTag = -1
	t.matchSet.reset()
	t.matchDepth = 0
	t.running = true
	t.ended = false
}

// Reset returns the Tokenizer to its constructor defaults. The handler and
// the XMLMode/DecodeEntities/SpecialTags configuration are retained.
func (t *Tokenizer) Reset() {
	t.resetState()
}

// GetAbsoluteIndex returns the current absolute byte position of the
// tokenizer's cursor over the logical input stream, accounting for bytes
// already discarded by buffer compaction.
func (t *Tokenizer) GetAbsoluteIndex() int {
	return t.bufferOffset + t.index
}

// Write appends chunk to the tokenizer's input and, unless paused, drives
// the state machine over everything available so far.
func (t *Tokenizer) Write(chunk []byte) error {
	if t.ended {
		err := wrapError(ErrWriteAfterEnd, t.GetAbsoluteIndex(), t.state)
		t.handler.OnError(err, t.state)
		return err
	}
	t.buf = append(t.buf, chunk...)
	if t.running {
		t.parse()
	}
	t.compact()
	return nil
}

// Pause suspends the driver loop at the next byte boundary. Write still
// appends data while paused; it is simply not processed until Resume.
func (t *Tokenizer) Pause() {
	t.running = false
}

// Resume reverses Pause. If unprocessed data remains, it is driven
// immediately; if End was already called while paused, finalisation runs
// now.
func (t *Tokenizer) Resume() {
	t.running = true
	t.parse()
	t.compact()
	if t.ended && t.index >= len(t.buf) {
		t.finish()
	}
}

// End optionally writes a final chunk, marks the stream ended, and — unless
// paused — finalises the tokenizer, salvaging any open section and firing
// OnEnd. Calling Write or End again afterward reports ErrWriteAfterEnd via
// OnError.
func (t *Tokenizer) End(chunk []byte) error {
	if t.ended {
		err := wrapError(ErrWriteAfterEnd, t.GetAbsoluteIndex(), t.state)
		t.handler.OnError(err, t.state)
		return err
	}
	if len(chunk) > 0 {
		t.buf = append(t.buf, chunk...)
	}
	t.ended = true
	if t.running {
		t.parse()
		t.compact()
		t.finish()
	}
	return nil
}

// parse drives the state machine until the buffer is exhausted or the
// tokenizer is paused.
func (t *Tokenizer) parse() {
	for t.running && t.index < len(t.buf) {
		c := t.buf[t.index]
		t.step(c)
		t.index++
	}
}
