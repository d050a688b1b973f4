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

import (
	"strings"

	"github.com/Goodwine/triemap"
)

// CollectorOptions configures a TokenCollector.
type CollectorOptions struct {
	// LowerCaseTags folds tag names to lower case before interning them.
	LowerCaseTags bool

	// LowerCaseAttributeNames folds attribute names to lower case before
	// interning them. Attribute values are never folded.
	LowerCaseAttributeNames bool
}

// TokenCollector is a Handler that assembles a flat, ordered list of Tokens.
// It builds no tree: a StartTag and its matching CloseTag are simply two
// entries in Tokens, with no link between them. Callers that need a tree
// build it on top of Tokens themselves.
//
// Repeated tag and attribute names are interned into a single *Name per
// distinct spelling, scoped to this TokenCollector instance: a long-lived
// process that creates many short-lived collectors does not accumulate
// names across documents it has already finished with.
type TokenCollector struct {
	BaseHandler

	// Tokens accumulates one entry per lexical event as Write/End drive the
	// paired Tokenizer. It grows for the lifetime of the collector.
	Tokens []Token

	// Err holds the most recent error reported via OnError, if any. The
	// collector keeps collecting after an error; it is the caller's choice
	// whether to treat Err as fatal.
	Err error

	opts  CollectorOptions
	names triemap.RuneSliceMap
	attrs attrBuffer

	curTagName *Name
	curAttr    *Attr
	attrValue  []byte
}

// NewTokenCollector constructs an empty TokenCollector.
func NewTokenCollector(opts CollectorOptions) *TokenCollector {
	tc := &TokenCollector{opts: opts}
	tc.attrs.growBy(8)
	return tc
}

func (tc *TokenCollector) intern(raw []byte, lower bool) *Name {
	s := string(raw)
	if lower {
		s = strings.ToLower(s)
	}
	runes := []rune(s)
	if v, ok := tc.names.Get(runes); ok {
		return v.(*Name)
	}
	name := &Name{local: s}
	tc.names.Put(runes, name)
	return name
}

func cloneBytes(s []byte) []byte {
	out := make([]byte, len(s))
	copy(out, s)
	return out
}

// OnText appends to the previous token's Data if it was also CharData,
// rather than appending a new token. The driver fires OnText once per
// buffered chunk, not once per logical run of text, so a run spanning a
// Write boundary (or a special tag's embedded "<") arrives as more than
// one call; coalescing here keeps a single text run as a single token.
func (tc *TokenCollector) OnText(s []byte) {
	if n := len(tc.Tokens); n > 0 {
		if prev, ok := tc.Tokens[n-1].(*CharData); ok {
			prev.Data = append(prev.Data, s...)
			return
		}
	}
	tc.Tokens = append(tc.Tokens, &CharData{Data: cloneBytes(s)})
}

func (tc *TokenCollector) OnOpenTagName(s []byte) {
	tc.attrs.reset()
	tc.curTagName = tc.intern(s, tc.opts.LowerCaseTags)
}

func (tc *TokenCollector) OnOpenTagEnd() {
	tc.Tokens = append(tc.Tokens, &StartTag{Name: tc.curTagName, Attr: tc.attrs.get()})
	tc.curTagName = nil
}

func (tc *TokenCollector) OnSelfClosingTag() {
	tc.Tokens = append(tc.Tokens, &StartTag{Name: tc.curTagName, Attr: tc.attrs.get(), SelfClosing: true})
	tc.curTagName = nil
}

func (tc *TokenCollector) OnCloseTag(s []byte) {
	tc.Tokens = append(tc.Tokens, &CloseTag{Name: tc.intern(s, tc.opts.LowerCaseTags)})
}

func (tc *TokenCollector) OnAttribName(s []byte) {
	tc.curAttr = &Attr{Name: tc.intern(s, tc.opts.LowerCaseAttributeNames)}
	tc.attrValue = tc.attrValue[:0]
}

func (tc *TokenCollector) OnAttribData(s []byte) {
	tc.attrValue = append(tc.attrValue, s...)
}

func (tc *TokenCollector) OnAttribEnd() {
	if tc.curAttr == nil {
		return
	}
	tc.curAttr.Value = string(tc.attrValue)
	tc.attrs.add(tc.curAttr)
	tc.curAttr = nil
}

func (tc *TokenCollector) OnComment(s []byte) {
	tc.Tokens = append(tc.Tokens, &Comment{Data: cloneBytes(s)})
}

func (tc *TokenCollector) OnCDATA(s []byte) {
	tc.Tokens = append(tc.Tokens, &CDATA{Data: cloneBytes(s)})
}

func (tc *TokenCollector) OnDeclaration(s []byte) {
	tc.Tokens = append(tc.Tokens, &Declaration{Data: cloneBytes(s)})
}

func (tc *TokenCollector) OnProcessingInstruction(s []byte) {
	tc.Tokens = append(tc.Tokens, &ProcInst{Data: cloneBytes(s)})
}

func (tc *TokenCollector) OnError(err error, state State) {
	tc.Err = err
}

var _ Handler = (*TokenCollector)(nil)
