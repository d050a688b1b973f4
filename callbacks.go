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

// Handler is the event sink a Tokenizer drives. Every method is called
// synchronously and in document order from within Write, End, or Resume.
//
// Byte-slice arguments are borrowed from the Tokenizer's internal buffer and
// are only valid for the duration of the call: implementations that need to
// retain a payload past the call must copy it. This mirrors the teacher's
// own token instances, which are reused and mutated on every Token call.
type Handler interface {
	// OnText fires for a maximal run of literal character data, and for a
	// decoded entity replacement whose base state is Text.
	OnText(s []byte)

	// OnOpenTagName fires once an opening tag's name is fully read, before
	// any attributes.
	OnOpenTagName(s []byte)

	// OnOpenTagEnd fires on the '>' that closes an opening tag.
	OnOpenTagEnd()

	// OnSelfClosingTag fires on the '/>' that closes an opening tag.
	OnSelfClosingTag()

	// OnCloseTag fires once a closing tag's name is fully read.
	OnCloseTag(s []byte)

	// OnAttribName fires for an attribute name.
	OnAttribName(s []byte)

	// OnAttribData fires for an attribute-value fragment. It may fire more
	// than once per attribute (e.g. around a decoded entity); concatenate
	// fragments on the receiver side.
	OnAttribData(s []byte)

	// OnAttribEnd fires when an attribute is fully terminated.
	OnAttribEnd()

	// OnComment fires for a comment body, excluding its trailing "--".
	OnComment(s []byte)

	// OnCDATA fires for a CDATA body, excluding its trailing "]]".
	OnCDATA(s []byte)

	// OnDeclaration fires for "<! ... >" content, excluding '!' and '>'.
	OnDeclaration(s []byte)

	// OnProcessingInstruction fires for "<? ... >" content, excluding the
	// leading '?' and the terminating '>'. Note that, unlike XML proper,
	// the terminator is a bare '>': a literal '?' immediately before it is
	// part of the captured data, not stripped.
	OnProcessingInstruction(s []byte)

	// OnError fires on caller misuse (write-after-end) or on an unexpected
	// internal state. The driver still advances afterward to avoid looping.
	OnError(err error, state State)

	// OnEnd fires once, after finalisation, as the terminal event.
	OnEnd()
}

// BaseHandler is an embeddable no-op Handler. Callers that only care about a
// handful of events can embed it and override just those methods, instead of
// implementing all fourteen.
type BaseHandler struct{}

func (BaseHandler) OnText([]byte) {}
func (BaseHandler) OnOpenTagName([]byte) {}
func (BaseHandler) OnOpenTagEnd() {}
func (BaseHandler) OnSelfClosingTag() {}
func (BaseHandler) OnCloseTag([]byte) {}
func (BaseHandler) OnAttribName([]byte) {}
func (BaseHandler) OnAttribData([]byte) {}
func (BaseHandler) OnAttribEnd() {}
func (BaseHandler) OnComment([]byte) {}
func (BaseHandler) OnCDATA([]byte) {}
func (BaseHandler) OnDeclaration([]byte) {}
func (BaseHandler) OnProcessingInstruction([]byte) {}
func (BaseHandler) OnError(error, State) {}
func (BaseHandler) OnEnd() {}

var _ Handler = BaseHandler{}
