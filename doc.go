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

// Package htmltok is a streaming, chunk-fed HTML/XML lexer.
//
// Unlike encoding/xml's Decoder, a Tokenizer never owns an io.Reader and
// never blocks on I/O: the caller pushes bytes in with Write as they arrive
// (over the network, out of a file, wherever) and the Tokenizer drives a
// resumable state machine over them, firing Handler callbacks as lexical
// units complete. This makes it suitable for documents that arrive in
// arbitrary-sized pieces without buffering the whole input up front.
//
// The tokenizer builds no tree: it has no notion of a document, parent, or
// child. Callers that need that build it on top of Handler, the way
// TokenCollector in this package does for a flat, ordered token list.
//
//    no backtracking over bytes already handed to the Handler
//    byte-accurate absolute offsets survive internal buffer compaction
//    a handful of allocations per document, not per token
package htmltok
