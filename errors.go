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

import "fmt"

type tokenizerError string

// Error implements the error interface, returning itself since it's already a string.
func (err tokenizerError) Error() string {
	return string(err)
}

const (
	// ErrWriteAfterEnd is reported via OnError when Write or End is called after End.
	ErrWriteAfterEnd tokenizerError = "htmltok: write after end"

	// ErrUnknownState is reported via OnError if the driver loop ever reaches a
	// State value outside the enumerated set. It should never happen; it exists
	// so a corrupted Tokenizer (e.g. a manually mutated State field) fails
	// loudly instead of looping forever.
	ErrUnknownState tokenizerError = "htmltok: unknown state"
)

// positionedError decorates a sentinel error with the absolute offset and
// lexical state active when it was raised, mirroring how the teacher
// decorates decode errors with row/col before handing them back to the
// caller.
type positionedError struct {
	err   error
	index int
	state State
}

func (e *positionedError) Error() string {
	return fmt.Sprintf("%s at byte %d (state %s)", e.err, e.index, e.state)
}

func (e *positionedError) Unwrap() error {
	return e.err
}

func wrapError(err error, index int, state State) error {
	return &positionedError{err: err, index: index, state: state}
}
