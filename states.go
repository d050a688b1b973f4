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

// State is one of the tokenizer's lexical states. It is a tagged variant
// over an int so the per-character dispatch in step can be a dense switch.
type State int

const (
	Text State = iota
	BeforeTagName
	InTagName
	BeforeClosingTagName
	InClosingTagName
	AfterClosingTagName

	BeforeAttributeName
	InAttributeName
	AfterAttributeName
	BeforeAttributeValue
	InAttributeValueDq
	InAttributeValueSq
	InAttributeValueNq
	InSelfClosingTag

	BeforeDeclaration
	InDeclaration
	InProcessingInstruction
	BeforeComment
	InComment
	AfterComment1
	AfterComment2

	BeforeCdata1
	BeforeCdata2
	BeforeCdata3
	BeforeCdata4
	BeforeCdata5
	BeforeCdata6
	InCdata
	AfterCdata1
	AfterCdata2

	BeforeSpecial
	BeforeSpecialEnd

	BeforeEntity
	BeforeNumericEntity
	InNamedEntity
	InNumericEntity
	InHexEntity
)

var stateNames = [...]string{
	Text:                     "Text",
	BeforeTagName:            "BeforeTagName",
	InTagName:                "InTagName",
	BeforeClosingTagName:     "BeforeClosingTagName",
	InClosingTagName:         "InClosingTagName",
	AfterClosingTagName:      "AfterClosingTagName",
	BeforeAttributeName:      "BeforeAttributeName",
	InAttributeName:          "InAttributeName",
	AfterAttributeName:       "AfterAttributeName",
	BeforeAttributeValue:     "BeforeAttributeValue",
	InAttributeValueDq:       "InAttributeValueDq",
	InAttributeValueSq:       "InAttributeValueSq",
	InAttributeValueNq:       "InAttributeValueNq",
	InSelfClosingTag:         "InSelfClosingTag",
	BeforeDeclaration:        "BeforeDeclaration",
	InDeclaration:            "InDeclaration",
	InProcessingInstruction:  "InProcessingInstruction",
	BeforeComment:            "BeforeComment",
	InComment:                "InComment",
	AfterComment1:            "AfterComment1",
	AfterComment2:            "AfterComment2",
	BeforeCdata1:             "BeforeCdata1",
	BeforeCdata2:             "BeforeCdata2",
	BeforeCdata3:             "BeforeCdata3",
	BeforeCdata4:             "BeforeCdata4",
	BeforeCdata5:             "BeforeCdata5",
	BeforeCdata6:             "BeforeCdata6",
	InCdata:                  "InCdata",
	AfterCdata1:              "AfterCdata1",
	AfterCdata2:              "AfterCdata2",
	BeforeSpecial:            "BeforeSpecial",
	BeforeSpecialEnd:         "BeforeSpecialEnd",
	BeforeEntity:             "BeforeEntity",
	BeforeNumericEntity:      "BeforeNumericEntity",
	InNamedEntity:            "InNamedEntity",
	InNumericEntity:          "InNumericEntity",
	InHexEntity:              "InHexEntity",
}

// String implements fmt.Stringer so OnError(err, state) callbacks and
// wrapped errors print a readable state name instead of a bare int.
func (s State) String() string {
	if s >= 0 && int(s) < len(stateNames) && stateNames[s] != "" {
		return stateNames[s]
	}
	return "State(?)"
}

func isWhitespace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\r', '\f':
		return true
	}
	return false
}

func lower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}
