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
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var cmpOpts = cmp.Options{
	cmp.AllowUnexported(Name{}),
}

// collect drives a fresh Tokenizer over chunks with a fresh TokenCollector
// and returns the collector, so callers can inspect Tokens and Err.
func collect(t *testing.T, opts Options, chunks ...string) *TokenCollector {
	t.Helper()
	tc := NewTokenCollector(CollectorOptions{})
	tok := NewTokenizer(opts, tc)
	for _, c := range chunks {
		if err := tok.Write([]byte(c)); err != nil {
			t.Fatalf("Write: %v", err)
		}
	}
	if err := tok.End(nil); err != nil {
		t.Fatalf("End: %v", err)
	}
	return tc
}

// assertChunkInvariant checks that feeding input as one Write and as a
// sequence of one-byte Writes produce identical tokens, per the chunk
// invariance property this whole package exists to provide.
func assertChunkInvariant(t *testing.T, opts Options, input string) []Token {
	t.Helper()
	whole := collect(t, opts, input)

	var byByte []string
	for i := 0; i < len(input); i++ {
		byByte = append(byByte, input[i:i+1])
	}
	piecemeal := collect(t, opts, byByte...)

	if diff := cmp.Diff(whole.Tokens, piecemeal.Tokens, cmpOpts); diff != "" {
		t.Fatalf("chunked input produced a different token stream (-whole +chunked)\n%s", diff)
	}
	return whole.Tokens
}

func TestTokenizeMixedDocument(t *testing.T) {
	const input = `<a>text<foo b="1"></foo><!--c--><![CDATA[cd]]><!DOCTYPE html><?pi?></a>`

	got := assertChunkInvariant(t, Options{}, input)

	want := []Token{
		&StartTag{Name: &Name{local: "a"}},
		&CharData{Data: []byte("text")},
		&StartTag{Name: &Name{local: "foo"}, Attr: []*Attr{{Name: &Name{local: "b"}, Value: "1"}}},
		&CloseTag{Name: &Name{local: "foo"}},
		&Comment{Data: []byte("c")},
		&CDATA{Data: []byte("cd")},
		&Declaration{Data: []byte("DOCTYPE html")},
		&ProcInst{Data: []byte("pi?")},
		&CloseTag{Name: &Name{local: "a"}},
	}

	if diff := cmp.Diff(want, got, cmpOpts); diff != "" {
		t.Errorf("Tokens diff (-want +got)\n%s", diff)
	}
}

func TestCommentTrailingDashes(t *testing.T) {
	testCases := []struct {
		input string
		want  string
	}{
		{"<!--x-->", "x"},
		{"<!--x--->", "x-"},
		{"<!---->", ""},
		{"<!--x---->", "x--"},
	}
	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got := assertChunkInvariant(t, Options{}, tc.input)
			want := []Token{&Comment{Data: []byte(tc.want)}}
			if diff := cmp.Diff(want, got, cmpOpts); diff != "" {
				t.Errorf("Tokens diff (-want +got)\n%s", diff)
			}
		})
	}
}

func TestCDATATrailingBrackets(t *testing.T) {
	testCases := []struct {
		input string
		want  string
	}{
		{"<![CDATA[x]]>", "x"},
		{"<![CDATA[x]]]>", "x]"},
		{"<![CDATA[]]>", ""},
	}
	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got := assertChunkInvariant(t, Options{}, tc.input)
			want := []Token{&CDATA{Data: []byte(tc.want)}}
			if diff := cmp.Diff(want, got, cmpOpts); diff != "" {
				t.Errorf("Tokens diff (-want +got)\n%s", diff)
			}
		})
	}
}

func TestEntityDecodingInText(t *testing.T) {
	testCases := []struct {
		desc  string
		input string
		want  string
	}{
		{"strict named", "a &amp; b", "a & b"},
		{"numeric decimal", "&#65;&#66;", "AB"},
		{"numeric hex", "&#x41;&#X42;", "AB"},
		{"legacy unterminated", "Q&ampB", "Q&B"},
		{"unknown entity left literal", "a &bogus; b", "a &bogus; b"},
		{"null codepoint replaced", "&#0;", "�"},
		{"surrogate replaced", "&#xD800;", "�"},
		{"cp1252 remap", "&#128;", "€"},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			got := assertChunkInvariant(t, Options{DecodeEntities: true}, tc.input)
			var text []byte
			for _, tok := range got {
				if cd, ok := tok.(*CharData); ok {
					text = append(text, cd.Data...)
				}
			}
			if string(text) != tc.want {
				t.Errorf("decoded text = %q, want %q", text, tc.want)
			}
		})
	}
}

func TestEntityDecodingInAttributeValue(t *testing.T) {
	got := assertChunkInvariant(t, Options{DecodeEntities: true}, `<a href="x&amp;y=z">`)
	start, ok := got[0].(*StartTag)
	if !ok || len(start.Attr) != 1 {
		t.Fatalf("got %#v, want a single StartTag attribute", got)
	}
	if want := "x&y=z"; start.Attr[0].Value != want {
		t.Errorf("attribute value = %q, want %q", start.Attr[0].Value, want)
	}
}

func TestEntityEqualsQuirkAbandoned(t *testing.T) {
	// An unterminated named entity immediately followed by '=' inside an
	// attribute value is left untouched, so that query strings like
	// "?a&amp=b" embedded in an href are not corrupted by decoding.
	got := assertChunkInvariant(t, Options{DecodeEntities: true}, `<a href="?a&amp=b">`)
	start := got[0].(*StartTag)
	if want := "?a&amp=b"; start.Attr[0].Value != want {
		t.Errorf("attribute value = %q, want %q", start.Attr[0].Value, want)
	}
}

func TestXMLModeRestrictsEntities(t *testing.T) {
	got := assertChunkInvariant(t, Options{XMLMode: true, DecodeEntities: true}, "&amp;&copy;")
	var text []byte
	for _, tok := range got {
		text = append(text, tok.(*CharData).Data...)
	}
	if want := "&&copy;"; string(text) != want {
		t.Errorf("decoded text = %q, want %q (copy is not an XML predefined entity)", text, want)
	}
}

func TestSpecialTagOpaqueContent(t *testing.T) {
	const input = `<script>var x = 1; alert(x);</script>after`
	got := assertChunkInvariant(t, Options{}, input)

	want := []Token{
		&StartTag{Name: &Name{local: "script"}},
		&CharData{Data: []byte("var x = 1; alert(x);")},
		&CloseTag{Name: &Name{local: "script"}},
		&CharData{Data: []byte("after")},
	}
	if diff := cmp.Diff(want, got, cmpOpts); diff != "" {
		t.Errorf("Tokens diff (-want +got)\n%s", diff)
	}
}

// TestSpecialTagContentWithEmbeddedLessThan checks that a stray '<' inside a
// special tag's body that doesn't turn out to start the matching close tag
// survives as literal text, even though the tokenizer delivers it in more
// than one OnText call (an opening '<' that fails to match ends one text
// run and immediately starts the next one at the same byte), which
// TokenCollector merges into the CharData between the two tags.
func TestSpecialTagContentWithEmbeddedLessThan(t *testing.T) {
	const body = `if (a<b) { x = "</not a tag>"; }`
	input := "<script>" + body + "</script>"
	got := assertChunkInvariant(t, Options{}, input)

	if len(got) < 3 {
		t.Fatalf("got %d tokens, want at least StartTag, body text, CloseTag: %#v", len(got), got)
	}
	if _, ok := got[0].(*StartTag); !ok {
		t.Fatalf("got[0] = %#v, want *StartTag", got[0])
	}
	last := got[len(got)-1]
	if ct, ok := last.(*CloseTag); !ok || ct.Name.Local() != "script" {
		t.Fatalf("last token = %#v, want CloseTag{script}", last)
	}

	var text []byte
	for _, tok := range got[1 : len(got)-1] {
		cd, ok := tok.(*CharData)
		if !ok {
			t.Fatalf("unexpected token inside script body: %#v", tok)
		}
		text = append(text, cd.Data...)
	}
	if string(text) != body {
		t.Errorf("reassembled script body = %q, want %q", text, body)
	}
}

func TestSpecialTagClosingMismatchIsLiteralText(t *testing.T) {
	const input = `<script></scriptx></script>`
	got := assertChunkInvariant(t, Options{}, input)

	want := []Token{
		&StartTag{Name: &Name{local: "script"}},
		&CharData{Data: []byte("</scriptx>")},
		&CloseTag{Name: &Name{local: "script"}},
	}
	if diff := cmp.Diff(want, got, cmpOpts); diff != "" {
		t.Errorf("Tokens diff (-want +got)\n%s", diff)
	}
}

func TestAdditionalSpecialTags(t *testing.T) {
	got := assertChunkInvariant(t, Options{SpecialTags: []string{"textarea"}}, `<textarea><b></textarea>`)
	want := []Token{
		&StartTag{Name: &Name{local: "textarea"}},
		&CharData{Data: []byte("<b>")},
		&CloseTag{Name: &Name{local: "textarea"}},
	}
	if diff := cmp.Diff(want, got, cmpOpts); diff != "" {
		t.Errorf("Tokens diff (-want +got)\n%s", diff)
	}
}

func TestUnterminatedConstructsSalvagedAtEnd(t *testing.T) {
	testCases := []struct {
		desc  string
		input string
		want  []Token
	}{
		{
			"unterminated comment",
			"<!-- never closed",
			[]Token{&Comment{Data: []byte(" never closed")}},
		},
		{
			"unterminated cdata",
			"<![CDATA[never closed",
			[]Token{&CDATA{Data: []byte("never closed")}},
		},
		{
			"unterminated tag dropped",
			"<foo bar",
			nil,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			tc2 := tc
			collector := NewTokenCollector(CollectorOptions{})
			tok := NewTokenizer(Options{}, collector)
			if err := tok.End([]byte(tc2.input)); err != nil {
				t.Fatalf("End: %v", err)
			}
			if diff := cmp.Diff(tc2.want, collector.Tokens, cmpOpts); diff != "" {
				t.Errorf("Tokens diff (-want +got)\n%s", diff)
			}
		})
	}
}

func TestPauseResume(t *testing.T) {
	tc := NewTokenCollector(CollectorOptions{})
	tok := NewTokenizer(Options{}, tc)

	tok.Pause()
	if err := tok.Write([]byte("<a>hi</a>")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if len(tc.Tokens) != 0 {
		t.Fatalf("expected no tokens while paused, got %v", tc.Tokens)
	}

	tok.Resume()
	if err := tok.End(nil); err != nil {
		t.Fatalf("End: %v", err)
	}

	want := []Token{
		&StartTag{Name: &Name{local: "a"}},
		&CharData{Data: []byte("hi")},
		&CloseTag{Name: &Name{local: "a"}},
	}
	if diff := cmp.Diff(want, tc.Tokens, cmpOpts); diff != "" {
		t.Errorf("Tokens diff (-want +got)\n%s", diff)
	}
}

func TestWriteAfterEndReportsError(t *testing.T) {
	tc := NewTokenCollector(CollectorOptions{})
	tok := NewTokenizer(Options{}, tc)
	if err := tok.End([]byte("<a/>")); err != nil {
		t.Fatalf("End: %v", err)
	}
	err := tok.Write([]byte("more"))
	if !errors.Is(err, ErrWriteAfterEnd) {
		t.Errorf("Write after End error = %v, want wrapping %v", err, ErrWriteAfterEnd)
	}
	if !errors.Is(tc.Err, ErrWriteAfterEnd) {
		t.Errorf("collector.Err = %v, want it reported via OnError too", tc.Err)
	}
}

func TestReset(t *testing.T) {
	tc := NewTokenCollector(CollectorOptions{})
	tok := NewTokenizer(Options{}, tc)
	if err := tok.End([]byte("<a>")); err != nil {
		t.Fatalf("End: %v", err)
	}

	tok.Reset()
	tc.Tokens = nil
	if err := tok.End([]byte("<b>")); err != nil {
		t.Fatalf("End: %v", err)
	}

	want := []Token{&StartTag{Name: &Name{local: "b"}}}
	if diff := cmp.Diff(want, tc.Tokens, cmpOpts); diff != "" {
		t.Errorf("Tokens diff (-want +got)\n%s", diff)
	}
}

func TestGetAbsoluteIndexSurvivesCompaction(t *testing.T) {
	tc := NewTokenCollector(CollectorOptions{})
	tok := NewTokenizer(Options{}, tc)

	for i := 0; i < 50; i++ {
		if err := tok.Write([]byte("<p>x</p>")); err != nil {
			t.Fatalf("Write: %v", err)
		}
	}
	if got, want := tok.GetAbsoluteIndex(), 50*len("<p>x</p>"); got != want {
		t.Errorf("GetAbsoluteIndex() = %d, want %d", got, want)
	}
}
