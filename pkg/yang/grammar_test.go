// Copyright 2020 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package yang

import (
	"testing"

	"github.com/openconfig/gnmi/errdiff"
)

func TestGrammar(t *testing.T) {
	for _, tt := range []struct {
		desc    string
		in      string
		wantErr string
	}{{
		desc: "minimal module",
		in:   `module m { namespace "u"; prefix "p"; }`,
	}, {
		desc: "minimal submodule",
		in:   `submodule s { belongs-to m { prefix "p"; } }`,
	}, {
		desc:    "empty input",
		in:      ``,
		wantErr: "expected module or submodule",
	}, {
		desc:    "top level is not a document",
		in:      `leaf x { type string; }`,
		wantErr: "leaf: not a module or submodule",
	}, {
		desc:    "trailing input",
		in:      `module m { namespace "u"; prefix "p"; } module n { }`,
		wantErr: "trailing input after module",
	}, {
		desc:    "misspelled keyword",
		in:      `module m { namespase "u"; prefix "p"; }`,
		wantErr: "unknown module substatement: namespase",
	}, {
		desc:    "statement out of place",
		in:      `module m { namespace "u"; prefix "p"; enum a; }`,
		wantErr: "unknown module substatement: enum",
	}, {
		desc:    "leaf requires a type",
		in:      `module m { namespace "u"; prefix "p"; leaf x { description "d"; } }`,
		wantErr: "missing required leaf substatement: type",
	}, {
		desc:    "leaf requires a body",
		in:      `module m { namespace "u"; prefix "p"; leaf x; }`,
		wantErr: "missing required leaf substatement: type",
	}, {
		desc:    "leaf-list requires a type",
		in:      `module m { namespace "u"; prefix "p"; leaf-list x { ordered-by user; } }`,
		wantErr: "missing required leaf-list substatement: type",
	}, {
		desc:    "typedef requires a type",
		in:      `module m { namespace "u"; prefix "p"; typedef t { units "m"; } }`,
		wantErr: "missing required typedef substatement: type",
	}, {
		desc: "container admits an empty form",
		in:   `module m { namespace "u"; prefix "p"; container c; }`,
	}, {
		desc:    "bad status",
		in:      `module m { namespace "u"; prefix "p"; leaf x { type string; status old; } }`,
		wantErr: "invalid status: old",
	}, {
		desc:    "bad boolean",
		in:      `module m { namespace "u"; prefix "p"; leaf x { type string; config yes; } }`,
		wantErr: "invalid boolean: yes",
	}, {
		desc:    "bad ordered-by",
		in:      `module m { namespace "u"; prefix "p"; leaf-list x { type string; ordered-by size; } }`,
		wantErr: "invalid ordered-by: size",
	}, {
		desc:    "bad max-elements",
		in:      `module m { namespace "u"; prefix "p"; leaf-list x { type string; max-elements lots; } }`,
		wantErr: "invalid max-elements: lots",
	}, {
		desc: "max-elements unbounded",
		in:   `module m { namespace "u"; prefix "p"; leaf-list x { type string; max-elements unbounded; } }`,
	}, {
		desc:    "bad min-elements",
		in:      `module m { namespace "u"; prefix "p"; leaf-list x { type string; min-elements -1; } }`,
		wantErr: "min-elements: invalid non-negative integer: -1",
	}, {
		desc:    "bad enum value",
		in:      `module m { namespace "u"; prefix "p"; leaf x { type enumeration { enum a { value ten; } } } }`,
		wantErr: "value: invalid integer: ten",
	}, {
		desc: "negative enum value",
		in:   `module m { namespace "u"; prefix "p"; leaf x { type enumeration { enum a { value -1; } } } }`,
	}, {
		desc:    "bad pattern modifier",
		in:      `module m { namespace "u"; prefix "p"; leaf x { type string { pattern "a" { modifier match; } } } }`,
		wantErr: "invalid pattern modifier: match",
	}, {
		desc:    "input takes no argument",
		in:      `module m { namespace "u"; prefix "p"; rpc r { input in { leaf x { type string; } } } }`,
		wantErr: "input: unexpected argument",
	}, {
		desc:    "prefix requires an argument",
		in:      `module m { namespace "u"; prefix; }`,
		wantErr: "prefix: missing argument",
	}, {
		desc:    "mixed type specification",
		in:      `module m { namespace "u"; prefix "p"; leaf x { type string { pattern "a"; range "1..2"; } } }`,
		wantErr: "range substatement not valid in a string type specification",
	}, {
		desc:    "enum and bit do not mix",
		in:      `module m { namespace "u"; prefix "p"; leaf x { type foo { enum a; bit b; } } }`,
		wantErr: "bit substatement not valid in a enumeration type specification",
	}, {
		desc: "deviate not-supported bare",
		in:   `module m { namespace "u"; prefix "p"; deviation "/x" { deviate not-supported; } }`,
	}, {
		desc: "deviate not-supported empty block",
		in:   `module m { namespace "u"; prefix "p"; deviation "/x" { deviate not-supported { } } }`,
	}, {
		desc:    "deviate not-supported admits nothing",
		in:      `module m { namespace "u"; prefix "p"; deviation "/x" { deviate not-supported { config false; } } }`,
		wantErr: "unknown deviate substatement: config",
	}, {
		desc: "deviate add",
		in:   `module m { namespace "u"; prefix "p"; deviation "/x" { deviate add { max-elements 5; } } }`,
	}, {
		desc:    "deviate delete does not admit config",
		in:      `module m { namespace "u"; prefix "p"; deviation "/x" { deviate delete { config false; } } }`,
		wantErr: "unknown deviate substatement: config",
	}, {
		desc: "deviate replace admits type",
		in:   `module m { namespace "u"; prefix "p"; deviation "/x" { deviate replace { type uint32; } } }`,
	}, {
		desc:    "bad deviate argument",
		in:      `module m { namespace "u"; prefix "p"; deviation "/x" { deviate remove; } }`,
		wantErr: "invalid deviate argument: remove",
	}, {
		desc:    "uses is not a short form case",
		in:      `module m { namespace "u"; prefix "p"; choice c { uses g; } }`,
		wantErr: "unknown choice substatement: uses",
	}, {
		desc: "extension usages are admitted anywhere",
		in: `module m {
			namespace "u";
			prefix "p";
			ext:annotation "x" { anything at:all; }
			leaf x { type string; ext:note "n"; }
		}`,
	}, {
		desc: "status inside extension usage is not checked",
		in:   `module m { namespace "u"; prefix "p"; ext:meta { status wild; } }`,
	}} {
		t.Run(tt.desc, func(t *testing.T) {
			_, err := ParseWithOptions([]byte(tt.in), Options{Name: "test.yang"})
			if s := errdiff.Substring(err, tt.wantErr); s != "" {
				t.Errorf("%s", s)
			}
		})
	}
}

func TestGrammarErrorPosition(t *testing.T) {
	in := []byte(`module m {
  namespace "u";
  prefix "p";
  leaf x {
    type string;
    config maybe;
  }
}`)
	_, err := Parse(in)
	if err == nil {
		t.Fatal("did not get expected error")
	}
	pe, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("got %T, want *ParseError", err)
	}
	if pe.Line != 6 || pe.Col != 5 {
		t.Errorf("got position %d:%d, want 6:5", pe.Line, pe.Col)
	}
	if want := "invalid boolean: maybe"; pe.Msg != want {
		t.Errorf("got message %q, want %q", pe.Msg, want)
	}
}
