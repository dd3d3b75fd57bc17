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
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// mod wraps body into a minimal module so small fragments can be parsed.
func mod(body string) []byte {
	return []byte(`module m { namespace "u"; prefix "p"; ` + body + ` }`)
}

// mustParse parses src and fails the test on error.
func mustParse(t *testing.T, src []byte) Document {
	t.Helper()
	doc, err := Parse(src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return doc
}

func TestStringRoundTrip(t *testing.T) {
	for _, tt := range []struct {
		desc string
		lit  string // the literal as written in the source
		want string // the logical value in the IR
	}{
		{"double quoted", `"hello"`, "hello"},
		{"single quoted", `'hello'`, "hello"},
		{"unquoted", `hello`, "hello"},
		{"escaped newline", `"a\nb"`, "a\nb"},
		{"escaped tab", `"a\tb"`, "a\tb"},
		{"escaped quote", `"a\"b"`, `a"b`},
		{"escaped backslash", `"a\\b"`, `a\b`},
		{"single quotes do not escape", `'a\nb'`, `a\nb`},
		{"empty", `""`, ""},
	} {
		t.Run(tt.desc, func(t *testing.T) {
			doc := mustParse(t, mod(`description `+tt.lit+`;`))
			if got := doc.(*Module).Description.asString(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestConcatenation(t *testing.T) {
	for _, tt := range []struct {
		desc string
		lit  string
		want string
	}{
		{"two double quoted", `"ab" + "cd"`, "abcd"},
		{"mixed quoting", `"ab" + 'cd'`, "abcd"},
		{"no space around plus", `"ab"+"cd"`, "abcd"},
		{"three operands", `"a" + "b" + "c"`, "abc"},
		{"escapes decode before joining", `"a\n" + 'b\n'`, "a\nb\\n"},
		{"empty operands", `"" + ""`, ""},
	} {
		t.Run(tt.desc, func(t *testing.T) {
			doc := mustParse(t, mod(`description `+tt.lit+`;`))
			if got := doc.(*Module).Description.asString(); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestDeterminism(t *testing.T) {
	src := mod(`
		typedef t { type uint8 { range "0..10"; } }
		container c { leaf x { type t; } leaf-list l { type string; ordered-by user; } }
		rpc r { input { leaf a { type string; } } }
	`)
	a := mustParse(t, src)
	b := mustParse(t, src)
	if diff := cmp.Diff(a, b, irCmpOpts...); diff != "" {
		t.Errorf("two parses of the same source differ (-first +second):\n%s", diff)
	}
}

func TestCommentInsensitivity(t *testing.T) {
	plain := mod(`leaf x { type string { pattern "[a-z]+"; } mandatory true; }`)
	commented := []byte(`// header comment
module m /* after keyword */ {
	namespace "u"; // trailing
	prefix "p";
	/* a block
	   comment */
	leaf x {
		type string {
			pattern "[a-z]+"; // anchored
		}
		mandatory /* inline */ true;
	}
}`)
	a := mustParse(t, plain)
	b := mustParse(t, commented)
	if diff := cmp.Diff(a, b, irCmpOpts...); diff != "" {
		t.Errorf("comments changed the IR (-plain +commented):\n%s", diff)
	}
}

func TestWhitespaceInsensitivity(t *testing.T) {
	plain := mod(`leaf x { type string; config false; }`)
	squeezed := []byte("module m{namespace \"u\";prefix \"p\";leaf x{type string;config false;}}")
	spread := []byte("module\n\tm\n{\n  namespace\n  \"u\"\n;\nprefix \"p\" ;\nleaf\tx {\n type  string ; config\r\n false;\n}\n}")
	a := mustParse(t, plain)
	b := mustParse(t, squeezed)
	c := mustParse(t, spread)
	if diff := cmp.Diff(a, b, irCmpOpts...); diff != "" {
		t.Errorf("whitespace removal changed the IR:\n%s", diff)
	}
	if diff := cmp.Diff(a, c, irCmpOpts...); diff != "" {
		t.Errorf("whitespace insertion changed the IR:\n%s", diff)
	}
}

func TestChildOrdering(t *testing.T) {
	doc := mustParse(t, []byte(`module m {
		namespace "u"; prefix "p";
		revision 2020-01-01;
		revision 2019-01-01;
		revision 2021-01-01;
		leaf x { type string {
			pattern "b.*";
			pattern "a.*";
			pattern "c.*";
		} }
	}`))
	m := doc.(*Module)

	var revs []string
	for _, r := range m.Revision {
		revs = append(revs, r.Name)
	}
	if got, want := strings.Join(revs, ","), "2020-01-01,2019-01-01,2021-01-01"; got != want {
		t.Errorf("revision order: got %s, want %s", got, want)
	}

	spec := m.DataDefs[0].(*Leaf).Type.Spec.(*StringRestriction)
	var pats []string
	for _, p := range spec.Pattern {
		pats = append(pats, p.Name)
	}
	if got, want := strings.Join(pats, ","), "b.*,a.*,c.*"; got != want {
		t.Errorf("pattern order: got %s, want %s", got, want)
	}
}

func TestDataDefOrdering(t *testing.T) {
	doc := mustParse(t, mod(`
		leaf b { type string; }
		container a { }
		leaf-list c { type string; }
		uses g;
	`))
	m := doc.(*Module)
	var kinds []string
	for _, d := range m.DataDefs {
		kinds = append(kinds, d.Kind()+":"+d.NName())
	}
	if got, want := strings.Join(kinds, ","), "leaf:b,container:a,leaf-list:c,uses:g"; got != want {
		t.Errorf("data definition order: got %s, want %s", got, want)
	}
}

func TestByteOrderMark(t *testing.T) {
	doc := mustParse(t, []byte("\xef\xbb\xbf"+`module m { namespace "u"; prefix "p"; }`))
	if got := doc.(*Module).Name; got != "m" {
		t.Errorf("got module %q, want %q", got, "m")
	}
}

func TestMaxDepthOption(t *testing.T) {
	src := mod(`container a { container b { leaf x { type string; } } }`)
	if _, err := Parse(src); err != nil {
		t.Errorf("default limit: unexpected error %v", err)
	}
	_, err := ParseWithOptions(src, Options{MaxDepth: 2})
	if err == nil {
		t.Fatal("depth 2: did not get expected error")
	}
	if want := "statement nesting exceeds depth limit of 2"; !strings.Contains(err.Error(), want) {
		t.Errorf("got error %v, want substring %q", err, want)
	}
}

func TestParseErrorFields(t *testing.T) {
	_, err := ParseWithOptions([]byte("module m {\n  bogus;\n}"), Options{Name: "m.yang"})
	if err == nil {
		t.Fatal("did not get expected error")
	}
	pe, ok := err.(*ParseError)
	if !ok {
		t.Fatalf("got %T, want *ParseError", err)
	}
	if pe.Name != "m.yang" {
		t.Errorf("got name %q, want %q", pe.Name, "m.yang")
	}
	if pe.Line != 2 || pe.Col != 3 {
		t.Errorf("got position %d:%d, want 2:3", pe.Line, pe.Col)
	}
	if pe.Off != 13 {
		t.Errorf("got offset %d, want 13", pe.Off)
	}
	if want := "m.yang:2:3: unknown module substatement: bogus"; err.Error() != want {
		t.Errorf("got error %q, want %q", err.Error(), want)
	}
}
