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

// This file implements the public entry points of the package.

// DefaultMaxDepth is the statement nesting limit used when Options does
// not provide one.  The limit keeps pathological input from exhausting the
// native stack; published models nest nowhere near this deep.
const DefaultMaxDepth = 256

// Options adjusts how a source document is parsed.  The zero value is
// ready to use.
type Options struct {
	// Name is reported in errors as the origin of the source, typically
	// a file name.  It may be empty.
	Name string

	// MaxDepth bounds statement nesting.  Zero means DefaultMaxDepth.
	MaxDepth int
}

// Parse parses source as a YANG module or submodule and returns its IR.
// Parse is a pure function: it performs no I/O, keeps no state between
// calls, and retains no reference to source.  Independent callers may
// parse concurrently.  The returned error is a *ParseError describing the
// first failure.
func Parse(source []byte) (Document, error) {
	return ParseWithOptions(source, Options{})
}

// ParseWithOptions is Parse with explicit Options.
func ParseWithOptions(source []byte, o Options) (Document, error) {
	statements, err := parseStatements(string(source), o.Name, o.MaxDepth)
	if err != nil {
		return nil, err
	}
	if len(statements) == 0 {
		// The source holds only whitespace and comments: the failure is
		// at the end of the input.
		l := newLexer(string(source), o.Name)
		for l.NextToken() != nil {
		}
		return nil, &ParseError{
			Name: o.Name,
			Line: l.line,
			Col:  l.col + 1,
			Off:  l.pos,
			Msg:  "expected module or submodule",
		}
	}

	root := statements[0]
	switch root.Keyword {
	case "module", "submodule":
	default:
		return nil, &ParseError{
			Name: o.Name,
			Line: root.line,
			Col:  root.col,
			Off:  root.off,
			Msg:  root.Keyword + ": not a module or submodule",
		}
	}
	if len(statements) > 1 {
		t := statements[1]
		return nil, &ParseError{
			Name: o.Name,
			Line: t.line,
			Col:  t.col,
			Off:  t.off,
			Msg:  "trailing input after " + root.Keyword,
		}
	}

	c := &checker{name: o.Name}
	if err := c.check(root); err != nil {
		return nil, err
	}
	return buildDocument(root), nil
}
