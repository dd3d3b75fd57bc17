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

// Package yang parses a single YANG module or submodule (see RFC 7950)
// into a typed intermediate representation.
//
// A generic yang statement takes one of the forms:
//
//    keyword [argument] ;
//    keyword [argument] { [statement [...]] }
//
// Parse tokenizes the source, assembles the statements into a tree,
// checks the tree against the statement grammar, and converts it into the
// IR rooted at a *Module or *Submodule:
//
//	doc, err := yang.Parse(source)
//	if err != nil {
//		// err is a *yang.ParseError with line, column and offset.
//	}
//	switch m := doc.(type) {
//	case *yang.Module:
//		...
//	case *yang.Submodule:
//		...
//	}
//
// The parser is strictly syntactic.  It resolves quoting, escapes, string
// concatenation, and the closed keyword enumerations (status, ordered-by,
// booleans, max-elements), and it preserves source order wherever order is
// meaningful.  It does not resolve imports, typedefs, prefixes or
// groupings, does not interpret range, length, pattern or XPath
// expressions, and does not enforce semantic rules such as key uniqueness.
// Those are the business of higher layers that consume the IR.
package yang
