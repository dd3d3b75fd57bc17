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

import "fmt"

// A ParseError describes why a source document failed to parse.  Parsing
// stops at the first error, so a ParseError always refers to the farthest
// position the grammar reached.  Line and Col are 1 based; Off is the byte
// offset into the source.
type ParseError struct {
	Name string // the name of the source, if one was supplied
	Line int
	Col  int
	Off  int
	Msg  string
}

func (e *ParseError) Error() string {
	switch {
	case e.Name == "" && e.Line == 0:
		return e.Msg
	case e.Name == "":
		return fmt.Sprintf("%d:%d: %s", e.Line, e.Col, e.Msg)
	case e.Line == 0:
		return fmt.Sprintf("%s: %s", e.Name, e.Msg)
	default:
		return fmt.Sprintf("%s:%d:%d: %s", e.Name, e.Line, e.Col, e.Msg)
	}
}
