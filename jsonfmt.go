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

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/openconfig/yangir/pkg/yang"
)

func init() {
	register(&formatter{
		name: "json",
		f:    doJSON,
		help: "display the IR as JSON",
	})
}

func doJSON(w io.Writer, docs []yang.Document) {
	for _, d := range docs {
		out, err := json.MarshalIndent(d, "", "  ")
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			stop(1)
		}
		w.Write(out)
		fmt.Fprintln(w)
	}
}
