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
	"fmt"
	"io"
	"os"

	"github.com/openconfig/yangir/pkg/yang"
	"gopkg.in/yaml.v2"
)

func init() {
	register(&formatter{
		name: "yaml",
		f:    doYAML,
		help: "display the IR as YAML",
	})
}

func doYAML(w io.Writer, docs []yang.Document) {
	for _, d := range docs {
		out, err := yaml.Marshal(d)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			stop(1)
		}
		fmt.Fprintf(w, "---\n")
		w.Write(out)
	}
}
