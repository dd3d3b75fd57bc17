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

// Program yangir parses YANG source files and displays their intermediate
// representation.
//
// Usage: yangir [--format FORMAT] [--max-depth N] [FILE ...]
//
// Each FILE is parsed as a single module or submodule.  If no FILEs are
// given, standard input is parsed.  The first syntax error in any file is
// reported and the program exits non-zero.
//
// FORMAT, which defaults to "tree", specifies the output to produce.  Use
// "yangir --help" for the list of available formats.
//
// The program is a development and inspection tool; the library surface is
// the pkg/yang package.
package main

import (
	"fmt"
	"io"
	"io/ioutil"
	"os"
	"sort"
	"strings"

	"github.com/openconfig/yangir/pkg/yang"
	"github.com/pborman/getopt"
)

// Each format must register a formatter with register.  The function f is
// called once with all parsed documents.
type formatter struct {
	name string
	f    func(io.Writer, []yang.Document)
	help string
}

var formatters = map[string]*formatter{}

func register(f *formatter) {
	formatters[f.name] = f
}

var stop = os.Exit

func main() {
	formats := make([]string, 0, len(formatters))
	for k := range formatters {
		formats = append(formats, k)
	}
	sort.Strings(formats)

	var format string
	var maxDepth int
	var help bool
	getopt.StringVarLong(&format, "format", 0, "format to display: "+strings.Join(formats, ", "), "FORMAT")
	getopt.IntVarLong(&maxDepth, "max-depth", 0, "maximum statement nesting depth", "N")
	getopt.BoolVarLong(&help, "help", '?', "display help")
	getopt.SetParameters("[FILE ...]")
	getopt.Parse()

	if help {
		getopt.CommandLine.PrintUsage(os.Stderr)
		fmt.Fprintf(os.Stderr, `
FILE should contain a single YANG module or submodule.

Formats:
`)
		for _, fn := range formats {
			f := formatters[fn]
			fmt.Fprintf(os.Stderr, "    %s - %s\n", f.name, f.help)
		}
		stop(0)
	}

	if format == "" {
		format = "tree"
	}
	if _, ok := formatters[format]; !ok {
		fmt.Fprintf(os.Stderr, "%s: invalid format.  Choices are %s\n", format, strings.Join(formats, ", "))
		stop(1)
	}

	files := getopt.Args()

	type source struct {
		name string
		data []byte
	}
	var sources []source

	if len(files) == 0 {
		data, err := ioutil.ReadAll(os.Stdin)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			stop(1)
		}
		sources = append(sources, source{"<STDIN>", data})
	}
	for _, name := range files {
		data, err := ioutil.ReadFile(name)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			stop(1)
		}
		sources = append(sources, source{name, data})
	}

	var docs []yang.Document
	for _, src := range sources {
		doc, err := yang.ParseWithOptions(src.data, yang.Options{
			Name:     src.name,
			MaxDepth: maxDepth,
		})
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			stop(1)
		}
		docs = append(docs, doc)
	}

	formatters[format].f(os.Stdout, docs)
}
