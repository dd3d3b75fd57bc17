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
	"strings"

	"github.com/openconfig/yangir/pkg/indent"
	"github.com/openconfig/yangir/pkg/yang"
)

func init() {
	register(&formatter{
		name: "tree",
		f:    doTree,
		help: "display the IR in a tree format",
	})
}

func doTree(w io.Writer, docs []yang.Document) {
	for _, d := range docs {
		writeTree(w, d)
	}
}

// writeTree writes n, its attributes, and all of its children to w.
func writeTree(w io.Writer, n yang.Node) {
	header := n.Kind()
	if name := n.NName(); name != "" {
		header += " " + name
	}
	if attrs := nodeAttrs(n); len(attrs) > 0 {
		header += " [" + strings.Join(attrs, " ") + "]"
	}

	children := nodeChildren(n)
	if len(children) == 0 {
		fmt.Fprintf(w, "%s\n", header)
		return
	}
	fmt.Fprintf(w, "%s {\n", header)
	cw := indent.NewWriter(w, "  ")
	for _, c := range children {
		writeTree(cw, c)
	}
	fmt.Fprintln(w, "}")
}

// typeName renders a type and, for unions, its members.
func typeName(t *yang.Type) string {
	if t == nil {
		return ""
	}
	if u, ok := t.Spec.(*yang.Union); ok {
		var members []string
		for _, m := range u.Type {
			members = append(members, typeName(m))
		}
		return t.Name + "{" + strings.Join(members, ",") + "}"
	}
	return t.Name
}

// nodeAttrs returns the attributes of n worth showing on its header line.
func nodeAttrs(n yang.Node) []string {
	var attrs []string
	add := func(name string, v interface{}) {
		switch v := v.(type) {
		case *yang.Value:
			if v != nil {
				attrs = append(attrs, fmt.Sprintf("%s=%q", name, v.Name))
			}
		case yang.TriState:
			if v != yang.TSUnset {
				attrs = append(attrs, fmt.Sprintf("%s=%s", name, v))
			}
		case yang.Status:
			if v != yang.StatusUnset {
				attrs = append(attrs, fmt.Sprintf("%s=%s", name, v))
			}
		case yang.OrderedBy:
			if v != yang.OrderedByUnset {
				attrs = append(attrs, fmt.Sprintf("%s=%s", name, v))
			}
		case *yang.MaxElements:
			if v != nil {
				attrs = append(attrs, fmt.Sprintf("%s=%s", name, v))
			}
		case *uint64:
			if v != nil {
				attrs = append(attrs, fmt.Sprintf("%s=%d", name, *v))
			}
		case string:
			if v != "" {
				attrs = append(attrs, fmt.Sprintf("%s=%s", name, v))
			}
		}
	}

	switch t := n.(type) {
	case *yang.Module:
		add("namespace", t.Namespace)
		add("prefix", t.Prefix)
	case *yang.Submodule:
		if t.BelongsTo != nil {
			add("belongs-to", t.BelongsTo.Name)
		}
	case *yang.Leaf:
		add("type", typeName(t.Type))
		add("config", t.Config)
		add("mandatory", t.Mandatory)
		add("default", t.Default)
		add("status", t.Status)
	case *yang.LeafList:
		add("type", typeName(t.Type))
		add("config", t.Config)
		add("ordered-by", t.OrderedBy)
		add("min-elements", t.MinElements)
		add("max-elements", t.MaxElements)
		add("status", t.Status)
	case *yang.List:
		add("key", t.Key)
		add("config", t.Config)
		add("ordered-by", t.OrderedBy)
		add("min-elements", t.MinElements)
		add("max-elements", t.MaxElements)
		add("status", t.Status)
	case *yang.Container:
		add("presence", t.Presence)
		add("config", t.Config)
		add("status", t.Status)
	case *yang.Choice:
		add("default", t.Default)
		add("config", t.Config)
		add("mandatory", t.Mandatory)
	case *yang.AnyData:
		add("config", t.Config)
		add("mandatory", t.Mandatory)
	case *yang.AnyXML:
		add("config", t.Config)
		add("mandatory", t.Mandatory)
	case *yang.Typedef:
		add("type", typeName(t.Type))
		add("default", t.Default)
		add("units", t.Units)
	case *yang.Import:
		add("prefix", t.Prefix)
		add("revision-date", t.RevisionDate)
	case *yang.Include:
		add("revision-date", t.RevisionDate)
	case *yang.Identity:
		for _, b := range t.Base {
			add("base", b)
		}
	case *yang.Deviate:
		add("config", t.Config)
		add("mandatory", t.Mandatory)
		add("min-elements", t.MinElements)
		add("max-elements", t.MaxElements)
	}
	return attrs
}

// nodeChildren returns the children of n in source-meaningful order.
func nodeChildren(n yang.Node) []yang.Node {
	var out []yang.Node
	app := func(ns ...yang.Node) { out = append(out, ns...) }

	switch t := n.(type) {
	case *yang.Module:
		for _, c := range t.Import {
			app(c)
		}
		for _, c := range t.Include {
			app(c)
		}
		for _, c := range t.Revision {
			app(c)
		}
		for _, c := range t.Extension {
			app(c)
		}
		for _, c := range t.Feature {
			app(c)
		}
		for _, c := range t.Identity {
			app(c)
		}
		for _, c := range t.Typedef {
			app(c)
		}
		for _, c := range t.Grouping {
			app(c)
		}
		for _, c := range t.DataDefs {
			app(c)
		}
		for _, c := range t.Augment {
			app(c)
		}
		for _, c := range t.RPC {
			app(c)
		}
		for _, c := range t.Notification {
			app(c)
		}
		for _, c := range t.Deviation {
			app(c)
		}
	case *yang.Submodule:
		for _, c := range t.Import {
			app(c)
		}
		for _, c := range t.Include {
			app(c)
		}
		for _, c := range t.Revision {
			app(c)
		}
		for _, c := range t.Extension {
			app(c)
		}
		for _, c := range t.Feature {
			app(c)
		}
		for _, c := range t.Identity {
			app(c)
		}
		for _, c := range t.Typedef {
			app(c)
		}
		for _, c := range t.Grouping {
			app(c)
		}
		for _, c := range t.DataDefs {
			app(c)
		}
		for _, c := range t.Augment {
			app(c)
		}
		for _, c := range t.RPC {
			app(c)
		}
		for _, c := range t.Notification {
			app(c)
		}
		for _, c := range t.Deviation {
			app(c)
		}
	case *yang.Container:
		for _, c := range t.Typedef {
			app(c)
		}
		for _, c := range t.Grouping {
			app(c)
		}
		for _, c := range t.DataDefs {
			app(c)
		}
		for _, c := range t.Action {
			app(c)
		}
		for _, c := range t.Notification {
			app(c)
		}
	case *yang.List:
		for _, c := range t.Typedef {
			app(c)
		}
		for _, c := range t.Grouping {
			app(c)
		}
		for _, c := range t.DataDefs {
			app(c)
		}
		for _, c := range t.Action {
			app(c)
		}
		for _, c := range t.Notification {
			app(c)
		}
	case *yang.Grouping:
		for _, c := range t.Typedef {
			app(c)
		}
		for _, c := range t.Grouping {
			app(c)
		}
		for _, c := range t.DataDefs {
			app(c)
		}
		for _, c := range t.Action {
			app(c)
		}
		for _, c := range t.Notification {
			app(c)
		}
	case *yang.Choice:
		for _, c := range t.Case {
			app(c)
		}
	case *yang.Case:
		for _, c := range t.DataDefs {
			app(c)
		}
	case *yang.Uses:
		for _, c := range t.Refine {
			app(c)
		}
		for _, c := range t.Augment {
			app(c)
		}
	case *yang.Augment:
		for _, c := range t.DataDefs {
			app(c)
		}
		for _, c := range t.Case {
			app(c)
		}
		for _, c := range t.Action {
			app(c)
		}
		for _, c := range t.Notification {
			app(c)
		}
	case *yang.RPC:
		for _, c := range t.Typedef {
			app(c)
		}
		for _, c := range t.Grouping {
			app(c)
		}
		if t.Input != nil {
			app(t.Input)
		}
		if t.Output != nil {
			app(t.Output)
		}
	case *yang.Action:
		for _, c := range t.Typedef {
			app(c)
		}
		for _, c := range t.Grouping {
			app(c)
		}
		if t.Input != nil {
			app(t.Input)
		}
		if t.Output != nil {
			app(t.Output)
		}
	case *yang.Input:
		for _, c := range t.Typedef {
			app(c)
		}
		for _, c := range t.Grouping {
			app(c)
		}
		for _, c := range t.DataDefs {
			app(c)
		}
	case *yang.Output:
		for _, c := range t.Typedef {
			app(c)
		}
		for _, c := range t.Grouping {
			app(c)
		}
		for _, c := range t.DataDefs {
			app(c)
		}
	case *yang.Notification:
		for _, c := range t.Typedef {
			app(c)
		}
		for _, c := range t.Grouping {
			app(c)
		}
		for _, c := range t.DataDefs {
			app(c)
		}
	case *yang.Deviation:
		for _, c := range t.Deviate {
			app(c)
		}
	}
	return out
}
