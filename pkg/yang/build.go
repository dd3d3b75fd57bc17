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

// This file builds the typed IR from a Statement tree that has already
// been validated against the grammar (see grammar.go).  A Statement shape
// the builder cannot map is therefore a bug in the grammar, not a user
// error, and the builder panics on it.  User level errors originate
// exclusively from the lexer, the statement parser, and the grammar check.
//
// Normalizations applied here:
//
//   - boolean, status, ordered-by, modifier and deviate arguments become
//     closed enumerations
//   - value, position, min-elements, fraction-digits and max-elements
//     arguments are parsed into integers; max-elements unbounded becomes a
//     distinct variant
//   - repeated singleton sub-statements resolve last-wins
//   - short form choice cases are materialized into implicit Cases
//
// Statements with a prefixed keyword (extension usages) are collected
// verbatim into each node's Extensions.

import (
	"fmt"
	"strconv"
)

// addExt appends the extension usage ss to exts.  Reaching addExt with a
// non-extension keyword means the grammar admitted a statement the builder
// does not handle.
func addExt(exts []*Statement, parent, ss *Statement) []*Statement {
	if !isExtension(ss.Keyword) {
		panic(fmt.Sprintf("yang: internal error: unhandled %s substatement: %s", parent.Keyword, ss.Keyword))
	}
	return append(exts, ss)
}

// asTriState converts a validated boolean argument.
func asTriState(s *Statement) TriState {
	switch s.Argument {
	case "true":
		return TSTrue
	case "false":
		return TSFalse
	}
	panic(fmt.Sprintf("yang: internal error: %s: invalid boolean: %s", s.Keyword, s.Argument))
}

// asStatus converts a validated status argument.
func asStatus(s *Statement) Status {
	switch s.Argument {
	case "current":
		return StatusCurrent
	case "deprecated":
		return StatusDeprecated
	case "obsolete":
		return StatusObsolete
	}
	panic(fmt.Sprintf("yang: internal error: invalid status: %s", s.Argument))
}

// asOrderedBy converts a validated ordered-by argument.
func asOrderedBy(s *Statement) OrderedBy {
	switch s.Argument {
	case "system":
		return OrderedBySystem
	case "user":
		return OrderedByUser
	}
	panic(fmt.Sprintf("yang: internal error: invalid ordered-by: %s", s.Argument))
}

// asInt64 parses a validated signed integer argument.
func asInt64(s *Statement) *int64 {
	i, err := strconv.ParseInt(s.Argument, 10, 64)
	if err != nil {
		panic(fmt.Sprintf("yang: internal error: %s: invalid integer: %s", s.Keyword, s.Argument))
	}
	return &i
}

// asUint64 parses a validated non-negative integer argument.
func asUint64(s *Statement) *uint64 {
	u, err := strconv.ParseUint(s.Argument, 10, 64)
	if err != nil {
		panic(fmt.Sprintf("yang: internal error: %s: invalid non-negative integer: %s", s.Keyword, s.Argument))
	}
	return &u
}

// asMaxElements parses a validated max-elements argument.
func asMaxElements(s *Statement) *MaxElements {
	if s.Argument == "unbounded" {
		return &MaxElements{Unbounded: true}
	}
	return &MaxElements{N: *asUint64(s)}
}

// buildValue builds a Value from a statement whose argument is retained
// verbatim.
func buildValue(s *Statement) *Value {
	n := &Value{Name: s.Argument, Source: s}
	for _, ss := range s.statements {
		switch ss.Keyword {
		case "description":
			n.Description = buildValue(ss)
		case "reference":
			n.Reference = buildValue(ss)
		default:
			n.Extensions = addExt(n.Extensions, s, ss)
		}
	}
	return n
}

// buildDocument builds the IR root from the single top level statement.
func buildDocument(s *Statement) Document {
	switch s.Keyword {
	case "module":
		return buildModule(s)
	case "submodule":
		return buildSubmodule(s)
	}
	panic(fmt.Sprintf("yang: internal error: %s is not a document root", s.Keyword))
}

func buildModule(s *Statement) *Module {
	n := &Module{Name: s.Argument, Source: s}
	for _, ss := range s.statements {
		switch ss.Keyword {
		case "yang-version":
			n.YangVersion = buildValue(ss)
		case "namespace":
			n.Namespace = buildValue(ss)
		case "prefix":
			n.Prefix = buildValue(ss)
		case "organization":
			n.Organization = buildValue(ss)
		case "contact":
			n.Contact = buildValue(ss)
		case "description":
			n.Description = buildValue(ss)
		case "reference":
			n.Reference = buildValue(ss)
		case "import":
			n.Import = append(n.Import, buildImport(ss))
		case "include":
			n.Include = append(n.Include, buildInclude(ss))
		case "revision":
			n.Revision = append(n.Revision, buildRevision(ss))
		case "extension":
			n.Extension = append(n.Extension, buildExtension(ss))
		case "feature":
			n.Feature = append(n.Feature, buildFeature(ss))
		case "identity":
			n.Identity = append(n.Identity, buildIdentity(ss))
		case "typedef":
			n.Typedef = append(n.Typedef, buildTypedef(ss))
		case "grouping":
			n.Grouping = append(n.Grouping, buildGrouping(ss))
		case "container", "leaf", "leaf-list", "list", "choice", "anydata", "anyxml", "uses":
			n.DataDefs = append(n.DataDefs, buildDataDef(ss))
		case "augment":
			n.Augment = append(n.Augment, buildAugment(ss))
		case "rpc":
			n.RPC = append(n.RPC, buildRPC(ss))
		case "notification":
			n.Notification = append(n.Notification, buildNotification(ss))
		case "deviation":
			n.Deviation = append(n.Deviation, buildDeviation(ss))
		default:
			n.Extensions = addExt(n.Extensions, s, ss)
		}
	}
	return n
}

func buildSubmodule(s *Statement) *Submodule {
	n := &Submodule{Name: s.Argument, Source: s}
	for _, ss := range s.statements {
		switch ss.Keyword {
		case "yang-version":
			n.YangVersion = buildValue(ss)
		case "belongs-to":
			n.BelongsTo = buildBelongsTo(ss)
		case "organization":
			n.Organization = buildValue(ss)
		case "contact":
			n.Contact = buildValue(ss)
		case "description":
			n.Description = buildValue(ss)
		case "reference":
			n.Reference = buildValue(ss)
		case "import":
			n.Import = append(n.Import, buildImport(ss))
		case "include":
			n.Include = append(n.Include, buildInclude(ss))
		case "revision":
			n.Revision = append(n.Revision, buildRevision(ss))
		case "extension":
			n.Extension = append(n.Extension, buildExtension(ss))
		case "feature":
			n.Feature = append(n.Feature, buildFeature(ss))
		case "identity":
			n.Identity = append(n.Identity, buildIdentity(ss))
		case "typedef":
			n.Typedef = append(n.Typedef, buildTypedef(ss))
		case "grouping":
			n.Grouping = append(n.Grouping, buildGrouping(ss))
		case "container", "leaf", "leaf-list", "list", "choice", "anydata", "anyxml", "uses":
			n.DataDefs = append(n.DataDefs, buildDataDef(ss))
		case "augment":
			n.Augment = append(n.Augment, buildAugment(ss))
		case "rpc":
			n.RPC = append(n.RPC, buildRPC(ss))
		case "notification":
			n.Notification = append(n.Notification, buildNotification(ss))
		case "deviation":
			n.Deviation = append(n.Deviation, buildDeviation(ss))
		default:
			n.Extensions = addExt(n.Extensions, s, ss)
		}
	}
	return n
}

func buildBelongsTo(s *Statement) *BelongsTo {
	n := &BelongsTo{Name: s.Argument, Source: s}
	for _, ss := range s.statements {
		switch ss.Keyword {
		case "prefix":
			n.Prefix = buildValue(ss)
		default:
			n.Extensions = addExt(n.Extensions, s, ss)
		}
	}
	return n
}

func buildImport(s *Statement) *Import {
	n := &Import{Name: s.Argument, Source: s}
	for _, ss := range s.statements {
		switch ss.Keyword {
		case "prefix":
			n.Prefix = buildValue(ss)
		case "revision-date":
			n.RevisionDate = buildValue(ss)
		case "description":
			n.Description = buildValue(ss)
		case "reference":
			n.Reference = buildValue(ss)
		default:
			n.Extensions = addExt(n.Extensions, s, ss)
		}
	}
	return n
}

func buildInclude(s *Statement) *Include {
	n := &Include{Name: s.Argument, Source: s}
	for _, ss := range s.statements {
		switch ss.Keyword {
		case "revision-date":
			n.RevisionDate = buildValue(ss)
		case "description":
			n.Description = buildValue(ss)
		case "reference":
			n.Reference = buildValue(ss)
		default:
			n.Extensions = addExt(n.Extensions, s, ss)
		}
	}
	return n
}

func buildRevision(s *Statement) *Revision {
	n := &Revision{Name: s.Argument, Source: s}
	for _, ss := range s.statements {
		switch ss.Keyword {
		case "description":
			n.Description = buildValue(ss)
		case "reference":
			n.Reference = buildValue(ss)
		default:
			n.Extensions = addExt(n.Extensions, s, ss)
		}
	}
	return n
}

func buildExtension(s *Statement) *Extension {
	n := &Extension{Name: s.Argument, Source: s}
	for _, ss := range s.statements {
		switch ss.Keyword {
		case "argument":
			n.Argument = buildArgument(ss)
		case "status":
			n.Status = asStatus(ss)
		case "description":
			n.Description = buildValue(ss)
		case "reference":
			n.Reference = buildValue(ss)
		default:
			n.Extensions = addExt(n.Extensions, s, ss)
		}
	}
	return n
}

func buildArgument(s *Statement) *Argument {
	n := &Argument{Name: s.Argument, Source: s}
	for _, ss := range s.statements {
		switch ss.Keyword {
		case "yin-element":
			n.YinElement = asTriState(ss)
		default:
			n.Extensions = addExt(n.Extensions, s, ss)
		}
	}
	return n
}

func buildFeature(s *Statement) *Feature {
	n := &Feature{Name: s.Argument, Source: s}
	for _, ss := range s.statements {
		switch ss.Keyword {
		case "if-feature":
			n.IfFeature = append(n.IfFeature, buildValue(ss))
		case "status":
			n.Status = asStatus(ss)
		case "description":
			n.Description = buildValue(ss)
		case "reference":
			n.Reference = buildValue(ss)
		default:
			n.Extensions = addExt(n.Extensions, s, ss)
		}
	}
	return n
}

func buildIdentity(s *Statement) *Identity {
	n := &Identity{Name: s.Argument, Source: s}
	for _, ss := range s.statements {
		switch ss.Keyword {
		case "if-feature":
			n.IfFeature = append(n.IfFeature, buildValue(ss))
		case "base":
			n.Base = append(n.Base, buildValue(ss))
		case "status":
			n.Status = asStatus(ss)
		case "description":
			n.Description = buildValue(ss)
		case "reference":
			n.Reference = buildValue(ss)
		default:
			n.Extensions = addExt(n.Extensions, s, ss)
		}
	}
	return n
}

func buildTypedef(s *Statement) *Typedef {
	n := &Typedef{Name: s.Argument, Source: s}
	for _, ss := range s.statements {
		switch ss.Keyword {
		case "type":
			n.Type = buildType(ss)
		case "units":
			n.Units = buildValue(ss)
		case "default":
			n.Default = buildValue(ss)
		case "status":
			n.Status = asStatus(ss)
		case "description":
			n.Description = buildValue(ss)
		case "reference":
			n.Reference = buildValue(ss)
		default:
			n.Extensions = addExt(n.Extensions, s, ss)
		}
	}
	return n
}

// buildType builds a Type and the one specification alternative its body
// holds, selected by the same ordered choice the grammar checked.
func buildType(s *Statement) *Type {
	n := &Type{Name: s.Argument, Source: s}

	switch alt := typeAlternative(s); alt {
	case "":
		for _, ss := range s.statements {
			n.Extensions = addExt(n.Extensions, s, ss)
		}

	case "decimal64":
		spec := &Decimal64{}
		for _, ss := range s.statements {
			switch ss.Keyword {
			case "fraction-digits":
				spec.FractionDigits = uint8(*asUint64(ss))
			case "range":
				spec.Range = buildRange(ss)
			default:
				n.Extensions = addExt(n.Extensions, s, ss)
			}
		}
		n.Spec = spec

	case "numeric":
		spec := &NumericRestriction{}
		for _, ss := range s.statements {
			switch ss.Keyword {
			case "range":
				spec.Range = buildRange(ss)
			default:
				n.Extensions = addExt(n.Extensions, s, ss)
			}
		}
		n.Spec = spec

	case "string":
		spec := &StringRestriction{}
		for _, ss := range s.statements {
			switch ss.Keyword {
			case "length":
				spec.Length = buildLength(ss)
			case "pattern":
				spec.Pattern = append(spec.Pattern, buildPattern(ss))
			default:
				n.Extensions = addExt(n.Extensions, s, ss)
			}
		}
		n.Spec = spec

	case "binary":
		spec := &BinaryRestriction{}
		for _, ss := range s.statements {
			switch ss.Keyword {
			case "length":
				spec.Length = buildLength(ss)
			default:
				n.Extensions = addExt(n.Extensions, s, ss)
			}
		}
		n.Spec = spec

	case "enumeration":
		spec := &Enumeration{}
		for _, ss := range s.statements {
			switch ss.Keyword {
			case "enum":
				spec.Enum = append(spec.Enum, buildEnum(ss))
			default:
				n.Extensions = addExt(n.Extensions, s, ss)
			}
		}
		n.Spec = spec

	case "leafref":
		spec := &Leafref{}
		for _, ss := range s.statements {
			switch ss.Keyword {
			case "path":
				spec.Path = buildValue(ss)
			case "require-instance":
				spec.RequireInstance = asTriState(ss)
			default:
				n.Extensions = addExt(n.Extensions, s, ss)
			}
		}
		n.Spec = spec

	case "identityref":
		spec := &Identityref{}
		for _, ss := range s.statements {
			switch ss.Keyword {
			case "base":
				spec.Base = append(spec.Base, buildValue(ss))
			default:
				n.Extensions = addExt(n.Extensions, s, ss)
			}
		}
		n.Spec = spec

	case "instance-identifier":
		spec := &InstanceIdentifier{}
		for _, ss := range s.statements {
			switch ss.Keyword {
			case "require-instance":
				spec.RequireInstance = asTriState(ss)
			default:
				n.Extensions = addExt(n.Extensions, s, ss)
			}
		}
		n.Spec = spec

	case "bits":
		spec := &Bits{}
		for _, ss := range s.statements {
			switch ss.Keyword {
			case "bit":
				spec.Bit = append(spec.Bit, buildBit(ss))
			default:
				n.Extensions = addExt(n.Extensions, s, ss)
			}
		}
		n.Spec = spec

	case "union":
		spec := &Union{}
		for _, ss := range s.statements {
			switch ss.Keyword {
			case "type":
				spec.Type = append(spec.Type, buildType(ss))
			default:
				n.Extensions = addExt(n.Extensions, s, ss)
			}
		}
		n.Spec = spec

	default:
		panic(fmt.Sprintf("yang: internal error: unknown type alternative: %s", alt))
	}
	return n
}

func buildRange(s *Statement) *Range {
	n := &Range{Name: s.Argument, Source: s}
	for _, ss := range s.statements {
		switch ss.Keyword {
		case "error-message":
			n.ErrorMessage = buildValue(ss)
		case "error-app-tag":
			n.ErrorAppTag = buildValue(ss)
		case "description":
			n.Description = buildValue(ss)
		case "reference":
			n.Reference = buildValue(ss)
		default:
			n.Extensions = addExt(n.Extensions, s, ss)
		}
	}
	return n
}

func buildLength(s *Statement) *Length {
	n := &Length{Name: s.Argument, Source: s}
	for _, ss := range s.statements {
		switch ss.Keyword {
		case "error-message":
			n.ErrorMessage = buildValue(ss)
		case "error-app-tag":
			n.ErrorAppTag = buildValue(ss)
		case "description":
			n.Description = buildValue(ss)
		case "reference":
			n.Reference = buildValue(ss)
		default:
			n.Extensions = addExt(n.Extensions, s, ss)
		}
	}
	return n
}

func buildPattern(s *Statement) *Pattern {
	n := &Pattern{Name: s.Argument, Source: s}
	for _, ss := range s.statements {
		switch ss.Keyword {
		case "modifier":
			n.InvertMatch = true
		case "error-message":
			n.ErrorMessage = buildValue(ss)
		case "error-app-tag":
			n.ErrorAppTag = buildValue(ss)
		case "description":
			n.Description = buildValue(ss)
		case "reference":
			n.Reference = buildValue(ss)
		default:
			n.Extensions = addExt(n.Extensions, s, ss)
		}
	}
	return n
}

func buildEnum(s *Statement) *Enum {
	n := &Enum{Name: s.Argument, Source: s}
	for _, ss := range s.statements {
		switch ss.Keyword {
		case "if-feature":
			n.IfFeature = append(n.IfFeature, buildValue(ss))
		case "value":
			n.Value = asInt64(ss)
		case "status":
			n.Status = asStatus(ss)
		case "description":
			n.Description = buildValue(ss)
		case "reference":
			n.Reference = buildValue(ss)
		default:
			n.Extensions = addExt(n.Extensions, s, ss)
		}
	}
	return n
}

func buildBit(s *Statement) *Bit {
	n := &Bit{Name: s.Argument, Source: s}
	for _, ss := range s.statements {
		switch ss.Keyword {
		case "if-feature":
			n.IfFeature = append(n.IfFeature, buildValue(ss))
		case "position":
			n.Position = asUint64(ss)
		case "status":
			n.Status = asStatus(ss)
		case "description":
			n.Description = buildValue(ss)
		case "reference":
			n.Reference = buildValue(ss)
		default:
			n.Extensions = addExt(n.Extensions, s, ss)
		}
	}
	return n
}

func buildMust(s *Statement) *Must {
	n := &Must{Name: s.Argument, Source: s}
	for _, ss := range s.statements {
		switch ss.Keyword {
		case "error-message":
			n.ErrorMessage = buildValue(ss)
		case "error-app-tag":
			n.ErrorAppTag = buildValue(ss)
		case "description":
			n.Description = buildValue(ss)
		case "reference":
			n.Reference = buildValue(ss)
		default:
			n.Extensions = addExt(n.Extensions, s, ss)
		}
	}
	return n
}

// buildDataDef dispatches on the data definition keywords.
func buildDataDef(s *Statement) DataDef {
	switch s.Keyword {
	case "container":
		return buildContainer(s)
	case "leaf":
		return buildLeaf(s)
	case "leaf-list":
		return buildLeafList(s)
	case "list":
		return buildList(s)
	case "choice":
		return buildChoice(s)
	case "anydata":
		return buildAnyData(s)
	case "anyxml":
		return buildAnyXML(s)
	case "uses":
		return buildUses(s)
	}
	panic(fmt.Sprintf("yang: internal error: %s is not a data definition", s.Keyword))
}

func buildContainer(s *Statement) *Container {
	n := &Container{Name: s.Argument, Source: s}
	for _, ss := range s.statements {
		switch ss.Keyword {
		case "when":
			n.When = buildValue(ss)
		case "if-feature":
			n.IfFeature = append(n.IfFeature, buildValue(ss))
		case "must":
			n.Must = append(n.Must, buildMust(ss))
		case "presence":
			n.Presence = buildValue(ss)
		case "config":
			n.Config = asTriState(ss)
		case "status":
			n.Status = asStatus(ss)
		case "description":
			n.Description = buildValue(ss)
		case "reference":
			n.Reference = buildValue(ss)
		case "typedef":
			n.Typedef = append(n.Typedef, buildTypedef(ss))
		case "grouping":
			n.Grouping = append(n.Grouping, buildGrouping(ss))
		case "container", "leaf", "leaf-list", "list", "choice", "anydata", "anyxml", "uses":
			n.DataDefs = append(n.DataDefs, buildDataDef(ss))
		case "action":
			n.Action = append(n.Action, buildAction(ss))
		case "notification":
			n.Notification = append(n.Notification, buildNotification(ss))
		default:
			n.Extensions = addExt(n.Extensions, s, ss)
		}
	}
	return n
}

func buildLeaf(s *Statement) *Leaf {
	n := &Leaf{Name: s.Argument, Source: s}
	for _, ss := range s.statements {
		switch ss.Keyword {
		case "when":
			n.When = buildValue(ss)
		case "if-feature":
			n.IfFeature = append(n.IfFeature, buildValue(ss))
		case "type":
			n.Type = buildType(ss)
		case "units":
			n.Units = buildValue(ss)
		case "must":
			n.Must = append(n.Must, buildMust(ss))
		case "default":
			n.Default = buildValue(ss)
		case "config":
			n.Config = asTriState(ss)
		case "mandatory":
			n.Mandatory = asTriState(ss)
		case "status":
			n.Status = asStatus(ss)
		case "description":
			n.Description = buildValue(ss)
		case "reference":
			n.Reference = buildValue(ss)
		default:
			n.Extensions = addExt(n.Extensions, s, ss)
		}
	}
	return n
}

func buildLeafList(s *Statement) *LeafList {
	n := &LeafList{Name: s.Argument, Source: s}
	for _, ss := range s.statements {
		switch ss.Keyword {
		case "when":
			n.When = buildValue(ss)
		case "if-feature":
			n.IfFeature = append(n.IfFeature, buildValue(ss))
		case "type":
			n.Type = buildType(ss)
		case "units":
			n.Units = buildValue(ss)
		case "must":
			n.Must = append(n.Must, buildMust(ss))
		case "default":
			n.Default = append(n.Default, buildValue(ss))
		case "config":
			n.Config = asTriState(ss)
		case "min-elements":
			n.MinElements = asUint64(ss)
		case "max-elements":
			n.MaxElements = asMaxElements(ss)
		case "ordered-by":
			n.OrderedBy = asOrderedBy(ss)
		case "status":
			n.Status = asStatus(ss)
		case "description":
			n.Description = buildValue(ss)
		case "reference":
			n.Reference = buildValue(ss)
		default:
			n.Extensions = addExt(n.Extensions, s, ss)
		}
	}
	return n
}

func buildList(s *Statement) *List {
	n := &List{Name: s.Argument, Source: s}
	for _, ss := range s.statements {
		switch ss.Keyword {
		case "when":
			n.When = buildValue(ss)
		case "if-feature":
			n.IfFeature = append(n.IfFeature, buildValue(ss))
		case "must":
			n.Must = append(n.Must, buildMust(ss))
		case "key":
			n.Key = buildValue(ss)
		case "unique":
			n.Unique = append(n.Unique, buildValue(ss))
		case "config":
			n.Config = asTriState(ss)
		case "min-elements":
			n.MinElements = asUint64(ss)
		case "max-elements":
			n.MaxElements = asMaxElements(ss)
		case "ordered-by":
			n.OrderedBy = asOrderedBy(ss)
		case "status":
			n.Status = asStatus(ss)
		case "description":
			n.Description = buildValue(ss)
		case "reference":
			n.Reference = buildValue(ss)
		case "typedef":
			n.Typedef = append(n.Typedef, buildTypedef(ss))
		case "grouping":
			n.Grouping = append(n.Grouping, buildGrouping(ss))
		case "container", "leaf", "leaf-list", "list", "choice", "anydata", "anyxml", "uses":
			n.DataDefs = append(n.DataDefs, buildDataDef(ss))
		case "action":
			n.Action = append(n.Action, buildAction(ss))
		case "notification":
			n.Notification = append(n.Notification, buildNotification(ss))
		default:
			n.Extensions = addExt(n.Extensions, s, ss)
		}
	}
	return n
}

func buildChoice(s *Statement) *Choice {
	n := &Choice{Name: s.Argument, Source: s}
	for _, ss := range s.statements {
		switch ss.Keyword {
		case "when":
			n.When = buildValue(ss)
		case "if-feature":
			n.IfFeature = append(n.IfFeature, buildValue(ss))
		case "default":
			n.Default = buildValue(ss)
		case "config":
			n.Config = asTriState(ss)
		case "mandatory":
			n.Mandatory = asTriState(ss)
		case "status":
			n.Status = asStatus(ss)
		case "description":
			n.Description = buildValue(ss)
		case "reference":
			n.Reference = buildValue(ss)
		case "case":
			n.Case = append(n.Case, buildCase(ss))
		case "container", "leaf", "leaf-list", "list", "choice", "anydata", "anyxml":
			// A short form case: the data definition stands for an
			// implicit case named after it.
			n.Case = append(n.Case, &Case{
				Name:     ss.Argument,
				Source:   ss,
				DataDefs: []DataDef{buildDataDef(ss)},
				Implicit: true,
			})
		default:
			n.Extensions = addExt(n.Extensions, s, ss)
		}
	}
	return n
}

func buildCase(s *Statement) *Case {
	n := &Case{Name: s.Argument, Source: s}
	for _, ss := range s.statements {
		switch ss.Keyword {
		case "when":
			n.When = buildValue(ss)
		case "if-feature":
			n.IfFeature = append(n.IfFeature, buildValue(ss))
		case "status":
			n.Status = asStatus(ss)
		case "description":
			n.Description = buildValue(ss)
		case "reference":
			n.Reference = buildValue(ss)
		case "container", "leaf", "leaf-list", "list", "choice", "anydata", "anyxml", "uses":
			n.DataDefs = append(n.DataDefs, buildDataDef(ss))
		default:
			n.Extensions = addExt(n.Extensions, s, ss)
		}
	}
	return n
}

func buildAnyData(s *Statement) *AnyData {
	n := &AnyData{Name: s.Argument, Source: s}
	for _, ss := range s.statements {
		switch ss.Keyword {
		case "when":
			n.When = buildValue(ss)
		case "if-feature":
			n.IfFeature = append(n.IfFeature, buildValue(ss))
		case "must":
			n.Must = append(n.Must, buildMust(ss))
		case "config":
			n.Config = asTriState(ss)
		case "mandatory":
			n.Mandatory = asTriState(ss)
		case "status":
			n.Status = asStatus(ss)
		case "description":
			n.Description = buildValue(ss)
		case "reference":
			n.Reference = buildValue(ss)
		default:
			n.Extensions = addExt(n.Extensions, s, ss)
		}
	}
	return n
}

func buildAnyXML(s *Statement) *AnyXML {
	n := &AnyXML{Name: s.Argument, Source: s}
	for _, ss := range s.statements {
		switch ss.Keyword {
		case "when":
			n.When = buildValue(ss)
		case "if-feature":
			n.IfFeature = append(n.IfFeature, buildValue(ss))
		case "must":
			n.Must = append(n.Must, buildMust(ss))
		case "config":
			n.Config = asTriState(ss)
		case "mandatory":
			n.Mandatory = asTriState(ss)
		case "status":
			n.Status = asStatus(ss)
		case "description":
			n.Description = buildValue(ss)
		case "reference":
			n.Reference = buildValue(ss)
		default:
			n.Extensions = addExt(n.Extensions, s, ss)
		}
	}
	return n
}

func buildUses(s *Statement) *Uses {
	n := &Uses{Name: s.Argument, Source: s}
	for _, ss := range s.statements {
		switch ss.Keyword {
		case "when":
			n.When = buildValue(ss)
		case "if-feature":
			n.IfFeature = append(n.IfFeature, buildValue(ss))
		case "status":
			n.Status = asStatus(ss)
		case "description":
			n.Description = buildValue(ss)
		case "reference":
			n.Reference = buildValue(ss)
		case "refine":
			n.Refine = append(n.Refine, buildRefine(ss))
		case "augment":
			n.Augment = append(n.Augment, buildAugment(ss))
		default:
			n.Extensions = addExt(n.Extensions, s, ss)
		}
	}
	return n
}

func buildRefine(s *Statement) *Refine {
	n := &Refine{Name: s.Argument, Source: s}
	for _, ss := range s.statements {
		switch ss.Keyword {
		case "if-feature":
			n.IfFeature = append(n.IfFeature, buildValue(ss))
		case "must":
			n.Must = append(n.Must, buildMust(ss))
		case "presence":
			n.Presence = buildValue(ss)
		case "default":
			n.Default = append(n.Default, buildValue(ss))
		case "config":
			n.Config = asTriState(ss)
		case "mandatory":
			n.Mandatory = asTriState(ss)
		case "min-elements":
			n.MinElements = asUint64(ss)
		case "max-elements":
			n.MaxElements = asMaxElements(ss)
		case "description":
			n.Description = buildValue(ss)
		case "reference":
			n.Reference = buildValue(ss)
		default:
			n.Extensions = addExt(n.Extensions, s, ss)
		}
	}
	return n
}

func buildAugment(s *Statement) *Augment {
	n := &Augment{Name: s.Argument, Source: s}
	for _, ss := range s.statements {
		switch ss.Keyword {
		case "when":
			n.When = buildValue(ss)
		case "if-feature":
			n.IfFeature = append(n.IfFeature, buildValue(ss))
		case "status":
			n.Status = asStatus(ss)
		case "description":
			n.Description = buildValue(ss)
		case "reference":
			n.Reference = buildValue(ss)
		case "case":
			n.Case = append(n.Case, buildCase(ss))
		case "container", "leaf", "leaf-list", "list", "choice", "anydata", "anyxml", "uses":
			n.DataDefs = append(n.DataDefs, buildDataDef(ss))
		case "action":
			n.Action = append(n.Action, buildAction(ss))
		case "notification":
			n.Notification = append(n.Notification, buildNotification(ss))
		default:
			n.Extensions = addExt(n.Extensions, s, ss)
		}
	}
	return n
}

func buildGrouping(s *Statement) *Grouping {
	n := &Grouping{Name: s.Argument, Source: s}
	for _, ss := range s.statements {
		switch ss.Keyword {
		case "status":
			n.Status = asStatus(ss)
		case "description":
			n.Description = buildValue(ss)
		case "reference":
			n.Reference = buildValue(ss)
		case "typedef":
			n.Typedef = append(n.Typedef, buildTypedef(ss))
		case "grouping":
			n.Grouping = append(n.Grouping, buildGrouping(ss))
		case "container", "leaf", "leaf-list", "list", "choice", "anydata", "anyxml", "uses":
			n.DataDefs = append(n.DataDefs, buildDataDef(ss))
		case "action":
			n.Action = append(n.Action, buildAction(ss))
		case "notification":
			n.Notification = append(n.Notification, buildNotification(ss))
		default:
			n.Extensions = addExt(n.Extensions, s, ss)
		}
	}
	return n
}

func buildRPC(s *Statement) *RPC {
	n := &RPC{Name: s.Argument, Source: s}
	for _, ss := range s.statements {
		switch ss.Keyword {
		case "if-feature":
			n.IfFeature = append(n.IfFeature, buildValue(ss))
		case "must":
			n.Must = append(n.Must, buildMust(ss))
		case "status":
			n.Status = asStatus(ss)
		case "description":
			n.Description = buildValue(ss)
		case "reference":
			n.Reference = buildValue(ss)
		case "typedef":
			n.Typedef = append(n.Typedef, buildTypedef(ss))
		case "grouping":
			n.Grouping = append(n.Grouping, buildGrouping(ss))
		case "input":
			n.Input = buildInput(ss)
		case "output":
			n.Output = buildOutput(ss)
		default:
			n.Extensions = addExt(n.Extensions, s, ss)
		}
	}
	return n
}

func buildAction(s *Statement) *Action {
	n := &Action{Name: s.Argument, Source: s}
	for _, ss := range s.statements {
		switch ss.Keyword {
		case "if-feature":
			n.IfFeature = append(n.IfFeature, buildValue(ss))
		case "must":
			n.Must = append(n.Must, buildMust(ss))
		case "status":
			n.Status = asStatus(ss)
		case "description":
			n.Description = buildValue(ss)
		case "reference":
			n.Reference = buildValue(ss)
		case "typedef":
			n.Typedef = append(n.Typedef, buildTypedef(ss))
		case "grouping":
			n.Grouping = append(n.Grouping, buildGrouping(ss))
		case "input":
			n.Input = buildInput(ss)
		case "output":
			n.Output = buildOutput(ss)
		default:
			n.Extensions = addExt(n.Extensions, s, ss)
		}
	}
	return n
}

func buildInput(s *Statement) *Input {
	n := &Input{Source: s}
	for _, ss := range s.statements {
		switch ss.Keyword {
		case "must":
			n.Must = append(n.Must, buildMust(ss))
		case "typedef":
			n.Typedef = append(n.Typedef, buildTypedef(ss))
		case "grouping":
			n.Grouping = append(n.Grouping, buildGrouping(ss))
		case "container", "leaf", "leaf-list", "list", "choice", "anydata", "anyxml", "uses":
			n.DataDefs = append(n.DataDefs, buildDataDef(ss))
		default:
			n.Extensions = addExt(n.Extensions, s, ss)
		}
	}
	return n
}

func buildOutput(s *Statement) *Output {
	n := &Output{Source: s}
	for _, ss := range s.statements {
		switch ss.Keyword {
		case "must":
			n.Must = append(n.Must, buildMust(ss))
		case "typedef":
			n.Typedef = append(n.Typedef, buildTypedef(ss))
		case "grouping":
			n.Grouping = append(n.Grouping, buildGrouping(ss))
		case "container", "leaf", "leaf-list", "list", "choice", "anydata", "anyxml", "uses":
			n.DataDefs = append(n.DataDefs, buildDataDef(ss))
		default:
			n.Extensions = addExt(n.Extensions, s, ss)
		}
	}
	return n
}

func buildNotification(s *Statement) *Notification {
	n := &Notification{Name: s.Argument, Source: s}
	for _, ss := range s.statements {
		switch ss.Keyword {
		case "if-feature":
			n.IfFeature = append(n.IfFeature, buildValue(ss))
		case "must":
			n.Must = append(n.Must, buildMust(ss))
		case "status":
			n.Status = asStatus(ss)
		case "description":
			n.Description = buildValue(ss)
		case "reference":
			n.Reference = buildValue(ss)
		case "typedef":
			n.Typedef = append(n.Typedef, buildTypedef(ss))
		case "grouping":
			n.Grouping = append(n.Grouping, buildGrouping(ss))
		case "container", "leaf", "leaf-list", "list", "choice", "anydata", "anyxml", "uses":
			n.DataDefs = append(n.DataDefs, buildDataDef(ss))
		default:
			n.Extensions = addExt(n.Extensions, s, ss)
		}
	}
	return n
}

func buildDeviation(s *Statement) *Deviation {
	n := &Deviation{Name: s.Argument, Source: s}
	for _, ss := range s.statements {
		switch ss.Keyword {
		case "description":
			n.Description = buildValue(ss)
		case "reference":
			n.Reference = buildValue(ss)
		case "deviate":
			n.Deviate = append(n.Deviate, buildDeviate(ss))
		default:
			n.Extensions = addExt(n.Extensions, s, ss)
		}
	}
	return n
}

func buildDeviate(s *Statement) *Deviate {
	n := &Deviate{Source: s}
	switch s.Argument {
	case "not-supported":
		n.DKind = DeviateNotSupported
	case "add":
		n.DKind = DeviateAdd
	case "delete":
		n.DKind = DeviateDelete
	case "replace":
		n.DKind = DeviateReplace
	default:
		panic(fmt.Sprintf("yang: internal error: invalid deviate argument: %s", s.Argument))
	}
	for _, ss := range s.statements {
		switch ss.Keyword {
		case "type":
			n.Type = buildType(ss)
		case "units":
			n.Units = buildValue(ss)
		case "must":
			n.Must = append(n.Must, buildMust(ss))
		case "unique":
			n.Unique = append(n.Unique, buildValue(ss))
		case "default":
			n.Default = append(n.Default, buildValue(ss))
		case "config":
			n.Config = asTriState(ss)
		case "mandatory":
			n.Mandatory = asTriState(ss)
		case "min-elements":
			n.MinElements = asUint64(ss)
		case "max-elements":
			n.MaxElements = asMaxElements(ss)
		default:
			n.Extensions = addExt(n.Extensions, s, ss)
		}
	}
	return n
}
