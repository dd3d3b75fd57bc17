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

// This file contains the definitions for all nodes of the YANG IR.  The
// actual building of the IR from the Statement tree is in build.go.
//
// Every node owns its strings: the values have been de-quoted, de-escaped
// and concatenated, and nothing references the source buffer.  Statements
// whose inner syntax the parser does not interpret (range, length, pattern,
// path, key, unique, when, must, if-feature, augment targets, ...) are
// retained verbatim in Name fields.
//
// Ordering is preserved wherever the source order is meaningful: data
// definitions, enums, bits, patterns and revisions appear in the IR in the
// order they appear in the source.

import "fmt"

// A Node is an IR node.  Only pointers to structures implement Node.
type Node interface {
	// Kind returns the kind of yang statement (the keyword).
	Kind() string
	// NName returns the node's name (the argument).
	NName() string
	// Statement returns the Statement of this Node.
	Statement() *Statement
	// Exts returns the extension statements found in the node's body.
	Exts() []*Statement
}

// A Document is the root of a parsed source: either a *Module or a
// *Submodule.
type Document interface {
	Node
	document()
}

// A DataDef is a data definition node: one of *Container, *Leaf,
// *LeafList, *List, *Choice, *AnyData, *AnyXML or *Uses.
type DataDef interface {
	Node
	dataDef()
}

// A TriState is the value of a boolean statement that may be absent.
type TriState int

const (
	TSUnset TriState = iota
	TSTrue
	TSFalse
)

// Value returns the value of t if set, otherwise the provided default.
func (t TriState) Value(deflt bool) bool {
	switch t {
	case TSTrue:
		return true
	case TSFalse:
		return false
	}
	return deflt
}

func (t TriState) String() string {
	switch t {
	case TSUnset:
		return "unset"
	case TSTrue:
		return "true"
	case TSFalse:
		return "false"
	default:
		return fmt.Sprintf("ts-%d", t)
	}
}

// A Status is the argument of a status statement.
type Status int

const (
	StatusUnset Status = iota
	StatusCurrent
	StatusDeprecated
	StatusObsolete
)

func (s Status) String() string {
	switch s {
	case StatusUnset:
		return "unset"
	case StatusCurrent:
		return "current"
	case StatusDeprecated:
		return "deprecated"
	case StatusObsolete:
		return "obsolete"
	default:
		return fmt.Sprintf("status-%d", s)
	}
}

// An OrderedBy is the argument of an ordered-by statement.
type OrderedBy int

const (
	OrderedByUnset OrderedBy = iota
	OrderedBySystem
	OrderedByUser
)

func (o OrderedBy) String() string {
	switch o {
	case OrderedByUnset:
		return "unset"
	case OrderedBySystem:
		return "system"
	case OrderedByUser:
		return "user"
	default:
		return fmt.Sprintf("ordered-by-%d", o)
	}
}

// A MaxElements is the argument of a max-elements statement: either the
// literal unbounded or a non-negative count.
type MaxElements struct {
	Unbounded bool
	N         uint64
}

func (m *MaxElements) String() string {
	if m == nil {
		return "unset"
	}
	if m.Unbounded {
		return "unbounded"
	}
	return fmt.Sprintf("%d", m.N)
}

// A Value is a statement whose argument is kept as an uninterpreted
// string, together with any documentation and extensions its body carried.
type Value struct {
	Name       string
	Source     *Statement `json:"-" yaml:"-"`
	Extensions []*Statement

	Description *Value
	Reference   *Value
}

func (Value) Kind() string             { return "string" }
func (s *Value) NName() string         { return s.Name }
func (s *Value) Statement() *Statement { return s.Source }
func (s *Value) Exts() []*Statement    { return s.Extensions }

// asString returns the string value of s.  If s is nil then an empty
// string is returned.
func (s *Value) asString() string {
	if s == nil {
		return ""
	}
	return s.Name
}

// A Module is the IR root for a module document.
type Module struct {
	Name       string
	Source     *Statement `json:"-" yaml:"-"`
	Extensions []*Statement

	YangVersion  *Value
	Namespace    *Value
	Prefix       *Value
	Organization *Value
	Contact      *Value
	Description  *Value
	Reference    *Value

	Import   []*Import
	Include  []*Include
	Revision []*Revision

	Extension    []*Extension
	Feature      []*Feature
	Identity     []*Identity
	Typedef      []*Typedef
	Grouping     []*Grouping
	DataDefs     []DataDef
	Augment      []*Augment
	RPC          []*RPC
	Notification []*Notification
	Deviation    []*Deviation
}

func (Module) Kind() string             { return "module" }
func (s *Module) NName() string         { return s.Name }
func (s *Module) Statement() *Statement { return s.Source }
func (s *Module) Exts() []*Statement    { return s.Extensions }
func (*Module) document()               {}

// Current returns the most recent revision of this module, or "" if the
// module has no revisions.
func (s *Module) Current() string {
	var rev string
	for _, r := range s.Revision {
		if r.Name > rev {
			rev = r.Name
		}
	}
	return rev
}

// A Submodule is the IR root for a submodule document.  It replaces the
// module's namespace and prefix with a belongs-to statement.
type Submodule struct {
	Name       string
	Source     *Statement `json:"-" yaml:"-"`
	Extensions []*Statement

	YangVersion  *Value
	BelongsTo    *BelongsTo
	Organization *Value
	Contact      *Value
	Description  *Value
	Reference    *Value

	Import   []*Import
	Include  []*Include
	Revision []*Revision

	Extension    []*Extension
	Feature      []*Feature
	Identity     []*Identity
	Typedef      []*Typedef
	Grouping     []*Grouping
	DataDefs     []DataDef
	Augment      []*Augment
	RPC          []*RPC
	Notification []*Notification
	Deviation    []*Deviation
}

func (Submodule) Kind() string             { return "submodule" }
func (s *Submodule) NName() string         { return s.Name }
func (s *Submodule) Statement() *Statement { return s.Source }
func (s *Submodule) Exts() []*Statement    { return s.Extensions }
func (*Submodule) document()               {}

// A BelongsTo names the module a submodule belongs to, with the prefix
// used to refer to it.
type BelongsTo struct {
	Name       string
	Source     *Statement `json:"-" yaml:"-"`
	Extensions []*Statement

	Prefix *Value
}

func (BelongsTo) Kind() string             { return "belongs-to" }
func (s *BelongsTo) NName() string         { return s.Name }
func (s *BelongsTo) Statement() *Statement { return s.Source }
func (s *BelongsTo) Exts() []*Statement    { return s.Extensions }

// An Import names a module whose definitions are referenced with a prefix.
type Import struct {
	Name       string
	Source     *Statement `json:"-" yaml:"-"`
	Extensions []*Statement

	Prefix       *Value
	RevisionDate *Value
	Description  *Value
	Reference    *Value
}

func (Import) Kind() string             { return "import" }
func (s *Import) NName() string         { return s.Name }
func (s *Import) Statement() *Statement { return s.Source }
func (s *Import) Exts() []*Statement    { return s.Extensions }

// An Include names a submodule included by a module.
type Include struct {
	Name       string
	Source     *Statement `json:"-" yaml:"-"`
	Extensions []*Statement

	RevisionDate *Value
	Description  *Value
	Reference    *Value
}

func (Include) Kind() string             { return "include" }
func (s *Include) NName() string         { return s.Name }
func (s *Include) Statement() *Statement { return s.Source }
func (s *Include) Exts() []*Statement    { return s.Extensions }

// A Revision is one entry of a module's revision history.  Name holds the
// revision date string.
type Revision struct {
	Name       string
	Source     *Statement `json:"-" yaml:"-"`
	Extensions []*Statement

	Description *Value
	Reference   *Value
}

func (Revision) Kind() string             { return "revision" }
func (s *Revision) NName() string         { return s.Name }
func (s *Revision) Statement() *Statement { return s.Source }
func (s *Revision) Exts() []*Statement    { return s.Extensions }

// A Typedef is a named, reusable type definition.
type Typedef struct {
	Name       string
	Source     *Statement `json:"-" yaml:"-"`
	Extensions []*Statement

	Type        *Type
	Units       *Value
	Default     *Value
	Status      Status
	Description *Value
	Reference   *Value
}

func (Typedef) Kind() string             { return "typedef" }
func (s *Typedef) NName() string         { return s.Name }
func (s *Typedef) Statement() *Statement { return s.Source }
func (s *Typedef) Exts() []*Statement    { return s.Extensions }

// A Type is a reference to a named type, possibly prefixed, together with
// the restriction or specification its body carries.  Spec is nil when the
// type statement has no body.
type Type struct {
	Name       string
	Source     *Statement `json:"-" yaml:"-"`
	Extensions []*Statement

	Spec TypeSpec
}

func (Type) Kind() string             { return "type" }
func (s *Type) NName() string         { return s.Name }
func (s *Type) Statement() *Statement { return s.Source }
func (s *Type) Exts() []*Statement    { return s.Extensions }

// A Must is an XPath constraint kept verbatim, with its error strings.
type Must struct {
	Name       string
	Source     *Statement `json:"-" yaml:"-"`
	Extensions []*Statement

	ErrorMessage *Value
	ErrorAppTag  *Value
	Description  *Value
	Reference    *Value
}

func (Must) Kind() string             { return "must" }
func (s *Must) NName() string         { return s.Name }
func (s *Must) Statement() *Statement { return s.Source }
func (s *Must) Exts() []*Statement    { return s.Extensions }

// A Range is a numeric range expression kept verbatim.
type Range struct {
	Name       string
	Source     *Statement `json:"-" yaml:"-"`
	Extensions []*Statement

	ErrorMessage *Value
	ErrorAppTag  *Value
	Description  *Value
	Reference    *Value
}

func (Range) Kind() string             { return "range" }
func (s *Range) NName() string         { return s.Name }
func (s *Range) Statement() *Statement { return s.Source }
func (s *Range) Exts() []*Statement    { return s.Extensions }

// A Length is a string or binary length expression kept verbatim.
type Length struct {
	Name       string
	Source     *Statement `json:"-" yaml:"-"`
	Extensions []*Statement

	ErrorMessage *Value
	ErrorAppTag  *Value
	Description  *Value
	Reference    *Value
}

func (Length) Kind() string             { return "length" }
func (s *Length) NName() string         { return s.Name }
func (s *Length) Statement() *Statement { return s.Source }
func (s *Length) Exts() []*Statement    { return s.Extensions }

// A Pattern is a regular expression kept verbatim.  InvertMatch is true
// when a modifier invert-match statement was present.
type Pattern struct {
	Name       string
	Source     *Statement `json:"-" yaml:"-"`
	Extensions []*Statement

	InvertMatch  bool
	ErrorMessage *Value
	ErrorAppTag  *Value
	Description  *Value
	Reference    *Value
}

func (Pattern) Kind() string             { return "pattern" }
func (s *Pattern) NName() string         { return s.Name }
func (s *Pattern) Statement() *Statement { return s.Source }
func (s *Pattern) Exts() []*Statement    { return s.Extensions }

// An Enum is one value of an enumeration.  Value is nil when the source
// did not assign one.
type Enum struct {
	Name       string
	Source     *Statement `json:"-" yaml:"-"`
	Extensions []*Statement

	IfFeature   []*Value
	Value       *int64
	Status      Status
	Description *Value
	Reference   *Value
}

func (Enum) Kind() string             { return "enum" }
func (s *Enum) NName() string         { return s.Name }
func (s *Enum) Statement() *Statement { return s.Source }
func (s *Enum) Exts() []*Statement    { return s.Extensions }

// A Bit is one flag of a bits type.  Position is nil when the source did
// not assign one.
type Bit struct {
	Name       string
	Source     *Statement `json:"-" yaml:"-"`
	Extensions []*Statement

	IfFeature   []*Value
	Position    *uint64
	Status      Status
	Description *Value
	Reference   *Value
}

func (Bit) Kind() string             { return "bit" }
func (s *Bit) NName() string         { return s.Name }
func (s *Bit) Statement() *Statement { return s.Source }
func (s *Bit) Exts() []*Statement    { return s.Extensions }

// A Container groups nodes in the data tree.
type Container struct {
	Name       string
	Source     *Statement `json:"-" yaml:"-"`
	Extensions []*Statement

	When        *Value
	IfFeature   []*Value
	Must        []*Must
	Presence    *Value
	Config      TriState
	Status      Status
	Description *Value
	Reference   *Value

	Typedef      []*Typedef
	Grouping     []*Grouping
	DataDefs     []DataDef
	Action       []*Action
	Notification []*Notification
}

func (Container) Kind() string             { return "container" }
func (s *Container) NName() string         { return s.Name }
func (s *Container) Statement() *Statement { return s.Source }
func (s *Container) Exts() []*Statement    { return s.Extensions }
func (*Container) dataDef()                {}

// A Leaf is a scalar node in the data tree.
type Leaf struct {
	Name       string
	Source     *Statement `json:"-" yaml:"-"`
	Extensions []*Statement

	When        *Value
	IfFeature   []*Value
	Type        *Type
	Units       *Value
	Must        []*Must
	Default     *Value
	Config      TriState
	Mandatory   TriState
	Status      Status
	Description *Value
	Reference   *Value
}

func (Leaf) Kind() string             { return "leaf" }
func (s *Leaf) NName() string         { return s.Name }
func (s *Leaf) Statement() *Statement { return s.Source }
func (s *Leaf) Exts() []*Statement    { return s.Extensions }
func (*Leaf) dataDef()                {}

// A LeafList is a sequence of scalars in the data tree.
type LeafList struct {
	Name       string
	Source     *Statement `json:"-" yaml:"-"`
	Extensions []*Statement

	When        *Value
	IfFeature   []*Value
	Type        *Type
	Units       *Value
	Must        []*Must
	Default     []*Value
	Config      TriState
	MinElements *uint64
	MaxElements *MaxElements
	OrderedBy   OrderedBy
	Status      Status
	Description *Value
	Reference   *Value
}

func (LeafList) Kind() string             { return "leaf-list" }
func (s *LeafList) NName() string         { return s.Name }
func (s *LeafList) Statement() *Statement { return s.Source }
func (s *LeafList) Exts() []*Statement    { return s.Extensions }
func (*LeafList) dataDef()                {}

// A List is a keyed sequence of entries in the data tree.
type List struct {
	Name       string
	Source     *Statement `json:"-" yaml:"-"`
	Extensions []*Statement

	When        *Value
	IfFeature   []*Value
	Must        []*Must
	Key         *Value
	Unique      []*Value
	Config      TriState
	MinElements *uint64
	MaxElements *MaxElements
	OrderedBy   OrderedBy
	Status      Status
	Description *Value
	Reference   *Value

	Typedef      []*Typedef
	Grouping     []*Grouping
	DataDefs     []DataDef
	Action       []*Action
	Notification []*Notification
}

func (List) Kind() string             { return "list" }
func (s *List) NName() string         { return s.Name }
func (s *List) Statement() *Statement { return s.Source }
func (s *List) Exts() []*Statement    { return s.Extensions }
func (*List) dataDef()                {}

// A Choice offers a set of alternative subtrees.  Short form cases (a data
// definition directly inside the choice) are materialized as implicit
// Cases named after their single child, so consumers always see a uniform
// shape.
type Choice struct {
	Name       string
	Source     *Statement `json:"-" yaml:"-"`
	Extensions []*Statement

	When        *Value
	IfFeature   []*Value
	Default     *Value
	Config      TriState
	Mandatory   TriState
	Status      Status
	Description *Value
	Reference   *Value

	Case []*Case
}

func (Choice) Kind() string             { return "choice" }
func (s *Choice) NName() string         { return s.Name }
func (s *Choice) Statement() *Statement { return s.Source }
func (s *Choice) Exts() []*Statement    { return s.Extensions }
func (*Choice) dataDef()                {}

// A Case is one alternative of a choice.
type Case struct {
	Name       string
	Source     *Statement `json:"-" yaml:"-"`
	Extensions []*Statement

	When        *Value
	IfFeature   []*Value
	Status      Status
	Description *Value
	Reference   *Value

	DataDefs []DataDef

	// Implicit is true when the case was materialized from a short
	// form data definition.
	Implicit bool
}

func (Case) Kind() string             { return "case" }
func (s *Case) NName() string         { return s.Name }
func (s *Case) Statement() *Statement { return s.Source }
func (s *Case) Exts() []*Statement    { return s.Extensions }

// An AnyData node carries an arbitrary data subtree.
type AnyData struct {
	Name       string
	Source     *Statement `json:"-" yaml:"-"`
	Extensions []*Statement

	When        *Value
	IfFeature   []*Value
	Must        []*Must
	Config      TriState
	Mandatory   TriState
	Status      Status
	Description *Value
	Reference   *Value
}

func (AnyData) Kind() string             { return "anydata" }
func (s *AnyData) NName() string         { return s.Name }
func (s *AnyData) Statement() *Statement { return s.Source }
func (s *AnyData) Exts() []*Statement    { return s.Extensions }
func (*AnyData) dataDef()                {}

// An AnyXML node carries an arbitrary XML subtree.
type AnyXML struct {
	Name       string
	Source     *Statement `json:"-" yaml:"-"`
	Extensions []*Statement

	When        *Value
	IfFeature   []*Value
	Must        []*Must
	Config      TriState
	Mandatory   TriState
	Status      Status
	Description *Value
	Reference   *Value
}

func (AnyXML) Kind() string             { return "anyxml" }
func (s *AnyXML) NName() string         { return s.Name }
func (s *AnyXML) Statement() *Statement { return s.Source }
func (s *AnyXML) Exts() []*Statement    { return s.Extensions }
func (*AnyXML) dataDef()                {}

// A Uses expands a grouping, possibly refining and augmenting it.
type Uses struct {
	Name       string
	Source     *Statement `json:"-" yaml:"-"`
	Extensions []*Statement

	When        *Value
	IfFeature   []*Value
	Status      Status
	Description *Value
	Reference   *Value

	Refine  []*Refine
	Augment []*Augment
}

func (Uses) Kind() string             { return "uses" }
func (s *Uses) NName() string         { return s.Name }
func (s *Uses) Statement() *Statement { return s.Source }
func (s *Uses) Exts() []*Statement    { return s.Extensions }
func (*Uses) dataDef()                {}

// A Refine adjusts a node brought in by uses.  Name is the descendant
// schema node identifier, kept verbatim.
type Refine struct {
	Name       string
	Source     *Statement `json:"-" yaml:"-"`
	Extensions []*Statement

	IfFeature   []*Value
	Must        []*Must
	Presence    *Value
	Default     []*Value
	Config      TriState
	Mandatory   TriState
	MinElements *uint64
	MaxElements *MaxElements
	Description *Value
	Reference   *Value
}

func (Refine) Kind() string             { return "refine" }
func (s *Refine) NName() string         { return s.Name }
func (s *Refine) Statement() *Statement { return s.Source }
func (s *Refine) Exts() []*Statement    { return s.Extensions }

// An Augment adds nodes at a target path.  Name is the target node
// expression, kept verbatim.
type Augment struct {
	Name       string
	Source     *Statement `json:"-" yaml:"-"`
	Extensions []*Statement

	When        *Value
	IfFeature   []*Value
	Status      Status
	Description *Value
	Reference   *Value

	DataDefs     []DataDef
	Case         []*Case
	Action       []*Action
	Notification []*Notification
}

func (Augment) Kind() string             { return "augment" }
func (s *Augment) NName() string         { return s.Name }
func (s *Augment) Statement() *Statement { return s.Source }
func (s *Augment) Exts() []*Statement    { return s.Extensions }

// A Grouping is a reusable subtree definition.
type Grouping struct {
	Name       string
	Source     *Statement `json:"-" yaml:"-"`
	Extensions []*Statement

	Status      Status
	Description *Value
	Reference   *Value

	Typedef      []*Typedef
	Grouping     []*Grouping
	DataDefs     []DataDef
	Action       []*Action
	Notification []*Notification
}

func (Grouping) Kind() string             { return "grouping" }
func (s *Grouping) NName() string         { return s.Name }
func (s *Grouping) Statement() *Statement { return s.Source }
func (s *Grouping) Exts() []*Statement    { return s.Extensions }

// An RPC is an operation defined at module level.
type RPC struct {
	Name       string
	Source     *Statement `json:"-" yaml:"-"`
	Extensions []*Statement

	IfFeature   []*Value
	Must        []*Must
	Status      Status
	Description *Value
	Reference   *Value

	Typedef  []*Typedef
	Grouping []*Grouping
	Input    *Input
	Output   *Output
}

func (RPC) Kind() string             { return "rpc" }
func (s *RPC) NName() string         { return s.Name }
func (s *RPC) Statement() *Statement { return s.Source }
func (s *RPC) Exts() []*Statement    { return s.Extensions }

// An Action is an operation tied to a data node.  Actions differ from RPCs
// only in where in the tree they are found.
type Action struct {
	Name       string
	Source     *Statement `json:"-" yaml:"-"`
	Extensions []*Statement

	IfFeature   []*Value
	Must        []*Must
	Status      Status
	Description *Value
	Reference   *Value

	Typedef  []*Typedef
	Grouping []*Grouping
	Input    *Input
	Output   *Output
}

func (Action) Kind() string             { return "action" }
func (s *Action) NName() string         { return s.Name }
func (s *Action) Statement() *Statement { return s.Source }
func (s *Action) Exts() []*Statement    { return s.Extensions }

// An Input is the input subtree of an rpc or action.
type Input struct {
	Source     *Statement `json:"-" yaml:"-"`
	Extensions []*Statement

	Must     []*Must
	Typedef  []*Typedef
	Grouping []*Grouping
	DataDefs []DataDef
}

func (Input) Kind() string             { return "input" }
func (s *Input) NName() string         { return "input" }
func (s *Input) Statement() *Statement { return s.Source }
func (s *Input) Exts() []*Statement    { return s.Extensions }

// An Output is the output subtree of an rpc or action.
type Output struct {
	Source     *Statement `json:"-" yaml:"-"`
	Extensions []*Statement

	Must     []*Must
	Typedef  []*Typedef
	Grouping []*Grouping
	DataDefs []DataDef
}

func (Output) Kind() string             { return "output" }
func (s *Output) NName() string         { return "output" }
func (s *Output) Statement() *Statement { return s.Source }
func (s *Output) Exts() []*Statement    { return s.Extensions }

// A Notification is an event definition.
type Notification struct {
	Name       string
	Source     *Statement `json:"-" yaml:"-"`
	Extensions []*Statement

	IfFeature   []*Value
	Must        []*Must
	Status      Status
	Description *Value
	Reference   *Value

	Typedef  []*Typedef
	Grouping []*Grouping
	DataDefs []DataDef
}

func (Notification) Kind() string             { return "notification" }
func (s *Notification) NName() string         { return s.Name }
func (s *Notification) Statement() *Statement { return s.Source }
func (s *Notification) Exts() []*Statement    { return s.Extensions }

// A Deviation declares that the device deviates from the schema at the
// target node.  Name is the target node expression, kept verbatim.
type Deviation struct {
	Name       string
	Source     *Statement `json:"-" yaml:"-"`
	Extensions []*Statement

	Description *Value
	Reference   *Value
	Deviate     []*Deviate
}

func (Deviation) Kind() string             { return "deviation" }
func (s *Deviation) NName() string         { return s.Name }
func (s *Deviation) Statement() *Statement { return s.Source }
func (s *Deviation) Exts() []*Statement    { return s.Extensions }

// A DeviateKind is the form a deviate statement takes.
type DeviateKind int

const (
	DeviateNotSupported DeviateKind = iota
	DeviateAdd
	DeviateDelete
	DeviateReplace
)

func (k DeviateKind) String() string {
	switch k {
	case DeviateNotSupported:
		return "not-supported"
	case DeviateAdd:
		return "add"
	case DeviateDelete:
		return "delete"
	case DeviateReplace:
		return "replace"
	default:
		return fmt.Sprintf("deviate-%d", k)
	}
}

// A Deviate is one clause of a deviation.  Which property fields may be
// set depends on DKind; a not-supported deviate has none.
type Deviate struct {
	DKind      DeviateKind
	Source     *Statement `json:"-" yaml:"-"`
	Extensions []*Statement

	Type        *Type
	Units       *Value
	Must        []*Must
	Unique      []*Value
	Default     []*Value
	Config      TriState
	Mandatory   TriState
	MinElements *uint64
	MaxElements *MaxElements
}

func (Deviate) Kind() string             { return "deviate" }
func (s *Deviate) NName() string         { return s.DKind.String() }
func (s *Deviate) Statement() *Statement { return s.Source }
func (s *Deviate) Exts() []*Statement    { return s.Extensions }

// A Feature is a named, advertisable capability.
type Feature struct {
	Name       string
	Source     *Statement `json:"-" yaml:"-"`
	Extensions []*Statement

	IfFeature   []*Value
	Status      Status
	Description *Value
	Reference   *Value
}

func (Feature) Kind() string             { return "feature" }
func (s *Feature) NName() string         { return s.Name }
func (s *Feature) Statement() *Statement { return s.Source }
func (s *Feature) Exts() []*Statement    { return s.Extensions }

// An Identity is a globally unique, extensible name, possibly derived from
// one or more bases.
type Identity struct {
	Name       string
	Source     *Statement `json:"-" yaml:"-"`
	Extensions []*Statement

	IfFeature   []*Value
	Base        []*Value
	Status      Status
	Description *Value
	Reference   *Value
}

func (Identity) Kind() string             { return "identity" }
func (s *Identity) NName() string         { return s.Name }
func (s *Identity) Statement() *Statement { return s.Source }
func (s *Identity) Exts() []*Statement    { return s.Extensions }

// An Extension defines a new statement keyword.
type Extension struct {
	Name       string
	Source     *Statement `json:"-" yaml:"-"`
	Extensions []*Statement

	Argument    *Argument
	Status      Status
	Description *Value
	Reference   *Value
}

func (Extension) Kind() string             { return "extension" }
func (s *Extension) NName() string         { return s.Name }
func (s *Extension) Statement() *Statement { return s.Source }
func (s *Extension) Exts() []*Statement    { return s.Extensions }

// An Argument names the argument of an extension and whether it maps to an
// XML element in YIN.
type Argument struct {
	Name       string
	Source     *Statement `json:"-" yaml:"-"`
	Extensions []*Statement

	YinElement TriState
}

func (Argument) Kind() string             { return "argument" }
func (s *Argument) NName() string         { return s.Name }
func (s *Argument) Statement() *Statement { return s.Source }
func (s *Argument) Exts() []*Statement    { return s.Extensions }
