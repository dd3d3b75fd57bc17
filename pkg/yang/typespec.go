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

// This file defines the type-specification union.  The set of
// specifications is fixed by RFC 7950, so TypeSpec is a sealed interface:
// only the types below implement it.  A type statement with no body has a
// nil TypeSpec.

// A TypeSpec is the body of a type statement: exactly one of the
// restriction or specification alternatives of RFC 7950 §9.
type TypeSpec interface {
	typeSpec()
}

// A NumericRestriction restricts an integer type to a range.
type NumericRestriction struct {
	Range *Range
}

func (*NumericRestriction) typeSpec() {}

// A Decimal64 specifies the decimal64 type: the number of fraction digits
// and an optional range.
type Decimal64 struct {
	FractionDigits uint8
	Range          *Range
}

func (*Decimal64) typeSpec() {}

// A StringRestriction restricts the string type by length and patterns.
// Patterns are in source order.
type StringRestriction struct {
	Length  *Length
	Pattern []*Pattern
}

func (*StringRestriction) typeSpec() {}

// A BinaryRestriction restricts the binary type by length.
type BinaryRestriction struct {
	Length *Length
}

func (*BinaryRestriction) typeSpec() {}

// An Enumeration specifies an enumeration's values, in source order.
type Enumeration struct {
	Enum []*Enum
}

func (*Enumeration) typeSpec() {}

// A Leafref specifies the leafref type.  Path is the target path
// expression, kept verbatim.
type Leafref struct {
	Path            *Value
	RequireInstance TriState
}

func (*Leafref) typeSpec() {}

// An Identityref specifies the identityref type by one or more bases.
type Identityref struct {
	Base []*Value
}

func (*Identityref) typeSpec() {}

// An InstanceIdentifier specifies the instance-identifier type.
type InstanceIdentifier struct {
	RequireInstance TriState
}

func (*InstanceIdentifier) typeSpec() {}

// A Bits specifies a bits type's flags, in source order.
type Bits struct {
	Bit []*Bit
}

func (*Bits) typeSpec() {}

// A Union specifies a union's member types, in source order.  Members may
// themselves be unions; the recursion terminates because every leaf member
// has a named base.
type Union struct {
	Type []*Type
}

func (*Union) typeSpec() {}
