//
// Copyright 2024 PrivacyLab Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//

package table

import (
	"strconv"
	"strings"
)

// Kind enumerates the scalar types a column may hold.
type Kind int

// Column kinds supported by the tabular data model.
const (
	String Kind = iota
	Int
	Float
)

func (k Kind) String() string {
	switch k {
	case String:
		return "string"
	case Int:
		return "int"
	case Float:
		return "float"
	}
	return "unknown"
}

// Value is one scalar cell of a Record, tagged with its Kind. Only the
// field matching the Kind is meaningful.
type Value struct {
	Kind  Kind
	Str   string
	Int   int64
	Float float64
}

// StringValue returns a Value holding the string s.
func StringValue(s string) Value {
	return Value{Kind: String, Str: s}
}

// IntValue returns a Value holding the integer i.
func IntValue(i int64) Value {
	return Value{Kind: Int, Int: i}
}

// FloatValue returns a Value holding the float f.
func FloatValue(f float64) Value {
	return Value{Kind: Float, Float: f}
}

// Text returns the display form of the value.
func (v Value) Text() string {
	switch v.Kind {
	case Int:
		return strconv.FormatInt(v.Int, 10)
	case Float:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	}
	return v.Str
}

// canonical returns the comparison form of the value under opts. Numeric
// values of either kind canonicalize to the same form when they denote
// the same number, so an Int column in one table can join against a
// Float column in another.
func (v Value) canonical(opts KeyOptions) string {
	switch v.Kind {
	case Int:
		return strconv.FormatFloat(float64(v.Int), 'g', -1, 64)
	case Float:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	}
	if opts.FoldCase {
		return strings.ToLower(v.Str)
	}
	return v.Str
}

// appendKey appends an injective encoding of the value's canonical form
// to dst. Fields are length-prefixed so that distinct tuples can never
// produce the same composite key, whatever bytes the values contain.
func (v Value) appendKey(dst []byte, opts KeyOptions) []byte {
	field := v.canonical(opts)
	dst = strconv.AppendInt(dst, int64(len(field)), 10)
	dst = append(dst, ':')
	dst = append(dst, field...)
	return dst
}
