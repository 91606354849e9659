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
	"errors"
	"fmt"
)

// ErrSchemaMismatch is wrapped by every error reporting columns that are
// absent from a schema or records that do not fit one. Callers can match
// the failure class with errors.Is.
var ErrSchemaMismatch = errors.New("schema mismatch")

// Column describes one column of a Schema: its name and the scalar kind
// every value in the column holds.
type Column struct {
	Name string
	Kind Kind
}

// Schema is the ordered set of columns shared by every Record of a
// RecordSet. A Schema is immutable after construction.
type Schema struct {
	cols  []Column
	index map[string]int
}

// NewSchema builds a Schema from the given columns. Column names must be
// non-empty and unique.
func NewSchema(cols ...Column) (Schema, error) {
	index := make(map[string]int, len(cols))
	for i, col := range cols {
		if col.Name == "" {
			return Schema{}, fmt.Errorf("%w: column %d has an empty name", ErrSchemaMismatch, i)
		}
		if _, ok := index[col.Name]; ok {
			return Schema{}, fmt.Errorf("%w: duplicate column %q", ErrSchemaMismatch, col.Name)
		}
		index[col.Name] = i
	}
	return Schema{cols: append([]Column(nil), cols...), index: index}, nil
}

// Len returns the number of columns.
func (s Schema) Len() int {
	return len(s.cols)
}

// Column returns the i-th column.
func (s Schema) Column(i int) Column {
	return s.cols[i]
}

// Columns returns a copy of the ordered column list.
func (s Schema) Columns() []Column {
	return append([]Column(nil), s.cols...)
}

// Lookup returns the position of the named column and whether it exists.
func (s Schema) Lookup(name string) (int, bool) {
	i, ok := s.index[name]
	return i, ok
}

// Contains returns an error naming the first of the given columns that
// is absent from the schema, or nil if all are present.
func (s Schema) Contains(names ...string) error {
	for _, name := range names {
		if _, ok := s.index[name]; !ok {
			return fmt.Errorf("%w: column %q not in schema", ErrSchemaMismatch, name)
		}
	}
	return nil
}
