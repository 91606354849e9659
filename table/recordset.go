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

// Package table defines the in-memory tabular data model shared by the
// linkage and anonymity queries: scalar Values, Schemas, Records, and
// immutable RecordSets with single-pass grouping by quasi-identifiers.
package table

import (
	"fmt"
)

// Record is one row of a RecordSet. Records are immutable once built;
// their values are ordered according to the owning RecordSet's Schema.
type Record struct {
	values []Value
}

// NewRecord builds a Record from the given values, in schema order.
func NewRecord(values ...Value) Record {
	return Record{values: append([]Value(nil), values...)}
}

// Len returns the number of values in the record.
func (r Record) Len() int {
	return len(r.values)
}

// Value returns the i-th value of the record.
func (r Record) Value(i int) Value {
	return r.values[i]
}

// RecordSet is an ordered sequence of Records sharing one Schema.
// RecordSets are immutable after construction and freely shareable
// across concurrent readers.
type RecordSet struct {
	schema  Schema
	records []Record
}

// NewRecordSet builds a RecordSet, verifying that every record has
// exactly the schema's columns with matching kinds.
func NewRecordSet(schema Schema, records []Record) (*RecordSet, error) {
	for row, rec := range records {
		if rec.Len() != schema.Len() {
			return nil, fmt.Errorf("%w: row %d has %d values, schema has %d columns", ErrSchemaMismatch, row, rec.Len(), schema.Len())
		}
		for i := 0; i < rec.Len(); i++ {
			if got, want := rec.Value(i).Kind, schema.Column(i).Kind; got != want {
				return nil, fmt.Errorf("%w: row %d column %q holds %v, schema declares %v", ErrSchemaMismatch, row, schema.Column(i).Name, got, want)
			}
		}
	}
	return &RecordSet{schema: schema, records: append([]Record(nil), records...)}, nil
}

// Schema returns the record set's schema.
func (rs *RecordSet) Schema() Schema {
	return rs.schema
}

// Len returns the number of records.
func (rs *RecordSet) Len() int {
	return len(rs.records)
}

// Record returns the i-th record.
func (rs *RecordSet) Record(i int) Record {
	return rs.records[i]
}

// Value returns the value at the given row in the named column.
func (rs *RecordSet) Value(row int, column string) (Value, error) {
	i, ok := rs.schema.Lookup(column)
	if !ok {
		return Value{}, fmt.Errorf("%w: column %q not in schema", ErrSchemaMismatch, column)
	}
	return rs.records[row].Value(i), nil
}

// DropColumns returns a new RecordSet without the named columns, each
// record re-projected onto the remaining schema. The receiver is left
// untouched. Dropping a column that is absent fails with a schema
// mismatch.
func (rs *RecordSet) DropColumns(names ...string) (*RecordSet, error) {
	if err := rs.schema.Contains(names...); err != nil {
		return nil, err
	}
	drop := make(map[string]bool, len(names))
	for _, name := range names {
		drop[name] = true
	}
	var keep []int
	var cols []Column
	for i, col := range rs.schema.cols {
		if !drop[col.Name] {
			keep = append(keep, i)
			cols = append(cols, col)
		}
	}
	schema, err := NewSchema(cols...)
	if err != nil {
		return nil, err
	}
	records := make([]Record, rs.Len())
	for row, rec := range rs.records {
		values := make([]Value, len(keep))
		for j, i := range keep {
			values[j] = rec.Value(i)
		}
		records[row] = Record{values: values}
	}
	return &RecordSet{schema: schema, records: records}, nil
}
