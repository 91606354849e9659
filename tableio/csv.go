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

// Package tableio loads delimited external records into RecordSets with
// a declared schema. It guarantees a consistent column set across rows,
// stable column ordering, and deterministic typed parsing.
package tableio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/privacylab/tabledp/table"
)

// Load reads comma-delimited records from r into a RecordSet with the
// given schema. The first row must be a header naming exactly the
// schema's columns in schema order; every following row is parsed
// field by field according to the declared column kinds. Any malformed
// field fails the whole load, no partial RecordSet is returned.
func Load(r io.Reader, schema table.Schema) (*table.RecordSet, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = schema.Len()

	header, err := cr.Read()
	if err == io.EOF {
		return nil, fmt.Errorf("%w: input is empty, expected a header row", table.ErrSchemaMismatch)
	}
	if err != nil {
		return nil, fmt.Errorf("couldn't read header row: %v", err)
	}
	for i, name := range header {
		if want := schema.Column(i).Name; name != want {
			return nil, fmt.Errorf("%w: header column %d is %q, schema declares %q", table.ErrSchemaMismatch, i, name, want)
		}
	}

	var records []table.Record
	for row := 1; ; row++ {
		fields, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("couldn't read row %d: %v", row, err)
		}
		values := make([]table.Value, len(fields))
		for i, field := range fields {
			v, err := parseField(field, schema.Column(i).Kind)
			if err != nil {
				return nil, fmt.Errorf("row %d column %q: %v", row, schema.Column(i).Name, err)
			}
			values[i] = v
		}
		records = append(records, table.NewRecord(values...))
	}
	return table.NewRecordSet(schema, records)
}

// LoadFile opens path and loads it via Load.
func LoadFile(path string, schema table.Schema) (*table.RecordSet, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("couldn't open %q: %v", path, err)
	}
	defer f.Close()
	return Load(f, schema)
}

func parseField(field string, kind table.Kind) (table.Value, error) {
	switch kind {
	case table.Int:
		i, err := strconv.ParseInt(field, 10, 64)
		if err != nil {
			return table.Value{}, fmt.Errorf("couldn't parse %q as int", field)
		}
		return table.IntValue(i), nil
	case table.Float:
		f, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return table.Value{}, fmt.Errorf("couldn't parse %q as float", field)
		}
		return table.FloatValue(f), nil
	}
	return table.StringValue(field), nil
}
