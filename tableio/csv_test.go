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

package tableio

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/privacylab/tabledp/table"
)

func visitSchema(t *testing.T) table.Schema {
	t.Helper()
	schema, err := table.NewSchema(
		table.Column{Name: "name", Kind: table.String},
		table.Column{Name: "zip", Kind: table.Int},
		table.Column{Name: "spent", Kind: table.Float},
	)
	require.NoError(t, err)
	return schema
}

func TestLoadParsesTypedColumns(t *testing.T) {
	in := strings.Join([]string{
		"name,zip,spent",
		"alice,2139,12.5",
		"bob,2144,0",
	}, "\n")

	rs, err := Load(strings.NewReader(in), visitSchema(t))
	require.NoError(t, err)
	require.Equal(t, 2, rs.Len())

	v, err := rs.Value(0, "zip")
	require.NoError(t, err)
	assert.Equal(t, table.IntValue(2139), v)

	v, err = rs.Value(0, "spent")
	require.NoError(t, err)
	assert.Equal(t, table.FloatValue(12.5), v)

	v, err = rs.Value(1, "name")
	require.NoError(t, err)
	assert.Equal(t, "bob", v.Str)
}

func TestLoadEmptyInput(t *testing.T) {
	_, err := Load(strings.NewReader(""), visitSchema(t))
	assert.ErrorIs(t, err, table.ErrSchemaMismatch)
}

func TestLoadHeaderMismatch(t *testing.T) {
	in := "name,postcode,spent\nalice,2139,12.5\n"
	_, err := Load(strings.NewReader(in), visitSchema(t))
	assert.ErrorIs(t, err, table.ErrSchemaMismatch)
}

func TestLoadMalformedField(t *testing.T) {
	in := "name,zip,spent\nalice,not-a-zip,12.5\n"
	_, err := Load(strings.NewReader(in), visitSchema(t))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "zip")
}

func TestLoadWrongArity(t *testing.T) {
	in := "name,zip,spent\nalice,2139\n"
	_, err := Load(strings.NewReader(in), visitSchema(t))
	assert.Error(t, err)
}

func TestLoadHeaderOnly(t *testing.T) {
	rs, err := Load(strings.NewReader("name,zip,spent\n"), visitSchema(t))
	require.NoError(t, err)
	assert.Equal(t, 0, rs.Len())
}
