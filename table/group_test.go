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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustRecordSet(t *testing.T, schema Schema, records []Record) *RecordSet {
	t.Helper()
	rs, err := NewRecordSet(schema, records)
	require.NoError(t, err)
	return rs
}

func TestGroupByPartitionsByProjection(t *testing.T) {
	schema := personSchema(t)
	rs := mustRecordSet(t, schema, []Record{
		NewRecord(StringValue("alice"), StringValue("1990-01-07"), IntValue(2139)),
		NewRecord(StringValue("bob"), StringValue("1984-11-02"), IntValue(2144)),
		NewRecord(StringValue("carol"), StringValue("1990-01-07"), IntValue(2139)),
	})

	groups, err := GroupBy(rs, []string{"dob", "zip"}, KeyOptions{})
	require.NoError(t, err)
	require.Len(t, groups, 2)

	var sizes []int
	for _, rows := range groups {
		sizes = append(sizes, len(rows))
	}
	assert.ElementsMatch(t, []int{2, 1}, sizes)
}

func TestGroupByMissingColumn(t *testing.T) {
	schema := personSchema(t)
	rs := mustRecordSet(t, schema, []Record{
		NewRecord(StringValue("alice"), StringValue("1990-01-07"), IntValue(2139)),
	})
	_, err := GroupBy(rs, []string{"dob", "ssn"}, KeyOptions{})
	assert.ErrorIs(t, err, ErrSchemaMismatch)
}

func TestGroupByEmptyQuasiIdentifiers(t *testing.T) {
	schema := personSchema(t)
	rs := mustRecordSet(t, schema, []Record{
		NewRecord(StringValue("alice"), StringValue("1990-01-07"), IntValue(2139)),
		NewRecord(StringValue("bob"), StringValue("1984-11-02"), IntValue(2144)),
	})

	groups, err := GroupBy(rs, nil, KeyOptions{})
	require.NoError(t, err)
	require.Len(t, groups, 1, "empty projection puts the whole table in one group")
	assert.Equal(t, []int{0, 1}, groups[""])
}

func TestGroupByEmptyRecordSet(t *testing.T) {
	schema := personSchema(t)
	rs := mustRecordSet(t, schema, nil)

	for _, qi := range [][]string{nil, {"zip"}, {"dob", "zip"}} {
		groups, err := GroupBy(rs, qi, KeyOptions{})
		require.NoError(t, err)
		assert.Empty(t, groups, "an empty record set has no groups")
	}
}

// Keys must be injective: tuples assembled from different value splits
// may not collide even when the concatenated bytes are identical.
func TestProjectionKeysInjective(t *testing.T) {
	schema, err := NewSchema(
		Column{Name: "a", Kind: String},
		Column{Name: "b", Kind: String},
	)
	require.NoError(t, err)

	rs := mustRecordSet(t, schema, []Record{
		NewRecord(StringValue("ab"), StringValue("c")),
		NewRecord(StringValue("a"), StringValue("bc")),
		NewRecord(StringValue("a:1"), StringValue("x")),
		NewRecord(StringValue("a"), StringValue(":1x")),
	})

	keys, err := ProjectionKeys(rs, []string{"a", "b"}, KeyOptions{})
	require.NoError(t, err)
	seen := make(map[string]bool)
	for _, key := range keys {
		assert.False(t, seen[key], "distinct tuples must produce distinct keys, got a collision on %q", key)
		seen[key] = true
	}
}

func TestKeyOptionsFoldCase(t *testing.T) {
	schema := personSchema(t)
	rs := mustRecordSet(t, schema, []Record{
		NewRecord(StringValue("alice"), StringValue("1990-JAN-07"), IntValue(2139)),
		NewRecord(StringValue("bob"), StringValue("1990-jan-07"), IntValue(2139)),
	})

	exact, err := GroupBy(rs, []string{"dob", "zip"}, KeyOptions{})
	require.NoError(t, err)
	assert.Len(t, exact, 2, "exact comparison keeps differing cases apart")

	folded, err := GroupBy(rs, []string{"dob", "zip"}, KeyOptions{FoldCase: true})
	require.NoError(t, err)
	assert.Len(t, folded, 1, "case folding merges the two spellings")
}

// An Int column in one table must join against a Float column holding
// the same numbers in another, so both kinds canonicalize alike.
func TestNumericKeysMatchAcrossKinds(t *testing.T) {
	intSchema, err := NewSchema(Column{Name: "zip", Kind: Int})
	require.NoError(t, err)
	floatSchema, err := NewSchema(Column{Name: "zip", Kind: Float})
	require.NoError(t, err)

	ints := mustRecordSet(t, intSchema, []Record{NewRecord(IntValue(2139))})
	floats := mustRecordSet(t, floatSchema, []Record{NewRecord(FloatValue(2139.0))})

	intKeys, err := ProjectionKeys(ints, []string{"zip"}, KeyOptions{})
	require.NoError(t, err)
	floatKeys, err := ProjectionKeys(floats, []string{"zip"}, KeyOptions{})
	require.NoError(t, err)
	assert.Equal(t, intKeys[0], floatKeys[0])
}

// The grouping is a single hash pass, linear in rows times projected
// columns. A set far beyond what pairwise comparison could handle in
// test time must still group instantly.
func TestGroupByScalesLinearly(t *testing.T) {
	schema := personSchema(t)
	const rows = 200000
	records := make([]Record, rows)
	for i := 0; i < rows; i++ {
		records[i] = NewRecord(
			StringValue("p"),
			StringValue("1990-01-07"),
			IntValue(int64(i%1000)),
		)
	}
	rs := mustRecordSet(t, schema, records)

	groups, err := GroupBy(rs, []string{"dob", "zip"}, KeyOptions{})
	require.NoError(t, err)
	require.Len(t, groups, 1000)
	for _, g := range groups {
		assert.Len(t, g, rows/1000)
	}
}
