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

// KeyOptions configures how quasi-identifier values are canonicalized
// when forming grouping and join keys. The zero value compares values
// exactly: strings byte-wise and case-sensitive, numeric values by
// numeric equality regardless of Int or Float kind.
type KeyOptions struct {
	// FoldCase lower-cases string values before comparison, so "Cambridge"
	// and "cambridge" form one group.
	FoldCase bool
}

// ProjectionKeys returns, for every row of rs, the canonical composite
// key of the row's projection onto the qi columns. All keys are built in
// a single pass over the rows; the per-row cost is linear in len(qi).
// A qi column absent from the schema fails with a schema mismatch.
//
// The encoding is injective: rows receive equal keys if and only if
// their projected tuples are equal under opts.
func ProjectionKeys(rs *RecordSet, qi []string, opts KeyOptions) ([]string, error) {
	if err := rs.Schema().Contains(qi...); err != nil {
		return nil, err
	}
	positions := make([]int, len(qi))
	for i, col := range qi {
		positions[i], _ = rs.Schema().Lookup(col)
	}
	keys := make([]string, rs.Len())
	var buf []byte
	for row := 0; row < rs.Len(); row++ {
		buf = buf[:0]
		rec := rs.Record(row)
		for _, pos := range positions {
			buf = rec.Value(pos).appendKey(buf, opts)
		}
		keys[row] = string(buf)
	}
	return keys, nil
}

// GroupBy partitions rs by the projection onto the qi columns, returning
// a map from canonical projection key to the indices of the rows sharing
// that key. An empty qi puts every row in one group under the empty key.
// An empty rs yields no groups at all.
//
// The grouping is built in one pass, costing O(rows · len(qi)) plus the
// hashing of each composite key; there is no pairwise row comparison.
func GroupBy(rs *RecordSet, qi []string, opts KeyOptions) (map[string][]int, error) {
	keys, err := ProjectionKeys(rs, qi, opts)
	if err != nil {
		return nil, err
	}
	groups := make(map[string][]int)
	for row, key := range keys {
		groups[key] = append(groups[key], row)
	}
	return groups, nil
}
