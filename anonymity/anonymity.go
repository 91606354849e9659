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

// Package anonymity checks k-anonymity of record sets with respect to a
// caller-supplied set of quasi-identifying columns.
package anonymity

import (
	"github.com/privacylab/tabledp/checks"
	"github.com/privacylab/tabledp/table"
)

// IsKAnonymous reports whether every combination of qi values occurring
// in rs is shared by at least k records. The qi columns must belong to
// the schema of rs; k must be at least 1.
//
// An empty record set is vacuously k-anonymous for any k. An empty qi
// treats the whole table as one group, so the answer is true iff the row
// count is at least k.
//
// The check is a single hash-grouping pass costing O(rows · len(qi));
// no pair of rows is ever compared directly.
func IsKAnonymous(k int, qi []string, rs *table.RecordSet, opts table.KeyOptions) (bool, error) {
	if err := checks.CheckK(k); err != nil {
		return false, err
	}
	groups, err := table.GroupBy(rs, qi, opts)
	if err != nil {
		return false, err
	}
	for _, rows := range groups {
		if len(rows) < k {
			return false, nil
		}
	}
	return true, nil
}

// MinGroupSize returns the size of the smallest quasi-identifier group
// of rs, which is the largest k for which rs is k-anonymous. An empty
// record set yields 0.
func MinGroupSize(qi []string, rs *table.RecordSet, opts table.KeyOptions) (int, error) {
	groups, err := table.GroupBy(rs, qi, opts)
	if err != nil {
		return 0, err
	}
	min := 0
	for _, rows := range groups {
		if min == 0 || len(rows) < min {
			min = len(rows)
		}
	}
	return min, nil
}
