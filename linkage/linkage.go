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

// Package linkage mounts a linking attack: it joins a PII table against
// an anonymized table on their shared quasi-identifiers to recover the
// identities that were suppressed from the anonymized table.
package linkage

import (
	log "github.com/golang/glog"

	"github.com/privacylab/tabledp/checks"
	"github.com/privacylab/tabledp/table"
)

// Result holds the outcome of a linking attack.
type Result struct {
	// Recovered maps a row index of the anonymized table to the single
	// name whose quasi-identifier tuple matches that row. Only rows with
	// exactly one matching name appear here.
	Recovered map[int]string
	// Ambiguous counts anonymized rows matching two or more names. Such
	// rows are never attributed to anyone.
	Ambiguous int
	// Unmatched counts anonymized rows matching no name at all.
	Unmatched int
}

// Count returns the number of uniquely recovered rows.
func (r *Result) Count() int {
	return len(r.Recovered)
}

// Link joins the PII table pii against the anonymized table anon on the
// qi columns, which must be present in both schemas. nameColumn is the
// identity column of pii. A row of anon is recovered iff its
// quasi-identifier tuple matches exactly one row of pii; rows matching
// zero or several rows are counted but not attributed.
//
// The join is a hash-join: one pass over pii to index names by
// quasi-identifier tuple, one pass over anon to probe the index.
func Link(pii, anon *table.RecordSet, nameColumn string, qi []string, opts table.KeyOptions) (*Result, error) {
	if err := checks.CheckQuasiIdentifiers(qi); err != nil {
		return nil, err
	}
	if err := pii.Schema().Contains(nameColumn); err != nil {
		return nil, err
	}
	nameIdx, _ := pii.Schema().Lookup(nameColumn)

	piiKeys, err := table.ProjectionKeys(pii, qi, opts)
	if err != nil {
		return nil, err
	}
	anonKeys, err := table.ProjectionKeys(anon, qi, opts)
	if err != nil {
		return nil, err
	}

	names := make(map[string][]string, pii.Len())
	for row, key := range piiKeys {
		names[key] = append(names[key], pii.Record(row).Value(nameIdx).Text())
	}

	res := &Result{Recovered: make(map[int]string)}
	for row, key := range anonKeys {
		switch matched := names[key]; len(matched) {
		case 0:
			res.Unmatched++
		case 1:
			res.Recovered[row] = matched[0]
		default:
			res.Ambiguous++
		}
	}
	log.V(1).Infof("linkage: recovered %d of %d rows (%d ambiguous, %d unmatched)", res.Count(), anon.Len(), res.Ambiguous, res.Unmatched)
	return res, nil
}
