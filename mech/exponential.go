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

package mech

import (
	"errors"
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"

	"github.com/privacylab/tabledp/checks"
	"github.com/privacylab/tabledp/rand"
)

// ErrNumericOverflow reports a score/epsilon combination that produced a
// non-finite or degenerate weight vector. Callers can match it with
// errors.Is.
var ErrNumericOverflow = errors.New("numeric overflow")

// Scorer rates a candidate against the dataset. It must be a pure
// function, and its global sensitivity, the most its output can change
// when one record of the dataset is added or removed, must be bounded by
// the sensitivity passed to Exponential.
type Scorer[D, C any] func(data D, candidate C) float64

// Exponential selects one candidate from the finite set candidates with
// probability proportional to exp(ε·u/(2Δu)), where u is the score the
// scorer assigns to the candidate and Δu is the scorer's sensitivity.
// The selection is ε-differentially private under the stated sensitivity
// bound, and the returned value is always a member of candidates, never
// a noised value.
//
// Candidates are scored in slice order, so its ordering fixes the
// probability vector. Candidates with equal scores are selected with
// equal probability.
func Exponential[D, C any](data D, candidates []C, score Scorer[D, C], sensitivity, epsilon float64) (C, error) {
	var zero C
	if err := checks.CheckCandidateCount(len(candidates)); err != nil {
		return zero, err
	}
	if err := checks.CheckSensitivityStrict(sensitivity); err != nil {
		return zero, err
	}
	if err := checks.CheckEpsilonStrict(epsilon); err != nil {
		return zero, err
	}

	scores := make([]float64, len(candidates))
	for i, c := range candidates {
		s := score(data, c)
		if math.IsInf(s, 0) || math.IsNaN(s) {
			return zero, fmt.Errorf("%w: score of candidate %d is %f", ErrNumericOverflow, i, s)
		}
		scores[i] = s
	}

	// Subtracting the maximum score before exponentiating cancels a common
	// factor from numerator and denominator of the normalized
	// probabilities, keeping every un-normalized weight within (0, 1].
	maxScore := floats.Max(scores)
	weights := make([]float64, len(scores))
	for i, s := range scores {
		weights[i] = math.Exp(epsilon * (s - maxScore) / (2 * sensitivity))
	}
	total := floats.Sum(weights)
	if total == 0 || math.IsInf(total, 0) || math.IsNaN(total) {
		return zero, fmt.Errorf("%w: sum of weights is %f", ErrNumericOverflow, total)
	}

	// Categorical draw by cumulative-distribution inversion: a uniform
	// draw scaled to the total weight, placed in the cumulative weight
	// vector by binary search.
	floats.CumSum(weights, weights)
	u := rand.Uniform() * total
	i := sort.SearchFloat64s(weights, u)
	if i >= len(candidates) {
		// Floating point round-off can leave the last cumulative weight
		// marginally below total.
		i = len(candidates) - 1
	}
	return candidates[i], nil
}
