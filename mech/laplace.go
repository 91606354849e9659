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

// Package mech contains the randomized mechanisms: Laplace noise for
// numeric query answers and the exponential mechanism for selecting
// from a discrete candidate set.
package mech

import (
	"math"

	"github.com/privacylab/tabledp/checks"
	"github.com/privacylab/tabledp/rand"
)

// granularityParam determines the resolution of the numerical noise that
// is being generated relative to the sensitivity and privacy parameter
// epsilon. Larger values result in more fine grained noise, but increase
// the chance of sampling inaccuracies due to overflows.
//
// This parameter should be a power of 2.
var granularityParam = math.Exp2(40)

// Laplace returns value + X, where X is drawn from a zero-centered
// Laplace distribution with scale sensitivity/epsilon, making the output
// ε-differentially private for any query whose true global sensitivity
// is bounded by the supplied sensitivity. Each call is an independent
// draw.
//
// The noise is based on a geometric sampling mechanism that is robust
// against unintentional privacy leaks due to artifacts of floating point
// arithmetic, rather than a textbook inverse-CDF transform.
func Laplace(value, sensitivity, epsilon float64) (float64, error) {
	if err := checks.CheckFinite(value); err != nil {
		return 0, err
	}
	if err := checks.CheckSensitivityStrict(sensitivity); err != nil {
		return 0, err
	}
	if err := checks.CheckEpsilonStrict(epsilon); err != nil {
		return 0, err
	}
	return addLaplace(value, epsilon, sensitivity), nil
}

// addLaplace adds Laplace noise scaled to the given epsilon and
// sensitivity to the specified float64.
func addLaplace(x, epsilon, sensitivity float64) float64 {
	granularity := ceilPowerOfTwo((sensitivity / epsilon) / granularityParam)
	sample := twoSidedGeometric(granularity * epsilon / (sensitivity + granularity))
	return roundToMultipleOfPowerOfTwo(x, granularity) + float64(sample)*granularity
}

// geometric draws a sample from a geometric distribution with parameter
//
//	p = 1 - e^-λ.
//
// More precisely, it returns the number of Bernoulli trials until the
// first success where the success probability is p = 1 - e^-λ. The
// returned sample is truncated to the max int64 value.
func geometric(lambda float64) int64 {
	// Return a truncated sample in the case that the sample exceeds the
	// max int64.
	if rand.Uniform() > -1.0*math.Expm1(-1.0*lambda*math.MaxInt64) {
		return math.MaxInt64
	}

	// Perform a binary search for the sample in the interval from 1 to max
	// int64. Each iteration splits the interval in two and randomly keeps
	// either the left or the right subinterval depending on the respective
	// probability of the sample being contained in them. The search ends
	// once the interval only contains a single sample.
	var left int64 = 0              // exclusive bound
	var right int64 = math.MaxInt64 // inclusive bound

	for left+1 < right {
		// Compute a midpoint that divides the probability mass of the
		// current interval approximately evenly between the left and right
		// subinterval. The resulting midpoint will be less or equal to the
		// arithmetic mean of the interval, which reduces the expected number
		// of iterations compared to searching on the arithmetic mean.
		mid := left - int64(math.Floor((math.Log(0.5)+math.Log1p(math.Exp(lambda*float64(left-right))))/lambda))
		// Ensure that mid is contained in the search interval. This is a
		// safeguard to account for potential mathematical inaccuracies due to
		// finite precision arithmetic.
		if mid <= left {
			mid = left + 1
		} else if mid >= right {
			mid = right - 1
		}

		// Probability that the sample is at most mid, i.e.,
		//   q = Pr[X ≤ mid | left < X ≤ right]
		// where X denotes the sample. The value of q should be approximately
		// one half.
		q := math.Expm1(lambda*float64(left-mid)) / math.Expm1(lambda*float64(left-right))
		if rand.Uniform() <= q {
			right = mid
		} else {
			left = mid
		}
	}
	return right
}

// twoSidedGeometric draws a sample from a geometric distribution that is
// mirrored at 0. The non-negative part of the distribution's PDF matches
// the PDF of a geometric distribution of parameter p = 1 - e^-λ that is
// shifted to the left by 1 and scaled accordingly.
func twoSidedGeometric(lambda float64) int64 {
	var sample int64 = 0
	var sign int64 = -1
	// Keep a sample of 0 only if the sign is positive. Otherwise, the
	// probability of 0 would be twice as high as it should be.
	for sample == 0 && sign == -1 {
		sample = geometric(lambda) - 1
		sign = int64(rand.Sign())
	}
	return sample * sign
}
