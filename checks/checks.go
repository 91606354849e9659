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

// Package checks contains checks for the parameters of differentially
// private mechanisms and anonymity queries.
package checks

import (
	"errors"
	"fmt"
	"math"

	log "github.com/golang/glog"
)

// ErrInvalidParameter is wrapped by every error returned from this package.
// Callers can match the failure class with errors.Is.
var ErrInvalidParameter = errors.New("invalid parameter")

const (
	epsilonName     = "Epsilon"
	sensitivityName = "Sensitivity"
	valueName       = "Value"
)

func verifyName(defaultName string, nameSlice []string) (string, error) {
	var name string
	switch len(nameSlice) {
	case 0:
		name = defaultName
	case 1:
		name = nameSlice[0]
	default:
		return "", fmt.Errorf("%w: there should be 0 or 1 'name' parameter, got %d", ErrInvalidParameter, len(nameSlice))
	}
	return name, nil
}

// CheckEpsilonStrict returns an error if ε is nonpositive, NaN, or ±∞.
func CheckEpsilonStrict(epsilon float64, name ...string) error {
	epsName, err := verifyName(epsilonName, name)
	if err != nil {
		return err
	}
	if epsilon <= 0 || math.IsInf(epsilon, 0) || math.IsNaN(epsilon) {
		return fmt.Errorf("%w: %s is %f, must be strictly positive and finite", ErrInvalidParameter, epsName, epsilon)
	}
	return nil
}

// CheckSensitivityStrict returns an error if the sensitivity is
// nonpositive, NaN, or ±∞.
func CheckSensitivityStrict(sensitivity float64, name ...string) error {
	sensName, err := verifyName(sensitivityName, name)
	if err != nil {
		return err
	}
	if sensitivity <= 0 || math.IsInf(sensitivity, 0) || math.IsNaN(sensitivity) {
		return fmt.Errorf("%w: %s is %f, must be strictly positive and finite", ErrInvalidParameter, sensName, sensitivity)
	}
	return nil
}

// CheckFinite returns an error if x is NaN or ±∞.
func CheckFinite(x float64, name ...string) error {
	valName, err := verifyName(valueName, name)
	if err != nil {
		return err
	}
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return fmt.Errorf("%w: %s is %f, must be finite", ErrInvalidParameter, valName, x)
	}
	return nil
}

// CheckK returns an error if the anonymity parameter k is less than 1.
func CheckK(k int) error {
	if k < 1 {
		return fmt.Errorf("%w: K is %d, must be at least 1", ErrInvalidParameter, k)
	}
	if k == 1 {
		log.Warningf("K is 1: every record set is trivially 1-anonymous")
	}
	return nil
}

// CheckCandidateCount returns an error if the candidate set is empty.
func CheckCandidateCount(count int) error {
	if count < 1 {
		return fmt.Errorf("%w: candidate set is empty, must contain at least one candidate", ErrInvalidParameter)
	}
	return nil
}

// CheckQuasiIdentifiers returns an error if the quasi-identifier set is
// empty or contains a duplicate column name.
func CheckQuasiIdentifiers(qi []string) error {
	if len(qi) == 0 {
		return fmt.Errorf("%w: quasi-identifier set is empty, must name at least one column", ErrInvalidParameter)
	}
	seen := make(map[string]bool, len(qi))
	for _, col := range qi {
		if seen[col] {
			return fmt.Errorf("%w: quasi-identifier %q appears more than once", ErrInvalidParameter, col)
		}
		seen[col] = true
	}
	return nil
}
