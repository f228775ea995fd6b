// Package builder provides validation helpers to enforce parameter
// contracts in Constructor factories.
//
// Each function wraps a sentinel via builderErrorf when its precondition is
// violated.
package builder

import "math"

// validateMin ensures that the provided integer 'got' is ≥ 'min'.
//
// Parameters:
//   - method: constructor name constant, e.g. MethodUniform.
//   - name:   parameter name for the message.
//   - got:    actual value supplied by user.
//   - min:    minimal acceptable value.
//
// Complexity: O(1) time and space.
func validateMin(method, name string, got, min int) error {
	if got < min {
		return builderErrorf(method, ErrTooFewVectors, "%s=%d < min=%d", name, got, min)
	}

	return nil
}

// validateBound ensures MinBound ≤ bound and that 2·bound+1 fits in int64,
// the span drawn by builderConfig.uniform.
//
// Complexity: O(1) time and space.
func validateBound(method string, bound int64) error {
	if bound < MinBound || bound > (math.MaxInt64-1)/2 {
		return builderErrorf(method, ErrInvalidBound, "bound=%d", bound)
	}

	return nil
}

// validateRand ensures the configuration carries a random stream.
//
// Complexity: O(1) time and space.
func validateRand(method string, cfg builderConfig) error {
	if cfg.rng == nil {
		return builderErrorf(method, ErrNeedRandSource, "no rng configured")
	}

	return nil
}
