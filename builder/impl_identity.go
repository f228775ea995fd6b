// SPDX-License-Identifier: MIT

package builder

// Identity returns a Constructor emitting the n×n standard basis e_0..e_{n-1}.
// It is already reduced: Reduce performs no size reduction and no swap on it.
//
// Contract:
//   - n ≥ MinVectors (else ErrTooFewVectors).
//   - Pure: the rng is never read.
//
// Complexity: O(n²) time and space.
func Identity(n int) Constructor {
	return func(cfg builderConfig) ([][]int64, error) {
		if err := validateMin(MethodIdentity, "n", n, MinVectors); err != nil {
			return nil, err
		}
		rows := make([][]int64, n)
		for i := range rows {
			rows[i] = make([]int64, n)
			rows[i][i] = 1
		}

		return rows, nil
	}
}
