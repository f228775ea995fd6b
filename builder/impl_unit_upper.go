// SPDX-License-Identifier: MIT

package builder

// UnitUpper returns a Constructor for an n×n upper triangular basis with a
// unit diagonal and entries above it uniform in [-bound, bound]. Its
// determinant is 1, so it spans Zⁿ and a reduction must end with squared
// covolume 1; with a large bound it is badly skewed, a good stress input.
//
// Contract:
//   - n ≥ MinVectors (else ErrTooFewVectors).
//   - validateBound / cfg.rng as for Uniform.
//   - Entries are drawn row-major over j > i.
//
// Complexity: O(n²) time and space.
func UnitUpper(n int, bound int64) Constructor {
	return func(cfg builderConfig) ([][]int64, error) {
		if err := validateMin(MethodUnitUpper, "n", n, MinVectors); err != nil {
			return nil, err
		}
		if err := validateBound(MethodUnitUpper, bound); err != nil {
			return nil, err
		}
		if err := validateRand(MethodUnitUpper, cfg); err != nil {
			return nil, err
		}

		rows := make([][]int64, n)
		for i := range rows {
			rows[i] = make([]int64, n)
			rows[i][i] = 1
			for j := i + 1; j < n; j++ {
				rows[i][j] = cfg.uniform(bound)
			}
		}

		return rows, nil
	}
}
