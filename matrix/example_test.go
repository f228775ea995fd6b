// SPDX-License-Identifier: MIT
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/lvlnum/matrix"
	"github.com/katalvlaran/lvlnum/numeric"
)

// ExampleEliminate reduces a singular matrix exactly under full pivoting.
func ExampleEliminate() {
	m, _ := matrix.NewPermuted[numeric.Rat](3, 3)
	for i, row := range [][]int64{{1, 2, 3}, {4, 5, 6}, {7, 8, 9}} {
		for j, v := range row {
			_ = m.Set(i, j, numeric.FromInt64[numeric.Rat](v))
		}
	}

	rank, st, err := matrix.Eliminate(m, matrix.PivotFull, 0)
	fmt.Println(rank, st, err)
	// Output:
	// 2 PARTIAL <nil>
}

// ExamplePermuted_SwapRows shows that swaps only touch the logical view.
func ExamplePermuted_SwapRows() {
	m, _ := matrix.NewPermuted[numeric.Float64](2, 2)
	_ = m.Set(0, 0, numeric.F64(1))
	_ = m.Set(1, 1, numeric.F64(2))
	_ = m.SwapRows(0, 1)

	fmt.Print(m)
	fmt.Println(m.RowOrder())
	// Output:
	// [0, 2]
	// [1, 0]
	// [1 0]
}

// ExampleSortPermutation orders indices by key without moving the keys.
func ExampleSortPermutation() {
	keys := numeric.FromInts[numeric.Rat]([]int64{30, 10, 20})
	perm := matrix.IdentityPermutation(len(keys))
	_ = matrix.SortPermutation(perm, keys)
	fmt.Println(perm)
	// Output:
	// [1 2 0]
}
