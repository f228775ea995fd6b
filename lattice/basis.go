// SPDX-License-Identifier: MIT
// Package lattice: Basis, the reduction context.
//
// Purpose:
//   - Own the vectors (each exactly Length() scalars) and the Gram state built
//     from them; nothing is shared with callers (inputs and outputs are cloned).
//   - Expose both the physical order (insertion order, Vectors) and the logical
//     order established by the last Reduce (Reduced, Order).
//
// Any mutation invalidates the Gram state; the next Reduce rebuilds it.

package lattice

import (
	"fmt"

	"github.com/katalvlaran/lvlnum/matrix"
	"github.com/katalvlaran/lvlnum/numeric"
)

// Basis is a set of vectors of a common length together with the Gram state
// of the last reduction. The zero value is an empty basis of length 0.
type Basis[T numeric.Value[T]] struct {
	length  int
	vectors [][]T
	gram    *matrix.Permuted[T] // nil until Reduce; reset by every mutation
}

// NewBasis returns an empty basis whose vectors will have the given length.
//
// Errors:
//   - ErrInvalidLength when length < 0.
func NewBasis[T numeric.Value[T]](length int) (*Basis[T], error) {
	if length < 0 {
		return nil, fmt.Errorf("NewBasis(%d): %w", length, ErrInvalidLength)
	}

	return &Basis[T]{length: length}, nil
}

// FromVectors builds a basis from vs; the length is taken from vs[0].
// The vectors are deep-copied.
//
// Errors:
//   - ErrDimensionMismatch when the vectors differ in length.
func FromVectors[T numeric.Value[T]](vs [][]T) (*Basis[T], error) {
	var length int
	if len(vs) > 0 {
		length = len(vs[0])
	}
	b := &Basis[T]{length: length}
	if err := b.AddVectors(vs...); err != nil {
		return nil, err
	}

	return b, nil
}

// FromInts is FromVectors for integer rows.
func FromInts[T numeric.Value[T]](rows [][]int64) (*Basis[T], error) {
	vs := make([][]T, len(rows))
	for i, r := range rows {
		vs[i] = numeric.FromInts[T](r)
	}

	return FromVectors(vs)
}

// Dim returns the number of vectors.
func (b *Basis[T]) Dim() int { return len(b.vectors) }

// Length returns the common vector length.
func (b *Basis[T]) Length() int { return b.length }

// SetLength changes the vector length. Existing vectors are truncated or
// extended with zeros.
//
// Errors:
//   - ErrInvalidLength when n < 0.
func (b *Basis[T]) SetLength(n int) error {
	if n < 0 {
		return fmt.Errorf("SetLength(%d): %w", n, ErrInvalidLength)
	}
	for i, v := range b.vectors {
		b.vectors[i] = resize(v, n)
	}
	b.length = n
	b.gram = nil

	return nil
}

// SetDimension changes the number of vectors. Surplus vectors are dropped;
// missing ones are appended as zero vectors.
//
// Errors:
//   - ErrInvalidLength when n < 0.
func (b *Basis[T]) SetDimension(n int) error {
	if n < 0 {
		return fmt.Errorf("SetDimension(%d): %w", n, ErrInvalidLength)
	}
	if n <= len(b.vectors) {
		b.vectors = b.vectors[:n:n]
	} else {
		for len(b.vectors) < n {
			b.vectors = append(b.vectors, resize[T](nil, b.length))
		}
	}
	b.gram = nil

	return nil
}

// AddVector appends a copy of v.
//
// Errors:
//   - ErrDimensionMismatch when len(v) != Length().
func (b *Basis[T]) AddVector(v []T) error {
	if len(v) != b.length {
		return latticeErrorf(opAddVector, fmt.Errorf("got %d want %d: %w", len(v), b.length, ErrDimensionMismatch))
	}
	b.vectors = append(b.vectors, numeric.CloneVector(v))
	b.gram = nil

	return nil
}

// AddVectors appends copies of every vector. All lengths are checked first,
// so a failed call adds nothing.
func (b *Basis[T]) AddVectors(vs ...[]T) error {
	for k, v := range vs {
		if len(v) != b.length {
			return latticeErrorf(opAddVector, fmt.Errorf("vector %d: got %d want %d: %w", k, len(v), b.length, ErrDimensionMismatch))
		}
	}
	for _, v := range vs {
		b.vectors = append(b.vectors, numeric.CloneVector(v))
	}
	b.gram = nil

	return nil
}

// SetVector replaces vector i (physical index) with a copy of v.
//
// Errors:
//   - ErrOutOfRange, ErrDimensionMismatch.
func (b *Basis[T]) SetVector(i int, v []T) error {
	if i < 0 || i >= len(b.vectors) {
		return latticeErrorf(opSetVector, fmt.Errorf("index %d: %w", i, ErrOutOfRange))
	}
	if len(v) != b.length {
		return latticeErrorf(opSetVector, fmt.Errorf("got %d want %d: %w", len(v), b.length, ErrDimensionMismatch))
	}
	b.vectors[i] = numeric.CloneVector(v)
	b.gram = nil

	return nil
}

// Vector returns a copy of vector i (physical index).
func (b *Basis[T]) Vector(i int) ([]T, error) {
	if i < 0 || i >= len(b.vectors) {
		return nil, fmt.Errorf("Vector(%d): %w", i, ErrOutOfRange)
	}

	return numeric.CloneVector(b.vectors[i]), nil
}

// Vectors returns copies of all vectors in physical (insertion) order.
func (b *Basis[T]) Vectors() [][]T {
	out := make([][]T, len(b.vectors))
	for i, v := range b.vectors {
		out[i] = numeric.CloneVector(v)
	}

	return out
}

// Order returns the logical→physical vector order of the last reduction,
// or the identity when no Gram state is held.
func (b *Basis[T]) Order() []int {
	if b.gram == nil {
		return matrix.IdentityPermutation(len(b.vectors))
	}

	return b.gram.ColOrder()
}

// Reduced returns copies of the vectors in logical order: after a
// successful Reduce this is the reduced basis, shortest first.
func (b *Basis[T]) Reduced() [][]T {
	ord := b.Order()
	out := make([][]T, len(ord))
	for i, p := range ord {
		out[i] = numeric.CloneVector(b.vectors[p])
	}

	return out
}

// Gram returns a deep copy of the Gram state left by the last Reduce
// (eliminated, upper triangular in logical order), or nil.
func (b *Basis[T]) Gram() *matrix.Permuted[T] {
	if b.gram == nil {
		return nil
	}

	return b.gram.Copy()
}

// resize returns v truncated or zero-extended to n entries.
func resize[T numeric.Value[T]](v []T, n int) []T {
	if n <= len(v) {
		return v[:n:n]
	}
	var z T
	out := make([]T, n)
	copy(out, v)
	for k := len(v); k < n; k++ {
		out[k] = z.Zero()
	}

	return out
}
