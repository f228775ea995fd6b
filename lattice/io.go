// SPDX-License-Identifier: MIT
// Package lattice: reading vectors from text.
//
// Format, one vector per line:
//
//	# comment
//	[1, 0, 0, 3412]
//	0 1 0 -1207
//
// Entries are decimal literals accepted by the backend's Parse, separated by
// blanks and/or commas; one pair of enclosing brackets is optional. Blank
// lines and lines starting with '#' are skipped.

package lattice

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/katalvlaran/lvlnum/numeric"
)

const commentPrefix = "#"

// ParseVector parses one vector line.
//
// Errors:
//   - ErrEmptyInput when the line holds no entry ("[]", ", ,").
//   - numeric.ErrSyntax / numeric.ErrRange from the backend, wrapped.
func ParseVector[T numeric.Value[T]](s string) ([]T, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})
	if len(fields) == 0 {
		return nil, latticeErrorf(opParseVector, fmt.Errorf("%q: %w", s, ErrEmptyInput))
	}

	return numeric.ParseAll[T](fields...)
}

// ReadVectors reads every vector from r and returns them as a Basis.
//
// Errors:
//   - ErrEmptyInput when r holds no vector.
//   - ErrDimensionMismatch when a line's length differs from the first one.
//   - parse errors, prefixed with the 1-based line number.
func ReadVectors[T numeric.Value[T]](r io.Reader) (*Basis[T], error) {
	var (
		b    *Basis[T]
		line int
	)
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, commentPrefix) {
			continue
		}
		v, err := ParseVector[T](text)
		if err != nil {
			return nil, latticeErrorf(opReadVectors, fmt.Errorf("line %d: %w", line, err))
		}
		if b == nil {
			b = &Basis[T]{length: len(v)}
		}
		if err = b.AddVector(v); err != nil {
			return nil, latticeErrorf(opReadVectors, fmt.Errorf("line %d: %w", line, err))
		}
	}
	if err := sc.Err(); err != nil {
		return nil, latticeErrorf(opReadVectors, err)
	}
	if b == nil {
		return nil, latticeErrorf(opReadVectors, ErrEmptyInput)
	}

	return b, nil
}
