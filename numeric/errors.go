// SPDX-License-Identifier: MIT
// Package numeric: sentinel errors.
//
// Parse failures are always wrapped with the offending text via numericErrorf,
// so callers branch with errors.Is and still get a readable message.

package numeric

import (
	"errors"
	"fmt"
)

var (
	// ErrSyntax is returned when a decimal string cannot be parsed by a backend.
	ErrSyntax = errors.New("numeric: invalid syntax")

	// ErrRange is returned when a parsed value is not representable by a backend
	// (integer overflow, non-finite input).
	ErrRange = errors.New("numeric: value out of range")
)

// numericErrorf wraps err with the backend tag and the offending input.
func numericErrorf(backend, s string, err error) error {
	return fmt.Errorf("%s.Parse(%q): %w", backend, s, err)
}
