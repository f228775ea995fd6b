// SPDX-License-Identifier: MIT

package builder

import (
	"encoding/binary"
	"io"
	"math/rand"

	"golang.org/x/crypto/sha3"
)

// shakeDomain separates builder streams from any other SHAKE use of a seed.
const shakeDomain = "lvlnum/builder/v1"

// shakeSource is a rand.Source64 reading 8-byte little-endian words from a
// SHAKE-128 XOF absorbed with (shakeDomain ‖ seed).
type shakeSource struct {
	xof sha3.ShakeHash
	buf [8]byte
}

var _ rand.Source64 = (*shakeSource)(nil)

func newShakeSource(seed int64) *shakeSource {
	s := &shakeSource{}
	s.Seed(seed)

	return s
}

// Seed restarts the stream for seed.
func (s *shakeSource) Seed(seed int64) {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], uint64(seed))
	h := sha3.NewShake128()
	_, _ = h.Write([]byte(shakeDomain))
	_, _ = h.Write(b[:])
	s.xof = h
}

// Uint64 squeezes the next word. A SHAKE read never fails.
func (s *shakeSource) Uint64() uint64 {
	_, _ = io.ReadFull(s.xof, s.buf[:])
	return binary.LittleEndian.Uint64(s.buf[:])
}

// Int63 drops the top bit of the next word.
func (s *shakeSource) Int63() int64 { return int64(s.Uint64() >> 1) }
