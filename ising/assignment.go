// SPDX-License-Identifier: MIT
// Package: isingcut/ising
//
// assignment.go — the two encodings of a vertex bipartition.
//
//   • Assignment: x_i ∈ {0,1}, the canonical external encoding.
//   • Spins:      z_i ∈ {-1,+1}, the encoding the energy is defined on.
//
// They are related by z_i = 1 - 2·x_i (x=0 ↔ z=+1, x=1 ↔ z=-1).
//
// Bitstring index convention: vertex 0 is the most significant bit, so the
// assignment [1,0,1,1] has index 0b1011 = 11.

package ising

import (
	"encoding/json"
	"fmt"
	"strings"
)

// MaxIndexBits is the largest n whose bitstring indices fit in a uint64.
const MaxIndexBits = 63

// Assignment is a 0/1 membership vector over vertices.
type Assignment []uint8

// Spins is a ±1 vector over Ising variables.
type Spins []int8

// Validate reports ErrNotBinary for any entry outside {0,1}.
func (a Assignment) Validate() error {
	for i, v := range a {
		if v > 1 {
			return fmt.Errorf("Assignment[%d]=%d: %w", i, v, ErrNotBinary)
		}
	}

	return nil
}

// Spins converts x to z via z_i = 1 - 2·x_i.
// Errors: ErrNotBinary.
func (a Assignment) Spins() (Spins, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}
	z := make(Spins, len(a))
	for i, v := range a {
		z[i] = 1 - 2*int8(v)
	}

	return z, nil
}

// Complement returns y with y_i = 1 - x_i (the same cut, other labeling).
// Entries are assumed binary.
func (a Assignment) Complement() Assignment {
	y := make(Assignment, len(a))
	for i, v := range a {
		y[i] = 1 - v
	}

	return y
}

// Index returns the bitstring index of a (vertex 0 = most significant bit).
// Errors: ErrNotBinary, ErrIndexRange if len(a) > MaxIndexBits.
func (a Assignment) Index() (uint64, error) {
	if len(a) > MaxIndexBits {
		return 0, fmt.Errorf("Index: n=%d > %d: %w", len(a), MaxIndexBits, ErrIndexRange)
	}
	if err := a.Validate(); err != nil {
		return 0, err
	}

	var k uint64
	for _, v := range a {
		k = k<<1 | uint64(v)
	}

	return k, nil
}

// String renders the assignment as a bitstring, e.g. "1011".
func (a Assignment) String() string {
	var sb strings.Builder
	for _, v := range a {
		sb.WriteByte('0' + v)
	}

	return sb.String()
}

// FromIndex expands index k into an n-length Assignment, vertex 0 first
// (most significant bit).
// Errors: ErrIndexRange if n is outside [0, MaxIndexBits] or k ≥ 2^n.
func FromIndex(k uint64, n int) (Assignment, error) {
	if n < 0 || n > MaxIndexBits {
		return nil, fmt.Errorf("FromIndex: n=%d: %w", n, ErrIndexRange)
	}
	if k >= uint64(1)<<uint(n) {
		return nil, fmt.Errorf("FromIndex: k=%d ≥ 2^%d: %w", k, n, ErrIndexRange)
	}
	a := make(Assignment, n)
	for i := 0; i < n; i++ {
		a[i] = uint8(k >> uint(n-1-i) & 1)
	}

	return a, nil
}

// Validate reports ErrNotSpin for any entry outside {-1,+1}.
func (z Spins) Validate() error {
	for i, v := range z {
		if v != 1 && v != -1 {
			return fmt.Errorf("Spins[%d]=%d: %w", i, v, ErrNotSpin)
		}
	}

	return nil
}

// Assignment converts z to x via x_i = (1 - z_i)/2.
// Errors: ErrNotSpin.
func (z Spins) Assignment() (Assignment, error) {
	if err := z.Validate(); err != nil {
		return nil, err
	}
	a := make(Assignment, len(z))
	for i, v := range z {
		a[i] = uint8((1 - v) / 2)
	}

	return a, nil
}

// ints widens the assignment for serialization.
func (a Assignment) ints() []int {
	out := make([]int, len(a))
	for i, v := range a {
		out[i] = int(v)
	}

	return out
}

// MarshalJSON encodes the assignment as an array of 0/1 numbers instead of
// the base64 string encoding/json uses for byte slices.
func (a Assignment) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.ints())
}

// MarshalYAML encodes the assignment as a sequence of 0/1 numbers.
func (a Assignment) MarshalYAML() (interface{}, error) {
	return a.ints(), nil
}
