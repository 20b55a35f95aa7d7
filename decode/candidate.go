// SPDX-License-Identifier: MIT
// Package: isingcut/decode
//
// candidate.go — the tagged result variant shared by every optimizer.
//
// A Candidate is either a Bitstring (one concrete assignment) or a
// Distribution (a probability mass over all 2^n bitstrings). The interface
// is sealed: only this package defines variants, and Decode dispatches
// through it, so callers never branch on the optimizer that produced it.

package decode

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/isingcut/ising"
)

// Kind tags a Candidate variant.
type Kind int

// Candidate kinds.
const (
	KindBitstring Kind = iota + 1
	KindDistribution
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindBitstring:
		return "bitstring"
	case KindDistribution:
		return "distribution"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Candidate is a raw optimizer output awaiting decoding.
type Candidate interface {
	// Kind reports the variant.
	Kind() Kind

	// decode maps the candidate onto an n-variable assignment.
	decode(n int) (ising.Assignment, error)
}

// Bitstring is a concrete 0/1 assignment, vertex 0 first.
type Bitstring []uint8

// Kind implements Candidate.
func (Bitstring) Kind() Kind { return KindBitstring }

func (b Bitstring) decode(n int) (ising.Assignment, error) {
	if len(b) != n {
		return nil, fmt.Errorf("Bitstring: len=%d, want %d: %w", len(b), n, ErrDecode)
	}

	return FromBitstring(b)
}

// Distribution is a probability mass over bitstring indices 0..2^N-1.
// N may be left 0, in which case it is inferred from the caller's n.
type Distribution struct {
	N int       `json:"n" yaml:"n"`
	P []float64 `json:"p" yaml:"p,flow"`
}

// Kind implements Candidate.
func (Distribution) Kind() Kind { return KindDistribution }

func (d Distribution) decode(n int) (ising.Assignment, error) {
	if d.N != 0 && d.N != n {
		return nil, fmt.Errorf("Distribution: N=%d, want %d: %w", d.N, n, ErrDecode)
	}

	return MostLikely(d.P, n)
}

// Decode maps any candidate onto an n-variable assignment.
// Errors: ErrDecode (also for a nil candidate).
func Decode(c Candidate, n int) (ising.Assignment, error) {
	if c == nil {
		return nil, fmt.Errorf("Decode: nil candidate: %w", ErrDecode)
	}

	return c.decode(n)
}

// FromBitstring is the identity on an already canonical 0/1 assignment.
// The input is copied. Errors: ErrDecode for symbols outside {0,1}.
func FromBitstring(bits []uint8) (ising.Assignment, error) {
	a := make(ising.Assignment, len(bits))
	copy(a, bits)
	if err := a.Validate(); err != nil {
		return nil, fmt.Errorf("FromBitstring: %w: %w", ErrDecode, err)
	}

	return a, nil
}

// ParseBitstring reads a textual bitstring such as "1011" (vertex 0 first).
// Surrounding whitespace is ignored. Errors: ErrDecode.
func ParseBitstring(s string) (Bitstring, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, fmt.Errorf("ParseBitstring: empty input: %w", ErrDecode)
	}
	b := make(Bitstring, len(s))
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '0':
			b[i] = 0
		case '1':
			b[i] = 1
		default:
			return nil, fmt.Errorf("ParseBitstring: symbol %q at %d: %w", s[i], i, ErrDecode)
		}
	}

	return b, nil
}
