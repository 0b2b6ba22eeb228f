package crypto

import (
	"errors"
	"math/bits"
)

const (
	DefaultLength         = 16
	DefaultDicewareLength = 4
	MaxLength             = 1 << 16
)

var (
	ErrEmptyCharset  = errors.New("at least one character type must be allowed")
	ErrInvalidLength = errors.New("password length must be an integer between 0 and 65536")
)

// Sampler draws characters uniformly at random from a fixed charset.
//
// Each draw keeps the top Width() bits of a 64-bit value from the source and
// rejects anything at or past the end of the charset, so every character is
// picked with probability exactly 1/len(charset). Taking a plain modulo
// instead would favour the low indices whenever the charset size is not a
// power of two.
type Sampler struct {
	charset Charset
	shift   uint
}

// NewSampler returns a Sampler over cs. The charset is not copied.
func NewSampler(cs Charset) (*Sampler, error) {
	if len(cs) == 0 {
		return nil, ErrEmptyCharset
	}

	width := bits.Len64(uint64(len(cs) - 1))
	return &Sampler{charset: cs, shift: uint(64 - width)}, nil
}

// Width is the number of random bits consumed by a single draw.
func (s *Sampler) Width() int {
	return 64 - int(s.shift)
}

// Index returns a uniformly distributed index into the charset.
func (s *Sampler) Index(src Source) int {
	n := uint64(len(s.charset))
	for {
		// A shift of 64 yields 0, which covers the single-character charset.
		if v := src.Uint64() >> s.shift; v < n {
			return int(v)
		}
	}
}

// Sample returns count characters drawn independently, with replacement,
// from the charset. A count of zero or less returns an empty slice.
func (s *Sampler) Sample(src Source, count int) []byte {
	out := make([]byte, max(count, 0))
	for i := range out {
		out[i] = s.charset[s.Index(src)]
	}
	return out
}
