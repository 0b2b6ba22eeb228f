package crypto

import (
	"crypto/rand"
	"encoding/binary"
	"fmt"

	"golang.org/x/crypto/chacha20"
)

// Source produces uniformly distributed 64-bit values.
type Source interface {
	Uint64() uint64
}

// ChaChaSource is a Source reading a ChaCha20 keystream. It is not safe for
// concurrent use.
type ChaChaSource struct {
	cipher *chacha20.Cipher
	buf    [512]byte
	off    int
}

// NewSeededSource returns a deterministic Source keyed by seed.
func NewSeededSource(seed [32]byte) *ChaChaSource {
	nonce := make([]byte, chacha20.NonceSize)
	c, err := chacha20.NewUnauthenticatedCipher(seed[:], nonce)
	if err != nil {
		// Only reachable with a malformed key or nonce size.
		panic(err)
	}

	s := &ChaChaSource{cipher: c}
	s.off = len(s.buf)
	return s
}

// NewSystemSource returns a Source keyed from the operating system's entropy
// pool.
func NewSystemSource() (*ChaChaSource, error) {
	var seed [32]byte
	if _, err := rand.Read(seed[:]); err != nil {
		return nil, fmt.Errorf("reading entropy: %w", err)
	}
	return NewSeededSource(seed), nil
}

// Uint64 returns the next 8 bytes of keystream.
func (s *ChaChaSource) Uint64() uint64 {
	if s.off == len(s.buf) {
		clear(s.buf[:])
		s.cipher.XORKeyStream(s.buf[:], s.buf[:])
		s.off = 0
	}

	v := binary.LittleEndian.Uint64(s.buf[s.off:])
	s.off += 8
	return v
}
