package dice

import (
	cryptoRand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// Source - uniform integer source, IntN returns a value in [0, n)
type Source interface {
	IntN(n int) int
}

// cryptoSource - stateless uint64 source backed by crypto/rand
type cryptoSource struct{}

func (cryptoSource) Uint64() uint64 {
	var buf [8]byte
	if _, err := cryptoRand.Read(buf[:]); err != nil {
		return rand.Uint64()
	}
	return binary.LittleEndian.Uint64(buf[:])
}

// NewCryptoSource - source for live rounds. Safe for concurrent use.
func NewCryptoSource() Source {
	return rand.New(cryptoSource{})
}

// NewSeededSource - reproducible source; stream selects an independent
// sequence for the same seed. Not safe for concurrent use.
func NewSeededSource(seed, stream uint64) Source {
	return rand.New(rand.NewPCG(seed, stream))
}

// NewFastSource - unseeded ChaCha8 source keyed from crypto/rand, for
// simulations that do not need to be reproduced. Not safe for concurrent use.
func NewFastSource() Source {
	var key [32]byte
	if _, err := cryptoRand.Read(key[:]); err != nil {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return rand.New(rand.NewChaCha8(key))
}
