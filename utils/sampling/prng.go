// Package sampling implements a deterministic pseudo-random byte source used
// to derive reproducible test and benchmark inputs, based on the blake2b XOF.
package sampling

import (
	"crypto/rand"

	"golang.org/x/crypto/blake2b"
)

// PRNG is an interface for reading pseudo-random byte streams.
type PRNG interface {
	Read(sum []byte) (n int, err error)
	Reset()
}

// KeyedPRNG is a structure storing the parameters used to deterministically
// generate random bytes using the hash function blake2b in XOF mode.
type KeyedPRNG struct {
	key []byte
	xof blake2b.XOF
}

// NewKeyedPRNG creates a new instance of KeyedPRNG. Accepts an optional key,
// else set key=nil. The key must be at most 64 bytes long.
func NewKeyedPRNG(key []byte) (*KeyedPRNG, error) {
	var err error
	prng := new(KeyedPRNG)
	prng.key = key
	prng.xof, err = blake2b.NewXOF(blake2b.OutputLengthUnknown, key)
	return prng, err
}

// NewPRNG creates a new instance of KeyedPRNG with a fresh key sampled from
// crypto/rand.
func NewPRNG() (*KeyedPRNG, error) {
	key := make([]byte, 64)
	if _, err := rand.Read(key); err != nil {
		return nil, err
	}
	return NewKeyedPRNG(key)
}

// Key returns a copy of the key used to seed the PRNG.
func (prng *KeyedPRNG) Key() (key []byte) {
	key = make([]byte, len(prng.key))
	copy(key, prng.key)
	return
}

// Read reads bytes from the KeyedPRNG on sum.
func (prng *KeyedPRNG) Read(sum []byte) (n int, err error) {
	return prng.xof.Read(sum)
}

// Reset resets the KeyedPRNG to its initial state.
func (prng *KeyedPRNG) Reset() {
	prng.xof.Reset()
}
