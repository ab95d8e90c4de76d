package rabinwilliams

import (
	"crypto/sha256"
	"crypto/sha512"
	"fmt"
	"hash"
	"math/big"

	"golang.org/x/crypto/blake2b"
	"golang.org/x/crypto/sha3"
)

// Hasher adapts a digest constructor into the hash capability keys carry:
// a deterministic map from a byte string to a non-negative integer of fixed
// bit length. The digest bytes are reinterpreted as a big-endian integer.
type Hasher struct {
	name  string
	newFn func() hash.Hash
}

// NewHasher wraps a hash.Hash constructor. The name identifies the hasher in
// key files and CLI flags.
func NewHasher(name string, newFn func() hash.Hash) Hasher {
	return Hasher{name: name, newFn: newFn}
}

// Hash digests message and returns the digest as a big-endian integer.
func (h Hasher) Hash(message []byte) *big.Int {
	d := h.newFn()
	d.Write(message)
	return new(big.Int).SetBytes(d.Sum(nil))
}

// Name returns the hasher's registered name.
func (h Hasher) Name() string {
	return h.name
}

// Stock hashers. SHA256Hasher is the default used by keys constructed
// without an explicit hasher.
var (
	SHA256Hasher     = NewHasher("sha256", sha256.New)
	SHA512Hasher     = NewHasher("sha512", sha512.New)
	SHA3256Hasher    = NewHasher("sha3-256", sha3.New256)
	BLAKE2b256Hasher = NewHasher("blake2b-256", newBlake2b256)
)

// DefaultHasher is used when keys are constructed without an explicit hasher.
var DefaultHasher = SHA256Hasher

func newBlake2b256() hash.Hash {
	// New256 only errors for oversized keys; unkeyed cannot fail.
	h, err := blake2b.New256(nil)
	if err != nil {
		panic(err)
	}
	return h
}

// HasherByName resolves one of the stock hashers by its registered name.
func HasherByName(name string) (Hasher, error) {
	for _, h := range []Hasher{SHA256Hasher, SHA512Hasher, SHA3256Hasher, BLAKE2b256Hasher} {
		if h.name == name {
			return h, nil
		}
	}
	return Hasher{}, fmt.Errorf("unknown hash function %q", name)
}
