package rabinwilliams

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Number of scan rounds before the prime search gives up. Each round draws
// a fresh random candidate and scans forward from it.
const maxGenerateRounds = 1000

// Miller-Rabin round count passed to ProbablyPrime. Go additionally runs a
// Baillie-PSW test, so the false-positive rate is negligible.
const primalityRounds = 20

// PrivateKey holds the two secret primes p ≡ 3 (mod 8) and q ≡ 7 (mod 8)
// together with the hash function used for signing. Immutable after
// construction.
type PrivateKey struct {
	p, q   *big.Int
	hasher Hasher
}

// PublicKey holds the modulus n = p·q and the hash function needed to
// reproduce the signer's message hashing. Immutable after construction.
type PublicKey struct {
	n      *big.Int
	hasher Hasher
}

// KeyPair couples a private key with its derived public key.
type KeyPair struct {
	Private *PrivateKey
	Public  *PublicKey
}

// GenerateKeyPair generates a Rabin-Williams key pair with an n of the
// requested bit size, using SHA-256 for message hashing. bits must be at
// least 1024.
func GenerateKeyPair(bits int) (*KeyPair, error) {
	return GenerateKeyPairWithHasher(bits, DefaultHasher)
}

// GenerateKeyPairWithHasher generates a key pair that hashes messages with
// the supplied hasher.
//
// The two primes are drawn at half the requested size: p ≡ 3 (mod 8) and
// q ≡ 7 (mod 8). Both congruences imply p, q ≡ 3 (mod 4), which is what
// makes the four-way residue normalization exhaustive and the per-prime
// square root a single exponentiation.
func GenerateKeyPairWithHasher(bits int, hasher Hasher) (*KeyPair, error) {
	if bits < 1024 {
		return nil, fmt.Errorf("%d-bit keys are below the 1024-bit minimum: %w", bits, ErrInvalidKeySize)
	}

	halfBits := bits / 2

	p, err := generatePrimeCongruent(halfBits, 3, 8)
	if err != nil {
		return nil, fmt.Errorf("generating p: %w", err)
	}
	q, err := generatePrimeCongruent(halfBits, 7, 8)
	if err != nil {
		return nil, fmt.Errorf("generating q: %w", err)
	}

	private := &PrivateKey{p: p, q: q, hasher: hasher}
	return &KeyPair{Private: private, Public: private.Public()}, nil
}

// generatePrimeCongruent searches for a probable prime with exactly the
// given bit length satisfying candidate ≡ remainder (mod modulus). Each
// round draws a random candidate and scans forward one integer at a time;
// the scan is capped at the bit budget before redrawing.
func generatePrimeCongruent(bits int, remainder, modulus int64) (*big.Int, error) {
	min := new(big.Int).Lsh(one, uint(bits-1))
	max := new(big.Int).Sub(new(big.Int).Lsh(one, uint(bits)), one)
	span := new(big.Int).Sub(max, min)
	span.Add(span, one)

	rem := big.NewInt(remainder)
	mod := big.NewInt(modulus)
	residue := new(big.Int)

	for round := 0; round < maxGenerateRounds; round++ {
		offset, err := rand.Int(rand.Reader, span)
		if err != nil {
			return nil, fmt.Errorf("drawing prime candidate: %w", err)
		}
		candidate := offset.Add(offset, min)

		for step := 0; step < bits && candidate.Cmp(max) <= 0; step++ {
			if residue.Mod(candidate, mod).Cmp(rem) == 0 && candidate.ProbablyPrime(primalityRounds) {
				return candidate, nil
			}
			candidate.Add(candidate, one)
		}
	}

	return nil, fmt.Errorf("no prime ≡ %d (mod %d) found in %d rounds: %w", remainder, modulus, maxGenerateRounds, ErrInvalidPrime)
}

// NewPrivateKey constructs a private key from externally supplied primes,
// hashing with SHA-256.
func NewPrivateKey(p, q *big.Int) (*PrivateKey, error) {
	return NewPrivateKeyWithHasher(p, q, DefaultHasher)
}

// NewPrivateKeyWithHasher constructs a private key from externally supplied
// primes and a hasher.
//
// The congruences p ≡ 3 (mod 8) and q ≡ 7 (mod 8) are re-validated along
// with distinctness and probable primality, since signing correctness
// silently degrades if they are violated. Keys loaded from storage get the
// same scrutiny as freshly generated ones.
func NewPrivateKeyWithHasher(p, q *big.Int, hasher Hasher) (*PrivateKey, error) {
	if p == nil || q == nil {
		return nil, fmt.Errorf("missing prime: %w", ErrInvalidPrime)
	}
	if new(big.Int).Mod(p, big.NewInt(8)).Cmp(big.NewInt(3)) != 0 {
		return nil, fmt.Errorf("p must be congruent to 3 (mod 8): %w", ErrInvalidPrime)
	}
	if new(big.Int).Mod(q, big.NewInt(8)).Cmp(big.NewInt(7)) != 0 {
		return nil, fmt.Errorf("q must be congruent to 7 (mod 8): %w", ErrInvalidPrime)
	}
	if p.Cmp(q) == 0 {
		return nil, fmt.Errorf("p and q must be distinct: %w", ErrInvalidPrime)
	}
	if !p.ProbablyPrime(primalityRounds) {
		return nil, fmt.Errorf("p failed the primality test: %w", ErrInvalidPrime)
	}
	if !q.ProbablyPrime(primalityRounds) {
		return nil, fmt.Errorf("q failed the primality test: %w", ErrInvalidPrime)
	}

	return &PrivateKey{
		p:      new(big.Int).Set(p),
		q:      new(big.Int).Set(q),
		hasher: hasher,
	}, nil
}

// NewPublicKey constructs a public key from a modulus, hashing with SHA-256.
func NewPublicKey(n *big.Int) (*PublicKey, error) {
	return NewPublicKeyWithHasher(n, DefaultHasher)
}

// NewPublicKeyWithHasher constructs a public key from a modulus and a
// hasher. The factorization is unknown here, so validation is limited to n
// being an odd integer greater than one.
func NewPublicKeyWithHasher(n *big.Int, hasher Hasher) (*PublicKey, error) {
	if n == nil || n.Cmp(one) <= 0 || n.Bit(0) == 0 {
		return nil, fmt.Errorf("modulus must be an odd integer greater than one: %w", ErrInvalidKeySize)
	}
	return &PublicKey{n: new(big.Int).Set(n), hasher: hasher}, nil
}

// P returns a copy of the prime p.
func (k *PrivateKey) P() *big.Int {
	return new(big.Int).Set(k.p)
}

// Q returns a copy of the prime q.
func (k *PrivateKey) Q() *big.Int {
	return new(big.Int).Set(k.q)
}

// N returns the modulus p·q.
func (k *PrivateKey) N() *big.Int {
	return new(big.Int).Mul(k.p, k.q)
}

// Hasher returns the hash function the key signs with.
func (k *PrivateKey) Hasher() Hasher {
	return k.hasher
}

// Public derives the public half of the key, sharing the same hasher.
func (k *PrivateKey) Public() *PublicKey {
	return &PublicKey{n: k.N(), hasher: k.hasher}
}

// N returns a copy of the modulus.
func (k *PublicKey) N() *big.Int {
	return new(big.Int).Set(k.n)
}

// Hasher returns the hash function the key verifies with.
func (k *PublicKey) Hasher() Hasher {
	return k.hasher
}
