package rabinwilliams

import (
	"fmt"
	"math/big"

	logging "github.com/op/go-logging"
)

var log = logging.MustGetLogger("rabinwilliams")

// Sign signs a message: the message is hashed with the key's hasher and the
// digest signed deterministically. The same message always produces the
// same signature under the same key.
func (k *PrivateKey) Sign(message []byte) ([]byte, error) {
	return k.RawSign(k.hasher.Hash(message))
}

// RawSign signs an integer directly, skipping the hash step. This is the
// signer half of the blind-signature protocol: a blinded value is
// indistinguishable from a message hash, so the signer applies the same
// arithmetic either way.
//
// m must lie in [0, n); values outside fail with ErrMessageTooLarge.
//
// The signature magnitude x satisfies e·f·x² ≡ m (mod n) for the transform
// tags packed into the leading byte.
func (k *PrivateKey) RawSign(m *big.Int) ([]byte, error) {
	n := new(big.Int).Mul(k.p, k.q)
	if m.Sign() < 0 || m.Cmp(n) >= 0 {
		return nil, fmt.Errorf("value to sign must lie in [0, n): %w", ErrMessageTooLarge)
	}

	value, e, f := makeQuadraticResidue(m, k.p, k.q)

	// Both primes are ≡ 3 (mod 4), so v^((p+1)/4) is a square root of v
	// modulo p whenever v is a residue.
	expP := new(big.Int).Add(k.p, one)
	expP.Rsh(expP, 2)
	sp := new(big.Int).Exp(new(big.Int).Mod(value, k.p), expP, k.p)

	expQ := new(big.Int).Add(k.q, one)
	expQ.Rsh(expQ, 2)
	sq := new(big.Int).Exp(new(big.Int).Mod(value, k.q), expQ, k.q)

	log.Debug("computed square roots modulo p and q")

	x, err := ChineseRemainderTheorem([]*big.Int{sp, sq}, []*big.Int{k.p, k.q})
	if err != nil {
		return nil, err
	}

	log.Debugf("generated signature with e=%d, f=%d", e, f)
	return PackSignature(e, f, x), nil
}

// Verify checks a signature against a message. A structurally malformed
// signature fails with ErrInvalidSignature; a well-formed signature that
// does not match the message returns (false, nil).
func (k *PublicKey) Verify(message, signature []byte) (bool, error) {
	e, f, x, err := ExtractSignature(signature)
	if err != nil {
		return false, err
	}

	m := k.hasher.Hash(message)

	recovered := new(big.Int).Mul(x, x)
	recovered.Mod(recovered, k.n)

	if e == -1 {
		recovered.Sub(k.n, recovered)
		recovered.Mod(recovered, k.n)
	}
	if f == 2 {
		// n is odd, so 2⁻¹ mod n is (n+1)/2 in closed form.
		halfInv := new(big.Int).Add(k.n, one)
		halfInv.Rsh(halfInv, 1)
		recovered.Mul(recovered, halfInv)
		recovered.Mod(recovered, k.n)
	}

	return recovered.Cmp(m) == 0, nil
}
