package rabinwilliams

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Coprime draws a uniformly random integer in [1, n) that is coprime to the
// modulus, from a cryptographically secure source. Almost every draw
// succeeds; a draw sharing a factor with n is discarded and retried.
func (k *PublicKey) Coprime() (*big.Int, error) {
	span := new(big.Int).Sub(k.n, one)
	gcd := new(big.Int)

	for {
		r, err := rand.Int(rand.Reader, span)
		if err != nil {
			return nil, fmt.Errorf("drawing coprime: %w", err)
		}
		r.Add(r, one)

		if gcd.GCD(nil, nil, r, k.n).Cmp(one) == 0 {
			return r, nil
		}
	}
}

// Blinding draws a fresh blinding factor r and returns it with r² mod n.
// r is a single-use secret: it stays with the requester and is discarded
// after unblinding.
func (k *PublicKey) Blinding() (r, rSquared *big.Int, err error) {
	r, err = k.Coprime()
	if err != nil {
		return nil, nil, err
	}

	rSquared = new(big.Int).Mul(r, r)
	rSquared.Mod(rSquared, k.n)
	return r, rSquared, nil
}

// BlindMessage hashes a message and masks the hash with a fresh blinding
// factor, returning r²·H(m) mod n and r. The blinded value can be sent to
// the signer, who learns neither H(m) nor r.
func (k *PublicKey) BlindMessage(message []byte) (blinded, r *big.Int, err error) {
	m := k.hasher.Hash(message)

	r, rSquared, err := k.Blinding()
	if err != nil {
		return nil, nil, err
	}

	blinded = rSquared.Mul(rSquared, m)
	blinded.Mod(blinded, k.n)
	return blinded, r, nil
}

// UnblindSignature removes the blinding factor from a signature produced by
// RawSign over a blinded value: the magnitude becomes x·r⁻¹ mod n while the
// transform tags carry over unchanged. The result verifies against the
// original, unblinded message.
//
// It fails with ErrInvalidSignature when the signature is malformed or r is
// not invertible modulo n.
func (k *PublicKey) UnblindSignature(signature []byte, r *big.Int) ([]byte, error) {
	e, f, x, err := ExtractSignature(signature)
	if err != nil {
		return nil, err
	}

	rInv := ModInverse(r, k.n)
	if rInv == nil {
		return nil, fmt.Errorf("blinding factor is not invertible modulo n: %w", ErrInvalidSignature)
	}

	x.Mul(x, rInv)
	x.Mod(x, k.n)
	return PackSignature(e, f, x), nil
}
