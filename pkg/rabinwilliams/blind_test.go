package rabinwilliams

import (
	"errors"
	"math/big"
	"testing"
)

func TestBlindSignVerify(t *testing.T) {
	keyPair := testKeyPair(t)
	message := randomMessage(t)

	blinded, r, err := keyPair.Public.BlindMessage(message)
	if err != nil {
		t.Fatalf("Blinding failed: %v", err)
	}

	// The signer sees only the blinded value.
	blindSignature, err := keyPair.Private.RawSign(blinded)
	if err != nil {
		t.Fatalf("Blind signing failed: %v", err)
	}

	signature, err := keyPair.Public.UnblindSignature(blindSignature, r)
	if err != nil {
		t.Fatalf("Unblinding failed: %v", err)
	}

	// The unblinded signature must verify against the original message.
	valid, err := keyPair.Public.Verify(message, signature)
	if err != nil {
		t.Fatalf("Verification errored: %v", err)
	}
	if !valid {
		t.Error("Unblinded signature did not verify against the original message")
	}
}

func TestBlindMessage_HidesHash(t *testing.T) {
	keyPair := testKeyPair(t)
	message := []byte("Hello, World!")

	blinded, _, err := keyPair.Public.BlindMessage(message)
	if err != nil {
		t.Fatalf("Blinding failed: %v", err)
	}

	if blinded.Cmp(keyPair.Public.Hasher().Hash(message)) == 0 {
		t.Error("Blinded value equals the message hash")
	}
}

func TestBlindMessage_FreshFactors(t *testing.T) {
	keyPair := testKeyPair(t)
	message := []byte("Hello, World!")

	_, r1, err := keyPair.Public.BlindMessage(message)
	if err != nil {
		t.Fatalf("Blinding failed: %v", err)
	}
	_, r2, err := keyPair.Public.BlindMessage(message)
	if err != nil {
		t.Fatalf("Blinding failed: %v", err)
	}

	if r1.Cmp(r2) == 0 {
		t.Error("Expected a fresh blinding factor per call")
	}
}

func TestCoprime(t *testing.T) {
	keyPair := testKeyPair(t)
	n := keyPair.Public.N()

	for i := 0; i < 5; i++ {
		r, err := keyPair.Public.Coprime()
		if err != nil {
			t.Fatalf("Coprime draw failed: %v", err)
		}
		if r.Sign() <= 0 || r.Cmp(n) >= 0 {
			t.Errorf("Expected r in [1, n), got %s", r)
		}
		if new(big.Int).GCD(nil, nil, r, n).Cmp(big.NewInt(1)) != 0 {
			t.Errorf("Expected gcd(r, n) = 1, got r = %s", r)
		}
	}
}

func TestBlinding(t *testing.T) {
	keyPair := testKeyPair(t)
	n := keyPair.Public.N()

	r, rSquared, err := keyPair.Public.Blinding()
	if err != nil {
		t.Fatalf("Blinding failed: %v", err)
	}

	expected := new(big.Int).Mul(r, r)
	expected.Mod(expected, n)
	if rSquared.Cmp(expected) != 0 {
		t.Errorf("Expected r² mod n = %s, got %s", expected, rSquared)
	}
}

func TestUnblindSignature_NonInvertibleFactor(t *testing.T) {
	key := smallTestKey(t)
	public := key.Public()

	signature, err := key.RawSign(big.NewInt(4))
	if err != nil {
		t.Fatalf("RawSign failed: %v", err)
	}

	// 7 divides n = 77, so it has no inverse.
	_, err = public.UnblindSignature(signature, big.NewInt(7))
	if !errors.Is(err, ErrInvalidSignature) {
		t.Errorf("Expected ErrInvalidSignature for non-invertible factor, got %v", err)
	}
}

func TestUnblindSignature_Malformed(t *testing.T) {
	keyPair := testKeyPair(t)

	_, err := keyPair.Public.UnblindSignature([]byte{0xFF, 0x01}, big.NewInt(3))
	if !errors.Is(err, ErrInvalidSignature) {
		t.Errorf("Expected ErrInvalidSignature for malformed signature, got %v", err)
	}
}
