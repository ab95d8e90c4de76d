package rabinwilliams

import (
	"crypto/rand"
	"math/big"
	"sync"
	"testing"
)

var (
	testKeyOnce sync.Once
	testKey     *KeyPair
	testKeyErr  error
)

// testKeyPair returns a shared 1024-bit key pair, generated once per test
// binary to keep the suite fast.
func testKeyPair(t *testing.T) *KeyPair {
	t.Helper()
	testKeyOnce.Do(func() {
		testKey, testKeyErr = GenerateKeyPair(1024)
	})
	if testKeyErr != nil {
		t.Fatalf("Failed to generate shared test key pair: %v", testKeyErr)
	}
	return testKey
}

// smallTestKey builds a toy key from the primes 11 and 7 (n = 77), small
// enough to check signature arithmetic exhaustively.
func smallTestKey(t *testing.T) *PrivateKey {
	t.Helper()
	key, err := NewPrivateKey(big.NewInt(11), big.NewInt(7))
	if err != nil {
		t.Fatalf("Failed to build small test key: %v", err)
	}
	return key
}

// randomMessage returns a random byte string between 10 and 100 bytes long.
func randomMessage(t *testing.T) []byte {
	t.Helper()
	length, err := rand.Int(rand.Reader, big.NewInt(91))
	if err != nil {
		t.Fatalf("Failed to draw message length: %v", err)
	}
	message := make([]byte, length.Int64()+10)
	if _, err := rand.Read(message); err != nil {
		t.Fatalf("Failed to draw message bytes: %v", err)
	}
	return message
}
