package keyfile

import (
	"math/big"
	"os"
	"path/filepath"
	"testing"

	"github.com/TheFrozenFire/rabin-williams-signatures/pkg/rabinwilliams"
)

func testPrivateKey(t *testing.T) *rabinwilliams.PrivateKey {
	t.Helper()
	key, err := rabinwilliams.NewPrivateKey(big.NewInt(11), big.NewInt(7))
	if err != nil {
		t.Fatalf("Failed to build test key: %v", err)
	}
	return key
}

func TestPrivateKeyRoundTrip(t *testing.T) {
	key := testPrivateKey(t)
	path := filepath.Join(t.TempDir(), "private_key.hex")

	if err := WritePrivateKey(path, key); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	loaded, err := ReadPrivateKey(path, rabinwilliams.SHA256Hasher)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	if loaded.P().Cmp(key.P()) != 0 || loaded.Q().Cmp(key.Q()) != 0 {
		t.Error("Loaded primes do not match the written key")
	}
}

func TestPublicKeyRoundTrip(t *testing.T) {
	key := testPrivateKey(t).Public()
	path := filepath.Join(t.TempDir(), "public_key.hex")

	if err := WritePublicKey(path, key); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	loaded, err := ReadPublicKey(path, rabinwilliams.SHA256Hasher)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}

	if loaded.N().Cmp(key.N()) != 0 {
		t.Error("Loaded modulus does not match the written key")
	}
}

func TestReadPrivateKey_Invalid(t *testing.T) {
	dir := t.TempDir()

	cases := []struct {
		name    string
		content string
	}{
		{"single line", "0b"},
		{"bad hex", "zz\n07"},
		// 7 ≡ 7 and 11 ≡ 3 (mod 8): valid primes in the wrong order must
		// be rejected at load time, not trusted.
		{"swapped primes", "07\n0b"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, "key.hex")
			if err := os.WriteFile(path, []byte(tc.content), 0o600); err != nil {
				t.Fatalf("Failed to write fixture: %v", err)
			}

			if _, err := ReadPrivateKey(path, rabinwilliams.SHA256Hasher); err == nil {
				t.Error("Expected load to fail")
			}
		})
	}
}

func TestReadPrivateKey_Missing(t *testing.T) {
	if _, err := ReadPrivateKey(filepath.Join(t.TempDir(), "nope.hex"), rabinwilliams.SHA256Hasher); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestHexRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "value.hex")
	data := []byte{0x01, 0xab, 0xff}

	if err := WriteHex(path, data); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	loaded, err := ReadHex(path)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if string(loaded) != string(data) {
		t.Errorf("Expected %x, got %x", data, loaded)
	}
}
