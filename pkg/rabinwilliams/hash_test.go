package rabinwilliams

import (
	"math/big"
	"testing"
)

func TestHasher_KnownVector(t *testing.T) {
	// SHA-256("Hello, World!")
	expected, _ := new(big.Int).SetString("dffd6021bb2bd5b0af676290809ec3a53191dd81c7f70a4b28688a362182986f", 16)

	got := SHA256Hasher.Hash([]byte("Hello, World!"))
	if got.Cmp(expected) != 0 {
		t.Errorf("Expected %s, got %s", expected.Text(16), got.Text(16))
	}
}

func TestHasher_Deterministic(t *testing.T) {
	message := []byte("Hello, World!")

	for _, hasher := range []Hasher{SHA256Hasher, SHA512Hasher, SHA3256Hasher, BLAKE2b256Hasher} {
		first := hasher.Hash(message)
		second := hasher.Hash(message)
		if first.Cmp(second) != 0 {
			t.Errorf("%s: expected deterministic output", hasher.Name())
		}
		if first.Sign() == 0 {
			t.Errorf("%s: unexpected zero digest", hasher.Name())
		}
	}
}

func TestHasher_DistinctFunctions(t *testing.T) {
	message := []byte("Hello, World!")

	digests := map[string]*big.Int{}
	for _, hasher := range []Hasher{SHA256Hasher, SHA512Hasher, SHA3256Hasher, BLAKE2b256Hasher} {
		digests[hasher.Name()] = hasher.Hash(message)
	}

	for name, digest := range digests {
		for otherName, other := range digests {
			if name != otherName && digest.Cmp(other) == 0 {
				t.Errorf("Expected %s and %s to produce different digests", name, otherName)
			}
		}
	}
}

func TestHasherByName(t *testing.T) {
	for _, name := range []string{"sha256", "sha512", "sha3-256", "blake2b-256"} {
		hasher, err := HasherByName(name)
		if err != nil {
			t.Errorf("Expected %q to resolve, got %v", name, err)
			continue
		}
		if hasher.Name() != name {
			t.Errorf("Expected name %q, got %q", name, hasher.Name())
		}
	}

	if _, err := HasherByName("md5"); err == nil {
		t.Error("Expected unknown hash name to be rejected")
	}
}
