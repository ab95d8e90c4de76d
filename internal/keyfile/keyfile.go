// Package keyfile reads and writes hex-encoded Rabin-Williams key material.
//
// A private key file holds two hex-encoded big-endian integers, p and q, one
// per line. A public key file holds a single hex-encoded modulus n. Hex
// values are also used for detached signatures, blinded messages, and
// blinding factors exchanged during the blind-signature protocol.
package keyfile

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"os"
	"strings"

	"github.com/TheFrozenFire/rabin-williams-signatures/pkg/rabinwilliams"
)

// WritePrivateKey writes p and q as two hex lines, readable only by the
// owner.
func WritePrivateKey(path string, key *rabinwilliams.PrivateKey) error {
	content := fmt.Sprintf("%s\n%s",
		hex.EncodeToString(key.P().Bytes()),
		hex.EncodeToString(key.Q().Bytes()))
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		return fmt.Errorf("writing private key: %w", err)
	}
	return nil
}

// ReadPrivateKey loads a private key, re-validating the prime congruences
// before constructing it. The hasher becomes the key's hash function.
func ReadPrivateKey(path string, hasher rabinwilliams.Hasher) (*rabinwilliams.PrivateKey, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading private key: %w", err)
	}

	lines := strings.Split(strings.TrimSpace(string(content)), "\n")
	if len(lines) < 2 {
		return nil, fmt.Errorf("private key file %s must contain two hex lines (p, q)", path)
	}

	p, err := decodeHexInt(lines[0])
	if err != nil {
		return nil, fmt.Errorf("decoding p: %w", err)
	}
	q, err := decodeHexInt(lines[1])
	if err != nil {
		return nil, fmt.Errorf("decoding q: %w", err)
	}

	return rabinwilliams.NewPrivateKeyWithHasher(p, q, hasher)
}

// WritePublicKey writes the modulus n as a single hex line.
func WritePublicKey(path string, key *rabinwilliams.PublicKey) error {
	content := hex.EncodeToString(key.N().Bytes())
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing public key: %w", err)
	}
	return nil
}

// ReadPublicKey loads a public key. The hasher becomes the key's hash
// function.
func ReadPublicKey(path string, hasher rabinwilliams.Hasher) (*rabinwilliams.PublicKey, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading public key: %w", err)
	}

	n, err := decodeHexInt(strings.TrimSpace(string(content)))
	if err != nil {
		return nil, fmt.Errorf("decoding modulus: %w", err)
	}

	return rabinwilliams.NewPublicKeyWithHasher(n, hasher)
}

// WriteHex writes arbitrary bytes (signatures, blinded values, blinding
// factors) as a hex string.
func WriteHex(path string, data []byte) error {
	if err := os.WriteFile(path, []byte(hex.EncodeToString(data)), 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// ReadHex reads a hex string back into bytes.
func ReadHex(path string) ([]byte, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	data, err := hex.DecodeString(strings.TrimSpace(string(content)))
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return data, nil
}

func decodeHexInt(s string) (*big.Int, error) {
	raw, err := hex.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return nil, err
	}
	return new(big.Int).SetBytes(raw), nil
}
