// Package rabinwilliams implements the Rabin-Williams digital signature
// scheme: key generation over primes of constrained residue class,
// deterministic single-pass signing, verification, and a multiplicative
// blind-signature protocol.
//
// Signatures satisfy e·f·x² ≡ H(m) (mod n) where e ∈ {-1, 1}, f ∈ {1, 2},
// n = p·q with p ≡ 3 (mod 8) and q ≡ 7 (mod 8), and H is a pluggable hash
// function. The prime congruences guarantee that exactly one of the four
// transforms of H(m) is a quadratic residue modulo both primes, which makes
// signing deterministic: no retries, no padding counters.
//
// # Quick Start
//
//	import "github.com/TheFrozenFire/rabin-williams-signatures/pkg/rabinwilliams"
//
//	keyPair, err := rabinwilliams.GenerateKeyPair(1024)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	signature, err := keyPair.Private.Sign([]byte("Hello, World!"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	valid, err := keyPair.Public.Verify([]byte("Hello, World!"), signature)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(valid) // true
//
// # Blind Signatures
//
// The requester blinds a message so the signer learns neither the message
// nor its hash, then removes the mask from the resulting signature:
//
//	blinded, r, err := keyPair.Public.BlindMessage(message)
//	// send blinded to the signer
//	blindSig, err := keyPair.Private.RawSign(blinded)
//	// requester unblinds and verifies against the original message
//	signature, err := keyPair.Public.UnblindSignature(blindSig, r)
//	valid, err := keyPair.Public.Verify(message, signature)
//
// The blinding factor r is a single-use secret: it must never be sent to the
// signer and should be discarded after unblinding.
//
// # Custom Hash Functions
//
// Keys carry the hash function used for both signing and verification.
// SHA-256 is the default; any hash.Hash constructor works:
//
//	keyPair, err := rabinwilliams.GenerateKeyPairWithHasher(1024, rabinwilliams.SHA3256Hasher)
package rabinwilliams
