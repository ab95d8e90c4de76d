package rabinwilliams

import "errors"

var (
	// ErrInvalidKeySize is returned when a requested key size is below the
	// 1024-bit minimum, or a supplied modulus is not usable.
	ErrInvalidKeySize = errors.New("invalid key size")

	// ErrInvalidPrime is returned when the prime search exhausts its budget,
	// or externally supplied primes fail the congruence and primality checks.
	ErrInvalidPrime = errors.New("invalid prime number")

	// ErrMessageTooLarge is returned when a raw value to sign is not below
	// the modulus.
	ErrMessageTooLarge = errors.New("message too large")

	// ErrInvalidSignature is returned for structurally malformed signatures
	// and for unblinding with a non-invertible blinding factor. A signature
	// that decodes but does not verify is reported as a boolean false, not
	// as an error.
	ErrInvalidSignature = errors.New("invalid signature")

	// ErrSquareRootModPrime is returned by ModSqrt for non-residues.
	ErrSquareRootModPrime = errors.New("square root modulo prime computation failed")

	// ErrComputation is returned for internal arithmetic failures such as
	// malformed Chinese Remainder Theorem inputs.
	ErrComputation = errors.New("internal computation error")
)
