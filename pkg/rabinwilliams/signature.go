package rabinwilliams

import (
	"fmt"
	"math/big"
)

// Signature wire format: one flag byte followed by the big-endian magnitude
// of x. Bit 0 of the flag byte is set when e = -1, bit 1 when f = 2; bits
// 2-7 are reserved and must be zero. A well-formed signature is at least
// two bytes.
const (
	flagNegated = 0x01
	flagDoubled = 0x02
	flagsMask   = flagNegated | flagDoubled
)

// PackSignature encodes the transform tags e ∈ {1, -1}, f ∈ {1, 2} and the
// signature magnitude x into the wire format.
func PackSignature(e, f int, x *big.Int) []byte {
	magnitude := x.Bytes()
	if len(magnitude) == 0 {
		magnitude = []byte{0}
	}

	var flags byte
	if e == -1 {
		flags |= flagNegated
	}
	if f == 2 {
		flags |= flagDoubled
	}

	signature := make([]byte, 0, 1+len(magnitude))
	signature = append(signature, flags)
	return append(signature, magnitude...)
}

// ExtractSignature decodes the wire format back into (e, f, x). It fails
// with ErrInvalidSignature when the signature is shorter than two bytes or
// any reserved flag bit is set.
func ExtractSignature(signature []byte) (e, f int, x *big.Int, err error) {
	if len(signature) < 2 {
		return 0, 0, nil, fmt.Errorf("signature is %d bytes, minimum is 2: %w", len(signature), ErrInvalidSignature)
	}

	flags := signature[0]
	if flags&^byte(flagsMask) != 0 {
		return 0, 0, nil, fmt.Errorf("reserved flag bits set in leading byte %#02x: %w", flags, ErrInvalidSignature)
	}

	e, f = 1, 1
	if flags&flagNegated != 0 {
		e = -1
	}
	if flags&flagDoubled != 0 {
		f = 2
	}

	return e, f, new(big.Int).SetBytes(signature[1:]), nil
}
