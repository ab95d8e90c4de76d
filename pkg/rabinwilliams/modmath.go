package rabinwilliams

import (
	"fmt"
	"math/big"
)

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// IsQuadraticResidue reports whether a is a quadratic residue modulo the
// prime p, using Euler's criterion: a^((p-1)/2) ≡ 1 (mod p).
//
// Returns false for p ∈ {0, 1}. Behavior is undefined when p is not an odd
// prime.
func IsQuadraticResidue(a, p *big.Int) bool {
	if p.Sign() == 0 || p.Cmp(one) == 0 {
		return false
	}
	exp := new(big.Int).Sub(p, one)
	exp.Rsh(exp, 1)
	return new(big.Int).Exp(a, exp, p).Cmp(one) == 0
}

// ModInverse computes the multiplicative inverse of a modulo m using the
// extended Euclidean algorithm. It returns nil when no inverse exists
// (gcd(a, m) ≠ 1) or m is zero. The result, if any, lies in [0, m).
func ModInverse(a, m *big.Int) *big.Int {
	if m.Sign() == 0 {
		return nil
	}

	t, newT := new(big.Int), big.NewInt(1)
	r, newR := new(big.Int).Set(m), new(big.Int).Set(a)

	for newR.Sign() != 0 {
		quotient := new(big.Int).Quo(r, newR)
		t, newT = newT, new(big.Int).Sub(t, new(big.Int).Mul(quotient, newT))
		r, newR = newR, new(big.Int).Sub(r, new(big.Int).Mul(quotient, newR))
	}

	if r.Cmp(one) > 0 {
		return nil
	}
	if t.Sign() < 0 {
		t.Add(t, m)
	}
	return t
}

// ChineseRemainderTheorem solves the system x ≡ remainders[i] (mod moduli[i])
// for pairwise-coprime moduli, returning the unique solution modulo the
// product of the moduli.
//
// It fails with ErrComputation when the slices are empty or of different
// lengths, or when a modulus is not coprime to the others.
func ChineseRemainderTheorem(remainders, moduli []*big.Int) (*big.Int, error) {
	if len(remainders) != len(moduli) || len(remainders) == 0 {
		return nil, fmt.Errorf("mismatched or empty remainder and modulus inputs: %w", ErrComputation)
	}

	prod := big.NewInt(1)
	for _, m := range moduli {
		prod.Mul(prod, m)
	}

	sum := new(big.Int)
	for i := range remainders {
		p := new(big.Int).Div(prod, moduli[i])
		inv := ModInverse(p, moduli[i])
		if inv == nil {
			return nil, fmt.Errorf("modulus %s is not coprime to the remaining moduli: %w", moduli[i], ErrComputation)
		}

		term := new(big.Int).Mul(remainders[i], p)
		term.Mul(term, inv)
		sum.Add(sum, term)
	}

	return sum.Mod(sum, prod), nil
}

// ModSqrt computes a square root of a modulo the prime p using the
// Tonelli-Shanks algorithm, with the closed-form shortcut a^((p+1)/4) when
// p ≡ 3 (mod 4).
//
// It fails with ErrInvalidPrime when p ≤ 1 and ErrSquareRootModPrime when a
// is not a quadratic residue modulo p.
//
// The deterministic signing path never calls this: the key primes are all
// ≡ 3 (mod 4), so signing uses the shortcut exponent directly. ModSqrt is
// the general algorithm that shortcut specializes, kept for auditing and
// for primes of unconstrained form.
func ModSqrt(a, p *big.Int) (*big.Int, error) {
	if p.Cmp(one) <= 0 {
		return nil, fmt.Errorf("modulus %s is not an odd prime: %w", p, ErrInvalidPrime)
	}
	if !IsQuadraticResidue(a, p) {
		return nil, fmt.Errorf("%s is not a quadratic residue modulo %s: %w", a, p, ErrSquareRootModPrime)
	}

	if new(big.Int).Mod(p, big.NewInt(4)).Cmp(big.NewInt(3)) == 0 {
		exp := new(big.Int).Add(p, one)
		exp.Rsh(exp, 2)
		return new(big.Int).Exp(a, exp, p), nil
	}

	// Factor p-1 as q·2^s with q odd.
	q := new(big.Int).Sub(p, one)
	s := uint(0)
	for q.Bit(0) == 0 {
		s++
		q.Rsh(q, 1)
	}

	// Find a quadratic non-residue z.
	z := big.NewInt(2)
	for IsQuadraticResidue(z, p) {
		z.Add(z, one)
	}

	c := new(big.Int).Exp(z, q, p)
	halfQ := new(big.Int).Add(q, one)
	halfQ.Rsh(halfQ, 1)
	r := new(big.Int).Exp(a, halfQ, p)
	t := new(big.Int).Exp(a, q, p)
	m := s

	for t.Cmp(one) != 0 {
		// Find the least i < m with t^(2^i) ≡ 1.
		i := uint(0)
		temp := new(big.Int).Set(t)
		for temp.Cmp(one) != 0 && i < m {
			temp.Mul(temp, temp)
			temp.Mod(temp, p)
			i++
		}
		if i == m {
			return nil, fmt.Errorf("tonelli-shanks did not converge for %s modulo %s: %w", a, p, ErrSquareRootModPrime)
		}

		b := new(big.Int).Exp(c, new(big.Int).Lsh(one, m-i-1), p)
		r.Mul(r, b)
		r.Mod(r, p)
		c.Mul(b, b)
		c.Mod(c, p)
		t.Mul(t, c)
		t.Mod(t, p)
		m = i
	}

	return r, nil
}

// makeQuadraticResidue maps a to a value that is a quadratic residue modulo
// both p and q by trying, in order, a, n-a, 2a, and 2(n-a) where n = p·q.
// The returned e ∈ {1, -1} and f ∈ {1, 2} record which transform applied.
//
// When both primes are ≡ 3 (mod 4), exactly one of the four candidates is a
// joint residue, so the search cannot fail for keys constructed by this
// package. Exhaustion means the primes violate their congruence invariant
// and is treated as a programming error.
func makeQuadraticResidue(a, p, q *big.Int) (*big.Int, int, int) {
	n := new(big.Int).Mul(p, q)
	a = new(big.Int).Mod(a, n)
	negA := new(big.Int).Sub(n, a)

	candidates := []struct {
		value *big.Int
		e, f  int
	}{
		{a, 1, 1},
		{negA, -1, 1},
		{new(big.Int).Mod(new(big.Int).Mul(a, two), n), 1, 2},
		{new(big.Int).Mod(new(big.Int).Mul(negA, two), n), -1, 2},
	}

	for _, c := range candidates {
		if IsQuadraticResidue(c.value, p) && IsQuadraticResidue(c.value, q) {
			return c.value, c.e, c.f
		}
	}

	panic("rabinwilliams: no quadratic residue among transform candidates; key primes violate the 3 (mod 4) congruence")
}
