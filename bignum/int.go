// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements signed multi-precision integers: the Z-layer
// that wraps nat with a sign and dispatches arithmetic into the N-layer
// kernels in natarith.go/natdiv.go.

package bignum

// An Int represents a signed multi-precision integer. The zero value
// for an Int represents the value 0.
type Int struct {
	neg bool // sign
	abs nat  // absolute value
}

var intOne = &Int{false, natOne}

// --- construction and raw access -------------------------------------

// SetInt64 sets z to x and returns z.
func (z *Int) SetInt64(x int64) *Int {
	mag := uint64(x)
	neg := x < 0
	if neg {
		mag = uint64(-x)
	}
	z.abs = z.abs.setUint64(mag)
	z.neg = neg
	return z
}

// SetUint64 sets z to x and returns z.
func (z *Int) SetUint64(x uint64) *Int {
	z.abs = z.abs.setUint64(x)
	z.neg = false
	return z
}

// NewInt allocates and returns a new Int set to x.
func NewInt(x int64) *Int {
	return new(Int).SetInt64(x)
}

// Set sets z to x and returns z.
func (z *Int) Set(x *Int) *Int {
	if z != x {
		z.abs = z.abs.set(x.abs)
		z.neg = x.neg
	}
	return z
}

// Bits provides raw, unchecked access to x's absolute value as a
// little-endian Word slice. The result shares x's underlying array.
func (x *Int) Bits() []Word {
	return x.abs
}

// SetBits sets z's absolute value to abs (little-endian Word slice,
// shared with the caller) and its sign to nonnegative, returning z.
func (z *Int) SetBits(abs []Word) *Int {
	z.abs = nat(abs).norm()
	z.neg = false
	return z
}

// Bytes returns the absolute value of x as a big-endian byte slice,
// using the minimal number of bytes (no sign is encoded).
func (x *Int) Bytes() []byte {
	return x.abs.exportBytes(0, BigEndian)
}

// SetBytes interprets buf as the big-endian magnitude of an unsigned
// integer, sets z to that value, and returns z.
func (z *Int) SetBytes(buf []byte) *Int {
	z.abs = z.abs.setBytes(buf)
	z.neg = false
	return z
}

// ExportBytes returns the absolute value of x as a byte slice of
// exactly width bytes in the given endianness (0 means minimal
// big-endian length). Panics if x does not fit in width bytes.
func (x *Int) ExportBytes(width int, endian Endian) []byte {
	return x.abs.exportBytes(width, endian)
}

// ImportBytes interprets buf as an unsigned magnitude in the given
// endianness, sets z to that value, and returns z.
func (z *Int) ImportBytes(buf []byte, endian Endian) *Int {
	z.abs = z.abs.importBytes(buf, endian)
	z.neg = false
	return z
}

func loWord64(abs nat) uint64 {
	if len(abs) == 0 {
		return 0
	}
	v := uint64(abs[0])
	if _W == 32 && len(abs) > 1 {
		v |= uint64(abs[1]) << 32
	}
	return v
}

// Int64 returns the int64 representation of x. If x cannot be
// represented in an int64, the result is undefined.
func (x *Int) Int64() int64 {
	v := int64(loWord64(x.abs))
	if x.neg {
		v = -v
	}
	return v
}

// Uint64 returns the uint64 representation of x. If x cannot be
// represented in a uint64, the result is undefined.
func (x *Int) Uint64() uint64 {
	return loWord64(x.abs)
}

// IsInt64 reports whether x can be exactly represented as an int64.
func (x *Int) IsInt64() bool {
	bl := x.abs.bitLen()
	switch {
	case bl < 64:
		return true
	case bl > 64:
		return false
	default:
		return x.neg && loWord64(x.abs) == 1<<63
	}
}

// --- sign and comparison ----------------------------------------------

// Sign returns -1, 0, or +1 according to whether x is negative, zero,
// or positive.
func (x *Int) Sign() int {
	switch {
	case len(x.abs) == 0:
		return 0
	case x.neg:
		return -1
	default:
		return 1
	}
}

// Abs sets z to |x| and returns z.
func (z *Int) Abs(x *Int) *Int {
	z.Set(x)
	z.neg = false
	return z
}

// Neg sets z to -x and returns z.
func (z *Int) Neg(x *Int) *Int {
	z.Set(x)
	z.neg = len(z.abs) > 0 && !z.neg // 0 has no sign
	return z
}

// Cmp compares x and y, returning -1, 0, or +1.
func (x *Int) Cmp(y *Int) int {
	if x.neg != y.neg {
		if x.neg {
			return -1
		}
		return 1
	}
	c := x.abs.cmp(y.abs)
	if x.neg {
		return -c
	}
	return c
}

// CmpAbs compares |x| and |y|, returning -1, 0, or +1.
func (x *Int) CmpAbs(y *Int) int {
	return x.abs.cmp(y.abs)
}

// BitLen returns the length of |x| in bits; BitLen(0) == 0.
func (x *Int) BitLen() int {
	return x.abs.bitLen()
}

// --- addition and subtraction ------------------------------------------

// addAbs adds or subtracts the magnitudes of x and y according to
// wantSub, resolving the sign of the result the way elementary algebra
// does when the operand signs disagree; shared by Add and Sub so the
// four sign-combination cases live in one place instead of two nearly
// identical switches.
func (z *Int) addAbs(x, y *Int, wantSub bool) *Int {
	sameSign := x.neg == y.neg
	if wantSub {
		sameSign = !sameSign
	}

	neg := x.neg
	if sameSign {
		z.abs = z.abs.add(x.abs, y.abs)
	} else if x.abs.cmp(y.abs) >= 0 {
		z.abs = z.abs.sub(x.abs, y.abs)
	} else {
		neg = !neg
		z.abs = z.abs.sub(y.abs, x.abs)
	}
	z.neg = len(z.abs) > 0 && neg
	return z
}

// Add sets z to x+y and returns z.
func (z *Int) Add(x, y *Int) *Int {
	return z.addAbs(x, y, false)
}

// Sub sets z to x-y and returns z.
func (z *Int) Sub(x, y *Int) *Int {
	return z.addAbs(x, y, true)
}

// --- multiplication and exponentiation-by-range -----------------------

// Mul sets z to x*y and returns z.
func (z *Int) Mul(x, y *Int) *Int {
	z.abs = z.abs.mul(x.abs, y.abs)
	z.neg = len(z.abs) > 0 && x.neg != y.neg
	return z
}

// MulRange sets z to the product of all integers in [a, b] and returns
// z. If a > b (an empty range) the result is 1.
func (z *Int) MulRange(a, b int64) *Int {
	switch {
	case a > b:
		return z.SetInt64(1)
	case a <= 0 && b >= 0:
		return z.SetInt64(0)
	}
	neg := false
	if a < 0 {
		neg = (b-a)&1 == 0
		a, b = -b, -a
	}
	z.abs = z.abs.mulRange(uint64(a), uint64(b))
	z.neg = neg
	return z
}

// Binomial sets z to the binomial coefficient C(n, k) and returns z.
func (z *Int) Binomial(n, k int64) *Int {
	if complement := n - k; k > complement && complement >= 0 {
		k = complement
	}
	var numer, denom Int
	numer.MulRange(n-k+1, n)
	denom.MulRange(1, k)
	return z.Quo(&numer, &denom)
}

// --- division: truncated (Quo/Rem/QuoRem) and Euclidean (Div/Mod) -----

// Quo sets z to the truncated quotient x/y and returns z. Panics if
// y == 0. See QuoRem for the precise semantics of truncated division.
func (z *Int) Quo(x, y *Int) *Int {
	z.abs, _ = z.abs.div(nil, x.abs, y.abs)
	z.neg = len(z.abs) > 0 && x.neg != y.neg
	return z
}

// Rem sets z to the truncated remainder x%y and returns z.
func (z *Int) Rem(x, y *Int) *Int {
	_, z.abs = nat(nil).div(z.abs, x.abs, y.abs)
	z.neg = len(z.abs) > 0 && x.neg
	return z
}

// QuoRem sets z to the truncated quotient x/y and r to the truncated
// remainder x%y, returning (z, r). Truncated division rounds the
// quotient toward zero: q = trunc(x/y), r = x - y*q.
func (z *Int) QuoRem(x, y, r *Int) (*Int, *Int) {
	z.abs, r.abs = z.abs.div(r.abs, x.abs, y.abs)
	z.neg, r.neg = len(z.abs) > 0 && x.neg != y.neg, len(r.abs) > 0 && x.neg
	return z, r
}

// Div sets z to the Euclidean quotient x div y and returns z: the
// unique q such that x = y*q + r with 0 <= r < |y|.
func (z *Int) Div(x, y *Int) *Int {
	divisorNeg := y.neg // z may alias y; read its sign before it's clobbered
	var r Int
	z.QuoRem(x, y, &r)
	if !r.neg {
		return z
	}
	if divisorNeg {
		return z.Add(z, intOne)
	}
	return z.Sub(z, intOne)
}

// Mod sets z to the Euclidean modulus x mod y and returns z: the unique
// r such that x = y*q + r with 0 <= r < |y|.
func (z *Int) Mod(x, y *Int) *Int {
	divisor := y
	if z == y || alias(z.abs, y.abs) {
		divisor = new(Int).Set(y)
	}
	var q Int
	q.QuoRem(x, y, z)
	if !z.neg {
		return z
	}
	if divisor.neg {
		return z.Sub(z, divisor)
	}
	return z.Add(z, divisor)
}

// DivMod sets z to x div y and m to x mod y (Euclidean division, 0 <= m
// < |y|), returning (z, m).
func (z *Int) DivMod(x, y, m *Int) (*Int, *Int) {
	divisor := y
	if z == y || alias(z.abs, y.abs) {
		divisor = new(Int).Set(y)
	}
	z.QuoRem(x, y, m)
	if !m.neg {
		return z, m
	}
	if divisor.neg {
		z.Add(z, intOne)
		m.Sub(m, divisor)
	} else {
		z.Sub(z, intOne)
		m.Add(m, divisor)
	}
	return z, m
}

// --- shifts and bitwise ops on the underlying magnitude are in intbits.go

// Lsh sets z = x << n and returns z.
func (z *Int) Lsh(x *Int, n uint) *Int {
	z.abs = z.abs.shl(x.abs, n)
	z.neg = x.neg
	return z
}

// Rsh sets z = x >> n (arithmetic shift, rounding toward -infinity) and
// returns z.
func (z *Int) Rsh(x *Int, n uint) *Int {
	if !x.neg {
		z.abs = z.abs.shr(x.abs, n)
		z.neg = false
		return z
	}
	t := z.abs.sub(x.abs, natOne)
	t = t.shr(t, n)
	z.abs = t.add(t, natOne)
	z.neg = true
	return z
}

// --- number theory: gcd, modular inverse, Jacobi symbol, modular sqrt --

// GCD sets z to the greatest common divisor of a and b, which must both
// be positive, and returns z. If x and y are non-nil, GCD additionally
// sets them to the Bezout coefficients such that a*x + b*y = z. If x and
// y are both nil, binary GCD is used directly.
func (z *Int) GCD(x, y, a, b *Int) *Int {
	if a.Sign() <= 0 || b.Sign() <= 0 {
		z.SetInt64(0)
		if x != nil {
			x.SetInt64(0)
		}
		if y != nil {
			y.SetInt64(0)
		}
		return z
	}
	if x == nil && y == nil {
		z.abs = z.abs.gcd(a.abs, b.abs)
		z.neg = false
		return z
	}

	// extended Euclid: a*s0 + b*t == r0 and a*s1 + b*t' == r1 throughout
	r0, r1 := new(Int).Set(a), new(Int).Set(b)
	s0, s1 := NewInt(1), NewInt(0)
	for r1.Sign() != 0 {
		q, r := new(Int).QuoRem(r0, r1, new(Int))
		r0, r1, s0, s1 = r1, r, s1, new(Int).Sub(s0, new(Int).Mul(q, s1))
	}
	t0 := new(Int).Sub(r0, new(Int).Mul(a, s0))
	t0.Quo(t0, b)
	z.Set(r0)
	if x != nil {
		x.Set(s0)
	}
	if y != nil {
		y.Set(t0)
	}
	return z
}

// ModInverse sets z to the multiplicative inverse of g in Z/nZ and
// returns z, or returns nil if g and n are not coprime.
func (z *Int) ModInverse(g, n *Int) *Int {
	if n.abs[0]&1 == 0 {
		var d Int
		d.GCD(z, nil, g, n)
		if d.Cmp(intOne) != 0 {
			return nil
		}
		if z.neg {
			z.Add(z, n)
		}
		return z
	}
	var r Int
	r.Mod(g, n)
	inv, ok := invert(r.abs, n.abs)
	if !ok {
		return nil
	}
	z.abs, z.neg = inv, false
	return z
}

// ModInverseConstantTime sets z to the multiplicative inverse of g modulo
// the prime p and returns z, computed via Fermat's little theorem
// (g^(p-2) mod p) through the fixed-window Montgomery powm rather than
// Penk's right-shift algorithm. Unlike ModInverse, no step branches on
// g's bits or magnitude; only p's bit length is observable. p must be an
// odd prime greater than 2 -- this is the caller's responsibility to
// establish (e.g. via ProbablyPrime), since primality is not re-checked
// here.
func (z *Int) ModInverseConstantTime(g, p *Int) *Int {
	var r Int
	r.Mod(g, p)
	z.abs = secInvert(r.abs, p.abs)
	z.neg = false
	return z
}

// Jacobi returns the Jacobi symbol (x/y), which must have an odd y.
func Jacobi(x, y *Int) int {
	if len(y.abs) == 0 || y.abs[0]&1 == 0 {
		panic("bignum: Jacobi requires an odd second argument")
	}
	sign := 1
	if y.neg && x.neg {
		sign = -1
	}
	var absY Int
	absY.Abs(y)

	reduced := new(Int).Set(x)
	if reduced.neg {
		// jacobi is only defined over a nonnegative first argument;
		// reduce mod |y| first so natgcd's jacobi never sees a
		// negative operand.
		reduced.Mod(reduced, &absY)
	}
	return sign * jacobi(reduced.abs, absY.abs)
}

// ModSqrt sets z to a square root of x mod p (p an odd prime) and
// returns z, or returns nil if x is not a quadratic residue mod p.
func (z *Int) ModSqrt(x, p *Int) *Int {
	var reduced Int
	reduced.Mod(x, p)
	r, ok := sqrtModP(reduced.abs, p.abs)
	if !ok {
		return nil
	}
	z.abs, z.neg = r, false
	return z
}

// --- exponentiation and roots -------------------------------------------

// Exp sets z = x^y mod |m| (or z = x^y if m == nil) and returns z. If
// y < 0 and m != nil, computes the modular inverse of x first (x and m
// must then be coprime). A negative exponent with m == nil returns 1 for
// |x| != 1, matching the documented undefined-but-safe behavior of the
// teacher's own Exp.
func (z *Int) Exp(x, y, m *Int) *Int {
	var exponent nat
	if y != nil {
		exponent = y.abs
	}

	if y != nil && y.neg {
		if m == nil {
			return z.SetInt64(1)
		}
		inverse := new(Int).ModInverse(x, m)
		if inverse == nil {
			return nil
		}
		x = inverse
	}

	oddExponent := len(exponent) > 0 && exponent[0]&1 == 1

	if m == nil {
		z.abs = z.abs.pow(x.abs, exponent)
		z.neg = x.neg && oddExponent && len(z.abs) > 0
		return z
	}

	z.abs = z.abs.powm(x.abs, exponent, m.abs)
	if x.neg && oddExponent && len(z.abs) > 0 {
		z.abs = z.abs.sub(m.abs, z.abs)
	}
	z.neg = false
	return z
}

// ExpConstantTime sets z = x^y mod m and returns z, like Exp, but runs
// the fixed-window Montgomery path (natexp.go's powmConstantTime) so
// that no squaring or multiplication is skipped based on y's bits. Use
// this instead of Exp whenever y is a secret (an RSA or DH private
// exponent); m must be odd and y, m non-negative.
func (z *Int) ExpConstantTime(x, y, m *Int) *Int {
	if y.neg || m.neg {
		panic("bignum: ExpConstantTime requires non-negative y and m")
	}
	oddExponent := len(y.abs) > 0 && y.abs[0]&1 == 1
	z.abs = z.abs.powmConstantTime(x.abs, y.abs, m.abs)
	if x.neg && oddExponent && len(z.abs) > 0 {
		z.abs = z.abs.sub(m.abs, z.abs)
	}
	z.neg = false
	return z
}

// Sqrt sets z to floor(sqrt(x)) and returns z. Panics if x is negative.
func (z *Int) Sqrt(x *Int) *Int {
	return z.Root(x, 2)
}

// Root sets z to floor(x^(1/k)) and returns z. Panics if x is negative
// or k < 1; odd k accepts a negative x (the real root is then negative).
func (z *Int) Root(x *Int, k uint) *Int {
	if k == 0 {
		panic("bignum: Root requires k >= 1")
	}
	if x.neg && k%2 == 0 {
		panic("bignum: Root of a negative number requires an odd degree")
	}
	z.abs = z.abs.root(x.abs, k)
	z.neg = x.neg && len(z.abs) > 0
	return z
}

// RootRem sets z to floor(x^(1/k)) and r to x - z^k, returning (z, r).
// Panics under the same conditions as Root.
func (z *Int) RootRem(x *Int, k uint, r *Int) (*Int, *Int) {
	z.Root(x, k)
	var power Int
	power.Exp(z, NewInt(int64(k)), nil)
	r.Sub(x, &power)
	return z, r
}
