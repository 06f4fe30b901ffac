// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the limb-vector kernels: the schoolbook building
// blocks (add/sub/mul/sqr/shift/compare/logic) that nat's higher-level
// methods assemble into full-precision operations. Every kernel here
// operates on caller-owned slices and performs no allocation; growth and
// normalization are the caller's responsibility (nat.go).
//
// Multiplication is deliberately schoolbook-only: no Karatsuba, no
// Toom-Cook, no FFT. Asymptotically faster multiplication is out of
// scope for this engine.

package bignum

// addVV sets z = x+y for equal-length x, y, z and returns the carry out
// of the top limb.
func addVV(z, x, y []Word) (c Word) {
	for i := range z {
		c, z[i] = addWW(x[i], y[i], c)
	}
	return
}

// subVV sets z = x-y for equal-length x, y, z and returns the borrow out
// of the top limb.
func subVV(z, x, y []Word) (c Word) {
	for i := range z {
		c, z[i] = subWW(x[i], y[i], c)
	}
	return
}

// addVW sets z = x+y, where y is a single limb, and returns the carry out.
func addVW(z, x []Word, y Word) (c Word) {
	c = y
	for i := range z {
		c, z[i] = addWW(x[i], c, 0)
	}
	return
}

// subVW sets z = x-y, where y is a single limb, and returns the borrow out.
func subVW(z, x []Word, y Word) (c Word) {
	c = y
	for i := range z {
		c, z[i] = subWW(x[i], c, 0)
	}
	return
}

// shlVU sets z = x<<s, 0 <= s < _W, and returns the bits shifted out of the
// top limb.
func shlVU(z, x []Word, s uint) (c Word) {
	if n := len(z); n > 0 {
		sc := _W - s
		w1 := x[n-1]
		c = w1 >> sc
		for i := n - 1; i > 0; i-- {
			w := w1
			w1 = x[i-1]
			z[i] = w<<s | w1>>sc
		}
		z[0] = w1 << s
	}
	return
}

// shrVU sets z = x>>s, 0 <= s < _W, and returns the bits shifted out of the
// bottom limb, left-justified in the result.
func shrVU(z, x []Word, s uint) (c Word) {
	if n := len(z); n > 0 {
		sc := _W - s
		w1 := x[0]
		c = w1 << sc
		for i := 0; i < n-1; i++ {
			w := w1
			w1 = x[i+1]
			z[i] = w>>s | w1<<sc
		}
		z[n-1] = w1 >> s
	}
	return
}

// mulAddVWW sets z = x*y + r, where y and r are single limbs, and returns
// the carry out of the top limb.
func mulAddVWW(z, x []Word, y, r Word) (c Word) {
	c = r
	for i := range z {
		c, z[i] = mulAddWWW(x[i], y, c)
	}
	return
}

// addMulVVW sets z += x*y, where y is a single limb, and returns the
// carry out of the top limb. This is the inner loop of schoolbook
// multiplication.
func addMulVVW(z, x []Word, y Word) (c Word) {
	for i := range z {
		z1, z0 := mulAddWWW(x[i], y, z[i])
		c, z[i] = addWW(z0, c, 0)
		c += z1
	}
	return
}

// divWVW divides (xn, x) by a single limb using a precomputed divisor d,
// storing the quotient in z and returning the remainder. len(z) == len(x).
//
// d already carries a normalization shift and a Möller-Granlund
// reciprocal (see newDivisor); every limb of the quotient comes from a
// single div2by1 call against that reciprocal rather than a per-limb
// hardware division. The dividend is normalized on the fly: at step i the
// low word handed to div2by1 is x[i] shifted left by shift bits with the
// top shift bits of x[i-1] folded in, exactly as shlVU would produce if the
// whole operand were shifted up front.
func divWVW(z []Word, xn Word, x []Word, d *divisor) (r Word) {
	n := len(z)
	if n == 0 {
		return xn
	}
	shift := d.shift
	yn := d.v[0] << shift
	recip := d.inv

	if shift == 0 {
		r = xn
		for i := n - 1; i >= 0; i-- {
			z[i], r = div2by1(r, x[i], yn, recip)
		}
		return r
	}

	sc := _W - shift
	r = xn<<shift | x[n-1]>>sc
	for i := n - 1; i >= 0; i-- {
		var lo Word
		if i > 0 {
			lo = x[i]<<shift | x[i-1]>>sc
		} else {
			lo = x[i] << shift
		}
		z[i], r = div2by1(r, lo, yn, recip)
	}
	return r >> shift
}

// cmpVV compares x and y of equal length, returning the flags (lt, ne).
// nat.cmp does its own limb comparison and does not call it.
func cmpVV(x, y []Word) (lt, ne Word) {
	for i := len(x) - 1; i >= 0; i-- {
		if x[i] != y[i] {
			ne = 1
			if x[i] < y[i] {
				lt = 1
			}
			return
		}
	}
	return
}

// basicMul computes z = x*y via the schoolbook double loop: len(z) must be
// len(x)+len(y).
func basicMul(z, x, y nat) {
	z.clear()
	for i, yi := range y {
		if yi != 0 {
			z[len(x)+i] = addMulVVW(z[i:i+len(x)], x, yi)
		}
	}
}

// basicSqr computes z = x*x by schoolbook multiplication of x against
// itself. len(z) must be 2*len(x).
func basicSqr(z, x nat) {
	if len(x) == 0 {
		return
	}
	basicMul(z, x, x)
}

// andVV, andNotVV, orVV, xorVV compute the bitwise operation over
// equal-length limb vectors (callers zero-extend via the nat-level
// and/andNot/or/xor wrappers below); notV computes one's complement
// over n limbs. These back intbits.go's two's-complement operators.
func andVV(z, x, y []Word) {
	for i := range z {
		z[i] = x[i] & y[i]
	}
}

func andNotVV(z, x, y []Word) {
	for i := range z {
		z[i] = x[i] &^ y[i]
	}
}

func orVV(z, x, y []Word) {
	for i := range z {
		z[i] = x[i] | y[i]
	}
}

func xorVV(z, x, y []Word) {
	for i := range z {
		z[i] = x[i] ^ y[i]
	}
}

func notV(z, x []Word) {
	for i := range z {
		z[i] = ^x[i]
	}
}

// and sets z = x & y, treating any shorter operand as zero-extended.
func (z nat) and(x, y nat) nat {
	n := len(x)
	if len(y) < n {
		n = len(y)
	}
	z = z.make(n)
	andVV(z, x[:n], y[:n])
	return z.norm()
}

// andNot sets z = x &^ y, treating a shorter y as zero-extended (so
// bits of x beyond len(y) pass through unchanged) and a shorter x as
// zero-extended (so the result is zero beyond len(x)).
func (z nat) andNot(x, y nat) nat {
	z = z.make(len(x))
	n := len(y)
	if n > len(x) {
		n = len(x)
	}
	andNotVV(z[:n], x[:n], y[:n])
	copy(z[n:], x[n:])
	return z.norm()
}

// or sets z = x | y, treating any shorter operand as zero-extended.
func (z nat) or(x, y nat) nat {
	if len(x) < len(y) {
		x, y = y, x
	}
	z = z.make(len(x))
	orVV(z[:len(y)], x[:len(y)], y)
	copy(z[len(y):], x[len(y):])
	return z.norm()
}

// xor sets z = x ^ y, treating any shorter operand as zero-extended.
func (z nat) xor(x, y nat) nat {
	if len(x) < len(y) {
		x, y = y, x
	}
	z = z.make(len(x))
	xorVV(z[:len(y)], x[:len(y)], y)
	copy(z[len(y):], x[len(y):])
	return z.norm()
}

// The remaining methods are nat's normalizing, allocating convenience
// wrappers around the kernels above: the "c"-prefixed form takes an
// explicit result capacity for constant-time callers (ctnat.go); the
// plain form normalizes to the minimum length.

// cadd sets z = x+y, normalized (or padded) to zcap.
func (z nat) cadd(x, y nat, zcap int) nat {
	m, n := len(x), len(y)
	switch {
	case m < n:
		return z.cadd(y, x, zcap)
	case m == 0:
		return z[:0]
	case n == 0:
		return z.cset(x, zcap)
	}
	z = z.cmake(m+1, zcap)
	c := addVV(z[0:n], x, y)
	if m > n {
		c = addVW(z[n:m], x[n:], c)
	}
	z[m] = c
	return z.cnorm(zcap)
}

func (z nat) add(x, y nat) nat {
	return z.cadd(x, y, 0)
}

// csub sets z = x-y (x must be >= y), normalized (or padded) to zcap.
func (z nat) csub(x, y nat, zcap int) nat {
	m, n := len(x), len(y)
	var c Word
	switch {
	case m == 0:
		return z[:0]
	case n == 0:
		return z.cset(x, zcap)
	case m > n:
		z = z.cmake(m, zcap)
		c = subVV(z[0:n], x, y)
		c = subVW(z[n:], x[n:], c)
	default:
		z = z.cmake(m, zcap)
		c = subVV(z[0:m], x, y)
	}
	if c != 0 {
		panic("bignum: subtraction underflow")
	}
	return z.cnorm(zcap)
}

func (z nat) sub(x, y nat) nat {
	return z.csub(x, y, 0)
}

// cmul sets z = x*y, normalized (or padded) to zcap.
func (z nat) cmul(x, y nat, zcap int) nat {
	m, n := len(x), len(y)
	switch {
	case m == 0 || n == 0:
		return z.cmake(0, zcap).cnorm(zcap)
	case m < n:
		return z.cmul(y, x, zcap)
	}
	if alias(z, x) || alias(z, y) {
		z = nil // basicMul writes z while still reading x and y
	}
	z = z.cmake(m+n, zcap)
	basicMul(z, x, y)
	return z.cnorm(zcap)
}

func (z nat) mul(x, y nat) nat {
	return z.cmul(x, y, 0)
}

// csqr sets z = x*x, normalized (or padded) to zcap.
func (z nat) csqr(x nat, zcap int) nat {
	n := len(x)
	if n == 0 {
		return z.cmake(0, zcap).cnorm(zcap)
	}
	if alias(z, x) {
		z = nil // basicSqr writes z while still reading x
	}
	z = z.cmake(2*n, zcap)
	basicSqr(z, x)
	return z.cnorm(zcap)
}

func (z nat) sqr(x nat) nat {
	return z.csqr(x, 0)
}

// mulRange computes the product of all integers in [a, b]. Requires
// a <= b; the caller (Int.MulRange) has already disposed of the a > b
// and spanning-zero cases.
func (z nat) mulRange(a, b uint64) nat {
	switch {
	case a == 0:
		return z.setWord(0)
	case a > b:
		return z.setWord(1)
	case a == b:
		return z.setUint64(a)
	case a+1 == b:
		return z.mul(nat(nil).setUint64(a), nat(nil).setUint64(b))
	}
	m := a + (b-a)/2
	return z.mul(nat(nil).mulRange(a, m), nat(nil).mulRange(m+1, b))
}

// shl sets z = x << s (s in bits, may exceed _W), normalizing the result.
func (z nat) shl(x nat, s uint) nat {
	if len(x) == 0 {
		return z[:0]
	}
	words, bits := int(s/_W), s%_W
	n := len(x) + words + 1
	z = z.make(n)
	if bits == 0 {
		copy(z[words:], x)
		z[len(x)+words] = 0
	} else {
		z[len(x)+words] = shlVU(z[words:words+len(x)], x, bits)
	}
	for i := 0; i < words; i++ {
		z[i] = 0
	}
	return z.norm()
}

// shr sets z = x >> s (s in bits, may exceed _W), normalizing the result.
func (z nat) shr(x nat, s uint) nat {
	words, bits := int(s/_W), s%_W
	if words >= len(x) {
		return z[:0]
	}
	x = x[words:]
	n := len(x)
	z = z.make(n)
	if bits == 0 {
		copy(z, x)
	} else {
		shrVU(z, x, bits)
	}
	return z.norm()
}
