// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the modular-reduction machinery used by powm
// (natexp.go): Montgomery multiplication in CIOS layout, in both
// variable-time ("almost Montgomery", per Gueron's terminology) and
// constant-time forms, plus Barrett reduction (newBarrettModulus and
// reduce) for reducing against a modulus that is not fixed across many
// multiplications; no path in this package calls the Barrett pair.

package bignum

// A montgomeryModulus precomputes everything montgomeryMul needs to run
// repeated multiplications mod m without recomputing -m^-1 mod B each
// time: the word-level Montgomery constant k = -m[0]^-1 mod B, and the
// operand length n = len(m).
type montgomeryModulus struct {
	m nat
	k Word
	n int
}

// newMontgomeryModulus precomputes Montgomery reduction data for the odd
// modulus m. Montgomery's method requires an odd modulus; powm sends even
// moduli to the division-based expSlidingWindow instead.
func newMontgomeryModulus(m nat) *montgomeryModulus {
	if len(m) == 0 || m[0]&1 == 0 {
		panic("bignum: montgomery reduction requires an odd modulus")
	}
	return &montgomeryModulus{
		m: m,
		k: -invMod(m[0]),
		n: len(m),
	}
}

// montgomeryMul computes z = x*y*2^(-n*_W) mod mm.m (an "almost Montgomery
// multiplication", per Gueron, "Efficient Software Implementations of
// Modular Exponentiation"): x and y must already be reduced mod mm.m and
// satisfy 0 <= x,y < 2^(n*_W); the result satisfies the same bound but is
// not guaranteed fully reduced below mm.m. z must not alias x, y, or mm.m.
//
// When zt is non-nil, the final conditional subtraction is replaced by a
// constant-time select, for callers (the fixed-window exponentiation path)
// that must not branch on secret data.
func (z nat) montgomeryMul(x, y nat, mm *montgomeryModulus, zt nat, zcap int) nat {
	n := mm.n
	if len(x) != n || len(y) != n {
		panic("bignum: mismatched montgomery operand lengths")
	}
	acc := z.cmake(n, zcap)
	acc.clear()

	// One round per limb of y: fold in x*y[i], then cancel the low limb
	// by adding a multiple of the modulus (the word-level Montgomery
	// constant mm.k), and drop that now-zero low limb by shifting the
	// window down one word. Each of the two multiply-accumulates can
	// carry a limb's worth of overflow past acc's top word; folding that
	// together with the carry held from the previous round always fits
	// in a single bit, a property of the CIOS reduction itself rather
	// than of these particular operands.
	var carryIn Word
	for i := 0; i < n; i++ {
		carryProd := addMulVVW(acc, x, y[i])
		quotientDigit := acc[0] * mm.k
		carryRed := addMulVVW(acc, mm.m, quotientDigit)
		copy(acc, acc[1:])

		merged := carryIn + carryProd
		top := merged + carryRed
		acc[n-1] = top

		carryIn = addOverflowed(carryIn, carryProd, merged)
		carryIn |= addOverflowed(merged, carryRed, top)
	}

	if zt == nil {
		if carryIn != 0 {
			subVV(acc, acc, mm.m)
		}
	} else {
		zt = zt.cmake(n, zcap)
		subVV(zt, acc, mm.m)
		acc.sel(acc, zt, carryIn)
	}
	return acc
}

// toMontgomery converts x (already reduced mod mm.m, 0 <= x < mm.m) into
// Montgomery form x*R mod m, where R = 2^(n*_W), by multiplying by the
// precomputed constant R^2 mod m and then Montgomery-reducing.
func (z nat) toMontgomery(x nat, mm *montgomeryModulus, r2 nat, zt nat, zcap int) nat {
	xPad := make(nat, mm.n)
	copy(xPad, x)
	return z.montgomeryMul(xPad, r2, mm, zt, zcap)
}

// fromMontgomery converts x out of Montgomery form by multiplying by 1.
func (z nat) fromMontgomery(x nat, mm *montgomeryModulus, zt nat, zcap int) nat {
	one := make(nat, mm.n)
	one[0] = 1
	return z.montgomeryMul(x, one, mm, zt, zcap)
}

// montgomeryR2 computes R^2 mod m, where R = 2^(n*_W), n = len(m), by a
// single division of 2^(2*n*_W) by m with the ordinary division engine,
// and returns it zero-padded to the n limbs montgomeryMul requires of its
// operands. This precompute runs once per modulus, not once per
// multiplication, so it need not be fast.
func montgomeryR2(m nat) nat {
	n := len(m)
	// bit := 1 at position 2*n*_W
	bit := make(nat, 2*n+1)
	bit[2*n] = 1
	_, r := nat(nil).div(nat(nil), bit, m)
	return padTo(r, n)
}

// A barrettModulus precomputes mu = floor(B^(2k) / m) for Barrett
// reduction, where k = len(m). Used by callers that reduce a single
// double-width product against a modulus they do not expect to reuse
// across a long exponentiation chain.
type barrettModulus struct {
	m  nat
	mu nat
	k  int
}

// newBarrettModulus precomputes Barrett reduction data for m.
func newBarrettModulus(m nat) *barrettModulus {
	if len(m) == 0 {
		panic("bignum: division by zero")
	}
	k := len(m)
	b2k := make(nat, 2*k+1)
	b2k[2*k] = 1
	mu, _ := nat(nil).div(nat(nil), b2k, m)
	return &barrettModulus{m: m, mu: mu, k: k}
}

// reduce computes x mod bm.m for an x with len(x) <= 2*bm.k, via Barrett's
// algorithm: q = floor(floor(x / B^(k-1)) * mu / B^(k+1)), r = x - q*m,
// followed by at most two corrective subtractions.
func (z nat) reduce(x nat, bm *barrettModulus) nat {
	k := bm.k
	if len(x) > 2*k {
		// fall back to exact division for operands wider than the
		// precompute assumes; still correct, just not the fast path.
		_, r := nat(nil).div(nat(nil), x, bm.m)
		return z.set(r)
	}

	x1 := shiftDownWords(x, k-1)
	q1 := nat(nil).mul(x1, bm.mu)
	q2 := shiftDownWords(q1, k+1)

	r1 := make(nat, len(x))
	copy(r1, x)
	r1 = r1.norm()

	t := nat(nil).mul(q2, bm.m)
	r := nat(nil).sub(padTo(r1, len(t)+1), padTo(t, len(t)+1))
	r = r.norm()

	for r.cmp(bm.m) >= 0 {
		r = r.sub(r, bm.m)
	}
	return z.set(r)
}

// shiftDownWords returns x >> (s*_W), i.e. x with its bottom s limbs
// dropped.
func shiftDownWords(x nat, s int) nat {
	if s >= len(x) {
		return nat(nil)
	}
	if s <= 0 {
		return x
	}
	out := make(nat, len(x)-s)
	copy(out, x[s:])
	return out.norm()
}

// padTo returns x zero-extended (in a fresh slice) to exactly n limbs. x
// must already have length <= n.
func padTo(x nat, n int) nat {
	out := make(nat, n)
	copy(out, x)
	return out
}
