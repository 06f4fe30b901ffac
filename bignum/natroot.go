// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the root-extraction kernels: integer k-th root
// (and its sqrt specialization) via Newton's method, and modular square
// root via three dispatch paths keyed on p mod 4 / p mod 8, falling back
// to Tonelli-Shanks for the general case, plus CRT composition for a
// product-of-two-primes modulus.

package bignum

// sqrt computes floor(sqrt(x)) via Newton's method: x_{i+1} = (x_i +
// n/x_i) / 2, starting from a bit-length-derived estimate and iterating
// to a fixed point.
func (z nat) sqrt(x nat) nat {
	return z.root(x, 2)
}

// root computes floor(x^(1/k)) for k >= 1 via Newton's method applied to
// f(t) = t^k - x.
func (z nat) root(x nat, k uint) nat {
	if k == 0 {
		panic("bignum: root requires k >= 1")
	}
	if x.isZero() || k == 1 {
		return z.set(x)
	}

	// initial estimate: 2^ceil(bitLen(x)/k)
	guessBits := (uint(x.bitLen()) + k - 1) / k
	t := nat(nil).setWord(1)
	t = t.shl(t, guessBits)

	for {
		// t_next = ((k-1)*t + x/t^(k-1)) / k
		pow := nat(nil).setWord(1)
		for i := uint(0); i < k-1; i++ {
			pow = pow.mul(pow, t)
		}
		if pow.isZero() {
			break
		}
		quotient, _ := nat(nil).div(nat(nil), x, pow)
		num := nat(nil).mul(t, nat(nil).setWord(Word(k-1)))
		num = num.add(num, quotient)
		next, _ := nat(nil).div(nat(nil), num, nat(nil).setWord(Word(k)))

		if next.cmp(t) >= 0 {
			break
		}
		t = next
	}

	// correct for the rare case Newton's iteration overshoots by one.
	for {
		pow := nat(nil).setWord(1)
		for i := uint(0); i < k; i++ {
			pow = pow.mul(pow, t)
		}
		if pow.cmp(x) <= 0 {
			break
		}
		t = t.sub(t, natOne)
	}
	for {
		next := nat(nil).add(t, natOne)
		pow := nat(nil).setWord(1)
		for i := uint(0); i < k; i++ {
			pow = pow.mul(pow, next)
		}
		if pow.cmp(x) > 0 {
			break
		}
		t = next
	}

	return z.set(t)
}

// isPerfectSquare reports whether x is a perfect square, used by the
// strong Lucas primality test (primes.go) to short-circuit its Selfridge
// parameter search.
func (x nat) isPerfectSquare() bool {
	if x.isZero() {
		return true
	}
	r := nat(nil).sqrt(x)
	return nat(nil).mul(r, r).cmp(x) == 0
}

// sqrtModP computes a square root of x mod the odd prime p, dispatching
// on p mod 4 / p mod 8 per spec.md §4.6:
//
//   - p ≡ 3 (mod 4): r = x^((p+1)/4) mod p
//   - p ≡ 5 (mod 8): candidate d = x^((p+3)/8); if d^2 = x mod p, r = d,
//     else r = d * 2^((p-1)/4) mod p
//   - otherwise: the general Tonelli-Shanks algorithm, capped at 64
//     iterations (an Open Question resolved in DESIGN.md).
//
// Returns (root, true), or (nil, false) if x is not a quadratic residue
// mod p.
func sqrtModP(x, p nat) (nat, bool) {
	if jacobi(x, p) == -1 {
		return nil, false
	}
	if x.isZero() {
		return nat(nil), true
	}

	pmod4 := p[0] & 3
	pmod8 := p[0] & 7

	switch {
	case pmod4 == 3:
		e := nat(nil).add(p, natOne)
		e = e.shr(e, 2)
		r := nat(nil).powm(x, e, p)
		return r, true

	case pmod8 == 5:
		e := nat(nil).add(p, nat{3})
		e = e.shr(e, 3)
		d := nat(nil).powm(x, e, p)
		d2 := nat(nil).mul(d, d)
		_, d2 = nat(nil).div(nat(nil), d2, p)
		if d2.cmp(x) == 0 {
			return d, true
		}
		e2 := nat(nil).sub(p, natOne)
		e2 = e2.shr(e2, 2)
		two := nat{2}
		t := nat(nil).powm(two, e2, p)
		r := nat(nil).mul(d, t)
		_, r = nat(nil).div(nat(nil), r, p)
		return r, true

	default:
		return tonelliShanks(x, p)
	}
}

// tonelliShanksMaxIterations bounds the Tonelli-Shanks reduction loop
// (the search for the order of b inside each pass is bounded by r, and
// the quadratic non-residue search before the loop is not bounded by
// this constant) to rule out non-termination on
// malformed input; 64 is generous for any modulus this engine's word
// sizes can represent (an Open Question resolved in DESIGN.md).
const tonelliShanksMaxIterations = 64

// tonelliShanks computes a square root of x mod the odd prime p via the
// general Tonelli-Shanks algorithm (Brown's "Square roots from 1; 24,
// 51, 10 to Dan Shanks" exposition), for p not covered by the faster
// p≡3(mod 4) / p≡5(mod 8) special cases.
func tonelliShanks(x, p nat) (nat, bool) {
	// p - 1 = s * 2^e, s odd
	s := nat(nil).sub(p, natOne)
	e := s.trailingZeroBits()
	s = s.shr(s, e)

	// find a quadratic non-residue n
	n := nat(nil).setWord(2)
	for jacobi(n, p) != -1 {
		n = n.add(n, natOne)
	}

	half := nat(nil).add(s, natOne)
	half = half.shr(half, 1)

	y := nat(nil).powm(x, half, p) // y = x^((s+1)/2)
	b := nat(nil).powm(x, s, p)    // b = x^s
	g := nat(nil).powm(n, s, p)    // g = n^s
	r := e

	for iter := 0; iter < tonelliShanksMaxIterations; iter++ {
		// find least m such that b^(2^m) = 1 mod p
		var m uint
		t := nat(nil).set(b)
		for t.cmp(natOne) != 0 {
			t = t.mul(t, t)
			_, t = nat(nil).div(nat(nil), t, p)
			m++
			if m >= r {
				return nil, false
			}
		}
		if m == 0 {
			return y, true
		}

		exp := nat(nil).setWord(1)
		exp = exp.shl(exp, r-m-1)
		gt := nat(nil).powm(g, exp, p)

		g = nat(nil).mul(gt, gt)
		_, g = nat(nil).div(nat(nil), g, p)
		y = nat(nil).mul(y, gt)
		_, y = nat(nil).div(nat(nil), y, p)
		b = nat(nil).mul(b, g)
		_, b = nat(nil).div(nat(nil), b, p)
		r = m
	}
	return nil, false
}

// sqrtPQ computes a square root of x modulo the product n = p*q of two
// distinct odd primes, via CRT composition of the square roots mod p and
// mod q (spec.md §4.6's sqrtpq): solve independently mod each factor,
// then combine with Garner's formula.
func sqrtPQ(x, p, q nat) (nat, bool) {
	rp, ok := sqrtModP(x, p)
	if !ok {
		return nil, false
	}
	rq, ok := sqrtModP(x, q)
	if !ok {
		return nil, false
	}

	// Garner's formula: r = rq + q * ((rp - rq) * q^-1 mod p)
	qInv, ok := invert(q, p)
	if !ok {
		return nil, false
	}

	diff := modSub(rp, rq, p)
	t := nat(nil).mul(diff, qInv)
	_, t = nat(nil).div(nat(nil), t, p)
	r := nat(nil).mul(q, t)
	r = r.add(r, rq)

	n := nat(nil).mul(p, q)
	_, r = nat(nil).div(nat(nil), r, n)
	return r, true
}
