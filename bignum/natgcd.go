// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the number-theoretic kernels built on top of
// addition, subtraction and shifting alone: binary GCD (Knuth Algorithm
// B), the right-shift binary extended GCD (Knuth's "Algorithm L", per
// Shallit & Sorenson), Penk's right-shift modular inverse, and the
// binary Jacobi/Kronecker symbol.

package bignum

// gcd computes the greatest common divisor of a and b, both of which
// must be nonzero, using Knuth's Algorithm B (TAOCP vol. 2, §4.5.2): an
// initial Euclidean step to bring the operands to comparable size,
// followed by repeated halving of the even operand and subtraction of
// the smaller from the larger.
func (z nat) gcd(a, b nat) nat {
	if len(a) == 0 || len(b) == 0 {
		panic("bignum: gcd requires nonzero operands")
	}

	var u, v nat
	switch {
	case len(a) > len(b):
		u = nat(nil).set(b)
		_, v = nat(nil).div(nat(nil), a, b)
	case len(a) < len(b):
		u = nat(nil).set(a)
		_, v = nat(nil).div(nat(nil), b, a)
	default:
		u = nat(nil).set(a)
		v = nat(nil).set(b)
	}

	if v.isZero() {
		return z.set(u)
	}

	k := u.trailingZeroBits()
	if vk := v.trailingZeroBits(); vk < k {
		k = vk
	}
	u = u.shr(u, k)
	v = v.shr(v, k)

	// (tneg, tabs) together represent the signed value t; u and v
	// themselves always stay nonnegative magnitudes.
	var tneg bool
	var tabs nat
	if u[0]&1 != 0 {
		tneg, tabs = true, nat(nil).set(v)
	} else {
		tneg, tabs = false, nat(nil).set(u)
	}

	for !tabs.isZero() {
		tabs = tabs.shr(tabs, tabs.trailingZeroBits())
		if tneg {
			v, tabs = tabs, v
		} else {
			u, tabs = tabs, u
		}
		if u.cmp(v) >= 0 {
			tabs, tneg = nat(nil).sub(u, v), false
		} else {
			tabs, tneg = nat(nil).sub(v, u), true
		}
	}

	return z.shl(u, k)
}

// extGCD implements Knuth's right-shift binary extended GCD ("Algorithm
// L"): given odd modulus-relative operands u, v it computes g = gcd(u,v)
// together with cofactors a, b such that a*u - b*v = ±g (the caller's
// ModInverse-style consumer only needs a taken modulo v). This mirrors
// spec.md §4.6's description of four cofactors A,B,C,D maintained modulo
// the (even) working modulus via odd-halving.
func extGCD(u, v nat) (g, a, b nat) {
	if len(u) == 0 || len(v) == 0 {
		panic("bignum: extGCD requires nonzero operands")
	}
	mod := v // the modulus cofactors A, B are reduced against

	uu := nat(nil).set(u)
	vv := nat(nil).set(v)
	A := nat(nil).setWord(1)
	B := nat(nil).setWord(0)
	C := nat(nil).setWord(0)
	D := nat(nil).setWord(1)

	for !uu.isZero() && !vv.isZero() {
		for uu.even() {
			uu = uu.shr(uu, 1)
			if A.even() && B.even() {
				A = A.shr(A, 1)
				B = B.shr(B, 1)
			} else {
				A = A.add(A, v)
				A = A.shr(A, 1)
				B = B.add(B, u)
				B = B.shr(B, 1)
			}
		}
		for vv.even() {
			vv = vv.shr(vv, 1)
			if C.even() && D.even() {
				C = C.shr(C, 1)
				D = D.shr(D, 1)
			} else {
				C = C.add(C, v)
				C = C.shr(C, 1)
				D = D.add(D, u)
				D = D.shr(D, 1)
			}
		}
		if uu.cmp(vv) >= 0 {
			uu = uu.sub(uu, vv)
			A = modSub(A, C, mod)
			B = modSub(B, D, u)
		} else {
			vv = vv.sub(vv, uu)
			C = modSub(C, A, mod)
			D = modSub(D, B, u)
		}
		if uu.isZero() || vv.isZero() {
			break
		}
	}

	if uu.isZero() {
		return vv, C, D
	}
	return uu, A, B
}

// modSub computes (a-b) mod m for nat values, wrapping around when a < b.
func modSub(a, b, m nat) nat {
	if a.cmp(b) >= 0 {
		return nat(nil).sub(a, b)
	}
	sum := nat(nil).add(a, m)
	for sum.cmp(b) < 0 {
		sum = sum.add(sum, m)
	}
	return sum.sub(sum, b)
}

// invert computes x^-1 mod y via Penk's right-shift binary algorithm
// (spec.md §4.6): requires y odd. Returns (inverse, true) if gcd(x,y)==1,
// or (nil, false) otherwise.
func invert(x, y nat) (nat, bool) {
	if len(y) == 0 || y[0]&1 == 0 {
		panic("bignum: invert requires an odd modulus")
	}
	u := nat(nil).set(x)
	v := nat(nil).set(y)
	if u.isZero() {
		return nil, false
	}
	_, u = nat(nil).div(nat(nil), u, v)

	A := nat(nil).setWord(1)
	C := nat(nil).setWord(0)

	for !u.isZero() {
		for u.even() {
			u = u.shr(u, 1)
			if A.even() {
				A = A.shr(A, 1)
			} else {
				A = A.add(A, y)
				A = A.shr(A, 1)
			}
		}
		for v.even() {
			v = v.shr(v, 1)
			if C.even() {
				C = C.shr(C, 1)
			} else {
				C = C.add(C, y)
				C = C.shr(C, 1)
			}
		}
		if u.cmp(v) >= 0 {
			u = u.sub(u, v)
			A = modSub(A, C, y)
		} else {
			v = v.sub(v, u)
			C = modSub(C, A, y)
		}
	}

	if v.cmp(natOne) != 0 {
		return nil, false
	}
	_, C = nat(nil).div(nat(nil), C, y)
	return C, true
}

// secInvert computes x^(m-2) mod m via the fixed-window constant-time
// powm (Fermat's little theorem: for prime m, x^(m-2) is x's
// multiplicative inverse mod m). Unlike invert, which branches on the
// bits of x through Penk's algorithm, every step here runs the same
// sequence of squarings and Montgomery multiplications regardless of x;
// the only thing an observer learns is m's bit length. Requires m odd
// and m > 2.
func secInvert(x, m nat) nat {
	if len(m) == 0 || m[0]&1 == 0 {
		panic("bignum: secInvert requires an odd modulus")
	}
	if m.cmp(nat{2}) <= 0 {
		panic("bignum: secInvert requires m > 2")
	}
	mMinus2 := nat(nil).sub(m, nat{2})
	return nat(nil).powmConstantTime(x, mMinus2, m)
}

// jacobi computes the Jacobi symbol (a/n) for nonnegative a and odd
// positive n, via the binary algorithm described by Shallit & Sorenson
// (spec.md §4.6): repeatedly strip factors of two from a (flipping the
// accumulated sign when an odd number are stripped and n mod 8 is 3 or
// 5), then swap-and-reduce as in binary GCD (flipping the sign again
// when both operands are 3 mod 4), until a reaches 0.
func jacobi(a, n nat) int {
	if len(n) == 0 || n[0]&1 == 0 {
		panic("bignum: jacobi requires an odd modulus")
	}
	j := 1
	u := nat(nil).set(a)
	v := nat(nil).set(n)

	_, u = nat(nil).div(nat(nil), u, v)

	for {
		if u.isZero() {
			if v.cmp(natOne) == 0 {
				return j
			}
			return 0
		}
		s := u.trailingZeroBits()
		if s&1 != 0 {
			vmod8 := v[0] & 7
			if vmod8 == 3 || vmod8 == 5 {
				j = -j
			}
		}
		u = u.shr(u, s)

		if u[0]&3 == 3 && v[0]&3 == 3 {
			j = -j
		}
		u, v = v, u
		_, u = nat(nil).div(nat(nil), u, v)
	}
}

// kronecker generalizes jacobi to allow an even n, by stripping factors
// of two from n first via the table {0, 1, 0, -1, 0, -1, 0, 1} indexed by
// a mod 8 (the Kronecker symbol (a/2)), then falling back to jacobi for
// the remaining odd part.
func kronecker(a, n nat) int {
	if n.isZero() {
		if a.cmp(natOne) == 0 {
			return 1
		}
		return 0
	}
	table := [8]int{0, 1, 0, -1, 0, -1, 0, 1}
	k := 1
	nn := nat(nil).set(n)
	for nn.even() {
		if a.even() {
			return 0
		}
		k *= table[a[0]&7]
		nn = nn.shr(nn, 1)
	}
	if nn.cmp(natOne) == 0 {
		return k
	}
	return k * jacobi(a, nn)
}
