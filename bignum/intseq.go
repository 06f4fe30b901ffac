// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the integer sequence helpers layered on top of
// Int's arithmetic: factorial, binomial coefficient, paired
// Fibonacci/Lucas doubling, and the p-adic valuation helper remove.

package bignum

// MulRange was already defined in int.go; Binomial too. This file adds
// the remaining C9 sequence operations: factorial, Fibonacci, Lucas,
// and remove.

// Factorial sets z to n! and returns z. Panics if n < 0.
func (z *Int) Factorial(n int64) *Int {
	if n < 0 {
		panic("bignum: Factorial of a negative argument")
	}
	if n < 2 {
		return z.SetInt64(1)
	}
	return z.MulRange(2, n)
}

// Fibonacci sets z to the n'th Fibonacci number (F(0)=0, F(1)=1) and
// returns z. Panics if n < 0.
func (z *Int) Fibonacci(n int64) *Int {
	f, _ := new(Int).fib2(n)
	return z.Set(f)
}

// Lucas sets z to the n'th Lucas number (L(0)=2, L(1)=1) and returns z.
// Panics if n < 0.
func (z *Int) Lucas(n int64) *Int {
	f, fNext := new(Int).fib2(n)
	// L(n) = 2*F(n+1) - F(n)
	var two Int
	two.SetInt64(2)
	var t Int
	t.Mul(&two, fNext)
	return z.Sub(&t, f)
}

// fib2 computes (F(n), F(n+1)) via the doubling identities
//
//	F(2k)   = F(k) * (2*F(k+1) - F(k))
//	F(2k+1) = F(k)^2 + F(k+1)^2
//
// walking the bits of n from the most significant down, the way the
// teacher's fib2_ui walks the exponent in pow_ui.
func (z *Int) fib2(n int64) (f, fNext *Int) {
	if n < 0 {
		panic("bignum: Fibonacci/Lucas of a negative argument")
	}
	a := NewInt(0) // F(k)
	b := NewInt(1) // F(k+1)
	if n == 0 {
		return a, b
	}

	bits := uint64(n)
	top := 63
	for top >= 0 && bits&(1<<uint(top)) == 0 {
		top--
	}

	for i := top; i >= 0; i-- {
		// double: (a,b) -> (F(2k), F(2k+1))
		var twoB, t Int
		twoB.Lsh(b, 1)
		t.Sub(&twoB, a)
		var a2 Int
		a2.Mul(a, &t)

		var bb, aa Int
		bb.Mul(b, b)
		aa.Mul(a, a)
		var b2 Int
		b2.Add(&aa, &bb)

		a, b = &a2, &b2

		if bits&(1<<uint(i)) != 0 {
			// advance by one: (a,b) -> (b, a+b)
			var sum Int
			sum.Add(a, b)
			a, b = b, &sum
		}
	}
	return a, b
}

// Remove sets z to x with all factors of y divided out, and returns the
// multiplicity (the number of times y divided x). Requires y != 0, ±1.
func (z *Int) Remove(x, y *Int) (multiplicity uint64) {
	if y.CmpAbs(intOne) <= 0 {
		panic("bignum: Remove requires |y| > 1")
	}
	cur := new(Int).Set(x)
	if cur.Sign() == 0 {
		z.SetInt64(0)
		return 0
	}

	var q, r Int
	for {
		q.QuoRem(cur, y, &r)
		if r.Sign() != 0 {
			break
		}
		cur.Set(&q)
		multiplicity++
	}
	z.Set(cur)
	return multiplicity
}
