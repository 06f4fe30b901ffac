// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the division engine: single-limb division via a
// precomputed reciprocal, Knuth's Algorithm D for multi-limb divisors,
// and Hensel's exact-division shortcut for the case where the caller
// already knows the remainder is zero. See Knuth, TAOCP vol. 2, §4.3.1,
// and Möller & Granlund, "Improved division by invariant integers".

package bignum

import "sync"

// alias reports whether x and y share the same backing array. divLarge
// below uses this to decide whether its output arguments may safely
// reuse the caller's storage.
func alias(x, y nat) bool {
	return cap(x) > 0 && cap(y) > 0 && &x[0:cap(x)][cap(x)-1] == &y[0:cap(y)][cap(y)-1]
}

// A divisor precomputes the data needed to divide repeatedly by the same
// value without recomputing a reciprocal each time: a normalization
// shift and, for single- and double-limb divisors, a Möller–Granlund
// reciprocal. spec.md §3's "Divisor precompute" record.
type divisor struct {
	v     nat  // the divisor itself, unnormalized; users shift it by shift
	shift uint // leadingZeros(v[len(v)-1]), the normalization shift
	inv   Word // reciprocal: inv2by1 for len(v)==1, inv3by2 for len(v)==2
}

// newDivisor precomputes normalization and reciprocal data for v, which
// must be nonzero. The returned divisor is safe to reuse across many
// division calls against the same v.
func newDivisor(v nat) *divisor {
	if len(v) == 0 {
		panic("bignum: division by zero")
	}
	d := &divisor{v: v}
	d.shift = nlz(v[len(v)-1])
	switch {
	case len(v) == 1:
		vn := v[0] << d.shift
		d.inv = inv2by1(vn)
	case len(v) == 2:
		var vn1, vn0 Word
		if d.shift == 0 {
			vn1, vn0 = v[1], v[0]
		} else {
			vn1 = v[1]<<d.shift | v[0]>>(_W-d.shift)
			vn0 = v[0] << d.shift
		}
		d.inv = inv3by2(vn1, vn0)
	}
	return d
}

// natPool recycles scratch nat buffers used internally by divLarge, the
// same way bford's getNat/putNat does, to keep Algorithm D's inner loop
// allocation-free across repeated calls.
var natPool sync.Pool

func getNat(n int) *nat {
	var z *nat
	if v := natPool.Get(); v != nil {
		z = v.(*nat)
	}
	if z == nil {
		z = new(nat)
	}
	*z = z.make(n)
	return z
}

func putNat(x *nat) {
	natPool.Put(x)
}

// divW divides x by the single limb y, returning quotient and remainder.
func (z nat) divW(x nat, y Word) (q nat, r Word) {
	m := len(x)
	switch {
	case y == 0:
		panic("bignum: division by zero")
	case y == 1:
		q = z.set(x)
		return
	case m == 0:
		q = z[:0]
		return
	}
	z = z.make(m)
	r = divWVW(z, 0, x, newDivisor(nat{y}))
	q = z.norm()
	return
}

// div divides u by v, returning quotient q and remainder r, with
// 0 <= r < v. z and z2 are used as result storage where possible.
func (z nat) div(z2, u, v nat) (q, r nat) {
	if len(v) == 0 {
		panic("bignum: division by zero")
	}
	if u.cmp(v) < 0 {
		q = z[:0]
		r = z2.set(u)
		return
	}
	if len(v) == 1 {
		var r2 Word
		q, r2 = z.divW(u, v[0])
		r = z2.setWord(r2)
		return
	}
	q, r = z.divLarge(z2, u, v)
	return
}

// divLarge implements Knuth's Algorithm D (TAOCP vol. 2, §4.3.1) for
// len(v) >= 2, len(uIn) >= len(v). u is used as remainder storage, z as
// quotient storage, where aliasing allows.
func (z nat) divLarge(u, uIn, v nat) (q, r nat) {
	n := len(v)
	m := len(uIn) - n

	if alias(z, uIn) || alias(z, v) {
		z = nil
	}
	q = z.make(m + 1)

	qhatvp := getNat(n + 1)
	qhatv := *qhatvp
	if alias(u, uIn) || alias(u, v) {
		u = nil
	}
	u = u.make(len(uIn) + 1)
	u.clear()

	// D1: normalize so the divisor's top limb has its MSB set.
	var v1p *nat
	shift := nlz(v[n-1])
	if shift > 0 {
		v1p = getNat(n)
		v1 := *v1p
		shlVU(v1, v, shift)
		v = v1
	}
	u[len(uIn)] = shlVU(u[0:len(uIn)], uIn, shift)

	// D2-D7: process one quotient limb per iteration, most significant first.
	// D3's estimate comes from div3by2 (Möller-Granlund Algorithm 5) against
	// the divisor's top two normalized limbs, reciprocal precomputed once;
	// this can still overshoot by one against the full n-limb divisor, which
	// D4-D6 correct exactly as Algorithm D always has.
	vn1, vn0 := v[n-1], v[n-2]
	vInv := inv3by2(vn1, vn0)
	for j := m; j >= 0; j-- {
		// D3: estimate the quotient limb qhat. When the remainder's top two
		// limbs equal the divisor's, the 3-by-2 quotient would not fit in a
		// word (div3by2's precondition); qhat is then set to B-1 directly.
		qhat := Word(_M)
		if u[j+n] != vn1 || u[j+n-1] != vn0 {
			qhat, _, _ = div3by2(u[j+n], u[j+n-1], u[j+n-2], vn1, vn0, vInv)
		}

		// D4: multiply and subtract.
		qhatv[n] = mulAddVWW(qhatv[0:n], v, qhat, 0)
		c := subVV(u[j:j+len(qhatv)], u[j:], qhatv)

		// D5/D6: add back if the subtraction underflowed.
		if c != 0 {
			c := addVV(u[j:j+n], u[j:], v)
			u[j+n] += c
			qhat--
		}

		q[j] = qhat
	}
	if v1p != nil {
		putNat(v1p)
	}
	putNat(qhatvp)

	q = q.norm()
	shrVU(u, u, shift) // D8: unnormalize the remainder
	r = u.norm()
	return q, r
}

// divExact divides x by y under the precondition that y divides x
// exactly. Single-limb divisors use invMod's word-level Newton inverse
// directly, following Knuth vol. 2 §4.3.1 exercise 14 and Jebelean's
// exact-division identity; multi-limb divisors fall back to the general
// division engine, since Algorithm D already runs in time linear in the
// quotient length and a zero remainder saves it no work worth special
//-casing here.
func (z nat) divExact(x, y nat) nat {
	if len(y) == 0 {
		panic("bignum: division by zero")
	}
	if len(y) == 1 {
		if y[0] == 0 {
			panic("bignum: division by zero")
		}
		if y[0]&1 == 1 {
			yinv := invMod(y[0])
			m := len(x)
			z = z.make(m)
			borrow := Word(0)
			for i := 0; i < m; i++ {
				b, xi := subWW(x[i], borrow, 0)
				qi := xi * yinv
				z[i] = qi
				hi, _ := mulWW(qi, y[0])
				borrow = hi + b
			}
			return z.norm()
		}
		q, _ := z.divW(x, y[0])
		return q
	}
	q, _ := z.div(nat(nil), x, y)
	return q
}
