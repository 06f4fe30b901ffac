// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements unsigned multi-precision integers (natural
// numbers). They are the building blocks for the implementation of the
// signed integer layer in int.go.

package bignum

// An unsigned integer x of the form
//
//	x = x[n-1]*_B^(n-1) + x[n-2]*_B^(n-2) + ... + x[1]*_B + x[0]
//
// with 0 <= x[i] < _B and 0 <= i < n is stored in a slice of length n,
// with the digits x[i] as the slice elements.
//
// A number is normalized if the slice contains no leading 0 digits.
// During arithmetic operations, denormalized values may occur but are
// always normalized before returning the final result. The normalized
// representation of 0 is the empty or nil slice (length = 0).
type nat []Word

var (
	natZero = nat(nil)
	natOne  = nat{1}
	natTwo  = nat{2}
)

// Most nat methods come in two forms: a plain form (add, sub, mul, ...)
// that normalizes its result to the minimum number of limbs, and a
// "c"-prefixed form (cadd, csub, cmul, ...) that instead pads or checks
// the result against a caller-supplied capacity zcap, for callers in the
// constant-time toolkit (ctnat.go) that must not let a result's limb
// count leak information about its value.

// nonzero returns 0 if z is the zero value and any nonzero word otherwise,
// in constant time (the result is not itself a 0/1 flag).
func (z nat) nonzero() (nz Word) {
	for _, zi := range z {
		nz |= zi
	}
	return
}

// czero returns 1 if z represents zero and 0 otherwise, in constant time.
func (z nat) czero() Word {
	return czero(z.nonzero())
}

// clear zeroes every limb of z in place, without reslicing.
func (z nat) clear() {
	for i := range z {
		z[i] = 0
	}
}

// sel sets z[i] = x[i] if v == 0, or y[i] if v == 1, for every i, without a
// data-dependent branch. x, y, and z must have equal length.
func (z nat) sel(x, y nat, v Word) {
	xmask := v - 1
	ymask := ^xmask
	for i := range z {
		z[i] = x[i]&xmask | y[i]&ymask
	}
}

// cnorm trims z to exactly zcap words if zcap != 0 (panicking if that would
// discard a nonzero limb, or if z is shorter than zcap), or to the minimum
// number of words if zcap == 0.
func (z nat) cnorm(zcap int) nat {
	i := len(z)
	switch {
	case zcap == 0:
		for i > 0 && z[i-1] == 0 {
			i--
		}
	case i > zcap:
		if z[zcap:].nonzero() != 0 {
			panic("bignum: constant-time result too large for capacity")
		}
		i = zcap
	case i < zcap:
		panic("bignum: constant-time result too small for capacity")
	}
	return z[0:i]
}

// norm trims z to its minimum normalized length.
func (z nat) norm() nat {
	return z.cnorm(0)
}

// normalized reports whether z carries no leading zero limb.
func (z nat) normalized() bool {
	i := len(z)
	return i == 0 || z[i-1] != 0
}

// cmake returns a nat of length max(n, zcap), reusing z's backing array
// when it has enough capacity, clearing any newly exposed padding limbs
// between n and zcap.
func (z nat) cmake(n, zcap int) nat {
	l := n
	if zcap > l {
		l = zcap
	}
	if l <= cap(z) {
		if l > n {
			z[n:l].clear()
		}
		return z[:l]
	}
	const e = 4 // extra capacity, to improve reuse odds on repeated growth
	return make(nat, l, l+e)
}

// make returns a nat of length n, reusing z's backing array when possible.
func (z nat) make(n int) nat {
	return z.cmake(n, 0)
}

// csetWord sets z to the single-word value x, padded/checked against zcap.
func (z nat) csetWord(x Word, zcap int) nat {
	z = z.cmake(1, zcap)
	z[0] = x
	return z.cnorm(zcap)
}

func (z nat) setWord(x Word) nat {
	return z.csetWord(x, 0)
}

// csetUint64 sets z to x, using one limb on a 64-bit Word and two on a
// 32-bit Word.
func (z nat) csetUint64(x uint64, zcap int) nat {
	if w := Word(x); uint64(w) == x {
		return z.csetWord(w, zcap)
	}
	z = z.cmake(64/_W+1, zcap)
	for i := range z[:64/_W] {
		z[i] = Word(x)
		x >>= _W
	}
	return z.cnorm(zcap)
}

func (z nat) setUint64(x uint64) nat {
	return z.csetUint64(x, 0)
}

// cset copies x into z, padded/checked against zcap.
func (z nat) cset(x nat, zcap int) nat {
	z = z.cmake(len(x), zcap)
	copy(z, x)
	return z
}

func (z nat) set(x nat) nat {
	return z.cset(x, 0)
}

// cmp performs a three-way comparison of x and y, returning -1, 0, or +1.
func (x nat) cmp(y nat) int {
	m := len(x)
	n := len(y)
	if m != n || m == 0 {
		switch {
		case m < n:
			return -1
		case m > n:
			return 1
		default:
			return 0
		}
	}
	for i := m - 1; i >= 0; i-- {
		if x[i] != y[i] {
			if x[i] < y[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// bitLen returns the minimum number of bits required to represent z; the
// bit length of zero is 0.
func (z nat) bitLen() int {
	if i := len(z) - 1; i >= 0 {
		return i*_W + bitLen(z[i])
	}
	return 0
}

// trailingZeroBits returns the number of consecutive zero bits starting
// from the least-significant bit of z; trailingZeroBits(0) == 0.
func (z nat) trailingZeroBits() uint {
	for i, zi := range z {
		if zi != 0 {
			return uint(i)*_W + trailingZeros(zi)
		}
	}
	return 0
}

// isZero reports whether z represents the value 0.
func (z nat) isZero() bool {
	return len(z) == 0
}

// isOne reports whether z represents the value 1.
func (z nat) isOne() bool {
	return len(z) == 1 && z[0] == 1
}

// even reports whether z's least-significant bit is clear.
func (z nat) even() bool {
	return len(z) == 0 || z[0]&1 == 0
}
