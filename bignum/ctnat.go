// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file collects the constant-time toolkit: conditional
// select/swap/add/sub/negate over limb vectors, a table-select primitive
// for the fixed-window exponentiation path, and comparison helpers whose
// running time and memory access pattern do not depend on the values
// being compared. cndSelect and secTabselect build on crypto/subtle, the
// same package the teacher's own tree carries for this exact purpose; the
// other helpers derive their masks from word.go's maskFromBit.

package bignum

import "crypto/subtle"

// cndSelect sets z[i] = y[i] if v == 1, or x[i] if v == 0, for every i,
// in constant time. x, y, z must have equal length.
func cndSelect(z, x, y nat, v int) {
	xb := limbsToBytes(x)
	yb := limbsToBytes(y)
	zb := make([]byte, len(xb))
	copy(zb, xb)
	subtle.ConstantTimeCopy(v, zb, yb)
	bytesToLimbs(z, zb)
}

// cndSwap swaps x and y in place when v == 1, leaving them unchanged when
// v == 0, without branching on v.
func cndSwap(x, y nat, v int) {
	mask := maskFromBit(Word(v))
	for i := range x {
		t := (x[i] ^ y[i]) & mask
		x[i] ^= t
		y[i] ^= t
	}
}

// cndAdd sets z = x+y if v == 1, or z = x if v == 0, in constant time,
// still touching every limb of y either way. Returns the carry out,
// itself masked so a caller cannot distinguish "no carry" from
// "operation not selected" by timing.
func (z nat) cndAdd(x, y nat, v int) (c Word) {
	mask := maskFromBit(Word(v))
	var carry Word
	for i := range z {
		yi := y[i] & mask
		carry, z[i] = addWW(x[i], yi, carry)
	}
	return carry & mask
}

// cndSub sets z = x-y if v == 1, or z = x if v == 0, in constant time.
func (z nat) cndSub(x, y nat, v int) (borrow Word) {
	mask := maskFromBit(Word(v))
	var b Word
	for i := range z {
		yi := y[i] & mask
		b, z[i] = subWW(x[i], yi, b)
	}
	return b & mask
}

// cndNeg sets z = -x mod B^n if v == 1, or z = x if v == 0, in constant
// time, where n = len(x).
func (z nat) cndNeg(x nat, v int) {
	mask := maskFromBit(Word(v))
	var borrow Word
	for i := range z {
		yi := x[i] & mask
		borrow, z[i] = subWW(0, yi, borrow)
		z[i] = x[i]&^mask | z[i]
	}
}

// secTabselect copies table[idx] into out without branching or indexing
// on idx directly: every entry of table is read and masked on every
// call, so the access pattern is identical for every possible idx.
// spec.md §4.7's sec_tabselect.
func secTabselect(out nat, table []nat, idx Word) {
	for i := range out {
		out[i] = 0
	}
	for i, row := range table {
		eq := subtle.ConstantTimeEq(int32(i), int32(idx))
		mask := maskFromBit(Word(eq))
		for j := range out {
			out[j] |= row[j] & mask
		}
	}
}

// secEqual reports whether x and y represent the same value, in constant
// time with respect to both contents and, when padded to equal length by
// the caller, length.
func secEqual(x, y nat) bool {
	if len(x) != len(y) {
		return false
	}
	var diff Word
	for i := range x {
		diff |= x[i] ^ y[i]
	}
	return czero(diff) == 1
}

// secIsZero reports whether z is zero, in constant time with respect to
// z's limb values (but not its length, which is assumed public).
func secIsZero(z nat) bool {
	return z.nonzero() == 0
}

// secCmp performs a constant-time three-way comparison of x and y, which
// must already be the same length (callers pad to a public common
// length before calling): every limb pair is visited regardless of
// where x and y first differ, and the outcome is combined with masks
// rather than returned early.
func secCmp(x, y nat) int {
	if len(x) != len(y) {
		panic("bignum: secCmp requires equal-length operands")
	}
	var gt, lt Word
	decided := Word(0) // all-ones once a differing, more-significant limb has been seen
	for i := len(x) - 1; i >= 0; i-- {
		xi, yi := x[i], y[i]
		// subWW's own borrow-out is exactly the unsigned less-than flag,
		// derived by addition/subtraction alone; ltBit/gtBit is already
		// 0 or 1, so maskFromBit needs no comparison on xi, yi itself.
		ltBit, _ := subWW(xi, yi, 0)
		gtBit, _ := subWW(yi, xi, 0)
		gtMask := maskFromBit(gtBit)
		ltMask := maskFromBit(ltBit)
		gt |= gtMask &^ decided & 1
		lt |= ltMask &^ decided & 1
		decided |= gtMask | ltMask
	}
	return int(gt) - int(lt)
}

// limbsToBytes and bytesToLimbs give cndSelect a byte-oriented view so it
// can reuse crypto/subtle.ConstantTimeCopy directly instead of
// reimplementing its masking loop over Words.
func limbsToBytes(x nat) []byte {
	out := make([]byte, len(x)*_S)
	for i, xi := range x {
		for b := 0; b < _S; b++ {
			out[i*_S+b] = byte(xi >> (8 * b))
		}
	}
	return out
}

func bytesToLimbs(z nat, b []byte) {
	for i := range z {
		var w Word
		for k := _S - 1; k >= 0; k-- {
			w = w<<8 | Word(b[i*_S+k])
		}
		z[i] = w
	}
}
