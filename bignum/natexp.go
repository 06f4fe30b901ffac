// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements modular exponentiation: a variable-time
// sliding-window path (5-bit window, precomputing the odd powers
// x^1, x^3, ..., x^31) for callers that do not need to hide the
// exponent, and a fixed-window, Montgomery-based constant-time path
// (4-bit window, every power visited regardless of the exponent's bits)
// for callers operating on secret exponents such as RSA/DH private keys.

package bignum

// pow computes x^y with no modular reduction, via plain left-to-right
// square-and-multiply. Used by Int.Exp's m == nil case.
func (z nat) pow(x, y nat) nat {
	if len(y) == 0 {
		return z.setWord(1)
	}
	bits := exponentBits(y)
	acc := nat(nil).setWord(1)
	for _, b := range bits {
		acc = acc.mul(acc, acc)
		if b == 1 {
			acc = acc.mul(acc, x)
		}
	}
	return z.set(acc)
}

// powm computes x^y mod m. y and m are not secret under this entry
// point; callers holding a secret exponent must call powmConstantTime
// instead. When y spans at least two limbs and m is odd, the
// Montgomery-backed sliding window is worth its conversion overhead and
// is used; otherwise the plain division-based sliding window runs
// directly against m with no setup cost.
func (z nat) powm(x, y, m nat) nat {
	if len(m) == 1 && m[0] == 1 {
		return z.setWord(0)
	}
	if len(y) == 0 {
		return z.setWord(1)
	}
	if len(y) == 1 && y[0] == 1 {
		_, r := nat(nil).div(nat(nil), x, m)
		return z.set(r)
	}
	if len(y) >= 2 && m[0]&1 == 1 {
		return z.expSlidingWindowMontgomery(x, y, m)
	}
	return z.expSlidingWindow(x, y, m)
}

// expSlidingWindow computes x^y mod m using a 5-bit sliding window: scan
// the exponent's bits left to right, accumulating runs of zero bits as
// plain squarings and runs bounded by a 1-bit as a single
// multiply-by-precomputed-odd-power step. This is the teacher's windowed
// exponentiation generalized from a fixed 4-bit window to a sliding
// window, since the caller here is not hiding any timing signal.
func (z nat) expSlidingWindow(x, y, m nat) nat {
	const w = 5
	_, xr := nat(nil).div(nat(nil), x, m)

	// odd[i] = x^(2i+1) mod m, for i = 0..(1<<(w-1))-1
	odd := make([]nat, 1<<(w-1))
	odd[0] = xr
	if len(odd) > 1 {
		sq := nat(nil).mul(xr, xr)
		_, sq = nat(nil).div(nat(nil), sq, m)
		for i := 1; i < len(odd); i++ {
			p := nat(nil).mul(odd[i-1], sq)
			_, p = nat(nil).div(nat(nil), p, m)
			odd[i] = p
		}
	}

	bits := exponentBits(y)
	z = z.setWord(1)
	i := 0
	for i < len(bits) {
		if bits[i] == 0 {
			z = z.mul(z, z)
			_, z = nat(nil).div(nat(nil), z, m)
			i++
			continue
		}
		// start of a window: extend up to w bits or until the
		// trailing bits are exhausted, always ending on a 1 bit.
		j := i + w
		if j > len(bits) {
			j = len(bits)
		}
		for bits[j-1] == 0 {
			j--
		}
		for k := i; k < j; k++ {
			z = z.mul(z, z)
			_, z = nat(nil).div(nat(nil), z, m)
		}
		e := bitsToWord(bits[i:j])
		z = z.mul(z, odd[(e-1)/2])
		_, z = nat(nil).div(nat(nil), z, m)
		i = j
	}
	return z.norm()
}

// expSlidingWindowMontgomery computes x^y mod m using the same 5-bit
// sliding window as expSlidingWindow, but keeps the accumulator and the
// precomputed odd powers in Montgomery form throughout (natmod.go's
// montgomeryMul), folding modular reduction into each multiplication
// instead of paying for a full division after every squaring. m must be
// odd. This path is variable-time: unlike powmConstantTime it is free to
// skip squarings on zero bits and branch on the window width.
func (z nat) expSlidingWindowMontgomery(x, y, m nat) nat {
	mm := newMontgomeryModulus(m)
	n := mm.n
	r2 := montgomeryR2(m)

	_, xr := nat(nil).div(nat(nil), x, m)
	xrPad := make(nat, n)
	copy(xrPad, xr)
	xm := nat(nil).toMontgomery(xrPad, mm, r2, nil, n)

	const w = 5
	odd := make([]nat, 1<<(w-1))
	odd[0] = xm
	if len(odd) > 1 {
		sq := nat(nil).montgomeryMul(xm, xm, mm, nil, n)
		for i := 1; i < len(odd); i++ {
			odd[i] = nat(nil).montgomeryMul(odd[i-1], sq, mm, nil, n)
		}
	}

	one := make(nat, n)
	one[0] = 1
	acc := nat(nil).toMontgomery(one, mm, r2, nil, n)

	bits := exponentBits(y)
	i := 0
	for i < len(bits) {
		if bits[i] == 0 {
			acc = nat(nil).montgomeryMul(acc, acc, mm, nil, n)
			i++
			continue
		}
		j := i + w
		if j > len(bits) {
			j = len(bits)
		}
		for bits[j-1] == 0 {
			j--
		}
		for k := i; k < j; k++ {
			acc = nat(nil).montgomeryMul(acc, acc, mm, nil, n)
		}
		e := bitsToWord(bits[i:j])
		acc = nat(nil).montgomeryMul(acc, odd[(e-1)/2], mm, nil, n)
		i = j
	}

	result := nat(nil).fromMontgomery(acc, mm, nil, n)
	return z.set(result.norm())
}

// exponentBits returns the bits of y, most significant first, with no
// leading zero bit (the empty slice represents 0).
func exponentBits(y nat) []byte {
	n := y.bitLen()
	bits := make([]byte, n)
	for i := 0; i < n; i++ {
		if y.bit(uint(n-1-i)) {
			bits[i] = 1
		}
	}
	return bits
}

// bitsToWord packs a most-significant-bit-first bit slice into a Word.
func bitsToWord(bits []byte) Word {
	var w Word
	for _, b := range bits {
		w = w<<1 | Word(b)
	}
	return w
}

// bit reports whether bit i of z is set.
func (z nat) bit(i uint) bool {
	w := int(i / _W)
	if w >= len(z) {
		return false
	}
	return z[w]&(1<<(i%_W)) != 0
}

// powmConstantTime computes x^y mod m using a fixed 4-bit window and
// Montgomery multiplication, visiting exactly the same sequence of
// operations regardless of which bits of y are set: no data-dependent
// branch or memory access pattern depends on y. m must be odd; even
// moduli do not admit Montgomery reduction and are rejected by
// newMontgomeryModulus.
func (z nat) powmConstantTime(x, y, m nat) nat {
	mm := newMontgomeryModulus(m)
	n := mm.n

	xr := make(nat, n)
	if x.cmp(m) >= 0 {
		_, xm := nat(nil).div(nat(nil), x, m)
		copy(xr, xm)
	} else {
		copy(xr, x)
	}

	r2 := montgomeryR2(m)
	zt := make(nat, n)

	const w = 4
	powers := make([]nat, 1<<w)
	powers[0] = nat(nil).toMontgomery(natOne, mm, r2, zt, n)
	powers[1] = nat(nil).toMontgomery(xr, mm, r2, zt, n)
	for i := 2; i < 1<<w; i++ {
		powers[i] = nat(nil).montgomeryMul(powers[i-1], powers[1], mm, zt, n)
	}

	acc := make(nat, n)
	copy(acc, powers[0])

	bits := exponentBitsPadded(y, w)
	for i := 0; i < len(bits); i += w {
		// square w times, every iteration, regardless of the window value
		for k := 0; k < w; k++ {
			acc = nat(nil).montgomeryMul(acc, acc, mm, zt, n)
		}
		idx := bitsToWord(bits[i : i+w])
		sel := selectPower(powers, idx)
		acc = nat(nil).montgomeryMul(acc, sel, mm, zt, n)
	}

	result := nat(nil).fromMontgomery(acc, mm, zt, n)
	return z.set(result.norm())
}

// exponentBitsPadded returns all len(y)*_W bits of y's limbs, most
// significant bit first, left-padded with zero bits so the total length is
// a multiple of w. This keeps the constant-time loop's iteration count a
// function of y's limb count only, not of y's actual value.
func exponentBitsPadded(y nat, w int) []byte {
	n := len(y) * _W
	if n == 0 {
		n = w
	}
	n += (w - n%w) % w
	bits := make([]byte, n)
	for i := 0; i < n; i++ {
		if y.bit(uint(n - 1 - i)) {
			bits[i] = 1
		}
	}
	return bits
}

// selectPower picks powers[idx] without branching or indexing on idx
// directly, via sec_tabselect (ctnat.go).
func selectPower(powers []nat, idx Word) nat {
	n := len(powers[0])
	out := make(nat, n)
	secTabselect(out, powers, idx)
	return out
}
