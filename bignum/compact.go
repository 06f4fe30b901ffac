// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the compact form: a single 32-bit limb encoding
// used by blockchain-style difficulty targets. Bits [31:24] hold the
// byte-length exponent, bit 23 the sign, and bits [22:0] the mantissa;
// the represented value is sign * mantissa * 256^(exponent-3).

package bignum

// compactExponentBias is the exponent offset (byte length 3 is treated
// as exponent 0 for the mantissa's own 3-byte window).
const compactExponentBias = 3

// Compact returns x encoded in compact form. A magnitude that cannot be
// represented (mantissa overflow, exponent out of [0,255]) is clamped:
// an over-wide magnitude is truncated to its top 3 significant bytes at
// the cost of precision, matching the lossy nature of this format.
func (x *Int) Compact() uint32 {
	if x.Sign() == 0 {
		return 0
	}

	raw := make([]byte, len(x.abs)*_S)
	offset := x.abs.bytes(raw)
	mag := raw[offset:]

	exp := len(mag)
	var mantissa uint32
	switch {
	case exp <= compactExponentBias:
		for _, b := range mag {
			mantissa = mantissa<<8 | uint32(b)
		}
		mantissa <<= uint(8 * (compactExponentBias - exp))
	default:
		// take the top 3 bytes; a mantissa whose high bit would set
		// bit 23 of the compact word is right-shifted one byte and the
		// exponent bumped, per mpz_bytelen's single-right-shift rule.
		top := mag[:compactExponentBias]
		mantissa = uint32(top[0])<<16 | uint32(top[1])<<8 | uint32(top[2])
	}

	if mantissa&0x800000 != 0 {
		mantissa >>= 8
		exp++
	}

	c := uint32(exp)<<24 | mantissa&0x7fffff
	if x.neg && mantissa != 0 {
		c |= 0x800000
	}
	return c
}

// SetCompact sets z to the value encoded by c in compact form and
// returns z. A malformed exponent/mantissa pair (mantissa with the sign
// bit area clear but an exponent that would index past it) still
// decodes deterministically; compact form has no invalid encodings,
// only degenerate ones (mantissa 0 decodes to 0 regardless of sign/exp).
func (z *Int) SetCompact(c uint32) *Int {
	exp := int(c >> 24)
	neg := c&0x800000 != 0
	mantissa := c & 0x7fffff

	if mantissa == 0 {
		z.SetInt64(0)
		return z
	}

	m := new(Int).SetUint64(uint64(mantissa))
	shiftBytes := exp - compactExponentBias
	if shiftBytes > 0 {
		m.Lsh(m, uint(8*shiftBytes))
	} else if shiftBytes < 0 {
		m.Rsh(m, uint(8*(-shiftBytes)))
	}

	z.Set(m)
	z.neg = neg && z.Sign() != 0
	return z
}
