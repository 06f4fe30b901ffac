// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements the primality suite: a small-prime bitmap for
// fast rejection of inputs under 1024, primorial-based trial division,
// Miller-Rabin, strong Lucas (Baillie-PSW composition), and the
// next/rand/find-prime search helpers.

package bignum

import "io"

// smallPrimes lists the primes below 1024; it is the single canonical
// table this suite derives both the membership bitmap and the
// primorial trial-division moduli from, per the Open Question decision
// recorded in DESIGN.md.
var smallPrimes = [...]uint16{
	2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53, 59, 61, 67,
	71, 73, 79, 83, 89, 97, 101, 103, 107, 109, 113, 127, 131, 137, 139,
	149, 151, 157, 163, 167, 173, 179, 181, 191, 193, 197, 199, 211, 223,
	227, 229, 233, 239, 241, 251, 257, 263, 269, 271, 277, 281, 283, 293,
	307, 311, 313, 317, 331, 337, 347, 349, 353, 359, 367, 373, 379, 383,
	389, 397, 401, 409, 419, 421, 431, 433, 439, 443, 449, 457, 461, 463,
	467, 479, 487, 491, 499, 503, 509, 521, 523, 541, 547, 557, 563, 569,
	571, 577, 587, 593, 599, 601, 607, 613, 617, 619, 631, 641, 643, 647,
	653, 659, 661, 673, 677, 683, 691, 701, 709, 719, 727, 733, 739, 743,
	751, 757, 761, 769, 773, 787, 797, 809, 811, 821, 823, 827, 829, 839,
	853, 857, 859, 863, 877, 881, 883, 887, 907, 911, 919, 929, 937, 941,
	947, 953, 967, 971, 977, 983, 991, 997, 1009, 1013, 1019, 1021,
}

// smallPrimeBitmap answers membership in [2,1023] in constant time: bit
// i of smallPrimeBitmap[i/64] (set) means i is prime.
var smallPrimeBitmap [16]uint64 // 16*64 == 1024

func init() {
	for _, p := range smallPrimes {
		smallPrimeBitmap[p/64] |= 1 << (uint(p) % 64)
	}
}

// isSmallPrime reports whether n (0 <= n < 1024) is prime, via the
// bitmap computed in init.
func isSmallPrime(n uint) bool {
	if n >= 1024 {
		panic("bignum: isSmallPrime requires n < 1024")
	}
	return smallPrimeBitmap[n/64]&(1<<(n%64)) != 0
}

// primorialTrialCount is how many of the smallest primes the trial
// division pass checks directly (the first 16 primes, matching
// spec.md §4.10's "primorial 2·3·…·53 / 2" description).
const primorialTrialCount = 16

// passesPrimorialTrial reports whether n is not divisible by any of the
// first primorialTrialCount small primes (2 is assumed already handled
// by the evenness check ahead of this call in probablyPrime, so this
// still re-checks it defensively for any direct caller).
func passesPrimorialTrial(n nat) bool {
	for i := 0; i < primorialTrialCount; i++ {
		p := nat(nil).setWord(Word(smallPrimes[i]))
		_, r := nat(nil).div(nat(nil), n, p)
		if r.isZero() && n.cmp(p) != 0 {
			return false
		}
	}
	return true
}

// millerRabin runs reps rounds of the Miller-Rabin compositeness test
// against odd n > 3, drawing bases from rnd; if force2 the final round
// uses the fixed base 2 rather than a random one (spec.md §4.10's
// mr_prime_p). Returns true if n passes every round (probably prime).
func millerRabin(n nat, reps int, force2 bool, rnd io.Reader) bool {
	nMinus1 := nat(nil).sub(n, natOne)
	s := nMinus1.trailingZeroBits()
	q := nat(nil).shr(nMinus1, s)

	nMinus2 := nat(nil).sub(n, nat{2})

	for round := 0; round < reps; round++ {
		var a nat
		if force2 && round == reps-1 {
			a = nat{2}
		} else {
			for {
				cand := nat(nil).random(rngOrDefault(rnd), nMinus2, n.bitLen())
				if cand.cmp(nat{2}) >= 0 {
					a = cand
					break
				}
			}
		}

		// n is always odd here (the even case is rejected before this
		// is reached), so the fixed-window Montgomery path applies: a
		// primality witness's exponentiation pattern should not leak
		// which base was tried via timing.
		y := nat(nil).powmConstantTime(a, q, n)
		if y.isOne() || y.cmp(nMinus1) == 0 {
			continue
		}

		composite := true
		for i := uint(0); i < s-1; i++ {
			y = nat(nil).mul(y, y)
			_, y = nat(nil).div(nat(nil), y, n)
			if y.cmp(nMinus1) == 0 {
				composite = false
				break
			}
		}
		if composite {
			return false
		}
	}
	return true
}

// modSubN computes (a-b) mod n for a, b already in [0,n), wrapping
// around when a < b; a thin specialization of natgcd.go's modSub for
// the Lucas sequence arithmetic below, which always reduces mod the
// candidate n rather than an arbitrary modulus.
func modSubN(a, b, n nat) nat {
	if a.cmp(b) >= 0 {
		return nat(nil).sub(a, b)
	}
	return nat(nil).sub(nat(nil).add(a, n), b)
}

// lucasPrime runs the strong Lucas primality test on odd n > 2 (Knuth's
// exposition as summarized in spec.md §4.10): Selfridge parameter
// selection via scanning p = 3, 4, 5, ... until d = p^2-4 is a
// quadratic non-residue mod n, then the V-sequence doubling test. Since
// this Selfridge family always has D = P^2 - 4*Q with Q = 1, the V
// recurrences below never need to track Q explicitly.
func lucasPrime(n nat, limit int) bool {
	if n.isPerfectSquare() {
		return false
	}

	var p uint64
	found := false
	for pc := uint64(3); pc <= uint64(limit); pc++ {
		d := pc*pc - 4 // p >= 3 so p^2-4 > 0 always
		dmod := nat(nil).setUint64(d)
		_, dmod = nat(nil).div(nat(nil), dmod, n)

		j := jacobi(dmod, n)
		switch {
		case j == 0:
			// gcd(d, n) shares a nontrivial factor with n unless that
			// factor is n itself (d == 0 mod n).
			g := nat(nil).gcd(dmod, n)
			if g.cmp(natOne) != 0 && g.cmp(n) != 0 {
				return false
			}
		case j == -1:
			p, found = pc, true
		}
		if found {
			break
		}
		if pc == 40 && n.isPerfectSquare() {
			return false
		}
	}
	if !found {
		return false
	}

	// n+1 = 2^r * s, s odd
	nPlus1 := nat(nil).add(n, natOne)
	r := nPlus1.trailingZeroBits()
	s := nat(nil).shr(nPlus1, r)

	pW := nat(nil).setUint64(p)
	vs, vs1 := lucasVSequence(s, pW, n)

	two := nat{2}
	nMinus2 := nat(nil).sub(n, two)
	if vs.isZero() || vs.cmp(two) == 0 || vs.cmp(nMinus2) == 0 {
		return true
	}

	lhs := nat(nil).mul(vs, pW)
	_, lhs = nat(nil).div(nat(nil), lhs, n)
	rhs := nat(nil).mul(two, vs1)
	_, rhs = nat(nil).div(nat(nil), rhs, n)
	if lhs.cmp(rhs) == 0 {
		return true
	}

	v := vs
	for i := uint(0); i+1 < r; i++ {
		v = nat(nil).mul(v, v)
		_, v = nat(nil).div(nat(nil), v, n)
		v = modSubN(v, two, n)
		if v.isZero() {
			return true
		}
	}
	return false
}

// lucasVSequence computes (V_s, V_{s+1}) mod n for the Lucas sequence
// with parameters (P, D = P^2-4, Q = 1), walking the bits of s from the
// top down. With Q fixed at 1, Q^k is always 1 and drops out of the
// standard doubling recurrences entirely:
//
//	V(2k)   = V(k)^2 - 2
//	V(2k+1) = V(k)*V(k+1) - P
//	V(k+2)  = P*V(k+1) - V(k)
func lucasVSequence(s, p, n nat) (vs, vs1 nat) {
	v := nat{2}              // V_0
	vNext := nat(nil).set(p) // V_1

	two := nat{2}
	bits := exponentBits(s)
	if len(bits) == 0 {
		return v, vNext
	}

	for _, b := range bits {
		v2k := nat(nil).mul(v, v)
		_, v2k = nat(nil).div(nat(nil), v2k, n)
		v2k = modSubN(v2k, two, n)

		v2k1 := nat(nil).mul(v, vNext)
		_, v2k1 = nat(nil).div(nat(nil), v2k1, n)
		v2k1 = modSubN(v2k1, pMod(p, n), n)

		v, vNext = v2k, v2k1

		if b == 1 {
			next := nat(nil).mul(p, vNext)
			_, next = nat(nil).div(nat(nil), next, n)
			next = modSubN(next, v, n)
			v, vNext = vNext, next
		}
	}
	return v, vNext
}

// pMod reduces p mod n; P is always small (< 2^63) but n may not be,
// so this is a plain division rather than a special-cased subtraction.
func pMod(p, n nat) nat {
	_, r := nat(nil).div(nat(nil), p, n)
	return r
}

// probablyPrime runs the full Baillie-PSW composition (spec.md
// §4.10's probab_prime_p): small-prime table, evenness, primorial
// trial, Miller-Rabin (rounds+1 with the final round forced to base 2),
// then strong Lucas. Composite at any stage returns false immediately.
func probablyPrime(n nat, rounds int, rnd io.Reader) bool {
	if n.isZero() || n.isOne() {
		return false
	}
	if n.bitLen() <= 10 {
		v := uint(n[0])
		if v < 1024 {
			return isSmallPrime(v)
		}
	}
	if n.even() {
		return false
	}
	if !passesPrimorialTrial(n) {
		return false
	}
	if !millerRabin(n, rounds+1, true, rnd) {
		return false
	}
	return lucasPrime(n, 1000)
}

// ProbablyPrime reports whether x is probably prime, running `rounds`
// Miller-Rabin rounds (plus one forced-base-2 round) followed by a
// strong Lucas test (Baillie-PSW). rounds <= 0 is treated as 20.
func (x *Int) ProbablyPrime(rounds int) bool {
	if x.neg {
		return false
	}
	if rounds <= 0 {
		rounds = 20
	}
	return probablyPrime(x.abs, rounds, nil)
}

// NextPrime sets z to the smallest prime strictly greater than x and
// returns z (spec.md §4.10's nextprime): rounds x+1 up to an odd value
// >= 3 (or to 2 when x+1 <= 2), then tests successive odd candidates
// until Baillie-PSW passes.
func (z *Int) NextPrime(x *Int) *Int {
	r, ok := findPrime(new(Int).Add(x, intOne), -1)
	if !ok {
		panic("bignum: NextPrime: unreachable iteration bound")
	}
	return z.Set(r)
}

// FindPrime sets z to the smallest prime >= x found within m
// iterations, and reports whether one was found (spec.md §4.10's
// findprime). m <= 0 means unbounded.
func (z *Int) FindPrime(x *Int, m int) (*Int, bool) {
	r, ok := findPrime(x, m)
	if !ok {
		return nil, false
	}
	return z.Set(r), true
}

func findPrime(x *Int, m int) (*Int, bool) {
	cand := new(Int).Set(x)
	if cand.Cmp(NewInt(2)) <= 0 {
		cand.SetInt64(2)
	} else if cand.abs[0]&1 == 0 {
		cand.Add(cand, intOne)
	}

	two := NewInt(2)
	for i := 0; m <= 0 || i < m; i++ {
		if probablyPrime(cand.abs, 20, nil) {
			return cand, true
		}
		if cand.Cmp(two) == 0 {
			cand.SetInt64(3)
		} else {
			cand.Add(cand, two)
		}
	}
	return nil, false
}

// RandPrime sets z to a uniformly random probable prime of exactly the
// given bit length, reading randomness from rnd (crypto/rand.Reader if
// nil), and returns z (spec.md §4.10's randprime): the top two bits and
// the low bit of the candidate are forced, then delta is walked over
// even offsets filtering out candidates divisible by any of the first
// 16 primes before running Baillie-PSW with 20 rounds.
func (z *Int) RandPrime(rnd io.Reader, bits int) *Int {
	rnd = rngOrDefault(rnd)
	for {
		cand := randomBits(rnd, bits)
		const maxDelta = 1 << 20
		for delta := 0; delta < maxDelta; delta += 2 {
			c := cand
			if delta > 0 {
				c = nat(nil).add(cand, nat(nil).setUint64(uint64(delta)))
			}
			if c.bitLen() != bits {
				break // carried out of the requested bit length
			}
			if !passesPrimorialTrial(c) {
				continue
			}
			if probablyPrime(c, 20, rnd) {
				z.abs, z.neg = c, false
				return z
			}
		}
		// exhausted this delta window without a hit; redraw.
	}
}
