// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

// S2: modular exponentiation, seeded with a small known value first.
func TestModExpS2Small(t *testing.T) {
	var z Int
	z.Exp(mustInt(t, "3"), mustInt(t, "65537"), mustInt(t, "97"))
	require.Equal(t, "86", z.String()) // 65537 mod 96 == 65, 3^65 mod 97 == 86
}

func TestModExpS2Large(t *testing.T) {
	x := mustInt(t, "2")
	y := mustInt(t, "1048576") // 2^20
	m := mustInt(t, "170141183460469231731687303715884105727") // 2^127 - 1
	var z Int
	z.Exp(x, y, m)
	// 2 has order 127 mod 2^127-1 and 2^20 mod 127 == 64, so this is 2^64
	require.Equal(t, "18446744073709551616", z.String())
}

// S5: primality on a Mersenne prime and a Fermat-number pseudoprime
// candidate that is actually composite.
func TestProbablyPrimeS5(t *testing.T) {
	mersenne := mustInt(t, "170141183460469231731687303715884105727") // 2^127 - 1
	require.True(t, mersenne.ProbablyPrime(20))

	fermat := mustInt(t, "18446744073709551617") // 2^64 + 1, composite
	require.False(t, fermat.ProbablyPrime(20))
}

func TestProbablyPrimeSmallKnownValues(t *testing.T) {
	primes := []int64{2, 3, 5, 7, 11, 13, 97, 997, 7919}
	for _, p := range primes {
		require.True(t, NewInt(p).ProbablyPrime(20), "%d should be prime", p)
	}
	composites := []int64{0, 1, 4, 6, 8, 9, 100, 1001, 7921}
	for _, c := range composites {
		require.False(t, NewInt(c).ProbablyPrime(20), "%d should not be prime", c)
	}
}

func TestNextPrime(t *testing.T) {
	cases := []struct{ from, want int64 }{
		{0, 2}, {1, 2}, {2, 3}, {7, 11}, {14, 17},
	}
	for _, c := range cases {
		got := new(Int).NextPrime(NewInt(c.from))
		require.Equal(t, NewInt(c.want).String(), got.String(), "NextPrime(%d)", c.from)
	}
}

func TestRandPrimeIsPrimeAndSized(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))
	p := new(Int).RandPrime(rnd, 64)
	require.True(t, p.ProbablyPrime(20))
	require.Equal(t, 64, p.BitLen())
}

// S4: modular square roots across all three sqrtModP dispatch paths.
func TestModSqrtS4(t *testing.T) {
	// p = 7 (3 mod 4 path)
	var r1 Int
	require.NotNil(t, r1.ModSqrt(mustInt(t, "4"), mustInt(t, "7")))
	require.True(t, r1.String() == "2" || r1.String() == "5")

	// p = 13 (5 mod 8 path)
	var r2 Int
	require.NotNil(t, r2.ModSqrt(mustInt(t, "4"), mustInt(t, "13")))
	require.True(t, r2.String() == "2" || r2.String() == "11")

	// p = 73 (general Tonelli-Shanks path)
	var r3 Int
	require.NotNil(t, r3.ModSqrt(mustInt(t, "3"), mustInt(t, "73")))
	var sq, p Int
	p.SetInt64(73)
	sq.Mul(&r3, &r3)
	sq.Mod(&sq, &p)
	require.Equal(t, "3", sq.String())
}
