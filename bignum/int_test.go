// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func mustInt(t *testing.T, s string) *Int {
	t.Helper()
	z, ok := new(Int).SetString(s, 0)
	require.True(t, ok, "SetString(%q) failed", s)
	return z
}

func TestAddCommutes(t *testing.T) {
	xs := []string{"0", "1", "-1", "123456789012345678901234567890", "-98765432109876543210"}
	for _, a := range xs {
		for _, b := range xs {
			x, y := mustInt(t, a), mustInt(t, b)
			var lhs, rhs Int
			lhs.Add(x, y)
			rhs.Add(y, x)
			require.Zero(t, lhs.Cmp(&rhs), "Add(%s,%s) not commutative", a, b)
		}
	}
}

func TestAddAssociativeMulDistributive(t *testing.T) {
	a := mustInt(t, "123456789012345678901234567890")
	b := mustInt(t, "-98765432109876543210")
	c := mustInt(t, "42")

	var ab, abc1, bc, abc2 Int
	ab.Add(a, b)
	abc1.Add(&ab, c)
	bc.Add(b, c)
	abc2.Add(a, &bc)
	require.Zero(t, abc1.Cmp(&abc2), "addition not associative")

	// a*(b+c) == a*b + a*c
	var sum, lhs, ba, ca, rhs Int
	sum.Add(b, c)
	lhs.Mul(a, &sum)
	ba.Mul(a, b)
	ca.Mul(a, c)
	rhs.Add(&ba, &ca)
	require.Zero(t, lhs.Cmp(&rhs), "multiplication does not distribute over addition")
}

// S1: division edge case whose single quotient limb is B-1:
// 2^128 - 1 == (2^64 + 1) * (2^64 - 1) exactly.
func TestDivisionEdgeCaseS1(t *testing.T) {
	num := mustInt(t, "340282366920938463463374607431768211455") // 2^128 - 1
	den := mustInt(t, "18446744073709551617")                     // 2^64 + 1

	var q, r Int
	q.QuoRem(num, den, &r)
	require.Equal(t, "18446744073709551615", q.String())
	require.Equal(t, "0", r.String())
}

// S3: modular inverse.
func TestModInverseS3(t *testing.T) {
	x := new(Int).ModInverse(mustInt(t, "5"), mustInt(t, "11"))
	require.NotNil(t, x)
	require.Equal(t, "9", x.String())

	require.Nil(t, new(Int).ModInverse(mustInt(t, "0"), mustInt(t, "11")))
	require.Nil(t, new(Int).ModInverse(mustInt(t, "6"), mustInt(t, "9")))
}

// ModInverseConstantTime must agree with the variable-time ModInverse on
// a prime modulus.
func TestModInverseConstantTimeAgreesWithModInverse(t *testing.T) {
	p := mustInt(t, "97")
	for _, xs := range []string{"1", "2", "3", "50", "96"} {
		x := mustInt(t, xs)
		want := new(Int).ModInverse(x, p)
		got := new(Int).ModInverseConstantTime(x, p)
		require.Zero(t, got.Cmp(want), "ModInverseConstantTime mismatch for %s", xs)

		var check Int
		check.Mul(x, got)
		check.Mod(&check, p)
		require.Equal(t, "1", check.String(), "x*inverse != 1 mod p for %s", xs)
	}
}

// ExpConstantTime must agree with the variable-time Exp.
func TestExpConstantTimeAgreesWithExp(t *testing.T) {
	m := mustInt(t, "1000000007")
	for _, xs := range []string{"2", "3", "123456"} {
		x := mustInt(t, xs)
		y := mustInt(t, "65537")
		want := new(Int).Exp(x, y, m)
		got := new(Int).ExpConstantTime(x, y, m)
		require.Zero(t, got.Cmp(want), "ExpConstantTime mismatch for %s", xs)
	}
}

// S6: gcdext(240, 46) = 2, -9*240 + 47*46 = 2.
func TestGCDExtendedS6(t *testing.T) {
	x, y := mustInt(t, "240"), mustInt(t, "46")
	var a, b, g Int
	g.GCD(&a, &b, x, y)
	require.Equal(t, "2", g.String())

	var check, t1, t2 Int
	t1.Mul(&a, x)
	t2.Mul(&b, y)
	check.Add(&t1, &t2)
	require.Zero(t, check.Cmp(&g))
}

// S7: whitespace-tolerant base-0 parsing round-tripping through base 10.
func TestStringParsingS7(t *testing.T) {
	z, ok := new(Int).SetString("  -0xDEADBEEF", 0)
	require.True(t, ok)
	require.Equal(t, "-3735928559", z.Text(10))
}

func TestDivisionIdentityQuoRemDivMod(t *testing.T) {
	cases := [][2]string{
		{"17", "5"}, {"-17", "5"}, {"17", "-5"}, {"-17", "-5"},
		{"100000000000000000000", "7"}, {"-100000000000000000000", "7"},
	}
	for _, c := range cases {
		x, d := mustInt(t, c[0]), mustInt(t, c[1])

		var q, r Int
		q.QuoRem(x, d, &r)
		var reconstructed Int
		reconstructed.Mul(&q, d)
		reconstructed.Add(&reconstructed, &r)
		require.Zero(t, reconstructed.Cmp(x), "QuoRem: x != q*d+r for %v", c)
		require.True(t, r.CmpAbs(d) < 0, "QuoRem remainder too large for %v", c)
		if r.Sign() != 0 {
			require.Equal(t, x.Sign(), r.Sign(), "QuoRem remainder sign mismatch for %v", c)
		}

		var dq, dr Int
		dq.DivMod(x, d, &dr)
		var reconstructed2 Int
		reconstructed2.Mul(&dq, d)
		reconstructed2.Add(&reconstructed2, &dr)
		require.Zero(t, reconstructed2.Cmp(x), "DivMod: x != q*d+r for %v", c)
		require.True(t, dr.Sign() >= 0, "DivMod remainder negative for %v", c)
		var absD Int
		absD.Abs(d)
		require.True(t, dr.CmpAbs(&absD) < 0, "DivMod remainder out of range for %v", c)
	}
}

func TestShiftIdentities(t *testing.T) {
	x := mustInt(t, "-123456789012345678901234567890")
	for k := uint(0); k < 70; k += 7 {
		var shifted, pow2, product Int
		shifted.Lsh(x, k)
		pow2.Lsh(NewInt(1), k)
		product.Mul(x, &pow2)
		require.Zero(t, shifted.Cmp(&product), "Lsh(x,%d) != x*2^%d", k, k)

		var floorDiv Int
		floorDiv.Rsh(x, k)
		var q, r Int
		q.DivMod(x, &pow2, &r)
		require.Zero(t, floorDiv.Cmp(&q), "Rsh(x,%d) != floor(x/2^%d)", k, k)
	}
}

func TestBitwiseIdentities(t *testing.T) {
	vals := []string{"0", "1", "-1", "12345", "-12345", "987654321098765432109876543210", "-55555555555555555"}
	for _, a := range vals {
		for _, b := range vals {
			x, y := mustInt(t, a), mustInt(t, b)

			var ior, and, xor, sum Int
			ior.Or(x, y)
			and.And(x, y)
			xor.Xor(x, y)
			sum.Add(x, y)

			var iorPlusAnd Int
			iorPlusAnd.Add(&ior, &and)
			require.Zero(t, iorPlusAnd.Cmp(&sum), "ior(x,y)+and(x,y) != x+y for %s,%s", a, b)

			var iorMinusAnd Int
			iorMinusAnd.Sub(&ior, &and)
			require.Zero(t, xor.Cmp(&iorMinusAnd), "xor(x,y) != ior(x,y)-and(x,y) for %s,%s", a, b)

			var com, negXMinus1, negX, one Int
			one.SetInt64(1)
			com.Not(x)
			negX.Neg(x)
			negXMinus1.Sub(&negX, &one)
			require.Zero(t, com.Cmp(&negXMinus1), "com(x) != -x-1 for %s", a)
		}
	}
}

func TestFermatRoundTripLaw8(t *testing.T) {
	m := mustInt(t, "97")
	for _, xs := range []string{"2", "3", "10", "96"} {
		x := mustInt(t, xs)
		var mMinus1 Int
		mMinus1.Sub(m, intOne)
		var z Int
		z.Exp(x, &mMinus1, m)
		require.Equal(t, "1", z.String(), "Fermat check failed for x=%s", xs)
	}
}

func TestJacobiMultiplicativityLaw9(t *testing.T) {
	n := mustInt(t, "97")
	pairs := [][2]string{{"2", "3"}, {"5", "11"}, {"-1", "4"}, {"7", "13"}}
	for _, p := range pairs {
		a, b := mustInt(t, p[0]), mustInt(t, p[1])
		var ab Int
		ab.Mul(a, b)
		lhs := Jacobi(&ab, n)
		rhs := Jacobi(a, n) * Jacobi(b, n)
		require.Equal(t, rhs, lhs, "Jacobi multiplicativity failed for %v", p)
	}
}

func TestRootRemLaw10(t *testing.T) {
	cases := []struct {
		x string
		k uint
	}{
		{"1000000", 3},
		{"123456789012345678901234567890", 5},
		{"999999999999999999999999999999999999999999", 2},
	}
	for _, c := range cases {
		x := mustInt(t, c.x)
		var s, r Int
		s.RootRem(x, c.k, &r)

		var sk, reconstructed Int
		sk.Exp(&s, NewInt(int64(c.k)), nil)
		reconstructed.Add(&sk, &r)
		require.Zero(t, reconstructed.Cmp(x), "s^k+r != x for %v", c)

		var sPlus1, sPlus1k Int
		sPlus1.Add(&s, intOne)
		sPlus1k.Exp(&sPlus1, NewInt(int64(c.k)), nil)
		require.True(t, sPlus1k.Cmp(x) > 0, "(s+1)^k <= x for %v", c)
	}
}

func TestByteRoundTripLaw2(t *testing.T) {
	vals := []string{"0", "1", "255", "256", "123456789012345678901234567890"}
	for _, s := range vals {
		x := mustInt(t, s)
		for _, endian := range []Endian{BigEndian, LittleEndian} {
			buf := x.ExportBytes(0, endian)
			var y Int
			y.ImportBytes(buf, endian)
			require.Zero(t, y.Cmp(x), "round trip failed for %s endian=%v", s, endian)

			// a wider width (padding) must still round-trip.
			wide := x.ExportBytes(len(buf)+4, endian)
			var y2 Int
			y2.ImportBytes(wide, endian)
			require.Zero(t, y2.Cmp(x), "padded round trip failed for %s endian=%v", s, endian)
		}
	}
}

func TestStringRoundTripLaw3(t *testing.T) {
	vals := []string{"0", "1", "-1", "123456789012345678901234567890", "-42"}
	for _, s := range vals {
		x := mustInt(t, s)
		for _, base := range []int{2, 8, 10, 16, 62} {
			rendered := x.Text(base)
			y, ok := new(Int).SetString(rendered, base)
			require.True(t, ok, "SetString(%q, %d) failed", rendered, base)
			require.Zero(t, y.Cmp(x), "round trip failed for %s base=%d", s, base)
		}
	}
}

func TestSqrtAndRoot(t *testing.T) {
	var s Int
	s.Sqrt(mustInt(t, "99"))
	require.Equal(t, "9", s.String())

	var s2 Int
	s2.Root(mustInt(t, "1000"), 3)
	require.Equal(t, "10", s2.String())
}
