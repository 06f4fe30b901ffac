// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFormatVerbs(t *testing.T) {
	x := mustInt(t, "-255")
	require.Equal(t, "-11111111", fmt.Sprintf("%b", x))
	require.Equal(t, "-377", fmt.Sprintf("%o", x))
	require.Equal(t, "-ff", fmt.Sprintf("%x", x))
	require.Equal(t, "-FF", fmt.Sprintf("%X", x))
	require.Equal(t, "-0xff", fmt.Sprintf("%#x", x))
}

func TestScanRoundTrip(t *testing.T) {
	var z Int
	n, err := fmt.Sscanf("-12345", "%d", &z)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Equal(t, "-12345", z.String())
}

func TestInvalidStringParse(t *testing.T) {
	_, ok := new(Int).SetString("not-a-number", 10)
	require.False(t, ok)

	_, ok = new(Int).SetString("", 10)
	require.False(t, ok)
}

func TestCompactFormRoundTrip(t *testing.T) {
	cases := []string{"0", "1", "255", "65535", "8388607", "-256"}
	for _, s := range cases {
		x := mustInt(t, s)
		c := x.Compact()
		var y Int
		y.SetCompact(c)
		// compact form is lossy once the significant bits no longer fit
		// the 23-bit mantissa (0xFFFFFF already does not); these small
		// cases fit exactly, so the round trip is exact.
		require.Zero(t, y.Cmp(x), "compact round trip failed for %s", s)
	}
}

func TestGobAndJSONRoundTrip(t *testing.T) {
	x := mustInt(t, "-123456789012345678901234567890")

	buf, err := x.GobEncode()
	require.NoError(t, err)
	var y Int
	require.NoError(t, y.GobDecode(buf))
	require.Zero(t, y.Cmp(x))

	j, err := x.MarshalJSON()
	require.NoError(t, err)
	var z Int
	require.NoError(t, z.UnmarshalJSON(j))
	require.Zero(t, z.Cmp(x))
}
