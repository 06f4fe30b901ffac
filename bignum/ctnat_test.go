// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bignum

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Law 11: constant-time equality/compare must agree with the
// variable-time versions on every input in the corpus.
func TestConstantTimeAgreesWithVariableTime(t *testing.T) {
	vals := []string{"0", "1", "2", "255", "256", "65535", "123456789012345678901234567890"}
	width := 0
	parsed := make([]nat, len(vals))
	for i, s := range vals {
		n, _, _, err := nat(nil).scan(strings.NewReader(s), 10)
		require.NoError(t, err)
		parsed[i] = n
		if len(n) > width {
			width = len(n)
		}
	}

	pad := func(x nat) nat {
		p := make(nat, width)
		copy(p, x)
		return p
	}

	for i, a := range parsed {
		for j, b := range parsed {
			pa, pb := pad(a), pad(b)
			require.Equal(t, a.cmp(b) == 0, secEqual(pa, pb), "secEqual mismatch for %s,%s", vals[i], vals[j])
			require.Equal(t, a.cmp(b), secCmp(pa, pb), "secCmp mismatch for %s,%s", vals[i], vals[j])
		}
		require.Equal(t, a.isZero(), secIsZero(a), "secIsZero mismatch for %s", vals[i])
	}
}
