// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements Int's string conversions and the fmt.Formatter/
// fmt.Scanner glue, built directly on top of the nat-layer codec in
// natconv.go.

package bignum

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// String returns the base-10 representation of x.
func (x *Int) String() string {
	return x.Text(10)
}

// Text returns the string representation of x in the given base, for
// 2 <= base <= MaxBase. Digits above 9 use lowercase letters for bases
// up to 36, then uppercase letters for bases up to 62.
func (x *Int) Text(base int) string {
	if base < 2 || base > MaxBase {
		panic("bignum: invalid base")
	}
	s := x.abs.string(digitChars[:base])
	if x.neg {
		return "-" + s
	}
	return s
}

// SetString sets z to the value of s, interpreted in the given base (0
// means: sniff a 0x/0o/0b/0 prefix, default base 10), and returns
// (z, true) on success or (nil, false) if s is not a valid representation.
func (z *Int) SetString(s string, base int) (*Int, bool) {
	s = strings.TrimSpace(s)
	neg := false
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	if len(s) == 0 {
		return nil, false
	}
	r := strings.NewReader(s)
	abs, _, _, err := nat(nil).scan(r, base)
	if err != nil || r.Len() > 0 {
		return nil, false
	}
	z.abs = abs
	z.neg = neg && len(z.abs) > 0
	return z, true
}

// Format implements fmt.Formatter, supporting the %b, %o, %d, %x, %X and
// %v verbs plus the '#' flag for 0b/0/0x prefixes, matching the
// conventions of the standard numeric formatters.
func (x *Int) Format(s fmt.State, ch rune) {
	base := 10
	prefix := ""
	switch ch {
	case 'b':
		base, prefix = 2, "0b"
	case 'o':
		base, prefix = 8, "0"
	case 'd', 'v':
		base = 10
	case 'x':
		base, prefix = 16, "0x"
	case 'X':
		base, prefix = 16, "0X"
	default:
		fmt.Fprintf(s, "%%!%c(bignum.Int=%s)", ch, x.String())
		return
	}

	digits := x.abs.string(digitsForVerb(ch, base))
	sign := ""
	if x.neg {
		sign = "-"
	} else if s.Flag('+') {
		sign = "+"
	}
	out := digits
	if s.Flag('#') {
		out = prefix + out
	}
	io.WriteString(s, sign+out)
}

// digitsForVerb picks the digit alphabet for a Format verb: %X wants
// uppercase hex, everything else wants the lowercase/digit charset.
func digitsForVerb(ch rune, base int) string {
	if ch == 'X' {
		return strings.ToUpper(digitChars[:base])
	}
	return digitChars[:base]
}

// Scan implements fmt.Scanner, so Int satisfies fmt.Scan's %v/%d/%x/%o/%b
// verbs.
func (z *Int) Scan(s fmt.ScanState, ch rune) error {
	base := 0
	switch ch {
	case 'v', 'd', 's':
		base = 10
	case 'x':
		base = 16
	case 'o':
		base = 8
	case 'b':
		base = 2
	default:
		return errors.New("bignum: Int.Scan: invalid verb '" + string(ch) + "'")
	}

	s.SkipSpace()
	neg := false
	if r, _, err := s.ReadRune(); err == nil {
		if r == '+' || r == '-' {
			neg = r == '-'
		} else {
			s.UnreadRune()
		}
	}

	abs, _, _, err := nat(nil).scan(runeScanner{s}, base)
	if err != nil {
		return err
	}
	z.abs = abs
	z.neg = neg && len(z.abs) > 0
	return nil
}

// runeScanner adapts fmt.ScanState to io.ByteScanner so nat.scan can
// read from either a string reader (SetString) or a format verb
// (Scan) through the same entry point.
type runeScanner struct {
	s fmt.ScanState
}

func (r runeScanner) ReadByte() (byte, error) {
	ru, _, err := r.s.ReadRune()
	if err != nil {
		return 0, err
	}
	return byte(ru), nil
}

func (r runeScanner) UnreadByte() error {
	return r.s.UnreadRune()
}
