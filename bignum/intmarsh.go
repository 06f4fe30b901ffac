// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file implements Int's encoding.Gob/TextMarshaler and
// encoding/json support, matching the teacher's intmarsh.go's own
// version-byte-prefixed gob encoding; JSON is written as a bare decimal
// number, and a quoted decimal string is also accepted when decoding.

package bignum

import "fmt"

// version 1 marks the gob wire format's leading byte, ahead of a sign
// byte and the big-endian magnitude bytes, so a future format change
// can be detected on decode.
const intGobVersion byte = 1

// GobEncode implements the gob.GobEncoder interface.
func (x *Int) GobEncode() ([]byte, error) {
	if x == nil {
		return nil, nil
	}
	raw := make([]byte, len(x.abs)*_S)
	offset := x.abs.bytes(raw)
	mag := raw[offset:]

	buf := make([]byte, 2+len(mag))
	buf[0] = intGobVersion
	if x.neg {
		buf[1] = 1
	}
	copy(buf[2:], mag)
	return buf, nil
}

// GobDecode implements the gob.GobDecoder interface.
func (z *Int) GobDecode(buf []byte) error {
	if len(buf) == 0 {
		z.abs = z.abs[:0]
		z.neg = false
		return nil
	}
	if buf[0] != intGobVersion {
		return fmt.Errorf("bignum: Int.GobDecode: encoding version %d not supported", buf[0])
	}
	z.abs = z.abs.setBytes(buf[2:])
	z.neg = buf[1] != 0 && len(z.abs) > 0
	return nil
}

// MarshalText implements the encoding.TextMarshaler interface.
func (x *Int) MarshalText() (text []byte, err error) {
	return []byte(x.Text(10)), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (z *Int) UnmarshalText(text []byte) error {
	if _, ok := z.SetString(string(text), 10); !ok {
		return fmt.Errorf("bignum: Int.UnmarshalText: invalid decimal string %q", text)
	}
	return nil
}

// MarshalJSON implements the json.Marshaler interface.
func (x *Int) MarshalJSON() ([]byte, error) {
	return []byte(x.Text(10)), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface. Accepts both
// a bare JSON number and a quoted decimal string, since large integers
// may arrive either way depending on the encoder at the other end.
func (z *Int) UnmarshalJSON(text []byte) error {
	if len(text) == 0 {
		return fmt.Errorf("bignum: Int.UnmarshalJSON: empty input")
	}
	if text[0] == '"' && text[len(text)-1] == '"' {
		text = text[1 : len(text)-1]
	}
	if _, ok := z.SetString(string(text), 10); !ok {
		return fmt.Errorf("bignum: Int.UnmarshalJSON: invalid decimal string %q", text)
	}
	return nil
}
