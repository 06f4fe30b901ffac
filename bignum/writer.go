// Copyright 2009 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// This file defines the injected-writer boundary: spec.md §5 notes
// there is no I/O in the core and that stdio is handled by an injected
// writer at the boundary. The idiomatic Go substitute is simply
// accepting an io.Writer wherever the core would otherwise print,
// rather than a callback-and-context pair.

package bignum

import "io"

// Fprint writes x's base-10 representation to w, returning the number
// of bytes written and any write error, without ever touching os.Stdout
// directly from inside this package.
func (x *Int) Fprint(w io.Writer) (int, error) {
	return io.WriteString(w, x.String())
}

// Fprintf writes x to w in the given base (2..MaxBase).
func (x *Int) Fprintf(w io.Writer, base int) (int, error) {
	return io.WriteString(w, x.Text(base))
}
