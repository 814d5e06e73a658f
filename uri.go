// Copyright 2023-2026 Buf Technologies, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package uri splits URI references into their RFC 3986 components
// without copying.
//
// Parse walks the input once and records component boundaries as offsets
// into the caller's buffer. The accessors on View, Authority, Scheme and
// Path return subslices of that buffer, so the buffer must not be modified
// while a View or anything obtained from it is in use. Returned slices have
// their capacity clipped, so appending to one never writes into the
// original buffer.
//
// Parsing is purely syntactic. Components are returned exactly as they
// appear in the input: no percent-decoding, case folding or dot-segment
// removal is performed.
package uri

// noPos marks an absent offset. Zero is a valid position, so absence needs
// an out-of-range value.
const noPos = -1

func valid(pos int) bool { return pos != noPos }

type hostBounds struct {
	start, end int
	kind       HostKind
}

// View is a parsed URI reference. Views are only meaningful when returned
// by a successful call to Parse.
type View struct {
	buf []byte

	schemeEnd     int // offset of the ':' ending the scheme, or noPos.
	host          hostBounds
	hasHost       bool
	pathStart     int
	pathEnd       int
	queryEnd      int // one past the query, or noPos.
	fragmentStart int // first byte of the fragment, or noPos.
}

// Parse parses buf as a URI reference (RFC 3986 §4.1): either an absolute
// URI with a scheme or a relative reference. It does not allocate when
// parsing succeeds. The returned View refers to buf.
//
// Errors are of type *ParseError.
func Parse(buf []byte) (View, error) {
	p := parser{
		scan: scanner{input: buf},
		out: View{
			buf:           buf,
			schemeEnd:     noPos,
			queryEnd:      noPos,
			fragmentStart: noPos,
		},
	}
	if err := p.parse(); err != nil {
		return View{}, err
	}
	return p.out, nil
}

func (v *View) slice(start, end int) []byte {
	return v.buf[start:end:end]
}

// Len returns the length of the parsed input.
func (v View) Len() int {
	return len(v.buf)
}

// Bytes returns the parsed input.
func (v View) Bytes() []byte {
	return v.slice(0, len(v.buf))
}

// String returns a copy of the parsed input.
func (v View) String() string {
	return string(v.buf)
}

// Scheme returns the scheme, if the URI has one.
func (v View) Scheme() (Scheme, bool) {
	if !valid(v.schemeEnd) {
		return Scheme{}, false
	}
	return Scheme{raw: v.slice(0, v.schemeEnd)}, true
}

// Authority returns the authority, if the URI has one. A URI such as
// "file:///etc" has an authority whose host is empty.
func (v View) Authority() (Authority, bool) {
	if !v.hasHost {
		return Authority{}, false
	}
	return Authority{uri: v}, true
}

// Path returns the path. Every URI has a path, though it may be empty.
func (v View) Path() Path {
	return Path{raw: v.slice(v.pathStart, v.pathEnd)}
}

// Query returns the query without the leading '?', if present.
func (v View) Query() ([]byte, bool) {
	if !valid(v.queryEnd) {
		return nil, false
	}
	return v.slice(v.pathEnd+1, v.queryEnd), true
}

// Fragment returns the fragment without the leading '#', if present.
func (v View) Fragment() ([]byte, bool) {
	if !valid(v.fragmentStart) {
		return nil, false
	}
	return v.slice(v.fragmentStart, len(v.buf)), true
}

// authorityStart is the offset just after "//".
func (v *View) authorityStart() int {
	if valid(v.schemeEnd) {
		return v.schemeEnd + 3
	}
	return 2
}
