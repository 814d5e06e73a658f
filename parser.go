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

package uri

import (
	"connectrpc.com/uri/internal/charclass"
)

var (
	colon = charclass.Generate(":")
	// authorityTable marks userinfo bytes with bit 1 and colons with bit 0,
	// so one pass over an authority validates it and counts its colons.
	authorityTable = charclass.Userinfo.Shift(1).Union(&colon)
)

// parser holds the state for the URI reference parser.
//
// The grammar, from RFC 3986 Appendix A:
//
//	URI-reference = URI / relative-ref
//	URI           = scheme ":" hier-part [ "?" query ] [ "#" fragment ]
//	relative-ref  = relative-part [ "?" query ] [ "#" fragment ]
//	hier-part     = "//" authority path-abempty
//	              / path-absolute / path-rootless / path-empty
//	relative-part = "//" authority path-abempty
//	              / path-absolute / path-noscheme / path-empty
//
// Components are parsed strictly left to right and never revisited.
type parser struct {
	scan scanner // scanner for the input.
	out  View    // offsets recorded so far.

	// schemeStop is where the scheme scan stopped. Used to blame the
	// scheme when a relative path turns out to contain a colon.
	schemeStop int
}

func (p *parser) errAt(kind ErrorKind, comp component, offset int) error {
	return newParseError(kind, comp, p.scan.input, offset)
}

func (p *parser) parse() error {
	p.scan.scan(&charclass.Scheme)
	p.schemeStop = p.scan.pos
	if next, ok := p.scan.peek(0); !ok || next != ':' {
		p.scan.pos = 0
		return p.parseRelativePart()
	}
	if p.scan.pos == 0 || !charclass.Alpha.Contains(p.scan.input[0]) {
		return p.errAt(InvalidScheme, componentScheme, 0)
	}
	p.out.schemeEnd = p.scan.pos
	p.scan.pos++ // ':'
	return p.parseHierPart()
}

func (p *parser) parseHierPart() error {
	if p.scan.readLiteral("//") {
		if err := p.parseAuthority(); err != nil {
			return err
		}
	}
	// Without an authority the path cannot begin with "//", since that
	// would have been read as one.
	p.out.pathStart = p.scan.pos
	return p.parsePath()
}

func (p *parser) parseRelativePart() error {
	if p.scan.readLiteral("//") {
		if err := p.parseAuthority(); err != nil {
			return err
		}
		p.out.pathStart = p.scan.pos
		return p.parsePath()
	}
	p.out.pathStart = p.scan.pos
	if next, ok := p.scan.peek(0); ok && next != '/' {
		// path-noscheme: the first segment must not contain a colon, or it
		// would be a scheme.
		if err := p.scan.scanEscaped(&charclass.SegmentNC, componentPath, nil); err != nil {
			return err
		}
		if next, ok := p.scan.peek(0); ok && next == ':' {
			return p.errAt(InvalidScheme, componentScheme, p.schemeStop)
		}
	}
	return p.parsePath()
}

// parseAuthority parses the authority following "//" and leaves the
// scanner at the start of the path.
func (p *parser) parseAuthority() error {
	p.scan.setMark()
	colons, err := p.scan.countScan(&authorityTable, componentAuthority)
	if err != nil {
		return err
	}
	if p.scan.consume('@') {
		// Everything so far was userinfo, where colons are allowed.
		p.scan.setMark()
		colons, err = p.scan.countScan(&authorityTable, componentHost)
		if err != nil {
			return err
		}
	}
	if next, ok := p.scan.peek(0); ok && next == '[' && p.scan.marked() == 0 {
		if err := p.parseIPLiteral(); err != nil {
			return err
		}
		return p.endAuthority()
	}

	// A stray delimiter is reported before the port is examined.
	if err := p.endAuthority(); err != nil {
		return err
	}
	hostStart, hostEnd := p.scan.mark, p.scan.pos
	switch colons {
	case 0:
	case 1:
		hostEnd = p.indexColon(hostStart, p.scan.pos, 1)
		if err := p.checkPort(hostEnd+1, p.scan.pos); err != nil {
			return err
		}
	default:
		// A reg-name cannot contain a colon; only IP literals may.
		return p.errAt(InvalidHost, componentHost, p.indexColon(hostStart, p.scan.pos, 2))
	}
	kind := RegName
	if isIPv4(p.scan.input[hostStart:hostEnd]) {
		kind = IPv4
	}
	p.out.host = hostBounds{start: hostStart, end: hostEnd, kind: kind}
	p.out.hasHost = true
	return nil
}

// indexColon returns the offset of the nth colon in [start, end). The
// caller has already counted at least n colons there.
func (p *parser) indexColon(start, end, n int) int {
	for i := start; i < end; i++ {
		if p.scan.input[i] == ':' {
			if n--; n == 0 {
				return i
			}
		}
	}
	return end
}

// checkPort validates the port in [start, end).
//
//	port = *DIGIT
func (p *parser) checkPort(start, end int) error {
	for i := start; i < end; i++ {
		if !charclass.Digit.Contains(p.scan.input[i]) {
			return p.errAt(InvalidPort, componentPort, i)
		}
	}
	return nil
}

// endAuthority checks that the authority is followed by a path, query,
// fragment or the end of the input.
func (p *parser) endAuthority() error {
	next, ok := p.scan.peek(0)
	if !ok {
		return nil
	}
	switch next {
	case '/', '?', '#':
		return nil
	case '[', ']':
		return p.errAt(InvalidHost, componentHost, p.scan.pos)
	default:
		return p.errAt(UnexpectedCharacter, componentAuthority, p.scan.pos)
	}
}

func (p *parser) parsePath() error {
	if err := p.scan.scanEscaped(&charclass.Path, componentPath, nil); err != nil {
		return err
	}
	p.out.pathEnd = p.scan.pos
	comp := componentPath
	if p.scan.consume('?') {
		comp = componentQuery
		if err := p.scan.scanEscaped(&charclass.QueryFragment, comp, nil); err != nil {
			return err
		}
		p.out.queryEnd = p.scan.pos
	}
	if p.scan.consume('#') {
		comp = componentFragment
		p.out.fragmentStart = p.scan.pos
		if err := p.scan.scanEscaped(&charclass.QueryFragment, comp, nil); err != nil {
			return err
		}
	}
	if !p.scan.eof() {
		return p.errAt(UnexpectedCharacter, comp, p.scan.pos)
	}
	return nil
}
