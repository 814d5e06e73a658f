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

// IP literals, from RFC 3986 §3.2.2 and RFC 6874:
//
//	IP-literal  = "[" ( IPv6address / IPv6addrz / IPvFuture ) "]"
//	IPv6addrz   = IPv6address "%25" ZoneID
//	IPvFuture   = "v" 1*HEXDIG "." 1*( unreserved / sub-delims / ":" )
//	h16         = 1*4HEXDIG
//	ls32        = ( h16 ":" h16 ) / IPv4address
//	IPv4address = dec-octet "." dec-octet "." dec-octet "." dec-octet

// parseIPLiteral parses a bracketed host, records it and parses the
// optional port after it. The scanner is at the '['.
func (p *parser) parseIPLiteral() error {
	start := p.scan.pos
	p.scan.pos++ // '['
	kind := IPv6
	if next, ok := p.scan.peek(0); ok && (next == 'v' || next == 'V') {
		kind = IPvFuture
		if err := p.parseIPvFuture(); err != nil {
			return err
		}
	} else if err := p.parseIPv6(); err != nil {
		return err
	}
	if !p.scan.consume(']') {
		return p.errAt(InvalidHost, componentHost, p.scan.pos)
	}
	p.out.host = hostBounds{start: start, end: p.scan.pos, kind: kind}
	p.out.hasHost = true

	if !p.scan.consume(':') {
		return nil
	}
	portStart := p.scan.pos
	if _, err := p.scan.countScan(&authorityTable, componentPort); err != nil {
		return err
	}
	if err := p.endAuthority(); err != nil {
		return err
	}
	return p.checkPort(portStart, p.scan.pos)
}

func (p *parser) parseIPvFuture() error {
	p.scan.pos++ // 'v'
	if !p.scan.scan(&charclass.HexDig) || !p.scan.consume('.') {
		return p.errAt(InvalidHost, componentHost, p.scan.pos)
	}
	start := p.scan.pos
	// The table does not allow percent-encoding, so a '%' is an error.
	if err := p.scan.scanEscaped(&charclass.IPvFuture, componentHost, nil); err != nil {
		return err
	}
	if p.scan.pos == start {
		return p.errAt(InvalidHost, componentHost, p.scan.pos)
	}
	return nil
}

// parseIPv6 parses an IPv6 address with an optional zone, stopping before
// the closing bracket.
func (p *parser) parseIPv6() error {
	s := &p.scan
	var (
		pieces int  // 16-bit pieces seen, an IPv4 tail counts for two.
		elided bool // seen "::".
	)
	// canEnd is set when the address may end here, which is only the case
	// right after "::".
	canEnd := s.readLiteral("::")
	elided = canEnd
	for {
		next, ok := s.peek(0)
		if !ok {
			return p.errAt(InvalidHost, componentHost, s.pos)
		}
		if canEnd && (next == ']' || next == '%') {
			break
		}
		pieceStart := s.pos
		for s.pos-pieceStart < 4 && s.isHexDig(s.pos) {
			s.pos++
		}
		if s.pos == pieceStart {
			return p.errAt(InvalidHost, componentHost, s.pos)
		}
		if next, ok := s.peek(0); ok && next == '.' {
			s.pos = pieceStart
			if !s.scanIPv4() {
				return p.errAt(InvalidHost, componentHost, s.pos)
			}
			pieces += 2
			break
		}
		pieces++
		if s.readLiteral("::") {
			if elided {
				return p.errAt(InvalidHost, componentHost, s.pos-2)
			}
			elided, canEnd = true, true
			continue
		}
		if !s.consume(':') {
			break
		}
		canEnd = false
	}
	if (elided && pieces > 7) || (!elided && pieces != 8) {
		return p.errAt(InvalidHost, componentHost, s.pos)
	}
	return p.parseZone()
}

// parseZone parses an optional "%25" ZoneID suffix.
func (p *parser) parseZone() error {
	if next, ok := p.scan.peek(0); !ok || next != '%' {
		return nil
	}
	if !p.scan.readLiteral("%25") {
		return p.errAt(InvalidHost, componentHost, p.scan.pos)
	}
	start := p.scan.pos
	if err := p.scan.scanEscaped(&charclass.ZoneID, componentHost, nil); err != nil {
		return err
	}
	if p.scan.pos == start {
		return p.errAt(InvalidHost, componentHost, p.scan.pos)
	}
	return nil
}

// isIPv4 reports whether host is exactly an IPv4address.
func isIPv4(host []byte) bool {
	s := scanner{input: host}
	return s.scanIPv4() && s.eof()
}

func (s *scanner) scanIPv4() bool {
	for i := 0; i < 4; i++ {
		if i > 0 && !s.consume('.') {
			return false
		}
		if !s.scanDecOctet() {
			return false
		}
	}
	return true
}

// scanDecOctet consumes a decimal octet without leading zeros.
//
//	dec-octet = DIGIT / %x31-39 DIGIT / "1" 2DIGIT
//	          / "2" %x30-34 DIGIT / "25" %x30-35
func (s *scanner) scanDecOctet() bool {
	start := s.pos
	value := 0
	for s.pos-start < 3 && s.pos < len(s.input) && charclass.Digit.Contains(s.input[s.pos]) {
		value = value*10 + int(s.input[s.pos]-'0')
		s.pos++
	}
	switch n := s.pos - start; {
	case n == 0:
		return false
	case n > 1 && s.input[start] == '0':
		return false
	default:
		return value <= 255
	}
}
