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

// scanner holds the state of the scanner.
type scanner struct {
	input []byte // the bytes being scanned.
	pos   int    // current position in the input.
	mark  int    // saved position, see setMark.
}

// scan advances past every byte that is a member of table and reports
// whether anything was consumed.
func (s *scanner) scan(table *charclass.Table) bool {
	start := s.pos
	for s.pos < len(s.input) && table.Contains(s.input[s.pos]) {
		s.pos++
	}
	return s.pos != start
}

// scanEscaped is like scan but also consumes pct-encoded triplets. The
// observe callback, if non-nil, is passed the mask of each consumed byte
// that is not part of a triplet.
//
// A '%' is an error when the table does not allow percent-encoding or when
// it is not followed by two hex digits. The returned error's offset is that
// of the '%'.
func (s *scanner) scanEscaped(table *charclass.Table, comp component, observe func(mask uint8)) error {
	for s.pos < len(s.input) {
		char := s.input[s.pos]
		if char == '%' {
			if !table.AllowsEncoding() || !s.isHexDig(s.pos+1) || !s.isHexDig(s.pos+2) {
				return newParseError(InvalidPercentEncoding, comp, s.input, s.pos)
			}
			s.pos += 3
			continue
		}
		mask := table.Lookup(char)
		if mask == 0 {
			break
		}
		if observe != nil {
			observe(mask)
		}
		s.pos++
	}
	return nil
}

// countScan is scanEscaped for tables that carry a secondary signal in
// their low bit. It returns the number of consumed bytes with that bit set.
func (s *scanner) countScan(table *charclass.Table, comp component) (int, error) {
	var count int
	err := s.scanEscaped(table, comp, func(mask uint8) {
		count += int(mask & 1)
	})
	return count, err
}

func (s *scanner) isHexDig(i int) bool {
	return i < len(s.input) && charclass.HexDig.Contains(s.input[i])
}

// readLiteral consumes lit if the remaining input starts with it.
func (s *scanner) readLiteral(lit string) bool {
	if len(s.input)-s.pos < len(lit) {
		return false
	}
	for i := 0; i < len(lit); i++ {
		if s.input[s.pos+i] != lit[i] {
			return false
		}
	}
	s.pos += len(lit)
	return true
}

// consume advances past char if it is the next byte.
func (s *scanner) consume(char byte) bool {
	if next, ok := s.peek(0); ok && next == char {
		s.pos++
		return true
	}
	return false
}

// peek returns the byte at pos+off, if it is in range.
func (s *scanner) peek(off int) (byte, bool) {
	if i := s.pos + off; i >= 0 && i < len(s.input) {
		return s.input[i], true
	}
	return 0, false
}

func (s *scanner) eof() bool {
	return s.pos >= len(s.input)
}

func (s *scanner) setMark() {
	s.mark = s.pos
}

// marked returns the number of bytes consumed since the last setMark.
func (s *scanner) marked() int {
	return s.pos - s.mark
}
