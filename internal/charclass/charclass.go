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

// Package charclass holds byte classification tables for the RFC 3986
// grammar productions.
//
// A Table maps every byte to a small mask. Tables are composed with Union
// and Shift, which lets one table carry more than one signal: the low bit
// of Userinfo.Shift(1).Union(&colon) marks a colon while the next bit marks
// any userinfo byte.
//
// Only ASCII bytes are ever members. Bytes 0x80 and above look up as 0 in
// every table.
package charclass

// Table is a byte classification table. The zero value has no members.
type Table struct {
	masks          [256]uint8
	allowsEncoding bool
}

// Generate returns a table with mask 1 for every byte in set. Non-ASCII
// bytes are ignored.
func Generate(set string) Table {
	var t Table
	for i := 0; i < len(set); i++ {
		if c := set[i]; c < 0x80 {
			t.masks[c] = 1
		}
	}
	return t
}

// Encoded returns a copy of t that permits percent-encoded octets.
func (t Table) Encoded() Table {
	t.allowsEncoding = true
	return t
}

// Shift returns a copy of t with every mask shifted left by n bits.
func (t Table) Shift(n uint) Table {
	for i := 0; i < 0x80; i++ {
		t.masks[i] <<= n
	}
	return t
}

// Union returns a copy of t with the masks and encoding flag of other
// OR'ed in.
func (t Table) Union(other *Table) Table {
	for i := 0; i < 0x80; i++ {
		t.masks[i] |= other.masks[i]
	}
	t.allowsEncoding = t.allowsEncoding || other.allowsEncoding
	return t
}

// Lookup returns the raw mask for c.
func (t *Table) Lookup(c byte) uint8 {
	return t.masks[c]
}

// Contains reports whether c is a member of t.
func (t *Table) Contains(c byte) bool {
	return t.masks[c] != 0
}

// AllowsEncoding reports whether pct-encoded octets may appear where t
// applies.
func (t *Table) AllowsEncoding() bool {
	return t.allowsEncoding
}
