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

package charclass

// Productions from RFC 3986 Appendix A and RFC 6874. The comments give the
// ABNF each table implements; pct-encoded is represented by the encoding
// flag rather than by membership of '%'.
var (
	// ALPHA = %x41-5A / %x61-7A
	Alpha = Generate("ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz")

	// DIGIT = %x30-39
	Digit = Generate("0123456789")

	// HEXDIG = DIGIT / "A" / "B" / "C" / "D" / "E" / "F"
	HexDig = Digit.Union(ptr(Generate("ABCDEFabcdef")))

	// gen-delims = ":" / "/" / "?" / "#" / "[" / "]" / "@"
	GenDelims = Generate(":/?#[]@")

	// sub-delims = "!" / "$" / "&" / "'" / "(" / ")"
	//            / "*" / "+" / "," / ";" / "="
	SubDelims = Generate("!$&'()*+,;=")

	// reserved = gen-delims / sub-delims
	Reserved = GenDelims.Union(&SubDelims)

	// unreserved = ALPHA / DIGIT / "-" / "." / "_" / "~"
	Unreserved = Alpha.Union(&Digit).Union(ptr(Generate("-._~")))

	// pchar = unreserved / pct-encoded / sub-delims / ":" / "@"
	PChar = Unreserved.Union(&SubDelims).Union(ptr(Generate(":@"))).Encoded()

	// segment-nz-nc = 1*( unreserved / pct-encoded / sub-delims / "@" )
	SegmentNC = Unreserved.Union(&SubDelims).Union(ptr(Generate("@"))).Encoded()

	// scheme = ALPHA *( ALPHA / DIGIT / "+" / "-" / "." )
	Scheme = Alpha.Union(&Digit).Union(ptr(Generate("+-.")))

	// userinfo = *( unreserved / pct-encoded / sub-delims / ":" )
	Userinfo = Unreserved.Union(&SubDelims).Union(ptr(Generate(":"))).Encoded()

	// IPvFuture = "v" 1*HEXDIG "." 1*( unreserved / sub-delims / ":" )
	IPvFuture = Unreserved.Union(&SubDelims).Union(ptr(Generate(":")))

	// reg-name = *( unreserved / pct-encoded / sub-delims )
	RegName = Unreserved.Union(&SubDelims).Encoded()

	// path = *( pchar / "/" )
	Path = PChar.Union(ptr(Generate("/")))

	// query = fragment = *( pchar / "/" / "?" )
	QueryFragment = PChar.Union(ptr(Generate("/?")))

	// ZoneID = 1*( unreserved / pct-encoded )
	ZoneID = Unreserved.Encoded()
)

func ptr(t Table) *Table { return &t }
