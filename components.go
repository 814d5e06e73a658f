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

import "strconv"

// Scheme is the scheme of a URI, e.g. "https".
type Scheme struct {
	raw []byte
}

// Bytes returns the scheme as a subslice of the parsed buffer.
func (s Scheme) Bytes() []byte { return s.raw }

// String returns a copy of the scheme.
func (s Scheme) String() string { return string(s.raw) }

// Path is the path of a URI, still percent-encoded.
type Path struct {
	raw []byte
}

// Bytes returns the path as a subslice of the parsed buffer.
func (p Path) Bytes() []byte { return p.raw }

// String returns a copy of the path.
func (p Path) String() string { return string(p.raw) }

// IsEmpty reports whether the path has no bytes.
func (p Path) IsEmpty() bool { return len(p.raw) == 0 }

// IsAbsolute reports whether the path begins with '/'.
func (p Path) IsAbsolute() bool { return len(p.raw) > 0 && p.raw[0] == '/' }

// HostKind is the syntactic form of a host.
type HostKind uint8

const (
	// RegName is a registered name such as a DNS name. An empty host is a
	// RegName.
	RegName HostKind = iota
	// IPv4 is a dotted-decimal IPv4 address.
	IPv4
	// IPv6 is a bracketed IPv6 address, optionally with a zone.
	IPv6
	// IPvFuture is a bracketed "v" literal for future address formats.
	IPvFuture
)

func (k HostKind) String() string {
	switch k {
	case RegName:
		return "reg-name"
	case IPv4:
		return "IPv4"
	case IPv6:
		return "IPv6"
	case IPvFuture:
		return "IPvFuture"
	default:
		return "HostKind(" + strconv.Itoa(int(k)) + ")"
	}
}
