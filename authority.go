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

// Authority is the authority component of a URI:
//
//	authority = [ userinfo "@" ] host [ ":" port ]
//
// Methods derive their results from the offsets recorded by Parse.
type Authority struct {
	uri View
}

// Bytes returns the whole authority, excluding the leading "//".
func (a Authority) Bytes() []byte {
	return a.uri.slice(a.uri.authorityStart(), a.uri.pathStart)
}

// String returns a copy of the whole authority.
func (a Authority) String() string {
	return string(a.Bytes())
}

// Userinfo returns the userinfo without the trailing '@', if present.
func (a Authority) Userinfo() ([]byte, bool) {
	start := a.uri.authorityStart()
	if start == a.uri.host.start {
		return nil, false
	}
	return a.uri.slice(start, a.uri.host.start-1), true
}

// Host returns the host as written. IP literals keep their brackets.
func (a Authority) Host() []byte {
	return a.uri.slice(a.uri.host.start, a.uri.host.end)
}

// HostKind returns the syntactic form of the host.
func (a Authority) HostKind() HostKind {
	return a.uri.host.kind
}

// Port returns the port without the leading ':', if present. The port may
// be empty, as in "http://example.com:/".
func (a Authority) Port() ([]byte, bool) {
	if a.uri.host.end == a.uri.pathStart {
		return nil, false
	}
	return a.uri.slice(a.uri.host.end+1, a.uri.pathStart), true
}
