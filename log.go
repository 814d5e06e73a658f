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
	"github.com/rs/zerolog"
)

var (
	_ zerolog.LogObjectMarshaler = View{}
	_ zerolog.LogObjectMarshaler = (*ParseError)(nil)
)

// MarshalZerologObject writes the present components of the URI as fields
// of a zerolog event, without copying them:
//
//	logger.Info().Object("uri", view).Msg("request")
func (v View) MarshalZerologObject(event *zerolog.Event) {
	if scheme, ok := v.Scheme(); ok {
		event.Bytes("scheme", scheme.Bytes())
	}
	if auth, ok := v.Authority(); ok {
		// Userinfo may hold credentials and is never logged.
		if _, ok := auth.Userinfo(); ok {
			event.Bool("userinfo", true)
		}
		event.Bytes("host", auth.Host())
		event.Stringer("host_kind", auth.HostKind())
		if port, ok := auth.Port(); ok {
			event.Bytes("port", port)
		}
	}
	event.Bytes("path", v.Path().Bytes())
	if query, ok := v.Query(); ok {
		event.Bytes("query", query)
	}
	if fragment, ok := v.Fragment(); ok {
		event.Bytes("fragment", fragment)
	}
}

// MarshalZerologObject writes the error kind, offset and component.
func (e *ParseError) MarshalZerologObject(event *zerolog.Event) {
	event.Stringer("kind", e.Kind).
		Int("offset", e.Offset).
		Str("component", e.Component()).
		Str("found", e.found())
}
