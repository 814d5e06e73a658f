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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIPLiteral(t *testing.T) {
	t.Parallel()
	valid := []struct {
		host string
		kind HostKind
	}{
		{"[::]", IPv6},
		{"[::1]", IPv6},
		{"[1::]", IPv6},
		{"[1:2:3:4:5:6:7:8]", IPv6},
		{"[1:2:3:4:5:6:7::]", IPv6},
		{"[::2:3:4:5:6:7:8]", IPv6},
		{"[1:2:3::7:8]", IPv6},
		{"[ABCD:ef01::]", IPv6},
		{"[1:2:3:4:5:6:1.2.3.4]", IPv6},
		{"[::1.2.3.4]", IPv6},
		{"[::ffff:192.0.2.1]", IPv6},
		{"[1::5:1.2.3.4]", IPv6},
		{"[fe80::1%25eth0]", IPv6},
		{"[fe80::%25a%2Fb]", IPv6},
		{"[v1.x]", IPvFuture},
		{"[VF0.a:b:c]", IPvFuture},
	}
	for _, testCase := range valid {
		view, err := Parse([]byte("x://" + testCase.host + ":1/"))
		require.NoError(t, err, testCase.host)
		auth, ok := view.Authority()
		require.True(t, ok, testCase.host)
		assert.Equal(t, testCase.host, string(auth.Host()))
		assert.Equal(t, testCase.kind, auth.HostKind(), testCase.host)
		port, ok := auth.Port()
		assert.True(t, ok)
		assert.Equal(t, "1", string(port))
	}

	invalid := []string{
		"[", "[:]", "[:1]", "[1:]", "[1:2:3:4:5:6:7]", "[1:2:3:4:5:6:7:8:9]",
		"[1:2:3:4:5:6:7:8::]", "[::1::]", "[12345::]", "[g::]", "[::1.2.3]",
		"[::1.2.3.4:1]", "[1:2:3:4:5:6:7:1.2.3.4]", "[::256.1.1.1]",
		"[fe80::1%]", "[fe80::1%25]", "[fe80::1%2]", "[v]", "[v1]",
		"[v1.]", "[vx.a]", "[::1", "[::1]]",
	}
	for _, host := range invalid {
		_, err := Parse([]byte("x://" + host + "/"))
		assert.ErrorIs(t, err, ErrInvalidHost, host)
	}
}
