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
	"errors"
	"fmt"
	"testing"

	"connectrpc.com/connect"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/testing/protocmp"
)

func TestParseErrorGRPCStatus(t *testing.T) {
	t.Parallel()
	_, err := Parse([]byte("http://host:abc/"))
	require.Error(t, err)

	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.InvalidArgument, st.Code())
	assert.Equal(t, "uri: invalid port at offset 12: unexpected 'a'", st.Message())

	details := st.Details()
	require.Len(t, details, 1)
	want := &errdetails.BadRequest{
		FieldViolations: []*errdetails.BadRequest_FieldViolation{{
			Field:       "port",
			Description: "uri: invalid port at offset 12: unexpected 'a'",
		}},
	}
	if diff := cmp.Diff(want, details[0], protocmp.Transform()); diff != "" {
		t.Errorf("detail mismatch (-want +got):\n%s", diff)
	}
}

func TestAsConnectError(t *testing.T) {
	t.Parallel()
	t.Run("parse error", func(t *testing.T) {
		t.Parallel()
		_, err := Parse([]byte("http://host:1:2/"))
		require.Error(t, err)
		ce := AsConnectError(fmt.Errorf("resolving target: %w", err))
		assert.Equal(t, connect.CodeInvalidArgument, ce.Code())
		assert.ErrorIs(t, ce, ErrInvalidHost)
		require.Len(t, ce.Details(), 1)
		msg, err := ce.Details()[0].Value()
		require.NoError(t, err)
		badRequest, ok := msg.(*errdetails.BadRequest)
		require.True(t, ok)
		require.Len(t, badRequest.GetFieldViolations(), 1)
		assert.Equal(t, "host", badRequest.GetFieldViolations()[0].GetField())
	})
	t.Run("connect error", func(t *testing.T) {
		t.Parallel()
		cerr := connect.NewError(connect.CodeUnavailable, errors.New("try later"))
		assert.Same(t, cerr, AsConnectError(cerr))
	})
	t.Run("other error", func(t *testing.T) {
		t.Parallel()
		assert.Equal(t, connect.CodeInternal, AsConnectError(errors.New("boom")).Code())
	})
}
