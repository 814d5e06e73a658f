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
	"strconv"

	"connectrpc.com/connect"
	"google.golang.org/genproto/googleapis/rpc/errdetails"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// ErrorKind classifies a ParseError.
type ErrorKind uint8

const (
	// InvalidScheme is a scheme that is empty, starts with a non-letter, or
	// a scheme-less path whose first segment contains a colon.
	InvalidScheme ErrorKind = iota + 1
	// InvalidPercentEncoding is a '%' not followed by two hex digits, or a
	// '%' where escapes are not allowed.
	InvalidPercentEncoding
	// InvalidPort is a port containing a non-digit.
	InvalidPort
	// InvalidHost is a malformed IP literal or a reg-name with a colon.
	InvalidHost
	// UnexpectedCharacter is a byte no rule accepts at its position.
	UnexpectedCharacter
)

// Sentinels matched by errors.Is against a *ParseError of the same kind.
var (
	// ErrInvalidScheme matches InvalidScheme.
	ErrInvalidScheme = errors.New("invalid scheme")
	// ErrInvalidPercentEncoding matches InvalidPercentEncoding.
	ErrInvalidPercentEncoding = errors.New("invalid percent-encoding")
	// ErrInvalidPort matches InvalidPort.
	ErrInvalidPort = errors.New("invalid port")
	// ErrInvalidHost matches InvalidHost.
	ErrInvalidHost = errors.New("invalid host")
	// ErrUnexpectedCharacter matches UnexpectedCharacter.
	ErrUnexpectedCharacter = errors.New("unexpected character")
)

func (k ErrorKind) sentinel() error {
	switch k {
	case InvalidScheme:
		return ErrInvalidScheme
	case InvalidPercentEncoding:
		return ErrInvalidPercentEncoding
	case InvalidPort:
		return ErrInvalidPort
	case InvalidHost:
		return ErrInvalidHost
	case UnexpectedCharacter:
		return ErrUnexpectedCharacter
	default:
		return nil
	}
}

func (k ErrorKind) String() string {
	if err := k.sentinel(); err != nil {
		return err.Error()
	}
	return "ErrorKind(" + strconv.Itoa(int(k)) + ")"
}

// component names the part of the URI being parsed when an error occurs.
type component uint8

const (
	componentScheme component = iota
	componentAuthority
	componentHost
	componentPort
	componentPath
	componentQuery
	componentFragment
)

var componentNames = [...]string{
	componentScheme:    "scheme",
	componentAuthority: "authority",
	componentHost:      "host",
	componentPort:      "port",
	componentPath:      "path",
	componentQuery:     "query",
	componentFragment:  "fragment",
}

func (c component) String() string {
	if int(c) < len(componentNames) {
		return componentNames[c]
	}
	return "component(" + strconv.Itoa(int(c)) + ")"
}

// ParseError reports a grammar violation found by Parse. Offset is the
// byte position in the input where the violation was detected.
//
// Use errors.Is with the Err* sentinels to test the kind.
type ParseError struct {
	Kind   ErrorKind
	Offset int

	component component
	char      byte
	eof       bool
}

func newParseError(kind ErrorKind, comp component, input []byte, offset int) *ParseError {
	err := &ParseError{Kind: kind, Offset: offset, component: comp}
	if offset < len(input) {
		err.char = input[offset]
	} else {
		err.eof = true
	}
	return err
}

// Component returns the name of the URI component that failed to parse:
// one of scheme, authority, host, port, path, query or fragment.
func (e *ParseError) Component() string {
	return e.component.String()
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("uri: %v at offset %d: unexpected %s", e.Kind, e.Offset, e.found())
}

func (e *ParseError) Unwrap() error {
	return e.Kind.sentinel()
}

func (e *ParseError) found() string {
	switch {
	case e.eof:
		return "EOF"
	case e.char < 0x80:
		return strconv.QuoteRune(rune(e.char))
	default:
		return fmt.Sprintf("byte %#02x", e.char)
	}
}

func (e *ParseError) badRequest() *errdetails.BadRequest {
	return &errdetails.BadRequest{
		FieldViolations: []*errdetails.BadRequest_FieldViolation{{
			Field:       e.Component(),
			Description: e.Error(),
		}},
	}
}

// GRPCStatus implements the interface used by the grpc status package, so
// a *ParseError returned from a gRPC handler is reported as
// InvalidArgument with a google.rpc.BadRequest detail.
func (e *ParseError) GRPCStatus() *status.Status {
	st := status.New(codes.InvalidArgument, e.Error())
	withDetails, err := st.WithDetails(e.badRequest())
	if err != nil {
		return st
	}
	return withDetails
}

// AsConnectError converts err into a *connect.Error. Parse errors become
// CodeInvalidArgument with a google.rpc.BadRequest detail, existing
// *connect.Error values are returned unchanged and anything else is
// CodeInternal.
func AsConnectError(err error) *connect.Error {
	var ce *connect.Error
	if errors.As(err, &ce) {
		return ce
	}
	var pe *ParseError
	if !errors.As(err, &pe) {
		return connect.NewError(connect.CodeInternal, err)
	}
	ce = connect.NewError(connect.CodeInvalidArgument, err)
	if detail, detailErr := connect.NewErrorDetail(pe.badRequest()); detailErr == nil {
		ce.AddDetail(detail)
	}
	return ce
}
