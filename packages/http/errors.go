package http

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingScheme is returned when a URL has no "://" separator
	ErrMissingScheme = errors.New("missing scheme separator \"://\"")
	// ErrMissingHost is returned when the authority names no host
	ErrMissingHost = errors.New("missing host")
	// ErrMissingPath is returned when no "/" follows the authority
	ErrMissingPath = errors.New("missing path after host")
	// ErrInvalidPort is returned when a "host:" segment carries no port
	ErrInvalidPort = errors.New("invalid host:port")
	// ErrNoHeaderTerminator is returned when a response has no blank line
	ErrNoHeaderTerminator = errors.New("no blank line between headers and body")
	// ErrMalformedHeader is returned when a header line has no colon
	ErrMalformedHeader = errors.New("header line has no colon")
)

// ParseKind identifies which input failed to parse.
type ParseKind string

const (
	KindURL     ParseKind = "url"
	KindFraming ParseKind = "framing"
	KindHeader  ParseKind = "header"
)

// ParseError reports malformed input: a bad URL, a response without a
// header terminator, or a header line without a colon.
type ParseError struct {
	Kind  ParseKind
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	if e.Input == "" {
		return fmt.Sprintf("parse %s: %v", e.Kind, e.Err)
	}
	return fmt.Sprintf("parse %s %q: %v", e.Kind, e.Input, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ConnectError reports a DNS, TCP connect or TLS handshake failure.
type ConnectError struct {
	Addr string
	TLS  bool
	Err  error
}

func (e *ConnectError) Error() string {
	if e.TLS {
		return fmt.Sprintf("tls handshake with %s: %v", e.Addr, e.Err)
	}
	return fmt.Sprintf("connect %s: %v", e.Addr, e.Err)
}

func (e *ConnectError) Unwrap() error {
	return e.Err
}

// IOOp names the stream operation that failed.
type IOOp string

const (
	OpWrite IOOp = "write"
	OpRead  IOOp = "read"
)

// IOError reports a failure while writing the request or reading the
// response. No partial response is returned alongside it.
type IOError struct {
	Op  IOOp
	Err error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// IsParseError reports whether err was caused by malformed input.
func IsParseError(err error) bool {
	var pe *ParseError
	return errors.As(err, &pe)
}

// IsConnectError reports whether err happened while establishing the connection.
func IsConnectError(err error) bool {
	var ce *ConnectError
	return errors.As(err, &ce)
}

// IsIOError reports whether err happened while writing or reading the stream.
func IsIOError(err error) bool {
	var ie *IOError
	return errors.As(err, &ie)
}
