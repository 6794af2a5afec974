package http

import (
	"net"
	"strings"
)

const (
	// PlainScheme is the only scheme sent without TLS
	PlainScheme = "http"
	// DefaultPort is used for PlainScheme URLs without an explicit port
	DefaultPort = "80"
	// TLSPort is used for every other scheme without an explicit port
	TLSPort = "443"
)

// ParsedURL is the result of splitting a request URL.
type ParsedURL struct {
	Scheme        string
	Host          string
	Path          string // without the leading slash
	SocketAddress string // always host:port
}

// Secure reports whether the connection must be wrapped in TLS.
func (u ParsedURL) Secure() bool {
	return u.Scheme != PlainScheme
}

// ParseURL splits rawURL of the form scheme://host[:port]/path.
func ParseURL(rawURL string) (ParsedURL, error) {
	scheme, rest, ok := strings.Cut(rawURL, "://")
	if !ok {
		return ParsedURL{}, &ParseError{Kind: KindURL, Input: rawURL, Err: ErrMissingScheme}
	}

	authority, path, ok := strings.Cut(rest, "/")
	if !ok {
		return ParsedURL{}, &ParseError{Kind: KindURL, Input: rawURL, Err: ErrMissingPath}
	}

	host, port := authority, ""
	if strings.Contains(authority, ":") {
		host, port, _ = strings.Cut(authority, ":")
		if port == "" {
			return ParsedURL{}, &ParseError{Kind: KindURL, Input: rawURL, Err: ErrInvalidPort}
		}
	} else if scheme == PlainScheme {
		port = DefaultPort
	} else {
		port = TLSPort
	}
	if host == "" {
		return ParsedURL{}, &ParseError{Kind: KindURL, Input: rawURL, Err: ErrMissingHost}
	}

	return ParsedURL{
		Scheme:        scheme,
		Host:          host,
		Path:          path,
		SocketAddress: net.JoinHostPort(host, port),
	}, nil
}
