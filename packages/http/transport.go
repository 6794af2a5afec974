package http

import (
	"context"
	"crypto/tls"
	"io"
	"net"
)

// Dialer opens the TCP connection. *net.Dialer satisfies it.
type Dialer interface {
	DialContext(ctx context.Context, network, address string) (net.Conn, error)
}

// Transport performs one blocking exchange per call: connect, optional TLS
// handshake, write the whole request, read until the peer closes.
type Transport struct {
	Dialer Dialer
	TLS    TLSConfigProvider
}

// RoundTrip writes payload to target and returns every byte the server sent
// before closing the stream. The connection is always closed on return.
func (t *Transport) RoundTrip(target ParsedURL, payload []byte) ([]byte, error) {
	conn, err := t.connect(target)
	if err != nil {
		return nil, err
	}
	defer conn.Close()

	// net.Conn.Write reports an error on any short write
	if _, err := conn.Write(payload); err != nil {
		return nil, &IOError{Op: OpWrite, Err: err}
	}

	raw, err := io.ReadAll(conn)
	if err != nil {
		return nil, &IOError{Op: OpRead, Err: err}
	}
	return raw, nil
}

func (t *Transport) connect(target ParsedURL) (net.Conn, error) {
	ctx := context.Background()

	dialer := t.Dialer
	if dialer == nil {
		dialer = &net.Dialer{}
	}

	conn, err := dialer.DialContext(ctx, "tcp", target.SocketAddress)
	if err != nil {
		return nil, &ConnectError{Addr: target.SocketAddress, Err: err}
	}
	if !target.Secure() {
		return conn, nil
	}

	provider := t.TLS
	if provider == nil {
		provider = defaultRoots
	}
	cfg, err := provider.TLSConfig(target.Host)
	if err != nil {
		conn.Close()
		return nil, &ConnectError{Addr: target.SocketAddress, TLS: true, Err: err}
	}

	tlsConn := tls.Client(conn, cfg)
	if err := tlsConn.HandshakeContext(ctx); err != nil {
		conn.Close()
		return nil, &ConnectError{Addr: target.SocketAddress, TLS: true, Err: err}
	}
	return tlsConn, nil
}
