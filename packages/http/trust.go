package http

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"os"
	"sync"

	"github.com/certifi/gocertifi"
)

// TLSConfigProvider supplies the client TLS configuration for a server
// name. Swapping the provider changes the trust policy without touching
// request or response handling.
type TLSConfigProvider interface {
	TLSConfig(serverName string) (*tls.Config, error)
}

func newTLSConfig(serverName string, pool *x509.CertPool) *tls.Config {
	return &tls.Config{
		ServerName: serverName,
		RootCAs:    pool,
		MinVersion: tls.VersionTLS12,
	}
}

// EmbeddedRoots trusts the Mozilla CA bundle compiled into the binary.
type EmbeddedRoots struct {
	once sync.Once
	pool *x509.CertPool
	err  error
}

func (e *EmbeddedRoots) TLSConfig(serverName string) (*tls.Config, error) {
	e.once.Do(func() {
		e.pool, e.err = gocertifi.CACerts()
	})
	if e.err != nil {
		return nil, fmt.Errorf("loading embedded roots: %w", e.err)
	}
	return newTLSConfig(serverName, e.pool), nil
}

// SystemRoots trusts the operating system's certificate pool.
type SystemRoots struct{}

func (SystemRoots) TLSConfig(serverName string) (*tls.Config, error) {
	pool, err := x509.SystemCertPool()
	if err != nil {
		return nil, fmt.Errorf("loading system roots: %w", err)
	}
	return newTLSConfig(serverName, pool), nil
}

// PEMRoots trusts only the given certificate pool.
type PEMRoots struct {
	Pool *x509.CertPool
}

// NewPEMRoots builds a PEMRoots from PEM-encoded CA certificates.
func NewPEMRoots(pemCerts []byte) (*PEMRoots, error) {
	pool := x509.NewCertPool()
	if !pool.AppendCertsFromPEM(pemCerts) {
		return nil, fmt.Errorf("no certificates found in PEM data")
	}
	return &PEMRoots{Pool: pool}, nil
}

// PEMRootsFromFile reads a CA bundle from path.
func PEMRootsFromFile(path string) (*PEMRoots, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading CA file: %w", err)
	}
	return NewPEMRoots(data)
}

func (p *PEMRoots) TLSConfig(serverName string) (*tls.Config, error) {
	if p.Pool == nil {
		return nil, fmt.Errorf("PEMRoots has no certificate pool")
	}
	return newTLSConfig(serverName, p.Pool), nil
}
