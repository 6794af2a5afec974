// Package http is a minimal synchronous HTTP/1.1 client built directly on
// TCP sockets.
//
// Each call:
//   - parses a scheme://host[:port]/path URL, defaulting the port per scheme
//   - formats the request by hand with Connection: close
//   - dials TCP, wrapping the connection in TLS for every scheme but http
//   - reads until the server closes and decodes the bytes lossily
//   - splits the reply into a header map and a body string
//
// There is no pooling, redirect handling, chunked decoding, compression,
// timeout or retry. Errors are typed (ParseError, ConnectError, IOError)
// so callers can choose their own retry policy.
package http
