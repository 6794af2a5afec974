// Package builtin provides the functions available inside {{...}}
// placeholders in URLs, bodies and header lines.
//
// Available functions:
//   - uuid(): Random UUID v4
//   - timestamp(), timestampMs(): Current Unix time in seconds or milliseconds
//   - now(): Current time in RFC 3339
//   - date(layout): Current UTC date, default 2006-01-02
//   - random(min, max): Random integer in range
//   - randomString(length): Random alphanumeric string
//   - base64(value), urlEncode(value), sha256(value): Encodings of value
package builtin
