package http

import (
	"golang.org/x/text/encoding/unicode"
)

// DecodeLossy converts raw response bytes to text. Each maximal invalid
// UTF-8 subsequence is replaced with one U+FFFD; decoding never fails.
func DecodeLossy(raw []byte) string {
	decoded, _ := unicode.UTF8.NewDecoder().Bytes(raw)
	return string(decoded)
}
