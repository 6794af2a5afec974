package http

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecodeLossy(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		want string
	}{
		{"ascii", []byte("OK"), "OK"},
		{"valid multibyte", []byte("café ✓"), "café ✓"},
		{"invalid byte replaced", []byte("caf\xff!"), "caf�!"},
		{"each stray byte replaced", []byte("a\x80\x80b"), "a��b"},
		{"truncated sequence replaced once", []byte("x\xe2\x82y"), "x\ufffdy"},
		{"empty", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DecodeLossy(tt.in))
		})
	}
}
