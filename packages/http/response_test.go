package http

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResponse(t *testing.T) {
	resp, err := ParseResponse("HTTP/1.1 200 OK\r\nA: 1\r\nA: 2\r\nB: x\r\n\r\nhello")

	require.NoError(t, err)
	assert.Equal(t, map[string]string{"A": "2", "B": "x"}, resp.Headers)
	assert.Equal(t, "hello", resp.Body)
	assert.Equal(t, "HTTP/1.1 200 OK", resp.StatusLine)
	assert.NotContains(t, resp.Headers, "HTTP/1.1 200 OK")
}

func TestParseResponse_SplitsOnFirstSeparator(t *testing.T) {
	resp, err := ParseResponse("HTTP/1.1 200 OK\r\nContent-Type: text/plain\r\n\r\npart one\r\n\r\npart two")

	require.NoError(t, err)
	assert.Equal(t, "part one\r\n\r\npart two", resp.Body)
}

func TestParseResponse_ValueSplitsOnFirstColon(t *testing.T) {
	resp, err := ParseResponse("HTTP/1.1 301 Moved\r\nLocation:   https://example.com:8443/x  \r\n\r\n")

	require.NoError(t, err)
	assert.Equal(t, "https://example.com:8443/x", resp.Headers["Location"])
	assert.Empty(t, resp.Body)
}

func TestParseResponse_KeysKeepCase(t *testing.T) {
	resp, err := ParseResponse("HTTP/1.1 200 OK\r\ncontent-type: a\r\nContent-Type: b\r\n\r\n")

	require.NoError(t, err)
	assert.Len(t, resp.Headers, 2)
	assert.Equal(t, "a", resp.Headers["content-type"])
	assert.Equal(t, "b", resp.Headers["Content-Type"])
}

func TestParseResponse_StatusLineOnly(t *testing.T) {
	resp, err := ParseResponse("HTTP/1.1 204 No Content\r\n\r\n")

	require.NoError(t, err)
	assert.Empty(t, resp.Headers)
	assert.Empty(t, resp.Body)
}

func TestParseResponse_MissingSeparator(t *testing.T) {
	_, err := ParseResponse("HTTP/1.1 200 OK\r\nContent-Type: text/plain\r\nOK")

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNoHeaderTerminator))

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, KindFraming, pe.Kind)
}

func TestParseResponse_HeaderWithoutColon(t *testing.T) {
	_, err := ParseResponse("HTTP/1.1 200 OK\r\nbroken header\r\n\r\nbody")

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedHeader))

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, KindHeader, pe.Kind)
	assert.Equal(t, "broken header", pe.Input)
}

func TestResponse_Header(t *testing.T) {
	resp := &Response{Headers: map[string]string{"Content-Type": "application/json"}}

	assert.Equal(t, "application/json", resp.Header("content-type"))
	assert.Equal(t, "application/json", resp.ContentType())
	assert.Equal(t, "", resp.Header("X-Missing"))
}

func TestResponse_IsJSON(t *testing.T) {
	tests := []struct {
		contentType string
		expected    bool
	}{
		{"application/json", true},
		{"application/json; charset=utf-8", true},
		{"text/html", false},
		{"", false},
	}

	for _, tt := range tests {
		resp := &Response{Headers: map[string]string{"Content-Type": tt.contentType}}
		assert.Equal(t, tt.expected, resp.IsJSON(), "Content-Type: %s", tt.contentType)
	}
}

func TestResponse_BodyJSONAndQuery(t *testing.T) {
	resp := &Response{Body: `{"products":[{"id":1,"title":"phone"},{"id":2}]}`}

	v, err := resp.BodyJSON()
	require.NoError(t, err)
	assert.IsType(t, map[string]any{}, v)

	assert.Equal(t, "phone", resp.Query("products.0.title").String())
	assert.Equal(t, int64(2), resp.Query("products.#").Int())
	assert.False(t, resp.Query("missing").Exists())

	_, err = (&Response{Body: "not json"}).BodyJSON()
	assert.Error(t, err)
}
