package output

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdul-hamid-achik/requeasy/packages/http"
)

func sampleResponse() *http.Response {
	return &http.Response{
		StatusLine: "HTTP/1.1 200 OK",
		Headers: map[string]string{
			"Server":       "test",
			"Content-Type": "text/plain",
		},
		Body: "OK",
	}
}

func TestConsoleFormatter_BodyOnly(t *testing.T) {
	var buf bytes.Buffer
	f := NewConsoleFormatter(WithWriter(&buf), WithNoColor(true))

	require.NoError(t, f.FormatResponse(sampleResponse()))

	assert.Equal(t, "OK\n", buf.String())
}

func TestConsoleFormatter_IncludeHeaders(t *testing.T) {
	var buf bytes.Buffer
	f := NewConsoleFormatter(WithWriter(&buf), WithNoColor(true), WithIncludeHeaders(true))

	require.NoError(t, f.FormatResponse(sampleResponse()))

	assert.Equal(t, "HTTP/1.1 200 OK\nContent-Type: text/plain\nServer: test\n\nOK\n", buf.String())
}

func TestConsoleFormatter_BodyKeepsTrailingNewline(t *testing.T) {
	var buf bytes.Buffer
	f := NewConsoleFormatter(WithWriter(&buf), WithNoColor(true))

	require.NoError(t, f.FormatResponse(&http.Response{Body: "line\n"}))
	assert.Equal(t, "line\n", buf.String())

	buf.Reset()
	require.NoError(t, f.FormatResponse(&http.Response{}))
	assert.Empty(t, buf.String())
}

func TestConsoleFormatter_FormatError(t *testing.T) {
	var buf bytes.Buffer
	f := NewConsoleFormatter(WithWriter(&buf), WithNoColor(true))

	f.FormatError(errors.New("connect example.com:443: refused"))

	assert.Equal(t, "Error: connect example.com:443: refused\n", buf.String())
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := NewJSONFormatter(JSONWithWriter(&buf))

	require.NoError(t, f.FormatResponse(sampleResponse()))

	var got JSONResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "HTTP/1.1 200 OK", got.StatusLine)
	assert.Equal(t, "text/plain", got.Headers["Content-Type"])
	assert.Equal(t, "OK", got.Body)
}

func TestJSONFormatter_NilHeaders(t *testing.T) {
	var buf bytes.Buffer
	f := NewJSONFormatter(JSONWithWriter(&buf))

	require.NoError(t, f.FormatResponse(&http.Response{StatusLine: "HTTP/1.1 204 No Content"}))

	assert.Contains(t, buf.String(), `"headers": {}`)
}

func TestJSONFormatter_FormatError(t *testing.T) {
	var buf bytes.Buffer
	f := NewJSONFormatter(JSONWithWriter(&buf))

	f.FormatError(errors.New("boom"))

	assert.JSONEq(t, `{"error":"boom"}`, buf.String())
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer

	f, err := New("", Options{Writer: &buf})
	require.NoError(t, err)
	assert.IsType(t, &ConsoleFormatter{}, f)

	f, err = New(FormatJSON, Options{Writer: &buf})
	require.NoError(t, err)
	assert.IsType(t, &JSONFormatter{}, f)

	_, err = New("xml", Options{})
	assert.Error(t, err)
}
