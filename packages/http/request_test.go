package http

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

const fixedHeaders = "Host: example.com\r\n" +
	"Accept: */*\r\n" +
	"Accept-Language: en-US,en;q=0.5\r\n" +
	"Connection: close\r\n" +
	"Accept-Charset: UTF-8, ISO-8859-1;q=0.8\r\n" +
	"Content-Type: application/json; charset=UTF-8\r\n"

func strPtr(s string) *string {
	return &s
}

func TestBuildRequest_Get(t *testing.T) {
	got := BuildRequest("example.com", "resource", nil, "", nil)

	want := "GET /resource HTTP/1.1\r\n" + fixedHeaders + "\r\n"
	assert.Equal(t, want, got)
	assert.True(t, strings.HasSuffix(got, "\r\n\r\n"))
	assert.False(t, strings.HasSuffix(got, "\r\n\r\n\r\n"))
}

func TestBuildRequest_GetIgnoresBodyAndHeaders(t *testing.T) {
	got := BuildRequest("example.com", "resource", strPtr("ignored"), "GET", []string{"X-Skip: 1"})

	assert.NotContains(t, got, "ignored")
	assert.NotContains(t, got, "X-Skip")
	assert.NotContains(t, got, "Content-Length")
}

func TestBuildRequest_PostWithBody(t *testing.T) {
	body := `{"a":1}`
	got := BuildRequest("example.com", "items", &body, "POST", nil)

	want := "POST /items HTTP/1.1\r\n" + fixedHeaders +
		"Content-Type: application/json\r\n" +
		"Content-Length: 7\r\n" +
		"\r\n" +
		body + "\r\n" +
		"\r\n"
	assert.Equal(t, want, got)
}

func TestBuildRequest_ContentLengthCountsBytes(t *testing.T) {
	body := `{"name":"café"}`
	got := BuildRequest("example.com", "items", &body, "PUT", nil)

	assert.Contains(t, got, "Content-Length: 16\r\n\r\n"+body+"\r\n")
}

func TestBuildRequest_PostWithHeadersReplacesDefaultContentType(t *testing.T) {
	body := "x=1"
	got := BuildRequest("example.com", "form", &body, "POST", []string{
		"Content-Type: application/x-www-form-urlencoded",
		"X-Trace: abc\r\n",
	})

	assert.NotContains(t, got, "\r\nContent-Type: application/json\r\n")
	assert.Contains(t, got, "Content-Type: application/x-www-form-urlencoded\r\nX-Trace: abc\r\nContent-Length: 3\r\n\r\nx=1\r\n\r\n")
}

func TestBuildRequest_HeaderLineEndingsNormalised(t *testing.T) {
	got := BuildRequest("example.com", "items", nil, "PUT", []string{"X-A: 1\r\n", "X-B: 2\n", "X-C: 3"})

	want := "PUT /items HTTP/1.1\r\n" + fixedHeaders + "X-A: 1\r\nX-B: 2\r\nX-C: 3\r\n" + "\r\n"
	assert.Equal(t, want, got)
}

func TestBuildRequest_PostWithoutBody(t *testing.T) {
	got := BuildRequest("example.com", "items", nil, "POST", nil)

	want := "POST /items HTTP/1.1\r\n" + fixedHeaders + "Content-Type: application/json\r\n" + "\r\n"
	assert.Equal(t, want, got)
}

func TestBuildRequest_EmptyBody(t *testing.T) {
	got := BuildRequest("example.com", "items", strPtr(""), "PUT", nil)

	assert.True(t, strings.HasSuffix(got, "Content-Length: 0\r\n\r\n\r\n\r\n"))
}

func TestBuildRequest_OtherMethods(t *testing.T) {
	got := BuildRequest("example.com", "items/1", strPtr("{}"), "DELETE", []string{"X-A: b"})

	assert.True(t, strings.HasPrefix(got, "DELETE /items/1 HTTP/1.1\r\n"))
	assert.Equal(t, "DELETE /items/1 HTTP/1.1\r\n"+fixedHeaders+"\r\n", got)
}

func TestRequest_Builders(t *testing.T) {
	req := NewRequest("POST", "http://example.com/items").
		SetBody("{}").
		AddHeader("X-A: 1").
		AddHeader("X-B: 2")

	assert.Equal(t, "POST", req.Method)
	assert.Equal(t, "{}", *req.Body)
	assert.Equal(t, []string{"X-A: 1", "X-B: 2"}, req.Headers)
}
