package capture

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/abdul-hamid-achik/requeasy/packages/http"
)

func jsonResponse() *http.Response {
	return &http.Response{
		StatusLine: "HTTP/1.1 200 OK",
		Headers:    map[string]string{"Content-Type": "application/json", "X-Total": "2"},
		Body:       `{"products":[{"id":1,"title":"phone"},{"id":2,"title":"laptop"}],"total":2}`,
	}
}

func TestExtract(t *testing.T) {
	resp := jsonResponse()

	tests := []struct {
		query string
		want  any
		found bool
	}{
		{"body.total", float64(2), true},
		{"body.products.1.title", "laptop", true},
		{"body.products.#", float64(2), true},
		{"body.missing", nil, false},
		{"header.x-total", "2", true},
		{"header.X-Missing", nil, false},
		{"status", "HTTP/1.1 200 OK", true},
		{"cookie.session", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got, ok := Extract(resp, tt.query)
			assert.Equal(t, tt.found, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestExtract_WholeBody(t *testing.T) {
	v, ok := Extract(jsonResponse(), "body")
	assert.True(t, ok)
	assert.IsType(t, map[string]any{}, v)

	plain := &http.Response{Body: "OK"}
	v, ok = Extract(plain, "body")
	assert.True(t, ok)
	assert.Equal(t, "OK", v)

	_, ok = Extract(plain, "body.anything")
	assert.False(t, ok)
}

func TestExtractRaw(t *testing.T) {
	resp := jsonResponse()

	raw, ok := ExtractRaw(resp, "body.products.0")
	assert.True(t, ok)
	assert.Equal(t, `{"id":1,"title":"phone"}`, raw)

	raw, ok = ExtractRaw(resp, "body.products.0.title")
	assert.True(t, ok)
	assert.Equal(t, "phone", raw)

	raw, ok = ExtractRaw(resp, "body.total")
	assert.True(t, ok)
	assert.Equal(t, "2", raw)

	raw, ok = ExtractRaw(resp, "header.Content-Type")
	assert.True(t, ok)
	assert.Equal(t, "application/json", raw)

	raw, ok = ExtractRaw(resp, "body")
	assert.True(t, ok)
	assert.Equal(t, resp.Body, raw)

	_, ok = ExtractRaw(resp, "body.nope")
	assert.False(t, ok)
}
