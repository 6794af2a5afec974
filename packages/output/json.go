package output

import (
	"encoding/json"
	"io"
	"os"

	"github.com/abdul-hamid-achik/requeasy/packages/http"
)

// JSONResponse is the JSON form of a response
type JSONResponse struct {
	StatusLine string            `json:"statusLine"`
	Headers    map[string]string `json:"headers"`
	Body       string            `json:"body"`
}

// JSONError is written in place of a response when the request fails
type JSONError struct {
	Error string `json:"error"`
}

// JSONFormatter formats responses as JSON
type JSONFormatter struct {
	writer io.Writer
}

type JSONOption func(*JSONFormatter)

func NewJSONFormatter(opts ...JSONOption) *JSONFormatter {
	f := &JSONFormatter{
		writer: os.Stdout,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func JSONWithWriter(w io.Writer) JSONOption {
	return func(f *JSONFormatter) {
		f.writer = w
	}
}

func (f *JSONFormatter) FormatResponse(resp *http.Response) error {
	headers := resp.Headers
	if headers == nil {
		headers = map[string]string{}
	}
	return f.encode(JSONResponse{
		StatusLine: resp.StatusLine,
		Headers:    headers,
		Body:       resp.Body,
	})
}

func (f *JSONFormatter) FormatError(err error) {
	_ = f.encode(JSONError{Error: err.Error()})
}

func (f *JSONFormatter) encode(v any) error {
	encoder := json.NewEncoder(f.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}
