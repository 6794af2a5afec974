package http

import (
	"encoding/json"
	"strings"

	"github.com/tidwall/gjson"
)

const headerTerminator = "\r\n\r\n"

// Response holds the parsed reply. Headers never contain the status line;
// the raw first line is kept in StatusLine without being interpreted.
type Response struct {
	StatusLine string
	Headers    map[string]string
	Body       string
}

// ParseResponse splits decoded response text into headers and body.
// Duplicate header keys keep the last value.
func ParseResponse(text string) (*Response, error) {
	head, body, ok := strings.Cut(text, headerTerminator)
	if !ok {
		return nil, &ParseError{Kind: KindFraming, Err: ErrNoHeaderTerminator}
	}

	lines := strings.Split(head, crlf)
	headers := make(map[string]string, len(lines)-1)
	for _, line := range lines[1:] {
		key, value, found := strings.Cut(line, ":")
		if !found {
			return nil, &ParseError{Kind: KindHeader, Input: line, Err: ErrMalformedHeader}
		}
		headers[key] = strings.TrimSpace(value)
	}

	return &Response{
		StatusLine: lines[0],
		Headers:    headers,
		Body:       body,
	}, nil
}

func (r *Response) BodyJSON() (any, error) {
	var result any
	if err := json.Unmarshal([]byte(r.Body), &result); err != nil {
		return nil, err
	}
	return result, nil
}

// Header looks up a header ignoring case.
func (r *Response) Header(key string) string {
	if v, ok := r.Headers[key]; ok {
		return v
	}
	for k, v := range r.Headers {
		if strings.EqualFold(k, key) {
			return v
		}
	}
	return ""
}

func (r *Response) ContentType() string {
	return r.Header("Content-Type")
}

func (r *Response) IsJSON() bool {
	return strings.Contains(r.ContentType(), "application/json")
}

// Query evaluates a gjson path against the body.
func (r *Response) Query(path string) gjson.Result {
	return gjson.Get(r.Body, path)
}
