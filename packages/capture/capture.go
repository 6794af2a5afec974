package capture

import (
	"strings"

	"github.com/tidwall/gjson"

	"github.com/abdul-hamid-achik/requeasy/packages/http"
)

// Extractor pulls values out of a response using query expressions:
//
//	body             the whole body (decoded JSON when it parses)
//	body.<path>      a gjson path into a JSON body
//	header.<Name>    a header value, case-insensitive
//	status           the raw status line
type Extractor struct {
	response *http.Response
	bodyJSON gjson.Result
}

func NewExtractor(resp *http.Response) *Extractor {
	e := &Extractor{response: resp}
	if gjson.Valid(resp.Body) {
		e.bodyJSON = gjson.Parse(resp.Body)
	}
	return e
}

func (e *Extractor) Extract(query string) (any, bool) {
	source, path, _ := strings.Cut(query, ".")
	switch source {
	case "body":
		return e.extractFromBody(path)
	case "header":
		return e.extractFromHeader(path)
	case "status":
		return e.response.StatusLine, e.response.StatusLine != ""
	default:
		return nil, false
	}
}

func (e *Extractor) extractFromBody(path string) (any, bool) {
	if !e.bodyJSON.Exists() {
		if path == "" {
			return e.response.Body, true
		}
		return nil, false
	}

	if path == "" {
		return e.bodyJSON.Value(), true
	}

	result := e.bodyJSON.Get(path)
	if !result.Exists() {
		return nil, false
	}
	return result.Value(), true
}

func (e *Extractor) extractFromHeader(name string) (any, bool) {
	value := e.response.Header(name)
	if value == "" {
		return nil, false
	}
	return value, true
}

// Extract is a convenience wrapper for a single query.
func Extract(resp *http.Response, query string) (any, bool) {
	return NewExtractor(resp).Extract(query)
}

// ExtractRaw returns the query result as text; JSON objects and arrays are
// returned as their raw JSON.
func ExtractRaw(resp *http.Response, query string) (string, bool) {
	source, path, _ := strings.Cut(query, ".")
	if source == "body" && path != "" && gjson.Valid(resp.Body) {
		result := gjson.Get(resp.Body, path)
		if !result.Exists() {
			return "", false
		}
		if result.IsObject() || result.IsArray() {
			return result.Raw, true
		}
		return result.String(), true
	}

	v, ok := Extract(resp, query)
	if !ok {
		return "", false
	}
	if s, isString := v.(string); isString {
		return s, true
	}
	if source == "body" {
		return resp.Body, true
	}
	return "", false
}
