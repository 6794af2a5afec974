package http

import (
	"strconv"
	"strings"
)

const crlf = "\r\n"

// Request describes a single call. Headers are complete header lines
// ("Name: value") sent verbatim for POST and PUT.
type Request struct {
	Method  string
	URL     string
	Body    *string
	Headers []string
}

func NewRequest(method, requestURL string) *Request {
	return &Request{
		Method: method,
		URL:    requestURL,
	}
}

func (r *Request) SetBody(body string) *Request {
	r.Body = &body
	return r
}

func (r *Request) AddHeader(line string) *Request {
	r.Headers = append(r.Headers, line)
	return r
}

// BuildRequest formats an HTTP/1.1 request. An empty method means GET.
// Extra header lines and the body are only emitted for POST and PUT; when
// no header lines are given those methods get a default JSON Content-Type.
// Trailing CR and LF are trimmed from each header line and a single CRLF
// is written after it.
func BuildRequest(host, path string, body *string, method string, headers []string) string {
	if method == "" {
		method = "GET"
	}

	var b strings.Builder
	b.WriteString(method + " /" + path + " HTTP/1.1" + crlf)
	b.WriteString("Host: " + host + crlf)
	b.WriteString("Accept: */*" + crlf)
	b.WriteString("Accept-Language: en-US,en;q=0.5" + crlf)
	b.WriteString("Connection: close" + crlf)
	b.WriteString("Accept-Charset: UTF-8, ISO-8859-1;q=0.8" + crlf)
	b.WriteString("Content-Type: application/json; charset=UTF-8" + crlf)

	if method == "POST" || method == "PUT" {
		if len(headers) > 0 {
			for _, h := range headers {
				b.WriteString(strings.TrimRight(h, crlf) + crlf)
			}
		} else {
			b.WriteString("Content-Type: application/json" + crlf)
		}
		if body != nil {
			b.WriteString("Content-Length: " + strconv.Itoa(len(*body)) + crlf + crlf)
			b.WriteString(*body)
			b.WriteString(crlf)
		}
	}

	b.WriteString(crlf)
	return b.String()
}
