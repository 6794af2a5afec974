// Package env loads .env files and expands {{variable}} placeholders in
// request URLs, bodies and header lines before a request is built.
package env
