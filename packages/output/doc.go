// Package output renders responses for the command line.
//
// Supported output formats:
//   - Console: colored status line, optional headers, then the body
//   - JSON: a single object with statusLine, headers and body
//
// Both formatters implement Formatter.
package output
