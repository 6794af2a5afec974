// Package cmd implements the requeasy CLI commands using Cobra.
//
// Available commands:
//   - get: Send a GET request
//   - post: Send a POST request with an optional body
//   - request: Send a request with any method
//   - bench: Repeat a request at a fixed pace and report latency
//   - init: Write a default .requeasy.yaml
//   - version: Show requeasy version information
//
// Settings come from flags, REQUEASY_* environment variables and an
// optional .requeasy.yaml, in that order of precedence.
package cmd
