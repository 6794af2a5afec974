// Package capture extracts values from responses with gjson paths.
//
// Queries address the body ("body", "body.items.0.id"), a header
// ("header.Content-Type") or the raw status line ("status").
package capture
