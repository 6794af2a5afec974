// Package assertions validates response bodies against JSON Schema documents.
package assertions
