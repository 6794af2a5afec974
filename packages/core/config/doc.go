// Package config handles configuration loading and management for requeasy.
//
// It provides functionality for:
//   - Loading configuration from .requeasy.yaml (or JSON) files
//   - Default configuration values
//   - Mapping trust settings onto a TLS config provider
package config
