package cmd

import (
	"os"
	"strconv"
)

// globalOptions holds the persistent flags shared by every request command.
type globalOptions struct {
	configPath     string
	envFile        string
	trust          string
	caCert         string
	headers        []string
	output         string
	includeHeaders bool
	query          string
	schema         string
	verbose        bool
	noColor        bool
}

func getEnvString(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getEnvBool(key string, defaultVal bool) bool {
	if val := os.Getenv(key); val != "" {
		return val == "true" || val == "1" || val == "yes"
	}
	return defaultVal
}

func getEnvInt(key string, defaultVal int) int {
	if val := os.Getenv(key); val != "" {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}
