package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeEnvFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadDotEnv(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected map[string]string
	}{
		{
			name:     "simple key-value",
			content:  "BASE_URL=https://dummyjson.com",
			expected: map[string]string{"BASE_URL": "https://dummyjson.com"},
		},
		{
			name:     "export prefix",
			content:  "export TOKEN=abc",
			expected: map[string]string{"TOKEN": "abc"},
		},
		{
			name:     "quoted values",
			content:  "A=\"with spaces\"\nB='single'",
			expected: map[string]string{"A": "with spaces", "B": "single"},
		},
		{
			name:     "mismatched quotes kept",
			content:  `A="open'`,
			expected: map[string]string{"A": `"open'`},
		},
		{
			name:     "comments and blank lines skipped",
			content:  "# comment\n\nKEY=value\nnot a pair\n=missing-key",
			expected: map[string]string{"KEY": "value"},
		},
		{
			name:     "value with equals sign",
			content:  "DSN=postgres://u:p@host/db?ssl=true",
			expected: map[string]string{"DSN": "postgres://u:p@host/db?ssl=true"},
		},
		{
			name:     "whitespace trimmed",
			content:  "  KEY  =  value  ",
			expected: map[string]string{"KEY": "value"},
		},
		{
			name:     "empty file",
			content:  "",
			expected: map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := LoadDotEnv(writeEnvFile(t, tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestLoadDotEnv_NotFound(t *testing.T) {
	_, err := LoadDotEnv(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestLoadAndExportDotEnv(t *testing.T) {
	t.Setenv("REQUEASY_TEST_PRESET", "from-os")
	t.Setenv("REQUEASY_TEST_NEW", "")
	os.Unsetenv("REQUEASY_TEST_NEW")

	vars, err := LoadAndExportDotEnv(writeEnvFile(t, "REQUEASY_TEST_PRESET=from-file\nREQUEASY_TEST_NEW=fresh"))

	require.NoError(t, err)
	assert.Len(t, vars, 2)
	assert.Equal(t, "from-os", os.Getenv("REQUEASY_TEST_PRESET"))
	assert.Equal(t, "fresh", os.Getenv("REQUEASY_TEST_NEW"))
}
