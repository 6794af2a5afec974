package cmd

import (
	"errors"

	"github.com/abdul-hamid-achik/requeasy/packages/http"
)

// Exit codes for requeasy CLI
const (
	// ExitSuccess indicates the request completed and every check passed
	ExitSuccess = 0

	// ExitCheckFailure indicates a --query, --schema or threshold check failed
	ExitCheckFailure = 1

	// ExitParseError indicates a malformed URL or response
	ExitParseError = 2

	// ExitConfigError indicates a configuration error
	ExitConfigError = 3

	// ExitNetworkError indicates a network/connection error
	ExitNetworkError = 4

	// ExitUsageError indicates invalid CLI usage
	ExitUsageError = 64
)

// exitError pins an error to a specific exit code.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string {
	return e.err.Error()
}

func (e *exitError) Unwrap() error {
	return e.err
}

func withExitCode(code int, err error) error {
	if err == nil {
		return nil
	}
	return &exitError{code: code, err: err}
}

func configError(err error) error {
	return withExitCode(ExitConfigError, err)
}

func usageError(err error) error {
	return withExitCode(ExitUsageError, err)
}

// exitCode maps an error returned by a command to the process exit code.
func exitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}

	switch {
	case http.IsParseError(err):
		return ExitParseError
	case http.IsConnectError(err), http.IsIOError(err):
		return ExitNetworkError
	default:
		return ExitCheckFailure
	}
}
