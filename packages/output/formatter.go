package output

import (
	"fmt"
	"io"
	"sort"

	"github.com/abdul-hamid-achik/requeasy/packages/http"
)

const (
	FormatConsole = "console"
	FormatJSON    = "json"
)

// Formatter writes a response or a request error.
type Formatter interface {
	FormatResponse(resp *http.Response) error
	FormatError(err error)
}

// Options are shared by every formatter.
type Options struct {
	Writer         io.Writer
	IncludeHeaders bool
	NoColor        bool
}

// New returns the formatter registered under name.
func New(name string, opts Options) (Formatter, error) {
	switch name {
	case "", FormatConsole:
		consoleOpts := []ConsoleOption{
			WithIncludeHeaders(opts.IncludeHeaders),
			WithNoColor(opts.NoColor),
		}
		if opts.Writer != nil {
			consoleOpts = append(consoleOpts, WithWriter(opts.Writer))
		}
		return NewConsoleFormatter(consoleOpts...), nil
	case FormatJSON:
		var jsonOpts []JSONOption
		if opts.Writer != nil {
			jsonOpts = append(jsonOpts, JSONWithWriter(opts.Writer))
		}
		return NewJSONFormatter(jsonOpts...), nil
	default:
		return nil, fmt.Errorf("unknown output format %q (want console or json)", name)
	}
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
