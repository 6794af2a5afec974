package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/abdul-hamid-achik/requeasy/packages/http"
)

type ConsoleFormatter struct {
	writer         io.Writer
	includeHeaders bool
	noColor        bool
}

type ConsoleOption func(*ConsoleFormatter)

func NewConsoleFormatter(opts ...ConsoleOption) *ConsoleFormatter {
	f := &ConsoleFormatter{
		writer: os.Stdout,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

func WithWriter(w io.Writer) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.writer = w
	}
}

// WithIncludeHeaders prints the status line and headers before the body.
func WithIncludeHeaders(v bool) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.includeHeaders = v
	}
}

func WithNoColor(nc bool) ConsoleOption {
	return func(f *ConsoleFormatter) {
		f.noColor = nc
	}
}

func (f *ConsoleFormatter) color(attrs ...color.Attribute) func(a ...any) string {
	c := color.New(attrs...)
	if f.noColor {
		c.DisableColor()
	}
	return c.SprintFunc()
}

func (f *ConsoleFormatter) FormatResponse(resp *http.Response) error {
	if f.includeHeaders {
		fmt.Fprintln(f.writer, f.statusColor(resp.StatusLine)(resp.StatusLine))

		cyan := f.color(color.FgCyan)
		for _, k := range sortedKeys(resp.Headers) {
			fmt.Fprintf(f.writer, "%s: %s\n", cyan(k), resp.Headers[k])
		}
		fmt.Fprintln(f.writer)
	}

	_, err := io.WriteString(f.writer, resp.Body)
	if err == nil && resp.Body != "" && !strings.HasSuffix(resp.Body, "\n") {
		_, err = io.WriteString(f.writer, "\n")
	}
	return err
}

// statusColor picks a color from the first digit of the status code. The
// line is printed as received either way.
func (f *ConsoleFormatter) statusColor(statusLine string) func(a ...any) string {
	fields := strings.Fields(statusLine)
	if len(fields) < 2 || fields[1] == "" {
		return f.color(color.Bold)
	}
	switch fields[1][0] {
	case '2':
		return f.color(color.FgGreen, color.Bold)
	case '3':
		return f.color(color.FgYellow, color.Bold)
	case '4', '5':
		return f.color(color.FgRed, color.Bold)
	default:
		return f.color(color.Bold)
	}
}

func (f *ConsoleFormatter) FormatError(err error) {
	red := f.color(color.FgRed)
	fmt.Fprintf(f.writer, "%s %v\n", red("Error:"), err)
}
