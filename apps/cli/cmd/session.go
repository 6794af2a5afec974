package cmd

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/abdul-hamid-achik/requeasy/packages/assertions"
	"github.com/abdul-hamid-achik/requeasy/packages/capture"
	"github.com/abdul-hamid-achik/requeasy/packages/core/config"
	"github.com/abdul-hamid-achik/requeasy/packages/core/env"
	"github.com/abdul-hamid-achik/requeasy/packages/http"
	"github.com/abdul-hamid-achik/requeasy/packages/log"
	"github.com/abdul-hamid-achik/requeasy/packages/output"
)

// session is everything a command needs to send requests: the merged
// configuration, a variable resolver, a logger and a client.
type session struct {
	opts     *globalOptions
	config   *config.Config
	resolver *env.Resolver
	logger   *slog.Logger
	client   *http.Client
}

func newSession(cmd *cobra.Command, opts *globalOptions) (*session, error) {
	fileConfig, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return nil, configError(err)
	}
	cfg := fileConfig.Merge(flagConfig(cmd, opts))
	if err := cfg.Validate(); err != nil {
		return nil, configError(err)
	}

	logger := log.New(loggerConfig(cfg, cmd.ErrOrStderr()))

	resolver := env.NewResolver()
	resolver.SetWarnFunc(func(format string, args ...any) {
		logger.Warn(fmt.Sprintf(format, args...))
	})
	if opts.envFile != "" {
		vars, err := env.LoadAndExportDotEnv(opts.envFile)
		if err != nil {
			return nil, configError(fmt.Errorf("loading env file: %w", err))
		}
		resolver.SetVariables(vars)
	}

	provider, err := cfg.TLSConfigProvider()
	if err != nil {
		return nil, configError(err)
	}

	client := http.NewClient(
		http.WithTLSConfigProvider(provider),
		http.WithLogger(log.WithComponent(logger, "client")),
		http.WithDefaultHeaders(resolver.ResolveAll(cfg.Headers)...),
	)

	return &session{
		opts:     opts,
		config:   cfg,
		resolver: resolver,
		logger:   logger,
		client:   client,
	}, nil
}

// flagConfig collects the flags the user actually set so they override
// the config file.
func flagConfig(cmd *cobra.Command, opts *globalOptions) *config.Config {
	cfg := &config.Config{
		Trust:  opts.trust,
		CAFile: opts.caCert,
		Output: opts.output,
	}
	if cmd.Flags().Changed("no-color") || opts.noColor {
		cfg.NoColor = config.BoolPtr(opts.noColor)
	}
	if cmd.Flags().Changed("verbose") || opts.verbose {
		cfg.Verbose = config.BoolPtr(opts.verbose)
	}
	return cfg
}

// loggerConfig layers REQUEASY_* variables over the config file. Verbose
// mode always logs at trace level so the raw request is visible.
func loggerConfig(cfg *config.Config, w io.Writer) *log.Config {
	lc := log.FromEnv()
	lc.Output = w
	if os.Getenv("REQUEASY_LOG_LEVEL") == "" && os.Getenv("REQUEASY_DEBUG") == "" && cfg.LogLevel != "" {
		lc.Level = cfg.LogLevel
	}
	if os.Getenv("REQUEASY_LOG_FORMAT") == "" && cfg.LogFormat != "" {
		lc.Format = log.Format(cfg.LogFormat)
	}
	if cfg.GetVerbose() {
		lc.Level = "trace"
	}
	return lc
}

// newRequest resolves placeholders in the URL, body and header lines.
func (s *session) newRequest(method, rawURL string, body *string) *http.Request {
	req := http.NewRequest(method, s.resolver.Resolve(rawURL))
	if body != nil {
		req.SetBody(s.resolver.Resolve(*body))
	}
	for _, line := range s.resolver.ResolveAll(s.opts.headers) {
		req.AddHeader(line)
	}
	return req
}

// send performs req and prints the response, then runs --query and
// --schema checks.
func (s *session) send(cmd *cobra.Command, req *http.Request) error {
	resp, err := s.client.Do(req)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if s.opts.query != "" {
		value, ok := capture.ExtractRaw(resp, s.opts.query)
		if !ok {
			return withExitCode(ExitCheckFailure, fmt.Errorf("query %q matched nothing", s.opts.query))
		}
		fmt.Fprintln(out, value)
	} else {
		formatter, err := output.New(s.config.Output, output.Options{
			Writer:         out,
			IncludeHeaders: s.opts.includeHeaders,
			NoColor:        s.config.GetNoColor(),
		})
		if err != nil {
			return usageError(err)
		}
		if err := formatter.FormatResponse(resp); err != nil {
			return err
		}
	}

	if s.opts.schema != "" {
		if err := assertions.ValidateSchema([]byte(resp.Body), s.opts.schema); err != nil {
			var se *assertions.SchemaError
			if errors.As(err, &se) {
				return withExitCode(ExitCheckFailure, err)
			}
			return configError(err)
		}
	}
	return nil
}

// readBody interprets a body argument: @path reads a file, - reads stdin,
// anything else is sent as is.
func readBody(cmd *cobra.Command, arg string) (string, error) {
	switch {
	case arg == "-":
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("reading body from stdin: %w", err)
		}
		return string(data), nil
	case len(arg) > 1 && arg[0] == '@':
		data, err := os.ReadFile(arg[1:])
		if err != nil {
			return "", usageError(fmt.Errorf("reading body: %w", err))
		}
		return string(data), nil
	default:
		return arg, nil
	}
}

// usageArgs marks argument validation failures as usage errors.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		return usageError(validate(cmd, args))
	}
}
