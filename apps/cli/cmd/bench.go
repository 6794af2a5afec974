package cmd

import (
	"context"
	"fmt"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/abdul-hamid-achik/requeasy/packages/stress"
)

type benchOptions struct {
	method    string
	body      string
	requests  int
	duration  time.Duration
	rate      float64
	threshold string
}

func newBenchCmd(opts *globalOptions) *cobra.Command {
	bench := &benchOptions{}

	cmd := &cobra.Command{
		Use:   "bench <url>",
		Short: "Repeat a request and report latency",
		Long: `Send the same request repeatedly, one connection at a time, and
report latency percentiles. Calls never overlap.

Examples:
  # 50 requests, 10 per second
  requeasy bench https://example.com/ -n 50 -r 10

  # Run for one minute back to back
  requeasy bench https://example.com/ -n 0 -d 1m -r 0

  # Fail the run when thresholds are exceeded
  requeasy bench https://api.example.com/items -X POST --data @item.json --threshold "p95<200ms,errors<1%"`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBench(cmd, opts, bench, args[0])
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&bench.method, "method", "X", "GET", "Request method")
	flags.StringVar(&bench.body, "data", "", "Request body: literal, @file or - for stdin")
	flags.IntVarP(&bench.requests, "requests", "n", getEnvInt("REQUEASY_BENCH_REQUESTS", 10), "Number of requests, 0 for no limit (env: REQUEASY_BENCH_REQUESTS)")
	flags.DurationVarP(&bench.duration, "duration", "d", 0, "Stop after this long (e.g. 30s, 5m)")
	flags.Float64VarP(&bench.rate, "rate", "r", 1, "Requests per second, 0 for back to back")
	flags.StringVar(&bench.threshold, "threshold", "", "Pass/fail thresholds (e.g. \"p95<200ms,errors<0.1%\")")

	return cmd
}

func runBench(cmd *cobra.Command, opts *globalOptions, bench *benchOptions, rawURL string) error {
	thresholds, err := stress.ParseThresholds(bench.threshold)
	if err != nil {
		return usageError(err)
	}
	cfg := &stress.Config{
		Requests:   bench.requests,
		Duration:   bench.duration,
		Rate:       bench.rate,
		Thresholds: thresholds,
	}
	if err := cfg.Validate(); err != nil {
		return usageError(err)
	}

	var body *string
	if cmd.Flags().Changed("data") {
		b, err := readBody(cmd, bench.body)
		if err != nil {
			return err
		}
		body = &b
	}

	s, err := newSession(cmd, opts)
	if err != nil {
		return err
	}
	req := s.newRequest(strings.ToUpper(bench.method), rawURL, body)

	reporter := stress.NewReporter(
		stress.WithWriter(cmd.OutOrStdout()),
		stress.WithNoColor(s.config.GetNoColor()),
	)
	reporter.Header(req.Method, req.URL, cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	summary, err := stress.Run(ctx, cfg, func() error {
		_, err := s.client.Do(req)
		return err
	}, func(done int64, err error) {
		if err != nil {
			s.logger.Debug("bench call failed", "n", done, "error", err)
		}
	})
	if err != nil && summary == nil {
		return err
	}
	if err != nil {
		fmt.Fprintln(cmd.ErrOrStderr(), "Interrupted, reporting partial results")
	}

	if !reporter.Summary(summary, thresholds) {
		return withExitCode(ExitCheckFailure, fmt.Errorf("thresholds not met"))
	}
	return nil
}
