package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var (
	version   = "dev"
	buildTime = "unknown"
)

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "requeasy",
		Short: "One request, one connection, plain output.",
		Long: `requeasy sends a single HTTP/1.1 request over a fresh connection,
reads the reply until the server closes it and prints the result.

Every scheme except http is sent over TLS, verified against an embedded
root bundle unless --trust or --cacert say otherwise.`,
		SilenceErrors: true,
		SilenceUsage:  true,
		Args:          cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) > 0 {
				return usageError(fmt.Errorf("unknown command %q for %q", args[0], cmd.CommandPath()))
			}
			return cmd.Help()
		},
	}
	rootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return usageError(err)
	})

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", getEnvString("REQUEASY_CONFIG", ""), "Path to config file (env: REQUEASY_CONFIG)")
	flags.StringVar(&opts.envFile, "env-file", getEnvString("REQUEASY_ENV_FILE", ""), "Path to .env file for {{variable}} interpolation (env: REQUEASY_ENV_FILE)")
	flags.StringVar(&opts.trust, "trust", getEnvString("REQUEASY_TRUST", ""), "Root certificates: embedded or system (env: REQUEASY_TRUST)")
	flags.StringVar(&opts.caCert, "cacert", getEnvString("REQUEASY_CACERT", ""), "PEM file with trusted root certificates (env: REQUEASY_CACERT)")
	flags.StringArrayVarP(&opts.headers, "header", "H", nil, "Header line for POST/PUT, repeatable (e.g. -H 'Authorization: Bearer x')")
	flags.StringVarP(&opts.output, "output", "o", getEnvString("REQUEASY_OUTPUT", ""), "Output format: console, json (env: REQUEASY_OUTPUT)")
	flags.BoolVarP(&opts.includeHeaders, "include", "i", false, "Print the status line and headers before the body")
	flags.StringVar(&opts.query, "query", "", "Print only this value: body, body.<path>, header.<Name> or status")
	flags.StringVar(&opts.schema, "schema", "", "Fail unless the body validates against this JSON Schema file")
	flags.BoolVarP(&opts.verbose, "verbose", "v", getEnvBool("REQUEASY_VERBOSE", false), "Log the raw request and timings to stderr (env: REQUEASY_VERBOSE)")
	flags.BoolVar(&opts.noColor, "no-color", getEnvBool("REQUEASY_NO_COLOR", false), "Disable colored output (env: REQUEASY_NO_COLOR)")

	rootCmd.AddCommand(newGetCmd(opts))
	rootCmd.AddCommand(newPostCmd(opts))
	rootCmd.AddCommand(newRequestCmd(opts))
	rootCmd.AddCommand(newBenchCmd(opts))
	rootCmd.AddCommand(newInitCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

// run executes args and returns the process exit code.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	rootCmd := newRootCmd()
	rootCmd.SetArgs(args)
	rootCmd.SetIn(stdin)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	err := rootCmd.Execute()
	if err == nil {
		return ExitSuccess
	}

	red := color.New(color.FgRed).SprintFunc()
	fmt.Fprintf(stderr, "%s %v\n", red("Error:"), err)
	return exitCode(err)
}

func Execute(v, bt string) {
	version = v
	buildTime = bt
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
