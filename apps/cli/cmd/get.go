package cmd

import (
	"github.com/spf13/cobra"
)

func newGetCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get <url>",
		Short: "Send a GET request",
		Long: `Send a GET request and print the body.

Examples:
  requeasy get https://example.com/resource
  requeasy get -i http://localhost:8080/health
  requeasy get https://api.example.com/users/1 --query body.name`,
		Args: usageArgs(cobra.ExactArgs(1)),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, opts)
			if err != nil {
				return err
			}
			return s.send(cmd, s.newRequest("GET", args[0], nil))
		},
	}
}
