package cmd

import (
	"strings"

	"github.com/spf13/cobra"
)

func newRequestCmd(opts *globalOptions) *cobra.Command {
	var method string

	cmd := &cobra.Command{
		Use:   "request <url> [body|@file|-]",
		Short: "Send a request with any method",
		Long: `Send a request with the method given by -X. Header lines and the
body are only written for POST and PUT.

Examples:
  requeasy request -X PUT https://api.example.com/items/1 @item.json
  requeasy request -X DELETE https://api.example.com/items/1`,
		Args: usageArgs(cobra.RangeArgs(1, 2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return sendWithBody(cmd, opts, strings.ToUpper(method), args)
		},
	}
	cmd.Flags().StringVarP(&method, "method", "X", "GET", "Request method")
	return cmd
}
