package cmd

import (
	"github.com/spf13/cobra"
)

func newPostCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "post <url> [body|@file|-]",
		Short: "Send a POST request",
		Long: `Send a POST request. Without -H lines the body is sent as
Content-Type: application/json.

Examples:
  requeasy post https://api.example.com/items '{"name":"widget"}'
  requeasy post https://api.example.com/items @item.json
  cat item.json | requeasy post https://api.example.com/items -
  requeasy post https://api.example.com/items @form.txt -H 'Content-Type: text/plain'`,
		Args: usageArgs(cobra.RangeArgs(1, 2)),
		RunE: func(cmd *cobra.Command, args []string) error {
			return sendWithBody(cmd, opts, "POST", args)
		},
	}
}

// sendWithBody sends args[0] with the optional body argument args[1].
func sendWithBody(cmd *cobra.Command, opts *globalOptions, method string, args []string) error {
	var body *string
	if len(args) > 1 {
		b, err := readBody(cmd, args[1])
		if err != nil {
			return err
		}
		body = &b
	}

	s, err := newSession(cmd, opts)
	if err != nil {
		return err
	}
	return s.send(cmd, s.newRequest(method, args[0], body))
}
