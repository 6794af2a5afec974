package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/abdul-hamid-achik/requeasy/packages/core/config"
)

func newInitCmd() *cobra.Command {
	var force bool
	var dir string

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Write a default .requeasy.yaml",
		Long: `Write a .requeasy.yaml with the default settings to the current
directory, ready to edit.

Examples:
  requeasy init
  requeasy init --force`,
		Args: usageArgs(cobra.NoArgs),
		RunE: func(cmd *cobra.Command, args []string) error {
			if dir == "" {
				cwd, err := os.Getwd()
				if err != nil {
					return err
				}
				dir = cwd
			}

			configFile := filepath.Join(dir, config.ConfigFilenames[0])
			if !force {
				if _, err := os.Stat(configFile); err == nil {
					return usageError(fmt.Errorf("file already exists: %s (use --force to overwrite)", configFile))
				}
			}

			if err := config.DefaultConfig().SaveConfig(configFile); err != nil {
				return configError(fmt.Errorf("writing config: %w", err))
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", configFile)
			return nil
		},
	}
	cmd.Flags().BoolVarP(&force, "force", "f", false, "Overwrite an existing file")
	cmd.Flags().StringVar(&dir, "dir", "", "Directory to write to (default: current directory)")
	return cmd
}
