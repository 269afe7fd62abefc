// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"github.com/floriancrusius/checkssl/src/logger"
	mcpserver "github.com/floriancrusius/checkssl/src/mcp-server"
	"github.com/spf13/cobra"
)

func newMCPCommand(f *flags, version string) *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "Serve the checker as MCP tools over stdio",
		Long: `Start a Model Context Protocol server on stdin/stdout exposing the
check_ssl_expiry and sort_ssl_results tools. Tool parameters default to the
values of the config file.`,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// stdout is the protocol channel
			log := logger.NewJSONLogger(cmd.ErrOrStderr(), !verbose)

			cfg, _, err := loadSettings(cmd, f)
			if err != nil {
				return err
			}

			return mcpserver.Run(cmd.Context(), version, cfg, cmd.InOrStdin(), cmd.OutOrStdout(), log)
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "log JSON diagnostics to stderr")
	return cmd
}
