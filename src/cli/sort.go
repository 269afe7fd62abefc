// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"slices"

	"github.com/floriancrusius/checkssl/src/internal/expiry"
	"github.com/floriancrusius/checkssl/src/internal/expiry/result"
	"github.com/floriancrusius/checkssl/src/internal/helper/gc"
	"github.com/floriancrusius/checkssl/src/logger"
	"github.com/spf13/cobra"
)

func newSortCommand(f *flags, log logger.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "sort [FILE]",
		Short: "Sort a JSON batch of check results",
		Long: `Read a JSON array of {"domain": ..., "result": ...} objects from FILE or
stdin and print it sorted by expiry date. Results are dates in dd.mm.yyyy or
mm/dd/yyyy form; anything containing "Error" is listed last, other strings
just before it.`,
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			return runSort(cmd, f, path, log)
		},
	}
}

func runSort(cmd *cobra.Command, f *flags, path string, log logger.Logger) error {
	_, settings, err := loadSettings(cmd, f)
	if err != nil {
		return err
	}

	r, err := openInput(cmd, path)
	if err != nil {
		return err
	}
	defer r.Close()

	buf := gc.Default.Get()
	defer gc.Release(buf)

	if _, err := buf.ReadFrom(r); err != nil {
		return err
	}

	results, err := result.Decode(buf.Bytes())
	if err != nil {
		return err
	}

	if err := expiry.RenderResults(cmd.OutOrStdout(), results, settings, log); err != nil {
		return err
	}

	markPerformed(slices.ContainsFunc(results, func(r result.DomainResult) bool {
		return r.Kind == result.KindError
	}))
	return nil
}
