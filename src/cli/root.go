// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/floriancrusius/checkssl/src/config"
	"github.com/floriancrusius/checkssl/src/internal/domain"
	"github.com/floriancrusius/checkssl/src/internal/expiry"
	"github.com/floriancrusius/checkssl/src/internal/expiry/result"
	"github.com/floriancrusius/checkssl/src/internal/helper/posix"
	"github.com/floriancrusius/checkssl/src/logger"
	"github.com/spf13/cobra"
)

// ErrNoTargets is returned when neither the arguments, the domain file nor
// the config file name anything to check.
var ErrNoTargets = errors.New("cli: no domains or certificate files to check")

var (
	// OperationPerformed reports whether the last command rendered a report.
	OperationPerformed bool
	// OperationPerformedSuccessfully reports whether that report was complete,
	// meaning no row ended up as an error marker.
	OperationPerformedSuccessfully bool
)

// flags holds the values bound to command line flags.
type flags struct {
	configPath  string
	domainFile  string
	certFiles   []string
	desc        bool
	width       int
	output      string
	port        int
	timeout     int
	concurrency int
	rate        float64
	dateLayout  string
}

// Execute builds the root command and runs it with the process arguments.
//
// Parameters:
//   - ctx: Cancels outstanding checks, typically on SIGINT
//   - version: Reported by --version
//   - log: Receives diagnostics
//
// Returns:
//   - error: The first error of the command, already printed by Cobra
func Execute(ctx context.Context, version string, log logger.Logger) error {
	OperationPerformed = false
	OperationPerformedSuccessfully = false

	return NewRootCommand(version, log).ExecuteContext(ctx)
}

// NewRootCommand returns the checkssl command tree. Tests drive it with
// SetArgs, SetIn and SetOut.
func NewRootCommand(version string, log logger.Logger) *cobra.Command {
	f := &flags{}
	name := posix.GetExecutableName()

	rootCmd := &cobra.Command{
		Use:   name + " [DOMAIN...]",
		Short: "Check SSL certificate expiry dates",
		Long: `Check the SSL/TLS certificate expiry date of every domain and list the
results sorted by date. Domains come from the arguments, a domain list file
(one per line, # comments allowed) or the config file. Local certificate
files can be checked next to them with --cert.

Rows that could not be checked are listed last as "Error".`,
		Example: fmt.Sprintf(`  %[1]s example.com mail.example.com:993
  %[1]s -f domains.txt --desc -o markdown
  %[1]s -c server.pem -c backup.der example.com`, name),
		// positional arguments are domains, not sub-command names
		Args:          cobra.ArbitraryArgs,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, f, args, log)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "config file (.json, .yaml, .yml); defaults to $"+config.EnvConfigFile)
	pf.BoolVarP(&f.desc, "desc", "d", false, "list the latest expiry first")
	pf.IntVarP(&f.width, "width", "w", 0, "minimum width of the domain column (default 10)")
	pf.StringVarP(&f.output, "output", "o", "", "output format: text, markdown or json (default text)")

	fl := rootCmd.Flags()
	fl.StringVarP(&f.domainFile, "file", "f", "", "read domains from FILE, one per line (- for stdin)")
	fl.StringArrayVarP(&f.certFiles, "cert", "c", nil, "check a local certificate file (PEM, DER or PKCS7); repeatable")
	fl.IntVarP(&f.port, "port", "p", 0, "port for domains without one (default 443)")
	fl.IntVarP(&f.timeout, "timeout", "t", 0, "dial and handshake timeout in seconds (default 10)")
	fl.IntVar(&f.concurrency, "concurrency", 0, "checks in flight (default 8)")
	fl.Float64Var(&f.rate, "rate", 0, "maximum handshakes per second, 0 for no limit")
	fl.StringVar(&f.dateLayout, "date-layout", "", "expiry date layout: dmy (dd.mm.yyyy) or mdy (mm/dd/yyyy)")

	rootCmd.AddCommand(newSortCommand(f, log), newMCPCommand(f, version))

	return rootCmd
}

// loadSettings reads the config file and lets explicitly set flags win.
func loadSettings(cmd *cobra.Command, f *flags) (*config.Config, expiry.Settings, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, expiry.Settings{}, err
	}

	d := &cfg.Defaults
	changed := cmd.Flags().Changed
	if changed("desc") {
		d.Order = "asc"
		if f.desc {
			d.Order = "desc"
		}
	}
	if changed("width") {
		d.MinColumnWidth = f.width
	}
	if changed("output") {
		d.Output = f.output
	}
	if changed("port") {
		d.Port = f.port
	}
	if changed("timeout") {
		d.TimeoutSeconds = f.timeout
	}
	if changed("concurrency") {
		d.Concurrency = f.concurrency
	}
	if changed("rate") {
		d.RatePerSecond = f.rate
	}
	if changed("date-layout") {
		d.DateLayout = f.dateLayout
	}

	settings, err := expiry.FromDefaults(*d)
	if err != nil {
		return nil, expiry.Settings{}, err
	}
	return cfg, settings, nil
}

// openInput opens path for reading, with "-" meaning the command's stdin.
func openInput(cmd *cobra.Command, path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(cmd.InOrStdin()), nil
	}
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	return file, nil
}

// collectDomains gathers entries from the arguments and the domain file,
// falling back to the config file's list.
func collectDomains(cmd *cobra.Command, f *flags, args []string, cfg *config.Config) ([]string, error) {
	entries := append([]string(nil), args...)

	if f.domainFile != "" {
		r, err := openInput(cmd, f.domainFile)
		if err != nil {
			return nil, err
		}
		defer r.Close()

		loaded, err := domain.Load(r)
		if err != nil {
			return nil, err
		}
		entries = append(entries, loaded...)
	}

	if len(entries) == 0 && len(f.certFiles) == 0 {
		entries = append(entries, cfg.Domains...)
	}
	return domain.Dedupe(entries), nil
}

func runCheck(cmd *cobra.Command, f *flags, args []string, log logger.Logger) error {
	cfg, settings, err := loadSettings(cmd, f)
	if err != nil {
		return err
	}

	entries, err := collectDomains(cmd, f, args, cfg)
	if err != nil {
		return err
	}
	if len(entries) == 0 && len(f.certFiles) == 0 {
		return ErrNoTargets
	}

	checker := settings.Checker(log)
	raws, err := checker.CheckEntries(cmd.Context(), entries)
	if err != nil {
		return err
	}
	raws = append(raws, checker.CheckFiles(f.certFiles)...)

	if err := expiry.Render(cmd.OutOrStdout(), raws, settings, log); err != nil {
		return err
	}

	markPerformed(slices.ContainsFunc(raws, func(r result.Raw) bool {
		return result.IsErrorMarker(r.Result)
	}))
	return nil
}

// markPerformed records that a report was rendered. A report with error
// rows is not a successful one.
func markPerformed(hasErrors bool) {
	OperationPerformed = true
	OperationPerformedSuccessfully = !hasErrors
}
