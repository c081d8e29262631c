// Package main provides the catalogctl CLI entrypoint.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rogerio-castellano/catalog-tracker/internal/catalog"
	"github.com/rogerio-castellano/catalog-tracker/internal/config"
	"github.com/rogerio-castellano/catalog-tracker/internal/report"
	"github.com/rogerio-castellano/catalog-tracker/internal/stats"
)

const terminalWidthBackup = 80

type options struct {
	apiURL     string
	timeout    time.Duration
	configPath string
	noColor    bool
	recent     int
}

func main() {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	rootCmd := &cobra.Command{
		Use:          "catalogctl",
		Short:        "Catalog statistics from the terminal",
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.apiURL, "api-url", "", "catalog API base URL (default: "+config.DefaultAPIURL+")")
	rootCmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", 0, "HTTP timeout for API calls")
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", config.DefaultCLIConfigPath(), "path to TOML config file")
	rootCmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")

	dashboardCmd := &cobra.Command{
		Use:   "dashboard",
		Short: "Show totals, average price and recent products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts, func(r *report.Renderer, s catalog.Snapshot) error {
				summary := stats.ComputeSummary(s.Products, s.Categories)
				return r.Dashboard(summary, stats.RecentProducts(s.Products, opts.recent))
			})
		},
	}
	dashboardCmd.Flags().IntVar(&opts.recent, "recent", stats.DefaultRecentLimit, "number of recent products to list")

	rootCmd.AddCommand(
		&cobra.Command{
			Use:   "report",
			Short: "Show the full statistics report",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return run(cmd, opts, func(r *report.Renderer, s catalog.Snapshot) error {
					return r.Report(stats.ComputeSummary(s.Products, s.Categories))
				})
			},
		},
		dashboardCmd,
		&cobra.Command{
			Use:   "categories",
			Short: "List categories with their product counts",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return run(cmd, opts, func(r *report.Renderer, s catalog.Snapshot) error {
					return r.Categories(stats.CategoryCounts(s.Products, s.Categories))
				})
			},
		},
	)
	return rootCmd
}

// run fetches a snapshot and hands it to render. Fetch failures are reported
// on stderr and rendering continues with whatever collections were read.
func run(cmd *cobra.Command, opts *options, render func(*report.Renderer, catalog.Snapshot) error) error {
	fileCfg, err := config.LoadCLIConfig(opts.configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	baseURL, timeout, err := fileCfg.ResolveAPI(opts.apiURL, opts.timeout)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), 2*timeout)
	defer cancel()

	snapshot, err := catalog.NewClient(baseURL, timeout).Snapshot(ctx)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
	}

	out := cmd.OutOrStdout()
	r := report.NewRenderer(out, shouldUseColor(out, opts.noColor), terminalWidth(out))
	return render(r, snapshot)
}

func shouldUseColor(w io.Writer, noColor bool) bool {
	if noColor || os.Getenv("NO_COLOR") != "" {
		return false
	}
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

func terminalWidth(w io.Writer) int {
	file, ok := w.(*os.File)
	if !ok {
		return terminalWidthBackup
	}
	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil || width <= 0 {
		return terminalWidthBackup
	}
	return width
}
