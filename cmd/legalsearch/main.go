package main

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/kailas-cloud/legalsearch/internal/version"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var noColor bool

	rootCmd := &cobra.Command{
		Use:           "legalsearch",
		Short:         "Keyword relevance search over a legal document corpus",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if noColor {
				color.NoColor = true
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context())
		},
	}
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context())
		},
	}

	var (
		jsonOut    bool
		limit      int
		corpusPath string
	)
	searchCmd := &cobra.Command{
		Use:   "search <query...>",
		Short: "Rank the corpus against a query and print the results",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd.Context(), cmd.OutOrStdout(), args, corpusPath, limit, jsonOut)
		},
	}
	searchCmd.Flags().BoolVar(&jsonOut, "json", false, "Output results as JSON")
	searchCmd.Flags().IntVar(&limit, "limit", 0, "Maximum number of results (0 = all)")
	searchCmd.Flags().StringVar(&corpusPath, "corpus", "", "YAML corpus file (default: built-in corpus)")

	showCmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Print one document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runShow(cmd.Context(), cmd.OutOrStdout(), args[0], corpusPath, jsonOut)
		},
	}
	showCmd.Flags().BoolVar(&jsonOut, "json", false, "Output the document as JSON")
	showCmd.Flags().StringVar(&corpusPath, "corpus", "", "YAML corpus file (default: built-in corpus)")

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}

	rootCmd.AddCommand(serveCmd, searchCmd, showCmd, versionCmd)
	return rootCmd
}
