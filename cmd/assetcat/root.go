package main

import (
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/go-git/go-billy/v5/osfs"
	"github.com/spf13/cobra"

	"github.com/giantswarm/assetcache"
)

// kinds lists the values accepted by --kind.
var kinds = []string{"bytes", "manifest", "crd"}

type options struct {
	kind    string
	root    string
	workers int
	debug   bool
}

func newRootCmd() *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "assetcat [flags] FILE...",
		Short: "Load files through a deduplicating asset cache",
		Long: `assetcat loads every FILE through one asset cache and prints, per
argument, the storage slot it resolved to and a short summary, or the load
error. Paths are resolved relative to --root. A path given twice is loaded
once and both arguments report the same slot.`,
		Example: `  assetcat a.txt a.txt missing.txt
  assetcat --kind crd --root ./crds --workers 8 *.yaml`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			if !slices.Contains(kinds, opts.kind) {
				return fmt.Errorf("unknown --kind %q (want one of %s)", opts.kind, strings.Join(kinds, ", "))
			}
			if opts.workers < 0 {
				return fmt.Errorf("--workers must not be negative, got %d", opts.workers)
			}
			if opts.debug {
				assetcache.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(),
					&slog.HandlerOptions{Level: slog.LevelDebug})))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd.OutOrStdout(), osfs.New(opts.root), opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.kind, "kind", "k", "bytes", "asset kind: "+strings.Join(kinds, ", "))
	cmd.Flags().StringVarP(&opts.root, "root", "r", ".", "directory paths are resolved against")
	cmd.Flags().IntVarP(&opts.workers, "workers", "w", 0, "load concurrently with this many workers (0 loads one by one)")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "log every loader call to stderr")

	return cmd
}
