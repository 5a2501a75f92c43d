package main

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strconv"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"manila/internal/config"
	"manila/internal/logging"
	"manila/internal/organizer"
)

func newOrganizeCommand(configFlag *string) *cobra.Command {
	var fallback bool
	var autoFallback bool

	cmd := &cobra.Command{
		Use:   "organize <directory>",
		Short: "Sort the files under a directory into category folders",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, _, _, err := config.Load(*configFlag)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if err := cfg.EnsureDirectories(); err != nil {
				return fmt.Errorf("ensure directories: %w", err)
			}

			logger, err := logging.NewFromConfig(cfg)
			if err != nil {
				return fmt.Errorf("configure logging: %w", err)
			}

			mode, err := organizer.ParseMode(cfg.Organize.Mode)
			if err != nil {
				return err
			}
			if fallback {
				mode = organizer.ModeFallback
			}

			root, err := filepath.Abs(args[0])
			if err != nil {
				return fmt.Errorf("resolve directory: %w", err)
			}

			retry := autoFallback || cfg.Organize.AutoFallback
			return runOrganize(cmd.OutOrStdout(), logger, cfg, root, mode, retry)
		},
	}

	cmd.Flags().BoolVar(&fallback, "fallback", false, "Move files by copy and delete instead of rename")
	cmd.Flags().BoolVar(&autoFallback, "auto-fallback", false, "Retry in fallback mode after a cross-device failure")
	return cmd
}

func runOrganize(out io.Writer, logger *slog.Logger, cfg *config.Config, root string, mode organizer.Mode, autoFallback bool) error {
	lock := flock.New(lockPath(cfg.Paths.LockDir, root))
	locked, err := lock.TryLock()
	if err != nil {
		return fmt.Errorf("acquire run lock: %w", err)
	}
	if !locked {
		return fmt.Errorf("another organize run is already active for %s", root)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	org := organizer.New(logger)
	report := org.Run(root, mode)

	if report.Status.Recoverable() && autoFallback {
		fmt.Fprintln(out, "Rename failed across devices; retrying in fallback mode")
		report = org.Run(root, organizer.ModeFallback)
	}

	printReport(out, root, report)

	if !report.Status.OK() {
		if report.Status.Recoverable() {
			return fmt.Errorf("organize %s: %s (re-run with --fallback to move across devices)", root, report.Status)
		}
		return fmt.Errorf("organize %s: %s", root, report.Status)
	}
	return nil
}

func printReport(out io.Writer, root string, report organizer.Report) {
	fmt.Fprintf(out, "Organized %s\n", root)
	rows := [][]string{
		{"Status", string(report.Status)},
		{"Mode", string(report.Mode)},
		{"Files moved", strconv.Itoa(report.FilesMoved)},
		{"Files already in place", strconv.Itoa(report.FilesInPlace)},
		{"Folders renamed", strconv.Itoa(report.FoldersRenamed)},
		{"Directories visited", strconv.Itoa(report.DirsVisited)},
	}
	fmt.Fprintln(out, renderTable(out, []string{"Field", "Value"}, rows, []columnAlignment{alignLeft, alignRight}))
}

// lockPath derives a stable per-root lock file name so concurrent runs on
// different roots do not contend.
func lockPath(lockDir, root string) string {
	sum := sha256.Sum256([]byte(root))
	return filepath.Join(lockDir, "manila-"+hex.EncodeToString(sum[:8])+".lock")
}
