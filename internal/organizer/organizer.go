package organizer

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"manila/internal/alias"
	"manila/internal/classify"
	"manila/internal/fileutil"
	"manila/internal/logging"
)

// Organizer classifies and relocates files under a root directory. Instances
// hold only read-only tables and a logger and may be reused across runs, but
// a given root must not be organized by two concurrent callers.
type Organizer struct {
	table   *classify.Table
	aliases *alias.Registry
	logger  *slog.Logger
}

// New constructs an organizer over the compiled-in category and alias tables.
func New(logger *slog.Logger) *Organizer {
	return NewWithRegistry(alias.Default(), logger)
}

// NewWithRegistry allows substituting the alias registry (and through it the
// classification table). Used by tests that need deterministic small tables.
func NewWithRegistry(registry *alias.Registry, logger *slog.Logger) *Organizer {
	return &Organizer{
		table:   registry.Table(),
		aliases: registry,
		logger:  logging.NewComponentLogger(logger, "organizer"),
	}
}

// Report summarizes one run for presentation. Status is the authoritative
// outcome; the counters exist for reporting only.
type Report struct {
	RunID          string
	Mode           Mode
	Status         Status
	FilesMoved     int
	FilesInPlace   int
	FoldersRenamed int
	DirsVisited    int
}

// Organize walks the tree rooted at root and moves misplaced files into
// category folders using the given transfer mode. It blocks until the run
// reaches a terminal status and performs no I/O on any other goroutine.
func (o *Organizer) Organize(root string, mode Mode) Status {
	return o.Run(root, mode).Status
}

// Run is Organize plus the run report.
func (o *Organizer) Run(root string, mode Mode) Report {
	report := Report{RunID: uuid.NewString(), Mode: mode}
	logger := o.logger.With(
		logging.String("run_id", report.RunID),
		logging.String("root", root),
		logging.String("mode", string(mode)),
	)

	// Validate before any mutation occurs.
	if ps := fileutil.ValidatePath(root); ps != fileutil.PathOK {
		report.Status = statusFromPath(ps)
		logger.Error("root validation failed", logging.String("status", string(report.Status)))
		return report
	}

	logger.Info("organize run started")

	// Explicit LIFO stack instead of recursion: safe on arbitrarily deep
	// trees, and the most recently discovered directory is processed next.
	stack := []string{root}
	for len(stack) > 0 {
		dir := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		report.DirsVisited++

		report.FoldersRenamed += len(o.aliases.NormalizeLevel(dir, logger))

		entries, err := os.ReadDir(dir)
		if err != nil {
			report.Status = statusFromPath(fileutil.ValidatePath(dir))
			if report.Status == StatusSuccess {
				report.Status = StatusUnknownError
			}
			logger.Error("directory listing failed",
				logging.String("dir", dir), logging.Error(err))
			return report
		}

		for _, entry := range entries {
			name := entry.Name()
			path := filepath.Join(dir, name)
			switch {
			case entry.IsDir():
				if !strings.HasPrefix(name, ".") {
					stack = append(stack, path)
				}
			case entry.Type().IsRegular():
				switch status := o.placeFile(dir, path, mode, logger); status {
				case statusAlreadyInPlace:
					report.FilesInPlace++
				case StatusSuccess:
					report.FilesMoved++
				default:
					// Fail fast: abandon the rest of the stack.
					report.Status = status
					logger.Error("organize run aborted",
						logging.String("file", path),
						logging.String("status", string(status)))
					return report
				}
			}
		}
	}

	report.Status = StatusSuccess
	logger.Info("organize run completed",
		logging.Int("files_moved", report.FilesMoved),
		logging.Int("files_in_place", report.FilesInPlace),
		logging.Int("folders_renamed", report.FoldersRenamed),
		logging.Int("dirs_visited", report.DirsVisited))
	return report
}

// placeFile decides where the file at path belongs and moves it there. The
// level directory's own name drives the decision: files already inside their
// category folder (or a recognized alias of it) stay put, and files inside
// the wrong category folder are evicted outward to a sibling category folder
// rather than buried one level deeper.
func (o *Organizer) placeFile(levelDir, path string, mode Mode, logger *slog.Logger) Status {
	category := o.table.Classify(path)
	parentName := filepath.Base(levelDir)

	if parentName == category {
		return statusAlreadyInPlace
	}
	canonical, isAlias := o.aliases.Canonical(parentName)
	if isAlias && canonical == category {
		return statusAlreadyInPlace
	}

	base := levelDir
	if (o.table.IsCategory(parentName) && parentName != category) ||
		(isAlias && canonical != category) {
		base = filepath.Dir(levelDir)
	}
	destDir := filepath.Join(base, category)

	switch created := fileutil.EnsureDirectory(destDir); created {
	case fileutil.DirAlreadyExists, fileutil.DirCreated:
	case fileutil.DirPermissionDenied:
		return StatusPermissionDenied
	default:
		return StatusDirectoryCreationFailed
	}

	var transferred fileutil.TransferStatus
	if mode == ModeFallback {
		transferred = fileutil.FallbackTransfer(path, destDir)
	} else {
		transferred = fileutil.AtomicTransfer(path, destDir)
	}

	switch transferred {
	case fileutil.TransferOK:
		logger.Debug("file relocated",
			logging.String("file", path),
			logging.String("category", category),
			logging.String("dest_dir", destDir))
		return StatusSuccess
	case fileutil.TransferPermissionDenied:
		return StatusPermissionDenied
	case fileutil.TransferCrossDevice:
		return StatusAtomicTransferFailed
	default:
		if mode == ModeFallback {
			return StatusFallbackTransferFailed
		}
		return StatusUnknownError
	}
}
