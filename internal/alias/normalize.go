package alias

import (
	"log/slog"
	"os"
	"path/filepath"

	"manila/internal/logging"
)

// Rename records one alias folder promotion performed by NormalizeLevel.
type Rename struct {
	From string
	To   string
}

// NormalizeLevel promotes alias folders among the immediate subdirectories
// of dir to their canonical category names. For each category only the first
// matching alias in directory-listing order is renamed; later aliases keep
// their user-given names and are cleaned in place by the organizer.
//
// Normalization is advisory: it never creates or merges folders, and any
// failure (unreadable level, rename refused by the OS, canonical name
// already taken) is swallowed so the walk can continue. The returned slice
// lists the renames that actually happened.
func (r *Registry) NormalizeLevel(dir string, logger *slog.Logger) []Rename {
	if logger == nil {
		logger = logging.NewNop()
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		logger.Debug("skipping normalization of unreadable level",
			logging.String("dir", dir), logging.Error(err))
		return nil
	}

	promoted := make(map[string]string)
	order := make([]string, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		name := entry.Name()
		if r.table.IsCategory(name) {
			continue
		}
		category, ok := r.Canonical(name)
		if !ok {
			continue
		}
		if _, seen := promoted[category]; seen {
			continue
		}
		promoted[category] = name
		order = append(order, category)
	}

	renames := make([]Rename, 0, len(order))
	for _, category := range order {
		name := promoted[category]
		if name == category {
			continue
		}
		from := filepath.Join(dir, name)
		to := filepath.Join(dir, category)
		if _, err := os.Lstat(to); err == nil {
			// A canonical folder already occupies the name; renaming over it
			// would merge two folders.
			logger.Debug("alias folder rename skipped",
				logging.String("from", from),
				logging.String("to", to),
				logging.String("reason", "canonical folder already exists"))
			continue
		}
		if err := os.Rename(from, to); err != nil {
			logger.Debug("alias folder rename skipped",
				logging.String("from", from),
				logging.String("to", to),
				logging.Error(err))
			continue
		}
		logger.Info("alias folder normalized",
			logging.String("from", name),
			logging.String("to", category),
			logging.String("dir", dir))
		renames = append(renames, Rename{From: from, To: to})
	}
	return renames
}
