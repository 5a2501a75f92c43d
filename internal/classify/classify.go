package classify

import (
	"path/filepath"
	"sort"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Others is the sentinel category for files whose extension is unknown or
// absent. It is a valid destination folder name but never a canonical
// category: it has no extensions and no aliases of its own.
const Others = "Others"

// categoryExtensions maps each canonical category name to the extensions it
// owns. Extensions are stored lowercase without the leading dot. To support a
// new file type, add it here; every derived index updates automatically.
var categoryExtensions = map[string][]string{
	"Image Files": {
		"jpg", "jpeg", "png", "gif", "bmp", "webp",
		"tiff", "svg", "ico", "heic",
	},
	"Video Files": {
		"mp4", "mkv", "avi", "mov", "wmv", "flv",
		"webm", "mpeg", "mpg", "3gp", "m4v",
	},
	"Audio Files": {
		"mp3", "wav", "aac", "flac", "ogg",
		"m4a", "wma", "opus", "aiff",
	},
	"Text Files":       {"txt", "md", "log", "rtf", "nfo"},
	"PDF Files":        {"pdf"},
	"Word Files":       {"doc", "docx"},
	"Excel Files":      {"xls", "xlsx"},
	"PowerPoint Files": {"ppt", "pptx"},
	"C Files":          {"c"},
	"C++ Files":        {"cpp", "cc", "cxx"},
	"Header Files":     {"h", "hpp", "hh", "hxx"},
	"Java Files":       {"java"},
	"Python Files":     {"py"},
	"JavaScript Files": {"js"},
	"TypeScript Files": {"ts"},
	"Web Files":        {"html", "css", "scss"},
	"Shell Scripts":    {"sh"},
	"Go Files":         {"go"},
	"Rust Files":       {"rs"},
	"PHP Files":        {"php"},
	"Data Files":       {"csv", "json", "xml", "yaml", "yml"},
	"Database Files":   {"sql", "db", "sqlite", "sqlite3", "mdb"},
	"Archive Files":    {"zip", "rar", "7z", "tar", "gz", "bz2", "xz", "tgz"},
	"Executable Files": {"exe", "msi", "bin", "app", "apk"},
	"Library Files":    {"dll", "so", "dylib", "a", "lib"},
	"Config Files":     {"ini", "conf", "cfg", "env"},
}

// Table holds the classification data and its derived indexes. Instances are
// immutable after construction and safe for concurrent readers.
type Table struct {
	extensions map[string][]string
	byExt      map[string]string
	canonical  map[string]struct{}
	fold       cases.Caser
}

var (
	defaultOnce  sync.Once
	defaultTable *Table
)

// Default returns the process-wide table built from the compiled-in category
// data. The derived indexes are constructed once, before any traversal uses
// them.
func Default() *Table {
	defaultOnce.Do(func() {
		defaultTable = NewTable(categoryExtensions)
	})
	return defaultTable
}

// NewTable builds a table from the given category→extensions mapping. The
// canonical-name set is derived from the map keys rather than maintained by
// hand, so the two can never disagree. Intended for tests that substitute a
// small category table.
func NewTable(extensions map[string][]string) *Table {
	t := &Table{
		extensions: make(map[string][]string, len(extensions)),
		byExt:      make(map[string]string),
		canonical:  make(map[string]struct{}, len(extensions)),
		fold:       cases.Lower(language.Und),
	}
	for category, exts := range extensions {
		owned := make([]string, len(exts))
		copy(owned, exts)
		sort.Strings(owned)
		t.extensions[category] = owned
		t.canonical[category] = struct{}{}
		for _, ext := range exts {
			t.byExt[t.fold.String(ext)] = category
		}
	}
	return t
}

// Classify returns the category for the file at path, based solely on the
// final extension of the last path component. Matching is case-insensitive.
// Multi-dot names use only the final suffix ("archive.tar.gz" classifies by
// "gz"), and a name whose only dot is the leading one (".bashrc") has no
// extension; both fall back to Others when unmapped.
func (t *Table) Classify(path string) string {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	if ext == "" || ext == base {
		return Others
	}
	if category, ok := t.byExt[t.fold.String(ext[1:])]; ok {
		return category
	}
	return Others
}

// IsCategory reports whether name is a canonical category name, matched
// exactly as it appears on disk.
func (t *Table) IsCategory(name string) bool {
	_, ok := t.canonical[name]
	return ok
}

// Categories returns the canonical category names in sorted order.
func (t *Table) Categories() []string {
	names := make([]string, 0, len(t.canonical))
	for name := range t.canonical {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Extensions returns the extensions owned by category, sorted, or nil when
// the category is unknown.
func (t *Table) Extensions(category string) []string {
	exts, ok := t.extensions[category]
	if !ok {
		return nil
	}
	out := make([]string, len(exts))
	copy(out, exts)
	return out
}
