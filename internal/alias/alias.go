package alias

import (
	"sort"
	"sync"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"manila/internal/classify"
)

// categoryAliases maps each canonical category to the folder names accepted
// as user shorthand for it. Aliases are stored lowercase; lookups fold the
// candidate before probing. A canonical name must never appear here as an
// alias of another category, and no alias may belong to two categories.
var categoryAliases = map[string][]string{
	"Image Files": {
		"img", "imgs", "image", "images", "pic", "pics", "picture", "pictures", "photo", "photos",
		"photography", "camera", "camera roll", "gallery", "photo gallery", "screenshots", "wallpapers",
		"backgrounds", "portraits", "landscapes", "selfies", "family photos", "vacation photos",
		"travel photos", "event photos", "wedding photos", "birthday photos", "nature photos",
		"street photos", "raw images", "edited photos", "final images", "scans", "prints", "artwork",
		"illustrations", "graphics", "icons", "logos", "thumbnails", "references", "inspiration", "concept art",
	},
	"Video Files": {
		"video", "videos", "vid", "vids", "movie", "movies", "films", "clips", "recordings", "lectures",
		"screen captures", "tutorial videos", "courses", "vlogs", "reels", "shorts", "vacation videos",
		"travel videos", "family videos", "event videos", "wedding videos", "gameplay", "walkthroughs",
		"streams", "webinars", "meetings recordings", "interviews", "trailers", "screen recordings",
		"edits", "final cuts", "raw footage", "b roll", "montage", "highlights", "dashcam",
		"timelapse", "slow motion", "drone footage",
	},
	"Audio Files": {
		"audio", "audios", "music", "songs", "tracks", "albums", "playlist", "playlists", "podcast",
		"audiobooks", "voice notes", "voice recordings", "lectures audio", "interviews audio", "sfx",
		"meetings audio", "sound effects", "background music", "instrumentals", "beats", "loops",
		"samples", "live recordings", "concerts", "practice", "rehearsals", "demos",
		"draft mixes", "final mixes", "masters", "exports", "ringtones", "notifications",
		"alarms", "ambient sounds", "nature sounds", "podcasts",
	},
	"Text Files": {
		"text", "texts", "text files", "txt files", "notes", "plain text", "logs", "markdown",
		"readme", "documentation", "draft notes",
	},
	"PDF Files": {
		"pdf", "pdfs", "pdf files", "documents pdf", "manuals pdf", "ebooks", "reports pdf",
		"invoices pdf", "statements pdf", "scanned pdfs",
	},
	"Word Files": {
		"word", "word files", "documents word", "doc files", "docx files", "letters", "reports word",
		"essays", "assignments", "resumes", "cover letters",
	},
	"Excel Files": {
		"excel", "excel files", "spreadsheets", "sheets", "financial sheets", "budgets", "expenses",
		"accounts", "tracking sheets", "reports excel", "tables",
	},
	"PowerPoint Files": {
		"powerpoint", "powerpoint files", "presentations", "slides", "ppt files", "pptx files",
		"pitch decks", "lecture slides", "meeting slides",
	},
	"C Files": {
		"c", "c files", "c source", "c language", "c programs",
	},
	"C++ Files": {
		"cpp", "c++", "cplusplus", "cpp files", "c++ source", "c++ programs",
	},
	"Java Files": {
		"java", "java files", "java source", "java programs",
	},
	"Python Files": {
		"python", "python files", "python source", "py scripts", "python programs", "python scripts",
	},
	"JavaScript Files": {
		"javascript", "javascript files", "js files", "js source",
	},
	"TypeScript Files": {
		"typescript", "typescript files", "ts files", "ts source",
	},
	"Web Files": {
		"web", "web files", "html files", "css files", "frontend", "frontend files",
	},
	"Shell Scripts": {
		"shell", "shell scripts", "bash scripts", "terminal scripts",
	},
	"Go Files": {
		"go", "golang", "go files", "go source", "go programs",
	},
	"Rust Files": {
		"rust", "rust files", "rust source", "rs files", "rust programs",
	},
	"PHP Files": {
		"php", "php files", "php source", "php scripts",
	},
	"Database Files": {
		"database", "databases", "db", "db files", "sqlite", "sql files",
	},
	"Archive Files": {
		"archive", "archives", "compressed", "compressed files", "zip files", "rar files", "backups",
		"backup archives",
	},
	"Executable Files": {
		"executables", "binaries", "apps", "applications", "programs", "installers",
	},
	"Library Files": {
		"libraries", "libs", "shared libraries", "static libraries",
	},
	"Config Files": {
		"config", "configs", "configuration", "settings", "env files", "environment config",
	},
}

// Registry resolves folder names to canonical categories. Instances are
// immutable after construction and safe for concurrent readers.
type Registry struct {
	table   *classify.Table
	aliases map[string][]string
	byAlias map[string]string
	fold    cases.Caser
}

var (
	defaultOnce     sync.Once
	defaultRegistry *Registry
)

// Default returns the process-wide registry built from the compiled-in alias
// table and the default classification table.
func Default() *Registry {
	defaultOnce.Do(func() {
		defaultRegistry = NewRegistry(classify.Default(), categoryAliases)
	})
	return defaultRegistry
}

// NewRegistry builds a registry over the given classification table and
// category→alias mapping. The reverse index is derived once; aliases are
// stored folded to lowercase. Intended for tests that substitute tables.
func NewRegistry(table *classify.Table, aliases map[string][]string) *Registry {
	r := &Registry{
		table:   table,
		aliases: make(map[string][]string, len(aliases)),
		byAlias: make(map[string]string),
		fold:    cases.Lower(language.Und),
	}
	for category, names := range aliases {
		owned := make([]string, 0, len(names))
		for _, name := range names {
			folded := r.fold.String(name)
			owned = append(owned, folded)
			r.byAlias[folded] = category
		}
		sort.Strings(owned)
		r.aliases[category] = owned
	}
	return r
}

// Canonical resolves a folder name to its canonical category. Matching is
// case-insensitive; exact canonical names are not aliases and report false.
func (r *Registry) Canonical(folderName string) (string, bool) {
	category, ok := r.byAlias[r.fold.String(folderName)]
	return category, ok
}

// Aliases returns the sorted alias list for category, or nil when the
// category has none.
func (r *Registry) Aliases(category string) []string {
	names, ok := r.aliases[category]
	if !ok {
		return nil
	}
	out := make([]string, len(names))
	copy(out, names)
	return out
}

// Categories returns the categories that carry aliases, sorted.
func (r *Registry) Categories() []string {
	names := make([]string, 0, len(r.aliases))
	for name := range r.aliases {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Table returns the classification table the registry was built over.
func (r *Registry) Table() *classify.Table {
	return r.table
}
