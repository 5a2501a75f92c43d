package classify_test

import (
	"testing"

	"manila/internal/classify"
)

func TestClassifyKnownExtensions(t *testing.T) {
	table := classify.Default()

	cases := map[string]string{
		"/home/user/photo.jpg":    "Image Files",
		"clip.mkv":                "Video Files",
		"song.flac":               "Audio Files",
		"notes.txt":               "Text Files",
		"manual.pdf":              "PDF Files",
		"report.docx":             "Word Files",
		"app.py":                  "Python Files",
		"main.go":                 "Go Files",
		"schema.sql":              "Database Files",
		"backup.zip":              "Archive Files",
		"installer.msi":           "Executable Files",
		"libfoo.so":               "Library Files",
		"settings.ini":            "Config Files",
		"/deep/nested/data.yaml":  "Data Files",
		"/deep/nested/index.html": "Web Files",
	}
	for path, want := range cases {
		if got := table.Classify(path); got != want {
			t.Fatalf("Classify(%q) = %q, want %q", path, got, want)
		}
	}
}

func TestClassifyCaseInsensitive(t *testing.T) {
	table := classify.Default()

	if got := table.Classify("IMG.JPG"); got != "Image Files" {
		t.Fatalf("Classify(IMG.JPG) = %q, want Image Files", got)
	}
	if table.Classify("IMG.JPG") != table.Classify("img.jpg") {
		t.Fatal("classification must not depend on extension case")
	}
	if got := table.Classify("Movie.MkV"); got != "Video Files" {
		t.Fatalf("Classify(Movie.MkV) = %q, want Video Files", got)
	}
}

func TestClassifyFinalSuffixOnly(t *testing.T) {
	table := classify.Default()

	// Only the final suffix participates; "tar.gz" is never consulted as a
	// compound extension.
	if got := table.Classify("archive.tar.gz"); got != "Archive Files" {
		t.Fatalf("Classify(archive.tar.gz) = %q, want Archive Files", got)
	}
	if got := table.Classify("report.final.pdf"); got != "PDF Files" {
		t.Fatalf("Classify(report.final.pdf) = %q, want PDF Files", got)
	}
}

func TestClassifyFallsBackToOthers(t *testing.T) {
	table := classify.Default()

	for _, path := range []string{
		"README",
		"noext.",
		"file.xyzunknown",
		".bashrc",
		"/tmp/.hidden",
	} {
		if got := table.Classify(path); got != classify.Others {
			t.Fatalf("Classify(%q) = %q, want %q", path, got, classify.Others)
		}
	}
}

func TestCanonicalSetDerivedFromExtensionMap(t *testing.T) {
	table := classify.Default()

	for _, category := range table.Categories() {
		if !table.IsCategory(category) {
			t.Fatalf("category %q missing from canonical set", category)
		}
		if len(table.Extensions(category)) == 0 {
			t.Fatalf("category %q has no extensions", category)
		}
	}
	if table.IsCategory(classify.Others) {
		t.Fatal("Others must never be canonical")
	}
	if table.IsCategory("image files") {
		t.Fatal("canonical matching is exact-case")
	}
}

func TestNewTableSubstitution(t *testing.T) {
	table := classify.NewTable(map[string][]string{
		"Scans": {"tif"},
	})

	if got := table.Classify("page.tif"); got != "Scans" {
		t.Fatalf("Classify(page.tif) = %q, want Scans", got)
	}
	if got := table.Classify("page.jpg"); got != classify.Others {
		t.Fatalf("substituted table must not know jpg, got %q", got)
	}
	if !table.IsCategory("Scans") || table.IsCategory("Image Files") {
		t.Fatal("canonical set must reflect only the substituted table")
	}
}
