package main

import (
	"bytes"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"manila/internal/logging"
	"manila/internal/organizer"
	"manila/internal/testsupport"
)

func TestRunOrganizeMovesFilesAndReports(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	root := t.TempDir()
	testsupport.WriteTree(t, root, map[string]string{
		"photo.jpg":  "jpg",
		"report.pdf": "pdf",
	})

	var out bytes.Buffer
	err := runOrganize(&out, logging.NewNop(), cfg, root, organizer.ModeAtomic, false)
	if err != nil {
		t.Fatalf("runOrganize: %v", err)
	}

	got := testsupport.ReadTree(t, root)
	want := []string{
		"Image Files/",
		"Image Files/photo.jpg",
		"PDF Files/",
		"PDF Files/report.pdf",
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("tree = %v, want %v", got, want)
	}

	rendered := out.String()
	if !strings.Contains(rendered, "success") {
		t.Fatalf("output missing run status: %q", rendered)
	}
	if !strings.Contains(rendered, "Files moved") {
		t.Fatalf("output missing summary table: %q", rendered)
	}
}

func TestRunOrganizeReportsFailureAsError(t *testing.T) {
	cfg := testsupport.NewConfig(t)
	missing := filepath.Join(t.TempDir(), "absent")

	var out bytes.Buffer
	err := runOrganize(&out, logging.NewNop(), cfg, missing, organizer.ModeAtomic, false)
	if err == nil {
		t.Fatal("expected error for missing root")
	}
	if !strings.Contains(err.Error(), "path_not_found") {
		t.Fatalf("err = %v, want path_not_found", err)
	}
}

func TestLockPathStablePerRoot(t *testing.T) {
	lockDir := t.TempDir()
	first := lockPath(lockDir, "/data/inbox")
	second := lockPath(lockDir, "/data/inbox")
	other := lockPath(lockDir, "/data/archive")

	if first != second {
		t.Fatalf("lock path not stable: %s vs %s", first, second)
	}
	if first == other {
		t.Fatalf("distinct roots share lock path %s", first)
	}
	if filepath.Dir(first) != lockDir {
		t.Fatalf("lock path %s not under %s", first, lockDir)
	}
}

func TestCategoriesCommandListsKnownCategories(t *testing.T) {
	cmd := newCategoriesCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)

	if err := cmd.RunE(cmd, nil); err != nil {
		t.Fatalf("categories: %v", err)
	}
	for _, want := range []string{"Image Files", "PDF Files", "jpg"} {
		if !strings.Contains(out.String(), want) {
			t.Fatalf("output missing %q: %q", want, out.String())
		}
	}
}

func TestAliasesCommandListsAliases(t *testing.T) {
	cmd := newAliasesCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)

	if err := cmd.RunE(cmd, nil); err != nil {
		t.Fatalf("aliases: %v", err)
	}
	if !strings.Contains(out.String(), "photos") {
		t.Fatalf("output missing alias listing: %q", out.String())
	}
}

func TestResolveVersionFallsBack(t *testing.T) {
	if got := resolveVersion(); got == "" {
		t.Fatal("resolveVersion returned empty string")
	}
}
