package fileutil

import (
	"os"
	"path/filepath"
	"syscall"
	"testing"
)

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(contents), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}

func TestValidatePath(t *testing.T) {
	root := t.TempDir()

	if got := ValidatePath(root); got != PathOK {
		t.Fatalf("ValidatePath(dir) = %v, want ok", got)
	}
	if got := ValidatePath(filepath.Join(root, "missing")); got != PathNotFound {
		t.Fatalf("ValidatePath(missing) = %v, want not_found", got)
	}

	file := filepath.Join(root, "plain.txt")
	writeFile(t, file, "x")
	if got := ValidatePath(file); got != PathNotDirectory {
		t.Fatalf("ValidatePath(file) = %v, want not_a_directory", got)
	}
}

func TestValidatePathPermissionDenied(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission bits do not apply to root")
	}
	root := t.TempDir()
	locked := filepath.Join(root, "locked")
	if err := os.Mkdir(locked, 0o000); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chmod(locked, 0o755) })

	if got := ValidatePath(locked); got != PathPermissionDenied {
		t.Fatalf("ValidatePath(locked) = %v, want permission_denied", got)
	}
}

func TestEnsureDirectoryIdempotent(t *testing.T) {
	root := t.TempDir()
	target := filepath.Join(root, "PDF Files")

	if got := EnsureDirectory(target); got != DirCreated {
		t.Fatalf("first EnsureDirectory = %v, want created", got)
	}
	if got := EnsureDirectory(target); got != DirAlreadyExists {
		t.Fatalf("second EnsureDirectory = %v, want already_exists", got)
	}
}

func TestUniqueDestinationProbesCounters(t *testing.T) {
	root := t.TempDir()

	got, err := UniqueDestination(root, "photo.jpg")
	if err != nil {
		t.Fatalf("UniqueDestination: %v", err)
	}
	if got != filepath.Join(root, "photo.jpg") {
		t.Fatalf("free name must be returned unchanged, got %q", got)
	}

	writeFile(t, filepath.Join(root, "photo.jpg"), "a")
	writeFile(t, filepath.Join(root, "photo(1).jpg"), "b")

	got, err = UniqueDestination(root, "photo.jpg")
	if err != nil {
		t.Fatalf("UniqueDestination: %v", err)
	}
	if got != filepath.Join(root, "photo(2).jpg") {
		t.Fatalf("UniqueDestination = %q, want photo(2).jpg", got)
	}
}

func TestUniqueDestinationNoExtension(t *testing.T) {
	root := t.TempDir()
	writeFile(t, filepath.Join(root, "README"), "a")

	got, err := UniqueDestination(root, "README")
	if err != nil {
		t.Fatalf("UniqueDestination: %v", err)
	}
	if got != filepath.Join(root, "README(1)") {
		t.Fatalf("UniqueDestination = %q, want README(1)", got)
	}
}

func TestAtomicTransferMovesWithoutOverwrite(t *testing.T) {
	root := t.TempDir()
	destDir := filepath.Join(root, "Image Files")
	if err := os.Mkdir(destDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	writeFile(t, filepath.Join(destDir, "photo.jpg"), "existing")
	source := filepath.Join(root, "photo.jpg")
	writeFile(t, source, "incoming")

	if got := AtomicTransfer(source, destDir); got != TransferOK {
		t.Fatalf("AtomicTransfer = %v, want success", got)
	}
	if _, err := os.Stat(source); !os.IsNotExist(err) {
		t.Fatalf("source must be gone after transfer, stat err = %v", err)
	}
	moved, err := os.ReadFile(filepath.Join(destDir, "photo(1).jpg"))
	if err != nil || string(moved) != "incoming" {
		t.Fatalf("collision copy wrong: %q, %v", moved, err)
	}
	kept, err := os.ReadFile(filepath.Join(destDir, "photo.jpg"))
	if err != nil || string(kept) != "existing" {
		t.Fatalf("existing file must never be overwritten: %q, %v", kept, err)
	}
}

func TestAtomicTransferCrossDevice(t *testing.T) {
	root := t.TempDir()
	source := filepath.Join(root, "clip.mkv")
	writeFile(t, source, "video")

	restore := SetRenameForTests(func(oldpath, newpath string) error {
		return &os.LinkError{Op: "rename", Old: oldpath, New: newpath, Err: syscall.EXDEV}
	})
	defer restore()

	if got := AtomicTransfer(source, root); got != TransferCrossDevice {
		t.Fatalf("AtomicTransfer = %v, want cross_device", got)
	}
	if _, err := os.Stat(source); err != nil {
		t.Fatalf("source must survive a failed rename: %v", err)
	}
}

func TestFallbackTransferCopiesThenDeletes(t *testing.T) {
	root := t.TempDir()
	destDir := filepath.Join(root, "Video Files")
	if err := os.Mkdir(destDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	source := filepath.Join(root, "clip.mkv")
	writeFile(t, source, "payload")

	if got := FallbackTransfer(source, destDir); got != TransferOK {
		t.Fatalf("FallbackTransfer = %v, want success", got)
	}
	if _, err := os.Stat(source); !os.IsNotExist(err) {
		t.Fatalf("source must be removed after verified copy, stat err = %v", err)
	}
	moved, err := os.ReadFile(filepath.Join(destDir, "clip.mkv"))
	if err != nil || string(moved) != "payload" {
		t.Fatalf("copied bytes wrong: %q, %v", moved, err)
	}
}

func TestFallbackTransferLeavesSourceOnCopyFailure(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission bits do not apply to root")
	}
	root := t.TempDir()
	destDir := filepath.Join(root, "readonly")
	if err := os.Mkdir(destDir, 0o555); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chmod(destDir, 0o755) })
	source := filepath.Join(root, "doc.pdf")
	writeFile(t, source, "payload")

	if got := FallbackTransfer(source, destDir); got != TransferPermissionDenied {
		t.Fatalf("FallbackTransfer = %v, want permission_denied", got)
	}
	contents, err := os.ReadFile(source)
	if err != nil || string(contents) != "payload" {
		t.Fatalf("source must be untouched after failed copy: %q, %v", contents, err)
	}
}

func TestCopyFileVerified(t *testing.T) {
	root := t.TempDir()
	src := filepath.Join(root, "src.bin")
	dst := filepath.Join(root, "dst.bin")
	writeFile(t, src, "some bytes worth verifying")

	if err := CopyFileVerified(src, dst); err != nil {
		t.Fatalf("CopyFileVerified: %v", err)
	}
	got, err := os.ReadFile(dst)
	if err != nil || string(got) != "some bytes worth verifying" {
		t.Fatalf("copied contents wrong: %q, %v", got, err)
	}
}

func TestCopyFileVerifiedMissingSource(t *testing.T) {
	root := t.TempDir()
	if err := CopyFileVerified(filepath.Join(root, "nope"), filepath.Join(root, "dst")); err == nil {
		t.Fatal("expected error for missing source")
	}
}
