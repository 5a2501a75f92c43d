// Package fileutil is the path safety layer: every filesystem mutation the
// organizer performs goes through here, and no raw OS error escapes past it.
// Operations report typed statuses so callers can distinguish permission
// failures, cross-device boundaries, and genuinely unknown faults.
package fileutil

import (
	"bytes"
	"crypto/sha256"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/sys/unix"
)

// PathStatus is the outcome of validating a root path.
type PathStatus int

const (
	PathOK PathStatus = iota
	PathNotFound
	PathNotDirectory
	PathPermissionDenied
	PathUnknown
)

func (s PathStatus) String() string {
	switch s {
	case PathOK:
		return "ok"
	case PathNotFound:
		return "not_found"
	case PathNotDirectory:
		return "not_a_directory"
	case PathPermissionDenied:
		return "permission_denied"
	default:
		return "unknown"
	}
}

// ValidatePath checks that path exists, is a directory, and can actually be
// traversed. Existence and accessibility are different failure dimensions:
// the traversal probe opens the directory and reads an entry instead of
// trusting a bare stat.
func ValidatePath(path string) PathStatus {
	info, err := os.Stat(path)
	if err != nil {
		switch {
		case errors.Is(err, fs.ErrNotExist):
			return PathNotFound
		case errors.Is(err, fs.ErrPermission):
			return PathPermissionDenied
		default:
			return PathUnknown
		}
	}
	if !info.IsDir() {
		return PathNotDirectory
	}

	dir, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrPermission) {
			return PathPermissionDenied
		}
		return PathUnknown
	}
	defer dir.Close()
	if _, err := dir.Readdirnames(1); err != nil && !errors.Is(err, io.EOF) {
		if errors.Is(err, fs.ErrPermission) {
			return PathPermissionDenied
		}
		return PathUnknown
	}
	return PathOK
}

// CreateStatus is the outcome of ensuring a directory exists.
type CreateStatus int

const (
	DirAlreadyExists CreateStatus = iota
	DirCreated
	DirPermissionDenied
	DirUnknown
)

func (s CreateStatus) String() string {
	switch s {
	case DirAlreadyExists:
		return "already_exists"
	case DirCreated:
		return "created"
	case DirPermissionDenied:
		return "permission_denied"
	default:
		return "unknown"
	}
}

// EnsureDirectory creates path as a directory if it does not already exist.
// An existing directory is success, not an error.
func EnsureDirectory(path string) CreateStatus {
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return DirAlreadyExists
	}
	err := os.Mkdir(path, 0o755)
	switch {
	case err == nil:
		return DirCreated
	case errors.Is(err, fs.ErrExist):
		return DirAlreadyExists
	case errors.Is(err, fs.ErrPermission):
		return DirPermissionDenied
	default:
		return DirUnknown
	}
}

// UniqueDestination returns a path inside dir for filename that no existing
// entry occupies. On collision the name is probed as stem(1).ext, stem(2).ext
// and so on, with no upper bound: the counter grows until a gap is found.
func UniqueDestination(dir, filename string) (string, error) {
	target := filepath.Join(dir, filename)
	if _, err := os.Lstat(target); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return target, nil
		}
		return "", fmt.Errorf("probe destination %q: %w", target, err)
	}

	ext := filepath.Ext(filename)
	stem := strings.TrimSuffix(filename, ext)
	for counter := 1; ; counter++ {
		candidate := filepath.Join(dir, stem+"("+strconv.Itoa(counter)+")"+ext)
		_, err := os.Lstat(candidate)
		if errors.Is(err, fs.ErrNotExist) {
			return candidate, nil
		}
		if err != nil {
			return "", fmt.Errorf("probe destination %q: %w", candidate, err)
		}
	}
}

// TransferStatus is the outcome of moving one file.
type TransferStatus int

const (
	TransferOK TransferStatus = iota
	TransferPermissionDenied
	TransferCrossDevice
	TransferUnknown
)

func (s TransferStatus) String() string {
	switch s {
	case TransferOK:
		return "success"
	case TransferPermissionDenied:
		return "permission_denied"
	case TransferCrossDevice:
		return "cross_device"
	default:
		return "unknown"
	}
}

// renameFile is swapped out in tests to simulate cross-device failures.
var renameFile = os.Rename

// SetRenameForTests replaces the rename primitive and returns a restore
// function.
func SetRenameForTests(fn func(oldpath, newpath string) error) func() {
	prev := renameFile
	renameFile = fn
	return func() { renameFile = prev }
}

// AtomicTransfer moves source into destDir with a same-device rename. The
// destination name is collision-free, and the rename is all-or-nothing: the
// file is either fully at the new location or untouched at the old one. A
// rename that crosses a device boundary reports TransferCrossDevice so the
// caller can retry with FallbackTransfer.
func AtomicTransfer(source, destDir string) TransferStatus {
	dest, err := UniqueDestination(destDir, filepath.Base(source))
	if err != nil {
		return classifyTransferError(err)
	}
	if err := renameFile(source, dest); err != nil {
		return classifyTransferError(err)
	}
	return TransferOK
}

// FallbackTransfer moves source into destDir by copying the bytes and
// deleting the source only after the copy verified complete. On any copy
// failure the source is left untouched.
func FallbackTransfer(source, destDir string) TransferStatus {
	dest, err := UniqueDestination(destDir, filepath.Base(source))
	if err != nil {
		return classifyTransferError(err)
	}
	if err := CopyFileVerified(source, dest); err != nil {
		return classifyTransferError(err)
	}
	if err := os.Remove(source); err != nil {
		return classifyTransferError(err)
	}
	return TransferOK
}

func classifyTransferError(err error) TransferStatus {
	switch {
	case errors.Is(err, fs.ErrPermission):
		return TransferPermissionDenied
	case isCrossDevice(err):
		return TransferCrossDevice
	default:
		return TransferUnknown
	}
}

func isCrossDevice(err error) bool {
	var linkErr *os.LinkError
	if errors.As(err, &linkErr) {
		return errors.Is(linkErr.Err, unix.EXDEV)
	}
	return errors.Is(err, unix.EXDEV)
}

// CopyFileVerified streams src to dst with SHA-256 + size integrity
// verification. Removes dst on any failure so a broken copy never survives.
func CopyFileVerified(src, dst string) error {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("stat source: %w", err)
	}
	srcSize := srcInfo.Size()

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer func() {
		_ = out.Close()
	}()

	srcHasher := sha256.New()
	dstHasher := sha256.New()
	tee := io.TeeReader(in, srcHasher)
	multi := io.MultiWriter(out, dstHasher)

	written, err := io.Copy(multi, tee)
	if err != nil {
		_ = os.Remove(dst)
		return err
	}
	if err := out.Close(); err != nil {
		_ = os.Remove(dst)
		return err
	}

	if written != srcSize {
		_ = os.Remove(dst)
		return fmt.Errorf("copy size mismatch: source %d bytes, copied %d bytes", srcSize, written)
	}

	if !bytes.Equal(srcHasher.Sum(nil), dstHasher.Sum(nil)) {
		_ = os.Remove(dst)
		return fmt.Errorf("copy hash mismatch: file corrupted during copy")
	}

	return nil
}
