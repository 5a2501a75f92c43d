package organizer

import (
	"fmt"

	"manila/internal/fileutil"
)

// Status is the terminal outcome of one organize run. Exactly one status is
// produced per run; there is no partial "some files succeeded" outcome.
type Status string

const (
	StatusSuccess                 Status = "success"
	StatusPathNotFound            Status = "path_not_found"
	StatusNotADirectory           Status = "not_a_directory"
	StatusPermissionDenied        Status = "permission_denied"
	StatusDirectoryCreationFailed Status = "directory_creation_failed"
	StatusAtomicTransferFailed    Status = "atomic_transfer_failed"
	StatusFallbackTransferFailed  Status = "fallback_transfer_failed"
	StatusUnknownError            Status = "unknown_error"
)

// statusAlreadyInPlace is a per-file short-circuit: the file needs no move.
// It never surfaces as a run-level status.
const statusAlreadyInPlace Status = "already_in_correct_location"

// OK reports whether the run completed without failure.
func (s Status) OK() bool {
	return s == StatusSuccess
}

// Recoverable reports whether re-running the same root in fallback mode can
// succeed. Only a cross-device failure under atomic mode qualifies.
func (s Status) Recoverable() bool {
	return s == StatusAtomicTransferFailed
}

// Mode selects the transfer strategy for a run.
type Mode string

const (
	// ModeAtomic moves files with a same-device rename.
	ModeAtomic Mode = "atomic"
	// ModeFallback moves files by copy-verify-delete and works across
	// device boundaries.
	ModeFallback Mode = "fallback"
)

// ParseMode converts a configuration or flag value into a Mode.
func ParseMode(value string) (Mode, error) {
	switch Mode(value) {
	case ModeAtomic:
		return ModeAtomic, nil
	case ModeFallback:
		return ModeFallback, nil
	default:
		return "", fmt.Errorf("transfer mode: unsupported value %q", value)
	}
}

func statusFromPath(ps fileutil.PathStatus) Status {
	switch ps {
	case fileutil.PathOK:
		return StatusSuccess
	case fileutil.PathNotFound:
		return StatusPathNotFound
	case fileutil.PathNotDirectory:
		return StatusNotADirectory
	case fileutil.PathPermissionDenied:
		return StatusPermissionDenied
	default:
		return StatusUnknownError
	}
}
