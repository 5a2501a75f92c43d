// Package organizer walks a directory tree and moves files into category
// folders while preserving user-created structure.
//
// The walk is iterative: an explicit stack of pending directories replaces
// recursion so arbitrarily deep trees never touch the call stack. Each level
// is normalized first (alias folders promoted to canonical names), then every
// regular file is classified and, when misplaced, relocated through the path
// safety layer. Files already in their category folder, or in a recognized
// alias of it, are skipped; the whole run is therefore idempotent by
// construction.
//
// Any per-file failure other than "already correct" aborts the run with a
// terminal status. Partial reorganization is considered less safe than
// stopping and reporting.
package organizer
