// Package classify maps file extensions to canonical category folder names.
//
// The category table is the single source of truth for supported file types:
// adding an extension there is the only change needed to teach the rest of
// the system about it. The derived extension index and canonical-name set are
// built once and shared read-only, so lookups stay O(1) and the classifier
// never drifts out of sync with the folder names the organizer creates.
//
// Unknown or missing extensions resolve to the Others sentinel, which is a
// valid destination folder but never a canonical category.
package classify
