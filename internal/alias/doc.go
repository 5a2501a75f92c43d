// Package alias recognizes user-created folder names as shorthand for
// canonical categories and normalizes them in place.
//
// Users name folders "pics", "camera roll", or "screenshots" instead of
// "Image Files". The registry keeps a large per-category synonym table plus a
// reverse index, and NormalizeLevel promotes at most one alias folder per
// category per directory level to its canonical name. Normalization never
// creates folders, never merges folders, and treats rename failures as
// advisory; everything it declines to rename is cleaned in place by the
// organizer instead.
package alias
