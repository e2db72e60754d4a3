package fileset

import (
	"time"
)

// File is one discovered regular file. Path is mutated when the file is
// marked duplicate; Size and CreatedTime are fixed at discovery.
type File struct {
	Path        string
	Size        int64
	CreatedTime time.Time

	// hash is the memoized sha-256 hex digest, computed at most once.
	hash string
}

// Set owns the discovered files for the duration of a run. Files are
// reordered by Sort and mutated by MarkDuplicates, never removed.
type Set struct {
	Files []*File

	// Existing counts files excluded at discovery because they already
	// carried the duplicate extension.
	Existing int
	// Skipped counts files excluded by ignore patterns or skip filters.
	Skipped int

	reporter Reporter
}
