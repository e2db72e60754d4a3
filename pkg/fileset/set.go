package fileset

import (
	"sort"
)

// DuplicateLog receives one append per newly detected duplicate.
type DuplicateLog interface {
	Append(duplicatePath string, originalPath string) error
}

// Sort orders the set by size then creation time, bringing equal-size files
// adjacent. Ties in both keys may land in either order.
func (s *Set) Sort() {
	sort.SliceStable(s.Files, func(i, j int) bool {
		if s.Files[i].Size != s.Files[j].Size {
			return s.Files[i].Size < s.Files[j].Size
		}
		return s.Files[i].CreatedTime.Before(s.Files[j].CreatedTime)
	})
}

// MarkDuplicates scans the ordered set for content-identical files. For each
// non-duplicate base record, same-size neighbours are compared by sha-256;
// matches are renamed with the duplicate extension and appended to dlog.
// Equal size is only a pre-filter; hashing is deferred until a comparison is
// genuinely needed and each file is hashed at most once. With dryRun set,
// detection and counters run as normal but renames and log writes are
// skipped. Returns the number of new duplicates and their total size.
func (s *Set) MarkDuplicates(dlog DuplicateLog, dryRun bool) (int, uint64, error) {
	var duplicateCount int
	var duplicateSize uint64

	previousPercent := -1

	for i := range s.Files {
		base := s.Files[i]
		if base.IsDuplicate() {
			continue
		}

		// status per 5 percent of the base loop
		percent := (i * 20 / len(s.Files)) * 5
		if percent != previousPercent {
			s.reporter.Progress(percent)
			previousPercent = percent
		}

		for j := i + 1; j < len(s.Files) && s.Files[j].Size == base.Size; j++ {
			candidate := s.Files[j]
			if candidate.IsDuplicate() {
				continue
			}

			baseHash, err := base.Hash()
			if err != nil {
				return duplicateCount, duplicateSize, err
			}

			candidateHash, err := candidate.Hash()
			if err != nil {
				return duplicateCount, duplicateSize, err
			}

			if candidateHash != baseHash {
				continue
			}

			if dryRun {
				log.Warnf("Dry-run enabled, not renaming: %q", candidate.Path)
				// simulate the rename so the record is excluded from
				// later comparisons, as it would be after a real mark
				candidate.Path += Extension
			} else {
				if err := candidate.markDuplicate(); err != nil {
					return duplicateCount, duplicateSize, err
				}

				if err := dlog.Append(candidate.Path, base.Path); err != nil {
					return duplicateCount, duplicateSize, err
				}
			}

			duplicateCount++
			duplicateSize += uint64(candidate.Size)
			s.reporter.Duplicate(candidate.Path, base.Path, candidate.Size)
		}
	}

	return duplicateCount, duplicateSize, nil
}

// Len returns the number of files in the set.
func (s *Set) Len() int {
	return len(s.Files)
}
