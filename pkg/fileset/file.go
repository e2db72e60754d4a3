package fileset

import (
	"crypto/sha256"
	"encoding/hex"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
)

// Extension is the sentinel suffix appended to a file marked as duplicate.
// It doubles as the persistent "already processed" flag across runs.
const Extension = ".duplicate"

// newFile builds a record from file metadata, repairing a zero mtime on disk
// to the derived creation time unless repair is disabled.
func newFile(path string, info os.FileInfo, repairMtime bool) (*File, error) {
	created := creationTime(path, info)

	if info.ModTime().Equal(time.Unix(0, 0)) && repairMtime {
		log.Debugf("Setting zero modified time to %v: %q", created, path)
		if err := os.Chtimes(path, created, created); err != nil {
			return nil, errors.Wrapf(err, "failed repairing modified time: %q", path)
		}
	}

	return &File{
		Path:        path,
		Size:        info.Size(),
		CreatedTime: created,
	}, nil
}

// IsDuplicate derives duplicate status from the current path, so the flag
// can never diverge from the name on disk.
func (f *File) IsDuplicate() bool {
	return filepath.Ext(f.Path) == Extension
}

// Hash returns the sha-256 hex digest of the file content, computing it on
// first use and memoizing it for the rest of the run.
func (f *File) Hash() (string, error) {
	if f.hash != "" {
		return f.hash, nil
	}

	log.Debugf("Calculating hash: %q", f.Path)

	fh, err := os.Open(f.Path)
	if err != nil {
		return "", errors.Wrapf(err, "failed opening file for hashing: %q", f.Path)
	}
	defer fh.Close()

	h := sha256.New()
	if _, err := io.Copy(h, fh); err != nil {
		return "", errors.Wrapf(err, "failed hashing file: %q", f.Path)
	}

	f.hash = hex.EncodeToString(h.Sum(nil))
	return f.hash, nil
}

// markDuplicate renames the underlying file with the sentinel extension and
// updates the stored path. Once marked, a record is never unmarked.
func (f *File) markDuplicate() error {
	newPath := f.Path + Extension

	log.Infof("Renaming %q to %q", f.Path, newPath)

	if err := os.Rename(f.Path, newPath); err != nil {
		return errors.Wrapf(err, "failed renaming duplicate: %q", f.Path)
	}

	f.Path = newPath
	return nil
}
