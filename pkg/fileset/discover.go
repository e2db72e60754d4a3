package fileset

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/dupemark/dupemark/pkg/expression"
	"github.com/dupemark/dupemark/pkg/logger"
	"github.com/dupemark/dupemark/pkg/paths"
)

/* Vars */

var (
	log = logger.GetLogger("fileset")
)

/* Structs */

type Options struct {
	// IgnorePatterns are regex patterns; matching paths are skipped.
	IgnorePatterns []string
	// SkipFilters are compiled expressions; a matching file is skipped.
	SkipFilters []expression.CompiledExpression
	// RepairMtime enables the on-disk repair of zero modification times.
	RepairMtime bool

	Reporter Reporter
}

/* Public */

// New walks root depth-first and returns the set of discovered regular
// files. Hidden directories below the root are pruned, permission-denied
// entries are skipped with a diagnostic and files already carrying the
// duplicate extension are tallied but excluded. Any other traversal error
// aborts the walk. A non-existent root yields an empty set, not an error.
func New(root string, opts Options) (*Set, error) {
	if opts.Reporter == nil {
		opts.Reporter = NopReporter{}
	}

	s := &Set{reporter: opts.Reporter}

	if _, err := os.Stat(root); os.IsNotExist(err) {
		log.Warnf("Path does not exist: %q", root)
		return s, nil
	}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errors.Is(err, fs.ErrPermission) {
				log.Warnf("Skipping %q: permission denied", path)
				if d != nil && d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			return errors.Wrapf(err, "failed walking: %q", path)
		}

		if d.IsDir() {
			if path != root && strings.HasPrefix(d.Name(), ".") {
				log.Debugf("Skipping hidden folder: %q", path)
				return filepath.SkipDir
			}
			return nil
		}

		if !d.Type().IsRegular() {
			log.Tracef("Skipping non-regular file: %q", path)
			return nil
		}

		if paths.IsIgnored(path, opts.IgnorePatterns) {
			log.Debugf("Skipping ignored path: %q", path)
			s.Skipped++
			return nil
		}

		info, err := d.Info()
		if err != nil {
			if errors.Is(err, fs.ErrPermission) {
				log.Warnf("Skipping %q: permission denied", path)
				return nil
			}
			return errors.Wrapf(err, "failed reading metadata: %q", path)
		}

		if len(opts.SkipFilters) > 0 {
			env := &expression.File{
				Path: path,
				Name: d.Name(),
				Dir:  filepath.Dir(path),
				Ext:  filepath.Ext(path),
				Size: info.Size(),
			}

			match, reason, err := expression.CheckFileSingleMatchWithReason(env, opts.SkipFilters)
			if err != nil {
				return errors.Wrapf(err, "failed checking skip filters: %q", path)
			} else if match {
				log.Debugf("Skipping %q, matched filter: %q", path, reason)
				s.Skipped++
				return nil
			}
		}

		f, err := newFile(path, info, opts.RepairMtime)
		if err != nil {
			return err
		}

		if f.IsDuplicate() {
			s.Existing++
			opts.Reporter.FileSeen(path, true)
			return nil
		}

		s.Files = append(s.Files, f)
		opts.Reporter.FileSeen(path, false)
		return nil
	})

	if err != nil {
		return nil, err
	}

	return s, nil
}
