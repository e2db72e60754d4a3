package duplog

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/scylladb/go-set/strset"

	"github.com/dupemark/dupemark/pkg/logger"
)

// FileName is the log file created next to each detected duplicate.
const FileName = "duplicates.log"

var (
	log = logger.GetLogger("duplog")
)

// Log appends duplicate records to a duplicates.log co-located with each
// duplicate, one log file per directory containing duplicates.
type Log struct {
	dirs *strset.Set
}

func New() *Log {
	return &Log{
		dirs: strset.New(),
	}
}

// Append writes one record for duplicatePath to the duplicates.log in its
// directory, creating the file on first use. Each call is a single
// synchronous write; failures are not retried.
func (l *Log) Append(duplicatePath string, originalPath string) error {
	dir := filepath.Dir(duplicatePath)
	logFilePath := filepath.Join(dir, FileName)

	f, err := os.OpenFile(logFilePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return errors.Wrapf(err, "failed opening log file: %q", logFilePath)
	}
	defer f.Close()

	line := fmt.Sprintf("%s is duplicate of %s\n", duplicatePath, originalPath)
	if _, err := f.WriteString(line); err != nil {
		return errors.Wrapf(err, "failed writing log file: %q", logFilePath)
	}

	l.dirs.Add(dir)
	log.Debugf("Logged duplicate to %q", logFilePath)

	return nil
}

// Directories returns the number of distinct directories written to.
func (l *Log) Directories() int {
	return l.dirs.Size()
}
