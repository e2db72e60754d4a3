package paths

import (
	"github.com/dupemark/dupemark/pkg/logger"
	"github.com/dupemark/dupemark/pkg/regex"
)

var (
	log = logger.GetLogger("paths")
)

// IsIgnored returns true when path matches one of the configured ignore
// patterns. Patterns that fail to compile are skipped with a diagnostic.
func IsIgnored(path string, patterns []string) bool {
	for _, pattern := range patterns {
		re, err := regex.Compile(pattern)
		if err != nil {
			log.WithError(err).Warnf("Failed compiling ignore pattern: %q", pattern)
			continue
		}

		if match, err := re.MatchString(path); err == nil && match {
			return true
		}
	}

	return false
}
