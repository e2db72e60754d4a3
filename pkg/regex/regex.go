package regex

import (
	"sync"

	"github.com/dlclark/regexp2"
)

var (
	cache   = make(map[string]*regexp2.Regexp)
	cacheMu sync.RWMutex
)

// Compile returns a compiled, case-insensitive pattern, caching compiled
// patterns for reuse across calls.
func Compile(pattern string) (*regexp2.Regexp, error) {
	cacheMu.RLock()
	re, ok := cache[pattern]
	cacheMu.RUnlock()

	if ok {
		return re, nil
	}

	re, err := regexp2.Compile(pattern, regexp2.IgnoreCase)
	if err != nil {
		return nil, err
	}

	cacheMu.Lock()
	cache[pattern] = re
	cacheMu.Unlock()

	return re, nil
}
