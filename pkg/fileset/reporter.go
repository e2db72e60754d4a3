package fileset

// Reporter receives progress events from discovery and marking. Console
// rendering lives with the caller so the pipeline stays testable.
type Reporter interface {
	// FileSeen is called once per file during discovery.
	FileSeen(path string, existingDuplicate bool)
	// Progress is called at each 5% boundary of the marking pass.
	Progress(percent int)
	// Duplicate is called for every newly detected duplicate.
	Duplicate(duplicatePath string, originalPath string, size int64)
}

// NopReporter discards all events.
type NopReporter struct{}

func (NopReporter) FileSeen(string, bool)           {}
func (NopReporter) Progress(int)                    {}
func (NopReporter) Duplicate(string, string, int64) {}
