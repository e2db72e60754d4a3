package cmd

import (
	"fmt"
	"os"

	"github.com/dupemark/dupemark/pkg/notification"
)

// consoleReporter renders pipeline progress to stdout: one symbol per
// discovered file ('.' new, '#' pre-existing duplicate), percent milestones
// during marking and one line per new duplicate. It also collects
// notification fields for the end-of-run summary.
type consoleReporter struct {
	noti   notification.Sender
	fields []notification.Field
}

func (r *consoleReporter) FileSeen(_ string, existingDuplicate bool) {
	if existingDuplicate {
		fmt.Fprint(os.Stdout, "#")
	} else {
		fmt.Fprint(os.Stdout, ".")
	}
}

func (r *consoleReporter) Progress(percent int) {
	fmt.Fprintf(os.Stdout, "%d%%\n", percent)
}

func (r *consoleReporter) Duplicate(duplicatePath string, originalPath string, size int64) {
	fmt.Fprintf(os.Stdout, "%s is duplicate of %s\n", duplicatePath, originalPath)

	r.fields = append(r.fields, r.noti.BuildField(notification.ActionDuplicate, notification.BuildOptions{
		Duplicate: duplicatePath,
		Original:  originalPath,
		Size:      size,
	}))
}
