package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/dupemark/dupemark/pkg/config"
	"github.com/dupemark/dupemark/pkg/duplog"
	"github.com/dupemark/dupemark/pkg/expression"
	"github.com/dupemark/dupemark/pkg/fileset"
	"github.com/dupemark/dupemark/pkg/logger"
	"github.com/dupemark/dupemark/pkg/notification"
)

func ScanCommand() *cobra.Command {
	command := &cobra.Command{
		Use:   "scan [PATH]",
		Short: "Scan a directory tree and mark duplicate files",
		Long: `Walks the given path, groups files by size, hashes candidates and renames
byte-for-byte duplicates with the ` + fileset.Extension + ` extension, logging each
detection to a duplicates.log next to the duplicate.`,

		Args: cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			start := time.Now()

			// init core
			if !initialized {
				initCore(true)
				initialized = true
			}

			// set log
			log := logger.GetLogger("scan")

			noti := notification.NewDiscordSender(log, config.Config.Notifications)
			reporter := &consoleReporter{noti: noti}

			// compile skip filters
			skipFilters, err := expression.Compile(config.Config.Scan.SkipFilters)
			if err != nil {
				log.WithError(err).Fatal("Failed compiling skip filters")
			}

			rootDir := args[0]

			// discover files
			set, err := fileset.New(rootDir, fileset.Options{
				IgnorePatterns: config.Config.Scan.IgnorePatterns,
				SkipFilters:    skipFilters,
				RepairMtime:    !FlagDryRun,
				Reporter:       reporter,
			})
			if err != nil {
				log.WithError(err).Fatal("Failed discovering files")
			}

			fmt.Fprintln(os.Stdout)
			log.Infof("Found %d files, excluding %d existing duplicates", set.Len(), set.Existing)
			if set.Skipped > 0 {
				log.Debugf("Skipped %d files via ignore patterns / filters", set.Skipped)
			}

			// order by (size, creation time) so equal-size files are adjacent
			set.Sort()

			// mark duplicates
			dlog := duplog.New()
			duplicateCount, duplicateSize, err := set.MarkDuplicates(dlog, FlagDryRun)
			if err != nil {
				log.WithError(err).Fatal("Failed marking duplicates")
			}

			log.WithField("reclaimed_space", humanize.IBytes(duplicateSize)).
				Infof("New duplicates found: %d, total size: %d", duplicateCount, duplicateSize)
			if dirs := dlog.Directories(); dirs > 0 {
				log.Debugf("Wrote %s across %d directories", duplog.FileName, dirs)
			}

			if !noti.CanSend() {
				log.Debug("Notifications disabled, skipping...")
				return
			}

			sendErr := noti.Send(
				"Duplicates",
				fmt.Sprintf("Marked **%d** duplicate files | Total reclaimable **%s**",
					duplicateCount, humanize.IBytes(duplicateSize)),
				time.Since(start),
				reporter.fields,
				FlagDryRun,
			)
			if sendErr != nil {
				log.WithError(sendErr).Error("Failed sending notification")
			}
		},
	}

	return command
}
