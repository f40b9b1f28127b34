package pipeline

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/obskit/sg1submit/internal/config"
	"github.com/obskit/sg1submit/internal/display"
	"github.com/obskit/sg1submit/internal/logging"
	"github.com/obskit/sg1submit/internal/naming"
	"github.com/obskit/sg1submit/internal/prompt"
	"github.com/obskit/sg1submit/internal/submission"
)

// ErrCancelled is returned when the user declines the final submit gate.
// It is the one run-ending condition that is not a failure.
var ErrCancelled = errors.New("user cancelled before uploads")

// Uploader is the ExoFOP surface the runner needs; satisfied by
// [exofop.Client] and by test fakes.
type Uploader interface {
	Login(ctx context.Context, username, password string) error
	InsertTimeSeries(ctx context.Context, entry submission.Entry) error
	UploadFile(ctx context.Context, path string, entry submission.Entry, desc naming.Descriptor) error
}

// Runner wires one submission run together. All fields are required except
// Out, which defaults to stdout.
type Runner struct {
	Cfg      *config.Config
	Log      *logging.Logger
	Prompter prompt.Prompter
	Client   Uploader
	Out      io.Writer
}

// Run executes the full pipeline. It returns ErrCancelled when the user
// backs out at the final gate; every other error is terminal.
func (r *Runner) Run(ctx context.Context) (RunStats, error) {
	var stats RunStats
	out := r.Out
	if out == nil {
		out = os.Stdout
	}

	target, err := naming.ParseTarget(r.Cfg.TIC, r.Cfg.TOI)
	if err != nil {
		return stats, err
	}

	if err := r.Client.Login(ctx, r.Cfg.Username, r.Cfg.Password); err != nil {
		return stats, err
	}
	r.Log.Success("Successfully logged in to ExoFOP.")

	files, err := Discover(r.Cfg.Directory)
	if err != nil {
		return stats, err
	}
	if err := CheckDisallowed(files); err != nil {
		return stats, err
	}

	cls := ClassifyAll(files, target)
	set, err := ResolveSet(cls)
	if err != nil {
		return stats, err
	}
	stats.Recognized = len(set.Records)
	stats.Rejected = len(set.Rejected)
	stats.Filters = len(set.Filters)

	fmt.Fprintln(out, target.Title())
	fmt.Fprintf(out, "Detected set -> Date: %s, Observatory: %s, Filter(s): %s\n",
		set.Date, set.Observatory, strings.Join(set.Filters, ", "))

	chosen := SelectTables(r.Cfg.Directory, set)
	r.printListings(out, set, chosen)

	if err := r.confirmCompleteness(out, set); err != nil {
		return stats, err
	}

	builder := &submission.Builder{
		Dir:          r.Cfg.Directory,
		Target:       target,
		Username:     r.Cfg.Username,
		TelSize:      r.Cfg.TelSize,
		Camera:       r.Cfg.Camera,
		Group:        r.Cfg.Group,
		Notes:        r.Cfg.Notes,
		Coverage:     config.NormalizeCoverage(r.Cfg.Coverage),
		Date:         set.Date,
		Observatory:  set.Observatory,
		SingleFilter: len(set.Filters) == 1,
		PSF:          r.Cfg.PSF,
		DeltaMag:     r.Cfg.DeltaMag,
		Prompter:     r.Prompter,
	}
	if builder.SingleFilter {
		if err := builder.ValidateSingleFilter(); err != nil {
			return stats, err
		}
	}

	entries := make([]submission.Entry, 0, len(set.Filters))
	uploads := make([][]submission.UploadItem, 0, len(set.Filters))
	for _, flt := range set.Filters {
		entry, items, err := builder.Build(flt, set.FilesByDescriptor(flt), chosen[flt])
		if err != nil {
			return stats, err
		}
		entries = append(entries, entry)
		uploads = append(uploads, items)
		r.printSummary(out, target, entry)
	}

	if r.Cfg.SkipSummary && r.Cfg.SkipFiles {
		fmt.Fprintln(out, "\nUploads are disabled by settings (both --skip-summary and --skip-files were set). Nothing will be uploaded.")
		return stats, nil
	}

	ok, err := r.Prompter.Confirm(
		"\nPress Enter to submit the time-series summaries and upload recognized files to ExoFOP, or type 'n' to cancel: ", true)
	if err != nil {
		return stats, err
	}
	if !ok {
		return stats, ErrCancelled
	}

	for i, entry := range entries {
		if !r.Cfg.SkipSummary {
			if err := r.Client.InsertTimeSeries(ctx, entry); err != nil {
				return stats, err
			}
			stats.SummariesPosted++
			r.Log.Info("Time series summary submitted (filter %s).", entry.Filter)
		}
		if !r.Cfg.SkipFiles {
			for _, item := range uploads[i] {
				path := filepath.Join(r.Cfg.Directory, item.Filename)
				if err := r.Client.UploadFile(ctx, path, entry, item.Descriptor); err != nil {
					return stats, err
				}
				stats.FilesUploaded++
				r.Log.Info("Uploaded %s", item.Filename)
			}
		}
	}

	r.Log.Success("All requested uploads completed.")
	return stats, nil
}

// printListings reports the recognized files per filter in upload order and
// the rejected files with their reasons.
func (r *Runner) printListings(out io.Writer, set *ObservationSet, chosen map[string]string) {
	for _, flt := range set.Filters {
		items := submission.OrderFiles(set.FilesByDescriptor(flt), chosen[flt])
		if len(items) == 0 {
			continue
		}
		rows := make([][2]string, len(items))
		for i, it := range items {
			rows[i] = [2]string{it.Filename, string(it.Descriptor)}
		}
		fmt.Fprintf(out, "\nRecognized files (filter %s):\n", flt)
		display.ListFiles(out, "✔", rows)
	}

	if len(set.Rejected) > 0 {
		rows := make([][2]string, len(set.Rejected))
		for i, rej := range set.Rejected {
			rows[i] = [2]string{rej.Filename, rej.Reason}
		}
		fmt.Fprintln(out, "\nRejected files (not used):")
		display.ListFiles(out, "-", rows)
	}
}

// confirmCompleteness reports missing optional files, and on missing
// required files asks the user whether to proceed anyway.
func (r *Runner) confirmCompleteness(out io.Writer, set *ObservationSet) error {
	comp := CheckCompleteness(set)

	if len(set.Filters) > 1 {
		fmt.Fprintln(out, "\nGlobal files:")
		fmt.Fprintln(out, "  ✔ notes.txt found")
	}
	for _, flt := range set.Filters {
		missing := comp.MissingOptional[flt]
		if len(missing) == 0 {
			fmt.Fprintf(out, "\nOptional files not detected (filter %s): None\n", flt)
			continue
		}
		fmt.Fprintf(out, "\nOptional files not detected (filter %s):\n", flt)
		for _, d := range missing {
			fmt.Fprintf(out, "  • %s\n", d)
		}
	}

	if !comp.AnyRequiredMissing() {
		return nil
	}
	fmt.Fprintln(out, "\nMissing required TFOP files:")
	for _, flt := range set.Filters {
		if len(comp.MissingRequired[flt]) == 0 {
			continue
		}
		fmt.Fprintf(out, "  Filter %s:\n", flt)
		for _, d := range comp.MissingRequired[flt] {
			fmt.Fprintf(out, "    • %s\n", d)
		}
	}
	ok, err := r.Prompter.Confirm("Proceed with recognized files anyway? [y/N]: ", false)
	if err != nil {
		return err
	}
	if !ok {
		return errors.New("aborted by user due to missing required TFOP files")
	}
	return nil
}

// printSummary renders the aligned observation summary block for one filter.
func (r *Runner) printSummary(out io.Writer, target naming.Target, entry submission.Entry) {
	rows := []display.Row{
		{Key: "Name", Value: target.Name()},
		{Key: "TOI", Value: target.TOIDisplay()},
		{Key: "User", Value: r.Cfg.Username},
		{Key: "Telescope", Value: fmt.Sprintf("%s (%s m)", entry.Telescope, entry.TelSize)},
		{Key: "Camera", Value: entry.Camera},
		{Key: "Filter", Value: entry.Filter},
		{Key: "Pixel scale (arcsec)", Value: entry.PixScale},
		{Key: "Estimated PSF (arcsec)", Value: entry.PSF},
		{Key: "Photometric Aperture Radius (pixel)", Value: entry.ApertureRadiusDisplay()},
		{Key: "Transit Coverage", Value: string(entry.Coverage)},
		{Key: "Faintest Neighbor delta Mag", Value: entry.DeltaMag},
		{Key: "Observation date (UT)", Value: entry.ObsDate},
		{Key: "Observation duration (m)", Value: entry.ObsDuration},
		{Key: "Number of Observations", Value: entry.ObsCount},
		{Key: "Observation Type", Value: submission.ObsType},
		{Key: "Notes", Value: entry.Notes},
		{Key: "Group", Value: entry.Group},
		{Key: "Tag", Value: entry.Tag},
	}
	fmt.Fprintf(out, "\nObservation Summary (filter %s):\n", entry.Filter)
	display.ArrowBlock(out, rows)
}
