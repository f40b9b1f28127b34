// Command sg1submit uploads a TFOP SG1 observation set to ExoFOP.
//
// It classifies the files of one observation directory, derives the
// per-filter time-series summaries, and pushes the summaries and files to
// exofop.ipac.caltech.edu after a final confirmation.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/obskit/sg1submit/internal/config"
	"github.com/obskit/sg1submit/internal/display"
	"github.com/obskit/sg1submit/internal/exofop"
	"github.com/obskit/sg1submit/internal/logging"
	"github.com/obskit/sg1submit/internal/pipeline"
	"github.com/obskit/sg1submit/internal/prompt"
	"github.com/obskit/sg1submit/internal/term"
)

// version and commit are set at build time via -ldflags.
var (
	version = "1.0.0-dev"
	commit  = "unknown"
)

var (
	cfg       = config.DefaultConfig()
	colorMode string
	noColor   bool
)

var rootCmd = &cobra.Command{
	Use:   "sg1submit",
	Short: "Upload TFOP SG1 observation sets to ExoFOP",
	Long: `sg1submit validates the naming of a TFOP SG1 observation directory,
derives the per-filter time-series summaries from the photometry tables and
plate-solved images, and uploads the summaries and files to ExoFOP.

Credentials come from --username/--password or the EXOFOP_USERNAME and
EXOFOP_PASSWORD environment variables (a .env file is honored). Site
defaults such as telescope size and camera can live in a YAML profile
passed via --profile.`,
	Version:       fmt.Sprintf("%s (%s)", version, commit),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context())
	},
}

func init() {
	f := rootCmd.Flags()
	f.StringVar(&cfg.Username, "username", "", "ExoFOP username")
	f.StringVar(&cfg.Password, "password", "", "ExoFOP password")
	f.StringVar(&cfg.TIC, "tic", "", `target TIC identifier, e.g. "12345678.01"`)
	f.StringVar(&cfg.TOI, "toi", cfg.TOI, `TOI identifier, e.g. "1234.01" ("0" = none)`)
	f.StringVarP(&cfg.Directory, "directory", "d", "", "observation directory")
	f.StringVar(&cfg.Coverage, "coverage", "", "transit coverage: Full, Ingress, Egress, or 'Out of Transit'")
	f.StringVar(&cfg.TelSize, "telsize", "", "telescope aperture in meters")
	f.StringVar(&cfg.Camera, "camera", "", "camera name")
	f.StringVar(&cfg.PSF, "psf", "", "estimated PSF in arcsec (required for single-filter runs)")
	f.StringVar(&cfg.DeltaMag, "deltamag", "", "faintest neighbor delta mag ('0' leaves the field blank)")
	f.StringVar(&cfg.Notes, "notes", "", "submission notes")
	f.StringVar(&cfg.Group, "group", cfg.Group, "ExoFOP group name")
	f.BoolVar(&cfg.SkipSummary, "skip-summary", false, "do not post time-series summaries")
	f.BoolVar(&cfg.SkipFiles, "skip-files", false, "do not upload files")
	f.StringVar(&cfg.ProfilePath, "profile", "", "YAML profile with site defaults")
	f.StringVar(&cfg.LogFile, "log", "", "append output to this log file")
	f.StringVar(&colorMode, "color", string(config.ColorAuto), "color output: auto, always, never")
	f.BoolVar(&noColor, "no-color", false, "disable color output (same as --color=never)")
	f.BoolVarP(&cfg.Verbose, "verbose", "v", false, "verbose output")
}

func run(ctx context.Context) error {
	// Bootstrap: merge env and profile under the flag values, then validate.
	// Until NewLogger succeeds errors go straight to stderr.
	cfg.ApplyEnv()
	if err := cfg.ApplyProfile(); err != nil {
		fmt.Fprintf(os.Stderr, "sg1submit: %v\n", err)
		return err
	}
	cfg.Directory = config.NormalizeDirArg(cfg.Directory)
	cfg.ColorMode = config.ColorMode(colorMode)
	if noColor {
		cfg.ColorMode = config.ColorNever
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "sg1submit: %v\n", err)
		return err
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "sg1submit: %v\n", err)
		return err
	}
	defer log.Close()

	display.PrintBanner()

	// Cancel on SIGINT/SIGTERM so a partial run stops between requests.
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Warn("Received interrupt, stopping…")
		cancel()
	}()

	runner := &pipeline.Runner{
		Cfg:      &cfg,
		Log:      log,
		Prompter: prompt.NewTerminal(),
		Client:   exofop.NewClient(""),
	}
	if _, err := runner.Run(ctx); err != nil {
		if errors.Is(err, pipeline.ErrCancelled) {
			log.Warn("User cancelled before uploads.")
			return err
		}
		log.Error("%v", err)
		return err
	}
	return nil
}

func main() {
	err := rootCmd.Execute()
	if err == nil {
		return
	}
	if errors.Is(err, pipeline.ErrCancelled) {
		os.Exit(0)
	}
	term.Bell()
	os.Exit(1)
}
