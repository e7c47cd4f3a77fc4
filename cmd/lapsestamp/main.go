// Package main provides the CLI entry point for lapsestamp.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata" // --timezone works on hosts without a zoneinfo database

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/lapsestamp/pkg/adapters/ffmpeg"
	"github.com/user/lapsestamp/pkg/adapters/ggrenderer"
	"github.com/user/lapsestamp/pkg/adapters/logger"
	"github.com/user/lapsestamp/pkg/adapters/mp4probe"
	"github.com/user/lapsestamp/pkg/adapters/osfilesystem"
	"github.com/user/lapsestamp/pkg/adapters/progressbar"
	"github.com/user/lapsestamp/pkg/config"
	"github.com/user/lapsestamp/pkg/orchestrator"
	"github.com/user/lapsestamp/pkg/overlay"
	"github.com/user/lapsestamp/pkg/ports"
	"github.com/user/lapsestamp/pkg/stages/stamp"
	"github.com/user/lapsestamp/pkg/summarizer"
)

var version = "dev"

// Exit codes.
const (
	exitFailure = 1
	exitUsage   = 2
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(exitFailure)
	}
}

func newApp() *cli.App {
	var (
		catOutput  = l10n.T("Output")
		catLabel   = l10n.T("Label")
		catVideo   = l10n.T("Video and Quality")
		catLogging = l10n.T("Logging")
	)

	return &cli.App{
		Name:            "lapsestamp",
		Usage:           l10n.T("Stamp the time of capture onto every frame of a time-lapse clip"),
		UsageText:       "lapsestamp [options] -o <output> <input_filename>",
		ArgsUsage:       "<input_filename>",
		Version:         version,
		HideVersion:     true,
		HideHelpCommand: true,
		Flags: []cli.Flag{
			// Output
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Category: catOutput, Usage: l10n.T("Output MP4 file path (required)")},
			&cli.BoolFlag{Name: "force", Aliases: []string{"f"}, Category: catOutput, Usage: l10n.T("Overwrite the output file if it exists")},
			&cli.StringFlag{Name: "rotate", Category: catOutput, Usage: l10n.T("Rotate every frame (left, right, flip)")},
			&cli.StringFlag{Name: "summary", Category: catOutput, Usage: l10n.T("Write a Markdown run summary to this path")},
			&cli.StringFlag{Name: "config", Aliases: []string{"c"}, Category: catOutput, Usage: l10n.T("YAML configuration file")},

			// Label
			&cli.StringFlag{Name: "font", Category: catLabel, Usage: l10n.T("TrueType font file for the label (default: embedded)")},
			&cli.Float64Flag{Name: "font-size", Category: catLabel, Usage: l10n.T("Label font size in points")},
			&cli.StringFlag{Name: "timezone", Category: catLabel, Usage: l10n.T("IANA time zone for the label (default: local)")},

			// Video and Quality
			&cli.IntFlag{Name: "quality", Aliases: []string{"q"}, Category: catVideo, Usage: l10n.T("Video quality (0-63, lower is better, 0 for the encoder default)")},
			&cli.StringFlag{Name: "ffmpeg-path", Category: catVideo, Usage: l10n.T("Path to the ffmpeg binary")},

			// Logging
			&cli.StringFlag{Name: "log-level", Aliases: []string{"l"}, Value: "info", Category: catLogging, Usage: l10n.T("Log level (debug, info, warn, error)")},
			&cli.BoolFlag{Name: "quiet", Aliases: []string{"Q"}, Category: catLogging, Usage: l10n.T("Suppress all log output")},
			&cli.BoolFlag{Name: "no-progress", Category: catLogging, Usage: l10n.T("Do not draw the progress bar")},
		},
		Action: runStamp,
		OnUsageError: func(c *cli.Context, err error, isSubcommand bool) error {
			return cli.Exit(err, exitUsage)
		},
		Commands: []*cli.Command{
			{
				Name:   "version",
				Usage:  l10n.T("Show version information"),
				Action: runVersion,
			},
		},
	}
}

func runVersion(c *cli.Context) error {
	fmt.Fprintln(c.App.Writer, l10n.F("lapsestamp version %s", version))
	return nil
}

func runStamp(c *cli.Context) error {
	if c.NArg() != 1 {
		_ = cli.ShowAppHelp(c)
		return cli.Exit(l10n.T("Exactly one input file is required"), exitUsage)
	}

	fs := osfilesystem.New()
	cfg, err := buildConfig(c, fs)
	if err != nil {
		return cli.Exit(err, exitUsage)
	}
	if cfg.OutputPath == "" {
		return cli.Exit(l10n.T("Output path is required (-o)"), exitUsage)
	}
	if err := cfg.Validate(); err != nil {
		return cli.Exit(l10n.F("Invalid configuration: %s", err), exitUsage)
	}

	var log ports.Logger
	if c.Bool("quiet") {
		log = logger.NewNoop()
	} else {
		log = logger.NewConsole(ports.ParseLogLevel(c.String("log-level")))
	}

	ctx, cancel := context.WithCancel(c.Context)
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)
	go func() {
		select {
		case <-sigCh:
			log.Warn("Interrupted, shutting down...")
			cancel()
		case <-ctx.Done():
		}
	}()

	renderer, err := ggrenderer.New(cfg.FontSpec())
	if err != nil {
		return cli.Exit(err, exitFailure)
	}
	opts, err := cfg.OverlayOptions()
	if err != nil {
		return cli.Exit(err, exitUsage)
	}

	var progress ports.Progress
	if c.Bool("quiet") || c.Bool("no-progress") {
		progress = progressbar.NewWriter(io.Discard, false)
	} else {
		progress = progressbar.New(os.Stderr)
	}

	orch := orchestrator.New(
		stamp.NewStage(log),
		fs,
		mp4probe.New(),
		ffmpeg.NewDecoder(cfg.Encoding.FFmpegPath, log),
		ffmpeg.NewEncoder(cfg.Encoding.FFmpegPath, log),
		overlay.NewStamper(renderer, opts),
		progress,
		log,
	)

	result, err := orch.Run(ctx, cfg.ToOrchestratorConfig())
	if err != nil {
		return cli.Exit(describe(err), exitFailure)
	}

	if path := c.String("summary"); path != "" {
		writer := summarizer.NewWriter(
			summarizer.NewMarkdownFormatter(
				summarizer.WithTranslator(l10n.T),
				summarizer.WithVersion(version),
			),
			fs,
		)
		if err := writer.Write(path, buildSummary(cfg, result)); err != nil {
			return cli.Exit(l10n.F("Failed to write summary: %s", err), exitFailure)
		}
		log.Info("Summary saved to %s", path)
	}

	return nil
}

// buildConfig layers the config file, the positional input and explicitly set flags over the defaults.
func buildConfig(c *cli.Context, fs ports.FileSystem) (config.Config, error) {
	cfg := config.Defaults()
	if path := c.String("config"); path != "" {
		loaded, err := config.LoadFromFile(fs, path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}

	cfg.InputPath = c.Args().First()

	if c.IsSet("output") {
		cfg.OutputPath = c.String("output")
	}
	if c.IsSet("force") {
		cfg.Force = c.Bool("force")
	}
	if c.IsSet("rotate") {
		cfg.Rotate = c.String("rotate")
	}
	if c.IsSet("font") {
		cfg.Label.FontPath = c.String("font")
	}
	if c.IsSet("font-size") {
		cfg.Label.FontSize = c.Float64("font-size")
	}
	if c.IsSet("timezone") {
		cfg.Label.Timezone = c.String("timezone")
	}
	if c.IsSet("quality") {
		cfg.Encoding.Quality = c.Int("quality")
	}
	if c.IsSet("ffmpeg-path") {
		cfg.Encoding.FFmpegPath = c.String("ffmpeg-path")
	}

	return cfg, nil
}

// describe prefixes err with a translated headline for its kind.
// Adapter causes are checked before the port kinds that wrap them.
func describe(err error) string {
	kinds := []struct {
		target error
		msg    string
	}{
		{ffmpeg.ErrFFmpegNotFound, "ffmpeg was not found; install it or pass --ffmpeg-path"},
		{ports.ErrOutputExists, "Output file exists; pass -f to overwrite"},
		{ports.ErrInputUnreadable, "Cannot read the input clip"},
		{ports.ErrFontUnavailable, "Cannot load the label font"},
		{ports.ErrDecodeFailure, "Decoding failed"},
		{ports.ErrEncodeFailure, "Encoding failed"},
		{ports.ErrRenderFailure, "Drawing the label failed"},
		{context.Canceled, "Interrupted"},
	}
	for _, k := range kinds {
		if errors.Is(err, k.target) {
			return fmt.Sprintf("%s: %v", l10n.T(k.msg), err)
		}
	}
	return err.Error()
}

func buildSummary(cfg config.Config, result orchestrator.RunResult) *summarizer.Summary {
	timezone := cfg.Label.Timezone
	if timezone == "" {
		timezone = time.Local.String()
	}

	return summarizer.NewBuilder().
		WithClip(summarizer.ClipInfo{
			Path:       result.InputPath,
			Codec:      result.Codec,
			Width:      result.Width,
			Height:     result.Height,
			FrameCount: result.ProbedFrames,
			SourceFPS:  result.SourceFPS,
		}).
		WithTiming(summarizer.TimingInfo{
			Start:           result.StartTime,
			End:             result.EndTime,
			Duration:        result.DurationReal,
			SecondsPerFrame: time.Duration(cfg.Cadence.SecondsPerFrame * float64(time.Second)),
			FirstLabel:      result.FirstLabel,
			LastLabel:       result.LastLabel,
		}).
		WithSettings(summarizer.Settings{
			Rotation:   result.Rotation.String(),
			Resolution: time.Duration(cfg.Label.BucketSeconds) * time.Second,
			Timezone:   timezone,
			FontPath:   cfg.Label.FontPath,
			FontSize:   cfg.Label.FontSize,
			Quality:    cfg.Encoding.Quality,
			Bitrate:    cfg.Encoding.Bitrate,
			Preset:     cfg.Encoding.Preset,
		}).
		WithVideo(summarizer.VideoInfo{
			Path:       result.OutputPath,
			FrameCount: result.FramesWritten,
			FPS:        result.OutputFPS,
			Duration:   result.DurationVideo,
			FileSize:   result.OutputSize,
		}).
		Build()
}
