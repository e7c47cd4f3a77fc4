// Package orchestrator drives a single stamping run from validation to close.
package orchestrator

import (
	"context"
	"fmt"
	"image/color"
	"math"
	"time"

	"github.com/user/lapsestamp/pkg/overlay"
	"github.com/user/lapsestamp/pkg/pipeline"
	"github.com/user/lapsestamp/pkg/ports"
	"github.com/user/lapsestamp/pkg/timeconv"
	"github.com/user/lapsestamp/pkg/transform"
)

// State is a step of the run lifecycle.
type State int

const (
	StateIdle State = iota
	StateValidated
	StateStreaming
	StateClosed
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateValidated:
		return "validated"
	case StateStreaming:
		return "streaming"
	case StateClosed:
		return "closed"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Config contains all configuration for a run.
type Config struct {
	// Input
	InputPath  string
	OutputPath string
	Force      bool // Overwrite OutputPath if it exists

	// Geometry
	Rotation   transform.Rotation
	Background color.Color // Letterbox fill, black when nil

	// Timing
	Cadence timeconv.Cadence

	// Encoding
	Encoder ports.EncoderOptions
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Rotation:   transform.RotateNone,
		Background: color.Black,
		Cadence:    timeconv.DefaultCadence(),
	}
}

// fpsTolerance is how far the source rate may drift from the output rate
// before the mismatch is reported.
const fpsTolerance = 0.01

// Orchestrator owns the decoder and encoder handles for one run.
type Orchestrator struct {
	stampStage pipeline.Stage[pipeline.StampInput, pipeline.StampResult]
	fs         ports.FileSystem
	metadata   ports.MetadataSource
	decoder    ports.VideoDecoder
	encoder    ports.VideoEncoder
	stamper    *overlay.Stamper
	progress   ports.Progress
	logger     ports.Logger

	state State
}

// New creates a new Orchestrator in the idle state.
func New(
	stampStage pipeline.Stage[pipeline.StampInput, pipeline.StampResult],
	fs ports.FileSystem,
	metadata ports.MetadataSource,
	decoder ports.VideoDecoder,
	encoder ports.VideoEncoder,
	stamper *overlay.Stamper,
	progress ports.Progress,
	logger ports.Logger,
) *Orchestrator {
	return &Orchestrator{
		stampStage: stampStage,
		fs:         fs,
		metadata:   metadata,
		decoder:    decoder,
		encoder:    encoder,
		stamper:    stamper,
		progress:   progress,
		logger:     logger,
		state:      StateIdle,
	}
}

// State reports where the run currently is.
func (o *Orchestrator) State() State {
	return o.state
}

// Validate checks the output policy before any stream is opened.
// An existing output fails with ports.ErrOutputExists unless config.Force is set.
func (o *Orchestrator) Validate(config Config) error {
	if o.state != StateIdle {
		return fmt.Errorf("validate: orchestrator is %s", o.state)
	}

	if config.InputPath == "" || config.OutputPath == "" {
		o.state = StateFailed
		return fmt.Errorf("validate: input and output paths are required")
	}
	if config.InputPath == config.OutputPath {
		o.state = StateFailed
		return fmt.Errorf("validate: output %s is the input file", config.OutputPath)
	}

	exists, err := o.fs.Exists(config.OutputPath)
	if err != nil {
		o.state = StateFailed
		return fmt.Errorf("validate: check output: %w", err)
	}
	if exists {
		if !config.Force {
			o.state = StateFailed
			return fmt.Errorf("%w: %s", ports.ErrOutputExists, config.OutputPath)
		}
		o.logger.Warn("Output %s exists and will be overwritten", config.OutputPath)
	}

	o.state = StateValidated
	return nil
}

// Run executes the complete pipeline. It validates first when called on an
// idle orchestrator. On a mid-stream failure the partial output is left on disk.
func (o *Orchestrator) Run(ctx context.Context, config Config) (RunResult, error) {
	if o.state == StateIdle {
		if err := o.Validate(config); err != nil {
			o.logger.Error("Validation failed: %s", err)
			return RunResult{}, err
		}
	}
	if o.state != StateValidated {
		return RunResult{}, fmt.Errorf("run: orchestrator is %s", o.state)
	}

	result, err := o.run(ctx, config)
	if err != nil {
		o.state = StateFailed
		o.logger.Error("Run failed: %s", err)
		return result, err
	}

	o.state = StateClosed
	o.logger.Info("Pipeline completed successfully")
	return result, nil
}

func (o *Orchestrator) run(ctx context.Context, config Config) (RunResult, error) {
	o.logger.Info("Starting pipeline")

	// 1. Clip metadata
	info, err := o.metadata.Probe(config.InputPath)
	if err != nil {
		return RunResult{}, fmt.Errorf("%w: probe %s: %w", ports.ErrInputUnreadable, config.InputPath, err)
	}
	endTime, err := o.fs.ModTime(config.InputPath)
	if err != nil {
		return RunResult{}, fmt.Errorf("%w: stat %s: %w", ports.ErrInputUnreadable, config.InputPath, err)
	}
	o.logger.Info("Clip has %d frames at %dx%d, last captured %s",
		info.FrameCount, info.Width, info.Height, endTime.Format(time.RFC3339))

	converter, err := timeconv.New(endTime, info.FrameCount, config.Cadence)
	if err != nil {
		return RunResult{}, fmt.Errorf("%w: %w", ports.ErrInputUnreadable, err)
	}

	outputFPS := config.Cadence.VideoFPS
	if info.SourceFPS > 0 && math.Abs(info.SourceFPS-outputFPS) > fpsTolerance {
		o.logger.Warn("Source plays at %.2f fps but output is written at %.2f fps", info.SourceFPS, outputFPS)
	}

	// 2. Open both streams; each is released on every exit path
	source, err := o.decoder.Open(ctx, config.InputPath, info.Width, info.Height)
	if err != nil {
		return RunResult{}, fmt.Errorf("%w: open decoder: %w", ports.ErrInputUnreadable, err)
	}
	defer func() {
		if err := source.Close(); err != nil {
			o.logger.Warn("Failed to close decoder: %s", err)
		}
	}()

	sink, err := o.encoder.Open(ctx, config.OutputPath, info.Width, info.Height, outputFPS, config.Encoder)
	if err != nil {
		return RunResult{}, fmt.Errorf("%w: open encoder: %w", ports.ErrEncodeFailure, err)
	}

	// 3. Stream
	o.state = StateStreaming
	o.logger.Info("Stamping %d frames into %s", info.FrameCount, config.OutputPath)

	stamped, streamErr := o.stampStage.Execute(ctx, pipeline.StampInput{
		Source:     source,
		Sink:       sink,
		Converter:  converter,
		Rotation:   config.Rotation,
		Stamper:    o.stamper,
		Progress:   o.progress,
		Background: config.Background,
	})

	if err := sink.Close(); err != nil && streamErr == nil {
		streamErr = fmt.Errorf("%w: finalize %s: %w", ports.ErrEncodeFailure, config.OutputPath, err)
	}

	result := RunResult{
		InputPath:     config.InputPath,
		OutputPath:    config.OutputPath,
		Codec:         info.Codec,
		Width:         info.Width,
		Height:        info.Height,
		Rotation:      config.Rotation,
		ProbedFrames:  info.FrameCount,
		FramesWritten: stamped.FramesWritten,
		SourceFPS:     info.SourceFPS,
		OutputFPS:     outputFPS,
		StartTime:     converter.StartTime(),
		EndTime:       converter.EndTime(),
		DurationReal:  converter.DurationReal(),
		DurationVideo: converter.DurationVideo(),
		FirstLabel:    stamped.FirstLabel,
		LastLabel:     stamped.LastLabel,
	}
	if streamErr != nil {
		return result, streamErr
	}

	if stamped.FramesWritten != info.FrameCount {
		o.logger.Warn("Decoded %d frames but the container reported %d", stamped.FramesWritten, info.FrameCount)
	}

	if size, err := o.fs.Size(config.OutputPath); err == nil {
		result.OutputSize = size
	}
	o.logger.Info("Output saved to %s", config.OutputPath)

	return result, nil
}

// RunResult contains the results of a pipeline run for summary generation.
type RunResult struct {
	InputPath  string
	OutputPath string

	// Clip information
	Codec        string
	Width        int
	Height       int
	Rotation     transform.Rotation
	ProbedFrames int
	SourceFPS    float64

	// Timing information
	StartTime     time.Time
	EndTime       time.Time
	DurationReal  time.Duration
	DurationVideo time.Duration
	FirstLabel    string
	LastLabel     string

	// Output information
	FramesWritten int
	OutputFPS     float64
	OutputSize    int64
}
