// Package summarizer provides summary generation for stamping runs.
package summarizer

import "time"

// Summary contains all data collected during a stamping run.
type Summary struct {
	// Metadata
	GeneratedAt time.Time

	// Source clip
	Clip ClipInfo

	// Real-time span covered by the labels
	Timing TimingInfo

	// Run settings
	Settings Settings

	// Video output details
	Video VideoInfo
}

// ClipInfo describes the source clip.
type ClipInfo struct {
	Path       string
	Codec      string
	Width      int
	Height     int
	FrameCount int     // As reported by the container
	SourceFPS  float64 // 0 if unknown
}

// TimingInfo contains the inferred capture times.
type TimingInfo struct {
	Start           time.Time
	End             time.Time
	Duration        time.Duration
	SecondsPerFrame time.Duration
	FirstLabel      string
	LastLabel       string
}

// Settings contains the run configuration.
type Settings struct {
	Rotation   string
	Resolution time.Duration // Label bucket width
	Timezone   string
	FontPath   string // Empty for the embedded face
	FontSize   float64
	Quality    int
	Bitrate    int
	Preset     string
}

// VideoInfo contains information about the output video.
type VideoInfo struct {
	Path       string
	FrameCount int
	FPS        float64
	Duration   time.Duration
	FileSize   int64
}

// NewSummary creates a new Summary with the current timestamp.
func NewSummary() *Summary {
	return &Summary{
		GeneratedAt: time.Now(),
	}
}

// Builder provides a fluent interface for building a Summary.
type Builder struct {
	summary *Summary
}

// NewBuilder creates a new Builder.
func NewBuilder() *Builder {
	return &Builder{
		summary: NewSummary(),
	}
}

// WithClip sets source clip information.
func (b *Builder) WithClip(clip ClipInfo) *Builder {
	b.summary.Clip = clip
	return b
}

// WithTiming sets the capture time span.
func (b *Builder) WithTiming(timing TimingInfo) *Builder {
	b.summary.Timing = timing
	return b
}

// WithSettings sets run settings.
func (b *Builder) WithSettings(settings Settings) *Builder {
	b.summary.Settings = settings
	return b
}

// WithVideo sets video output information.
func (b *Builder) WithVideo(video VideoInfo) *Builder {
	b.summary.Video = video
	return b
}

// Build returns the constructed Summary.
func (b *Builder) Build() *Summary {
	return b.summary
}
