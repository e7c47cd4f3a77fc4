package summarizer

import (
	"testing"
	"time"
)

func TestNewSummary(t *testing.T) {
	before := time.Now()
	summary := NewSummary()
	after := time.Now()

	if summary.GeneratedAt.Before(before) || summary.GeneratedAt.After(after) {
		t.Errorf("GeneratedAt should be between %v and %v, got %v",
			before, after, summary.GeneratedAt)
	}
}

func TestBuilder_FullChain(t *testing.T) {
	start := time.Date(2024, 1, 1, 11, 50, 0, 0, time.UTC)
	summary := NewBuilder().
		WithClip(ClipInfo{Path: "in.mp4", Width: 1920, Height: 1080, FrameCount: 120}).
		WithTiming(TimingInfo{Start: start, End: start.Add(10 * time.Minute), Duration: 10 * time.Minute}).
		WithSettings(Settings{Rotation: "left", Quality: 30}).
		WithVideo(VideoInfo{Path: "out.mp4", FrameCount: 120, FPS: 30}).
		Build()

	if summary.Clip.Path != "in.mp4" || summary.Clip.FrameCount != 120 {
		t.Errorf("clip not set correctly: %+v", summary.Clip)
	}
	if !summary.Timing.Start.Equal(start) || summary.Timing.Duration != 10*time.Minute {
		t.Errorf("timing not set correctly: %+v", summary.Timing)
	}
	if summary.Settings.Rotation != "left" || summary.Settings.Quality != 30 {
		t.Errorf("settings not set correctly: %+v", summary.Settings)
	}
	if summary.Video.Path != "out.mp4" || summary.Video.FPS != 30 {
		t.Errorf("video not set correctly: %+v", summary.Video)
	}
}
