package summarizer

import (
	"strings"
	"testing"
	"time"
)

func sampleSummary() *Summary {
	start := time.Date(2024, 1, 1, 11, 50, 0, 0, time.UTC)
	return &Summary{
		GeneratedAt: time.Date(2024, 1, 15, 10, 30, 0, 0, time.UTC),
		Clip: ClipInfo{
			Path:       "garden.mp4",
			Codec:      "h264",
			Width:      1920,
			Height:     1080,
			FrameCount: 120,
			SourceFPS:  30,
		},
		Timing: TimingInfo{
			Start:           start,
			End:             start.Add(10 * time.Minute),
			Duration:        10 * time.Minute,
			SecondsPerFrame: 5 * time.Second,
			FirstLabel:      "11:50a",
			LastLabel:       "11:50a",
		},
		Settings: Settings{
			Rotation:   "right",
			Resolution: 10 * time.Minute,
			FontSize:   64,
			Quality:    30,
			Preset:     "fast",
		},
		Video: VideoInfo{
			Path:       "garden-stamped.mp4",
			FrameCount: 120,
			FPS:        30,
			Duration:   4 * time.Second,
			FileSize:   1024 * 1024,
		},
	}
}

func TestMarkdownFormatter_Format_Basic(t *testing.T) {
	result := NewMarkdownFormatter().Format(sampleSummary())

	checks := []string{
		"# Stamping Summary",
		"garden.mp4",
		"garden-stamped.mp4",
		"1920x1080",
		"30.00 fps",
		"2024-01-01 11:50:00 UTC",
		"2024-01-01 12:00:00 UTC",
		"| Real Duration | 10m |",
		"| Seconds per Frame | 5s |",
		"| Playback Duration | 4s |",
		"11:50a - 11:50a",
		"1.00 MB",
		"right",
		"Embedded (64 pt)",
		"fast",
	}

	for _, check := range checks {
		if !strings.Contains(result, check) {
			t.Errorf("expected output to contain %q", check)
		}
	}

	if strings.Contains(result, "## Notes") {
		t.Error("expected no notes when source and output agree")
	}
}

func TestMarkdownFormatter_Format_Notes(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Summary)
		want   string
	}{
		{
			name:   "frame rate mismatch",
			modify: func(s *Summary) { s.Clip.SourceFPS = 25 },
			want:   "frame rate differs",
		},
		{
			name:   "frame count mismatch",
			modify: func(s *Summary) { s.Video.FrameCount = 118 },
			want:   "number of frames written differs",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := sampleSummary()
			tt.modify(s)
			result := NewMarkdownFormatter().Format(s)

			if !strings.Contains(result, "## Notes") {
				t.Error("expected a notes section")
			}
			if !strings.Contains(result, tt.want) {
				t.Errorf("expected note containing %q", tt.want)
			}
		})
	}
}

func TestMarkdownFormatter_Format_UnknownSourceRate(t *testing.T) {
	s := sampleSummary()
	s.Clip.SourceFPS = 0
	result := NewMarkdownFormatter().Format(s)

	if !strings.Contains(result, "| Frame Rate | N/A |") {
		t.Error("expected N/A for unknown source frame rate")
	}
	if strings.Contains(result, "## Notes") {
		t.Error("expected no rate note when the source rate is unknown")
	}
}

func TestMarkdownFormatter_WithTranslator(t *testing.T) {
	translator := func(key string) string {
		translations := map[string]string{
			"Stamping Summary": "スタンプ処理サマリー",
			"Source Clip":      "元のクリップ",
			"Embedded":         "内蔵",
		}
		if v, ok := translations[key]; ok {
			return v
		}
		return key
	}

	result := NewMarkdownFormatter(WithTranslator(translator)).Format(sampleSummary())

	for _, want := range []string{"スタンプ処理サマリー", "元のクリップ", "内蔵"} {
		if !strings.Contains(result, want) {
			t.Errorf("expected translated %q", want)
		}
	}
}

func TestMarkdownFormatter_WithVersion(t *testing.T) {
	result := NewMarkdownFormatter(WithVersion("v1.2.0")).Format(sampleSummary())

	if !strings.Contains(result, "lapsestamp v1.2.0") {
		t.Error("expected output to contain version 'v1.2.0'")
	}
}

func TestFormatBytes(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{0, "0 B"},
		{100, "100 B"},
		{1024, "1.00 KB"},
		{1536, "1.50 KB"},
		{1024 * 1024, "1.00 MB"},
		{1024 * 1024 * 1024, "1.00 GB"},
		{1536 * 1024 * 1024, "1.50 GB"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got := formatBytes(tt.bytes)
			if got != tt.want {
				t.Errorf("formatBytes(%d) = %q, want %q", tt.bytes, got, tt.want)
			}
		})
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0s"},
		{5 * time.Second, "5s"},
		{10 * time.Minute, "10m"},
		{time.Hour, "1h"},
		{90 * time.Minute, "1h30m"},
		{65 * time.Second, "1m5s"},
		{1500 * time.Millisecond, "1.5s"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			if got := formatDuration(tt.d); got != tt.want {
				t.Errorf("formatDuration(%v) = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}
