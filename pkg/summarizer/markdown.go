package summarizer

import (
	"fmt"
	"math"
	"strings"
	"time"
)

// Translator maps a message key to its localized text.
type Translator func(key string) string

// MarkdownFormatter renders a Summary as a Markdown document.
type MarkdownFormatter struct {
	translate Translator
	version   string
}

// MarkdownOption configures a MarkdownFormatter.
type MarkdownOption func(*MarkdownFormatter)

// WithTranslator sets the function used for headings and labels.
func WithTranslator(t Translator) MarkdownOption {
	return func(f *MarkdownFormatter) {
		f.translate = t
	}
}

// WithVersion sets the version printed in the footer.
func WithVersion(version string) MarkdownOption {
	return func(f *MarkdownFormatter) {
		f.version = version
	}
}

// NewMarkdownFormatter creates a formatter; untranslated keys are printed as is.
func NewMarkdownFormatter(opts ...MarkdownOption) *MarkdownFormatter {
	f := &MarkdownFormatter{
		translate: func(key string) string { return key },
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Format implements Formatter.
func (f *MarkdownFormatter) Format(s *Summary) string {
	t := f.translate
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", t("Stamping Summary"))

	// Clip
	fmt.Fprintf(&b, "## %s\n\n", t("Source Clip"))
	f.header(&b)
	f.row(&b, t("File"), s.Clip.Path)
	if s.Clip.Codec != "" {
		f.row(&b, t("Codec"), s.Clip.Codec)
	}
	f.row(&b, t("Dimensions"), fmt.Sprintf("%dx%d", s.Clip.Width, s.Clip.Height))
	f.row(&b, t("Frames"), fmt.Sprintf("%d", s.Clip.FrameCount))
	if s.Clip.SourceFPS > 0 {
		f.row(&b, t("Frame Rate"), fmt.Sprintf("%.2f fps", s.Clip.SourceFPS))
	} else {
		f.row(&b, t("Frame Rate"), "N/A")
	}
	b.WriteString("\n")

	// Timing
	fmt.Fprintf(&b, "## %s\n\n", t("Capture Time"))
	f.header(&b)
	f.row(&b, t("Start"), formatTime(s.Timing.Start))
	f.row(&b, t("End"), formatTime(s.Timing.End))
	f.row(&b, t("Real Duration"), formatDuration(s.Timing.Duration))
	f.row(&b, t("Seconds per Frame"), formatDuration(s.Timing.SecondsPerFrame))
	if s.Timing.FirstLabel != "" {
		f.row(&b, t("Labels"), fmt.Sprintf("%s - %s", s.Timing.FirstLabel, s.Timing.LastLabel))
	}
	b.WriteString("\n")

	// Output
	fmt.Fprintf(&b, "## %s\n\n", t("Output"))
	f.header(&b)
	f.row(&b, t("File"), s.Video.Path)
	f.row(&b, t("Frames"), fmt.Sprintf("%d", s.Video.FrameCount))
	f.row(&b, t("Frame Rate"), fmt.Sprintf("%.2f fps", s.Video.FPS))
	f.row(&b, t("Playback Duration"), formatDuration(s.Video.Duration))
	if s.Video.FileSize > 0 {
		f.row(&b, t("File Size"), formatBytes(s.Video.FileSize))
	}
	b.WriteString("\n")

	// Settings
	fmt.Fprintf(&b, "## %s\n\n", t("Settings"))
	f.header(&b)
	rotation := s.Settings.Rotation
	if rotation == "" {
		rotation = "none"
	}
	f.row(&b, t("Rotation"), rotation)
	if s.Settings.Resolution > 0 {
		f.row(&b, t("Label Resolution"), formatDuration(s.Settings.Resolution))
	}
	if s.Settings.Timezone != "" {
		f.row(&b, t("Time Zone"), s.Settings.Timezone)
	}
	font := s.Settings.FontPath
	if font == "" {
		font = t("Embedded")
	}
	if s.Settings.FontSize > 0 {
		font = fmt.Sprintf("%s (%.0f pt)", font, s.Settings.FontSize)
	}
	f.row(&b, t("Font"), font)
	if s.Settings.Quality > 0 {
		f.row(&b, t("Quality"), fmt.Sprintf("%d", s.Settings.Quality))
	}
	if s.Settings.Bitrate > 0 {
		f.row(&b, t("Bitrate"), fmt.Sprintf("%d kbps", s.Settings.Bitrate))
	}
	if s.Settings.Preset != "" {
		f.row(&b, t("Preset"), s.Settings.Preset)
	}
	b.WriteString("\n")

	// Notes
	var notes []string
	if s.Clip.SourceFPS > 0 && s.Video.FPS > 0 && math.Abs(s.Clip.SourceFPS-s.Video.FPS) > 0.01 {
		notes = append(notes, t("The output frame rate differs from the source clip's frame rate."))
	}
	if s.Video.FrameCount != s.Clip.FrameCount {
		notes = append(notes, t("The number of frames written differs from the number reported by the source container."))
	}
	if len(notes) > 0 {
		fmt.Fprintf(&b, "## %s\n\n", t("Notes"))
		for _, n := range notes {
			fmt.Fprintf(&b, "- %s\n", n)
		}
		b.WriteString("\n")
	}

	b.WriteString("---\n\n")
	generated := s.GeneratedAt.Format("2006-01-02 15:04:05")
	if f.version != "" {
		fmt.Fprintf(&b, "%s lapsestamp %s, %s\n", t("Generated by"), f.version, generated)
	} else {
		fmt.Fprintf(&b, "%s lapsestamp, %s\n", t("Generated by"), generated)
	}

	return b.String()
}

func (f *MarkdownFormatter) header(b *strings.Builder) {
	fmt.Fprintf(b, "| %s | %s |\n|---|---|\n", f.translate("Item"), f.translate("Value"))
}

func (f *MarkdownFormatter) row(b *strings.Builder, key, value string) {
	fmt.Fprintf(b, "| %s | %s |\n", key, value)
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return "N/A"
	}
	return t.Format("2006-01-02 15:04:05 MST")
}

// formatDuration drops zero minute and second units from whole durations.
func formatDuration(d time.Duration) string {
	if d == 0 {
		return "0s"
	}
	if d%time.Second != 0 {
		return d.String()
	}
	s := d.String()
	s = strings.TrimSuffix(s, "m0s")
	if s != d.String() {
		s += "m"
	}
	if strings.HasSuffix(s, "h0m") {
		s = strings.TrimSuffix(s, "0m")
	}
	return s
}

func formatBytes(n int64) string {
	const unit = 1024
	if n < unit {
		return fmt.Sprintf("%d B", n)
	}
	div, exp := int64(unit), 0
	for m := n / unit; m >= unit && exp < 2; m /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.2f %cB", float64(n)/float64(div), "KMG"[exp])
}

// Ensure MarkdownFormatter implements Formatter
var _ Formatter = (*MarkdownFormatter)(nil)
