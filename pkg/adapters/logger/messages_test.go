package logger

import (
	"testing"

	"github.com/ideamans/go-l10n"
)

func TestMessages_JapaneseLexicon(t *testing.T) {
	keys := []string{
		"Starting pipeline",
		"Clip has %d frames at %dx%d, last captured %s",
		"Stamping %d frames into %s",
		"Output saved to %s",
		"Pipeline completed successfully",
		"Summary saved to %s",
		"Streaming %d frames with rotation %s",
		"Streamed %d frames",
		"Starting %s %s",
		"Output %s exists and will be overwritten",
		"Source plays at %.2f fps but output is written at %.2f fps",
		"Decoded %d frames but the container reported %d",
		"Frame %d is beyond the probed frame count %d",
		"Failed to close decoder: %s",
		"Interrupted, shutting down...",
		"Validation failed: %s",
		"Run failed: %s",
	}

	ja := l10n.World["ja"]
	for _, key := range keys {
		if v, ok := ja[key]; !ok || v == "" {
			t.Errorf("missing ja translation for %q", key)
		}
	}
}
