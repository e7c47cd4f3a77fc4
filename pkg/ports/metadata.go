package ports

// ClipInfo describes a source clip as reported by its container.
type ClipInfo struct {
	Path       string
	FrameCount int // Total decodable frames
	Width      int
	Height     int
	SourceFPS  float64 // Playback rate declared by the source, 0 if unknown
	Codec      string
}

// MetadataSource reads clip metadata without decoding frames.
type MetadataSource interface {
	// Probe inspects the clip at path.
	Probe(path string) (ClipInfo, error)
}
