// Package mp4probe reads clip metadata from MP4/MOV containers without decoding frames.
package mp4probe

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/Eyevinn/mp4ff/mp4"

	"github.com/user/lapsestamp/pkg/ports"
)

var (
	// ErrNoVideoTrack is returned when the container holds no video track.
	ErrNoVideoTrack = errors.New("mp4probe: no video track found")

	// ErrNoSampleTable is returned when the video track lacks the boxes needed to count frames.
	ErrNoSampleTable = errors.New("mp4probe: no sample table found")
)

// Probe implements ports.MetadataSource using mp4ff.
type Probe struct{}

// New creates a new Probe.
func New() *Probe {
	return &Probe{}
}

// Probe inspects the clip at path.
func (p *Probe) Probe(path string) (ports.ClipInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return ports.ClipInfo{}, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	info, err := ProbeReader(f)
	if err != nil {
		return ports.ClipInfo{}, err
	}
	info.Path = path
	return info, nil
}

// ProbeReader inspects an MP4 stream.
func ProbeReader(reader io.ReadSeeker) (ports.ClipInfo, error) {
	mp4File, err := mp4.DecodeFile(reader)
	if err != nil {
		return ports.ClipInfo{}, fmt.Errorf("decode mp4: %w", err)
	}

	moov := mp4File.Moov
	if moov == nil && mp4File.Init != nil {
		moov = mp4File.Init.Moov
	}
	if moov == nil {
		return ports.ClipInfo{}, fmt.Errorf("no moov box found")
	}

	trak := findVideoTrack(moov)
	if trak == nil {
		return ports.ClipInfo{}, ErrNoVideoTrack
	}

	info := ports.ClipInfo{Codec: "unknown"}
	fillSampleEntry(&info, trak)

	var timescale uint32 = 1000
	if trak.Mdia.Mdhd != nil && trak.Mdia.Mdhd.Timescale > 0 {
		timescale = trak.Mdia.Mdhd.Timescale
	}

	var frames int
	var duration uint64
	if mp4File.IsFragmented() {
		frames, duration, err = countFragmented(mp4File, moov, trak.Tkhd.TrackID)
	} else {
		frames, duration, err = countProgressive(trak)
	}
	if err != nil {
		return ports.ClipInfo{}, err
	}

	info.FrameCount = frames
	if duration > 0 {
		info.SourceFPS = float64(frames) * float64(timescale) / float64(duration)
	}
	return info, nil
}

func findVideoTrack(moov *mp4.MoovBox) *mp4.TrakBox {
	for _, trak := range moov.Traks {
		if trak.Mdia != nil && trak.Mdia.Hdlr != nil && trak.Mdia.Hdlr.HandlerType == "vide" {
			return trak
		}
	}
	return nil
}

// fillSampleEntry reads codec and coded size, falling back to the track header.
func fillSampleEntry(info *ports.ClipInfo, trak *mp4.TrakBox) {
	if trak.Mdia.Minf != nil && trak.Mdia.Minf.Stbl != nil && trak.Mdia.Minf.Stbl.Stsd != nil {
		for _, child := range trak.Mdia.Minf.Stbl.Stsd.Children {
			if entry, ok := child.(*mp4.VisualSampleEntryBox); ok {
				info.Codec = codecName(child.Type())
				info.Width = int(entry.Width)
				info.Height = int(entry.Height)
				break
			}
		}
	}

	if (info.Width == 0 || info.Height == 0) && trak.Tkhd != nil {
		info.Width = int(trak.Tkhd.Width >> 16)
		info.Height = int(trak.Tkhd.Height >> 16)
	}
}

func codecName(sampleEntry string) string {
	switch sampleEntry {
	case "avc1", "avc3":
		return "h264"
	case "hvc1", "hev1":
		return "hevc"
	case "av01":
		return "av1"
	case "vp09":
		return "vp9"
	case "mp4v":
		return "mpeg4"
	default:
		return sampleEntry
	}
}

func countProgressive(trak *mp4.TrakBox) (int, uint64, error) {
	if trak.Mdia.Minf == nil || trak.Mdia.Minf.Stbl == nil || trak.Mdia.Minf.Stbl.Stsz == nil {
		return 0, 0, ErrNoSampleTable
	}
	stbl := trak.Mdia.Minf.Stbl
	count := stbl.Stsz.SampleNumber

	var duration uint64
	if stbl.Stts != nil && count > 0 {
		last, dur := stbl.Stts.GetDecodeTime(count)
		duration = last + uint64(dur)
	} else if trak.Mdia.Mdhd != nil {
		duration = trak.Mdia.Mdhd.Duration
	}
	return int(count), duration, nil
}

func countFragmented(mp4File *mp4.File, moov *mp4.MoovBox, trackID uint32) (int, uint64, error) {
	var trex *mp4.TrexBox
	if moov.Mvex != nil {
		for _, t := range moov.Mvex.Trexs {
			if t.TrackID == trackID {
				trex = t
				break
			}
		}
	}

	var count int
	var duration uint64
	for _, seg := range mp4File.Segments {
		for _, frag := range seg.Fragments {
			if frag.Moof == nil {
				continue
			}
			for _, traf := range frag.Moof.Trafs {
				if traf.Tfhd.TrackID != trackID {
					continue
				}
				samples, err := frag.GetFullSamples(trex)
				if err != nil {
					return 0, 0, fmt.Errorf("get samples: %w", err)
				}
				count += len(samples)
				for _, s := range samples {
					duration += uint64(s.Dur)
				}
			}
		}
	}
	return count, duration, nil
}

// Ensure Probe implements ports.MetadataSource
var _ ports.MetadataSource = (*Probe)(nil)
