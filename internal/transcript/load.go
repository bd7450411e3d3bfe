package transcript

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
)

// Metadata summarizes a transcript, mirroring the backend's
// TranscriptResponse metadata block.
type Metadata struct {
	TotalDuration float64 `json:"total_duration"`
	SpeakerCount  int     `json:"speaker_count"`
	WordCount     int     `json:"word_count"`
	SegmentCount  int     `json:"segment_count"`
}

// Transcript is a full transcript export for one transcription job.
type Transcript struct {
	JobID    string    `json:"job_id"`
	Segments []Segment `json:"segments"`
	Metadata Metadata  `json:"metadata"`
}

// Load decodes a transcript export. Segments are sorted by index so callers
// can rely on positional order regardless of export order.
func Load(r io.Reader) (*Transcript, error) {
	var tr Transcript
	if err := json.NewDecoder(r).Decode(&tr); err != nil {
		return nil, fmt.Errorf("decode transcript: %w", err)
	}
	sort.Slice(tr.Segments, func(i, j int) bool {
		return tr.Segments[i].Index < tr.Segments[j].Index
	})
	return &tr, nil
}

// LoadFile reads and decodes a transcript export from disk.
func LoadFile(path string) (*Transcript, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open transcript: %w", err)
	}
	defer f.Close()
	return Load(f)
}

// ComputeMetadata derives transcript metadata from the segment list, the
// same way the backend computes it when serving a transcript.
func ComputeMetadata(segments []Segment) Metadata {
	speakers := make(map[string]struct{})
	words := 0
	duration := 0.0
	for _, s := range segments {
		if s.Speaker != "" {
			speakers[s.Speaker] = struct{}{}
		}
		words += len(strings.Fields(s.Text))
		if s.EndTime > duration {
			duration = s.EndTime
		}
	}
	return Metadata{
		TotalDuration: duration,
		SpeakerCount:  len(speakers),
		WordCount:     words,
		SegmentCount:  len(segments),
	}
}
