package topics

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Pluggentipsar/intervju-transkribering/internal/transcript"
)

// Sensitivity is the three-level control governing segmentation
// granularity: higher sensitivity means smaller comparison windows and a
// higher similarity bar for keeping chunks together.
type Sensitivity string

const (
	SensitivityLow    Sensitivity = "low"
	SensitivityMedium Sensitivity = "medium"
	SensitivityHigh   Sensitivity = "high"
)

// ErrInvalidSensitivity is returned for sensitivity strings outside
// low/medium/high.
var ErrInvalidSensitivity = errors.New("invalid sensitivity")

// ParseSensitivity maps a user-supplied string to a Sensitivity.
func ParseSensitivity(s string) (Sensitivity, error) {
	switch Sensitivity(strings.ToLower(s)) {
	case SensitivityLow:
		return SensitivityLow, nil
	case SensitivityMedium:
		return SensitivityMedium, nil
	case SensitivityHigh:
		return SensitivityHigh, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidSensitivity, s)
	}
}

// tuning is the per-sensitivity configuration: window size in segments and
// the inclusive similarity threshold for merging.
type tuning struct {
	chunkSize int
	threshold float64
}

var tunings = map[Sensitivity]tuning{
	SensitivityLow:    {chunkSize: 8, threshold: 0.15},
	SensitivityMedium: {chunkSize: 5, threshold: 0.25},
	SensitivityHigh:   {chunkSize: 3, threshold: 0.35},
}

// tuning returns the configuration for s. Only the zero value can miss the
// table (ParseSensitivity never emits one); it maps to medium.
func (s Sensitivity) tuning() tuning {
	if t, ok := tunings[s]; ok {
		return t
	}
	return tunings[SensitivityMedium]
}

// Number of keywords cached per chunk.
const chunkKeywordCount = 8

// chunk is a window of consecutive segments carrying its concatenated text
// and cached keyword set. Chunks exist only during segmentation.
type chunk struct {
	start    int // first segment index, inclusive
	end      int // last segment index, inclusive
	text     string
	keywords []string
}

// buildChunks groups segments into consecutive non-overlapping windows of
// up to size segments; the final window may be shorter. Each chunk eagerly
// extracts its own top keywords.
func buildChunks(segments []transcript.Segment, field transcript.TextField, size int) []chunk {
	var chunks []chunk
	for i := 0; i < len(segments); i += size {
		j := i + size
		if j > len(segments) {
			j = len(segments)
		}
		var b strings.Builder
		for k := i; k < j; k++ {
			if b.Len() > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(segments[k].DisplayText(field))
		}
		text := b.String()
		chunks = append(chunks, chunk{
			start:    i,
			end:      j - 1,
			text:     text,
			keywords: topKeywords(text, chunkKeywordCount),
		})
	}
	return chunks
}
