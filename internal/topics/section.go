package topics

import (
	"strings"
	"unicode/utf8"

	"github.com/Pluggentipsar/intervju-transkribering/internal/transcript"
)

// Section is a maximal run of consecutive segments judged topically
// coherent; the unit the UI exposes for navigation. Field names match the
// frontend's JSON shape.
type Section struct {
	ID           int      `json:"id"`
	StartIndex   int      `json:"startIndex"`
	EndIndex     int      `json:"endIndex"`
	StartTime    float64  `json:"startTime"`
	EndTime      float64  `json:"endTime"`
	Keywords     []string `json:"keywords"`
	SegmentCount int      `json:"segmentCount"`
	Summary      string   `json:"summary"`
}

const (
	sectionKeywordCount = 5
	unionKeywordCount   = 10
	summaryMaxRunes     = 160
)

// Sections partitions the transcript into topic-coherent sections covering
// every segment in order, with no gaps or overlaps. Empty input yields an
// empty result; any non-empty input yields at least one section. The result
// is a pure function of (segments, field, sensitivity).
func Sections(segments []transcript.Segment, field transcript.TextField, sensitivity Sensitivity) []Section {
	return sectionsWithTuning(segments, field, sensitivity.tuning())
}

func sectionsWithTuning(segments []transcript.Segment, field transcript.TextField, tun tuning) []Section {
	chunks := buildChunks(segments, field, tun.chunkSize)
	if len(chunks) == 0 {
		return nil
	}

	var sections []Section
	cand := openCandidate(chunks[0])
	for _, c := range chunks[1:] {
		// Inclusive on the threshold: a chunk exactly at the boundary merges.
		if jaccard(cand.union, c.keywords) >= tun.threshold {
			cand.merge(c)
			continue
		}
		sections = append(sections, cand.close(len(sections), segments))
		cand = openCandidate(c)
	}
	// The open candidate always closes, so coverage is total.
	sections = append(sections, cand.close(len(sections), segments))
	return sections
}

// candidate is the single accumulating state of the boundary detector: the
// open section's segment range, its concatenated text, and a capped keyword
// union used only as the merge cue.
type candidate struct {
	start int
	end   int
	text  string
	union []string
}

func openCandidate(c chunk) candidate {
	return candidate{start: c.start, end: c.end, text: c.text, union: c.keywords}
}

// merge extends the candidate with the next chunk and recomputes the capped
// keyword union from the full accumulated text.
func (cand *candidate) merge(c chunk) {
	cand.end = c.end
	cand.text = cand.text + " " + c.text
	cand.union = topKeywords(cand.text, unionKeywordCount)
}

// close finalizes the candidate. Keywords are re-extracted from the full
// accumulated text, not from the capped union, which is only an internal cue.
func (cand *candidate) close(id int, segments []transcript.Segment) Section {
	return Section{
		ID:           id,
		StartIndex:   cand.start,
		EndIndex:     cand.end,
		StartTime:    segments[cand.start].StartTime,
		EndTime:      segments[cand.end].EndTime,
		Keywords:     topKeywords(cand.text, sectionKeywordCount),
		SegmentCount: cand.end - cand.start + 1,
		Summary:      summarize(cand.text),
	}
}

// summarize truncates the section text to a short display snippet, cut on a
// word boundary.
func summarize(text string) string {
	text = strings.TrimSpace(text)
	if utf8.RuneCountInString(text) <= summaryMaxRunes {
		return text
	}
	runes := []rune(text)
	cut := string(runes[:summaryMaxRunes])
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = cut[:i]
	}
	return strings.TrimSpace(cut) + "…"
}
