// Package transcript defines the transcript data model shared by the topic
// engine and its front-ends. Segments are owned by the caller and read-only
// to everything in this module.
package transcript

// Segment is one timestamped span of transcript text, optionally attributed
// to a speaker. Field names follow the backend's JSON export.
type Segment struct {
	ID             int64    `json:"id"`
	Index          int      `json:"segment_index"`
	StartTime      float64  `json:"start_time"`
	EndTime        float64  `json:"end_time"`
	Text           string   `json:"text"`
	AnonymizedText string   `json:"anonymized_text,omitempty"`
	Speaker        string   `json:"speaker,omitempty"`
	Confidence     *float64 `json:"confidence,omitempty"`
}

// TextField selects which text variant of a segment is processed.
type TextField string

const (
	FieldOriginal   TextField = "original"
	FieldAnonymized TextField = "anonymized"
)

// DisplayText returns the chosen text variant. Segments without an
// anonymized variant fall back to the original text, matching how the
// desktop app displays them.
func (s Segment) DisplayText(f TextField) string {
	if f == FieldAnonymized && s.AnonymizedText != "" {
		return s.AnonymizedText
	}
	return s.Text
}
