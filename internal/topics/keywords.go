package topics

import (
	"sort"
	"strings"

	"github.com/Pluggentipsar/intervju-transkribering/internal/transcript"
)

// WordCount is one row of a keyword frequency table.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// Word cloud sizes offered by the UI.
const (
	WordCloudSmall  = 25
	WordCloudMedium = 50
	WordCloudLarge  = 100
)

// rankTokens counts token frequency in insertion order and sorts by
// descending count. The sort is stable, so equal counts rank by first
// occurrence in the span.
func rankTokens(tokens []string) []WordCount {
	index := make(map[string]int, len(tokens))
	var ranked []WordCount
	for _, tok := range tokens {
		if i, ok := index[tok]; ok {
			ranked[i].Count++
			continue
		}
		index[tok] = len(ranked)
		ranked = append(ranked, WordCount{Word: tok, Count: 1})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Count > ranked[j].Count
	})
	return ranked
}

// topKeywords returns the n highest-ranked content words of a text span,
// fewer if the vocabulary is smaller. Empty input yields an empty list.
func topKeywords(text string, n int) []string {
	ranked := rankTokens(tokenize(text, MinTokenLength))
	if n < len(ranked) {
		ranked = ranked[:n]
	}
	words := make([]string, 0, len(ranked))
	for _, r := range ranked {
		words = append(words, r.Word)
	}
	return words
}

// WordCloud ranks every content word of the whole transcript by frequency,
// bypassing chunking and boundary detection entirely. n is the desired table
// size (WordCloudSmall/Medium/Large in the UI); n <= 0 yields an empty table.
func WordCloud(segments []transcript.Segment, field transcript.TextField, n int) []WordCount {
	if n <= 0 {
		return nil
	}
	var b strings.Builder
	for _, s := range segments {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(s.DisplayText(field))
	}
	ranked := rankTokens(tokenize(b.String(), MinTokenLength))
	if n < len(ranked) {
		ranked = ranked[:n]
	}
	return ranked
}
