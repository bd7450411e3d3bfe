package topics

import (
	"reflect"
	"testing"

	"github.com/Pluggentipsar/intervju-transkribering/internal/transcript"
)

func TestTopKeywordsRanksByFrequency(t *testing.T) {
	got := topKeywords("ekonomi skola ekonomi skola ekonomi fritid", 3)
	want := []string{"ekonomi", "skola", "fritid"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("topKeywords = %v, want %v", got, want)
	}
}

func TestTopKeywordsTieBreakByFirstOccurrence(t *testing.T) {
	// banan and äpple both occur twice; banan appeared first.
	got := topKeywords("banan äpple banan äpple citron", 3)
	want := []string{"banan", "äpple", "citron"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("topKeywords = %v, want %v", got, want)
	}
}

func TestTopKeywordsSmallVocabulary(t *testing.T) {
	got := topKeywords("skolan", 5)
	if len(got) != 1 {
		t.Fatalf("got %d keywords, want 1", len(got))
	}
}

func TestTopKeywordsEmptyInput(t *testing.T) {
	if got := topKeywords("", 5); len(got) != 0 {
		t.Errorf("topKeywords(\"\") = %v, want empty", got)
	}
}

func TestTopKeywordsIdempotent(t *testing.T) {
	text := "skolan hade ekonomi och fotboll medan ekonomi diskuterades"
	first := topKeywords(text, 5)
	second := topKeywords(text, 5)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated extraction differs: %v vs %v", first, second)
	}
}

func TestWordCloud(t *testing.T) {
	segs := makeSegments(
		"Skolan diskuterar ekonomi",
		"Ekonomi och skolan igen",
		"Fotboll på rasten",
	)
	got := WordCloud(segs, transcript.FieldOriginal, WordCloudSmall)
	want := []WordCount{
		{Word: "skolan", Count: 2},
		{Word: "ekonomi", Count: 2},
		{Word: "diskuterar", Count: 1},
		{Word: "fotboll", Count: 1},
		{Word: "rasten", Count: 1},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("WordCloud = %v, want %v", got, want)
	}
}

func TestWordCloudTruncatesToN(t *testing.T) {
	segs := makeSegments("alfa beta gamma delta epsilon zeta")
	got := WordCloud(segs, transcript.FieldOriginal, 3)
	if len(got) != 3 {
		t.Errorf("got %d rows, want 3", len(got))
	}
}

func TestWordCloudUsesSelectedField(t *testing.T) {
	segs := []transcript.Segment{{
		Index:          0,
		Text:           "Anna gillar fotboll",
		AnonymizedText: "Personen gillar fotboll",
	}}
	got := WordCloud(segs, transcript.FieldAnonymized, WordCloudSmall)
	for _, row := range got {
		if row.Word == "anna" {
			t.Errorf("anonymized cloud contains %q", row.Word)
		}
	}
}

func TestWordCloudEmpty(t *testing.T) {
	if got := WordCloud(nil, transcript.FieldOriginal, WordCloudSmall); len(got) != 0 {
		t.Errorf("WordCloud(nil) = %v, want empty", got)
	}
	segs := makeSegments("skolan")
	if got := WordCloud(segs, transcript.FieldOriginal, 0); len(got) != 0 {
		t.Errorf("WordCloud with n=0 = %v, want empty", got)
	}
}
