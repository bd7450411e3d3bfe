package topics

import (
	"reflect"
	"testing"
)

func TestTokenizeNormalizes(t *testing.T) {
	got := tokenize("Skolan, SKOLAN! (skolan?)", MinTokenLength)
	want := []string{"skolan", "skolan", "skolan"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("tokenize = %v, want %v", got, want)
	}
}

func TestTokenizeKeepsDiacritics(t *testing.T) {
	got := tokenize("Lärarna pratade önskemål", MinTokenLength)
	want := []string{"lärarna", "pratade", "önskemål"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("tokenize = %v, want %v", got, want)
	}
}

func TestTokenizeDropsShortTokens(t *testing.T) {
	got := tokenize("ek skog", MinTokenLength)
	want := []string{"skog"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("tokenize = %v, want %v", got, want)
	}
}

func TestTokenizeDropsBareNumbers(t *testing.T) {
	got := tokenize("2024 budgeten covid19 100", MinTokenLength)
	want := []string{"budgeten", "covid19"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("tokenize = %v, want %v", got, want)
	}
}

func TestTokenizeDropsStopwords(t *testing.T) {
	got := tokenize("Vi pratar om skolan idag", MinTokenLength)
	want := []string{"pratar", "skolan"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("tokenize = %v, want %v", got, want)
	}
}

func TestTokenizeRetainsDuplicates(t *testing.T) {
	got := tokenize("ekonomi ekonomi ekonomi", MinTokenLength)
	if len(got) != 3 {
		t.Errorf("got %d tokens, want 3 (duplicates must survive)", len(got))
	}
}

func TestTokenizeEmpty(t *testing.T) {
	if got := tokenize("", MinTokenLength); len(got) != 0 {
		t.Errorf("tokenize(\"\") = %v, want empty", got)
	}
	if got := tokenize("och att men", MinTokenLength); len(got) != 0 {
		t.Errorf("all-stopword input = %v, want empty", got)
	}
}
