package topics

import "testing"

func TestJaccardIdentity(t *testing.T) {
	a := []string{"skolan", "ekonomi", "fotboll"}
	if got := jaccard(a, a); got != 1.0 {
		t.Errorf("jaccard(A, A) = %v, want 1.0", got)
	}
}

func TestJaccardEmpty(t *testing.T) {
	a := []string{"skolan"}
	if got := jaccard(a, nil); got != 0 {
		t.Errorf("jaccard(A, {}) = %v, want 0", got)
	}
	if got := jaccard(nil, a); got != 0 {
		t.Errorf("jaccard({}, A) = %v, want 0", got)
	}
	if got := jaccard(nil, nil); got != 0 {
		t.Errorf("jaccard({}, {}) = %v, want 0", got)
	}
}

func TestJaccardDisjoint(t *testing.T) {
	a := []string{"skolan", "elever"}
	b := []string{"ekonomi", "budget"}
	if got := jaccard(a, b); got != 0 {
		t.Errorf("jaccard = %v, want 0", got)
	}
}

func TestJaccardPartialOverlap(t *testing.T) {
	a := []string{"pratar", "skolan"}
	b := []string{"skolan", "många", "elever"}
	if got := jaccard(a, b); got != 0.25 {
		t.Errorf("jaccard = %v, want 0.25", got)
	}
}

func TestJaccardSymmetric(t *testing.T) {
	a := []string{"skolan", "ekonomi"}
	b := []string{"ekonomi", "fritid", "fotboll"}
	if jaccard(a, b) != jaccard(b, a) {
		t.Errorf("jaccard not symmetric: %v vs %v", jaccard(a, b), jaccard(b, a))
	}
}
