package scoring

import "testing"

func TestNormalizeTags(t *testing.T) {
	got := NormalizeTags(" AI, training,, ai ,  Wellbeing ")
	if len(got) != 3 {
		t.Fatalf("expected 3 tags, got %d: %v", len(got), got)
	}
	for _, tag := range []string{"ai", "training", "wellbeing"} {
		if !got.Contains(tag) {
			t.Fatalf("expected tag %q", tag)
		}
	}
}

func TestNormalizeTags_Empty(t *testing.T) {
	if got := NormalizeTags(""); len(got) != 0 {
		t.Fatalf("expected empty set, got %v", got)
	}
	if got := NormalizeTags(" , ,, "); len(got) != 0 {
		t.Fatalf("expected empty set for blank tags, got %v", got)
	}
}

func TestCommonCount(t *testing.T) {
	a := NormalizeTags("ai, training, dei")
	b := NormalizeTags("Training, community, AI")
	if got := a.CommonCount(b); got != 2 {
		t.Fatalf("expected 2 common tags, got %d", got)
	}
	if got := a.CommonCount(NormalizeTags("")); got != 0 {
		t.Fatalf("expected 0 common tags, got %d", got)
	}
}

func TestParseIntOr(t *testing.T) {
	if got := ParseIntOr(" 7 ", 3); got != 7 {
		t.Fatalf("expected 7, got %d", got)
	}
	if got := ParseIntOr("not-a-number", 3); got != 3 {
		t.Fatalf("expected default 3, got %d", got)
	}
	if got := ParseIntOr("", 3); got != 3 {
		t.Fatalf("expected default 3 for empty input, got %d", got)
	}
}

func TestClampInt(t *testing.T) {
	if got := ClampInt(12, 0, 10); got != 10 {
		t.Fatalf("expected 10, got %d", got)
	}
	if got := ClampInt(-2, 0, 10); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
	if got := ClampInt(5, 0, 10); got != 5 {
		t.Fatalf("expected 5, got %d", got)
	}
}
