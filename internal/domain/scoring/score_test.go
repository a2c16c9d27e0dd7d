package scoring

import "testing"

func TestFinalScore_WithProjectExperience(t *testing.T) {
	exp := 40
	// round(0.55*80 + 0.30*60 + 0.15*40) = round(44 + 18 + 6) = 68
	if got := FinalScore(80, 60, &exp); got != 68 {
		t.Fatalf("expected 68, got %d", got)
	}
}

func TestFinalScore_WithoutReferenceProject(t *testing.T) {
	// round(0.65*80 + 0.35*60) = round(52 + 21) = 73
	if got := FinalScore(80, 60, nil); got != 73 {
		t.Fatalf("expected 73, got %d", got)
	}
}

func TestFinalScore_ZeroExperienceIsNotAbsent(t *testing.T) {
	zero := 0
	with := FinalScore(80, 60, &zero)
	without := FinalScore(80, 60, nil)
	if with == without {
		t.Fatalf("expected different formulas for zero vs absent experience, both gave %d", with)
	}
	if with != 62 {
		t.Fatalf("expected 62 with a zero experience score, got %d", with)
	}
}

func TestFinalScore_Bounds(t *testing.T) {
	full := 100
	if got := FinalScore(100, 100, &full); got != 100 {
		t.Fatalf("expected 100, got %d", got)
	}
	empty := 0
	if got := FinalScore(0, 0, &empty); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}
