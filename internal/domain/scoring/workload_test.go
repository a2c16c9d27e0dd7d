package scoring

import "testing"

func TestScoreWorkload_PercentsSumTo100(t *testing.T) {
	cases := []struct{ days, load int }{
		{0, 0}, {1, 0}, {0, 10}, {10, 5}, {20, 10}, {25, 3}, {-4, 99},
	}
	for _, c := range cases {
		ws := ScoreWorkload(c.days, c.load)
		if ws.WorkloadPercent+ws.AvailabilityPercent != 100 {
			t.Fatalf("days=%d load=%d: %d + %d != 100", c.days, c.load, ws.WorkloadPercent, ws.AvailabilityPercent)
		}
	}
}

func TestScoreWorkload_Empty(t *testing.T) {
	ws := ScoreWorkload(0, 0)
	if ws.WorkloadPercent != 0 {
		t.Fatalf("expected workload 0, got %d", ws.WorkloadPercent)
	}
	if ws.AvailabilityPercent != 100 {
		t.Fatalf("expected availability 100, got %d", ws.AvailabilityPercent)
	}
}

func TestScoreWorkload_FullMonth(t *testing.T) {
	ws := ScoreWorkload(20, 10)
	if ws.Score != 23.0 {
		t.Fatalf("expected score 23.0, got %v", ws.Score)
	}
	if ws.WorkloadPercent != 100 {
		t.Fatalf("expected workload 100, got %d", ws.WorkloadPercent)
	}
	if ws.AvailabilityPercent != 0 {
		t.Fatalf("expected availability 0, got %d", ws.AvailabilityPercent)
	}
}

func TestScoreWorkload_CapsAt100(t *testing.T) {
	ws := ScoreWorkload(40, 10)
	if ws.WorkloadPercent != 100 {
		t.Fatalf("expected workload capped at 100, got %d", ws.WorkloadPercent)
	}
}

func TestScoreWorkload_Monotonic(t *testing.T) {
	prev := -1
	for days := 0; days <= 25; days++ {
		ws := ScoreWorkload(days, 5)
		if ws.WorkloadPercent < prev {
			t.Fatalf("workload percent decreased at days=%d: %d < %d", days, ws.WorkloadPercent, prev)
		}
		prev = ws.WorkloadPercent
	}

	prev = -1
	for load := 0; load <= 10; load++ {
		ws := ScoreWorkload(10, load)
		if ws.WorkloadPercent < prev {
			t.Fatalf("workload percent decreased at load=%d: %d < %d", load, ws.WorkloadPercent, prev)
		}
		prev = ws.WorkloadPercent
	}
}

func TestScoreWorkload_CoercesInputs(t *testing.T) {
	ws := ScoreWorkload(-3, 42)
	if ws.WorkDays != 0 {
		t.Fatalf("expected negative work days coerced to 0, got %d", ws.WorkDays)
	}
	if ws.PerceivedLoad != 10 {
		t.Fatalf("expected perceived load clamped to 10, got %d", ws.PerceivedLoad)
	}
}
