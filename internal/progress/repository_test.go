package progress

import "testing"

func TestUpsertParamsValidate(t *testing.T) {
	for _, pct := range []int{0, 50, 100} {
		p := UpsertParams{AssignedCrew: "Team A", ProgressPct: pct}
		if err := p.Validate(); err != nil {
			t.Fatalf("expected %d%% to pass, got %v", pct, err)
		}
	}
	for _, pct := range []int{-1, 101} {
		p := UpsertParams{AssignedCrew: "Team A", ProgressPct: pct}
		if err := p.Validate(); err == nil {
			t.Fatalf("expected %d%% to fail", pct)
		}
	}
}
