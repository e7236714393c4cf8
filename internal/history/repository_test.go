package history

import (
	"testing"
	"time"
)

func TestCreateParamsValidate(t *testing.T) {
	start := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	p := CreateParams{StartedAt: start, FinishedAt: start.Add(2 * time.Hour)}
	if err := p.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Zero-duration jobs are fine; end must simply not precede start.
	p = CreateParams{StartedAt: start, FinishedAt: start}
	if err := p.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	p = CreateParams{StartedAt: start, FinishedAt: start.Add(-time.Minute)}
	if err := p.Validate(); err == nil {
		t.Fatalf("expected end-before-start to fail")
	}
}

func TestCreateParamsValidateRating(t *testing.T) {
	start := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	base := CreateParams{StartedAt: start, FinishedAt: start.Add(time.Hour)}

	for rating := 1; rating <= 5; rating++ {
		p := base
		r := rating
		p.Rating = &r
		if err := p.Validate(); err != nil {
			t.Fatalf("expected rating %d to pass, got %v", rating, err)
		}
	}
	for _, rating := range []int{0, 6, -1} {
		p := base
		r := rating
		p.Rating = &r
		if err := p.Validate(); err == nil {
			t.Fatalf("expected rating %d to fail", rating)
		}
	}
}
