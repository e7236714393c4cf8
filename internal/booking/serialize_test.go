package booking

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestRender(t *testing.T) {
	b := &Booking{
		ID:             42,
		UserID:         7,
		ServiceType:    TypeCommercial,
		Description:    "Office windows",
		ServiceAddress: "500 Main St",
		ScheduledAt:    time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC),
		State:          StatePending,
		EstimatedPrice: decimal.NewNullDecimal(decimal.RequireFromString("1234.5")),
		CreatedAt:      time.Date(2025, 2, 20, 8, 30, 0, 0, time.UTC),
	}

	v := b.Render()
	if v.ID != 42 {
		t.Fatalf("expected id 42, got %d", v.ID)
	}
	if v.ServiceType != "Business Services" {
		t.Fatalf("expected label, got %q", v.ServiceType)
	}
	if v.State != "Pending" {
		t.Fatalf("expected Pending, got %q", v.State)
	}
	if v.ScheduledAt != "2025-03-01T10:00:00Z" {
		t.Fatalf("expected RFC3339 date, got %q", v.ScheduledAt)
	}
	if v.EstimatedPrice == nil || *v.EstimatedPrice != "1234.50" {
		t.Fatalf("expected fixed two-decimal price, got %v", v.EstimatedPrice)
	}
	if v.CreatedAt != "" {
		t.Fatalf("plain render must not carry created_at")
	}
}

func TestRenderNilPrice(t *testing.T) {
	b := &Booking{ServiceType: TypeResidential, State: StateCancelled}
	v := b.Render()
	if v.EstimatedPrice != nil {
		t.Fatalf("expected null price, got %v", *v.EstimatedPrice)
	}
	if v.State != "Cancelled" {
		t.Fatalf("expected Cancelled, got %q", v.State)
	}
}

func TestRenderWithCreated(t *testing.T) {
	b := &Booking{
		ServiceType: TypeSpecialized,
		State:       StateInProgress,
		CreatedAt:   time.Date(2025, 2, 20, 8, 30, 0, 0, time.UTC),
	}
	v := b.RenderWithCreated()
	if v.CreatedAt != "2025-02-20T08:30:00Z" {
		t.Fatalf("expected created_at, got %q", v.CreatedAt)
	}
	if v.State != "In Progress" {
		t.Fatalf("expected In Progress, got %q", v.State)
	}
}
