package booking

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func validRequest() ScheduleRequest {
	return ScheduleRequest{
		ServiceType:    "residential",
		Description:    "Deep clean",
		ServiceAddress: "123 Elm St",
		ScheduledAt:    "2025-03-01T10:00:00",
	}
}

func TestValidate_OK(t *testing.T) {
	params, verr := validRequest().Validate()
	if verr != nil {
		t.Fatalf("unexpected error: %v", verr)
	}
	if params.ServiceType != TypeResidential {
		t.Fatalf("expected residential, got %s", params.ServiceType)
	}
	want := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	if !params.ScheduledAt.Equal(want) {
		t.Fatalf("expected %s, got %s", want, params.ScheduledAt)
	}
	if params.EstimatedPrice.Valid {
		t.Fatalf("expected no price")
	}
}

func TestValidate_NamesFirstMissingField(t *testing.T) {
	cases := []struct {
		mutate func(*ScheduleRequest)
		want   string
	}{
		{func(r *ScheduleRequest) { r.ServiceType = "" }, "the field service_type is required"},
		{func(r *ScheduleRequest) { r.Description = "  " }, "the field description is required"},
		{func(r *ScheduleRequest) { r.ServiceAddress = "" }, "the field service_address is required"},
		{func(r *ScheduleRequest) { r.ScheduledAt = "" }, "the field scheduled_at is required"},
	}
	for _, c := range cases {
		req := validRequest()
		c.mutate(&req)
		_, verr := req.Validate()
		if verr == nil || verr.Message != c.want {
			t.Fatalf("expected %q, got %v", c.want, verr)
		}
	}

	// All missing: the first in declaration order wins.
	_, verr := ScheduleRequest{}.Validate()
	if verr == nil || verr.Message != "the field service_type is required" {
		t.Fatalf("expected service_type named first, got %v", verr)
	}
}

func TestValidate_RejectsUnknownServiceType(t *testing.T) {
	req := validRequest()
	req.ServiceType = "gardening"
	if _, verr := req.Validate(); verr == nil {
		t.Fatalf("expected validation error")
	}

	// Type check fires even when the date is also broken: order matters.
	req.ScheduledAt = "not-a-date"
	_, verr := req.Validate()
	if verr == nil || verr.Message != "invalid service type" {
		t.Fatalf("expected invalid service type first, got %v", verr)
	}
}

func TestValidate_RejectsUnparseableDate(t *testing.T) {
	req := validRequest()
	req.ScheduledAt = "first of March"
	_, verr := req.Validate()
	if verr == nil {
		t.Fatalf("expected validation error")
	}
}

func TestValidate_PricePassesThroughUnchecked(t *testing.T) {
	req := validRequest()
	req.EstimatedPrice = decimal.NewNullDecimal(decimal.RequireFromString("-10.00"))
	params, verr := req.Validate()
	if verr != nil {
		t.Fatalf("unexpected error: %v", verr)
	}
	if !params.EstimatedPrice.Valid || !params.EstimatedPrice.Decimal.Equal(decimal.RequireFromString("-10.00")) {
		t.Fatalf("expected price stored verbatim, got %v", params.EstimatedPrice)
	}
}

func TestParseDateTime(t *testing.T) {
	ok := []string{
		"2025-03-01T10:00:00",
		"2025-03-01T10:00",
		"2025-03-01T10:00:00Z",
		"2025-03-01T10:00:00+02:00",
		"2025-03-01 10:00:00",
	}
	for _, s := range ok {
		if _, err := ParseDateTime(s); err != nil {
			t.Fatalf("expected %q to parse, got %v", s, err)
		}
	}

	bad := []string{"", "tomorrow", "2025-13-01T10:00:00", "01/03/2025"}
	for _, s := range bad {
		if _, err := ParseDateTime(s); err == nil {
			t.Fatalf("expected %q to fail", s)
		}
	}
}
