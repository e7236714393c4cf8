package booking

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// ScheduleRequest is the typed shape of a booking creation payload. Parsing
// fails closed: no domain object is built until every field checks out.
type ScheduleRequest struct {
	ServiceType    string              `json:"service_type"`
	Description    string              `json:"description"`
	ServiceAddress string              `json:"service_address"`
	ScheduledAt    string              `json:"scheduled_at"`
	EstimatedPrice decimal.NullDecimal `json:"estimated_price"`
}

type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// Validate checks the request in a fixed order: required fields first (naming
// the first missing one), then the service type vocabulary, then the date.
// The estimated price is passed through untouched; legacy clients send
// whatever they like here and the original backend never range-checked it.
func (r ScheduleRequest) Validate() (CreateParams, *ValidationError) {
	required := []struct{ name, value string }{
		{"service_type", r.ServiceType},
		{"description", r.Description},
		{"service_address", r.ServiceAddress},
		{"scheduled_at", r.ScheduledAt},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return CreateParams{}, &ValidationError{Message: "the field " + f.name + " is required"}
		}
	}

	serviceType, err := ParseServiceType(r.ServiceType)
	if err != nil {
		return CreateParams{}, &ValidationError{Message: "invalid service type"}
	}

	scheduledAt, err := ParseDateTime(r.ScheduledAt)
	if err != nil {
		return CreateParams{}, &ValidationError{Message: "invalid date format, use ISO format (YYYY-MM-DDTHH:MM:SS)"}
	}

	return CreateParams{
		ServiceType:    serviceType,
		Description:    r.Description,
		ServiceAddress: r.ServiceAddress,
		ScheduledAt:    scheduledAt,
		EstimatedPrice: r.EstimatedPrice,
	}, nil
}

var dateTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
}

// ParseDateTime accepts ISO-8601 date-times with or without a zone offset.
func ParseDateTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	var lastErr error
	for _, layout := range dateTimeLayouts {
		t, err := time.Parse(layout, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}
