package invoice

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentState string

const (
	PaymentPending PaymentState = "pending"
	PaymentPaid    PaymentState = "paid"
	PaymentPartial PaymentState = "partial"
	PaymentOverdue PaymentState = "overdue"
)

func ParsePaymentState(s string) (PaymentState, error) {
	switch PaymentState(s) {
	case PaymentPending, PaymentPaid, PaymentPartial, PaymentOverdue:
		return PaymentState(s), nil
	default:
		return "", fmt.Errorf("unknown payment state: %s", s)
	}
}

type Invoice struct {
	BookingID     int64           `json:"booking_id"`
	Number        string          `json:"invoice_number"`
	TotalAmount   decimal.Decimal `json:"-"`
	PaidAmount    decimal.Decimal `json:"-"`
	PaymentState  PaymentState    `json:"payment_state"`
	DueDate       *time.Time      `json:"due_date,omitempty"`
	PaidAt        *time.Time      `json:"paid_at,omitempty"`
	PaymentMethod string          `json:"payment_method,omitempty"`
}

// Outstanding is the derived balance; it is computed, never stored.
func (i *Invoice) Outstanding() decimal.Decimal {
	return i.TotalAmount.Sub(i.PaidAmount)
}

// Render expands the invoice for the wire: amounts as fixed two-decimal
// strings plus the derived outstanding balance.
func (i *Invoice) Render() map[string]any {
	out := map[string]any{
		"booking_id":     i.BookingID,
		"invoice_number": i.Number,
		"total_amount":   i.TotalAmount.StringFixed(2),
		"paid_amount":    i.PaidAmount.StringFixed(2),
		"outstanding":    i.Outstanding().StringFixed(2),
		"payment_state":  string(i.PaymentState),
	}
	if i.DueDate != nil {
		out["due_date"] = i.DueDate.Format("2006-01-02")
	}
	if i.PaidAt != nil {
		out["paid_at"] = i.PaidAt.Format(time.RFC3339)
	}
	if i.PaymentMethod != "" {
		out["payment_method"] = i.PaymentMethod
	}
	return out
}

// NewNumber derives a unique 20-character invoice number, e.g. INV-9F86D081884C7D65.
func NewNumber() string {
	id := uuid.New()
	return "INV-" + strings.ToUpper(fmt.Sprintf("%x", id[:8]))
}
