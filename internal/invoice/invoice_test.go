package invoice

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
)

func TestOutstanding(t *testing.T) {
	inv := &Invoice{
		TotalAmount: decimal.RequireFromString("250.00"),
		PaidAmount:  decimal.RequireFromString("100.50"),
	}
	if got := inv.Outstanding(); !got.Equal(decimal.RequireFromString("149.50")) {
		t.Fatalf("expected 149.50, got %s", got)
	}
}

func TestRenderAmounts(t *testing.T) {
	inv := &Invoice{
		BookingID:    1,
		Number:       "INV-0011223344556677",
		TotalAmount:  decimal.RequireFromString("250"),
		PaidAmount:   decimal.RequireFromString("250"),
		PaymentState: PaymentPaid,
	}
	out := inv.Render()
	if out["total_amount"] != "250.00" {
		t.Fatalf("expected fixed two decimals, got %v", out["total_amount"])
	}
	if out["outstanding"] != "0.00" {
		t.Fatalf("expected zero outstanding, got %v", out["outstanding"])
	}
	if out["payment_state"] != "paid" {
		t.Fatalf("expected paid, got %v", out["payment_state"])
	}
	if _, ok := out["paid_at"]; ok {
		t.Fatalf("unset paid_at must be omitted")
	}
}

func TestNewNumber(t *testing.T) {
	n := NewNumber()
	if len(n) != 20 {
		t.Fatalf("expected 20 characters, got %d (%q)", len(n), n)
	}
	if !strings.HasPrefix(n, "INV-") {
		t.Fatalf("expected INV- prefix, got %q", n)
	}
	if n == NewNumber() {
		t.Fatalf("expected consecutive numbers to differ")
	}
}

func TestParsePaymentState(t *testing.T) {
	for _, s := range []string{"pending", "paid", "partial", "overdue"} {
		if _, err := ParsePaymentState(s); err != nil {
			t.Fatalf("expected %q to parse, got %v", s, err)
		}
	}
	if _, err := ParsePaymentState("refunded"); err == nil {
		t.Fatalf("expected unknown state to fail")
	}
}
