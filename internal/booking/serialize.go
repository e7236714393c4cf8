package booking

import "time"

// View is the wire representation of a booking: enum values become their
// display labels, the price becomes a fixed two-decimal string or null.
type View struct {
	ID             int64   `json:"id"`
	ServiceType    string  `json:"service_type"`
	Description    string  `json:"description"`
	ServiceAddress string  `json:"service_address"`
	ScheduledAt    string  `json:"scheduled_at"`
	State          string  `json:"state"`
	EstimatedPrice *string `json:"estimated_price"`
	CreatedAt      string  `json:"created_at,omitempty"`
}

func (b *Booking) Render() View {
	v := View{
		ID:             b.ID,
		ServiceType:    b.ServiceType.Label(),
		Description:    b.Description,
		ServiceAddress: b.ServiceAddress,
		ScheduledAt:    b.ScheduledAt.Format(time.RFC3339),
		State:          b.State.Label(),
	}
	if b.EstimatedPrice.Valid {
		s := b.EstimatedPrice.Decimal.StringFixed(2)
		v.EstimatedPrice = &s
	}
	return v
}

// RenderWithCreated is the list-result variant, which also carries created_at.
func (b *Booking) RenderWithCreated() View {
	v := b.Render()
	v.CreatedAt = b.CreatedAt.Format(time.RFC3339)
	return v
}
