package model

import (
	"time"

	"github.com/google/uuid"
)

// TimestampLayout is the human-readable layout stamped on composed orders.
// The placed-at line in the outbound message uses it verbatim.
const TimestampLayout = "Jan 2, 2006 3:04 PM"

// CustomerFields holds the customer-entered order form values before
// validation. Email and instructions are optional.
type CustomerFields struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`
	Address      string `json:"address"`
	Size         string `json:"size"`
	Instructions string `json:"instructions"`
}

// OrderRecord is an order after validation and composition. It freezes the
// product name and unit price at composition time and is never mutated.
type OrderRecord struct {
	ID           uuid.UUID
	ProductName  string
	UnitPrice    int
	Size         string
	Quantity     int
	Total        int
	Customer     CustomerFields
	Instructions string
	PlacedAt     string
	CreatedAt    time.Time
}

// InitMeta initializes the order metadata including ID and timestamps.
func (o *OrderRecord) InitMeta(now time.Time) {
	o.ID = uuid.New()
	o.CreatedAt = now
	o.PlacedAt = now.Format(TimestampLayout)
}
