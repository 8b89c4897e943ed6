package models

import "time"

// Order statuses. The update endpoint accepts any string, so these are the
// values the UI produces rather than an enforced state machine.
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusCompleted  = "completed"
)

// PackSnapshot is the pack as it was at checkout time. Orders keep their own
// copy so later pack edits never alter historical orders.
type PackSnapshot struct {
	Diamonds Amount `json:"diamonds"`
	Price    string `json:"price"`
	Category string `json:"category,omitempty"`
	Bonus    int    `json:"bonus,omitempty"`
}

type Order struct {
	ID             int64        `json:"id"`
	PlayerID       string       `json:"playerId"`
	PlayerName     string       `json:"playerName,omitempty"`
	UserIdentifier string       `json:"userIdentifier,omitempty"`
	Pack           PackSnapshot `json:"pack"`
	PaymentMethod  string       `json:"paymentMethod"`
	Status         string       `json:"status"`
	Timestamp      time.Time    `json:"timestamp"`
}
