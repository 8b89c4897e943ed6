package models

import "time"

// ActivityDetails carries the order context attached to "Order Placed"
// entries. Login/signup entries have no details.
type ActivityDetails struct {
	Pack     Amount `json:"pack"`
	Price    string `json:"price"`
	PlayerID string `json:"playerId"`
	Method   string `json:"method"`
}

// AccountActivity is one audit-log entry. The list is newest-first and
// capped to the most recent 100 entries.
type AccountActivity struct {
	Identifier string           `json:"identifier"`
	Action     string           `json:"action"`
	Timestamp  time.Time        `json:"timestamp"`
	IP         string           `json:"ip"`
	Details    *ActivityDetails `json:"details"`
}
