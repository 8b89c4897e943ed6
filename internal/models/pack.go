package models

import (
	"bytes"
	"encoding/json"
	"errors"
)

// Amount is a diamond quantity that may be a plain number (100) or a label
// such as a weekly-pass code ("wp2"). It round-trips numbers as numbers so
// the stored JSON stays compatible with what the admin panel submits.
type Amount string

func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || string(data) == "null" {
		*a = ""
		return nil
	}
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Amount(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return errors.New("diamonds must be a number or a string")
	}
	*a = Amount(n.String())
	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	if a.IsNumeric() {
		return []byte(a), nil
	}
	return json.Marshal(string(a))
}

func (a Amount) IsNumeric() bool {
	if a == "" {
		return false
	}
	for _, r := range a {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

func (a Amount) String() string { return string(a) }

// Pack is a purchasable bundle shown on the storefront. Price is a free-text
// display string ("LKR 100"), not a numeric amount.
type Pack struct {
	ID       int    `json:"id"`
	Diamonds Amount `json:"diamonds"`
	Price    string `json:"price"`
	Category string `json:"category,omitempty"`
	Popular  bool   `json:"popular,omitempty"`
	Bonus    int    `json:"bonus,omitempty"`
	ImageURL string `json:"imageUrl,omitempty"`
}
