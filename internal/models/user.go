package models

import "time"

// User is a storefront account. Passwords are stored as-is: the reference
// deployment has no hashing and login is exact string comparison.
type User struct {
	Identifier string    `json:"identifier"`
	Username   string    `json:"username,omitempty"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone"`
	NIC        string    `json:"nic"`
	Password   string    `json:"password"`
	CreatedAt  time.Time `json:"createdAt"`
}

// MatchesIdentifier reports whether the given login identifier equals any of
// the user's identity fields.
func (u *User) MatchesIdentifier(identifier string) bool {
	return u.Identifier == identifier ||
		(u.Email != "" && u.Email == identifier) ||
		(u.Phone != "" && u.Phone == identifier) ||
		(u.Username != "" && u.Username == identifier) ||
		(u.NIC != "" && u.NIC == identifier)
}
