package models

// Event is a promotional banner shown in the storefront slider.
type Event struct {
	ID       int64  `json:"id"`
	ImageURL string `json:"imageUrl"`
	Title    string `json:"title"`
}
