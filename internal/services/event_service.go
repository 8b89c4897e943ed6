package services

import (
	"time"

	"github.com/bimma2006/dhanukayaff/internal/database"
	"github.com/bimma2006/dhanukayaff/internal/models"

	"go.uber.org/zap"
)

// CreateEvent appends a new banner. The id is the creation time in
// milliseconds, bumped until unused like order ids.
func CreateEvent(imageURL, title string) (*models.Event, error) {
	if title == "" {
		title = "Upcoming Event"
	}

	var events []models.Event
	database.DB.Load(database.ResourceEvents, &events)

	id := time.Now().UnixMilli()
	for eventExists(events, id) {
		id++
	}

	event := models.Event{ID: id, ImageURL: imageURL, Title: title}
	events = append(events, event)
	if err := database.DB.Save(database.ResourceEvents, events); err != nil {
		return nil, err
	}
	zap.L().Info("event banner added", zap.Int64("event_id", event.ID))
	return &event, nil
}

// DeleteEvent removes a banner; unknown ids are a no-op success. The image
// file stays on disk (no orphan cleanup).
func DeleteEvent(id int64) error {
	var events []models.Event
	database.DB.Load(database.ResourceEvents, &events)
	kept := events[:0]
	for _, e := range events {
		if e.ID != id {
			kept = append(kept, e)
		}
	}
	return database.DB.Save(database.ResourceEvents, kept)
}

// ListEvents returns all banners in insertion order.
func ListEvents() ([]models.Event, error) {
	events := []models.Event{}
	database.DB.Load(database.ResourceEvents, &events)
	return events, nil
}

func eventExists(events []models.Event, id int64) bool {
	for i := range events {
		if events[i].ID == id {
			return true
		}
	}
	return false
}
