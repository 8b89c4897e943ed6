package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateEventDefaults(t *testing.T) {
	setupTestStore(t)

	event, err := CreateEvent("/uploads/pack_1.png", "")
	assert.NoError(t, err)
	assert.Equal(t, "Upcoming Event", event.Title)
	assert.Equal(t, "/uploads/pack_1.png", event.ImageURL)
	assert.NotZero(t, event.ID)
}

func TestCreateEventUniqueIDs(t *testing.T) {
	setupTestStore(t)

	seen := map[int64]bool{}
	for i := 0; i < 10; i++ {
		event, err := CreateEvent("/uploads/banner.png", "Season Drop")
		assert.NoError(t, err)
		assert.False(t, seen[event.ID])
		seen[event.ID] = true
	}
}

func TestDeleteEventIdempotent(t *testing.T) {
	setupTestStore(t)

	event, _ := CreateEvent("/uploads/banner.png", "Season Drop")
	assert.NoError(t, DeleteEvent(event.ID))
	assert.NoError(t, DeleteEvent(event.ID))
	assert.NoError(t, DeleteEvent(12345))

	events, _ := ListEvents()
	assert.Empty(t, events)
}
