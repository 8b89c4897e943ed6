package services

import (
	"testing"

	"github.com/bimma2006/dhanukayaff/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestUpsertPackAssignsNextID(t *testing.T) {
	setupTestStore(t)

	first, err := UpsertPack([]byte(`{"diamonds": 100, "price": "LKR 100"}`), "")
	assert.NoError(t, err)
	assert.Equal(t, 1, first.ID)

	second, err := UpsertPack([]byte(`{"diamonds": 310, "price": "LKR 300"}`), "")
	assert.NoError(t, err)
	assert.Equal(t, 2, second.ID)

	// Gaps do not get reused: max+1, not first-free.
	assert.NoError(t, DeletePack(1))
	third, err := UpsertPack([]byte(`{"diamonds": "wp1", "price": "LKR 450"}`), "")
	assert.NoError(t, err)
	assert.Equal(t, 3, third.ID)
}

func TestUpsertPackMergePreservesFields(t *testing.T) {
	setupTestStore(t)

	created, err := UpsertPack([]byte(`{"diamonds": 100, "price": "LKR 100", "category": "diamonds", "popular": true, "bonus": 10}`), "/uploads/pack_1.png")
	assert.NoError(t, err)
	assert.Equal(t, "/uploads/pack_1.png", created.ImageURL)

	updated, err := UpsertPack([]byte(`{"id": 1, "price": "LKR 150"}`), "")
	assert.NoError(t, err)
	assert.Equal(t, 1, updated.ID)
	assert.Equal(t, "LKR 150", updated.Price)
	assert.Equal(t, models.Amount("100"), updated.Diamonds)
	assert.True(t, updated.Popular)
	assert.Equal(t, 10, updated.Bonus)
	assert.Equal(t, "/uploads/pack_1.png", updated.ImageURL)
}

func TestUpsertPackReplacesImage(t *testing.T) {
	setupTestStore(t)

	UpsertPack([]byte(`{"diamonds": 100, "price": "LKR 100"}`), "/uploads/pack_old.png")
	updated, err := UpsertPack([]byte(`{"id": 1}`), "/uploads/pack_new.png")
	assert.NoError(t, err)
	assert.Equal(t, "/uploads/pack_new.png", updated.ImageURL)
}

func TestUpsertPackUnknownIDAppends(t *testing.T) {
	setupTestStore(t)

	UpsertPack([]byte(`{"diamonds": 100, "price": "LKR 100"}`), "")
	// An id that matches nothing behaves like a create and gets reassigned.
	pack, err := UpsertPack([]byte(`{"id": 77, "diamonds": 200, "price": "LKR 200"}`), "")
	assert.NoError(t, err)
	assert.Equal(t, 2, pack.ID)

	packs, _ := ListPacks()
	assert.Len(t, packs, 2)
}

func TestUpsertPackRejectsBadJSON(t *testing.T) {
	setupTestStore(t)

	_, err := UpsertPack([]byte(`{diamonds}`), "")
	assert.Error(t, err)
}

func TestDeletePackIdempotent(t *testing.T) {
	setupTestStore(t)

	UpsertPack([]byte(`{"diamonds": 100, "price": "LKR 100"}`), "")
	assert.NoError(t, DeletePack(1))
	assert.NoError(t, DeletePack(1))

	packs, _ := ListPacks()
	assert.Empty(t, packs)
}

func TestPackAmountLabels(t *testing.T) {
	setupTestStore(t)

	pack, err := UpsertPack([]byte(`{"diamonds": "wp2", "price": "LKR 900"}`), "")
	assert.NoError(t, err)
	assert.Equal(t, models.Amount("wp2"), pack.Diamonds)
	assert.False(t, pack.Diamonds.IsNumeric())

	packs, _ := ListPacks()
	assert.Equal(t, models.Amount("wp2"), packs[0].Diamonds)
}
