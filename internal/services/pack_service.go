package services

import (
	"encoding/json"
	"fmt"

	"github.com/bimma2006/dhanukayaff/internal/database"
	"github.com/bimma2006/dhanukayaff/internal/models"

	"go.uber.org/zap"
)

// UpsertPack creates or updates a pack from the admin panel's raw packData
// JSON. When packData carries the id of an existing pack, the provided
// fields are merged over the stored record; otherwise a new pack gets
// id = max(existing)+1, or 1 for an empty catalogue. imageURL, when not
// empty, replaces the pack image.
func UpsertPack(packData json.RawMessage, imageURL string) (*models.Pack, error) {
	var incoming models.Pack
	if err := json.Unmarshal(packData, &incoming); err != nil {
		return nil, fmt.Errorf("invalid packData: %w", err)
	}

	var packs []models.Pack
	database.DB.Load(database.ResourcePacks, &packs)

	idx := -1
	for i := range packs {
		if packs[i].ID == incoming.ID && incoming.ID != 0 {
			idx = i
			break
		}
	}

	if idx != -1 {
		// Merge: decoding the raw payload over a copy of the stored pack
		// only touches the fields the admin actually sent.
		merged := packs[idx]
		if err := json.Unmarshal(packData, &merged); err != nil {
			return nil, fmt.Errorf("invalid packData: %w", err)
		}
		if imageURL != "" {
			merged.ImageURL = imageURL
		}
		packs[idx] = merged
		incoming = merged
	} else {
		maxID := 0
		for i := range packs {
			if packs[i].ID > maxID {
				maxID = packs[i].ID
			}
		}
		incoming.ID = maxID + 1
		if imageURL != "" {
			incoming.ImageURL = imageURL
		}
		packs = append(packs, incoming)
	}

	if err := database.DB.Save(database.ResourcePacks, packs); err != nil {
		return nil, err
	}
	zap.L().Info("pack upserted", zap.Int("pack_id", incoming.ID), zap.String("diamonds", incoming.Diamonds.String()))
	return &incoming, nil
}

// DeletePack removes a pack; unknown ids are a no-op success.
func DeletePack(id int) error {
	var packs []models.Pack
	database.DB.Load(database.ResourcePacks, &packs)
	kept := packs[:0]
	for _, p := range packs {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	return database.DB.Save(database.ResourcePacks, kept)
}

// ListPacks returns the full catalogue.
func ListPacks() ([]models.Pack, error) {
	packs := []models.Pack{}
	database.DB.Load(database.ResourcePacks, &packs)
	return packs, nil
}
