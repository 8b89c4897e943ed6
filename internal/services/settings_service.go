package services

import (
	"github.com/bimma2006/dhanukayaff/internal/database"
	"github.com/bimma2006/dhanukayaff/internal/models"

	"go.uber.org/zap"
)

// GetSettings returns the settings document, empty before the first write.
func GetSettings() (models.Settings, error) {
	settings := models.Settings{}
	database.DB.Load(database.ResourceSettings, &settings)
	return settings, nil
}

// MergeSettings shallow-merges updates over the stored document. Keys absent
// from updates are never cleared, and unknown keys are kept verbatim.
func MergeSettings(updates map[string]any) (models.Settings, error) {
	settings, _ := GetSettings()
	for k, v := range updates {
		settings[k] = v
	}
	if err := database.DB.Save(database.ResourceSettings, settings); err != nil {
		return nil, err
	}
	zap.L().Info("settings merged", zap.Int("keys", len(updates)))
	return settings, nil
}

// SetAdminProfilePic stores the uploaded profile picture reference.
func SetAdminProfilePic(imageURL string) error {
	settings, _ := GetSettings()
	settings["adminProfilePic"] = imageURL
	return database.DB.Save(database.ResourceSettings, settings)
}

// SetGameIcon stores the icon reference for one game id.
func SetGameIcon(gameID, imageURL string) error {
	settings, _ := GetSettings()
	settings.GameIcons()[gameID] = imageURL
	return database.DB.Save(database.ResourceSettings, settings)
}

// SetPaymentMethodsBanner stores the payment-methods banner reference.
func SetPaymentMethodsBanner(imageURL string) error {
	settings, _ := GetSettings()
	settings["paymentMethodsBanner"] = imageURL
	return database.DB.Save(database.ResourceSettings, settings)
}
