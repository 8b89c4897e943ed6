package services

import (
	"time"

	"github.com/bimma2006/dhanukayaff/internal/database"
	"github.com/bimma2006/dhanukayaff/internal/models"
)

// maxActivityEntries caps the account-history log; older entries are
// silently discarded.
const maxActivityEntries = 100

// LogAccountActivity prepends an audit entry for a login, signup or order
// event. Failures only get logged by the store; activity logging never fails
// the calling flow.
func LogAccountActivity(identifier, action string, details *models.ActivityDetails) {
	var history []models.AccountActivity
	database.DB.Load(database.ResourceAccounts, &history)

	entry := models.AccountActivity{
		Identifier: identifier,
		Action:     action,
		Timestamp:  time.Now(),
		IP:         "User Action",
		Details:    details,
	}
	history = append([]models.AccountActivity{entry}, history...)
	if len(history) > maxActivityEntries {
		history = history[:maxActivityEntries]
	}
	database.DB.Save(database.ResourceAccounts, history)
}

// AccountHistory returns the retained activity entries, newest first.
func AccountHistory() ([]models.AccountActivity, error) {
	history := []models.AccountActivity{}
	database.DB.Load(database.ResourceAccounts, &history)
	return history, nil
}
