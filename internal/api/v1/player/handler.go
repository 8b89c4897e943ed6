package player

import (
	"net/http"

	"github.com/bimma2006/dhanukayaff/internal/services"
	"github.com/bimma2006/dhanukayaff/internal/utils"

	"github.com/gin-gonic/gin"
)

// VerifyInput carries the player id to resolve.
type VerifyInput struct {
	PlayerID string `json:"playerId" binding:"required"`
}

// VerifyResponse flattens the profile into the response the checkout modal
// renders. Success is always true once the id is present: verification is
// cosmetic and never blocks the purchase flow.
type VerifyResponse struct {
	Success    bool   `json:"success"`
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName"`
	Level      string `json:"level,omitempty"`
	Region     string `json:"region,omitempty"`
}

// VerifyPlayer godoc
// @Summary Resolve a player id to a display name
// @Description Cached upstream lookup with a synthetic Player_<id> fallback
// @Tags player
// @Accept json
// @Produce json
// @Param input body VerifyInput true "Player id"
// @Success 200 {object} VerifyResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /verify-player [post]
func VerifyPlayer(c *gin.Context) {
	var input VerifyInput
	if err := c.ShouldBindJSON(&input); err != nil || input.PlayerID == "" {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Player ID required"))
		return
	}

	profile := services.VerifyPlayer(input.PlayerID)
	c.JSON(http.StatusOK, VerifyResponse{
		Success:    true,
		PlayerID:   profile.PlayerID,
		PlayerName: profile.PlayerName,
		Level:      profile.Level,
		Region:     profile.Region,
	})
}
