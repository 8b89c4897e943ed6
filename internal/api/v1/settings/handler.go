package settings

import (
	"net/http"

	"github.com/bimma2006/dhanukayaff/internal/services"
	"github.com/bimma2006/dhanukayaff/internal/utils"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	uploadDir string
}

func NewHandler(uploadDir string) *Handler {
	return &Handler{uploadDir: uploadDir}
}

// ImageResponse acknowledges a stored image and returns its reference.
type ImageResponse struct {
	Success  bool   `json:"success"`
	ImageURL string `json:"imageUrl"`
}

// GetSettings godoc
// @Summary Fetch store settings
// @Tags settings
// @Produce json
// @Success 200 {object} models.Settings
// @Router /settings [get]
func (h *Handler) GetSettings(c *gin.Context) {
	settings, err := services.GetSettings()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to load settings"))
		return
	}
	c.JSON(http.StatusOK, settings)
}

// UpdateSettings godoc
// @Summary Merge-update store settings
// @Description Shallow merge; omitted keys are never cleared
// @Tags settings
// @Accept json
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /settings [post]
func (h *Handler) UpdateSettings(c *gin.Context) {
	var updates map[string]any
	if err := c.ShouldBindJSON(&updates); err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Malformed JSON or invalid request body"))
		return
	}

	if _, err := services.MergeSettings(updates); err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to save settings"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse())
}

// UploadProfilePic godoc
// @Summary Set the admin profile picture
// @Tags settings
// @Accept mpfd
// @Produce json
// @Param profilePic formData file true "Profile picture"
// @Success 200 {object} ImageResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /settings/profile-pic [post]
func (h *Handler) UploadProfilePic(c *gin.Context) {
	h.storeImage(c, "profilePic", services.SetAdminProfilePic)
}

// UploadGameIcon godoc
// @Summary Set the icon for one game
// @Tags settings
// @Accept mpfd
// @Produce json
// @Param gameIcon formData file true "Game icon"
// @Param gameId formData string true "Game identifier"
// @Success 200 {object} ImageResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /settings/game-icon [post]
func (h *Handler) UploadGameIcon(c *gin.Context) {
	gameID := c.PostForm("gameId")
	if gameID == "" {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("gameId required"))
		return
	}
	h.storeImage(c, "gameIcon", func(imageURL string) error {
		return services.SetGameIcon(gameID, imageURL)
	})
}

// UploadPaymentBanner godoc
// @Summary Set the payment-methods banner
// @Tags settings
// @Accept mpfd
// @Produce json
// @Param paymentBanner formData file true "Payment banner"
// @Success 200 {object} ImageResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /settings/payment-methods [post]
func (h *Handler) UploadPaymentBanner(c *gin.Context) {
	h.storeImage(c, "paymentBanner", services.SetPaymentMethodsBanner)
}

func (h *Handler) storeImage(c *gin.Context, field string, apply func(string) error) {
	file, err := c.FormFile(field)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("No file uploaded"))
		return
	}

	imageURL, err := services.SaveUpload(file, h.uploadDir)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to store image"))
		return
	}

	if err := apply(imageURL); err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to save settings"))
		return
	}

	c.JSON(http.StatusOK, ImageResponse{Success: true, ImageURL: imageURL})
}
