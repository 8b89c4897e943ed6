package events

import (
	"net/http"
	"strconv"

	"github.com/bimma2006/dhanukayaff/internal/models"
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

type CreateResponse struct {
	Success bool         `json:"success"`
	Event   models.Event `json:"event"`
}

// ListEvents godoc
// @Summary List event banners
// @Tags events
// @Produce json
// @Success 200 {array} models.Event
// @Router /events [get]
func (h *Handler) ListEvents(c *gin.Context) {
	events, err := services.ListEvents()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to load events"))
		return
	}
	c.JSON(http.StatusOK, events)
}

// CreateEvent godoc
// @Summary Add an event banner
// @Description Multipart form: required image, optional title
// @Tags events
// @Accept mpfd
// @Produce json
// @Param image formData file true "Banner image"
// @Param title formData string false "Banner title"
// @Success 200 {object} CreateResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /events [post]
func (h *Handler) CreateEvent(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Image required"))
		return
	}

	imageURL, err := services.SaveUpload(file, h.uploadDir)
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to store image"))
		return
	}

	event, err := services.CreateEvent(imageURL, c.PostForm("title"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to save event"))
		return
	}

	c.JSON(http.StatusOK, CreateResponse{Success: true, Event: *event})
}

// DeleteEvent godoc
// @Summary Delete an event banner
// @Description Idempotent; the banner image stays on disk
// @Tags events
// @Produce json
// @Param id path int true "Event ID"
// @Success 200 {object} utils.SuccessResponse
// @Router /events/{id} [delete]
func (h *Handler) DeleteEvent(c *gin.Context) {
	id, _ := strconv.ParseInt(c.Param("id"), 10, 64)
	if err := services.DeleteEvent(id); err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to delete event"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse())
}
