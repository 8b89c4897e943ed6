package packs

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/bimma2006/dhanukayaff/internal/models"
	"github.com/bimma2006/dhanukayaff/internal/services"
	"github.com/bimma2006/dhanukayaff/internal/utils"

	"github.com/gin-gonic/gin"
)

// Handler serves the pack catalogue. uploadDir is where replacement images
// land.
type Handler struct {
	uploadDir string
}

func NewHandler(uploadDir string) *Handler {
	return &Handler{uploadDir: uploadDir}
}

// UpsertResponse returns the created or updated pack.
type UpsertResponse struct {
	Success bool        `json:"success"`
	Pack    models.Pack `json:"pack"`
}

// ListPacks godoc
// @Summary List the pack catalogue
// @Tags packs
// @Produce json
// @Success 200 {array} models.Pack
// @Router /packs [get]
func (h *Handler) ListPacks(c *gin.Context) {
	packs, err := services.ListPacks()
	if err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to load packs"))
		return
	}
	c.JSON(http.StatusOK, packs)
}

// UpsertPack godoc
// @Summary Create or update a pack
// @Description Multipart form: packData JSON field plus an optional replacement image
// @Tags packs
// @Accept mpfd
// @Produce json
// @Param packData formData string true "Pack fields as JSON"
// @Param image formData file false "Replacement image"
// @Success 200 {object} UpsertResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /packs [post]
func (h *Handler) UpsertPack(c *gin.Context) {
	packData := c.PostForm("packData")
	if packData == "" {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("packData required"))
		return
	}

	imageURL := ""
	if file, err := c.FormFile("image"); err == nil {
		ref, err := services.SaveUpload(file, h.uploadDir)
		if err != nil {
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to store image"))
			return
		}
		imageURL = ref
	}

	pack, err := services.UpsertPack(json.RawMessage(packData), imageURL)
	if err != nil {
		c.JSON(http.StatusBadRequest, utils.NewErrorResponse("Invalid pack data"))
		return
	}

	c.JSON(http.StatusOK, UpsertResponse{Success: true, Pack: *pack})
}

// DeletePack godoc
// @Summary Delete a pack
// @Description Idempotent; the pack image stays on disk
// @Tags packs
// @Produce json
// @Param id path int true "Pack ID"
// @Success 200 {object} utils.SuccessResponse
// @Router /packs/{id} [delete]
func (h *Handler) DeletePack(c *gin.Context) {
	id, _ := strconv.Atoi(c.Param("id"))
	if err := services.DeletePack(id); err != nil {
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse("Failed to delete pack"))
		return
	}
	c.JSON(http.StatusOK, utils.NewSuccessResponse())
}
