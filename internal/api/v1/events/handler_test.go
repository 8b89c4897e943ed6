package events_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/bimma2006/dhanukayaff/internal/api/v1/events"
	"github.com/bimma2006/dhanukayaff/internal/database"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	database.DB = database.NewFileStore(t.TempDir())

	router := gin.New()
	api := router.Group("/api")
	events.RegisterRoutes(api, func(c *gin.Context) { c.Next() }, t.TempDir())
	return router
}

func postEvent(t *testing.T, router *gin.Engine, title string, withImage bool) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	if title != "" {
		writer.WriteField("title", title)
	}
	if withImage {
		part, err := writer.CreateFormFile("image", "banner.jpg")
		assert.NoError(t, err)
		part.Write([]byte("jpg-bytes"))
	}
	writer.Close()

	req := httptest.NewRequest(http.MethodPost, "/api/events", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCreateEvent(t *testing.T) {
	router := setupRouter(t)

	w := postEvent(t, router, "Season Drop", true)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp events.CreateResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Season Drop", resp.Event.Title)
	assert.NotZero(t, resp.Event.ID)
	assert.Contains(t, resp.Event.ImageURL, "/uploads/")
}

func TestCreateEventRequiresImage(t *testing.T) {
	router := setupRouter(t)

	w := postEvent(t, router, "No Image", false)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error": "Image required"}`, w.Body.String())
}

func TestCreateEventDefaultTitle(t *testing.T) {
	router := setupRouter(t)

	w := postEvent(t, router, "", true)
	var resp events.CreateResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Upcoming Event", resp.Event.Title)
}

func TestDeleteEventIdempotent(t *testing.T) {
	router := setupRouter(t)

	w := postEvent(t, router, "Season Drop", true)
	var resp events.CreateResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))

	for i := 0; i < 2; i++ {
		req := httptest.NewRequest(http.MethodDelete, fmt.Sprintf("/api/events/%d", resp.Event.ID), nil)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
	}
}
