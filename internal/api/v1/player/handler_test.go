package player_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/bimma2006/dhanukayaff/internal/api/v1/player"
	"github.com/bimma2006/dhanukayaff/internal/database"
	"github.com/bimma2006/dhanukayaff/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	database.DB = database.NewFileStore(t.TempDir())
	services.ResetPlayerCache()

	router := gin.New()
	api := router.Group("/api")
	player.RegisterRoutes(api)
	return router
}

func verify(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/verify-player", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestVerifyRequiresPlayerID(t *testing.T) {
	router := setupRouter(t)

	w := verify(router, `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error": "Player ID required"}`, w.Body.String())
}

func TestVerifyResolvesUpstreamProfile(t *testing.T) {
	router := setupRouter(t)

	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"basicInfo": {"nickname": "SniperKing", "level": 62, "region": "IND"}}`))
	}))
	defer upstream.Close()
	t.Setenv("VERIFY_API_URL", upstream.URL)

	w := verify(router, `{"playerId": "12345678"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp player.VerifyResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "SniperKing", resp.PlayerName)
	assert.Equal(t, "62", resp.Level)
}

func TestVerifyNeverFailsHard(t *testing.T) {
	router := setupRouter(t)
	t.Setenv("VERIFY_API_URL", "http://127.0.0.1:1")

	w := verify(router, `{"playerId": "99"}`)
	assert.Equal(t, http.StatusOK, w.Code)

	var resp player.VerifyResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "Player_99", resp.PlayerName)
}
