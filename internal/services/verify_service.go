package services

import (
	"encoding/json"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/bimma2006/dhanukayaff/config"
	"github.com/bimma2006/dhanukayaff/internal/models"
	"github.com/bimma2006/dhanukayaff/internal/utils"

	"go.uber.org/zap"
)

// verifyClient is the outbound client for profile lookups. The timeout keeps
// a slow upstream from stalling the checkout flow.
var verifyClient = utils.NewHTTPClient(10 * time.Second)

// profileCache caches successful lookups for the process lifetime. There is
// no eviction; player-id cardinality is tiny for a single storefront.
type profileCache struct {
	mu       sync.RWMutex
	profiles map[string]models.PlayerProfile
}

var playerCache = &profileCache{profiles: make(map[string]models.PlayerProfile)}

func (c *profileCache) get(playerID string) (models.PlayerProfile, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	p, ok := c.profiles[playerID]
	return p, ok
}

func (c *profileCache) put(p models.PlayerProfile) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.profiles[p.PlayerID] = p
}

// upstream lookup response shape; only basicInfo matters.
type verifyAPIResponse struct {
	BasicInfo *struct {
		Nickname string      `json:"nickname"`
		Level    json.Number `json:"level"`
		Region   string      `json:"region"`
	} `json:"basicInfo"`
}

// VerifyPlayer resolves a player id to a display profile. Verification is
// cosmetic: any upstream failure degrades to a synthetic Player_<id> profile
// so the checkout flow is never blocked. Only real profiles are cached.
func VerifyPlayer(playerID string) models.PlayerProfile {
	if cached, ok := playerCache.get(playerID); ok {
		return cached
	}

	if profile, ok := lookupPlayer(playerID); ok {
		playerCache.put(profile)
		zap.L().Info("player verified", zap.String("player_id", playerID), zap.String("player_name", profile.PlayerName))
		return profile
	}

	zap.L().Warn("player verification fell back to synthetic profile", zap.String("player_id", playerID))
	return models.PlayerProfile{
		PlayerID:   playerID,
		PlayerName: "Player_" + playerID,
		Level:      "-",
		Region:     "-",
	}
}

func lookupPlayer(playerID string) (models.PlayerProfile, bool) {
	cfg, err := config.LoadConfig()
	if err != nil || cfg.VerifyAPIURL == "" {
		return models.PlayerProfile{}, false
	}

	endpoint, err := url.Parse(cfg.VerifyAPIURL)
	if err != nil {
		return models.PlayerProfile{}, false
	}
	query := endpoint.Query()
	query.Set("id", playerID)
	if cfg.VerifyAPIKey != "" {
		query.Set("key", cfg.VerifyAPIKey)
	}
	endpoint.RawQuery = query.Encode()

	resp, err := verifyClient.Get(endpoint.String())
	if err != nil {
		return models.PlayerProfile{}, false
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return models.PlayerProfile{}, false
	}

	var body verifyAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return models.PlayerProfile{}, false
	}
	if body.BasicInfo == nil || body.BasicInfo.Nickname == "" {
		return models.PlayerProfile{}, false
	}

	profile := models.PlayerProfile{
		PlayerID:   playerID,
		PlayerName: body.BasicInfo.Nickname,
		Level:      body.BasicInfo.Level.String(),
		Region:     body.BasicInfo.Region,
	}
	if profile.Level == "" {
		profile.Level = "-"
	}
	if profile.Region == "" {
		profile.Region = "-"
	}
	return profile, true
}

// ResetPlayerCache clears cached profiles. Test hook.
func ResetPlayerCache() {
	playerCache.mu.Lock()
	defer playerCache.mu.Unlock()
	playerCache.profiles = make(map[string]models.PlayerProfile)
}
