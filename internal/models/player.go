package models

// PlayerProfile is the result of a player-id lookup. Level and region fall
// back to "-" when the upstream service does not provide them.
type PlayerProfile struct {
	PlayerID   string `json:"playerId"`
	PlayerName string `json:"playerName"`
	Level      string `json:"level,omitempty"`
	Region     string `json:"region,omitempty"`
	RankPoints string `json:"rankPoints,omitempty"`
	ClanName   string `json:"clanName,omitempty"`
}
