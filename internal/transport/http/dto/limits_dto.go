package dto

type LimitResponse struct {
	ID         string `json:"id"`
	GuildID    string `json:"guild_id"`
	Name       string `json:"name"`
	Type       string `json:"type"`
	Action     string `json:"action"`
	Per        int    `json:"per"`
	WindowSecs int64  `json:"window_secs"`
}

type LimitsListResponse struct {
	GuildID string          `json:"guild_id"`
	Limits  []LimitResponse `json:"limits"`
}
