package dto

import "time"

type HitRecordResponse struct {
	ID        string    `json:"id"`
	GuildID   string    `json:"guild_id"`
	UserID    string    `json:"user_id"`
	LimitID   string    `json:"limit_id"`
	CauseIDs  []string  `json:"cause_ids"`
	CreatedAt time.Time `json:"created_at"`
}

type HitsListResponse struct {
	GuildID string              `json:"guild_id"`
	Hits    []HitRecordResponse `json:"hits"`
}
