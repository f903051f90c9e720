package model

import "time"

// LimitHit is the evidence for one breach of one limit by one user. Transient;
// produced by evaluation and consumed by enforcement within a single invocation.
type LimitHit struct {
	Limit Limit
	Cause []UserAction
}

// HitLimitRecord is the durable audit row written for an authorized hit.
type HitLimitRecord struct {
	ID        string
	GuildID   string
	UserID    string
	LimitID   string
	CauseIDs  []string
	CreatedAt time.Time
}
