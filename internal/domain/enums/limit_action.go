package enums

// LimitAction is the remediation applied when a limit is breached.
type LimitAction string

const (
	LimitActionRemoveAllRoles LimitAction = "remove_all_roles"
	LimitActionKickUser       LimitAction = "kick_user"
	LimitActionBanUser        LimitAction = "ban_user"
)
