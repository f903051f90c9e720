package enums

// LimitType classifies an observed user action for threshold tracking.
type LimitType string

const (
	LimitTypeSpam          LimitType = "spam"
	LimitTypeChannelCreate LimitType = "channel_create"
	LimitTypeChannelDelete LimitType = "channel_delete"
	LimitTypeRoleCreate    LimitType = "role_create"
	LimitTypeRoleDelete    LimitType = "role_delete"
	LimitTypeKickMember    LimitType = "kick_member"
	LimitTypeBanMember     LimitType = "ban_member"
)

func (t LimitType) Valid() bool {
	switch t {
	case LimitTypeSpam,
		LimitTypeChannelCreate,
		LimitTypeChannelDelete,
		LimitTypeRoleCreate,
		LimitTypeRoleDelete,
		LimitTypeKickMember,
		LimitTypeBanMember:
		return true
	default:
		return false
	}
}
