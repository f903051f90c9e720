package enums

// HierarchyStanding is the outcome of comparing two members in a guild's role
// hierarchy from the first member's point of view. Unknown means the comparison
// could not be performed; callers must treat it as insufficient privilege.
type HierarchyStanding string

const (
	StandingUnknown   HierarchyStanding = "unknown"
	StandingHigher    HierarchyStanding = "higher"
	StandingNotHigher HierarchyStanding = "not_higher"
)
