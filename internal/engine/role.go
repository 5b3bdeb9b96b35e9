package engine

import "strings"

// Role selects how the viewing hours are labelled. It never changes the arithmetic.
type Role string

const (
	// RoleProducer means the hours are views of the user's own channel over the last 7 days.
	RoleProducer Role = "producer"
	// RoleConsumer means the hours are the user's own weekly viewing time.
	RoleConsumer Role = "consumer"
)

// NormalizeRole lowercases r and maps empty or unrecognized values to RoleProducer.
func NormalizeRole(r string) Role {
	switch Role(strings.ToLower(strings.TrimSpace(r))) {
	case RoleConsumer:
		return RoleConsumer
	default:
		return RoleProducer
	}
}

// IsValidRole reports whether r names a known role.
func IsValidRole(r string) bool {
	switch Role(strings.ToLower(strings.TrimSpace(r))) {
	case RoleProducer, RoleConsumer:
		return true
	}
	return false
}

// Toggle returns the other role.
func (r Role) Toggle() Role {
	if r == RoleConsumer {
		return RoleProducer
	}
	return RoleConsumer
}
