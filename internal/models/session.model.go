package models

import "time"

type SessionKind string

const (
	SessionKindAdmin        SessionKind = "admin"
	SessionKindOrganization SessionKind = "organization"
	SessionKindTreePlanting SessionKind = "tree_planting"
)

// Session is the server-side record behind a bearer token, stored in the
// session cache with a TTL matching ExpiresAt.
type Session struct {
	Token     string      `json:"token"`
	Kind      SessionKind `json:"kind"`
	SubjectID string      `json:"subjectId"`
	Role      AdminRole   `json:"role,omitempty"`
	ExpiresAt time.Time   `json:"expiresAt"`
}

func (s Session) Expired(now time.Time) bool {
	return now.After(s.ExpiresAt)
}
