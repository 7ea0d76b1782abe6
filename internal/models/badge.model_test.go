package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBadgeFor_KnownStatuses(t *testing.T) {
	known := []string{
		"pending", "approved", "rejected",
		"shortlisted", "interview",
		"new", "in_progress", "under_review", "resolved",
		"active", "maintenance", "offline",
	}

	for _, status := range known {
		t.Run(status, func(t *testing.T) {
			badge := BadgeFor(status)
			assert.NotEmpty(t, badge.Label)
			assert.NotEmpty(t, badge.Foreground)
			assert.NotEmpty(t, badge.Background)
			assert.NotEmpty(t, badge.Icon)
			assert.NotEqual(t, neutralBadge, badge)
		})
	}
}

func TestBadgeFor_UnknownStatusIsNeutral(t *testing.T) {
	tests := []string{"", "archived", "PENDING", "pending ", "banana"}

	for _, status := range tests {
		badge := BadgeFor(status)
		assert.Equal(t, neutralBadge, badge, "status %q should map to the neutral badge", status)
	}
}
