package models

// StatusBadge is the display metadata for a lifecycle status.
type StatusBadge struct {
	Label      string `json:"label"`
	Foreground string `json:"foreground"`
	Background string `json:"background"`
	Icon       string `json:"icon"`
}

var statusBadges = map[string]StatusBadge{
	"pending":      {Label: "Pending", Foreground: "#92400e", Background: "#fef3c7", Icon: "clock"},
	"approved":     {Label: "Approved", Foreground: "#065f46", Background: "#d1fae5", Icon: "check-circle"},
	"rejected":     {Label: "Rejected", Foreground: "#991b1b", Background: "#fee2e2", Icon: "x-circle"},
	"shortlisted":  {Label: "Shortlisted", Foreground: "#1e40af", Background: "#dbeafe", Icon: "list-checks"},
	"interview":    {Label: "Interview", Foreground: "#5b21b6", Background: "#ede9fe", Icon: "calendar"},
	"new":          {Label: "New", Foreground: "#1e40af", Background: "#dbeafe", Icon: "inbox"},
	"in_progress":  {Label: "In Progress", Foreground: "#92400e", Background: "#fef3c7", Icon: "loader"},
	"under_review": {Label: "Under Review", Foreground: "#5b21b6", Background: "#ede9fe", Icon: "search"},
	"resolved":     {Label: "Resolved", Foreground: "#065f46", Background: "#d1fae5", Icon: "check-circle"},
	"active":       {Label: "Active", Foreground: "#065f46", Background: "#d1fae5", Icon: "signal"},
	"maintenance":  {Label: "Maintenance", Foreground: "#92400e", Background: "#fef3c7", Icon: "wrench"},
	"offline":      {Label: "Offline", Foreground: "#991b1b", Background: "#fee2e2", Icon: "wifi-off"},
}

var neutralBadge = StatusBadge{
	Label:      "Unknown",
	Foreground: "#374151",
	Background: "#f3f4f6",
	Icon:       "help-circle",
}

// BadgeFor is total: unrecognized statuses get the neutral badge instead of
// an error.
func BadgeFor(status string) StatusBadge {
	if badge, ok := statusBadges[status]; ok {
		return badge
	}
	return neutralBadge
}
