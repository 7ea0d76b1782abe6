package models

import "time"

type ReportStatus string

const (
	ReportStatusNew         ReportStatus = "new"
	ReportStatusInProgress  ReportStatus = "in_progress"
	ReportStatusUnderReview ReportStatus = "under_review"
	ReportStatusResolved    ReportStatus = "resolved"
)

var reportOrder = map[ReportStatus]int{
	ReportStatusNew:         0,
	ReportStatusInProgress:  1,
	ReportStatusUnderReview: 2,
	ReportStatusResolved:    3,
}

// CanTransitionTo permits forward movement only. Resolved reports stay
// resolved.
func (s ReportStatus) CanTransitionTo(next ReportStatus) bool {
	cur, ok := reportOrder[s]
	nxt, ok2 := reportOrder[next]
	return ok && ok2 && nxt > cur
}

type EnvironmentalReport struct {
	BaseUUIDModel
	IssueType       string       `gorm:"type:varchar(64);not null;index" json:"issueType"`
	Location        string       `gorm:"type:varchar(255);not null"      json:"location"`
	Description     string       `gorm:"type:text;not null"              json:"description"`
	ReporterName    string       `gorm:"type:varchar(255)"               json:"reporterName"`
	ReporterEmail   string       `gorm:"type:varchar(255)"               json:"reporterEmail"`
	ReporterPhone   string       `gorm:"type:varchar(32)"                json:"reporterPhone"`
	Status          ReportStatus `gorm:"type:varchar(16);not null;default:'new';index" json:"status"`
	ResolutionNotes *string      `gorm:"type:text"                       json:"resolutionNotes,omitempty"`
	ResolvedBy      *string      `gorm:"type:varchar(64)"                json:"resolvedBy,omitempty"`
	ResolvedAt      *time.Time   `json:"resolvedAt,omitempty"`
}
