package models

import "time"

type RecruitmentStatus string

const (
	RecruitmentStatusPending     RecruitmentStatus = "pending"
	RecruitmentStatusShortlisted RecruitmentStatus = "shortlisted"
	RecruitmentStatusInterview   RecruitmentStatus = "interview"
	RecruitmentStatusApproved    RecruitmentStatus = "approved"
	RecruitmentStatusRejected    RecruitmentStatus = "rejected"
)

func (s RecruitmentStatus) IsTerminal() bool {
	return s == RecruitmentStatusApproved || s == RecruitmentStatusRejected
}

var recruitmentOrder = map[RecruitmentStatus]int{
	RecruitmentStatusPending:     0,
	RecruitmentStatusShortlisted: 1,
	RecruitmentStatusInterview:   2,
	RecruitmentStatusApproved:    3,
}

// CanTransitionTo allows the normal forward path one step at a time, plus
// rejection from any non-terminal state. Admin override may jump between
// non-terminal states in any order, but terminal states stay frozen.
func (s RecruitmentStatus) CanTransitionTo(next RecruitmentStatus, override bool) bool {
	if s.IsTerminal() || s == next {
		return false
	}
	if next == RecruitmentStatusRejected {
		return true
	}
	if override {
		_, known := recruitmentOrder[next]
		return known
	}
	cur, ok := recruitmentOrder[s]
	nxt, ok2 := recruitmentOrder[next]
	return ok && ok2 && nxt == cur+1
}

// RecruitmentApplication is a forest-guard application. ReferenceNumber is
// generated at submission (FG + date + 4-digit suffix) and unique.
type RecruitmentApplication struct {
	BaseUUIDModel
	ReferenceNumber string     `gorm:"type:varchar(16);not null;uniqueIndex" json:"referenceNumber"`
	FirstName       string     `gorm:"type:varchar(128);not null"  json:"firstName"`
	LastName        string     `gorm:"type:varchar(128);not null"  json:"lastName"`
	DateOfBirth     string     `gorm:"type:varchar(16)"            json:"dateOfBirth"`
	Gender          string     `gorm:"type:varchar(16)"            json:"gender"`
	StateOfOrigin   string     `gorm:"type:varchar(64)"            json:"stateOfOrigin"`
	LGA             string     `gorm:"type:varchar(64)"            json:"lga"`
	Email           string     `gorm:"type:varchar(255);not null;index" json:"email"`
	Phone           string     `gorm:"type:varchar(32);not null"   json:"phone"`
	Address         string     `gorm:"type:text"                   json:"address"`
	HighestDegree   string     `gorm:"type:varchar(128)"           json:"highestDegree"`
	Institution     string     `gorm:"type:varchar(255)"           json:"institution"`
	GraduationYear  *int       `gorm:"type:int"                    json:"graduationYear,omitempty"`
	PhysicallyFit   bool       `json:"physicallyFit"`
	HasExperience   bool       `json:"hasExperience"`
	ExperienceNotes string     `gorm:"type:text"                   json:"experienceNotes"`
	Documents       []string   `gorm:"type:text;serializer:json"   json:"documents"`
	Status          RecruitmentStatus `gorm:"type:varchar(16);not null;default:'pending';index" json:"status"`
	InterviewAt     *time.Time `json:"interviewAt,omitempty"`
	ReviewedBy      string     `gorm:"type:varchar(64)"            json:"reviewedBy,omitempty"`
	ReviewedAt      *time.Time `json:"reviewedAt,omitempty"`
}

// MaxRecruitmentDocuments caps uploaded document references per application.
const MaxRecruitmentDocuments = 4
