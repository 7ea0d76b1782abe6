package wizard

import (
	"time"

	. "envportal/internal/models"

	"envportal/internal/utils"
)

// ForestGuardSteps is the number of steps in the forest-guard application
// wizard.
const ForestGuardSteps = 4

// MinRecruitmentAge is the minimum applicant age for the forest-guard role.
const MinRecruitmentAge = 18

type ForestGuardForm struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	DateOfBirth   string `json:"dateOfBirth"`
	Gender        string `json:"gender"`
	StateOfOrigin string `json:"stateOfOrigin"`
	LGA           string `json:"lga"`

	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`

	HighestDegree   string `json:"highestDegree"`
	Institution     string `json:"institution"`
	GraduationYear  *int   `json:"graduationYear,omitempty"`
	PhysicallyFit   bool   `json:"physicallyFit"`
	HasExperience   bool   `json:"hasExperience"`
	ExperienceNotes string `json:"experienceNotes,omitempty"`

	Documents []string `json:"documents"`
	Consent   bool     `json:"consent"`
}

func (f *ForestGuardForm) ValidateStep(step int) bool {
	switch step {
	case 1:
		return filled(f.FirstName) && filled(f.LastName) &&
			utils.ValidISODate(f.DateOfBirth) &&
			utils.AgeAt(f.DateOfBirth, time.Now()) >= MinRecruitmentAge &&
			filled(f.Gender) && filled(f.StateOfOrigin) && filled(f.LGA)
	case 2:
		return filled(f.Email) && filled(f.Phone) && filled(f.Address)
	case 3:
		// Fitness is a hard requirement for the role; experience is not.
		return filled(f.HighestDegree) && filled(f.Institution) && f.PhysicallyFit
	case 4:
		return anyOf(f.Documents) &&
			len(f.Documents) <= MaxRecruitmentDocuments &&
			f.Consent
	}
	return false
}

func (f *ForestGuardForm) Validate() bool {
	for step := 1; step <= ForestGuardSteps; step++ {
		if !f.ValidateStep(step) {
			return false
		}
	}
	return true
}
