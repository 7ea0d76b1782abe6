package wizard

import (
	"time"
	"unicode/utf8"

	. "envportal/internal/models"
)

// ClimateActorSteps is the number of steps in the climate-actor wizard.
const ClimateActorSteps = 4

// ClimateActorForm is the accumulated state of the climate-actor
// registration wizard.
type ClimateActorForm struct {
	ActorType        ActorType `json:"actorType"`
	OrganizationName string    `json:"organizationName"`
	YearEstablished  *int      `json:"yearEstablished,omitempty"`
	Website          string    `json:"website,omitempty"`

	FocusAreas       []string `json:"focusAreas"`
	OperatingRegions []string `json:"operatingRegions"`
	Description      string   `json:"description"`

	ContactName  string `json:"contactName"`
	ContactEmail string `json:"contactEmail"`
	ContactPhone string `json:"contactPhone"`

	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Consent         bool   `json:"consent"`
}

// ValidateStep gates forward navigation for one step. Step 1 depends only on
// actor type and organization name; year established and website are
// optional and never block.
func (f *ClimateActorForm) ValidateStep(step int) bool {
	switch step {
	case 1:
		return filled(string(f.ActorType)) && filled(f.OrganizationName)
	case 2:
		return anyOf(f.FocusAreas) && anyOf(f.OperatingRegions) && filled(f.Description)
	case 3:
		return filled(f.ContactName) && filled(f.ContactEmail) && filled(f.ContactPhone)
	case 4:
		return filled(f.Password) &&
			f.Password == f.ConfirmPassword &&
			utf8.RuneCountInString(f.Password) >= MinPasswordLength &&
			f.Consent
	}
	return false
}

// Validate checks every step plus the cross-step rules a submit must hold:
// the actor type must be a known value and year established, when present,
// must fall in [1900, current year]. Input widgets enforce the range
// client-side, but the server re-checks it.
func (f *ClimateActorForm) Validate() bool {
	for step := 1; step <= ClimateActorSteps; step++ {
		if !f.ValidateStep(step) {
			return false
		}
	}

	if f.ActorType != ActorTypeState && f.ActorType != ActorTypeNonState {
		return false
	}

	if f.YearEstablished != nil {
		year := *f.YearEstablished
		if year < YearEstablishedMin || year > time.Now().Year() {
			return false
		}
	}

	return true
}
