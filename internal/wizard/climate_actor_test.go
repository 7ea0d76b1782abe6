package wizard

import (
	"testing"
	"time"

	. "envportal/internal/models"

	"github.com/stretchr/testify/assert"
)

func intPtr(v int) *int { return &v }

func validClimateActorForm() ClimateActorForm {
	return ClimateActorForm{
		ActorType:        ActorTypeNonState,
		OrganizationName: "Green Future Initiative",
		YearEstablished:  intPtr(2015),
		Website:          "https://greenfuture.example",
		FocusAreas:       []string{"reforestation"},
		OperatingRegions: []string{"North Central"},
		Description:      "Community reforestation programs.",
		ContactName:      "Amina Bello",
		ContactEmail:     "amina@greenfuture.example",
		ContactPhone:     "+2348012345678",
		Password:         "s3cret99",
		ConfirmPassword:  "s3cret99",
		Consent:          true,
	}
}

func TestClimateActorForm_ValidateStep1(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ClimateActorForm)
		valid  bool
	}{
		{name: "complete step", mutate: func(f *ClimateActorForm) {}, valid: true},
		{name: "missing actor type", mutate: func(f *ClimateActorForm) { f.ActorType = "" }, valid: false},
		{name: "missing organization name", mutate: func(f *ClimateActorForm) { f.OrganizationName = "" }, valid: false},
		{name: "whitespace organization name", mutate: func(f *ClimateActorForm) { f.OrganizationName = "   " }, valid: false},
		{name: "year established absent", mutate: func(f *ClimateActorForm) { f.YearEstablished = nil }, valid: true},
		{name: "website absent", mutate: func(f *ClimateActorForm) { f.Website = "" }, valid: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validClimateActorForm()
			tt.mutate(&form)
			assert.Equal(t, tt.valid, form.ValidateStep(1))
		})
	}
}

// Step 1 must not look at fields owned by later steps.
func TestClimateActorForm_Step1IndependentOfLaterSteps(t *testing.T) {
	form := ClimateActorForm{
		ActorType:        ActorTypeState,
		OrganizationName: "Department of Climate Affairs",
	}
	assert.True(t, form.ValidateStep(1))
	assert.False(t, form.ValidateStep(2))
	assert.False(t, form.ValidateStep(3))
	assert.False(t, form.ValidateStep(4))
}

func TestClimateActorForm_ValidateStep2(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ClimateActorForm)
		valid  bool
	}{
		{name: "complete step", mutate: func(f *ClimateActorForm) {}, valid: true},
		{name: "no focus areas", mutate: func(f *ClimateActorForm) { f.FocusAreas = nil }, valid: false},
		{name: "only blank focus areas", mutate: func(f *ClimateActorForm) { f.FocusAreas = []string{"", "  "} }, valid: false},
		{name: "no operating regions", mutate: func(f *ClimateActorForm) { f.OperatingRegions = nil }, valid: false},
		{name: "missing description", mutate: func(f *ClimateActorForm) { f.Description = "" }, valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validClimateActorForm()
			tt.mutate(&form)
			assert.Equal(t, tt.valid, form.ValidateStep(2))
		})
	}
}

func TestClimateActorForm_ValidateStep4(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*ClimateActorForm)
		valid  bool
	}{
		{name: "complete step", mutate: func(f *ClimateActorForm) {}, valid: true},
		{name: "password mismatch", mutate: func(f *ClimateActorForm) { f.ConfirmPassword = "different" }, valid: false},
		{name: "password too short", mutate: func(f *ClimateActorForm) { f.Password = "abc"; f.ConfirmPassword = "abc" }, valid: false},
		{name: "multibyte password counts runes not bytes", mutate: func(f *ClimateActorForm) {
			// 3 runes, 6 bytes
			f.Password = "ñññ"
			f.ConfirmPassword = "ñññ"
		}, valid: false},
		{name: "six multibyte runes pass", mutate: func(f *ClimateActorForm) {
			f.Password = "ñañañá"
			f.ConfirmPassword = "ñañañá"
		}, valid: true},
		{name: "no consent", mutate: func(f *ClimateActorForm) { f.Consent = false }, valid: false},
		{name: "empty password", mutate: func(f *ClimateActorForm) { f.Password = ""; f.ConfirmPassword = "" }, valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validClimateActorForm()
			tt.mutate(&form)
			assert.Equal(t, tt.valid, form.ValidateStep(4))
		})
	}
}

func TestClimateActorForm_Validate(t *testing.T) {
	nextYear := time.Now().Year() + 1

	tests := []struct {
		name   string
		mutate func(*ClimateActorForm)
		valid  bool
	}{
		{name: "fully valid form", mutate: func(f *ClimateActorForm) {}, valid: true},
		{name: "unknown actor type", mutate: func(f *ClimateActorForm) { f.ActorType = "federal" }, valid: false},
		{name: "year before 1900", mutate: func(f *ClimateActorForm) { f.YearEstablished = intPtr(1850) }, valid: false},
		{name: "year in the future", mutate: func(f *ClimateActorForm) { f.YearEstablished = intPtr(nextYear) }, valid: false},
		{name: "current year allowed", mutate: func(f *ClimateActorForm) { f.YearEstablished = intPtr(time.Now().Year()) }, valid: true},
		{name: "nil year allowed", mutate: func(f *ClimateActorForm) { f.YearEstablished = nil }, valid: true},
		{name: "any step failing fails submit", mutate: func(f *ClimateActorForm) { f.ContactEmail = "" }, valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validClimateActorForm()
			tt.mutate(&form)
			assert.Equal(t, tt.valid, form.Validate())
		})
	}
}

func TestClimateActorForm_UnknownStepInvalid(t *testing.T) {
	form := validClimateActorForm()
	assert.False(t, form.ValidateStep(0))
	assert.False(t, form.ValidateStep(5))
}
