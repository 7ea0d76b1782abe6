package wizard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validForestGuardForm() ForestGuardForm {
	return ForestGuardForm{
		FirstName:     "Chidi",
		LastName:      "Okafor",
		DateOfBirth:   "1998-04-12",
		Gender:        "male",
		StateOfOrigin: "Enugu",
		LGA:           "Nsukka",

		Email:   "chidi@mail.example",
		Phone:   "+2348098765432",
		Address: "14 Forest Road, Nsukka",

		HighestDegree: "BSc Forestry",
		Institution:   "University of Nigeria",
		PhysicallyFit: true,

		Documents: []string{"/uploads/cv.pdf", "/uploads/degree.pdf"},
		Consent:   true,
	}
}

func TestForestGuardForm_ValidateStep(t *testing.T) {
	tests := []struct {
		name   string
		step   int
		mutate func(*ForestGuardForm)
		valid  bool
	}{
		{name: "step 1 complete", step: 1, mutate: func(f *ForestGuardForm) {}, valid: true},
		{name: "step 1 missing lga", step: 1, mutate: func(f *ForestGuardForm) { f.LGA = "" }, valid: false},
		{name: "step 1 malformed date of birth", step: 1, mutate: func(f *ForestGuardForm) { f.DateOfBirth = "12/04/1998" }, valid: false},
		{name: "step 1 impossible date of birth", step: 1, mutate: func(f *ForestGuardForm) { f.DateOfBirth = "1998-02-30" }, valid: false},
		{name: "step 1 underage applicant", step: 1, mutate: func(f *ForestGuardForm) {
			f.DateOfBirth = time.Now().AddDate(-16, 0, 0).Format("2006-01-02")
		}, valid: false},
		{name: "step 1 applicant just of age", step: 1, mutate: func(f *ForestGuardForm) {
			f.DateOfBirth = time.Now().AddDate(-MinRecruitmentAge, 0, -1).Format("2006-01-02")
		}, valid: true},
		{name: "step 2 complete", step: 2, mutate: func(f *ForestGuardForm) {}, valid: true},
		{name: "step 2 missing address", step: 2, mutate: func(f *ForestGuardForm) { f.Address = "" }, valid: false},
		{name: "step 3 complete", step: 3, mutate: func(f *ForestGuardForm) {}, valid: true},
		{name: "step 3 not physically fit", step: 3, mutate: func(f *ForestGuardForm) { f.PhysicallyFit = false }, valid: false},
		{name: "step 3 experience optional", step: 3, mutate: func(f *ForestGuardForm) { f.HasExperience = false; f.ExperienceNotes = "" }, valid: true},
		{name: "step 4 complete", step: 4, mutate: func(f *ForestGuardForm) {}, valid: true},
		{name: "step 4 no documents", step: 4, mutate: func(f *ForestGuardForm) { f.Documents = nil }, valid: false},
		{name: "step 4 too many documents", step: 4, mutate: func(f *ForestGuardForm) {
			f.Documents = []string{"a", "b", "c", "d", "e"}
		}, valid: false},
		{name: "step 4 at document cap", step: 4, mutate: func(f *ForestGuardForm) {
			f.Documents = []string{"a", "b", "c", "d"}
		}, valid: true},
		{name: "step 4 no consent", step: 4, mutate: func(f *ForestGuardForm) { f.Consent = false }, valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := validForestGuardForm()
			tt.mutate(&form)
			assert.Equal(t, tt.valid, form.ValidateStep(tt.step))
		})
	}
}

func TestForestGuardForm_Validate(t *testing.T) {
	form := validForestGuardForm()
	assert.True(t, form.Validate())

	form.Email = ""
	assert.False(t, form.Validate())
}
