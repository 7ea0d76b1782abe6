package wizard

import "unicode/utf8"

// TreePlantingSteps is the number of steps in the five-million-trees
// campaign wizard.
const TreePlantingSteps = 3

type TreePlantingForm struct {
	OrganizationName string   `json:"organizationName"`
	OrganizationType string   `json:"organizationType"`
	TargetRegions    []string `json:"targetRegions"`

	TreesPledged int    `json:"treesPledged"`
	PlantingPlan string `json:"plantingPlan"`

	ContactName     string `json:"contactName"`
	ContactEmail    string `json:"contactEmail"`
	ContactPhone    string `json:"contactPhone"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirmPassword"`
	Consent         bool   `json:"consent"`
}

func (f *TreePlantingForm) ValidateStep(step int) bool {
	switch step {
	case 1:
		return filled(f.OrganizationName) && filled(f.OrganizationType) && anyOf(f.TargetRegions)
	case 2:
		return f.TreesPledged > 0 && filled(f.PlantingPlan)
	case 3:
		return filled(f.ContactName) && filled(f.ContactEmail) && filled(f.ContactPhone) &&
			filled(f.Password) &&
			f.Password == f.ConfirmPassword &&
			utf8.RuneCountInString(f.Password) >= MinPasswordLength &&
			f.Consent
	}
	return false
}

func (f *TreePlantingForm) Validate() bool {
	for step := 1; step <= TreePlantingSteps; step++ {
		if !f.ValidateStep(step) {
			return false
		}
	}
	return true
}
