package utils

import "time"

// ISODate is the wire format for date-only fields (date of birth, interview
// slots posted as dates).
const ISODate = "2006-01-02"

// ValidISODate reports whether s parses as a real calendar date in ISO
// form. time.Parse rejects impossible dates like 2026-02-30.
func ValidISODate(s string) bool {
	_, err := time.Parse(ISODate, s)
	return err == nil
}

// AgeAt returns full years between a date of birth and a reference date.
// Invalid input yields -1.
func AgeAt(dateOfBirth string, at time.Time) int {
	dob, err := time.Parse(ISODate, dateOfBirth)
	if err != nil {
		return -1
	}

	years := at.Year() - dob.Year()
	if at.Month() < dob.Month() || (at.Month() == dob.Month() && at.Day() < dob.Day()) {
		years--
	}
	return years
}
