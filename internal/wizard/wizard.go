// Package wizard holds the form state containers and per-step validators
// behind the public multi-step registration flows. Validation is binary: a
// step either has every required field filled or it does not. Optional
// fields never block a step.
package wizard

import "strings"

func filled(s string) bool {
	return strings.TrimSpace(s) != ""
}

func anyOf(values []string) bool {
	for _, v := range values {
		if filled(v) {
			return true
		}
	}
	return false
}

// MinPasswordLength applies to every login-capable flow.
const MinPasswordLength = 6

// YearEstablishedMin bounds the optional year-established field when it is
// provided at all.
const YearEstablishedMin = 1900
