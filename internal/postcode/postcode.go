// Package postcode checks the shape of UK postcodes. It does not check that a
// postcode exists.
package postcode

import (
	"regexp"
	"strings"
)

var shape = regexp.MustCompile(`(?i)^[A-Z]{1,2}\d[A-Z\d]? ?\d[A-Z]{2}$`)

const inwardLen = 3

// Valid reports whether s, ignoring surrounding whitespace, looks like a UK postcode.
func Valid(s string) bool {
	return shape.MatchString(strings.TrimSpace(s))
}

// Format upper-cases s, drops all whitespace and puts a single space before
// the inward code, e.g. "sw1a1aa" becomes "SW1A 1AA". Inputs of three
// characters or fewer are returned compacted.
func Format(s string) string {
	cleaned := strings.ToUpper(strings.Join(strings.Fields(s), ""))
	if len(cleaned) > inwardLen {
		return cleaned[:len(cleaned)-inwardLen] + " " + cleaned[len(cleaned)-inwardLen:]
	}
	return cleaned
}

// Outward returns the outward code (area and district) of a valid postcode,
// e.g. "SW1A" for "sw1a 1aa". It returns "" when s is not valid.
func Outward(s string) string {
	if !Valid(s) {
		return ""
	}
	formatted := Format(s)
	return formatted[:len(formatted)-inwardLen-1]
}
