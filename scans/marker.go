package scans

import "regexp"

// Marker is the control unit that asks for the previous unit to be deleted.
const Marker = "\x7f"

// MarkerForm is the spelling of Marker inside a string literal.
type MarkerForm string

// MarkerForms lists the spellings in the order they are tried.
var MarkerForms = []MarkerForm{
	Marker,
	`\x7f`,
	`\x7F`,
	`\u007f`,
	`\u007F`,
}

func (m MarkerForm) Raw() bool {
	return m == Marker
}

// Literal returns a regexp fragment matching the form quoted with " or '.
func (m MarkerForm) Literal() string {
	q := regexp.QuoteMeta(string(m))
	return `["']` + q + `["']`
}
