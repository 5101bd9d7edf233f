package sims

import (
	"github.com/reusee/imefix/scans"
)

type Scenario struct {
	Name   string
	Text   string
	Offset int
	Input  string
	// StateClass replaces the default cursor state class when not empty.
	// It must define a class named State.
	StateClass string
}

// Expect applies every unit of the input in order: a marker retreats one
// unit, anything else is inserted at the cursor.
func Expect(sc Scenario) (text string, offset int) {
	units := []rune(sc.Text)
	offset = sc.Offset
	for _, r := range sc.Input {
		if string(r) == scans.Marker {
			if offset > 0 {
				units = append(units[:offset-1], units[offset:]...)
				offset--
			}
			continue
		}
		units = append(units[:offset], append([]rune{r}, units[offset:]...)...)
		offset++
	}
	return string(units), offset
}

// Interleaved is a batch of two delete/insert groups, as sent by input
// methods that rewrite a vowel twice before the host redraws.
var Interleaved = Scenario{
	Name:   "interleaved groups",
	Text:   "ta",
	Offset: 2,
	Input:  scans.Marker + "á" + scans.Marker + "à",
}

var SingleGroup = Scenario{
	Name:   "single group",
	Text:   "vie",
	Offset: 3,
	Input:  scans.Marker + "ệ",
}

var DeleteOnly = Scenario{
	Name:   "delete only",
	Text:   "abc",
	Offset: 3,
	Input:  scans.Marker + scans.Marker,
}

var MidText = Scenario{
	Name:   "cursor inside text",
	Text:   "xoy",
	Offset: 2,
	Input:  scans.Marker + "ơ" + scans.Marker + "ớ",
}
