// Package selection resolves hover previews and click locks on the character
// panel into the single variant the scene should display.
package selection

import "strings"

// Variant is one selectable visual entity.
type Variant int

const (
	None Variant = iota
	Student
	Assassin
	Martyr
	Hero
	Body
	// Remains is the remains-and-bird ensemble. Selecting it runs the
	// secondary bones/bird animation instead of showing a character.
	Remains
)

// Variants lists every selectable variant in panel order.
var Variants = []Variant{Student, Assassin, Martyr, Hero, Body, Remains}

var variantNames = map[Variant]string{
	None:     "none",
	Student:  "student",
	Assassin: "assassin",
	Martyr:   "martyr",
	Hero:     "hero",
	Body:     "body",
	Remains:  "remains",
}

func (v Variant) String() string {
	if name, ok := variantNames[v]; ok {
		return name
	}
	return "unknown"
}

// Valid reports whether v is one of the selectable variants.
func (v Variant) Valid() bool {
	return v >= Student && v <= Remains
}

// IsCharacter reports whether v maps to a single character visual.
func (v Variant) IsCharacter() bool {
	return v.Valid() && v != Remains
}

// Parse maps an id to a variant. "bones" is accepted for Remains. Unknown ids
// return None and false.
func Parse(id string) (Variant, bool) {
	id = strings.ToLower(strings.TrimSpace(id))
	if id == "bones" || id == "remains-and-bird" {
		return Remains, true
	}
	for v, name := range variantNames {
		if v != None && name == id {
			return v, true
		}
	}
	return None, false
}
