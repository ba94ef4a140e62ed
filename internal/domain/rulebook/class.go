package rulebook

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/dnd-sheet-gen/internal/domain/shared"
)

// Class is one of the playable character classes
type Class string

const (
	ClassBarbarian Class = "barbarian"
	ClassFighter   Class = "fighter"
	ClassRogue     Class = "rogue"
)

// Classes lists every playable class in generation order
var Classes = []Class{ClassBarbarian, ClassFighter, ClassRogue}

// ClassWeights are the weighted-choice weights used when a class is drawn,
// indexed to match Classes
var ClassWeights = []int{1, 1, 1}

var classNames = map[Class]string{
	ClassBarbarian: "Barbarian",
	ClassFighter:   "Fighter",
	ClassRogue:     "Rogue",
}

var hitDice = map[Class]int{
	ClassBarbarian: 12,
	ClassFighter:   10,
	ClassRogue:     8,
}

// savingThrowProficiencies flags the attributes a class adds its proficiency
// bonus to on saving throws
var savingThrowProficiencies = map[Class]map[shared.Attribute]bool{
	ClassBarbarian: {
		shared.AttributeStrength:     true,
		shared.AttributeConstitution: true,
	},
	ClassFighter: {
		shared.AttributeStrength:     true,
		shared.AttributeConstitution: true,
	},
	ClassRogue: {
		shared.AttributeDexterity:    true,
		shared.AttributeIntelligence: true,
	},
}

// IsValid returns true if the class is a playable class
func (c Class) IsValid() bool {
	_, ok := hitDice[c]
	return ok
}

// Name returns the display name of the class
func (c Class) Name() string {
	if name, ok := classNames[c]; ok {
		return name
	}
	return "Unknown"
}

// HitDie returns the class hit die used for hit point growth
func (c Class) HitDie() int {
	return hitDice[c]
}

// HasSavingThrowProficiency returns true if the class adds its proficiency
// bonus to saving throws on the given attribute
func (c Class) HasSavingThrowProficiency(attr shared.Attribute) bool {
	return savingThrowProficiencies[c][attr]
}

// ParseClass parses a string into a Class, case-insensitive
func ParseClass(s string) (Class, error) {
	class := Class(strings.ToLower(strings.TrimSpace(s)))
	if !class.IsValid() {
		return "", fmt.Errorf("unknown class: %s", s)
	}
	return class, nil
}
