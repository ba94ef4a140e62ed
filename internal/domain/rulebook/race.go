package rulebook

import (
	"github.com/KirkDiggler/dnd-sheet-gen/internal/domain/shared"
)

// Race is one of the playable character races
type Race string

const (
	RaceHuman   Race = "human"
	RaceHalfOrc Race = "half-orc"
	RaceDwarf   Race = "dwarf"
	RaceHalfElf Race = "half-elf"
)

// Races lists every playable race in generation order
var Races = []Race{RaceHuman, RaceHalfOrc, RaceDwarf, RaceHalfElf}

// RaceWeights are the weighted-choice weights used when a race is drawn,
// indexed to match Races. Humans are the most common.
var RaceWeights = []int{5, 2, 2, 1}

var raceNames = map[Race]string{
	RaceHuman:   "Human",
	RaceHalfOrc: "Half-Orc",
	RaceDwarf:   "Dwarf",
	RaceHalfElf: "Half-Elf",
}

// raceAbilityBonuses holds the fixed per-attribute bonus each race grants
var raceAbilityBonuses = map[Race]map[shared.Attribute]int{
	RaceHuman: {
		shared.AttributeStrength:     1,
		shared.AttributeDexterity:    1,
		shared.AttributeConstitution: 1,
		shared.AttributeIntelligence: 1,
		shared.AttributeWisdom:       1,
		shared.AttributeCharisma:     1,
	},
	RaceHalfOrc: {
		shared.AttributeStrength:     2,
		shared.AttributeConstitution: 1,
	},
	RaceDwarf: {
		shared.AttributeConstitution: 2,
		shared.AttributeWisdom:       1,
	},
	RaceHalfElf: {
		shared.AttributeDexterity: 1,
		shared.AttributeCharisma:  2,
	},
}

// IsValid returns true if the race is a playable race
func (r Race) IsValid() bool {
	_, ok := raceNames[r]
	return ok
}

// Name returns the display name of the race
func (r Race) Name() string {
	if name, ok := raceNames[r]; ok {
		return name
	}
	return "Unknown"
}

// AbilityBonuses returns the race's fixed ability bonus vector
func (r Race) AbilityBonuses() map[shared.Attribute]int {
	return raceAbilityBonuses[r]
}

// Speed returns the base walking speed for the race
func (r Race) Speed() int {
	if r == RaceDwarf {
		return 25
	}
	return 30
}
