package rulebook

import (
	"github.com/KirkDiggler/dnd-sheet-gen/internal/domain/shared"
)

// abilityBonusBreakpoints are the level thresholds that grant extra ability
// points, highest first so lookup can stop at the first qualifying one
var abilityBonusBreakpoints = []int{19, 16, 12, 8, 4}

// levelAbilityBonuses holds the ability bonus vector granted at each
// breakpoint per class. Only the highest qualifying breakpoint applies; the
// vectors are full grants, not increments.
var levelAbilityBonuses = map[int]map[Class]map[shared.Attribute]int{
	4: {
		ClassBarbarian: {shared.AttributeStrength: 1, shared.AttributeConstitution: 1},
		ClassFighter:   {shared.AttributeStrength: 1, shared.AttributeDexterity: 1},
		ClassRogue:     {shared.AttributeDexterity: 1, shared.AttributeIntelligence: 1},
	},
	8: {
		ClassBarbarian: {shared.AttributeStrength: 2, shared.AttributeConstitution: 1},
		ClassFighter:   {shared.AttributeStrength: 2, shared.AttributeDexterity: 1, shared.AttributeConstitution: 1},
		ClassRogue:     {shared.AttributeDexterity: 2, shared.AttributeIntelligence: 1},
	},
	12: {
		ClassBarbarian: {shared.AttributeStrength: 4, shared.AttributeConstitution: 2},
		ClassFighter:   {shared.AttributeStrength: 3, shared.AttributeDexterity: 2, shared.AttributeConstitution: 1},
		ClassRogue:     {shared.AttributeDexterity: 4, shared.AttributeIntelligence: 2},
	},
	16: {
		ClassBarbarian: {shared.AttributeStrength: 5, shared.AttributeConstitution: 3},
		ClassFighter:   {shared.AttributeStrength: 4, shared.AttributeDexterity: 2, shared.AttributeConstitution: 2},
		ClassRogue:     {shared.AttributeDexterity: 5, shared.AttributeIntelligence: 2, shared.AttributeWisdom: 1},
	},
	19: {
		ClassBarbarian: {shared.AttributeStrength: 6, shared.AttributeConstitution: 4},
		ClassFighter:   {shared.AttributeStrength: 5, shared.AttributeDexterity: 3, shared.AttributeConstitution: 2},
		ClassRogue:     {shared.AttributeDexterity: 6, shared.AttributeIntelligence: 3, shared.AttributeWisdom: 1},
	},
}

// LevelAbilityBonuses returns the ability bonus vector for the highest
// breakpoint at or below the given level. Levels below the lowest breakpoint
// grant nothing.
func LevelAbilityBonuses(class Class, level int) map[shared.Attribute]int {
	for _, breakpoint := range abilityBonusBreakpoints {
		if level >= breakpoint {
			return levelAbilityBonuses[breakpoint][class]
		}
	}
	return nil
}
