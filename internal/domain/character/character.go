package character

import (
	"github.com/KirkDiggler/dnd-sheet-gen/internal/domain/rulebook"
	"github.com/KirkDiggler/dnd-sheet-gen/internal/domain/shared"
)

const (
	// MinLevel is the lowest playable character level
	MinLevel = 1
	// MaxLevel is the highest playable character level
	MaxLevel = 20
)

// Character is a fully generated character sheet. It is built in one pass by
// Generate and never mutated afterwards.
type Character struct {
	ID    string
	Level int
	Class rulebook.Class
	Race  rulebook.Race

	Attributes map[shared.Attribute]*AbilityScore

	Proficiency  int
	AC           int
	MaxHitPoints int
	Initiative   int
	Speed        int
	Perception   int

	SavingThrows map[shared.Attribute]int
}

// AddAttribute sets an attribute to the given score with its derived modifier
func (c *Character) AddAttribute(attr shared.Attribute, score int) {
	if c.Attributes == nil {
		c.Attributes = make(map[shared.Attribute]*AbilityScore)
	}

	c.Attributes[attr] = NewAbilityScore(score)
}

// AddAbilityBonus adds a bonus to an attribute and recalculates its modifier
func (c *Character) AddAbilityBonus(attr shared.Attribute, bonus int) {
	if c.Attributes == nil {
		c.Attributes = make(map[shared.Attribute]*AbilityScore)
	}

	if _, ok := c.Attributes[attr]; !ok {
		c.Attributes[attr] = &AbilityScore{}
	}

	c.Attributes[attr] = c.Attributes[attr].AddBonus(bonus)
}

// calculateDerivedStats fills in every stat that is a pure function of level,
// class, race, and attribute modifiers
func (c *Character) calculateDerivedStats() {
	c.Proficiency = 2 + (c.Level-1)/4
	c.calculateAC()
	c.setHitpoints()
	c.Initiative = c.Attributes[shared.AttributeDexterity].Bonus
	c.Speed = c.Race.Speed()
	c.Perception = 10 + c.Attributes[shared.AttributeWisdom].Bonus + c.Proficiency
	c.calculateSavingThrows()
}

func (c *Character) calculateAC() {
	dexMod := c.Attributes[shared.AttributeDexterity].Bonus

	switch c.Class {
	case rulebook.ClassBarbarian:
		c.AC = 10 + dexMod + c.Attributes[shared.AttributeConstitution].Bonus
	case rulebook.ClassFighter:
		// heavy armor caps the dex contribution
		if dexMod > 2 {
			dexMod = 2
		}
		c.AC = 15 + dexMod
	case rulebook.ClassRogue:
		c.AC = 12 + dexMod
	}
}

func (c *Character) setHitpoints() {
	hitDie := c.Class.HitDie()
	conMod := c.Attributes[shared.AttributeConstitution].Bonus

	c.MaxHitPoints = hitDie + (hitDie/2+1+conMod)*(c.Level-1)
}

func (c *Character) calculateSavingThrows() {
	c.SavingThrows = make(map[shared.Attribute]int, len(shared.Attributes))

	for _, attr := range shared.Attributes {
		save := c.Attributes[attr].Bonus
		if c.Class.HasSavingThrowProficiency(attr) {
			save += c.Proficiency
		}

		c.SavingThrows[attr] = save
	}
}
