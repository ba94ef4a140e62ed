package character

import (
	"fmt"

	"github.com/KirkDiggler/dnd-sheet-gen/internal/dice"
	"github.com/KirkDiggler/dnd-sheet-gen/internal/domain/rulebook"
	"github.com/KirkDiggler/dnd-sheet-gen/internal/domain/shared"
	"github.com/KirkDiggler/dnd-sheet-gen/internal/uuid"
)

const (
	baseAbilityScore  = 8
	abilityRollChance = 0.75
	abilityRollMax    = 10
)

// Option configures character generation
type Option func(*generator)

type generator struct {
	level  *int
	class  *rulebook.Class
	roller dice.Roller
	idGen  uuid.Generator
}

// WithLevel pins the character level. Out-of-range values are clamped into
// [MinLevel, MaxLevel], never rejected.
func WithLevel(level int) Option {
	return func(g *generator) {
		g.level = &level
	}
}

// WithClass pins the character class instead of drawing one
func WithClass(class rulebook.Class) Option {
	return func(g *generator) {
		g.class = &class
	}
}

// WithRoller sets a custom dice roller (for testing or reproducible output)
func WithRoller(roller dice.Roller) Option {
	return func(g *generator) {
		g.roller = roller
	}
}

// WithIDGenerator sets a custom ID generator (for testing)
func WithIDGenerator(idGen uuid.Generator) Option {
	return func(g *generator) {
		g.idGen = idGen
	}
}

// Generate builds a complete character in one pass: resolve level and class,
// draw a race, roll the six attributes, apply level and race bonuses, then
// compute every derived stat.
func Generate(opts ...Option) (*Character, error) {
	g := &generator{
		roller: dice.NewRandomRoller(),
		idGen:  uuid.NewGoogleUUIDGenerator(),
	}
	for _, opt := range opts {
		opt(g)
	}

	level, err := g.resolveLevel()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve level: %w", err)
	}

	class, err := g.resolveClass()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve class: %w", err)
	}

	race, err := g.rollRace()
	if err != nil {
		return nil, fmt.Errorf("failed to roll race: %w", err)
	}

	c := &Character{
		ID:    g.idGen.New(),
		Level: level,
		Class: class,
		Race:  race,
	}

	g.rollAttributes(c)
	c.calculateDerivedStats()

	return c, nil
}

func (g *generator) resolveLevel() (int, error) {
	if g.level != nil {
		return clampLevel(*g.level), nil
	}

	result, err := g.roller.Roll(1, MaxLevel, 0)
	if err != nil {
		return 0, err
	}

	return result.Total, nil
}

func (g *generator) resolveClass() (rulebook.Class, error) {
	if g.class != nil {
		return *g.class, nil
	}

	idx, err := dice.WeightedChoice(g.roller, rulebook.ClassWeights)
	if err != nil {
		return "", err
	}

	return rulebook.Classes[idx], nil
}

func (g *generator) rollRace() (rulebook.Race, error) {
	idx, err := dice.WeightedChoice(g.roller, rulebook.RaceWeights)
	if err != nil {
		return "", err
	}

	return rulebook.Races[idx], nil
}

// rollAttributes rolls the six base scores, then applies the single highest
// qualifying level-breakpoint bonus vector and the race bonus vector
func (g *generator) rollAttributes(c *Character) {
	for _, attr := range shared.Attributes {
		increase := dice.RandomIncrease(g.roller, abilityRollChance, abilityRollMax)
		c.AddAttribute(attr, baseAbilityScore+increase)
	}

	for attr, bonus := range rulebook.LevelAbilityBonuses(c.Class, c.Level) {
		c.AddAbilityBonus(attr, bonus)
	}

	for attr, bonus := range c.Race.AbilityBonuses() {
		c.AddAbilityBonus(attr, bonus)
	}
}

func clampLevel(level int) int {
	if level < MinLevel {
		return MinLevel
	}
	if level > MaxLevel {
		return MaxLevel
	}
	return level
}
