package character

import (
	"fmt"
)

// AbilityScore pairs a raw attribute score with its derived modifier
type AbilityScore struct {
	Score int
	Bonus int
}

// NewAbilityScore creates an ability score with the modifier derived from it
func NewAbilityScore(score int) *AbilityScore {
	return &AbilityScore{
		Score: score,
		Bonus: Modifier(score),
	}
}

// AddBonus adds a bonus to the score and recalculates the modifier
func (a *AbilityScore) AddBonus(bonus int) *AbilityScore {
	a.Score += bonus
	a.Bonus = Modifier(a.Score)

	return a
}

func (a *AbilityScore) String() string {
	return fmt.Sprintf("%d (%+d)", a.Score, a.Bonus)
}

// Modifier derives the attribute modifier from a raw score. Scores are never
// negative, so integer division matches floor division here.
func Modifier(score int) int {
	return score/2 - 5
}
