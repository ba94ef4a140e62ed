package character

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/dnd-sheet-gen/internal/domain/shared"
)

// Sheet renders the character as a multi-line text block
func (c *Character) Sheet() string {
	msg := strings.Builder{}

	msg.WriteString(fmt.Sprintf("Level %d %s %s\n", c.Level, c.Race.Name(), c.Class.Name()))

	msg.WriteString("\nAttributes:\n")
	for _, attr := range shared.Attributes {
		msg.WriteString(fmt.Sprintf("  -  %s: %s\n", attr.Short(), c.Attributes[attr]))
	}

	msg.WriteString("\nCombat:\n")
	msg.WriteString(fmt.Sprintf("  -  Proficiency: %+d\n", c.Proficiency))
	msg.WriteString(fmt.Sprintf("  -  AC: %d\n", c.AC))
	msg.WriteString(fmt.Sprintf("  -  Max Hit Points: %d\n", c.MaxHitPoints))
	msg.WriteString(fmt.Sprintf("  -  Initiative: %+d\n", c.Initiative))
	msg.WriteString(fmt.Sprintf("  -  Speed: %d\n", c.Speed))
	msg.WriteString(fmt.Sprintf("  -  Perception: %d\n", c.Perception))

	msg.WriteString("\nSaving Throws:\n")
	for _, attr := range shared.Attributes {
		msg.WriteString(fmt.Sprintf("  -  %s: %+d\n", attr.Short(), c.SavingThrows[attr]))
	}

	return msg.String()
}

func (c *Character) String() string {
	return c.Sheet()
}
