package dice

import (
	"fmt"
	"strings"
)

// RollResult holds the outcome of a single dice roll
type RollResult struct {
	Total   int
	Highest int
	Lowest  int
	Rolls   []int
	Bonus   int
}

func (r *RollResult) String() string {
	compact := strings.ReplaceAll(fmt.Sprintf("%v", r.Rolls), " ", "")
	return fmt.Sprintf("%d : %s", r.Total, compact)
}
