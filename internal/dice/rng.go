package dice

// WeightedChoice selects an index in proportion to the given weights. It draws
// a uniform integer in [1, sum(weights)] and walks the weights subtracting each
// until the running total drops to zero or below.
//
// A zero or negative weight total resolves to index 0 without consuming a roll.
func WeightedChoice(roller Roller, weights []int) (int, error) {
	total := 0
	for _, w := range weights {
		total += w
	}

	if total <= 0 {
		return 0, nil
	}

	result, err := roller.Roll(1, total, 0)
	if err != nil {
		return 0, err
	}

	draw := result.Total
	for i, w := range weights {
		draw -= w
		if draw <= 0 {
			return i, nil
		}
	}

	return len(weights) - 1, nil
}

// RandomIncrease returns a bounded random increase in [0, maxIncrease]. The
// running success probability starts at chance and is multiplied by chance
// again after every success, so each step is exponentially less likely. The
// walk stops on the first failed draw or on reaching maxIncrease.
func RandomIncrease(roller Roller, chance float64, maxIncrease int) int {
	increase := 0
	probability := chance

	for increase < maxIncrease && roller.Float() < probability {
		increase++
		probability *= chance
	}

	return increase
}
