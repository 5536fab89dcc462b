package engine

import (
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"
)

// Roll returns a value in [1, size]. A failing roller yields 1 so a broken
// random source degrades to the most common outcome instead of aborting a
// state transition.
func Roll(r dice.Roller, size int) int {
	if size <= 1 {
		return 1
	}
	v, err := r.Roll(size)
	if err != nil || v < 1 || v > size {
		slog.Warn("Dice roller failed, using 1",
			"size", size,
			"value", v,
			"error", err,
		)
		return 1
	}
	return v
}

// Index returns a uniform index in [0, n)
func Index(r dice.Roller, n int) int {
	return Roll(r, n) - 1
}

// Percent returns a d100 draw in [1, 100]
func Percent(r dice.Roller) int {
	return Roll(r, 100)
}

// PickRarity selects a rarity by cumulative weights: the first rarity whose
// running total reaches draw wins. With [70,20,7,2,1] a draw of 71 is rare.
func PickRarity(weights [5]int, draw int) int {
	cumulative := 0
	for i, w := range weights {
		cumulative += w
		if draw <= cumulative {
			return i
		}
	}
	return 0
}
