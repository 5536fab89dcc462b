package testutils

import (
	"fmt"
	"sync"

	"github.com/KirkDiggler/rpg-toolkit/dice"
)

// ScriptedRoller is a dice.Roller that replays queued values in order.
// Once the queue is empty every roll returns 1.
type ScriptedRoller struct {
	mu     sync.Mutex
	values []int
	rolls  []int
}

var _ dice.Roller = (*ScriptedRoller)(nil)

// NewScriptedRoller creates a roller that returns values in order
func NewScriptedRoller(values ...int) *ScriptedRoller {
	return &ScriptedRoller{values: append([]int(nil), values...)}
}

// Queue appends values to the script
func (r *ScriptedRoller) Queue(values ...int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.values = append(r.values, values...)
}

// Roll returns the next scripted value. A value outside 1..size is an error
// so a mis-scripted test fails loudly instead of silently clamping.
func (r *ScriptedRoller) Roll(size int) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rolls = append(r.rolls, size)
	if len(r.values) == 0 {
		return 1, nil
	}

	v := r.values[0]
	r.values = r.values[1:]
	if v < 1 || v > size {
		return 0, fmt.Errorf("scripted roll %d is outside d%d", v, size)
	}
	return v, nil
}

// RollN rolls count dice of the given size
func (r *ScriptedRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, 0, count)
	for i := 0; i < count; i++ {
		v, err := r.Roll(size)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

// Remaining reports how many scripted values have not been consumed
func (r *ScriptedRoller) Remaining() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.values)
}

// Sizes returns the die size of every roll made so far
func (r *ScriptedRoller) Sizes() []int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]int(nil), r.rolls...)
}
