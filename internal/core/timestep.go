package core

import "time"

// DefaultMaxCatchUp bounds how many ticks a single Advance may request.
const DefaultMaxCatchUp = 8

// Timestep converts elapsed wall-clock time into a whole number of fixed
// simulation ticks. The remainder below one quantum carries over to the next
// call.
type Timestep struct {
	Quantum    time.Duration
	MaxCatchUp int // 0 means DefaultMaxCatchUp

	acc time.Duration
}

// NewTimestep creates an accumulator with the given quantum.
func NewTimestep(quantum time.Duration) *Timestep {
	return &Timestep{Quantum: quantum}
}

// Advance adds elapsed time and returns how many ticks should run now.
// When more than MaxCatchUp ticks are owed (after a stall) the surplus is
// dropped instead of being simulated in a burst.
func (t *Timestep) Advance(elapsed time.Duration) int {
	if t.Quantum <= 0 || elapsed <= 0 {
		return 0
	}
	limit := t.MaxCatchUp
	if limit <= 0 {
		limit = DefaultMaxCatchUp
	}

	t.acc += elapsed
	steps := 0
	for t.acc >= t.Quantum {
		t.acc -= t.Quantum
		steps++
		if steps == limit {
			t.acc %= t.Quantum
			break
		}
	}
	return steps
}

// Pending returns the accumulated time not yet consumed by a tick.
func (t *Timestep) Pending() time.Duration {
	return t.acc
}
