package evolution

// convergenceTracker detects stagnation: the run has converged once the
// best fitness has failed to improve by at least tolerance for a full
// window of consecutive generations.
type convergenceTracker struct {
	tolerance float64
	window    int

	best     float64
	stagnant int
	primed   bool
}

func newConvergenceTracker(tolerance float64, window int) *convergenceTracker {
	return &convergenceTracker{tolerance: tolerance, window: window}
}

// Observe records one generation's best fitness and reports whether the
// stagnation window is now full.
func (c *convergenceTracker) Observe(bestFitness float64) bool {
	if !c.primed {
		c.best = bestFitness
		c.primed = true
		return false
	}

	if bestFitness-c.best < c.tolerance {
		c.stagnant++
	} else {
		c.stagnant = 0
	}
	if bestFitness > c.best {
		c.best = bestFitness
	}
	return c.stagnant >= c.window
}
