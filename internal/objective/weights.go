package objective

import (
	"fmt"
	"math"

	"github.com/lasercalc/optimization-core/pkg/models"
)

// Squashing scales for the minimization objectives. Each maps "typical good"
// values near the middle of the score range so that fitness differences stay
// visible across the search space.
const (
	costScale   = 1.0  // currency units per reference cut
	timeScale   = 30.0 // seconds per reference cut
	energyScale = 0.05 // kWh per reference cut
)

// Weights is a normalized weight per objective, derived once per run from
// the optimization goal.
type Weights struct {
	Cost    float64
	Time    float64
	Quality float64
	Energy  float64
}

// WeightsForGoal derives the objective weights from the user's goal.
func WeightsForGoal(goal models.OptimizationGoal) (Weights, error) {
	switch goal {
	case models.GoalCost:
		return Weights{Cost: 0.5, Time: 0.2, Quality: 0.2, Energy: 0.1}, nil
	case models.GoalTime:
		return Weights{Cost: 0.2, Time: 0.5, Quality: 0.2, Energy: 0.1}, nil
	case models.GoalQuality:
		return Weights{Cost: 0.15, Time: 0.15, Quality: 0.6, Energy: 0.1}, nil
	case models.GoalEnergy:
		return Weights{Cost: 0.2, Time: 0.1, Quality: 0.2, Energy: 0.5}, nil
	case models.GoalBalanced:
		return Weights{Cost: 0.25, Time: 0.25, Quality: 0.25, Energy: 0.25}, nil
	default:
		return Weights{}, &UnknownGoalError{Goal: string(goal)}
	}
}

// Sum returns the total of all weights.
func (w Weights) Sum() float64 {
	return w.Cost + w.Time + w.Quality + w.Energy
}

// Validate checks that weights are non-negative and sum to 1.0.
func (w Weights) Validate() error {
	if math.Abs(w.Sum()-1.0) > 0.001 {
		return fmt.Errorf("weights sum to %.4f, must sum to 1.0", w.Sum())
	}
	for _, v := range []float64{w.Cost, w.Time, w.Quality, w.Energy} {
		if v < 0 {
			return fmt.Errorf("negative weight: %f", v)
		}
	}
	return nil
}

// Fitness combines an objective vector into a scalar in (0, 1]. Each
// minimization objective is squashed onto (0, 1] so that smaller is better
// maps to higher score; quality already lives on [0, 100].
func (w Weights) Fitness(obj models.ObjectiveVector) float64 {
	costScore := 1 / (1 + obj.Cost/costScale)
	timeScore := 1 / (1 + obj.Time/timeScale)
	energyScore := 1 / (1 + obj.Energy/energyScale)
	qualityScore := obj.Quality / 100

	return w.Cost*costScore + w.Time*timeScore + w.Quality*qualityScore + w.Energy*energyScore
}

// UnknownGoalError indicates an unrecognized optimization goal.
type UnknownGoalError struct {
	Goal string
}

func (e *UnknownGoalError) Error() string {
	return "unknown optimization goal: " + e.Goal
}
