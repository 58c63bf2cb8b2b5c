package objective

import (
	"fmt"

	"github.com/lasercalc/optimization-core/pkg/models"
)

// Evaluator bundles the objective model, goal weights and soft constraints
// into the single evaluation the evolution loop calls per individual.
// Violated constraints never fail an evaluation; they damp fitness so the
// search drifts toward feasible regions.
type Evaluator struct {
	model       *Model
	weights     Weights
	constraints *models.Constraints
	penalty     float64
}

// NewEvaluator creates an evaluator. constraints may be nil.
func NewEvaluator(model *Model, weights Weights, constraints *models.Constraints, penalty float64) *Evaluator {
	return &Evaluator{
		model:       model,
		weights:     weights,
		constraints: constraints,
		penalty:     penalty,
	}
}

// Evaluate computes objectives and constraint-damped fitness for a vector.
func (e *Evaluator) Evaluate(p models.ParameterVector) (models.ObjectiveVector, float64, error) {
	obj, err := e.model.Evaluate(p)
	if err != nil {
		return models.ObjectiveVector{}, 0, err
	}

	fitness := e.weights.Fitness(obj)
	if overshoot := e.violationOvershoot(obj); overshoot > 0 {
		fitness /= 1 + e.penalty*overshoot
	}
	return obj, fitness, nil
}

// Weights exposes the goal weights used by this evaluator.
func (e *Evaluator) Weights() Weights {
	return e.weights
}

// violationOvershoot sums the relative amounts by which objectives exceed
// their soft constraints.
func (e *Evaluator) violationOvershoot(obj models.ObjectiveVector) float64 {
	if e.constraints == nil {
		return 0
	}

	total := 0.0
	if c := e.constraints.MaxCost; c != nil && *c > 0 && obj.Cost > *c {
		total += (obj.Cost - *c) / *c
	}
	if c := e.constraints.MaxTime; c != nil && *c > 0 && obj.Time > *c {
		total += (obj.Time - *c) / *c
	}
	if c := e.constraints.MaxEnergy; c != nil && *c > 0 && obj.Energy > *c {
		total += (obj.Energy - *c) / *c
	}
	if c := e.constraints.MinQuality; c != nil && *c > 0 && obj.Quality < *c {
		total += (*c - obj.Quality) / *c
	}
	return total
}

// ConstraintWarnings describes which soft constraints the given objectives
// violate, phrased for the result's warnings list.
func (e *Evaluator) ConstraintWarnings(obj models.ObjectiveVector) []string {
	if e.constraints == nil {
		return nil
	}

	var warnings []string
	if c := e.constraints.MinQuality; c != nil && obj.Quality < *c {
		warnings = append(warnings, fmt.Sprintf(
			"quality constraint not met: best achievable quality %.1f is below the requested minimum %.1f; consider a higher laser power or thinner material", obj.Quality, *c))
	}
	if c := e.constraints.MaxCost; c != nil && obj.Cost > *c {
		warnings = append(warnings, fmt.Sprintf(
			"cost constraint not met: best solution costs %.2f against a maximum of %.2f", obj.Cost, *c))
	}
	if c := e.constraints.MaxTime; c != nil && obj.Time > *c {
		warnings = append(warnings, fmt.Sprintf(
			"time constraint not met: best solution needs %.1fs against a maximum of %.1fs", obj.Time, *c))
	}
	if c := e.constraints.MaxEnergy; c != nil && obj.Energy > *c {
		warnings = append(warnings, fmt.Sprintf(
			"energy constraint not met: best solution uses %.3f kWh against a maximum of %.3f kWh", obj.Energy, *c))
	}
	return warnings
}
