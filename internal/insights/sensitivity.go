// Package insights derives the human-facing extras of a result: alternative
// solutions off the Pareto front, parameter sensitivity and recommendations.
package insights

import (
	"fmt"
	"math"
	"sort"

	"github.com/lasercalc/optimization-core/internal/objective"
	"github.com/lasercalc/optimization-core/pkg/models"
)

// perturbationSpan is the fraction of each parameter's bound range used to
// probe fitness sensitivity around the optimum.
const perturbationSpan = 0.2

// Sensitivity classification thresholds on |Δfitness| per unit fractional
// parameter change.
const (
	mediumThreshold   = 0.1
	highThreshold     = 0.3
	criticalThreshold = 0.7
)

// Sensitivity probes how strongly each parameter moves fitness around the
// best solution: each parameter is nudged a fifth of its bound range in both
// directions while the others stay fixed.
func Sensitivity(space *objective.Space, evaluator *objective.Evaluator, best models.ParameterVector, bestFitness float64) []models.ParameterSensitivity {
	names := models.ParameterNames()
	bounds := space.Bounds()

	out := make([]models.ParameterSensitivity, 0, models.NumParameters)
	for i := 0; i < models.NumParameters; i++ {
		span := perturbationSpan * bounds[i].Range()

		sensitivity := 0.0
		if span > 0 {
			up := probe(space, evaluator, best, i, span)
			down := probe(space, evaluator, best, i, -span)

			delta := math.Abs(bestFitness - up)
			if d := math.Abs(bestFitness - down); d > delta {
				delta = d
			}
			sensitivity = delta / perturbationSpan
		}

		out = append(out, models.ParameterSensitivity{
			Parameter:   names[i],
			Sensitivity: sensitivity,
			Level:       classify(sensitivity),
		})
	}

	sort.SliceStable(out, func(a, b int) bool {
		return out[a].Sensitivity > out[b].Sensitivity
	})
	return out
}

// probe evaluates fitness with one parameter shifted by delta and clamped.
// Evaluation cannot fail here because the probe point is clamped in bounds;
// a degenerate evaluation counts as zero fitness.
func probe(space *objective.Space, evaluator *objective.Evaluator, base models.ParameterVector, index int, delta float64) float64 {
	v := base.Values()
	v[index] += delta
	p := space.Clamp(models.VectorFromValues(v))

	_, fitness, err := evaluator.Evaluate(p)
	if err != nil {
		return 0
	}
	return fitness
}

func classify(sensitivity float64) models.SensitivityLevel {
	switch {
	case sensitivity < mediumThreshold:
		return models.SensitivityLow
	case sensitivity < highThreshold:
		return models.SensitivityMedium
	case sensitivity < criticalThreshold:
		return models.SensitivityHigh
	default:
		return models.SensitivityCritical
	}
}

// Build assembles the insights block from sensitivity results and run state.
func Build(sensitivities []models.ParameterSensitivity, converged bool, generationsRun int) models.OptimizationInsights {
	insights := models.OptimizationInsights{
		ParameterSensitivity: sensitivities,
	}

	for _, s := range sensitivities {
		if s.Level == models.SensitivityCritical || s.Level == models.SensitivityHigh {
			insights.CriticalParameters = append(insights.CriticalParameters, s.Parameter)
		}
	}

	for _, s := range sensitivities {
		switch s.Level {
		case models.SensitivityCritical:
			insights.Recommendations = append(insights.Recommendations, fmt.Sprintf(
				"%s dominates the outcome; keep it tightly controlled around the optimized value", s.Parameter))
		case models.SensitivityHigh:
			insights.Recommendations = append(insights.Recommendations, fmt.Sprintf(
				"%s strongly affects the result; verify the machine holds it accurately", s.Parameter))
		}
	}

	if !converged {
		insights.Recommendations = append(insights.Recommendations, fmt.Sprintf(
			"the search used all %d generations without converging; rerun with a larger generation budget or looser tolerance", generationsRun))
	}
	if len(insights.Recommendations) == 0 {
		insights.Recommendations = append(insights.Recommendations,
			"the optimum sits on a flat fitness region; normal machine drift should not degrade results")
	}
	return insights
}
