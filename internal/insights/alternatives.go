package insights

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/lasercalc/optimization-core/internal/objective"
	"github.com/lasercalc/optimization-core/internal/pareto"
	"github.com/lasercalc/optimization-core/internal/population"
	"github.com/lasercalc/optimization-core/pkg/models"
)

// MaxAlternatives caps how many alternative solutions a result carries.
const MaxAlternatives = 5

// minSeparation is the minimum normalized parameter-space distance between
// the optimum, every alternative, and each other. Closer candidates are
// near-duplicates and add no information.
const minSeparation = 0.15

// Alternatives picks up to MaxAlternatives well-separated solutions from the
// final population, best-ranked first, and describes their tradeoffs against
// the optimal solution.
func Alternatives(space *objective.Space, members []*population.Individual, best *population.Individual) []models.AlternativeSolution {
	ranked := pareto.Flatten(pareto.Sort(members))

	bestNorm := space.Normalize(best.Parameters)
	chosen := [][]float64{bestNorm[:]}

	var out []models.AlternativeSolution
	for _, r := range ranked {
		if len(out) >= MaxAlternatives {
			break
		}

		norm := space.Normalize(r.Individual.Parameters)
		if tooClose(norm[:], chosen) {
			continue
		}

		out = append(out, describe(r.Individual, best))
		chosen = append(chosen, norm[:])
	}
	return out
}

func tooClose(candidate []float64, chosen [][]float64) bool {
	for _, c := range chosen {
		if floats.Distance(candidate, c, 2) < minSeparation {
			return true
		}
	}
	return false
}

// describe names an alternative after its strongest advantage over the
// optimum and lists the relative tradeoffs.
func describe(alt, best *population.Individual) models.AlternativeSolution {
	a := alt.Objectives
	b := best.Objectives

	advantages := map[string]float64{
		"cost":    relativeGain(b.Cost, a.Cost),
		"time":    relativeGain(b.Time, a.Time),
		"energy":  relativeGain(b.Energy, a.Energy),
		"quality": relativeGainMax(b.Quality, a.Quality),
	}

	name := "balanced alternative"
	strongest := 0.0
	for _, key := range []string{"cost", "time", "quality", "energy"} {
		if advantages[key] > strongest {
			strongest = advantages[key]
			name = map[string]string{
				"cost":    "cost saver",
				"time":    "fast cut",
				"quality": "premium quality",
				"energy":  "energy saver",
			}[key]
		}
	}

	var tradeoffs []string
	appendTradeoff := func(label string, gain float64, betterWord, worseWord string) {
		if math.Abs(gain) < 0.01 {
			return
		}
		word := betterWord
		if gain < 0 {
			word = worseWord
		}
		tradeoffs = append(tradeoffs, fmt.Sprintf("%.0f%% %s %s", math.Abs(gain)*100, word, label))
	}
	appendTradeoff("cost", advantages["cost"], "lower", "higher")
	appendTradeoff("cutting time", advantages["time"], "shorter", "longer")
	appendTradeoff("quality", advantages["quality"], "higher", "lower")
	appendTradeoff("energy", advantages["energy"], "lower", "higher")
	if len(tradeoffs) == 0 {
		tradeoffs = append(tradeoffs, "near-identical objectives with a different parameter mix")
	}

	suitability := 0.0
	if best.Fitness > 0 {
		suitability = alt.Fitness / best.Fitness
		if suitability > 1 {
			suitability = 1
		}
	}

	return models.AlternativeSolution{
		Name:                name,
		Parameters:          alt.Parameters,
		PredictedObjectives: a,
		Tradeoffs:           tradeoffs,
		SuitabilityScore:    suitability,
	}
}

// relativeGain is the fractional improvement of alt over base for a
// minimized objective: positive means alt is better.
func relativeGain(base, alt float64) float64 {
	if base <= 0 {
		return 0
	}
	return (base - alt) / base
}

// relativeGainMax is the fractional improvement for a maximized objective.
func relativeGainMax(base, alt float64) float64 {
	if base <= 0 {
		return 0
	}
	return (alt - base) / base
}
