package operators

import (
	"math"

	"github.com/lasercalc/optimization-core/internal/objective"
	"github.com/lasercalc/optimization-core/internal/population"
	"github.com/lasercalc/optimization-core/pkg/config"
	"github.com/lasercalc/optimization-core/pkg/models"
	"github.com/lasercalc/optimization-core/pkg/utils"
)

// annealing runs one independent simulated annealing chain per population
// slot. All chains share a temperature schedule that cools geometrically
// each generation, so early generations roam and late ones settle.
type annealing struct {
	space       *objective.Space
	tuning      *config.Tuning
	temperature float64
}

func newAnnealing(space *objective.Space, tuning *config.Tuning) *annealing {
	return &annealing{
		space:       space,
		tuning:      tuning,
		temperature: tuning.InitialTemperature,
	}
}

func (a *annealing) Name() models.AlgorithmType {
	return models.AlgorithmSimulatedAnnealing
}

// Vary proposes one neighbor per chain: a Gaussian step on every parameter,
// scaled by the current temperature relative to its start.
func (a *annealing) Vary(pop *population.Population, rng *utils.RandSource) []*population.Individual {
	heat := 1.0
	if a.tuning.InitialTemperature > 0 {
		heat = a.temperature / a.tuning.InitialTemperature
	}
	step := a.tuning.MutationSpan * heat

	offspring := make([]*population.Individual, 0, pop.Size())
	for _, current := range pop.Members {
		v := current.Parameters.Values()
		for j, b := range a.space.Bounds() {
			v[j] += rng.NormFloat64(0, step*b.Range())
		}
		neighbor := a.space.Clamp(models.VectorFromValues(v))
		offspring = append(offspring, &population.Individual{Parameters: neighbor})
	}
	return offspring
}

// Merge applies the Metropolis criterion per chain: a better neighbor always
// replaces its parent, a worse one replaces it with probability
// exp(-loss/temperature). Cooling happens once per merge.
func (a *annealing) Merge(parents *population.Population, offspring []*population.Individual, rng *utils.RandSource) *population.Population {
	next := population.New(parents.Size())
	for i, parent := range parents.Members {
		neighbor := offspring[i]
		if a.accept(parent.Fitness, neighbor.Fitness, rng) {
			next.Members = append(next.Members, neighbor)
		} else {
			next.Members = append(next.Members, parent.Clone())
		}
	}

	a.temperature *= a.tuning.CoolingRate
	return next
}

func (a *annealing) accept(current, proposed float64, rng *utils.RandSource) bool {
	if proposed >= current {
		return true
	}
	if a.temperature <= 0 {
		return false
	}
	loss := current - proposed
	return rng.Float64() < math.Exp(-loss/a.temperature)
}
