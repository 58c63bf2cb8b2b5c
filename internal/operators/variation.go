package operators

import (
	"github.com/lasercalc/optimization-core/internal/objective"
	"github.com/lasercalc/optimization-core/internal/population"
	"github.com/lasercalc/optimization-core/pkg/models"
	"github.com/lasercalc/optimization-core/pkg/utils"
)

// tournamentSelect picks the fittest of k uniformly sampled individuals.
// On a fitness tie the earlier sample wins.
func tournamentSelect(pop *population.Population, k int, rng *utils.RandSource) *population.Individual {
	best := pop.Members[rng.Intn(pop.Size())]
	for i := 1; i < k; i++ {
		challenger := pop.Members[rng.Intn(pop.Size())]
		if challenger.Fitness > best.Fitness {
			best = challenger
		}
	}
	return best
}

// uniformCrossover mixes two parents field by field with probability 0.5.
func uniformCrossover(a, b models.ParameterVector, rng *utils.RandSource) models.ParameterVector {
	av := a.Values()
	bv := b.Values()
	var child [models.NumParameters]float64
	for i := range child {
		if rng.BernoulliBool(0.5) {
			child[i] = av[i]
		} else {
			child[i] = bv[i]
		}
	}
	return models.VectorFromValues(child)
}

// mutate perturbs each field with probability rate by a uniform step of up
// to span times the bound range, then clamps into the space.
func mutate(p models.ParameterVector, space *objective.Space, rate, span float64, rng *utils.RandSource) models.ParameterVector {
	v := p.Values()
	for i, b := range space.Bounds() {
		if !rng.BernoulliBool(rate) {
			continue
		}
		v[i] += rng.SymmetricFloat64(span * b.Range())
	}
	return space.Clamp(models.VectorFromValues(v))
}
