// Package operators holds the search strategies the evolution loop drives.
// Each strategy proposes candidate parameter vectors and decides how an
// evaluated batch of offspring merges into the next generation.
package operators

import (
	"github.com/lasercalc/optimization-core/internal/objective"
	"github.com/lasercalc/optimization-core/internal/population"
	"github.com/lasercalc/optimization-core/pkg/config"
	"github.com/lasercalc/optimization-core/pkg/models"
	"github.com/lasercalc/optimization-core/pkg/utils"
)

// Strategy is one population-based search algorithm. The loop calls Vary on
// an evaluated population to get unevaluated offspring, evaluates them, then
// calls Merge to form the next generation. Implementations may keep state
// between generations; a Strategy serves exactly one run.
type Strategy interface {
	// Name returns the algorithm identifier for logs and summaries.
	Name() models.AlgorithmType

	// Vary proposes offspring from an evaluated population. Every returned
	// parameter vector lies within the parameter space.
	Vary(pop *population.Population, rng *utils.RandSource) []*population.Individual

	// Merge combines the evaluated parents and evaluated offspring into the
	// next generation of the same size as parents.
	Merge(parents *population.Population, offspring []*population.Individual, rng *utils.RandSource) *population.Population
}

// New builds the strategy for an algorithm type.
func New(algorithm models.AlgorithmType, space *objective.Space, tuning *config.Tuning) (Strategy, error) {
	switch algorithm {
	case models.AlgorithmGenetic:
		return newGenetic(space, tuning), nil
	case models.AlgorithmParticleSwarm:
		return newSwarm(space, tuning), nil
	case models.AlgorithmSimulatedAnnealing:
		return newAnnealing(space, tuning), nil
	case models.AlgorithmNSGA2:
		return newNSGA2(space, tuning), nil
	default:
		return nil, &UnknownAlgorithmError{Algorithm: string(algorithm)}
	}
}

// UnknownAlgorithmError indicates an unrecognized algorithm type.
type UnknownAlgorithmError struct {
	Algorithm string
}

func (e *UnknownAlgorithmError) Error() string {
	return "unknown algorithm type: " + e.Algorithm
}
