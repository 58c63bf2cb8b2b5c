package operators

import (
	"github.com/lasercalc/optimization-core/internal/objective"
	"github.com/lasercalc/optimization-core/internal/population"
	"github.com/lasercalc/optimization-core/pkg/config"
	"github.com/lasercalc/optimization-core/pkg/models"
	"github.com/lasercalc/optimization-core/pkg/utils"
)

// genetic is a classic generational GA: tournament selection, uniform
// crossover, bounded mutation and elitist replacement.
type genetic struct {
	space  *objective.Space
	tuning *config.Tuning
}

func newGenetic(space *objective.Space, tuning *config.Tuning) *genetic {
	return &genetic{space: space, tuning: tuning}
}

func (g *genetic) Name() models.AlgorithmType {
	return models.AlgorithmGenetic
}

// Vary breeds offspring by tournament selection, uniform crossover and
// mutation. The batch is exactly the population size minus the elite count,
// so elites plus offspring rebuild a full generation.
func (g *genetic) Vary(pop *population.Population, rng *utils.RandSource) []*population.Individual {
	count := pop.Size() - population.EliteCount(pop.Size(), g.tuning.EliteFraction)

	offspring := make([]*population.Individual, 0, count)
	for i := 0; i < count; i++ {
		mother := tournamentSelect(pop, g.tuning.TournamentSize, rng)
		father := tournamentSelect(pop, g.tuning.TournamentSize, rng)

		child := uniformCrossover(mother.Parameters, father.Parameters, rng)
		child = mutate(child, g.space, g.tuning.MutationRate, g.tuning.MutationSpan, rng)

		offspring = append(offspring, &population.Individual{Parameters: child})
	}
	return offspring
}

// Merge forms the next generation as the parent elites plus every offspring,
// so the best solution never regresses between generations.
func (g *genetic) Merge(parents *population.Population, offspring []*population.Individual, rng *utils.RandSource) *population.Population {
	elites := parents.Elites(g.tuning.EliteFraction)

	next := population.New(parents.Size())
	next.Members = append(next.Members, elites...)
	next.Members = append(next.Members, offspring...)
	return next
}
