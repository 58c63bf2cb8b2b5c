package operators

import (
	"github.com/lasercalc/optimization-core/internal/objective"
	"github.com/lasercalc/optimization-core/internal/pareto"
	"github.com/lasercalc/optimization-core/internal/population"
	"github.com/lasercalc/optimization-core/pkg/config"
	"github.com/lasercalc/optimization-core/pkg/models"
	"github.com/lasercalc/optimization-core/pkg/utils"
)

// nsga2 is the elitist non-dominated sorting GA. Selection pressure comes
// from dominance rank and crowding distance rather than scalar fitness, so
// the population spreads along the whole tradeoff surface.
type nsga2 struct {
	space  *objective.Space
	tuning *config.Tuning
}

func newNSGA2(space *objective.Space, tuning *config.Tuning) *nsga2 {
	return &nsga2{space: space, tuning: tuning}
}

func (n *nsga2) Name() models.AlgorithmType {
	return models.AlgorithmNSGA2
}

// Vary ranks the parents and breeds a full batch of offspring with binary
// tournaments on (rank, crowding), uniform crossover and mutation.
func (n *nsga2) Vary(pop *population.Population, rng *utils.RandSource) []*population.Individual {
	ranked := pareto.Flatten(pareto.Sort(pop.Members))

	offspring := make([]*population.Individual, 0, pop.Size())
	for i := 0; i < pop.Size(); i++ {
		mother := crowdedTournament(ranked, rng)
		father := crowdedTournament(ranked, rng)

		child := uniformCrossover(mother.Parameters, father.Parameters, rng)
		child = mutate(child, n.space, n.tuning.MutationRate, n.tuning.MutationSpan, rng)

		offspring = append(offspring, &population.Individual{Parameters: child})
	}
	return offspring
}

// Merge performs environmental selection over parents plus offspring: whole
// fronts are admitted rank by rank, the straddling front is truncated by
// descending crowding distance.
func (n *nsga2) Merge(parents *population.Population, offspring []*population.Individual, rng *utils.RandSource) *population.Population {
	size := parents.Size()

	combined := make([]*population.Individual, 0, size+len(offspring))
	combined = append(combined, parents.Members...)
	combined = append(combined, offspring...)

	next := population.New(size)
	for _, front := range pareto.Sort(combined) {
		for _, r := range front {
			if len(next.Members) >= size {
				return next
			}
			next.Members = append(next.Members, r.Individual)
		}
	}
	return next
}

// crowdedTournament picks the better of two random candidates: lower rank
// wins, ties go to the larger crowding distance.
func crowdedTournament(ranked []pareto.Ranked, rng *utils.RandSource) *population.Individual {
	a := ranked[rng.Intn(len(ranked))]
	b := ranked[rng.Intn(len(ranked))]

	if a.Rank != b.Rank {
		if a.Rank < b.Rank {
			return a.Individual
		}
		return b.Individual
	}
	if b.Crowding > a.Crowding {
		return b.Individual
	}
	return a.Individual
}
