package operators

import (
	"github.com/lasercalc/optimization-core/internal/objective"
	"github.com/lasercalc/optimization-core/internal/population"
	"github.com/lasercalc/optimization-core/pkg/config"
	"github.com/lasercalc/optimization-core/pkg/models"
	"github.com/lasercalc/optimization-core/pkg/utils"
)

// swarm is particle swarm optimization. Each population slot is a particle
// with a velocity and a personal best; the swarm shares one global best.
type swarm struct {
	space  *objective.Space
	tuning *config.Tuning

	velocities [][models.NumParameters]float64
	personal   []*population.Individual
	global     *population.Individual
}

func newSwarm(space *objective.Space, tuning *config.Tuning) *swarm {
	return &swarm{space: space, tuning: tuning}
}

func (s *swarm) Name() models.AlgorithmType {
	return models.AlgorithmParticleSwarm
}

// Vary moves every particle along its velocity toward its personal and the
// global best, clamping position and velocity per parameter.
func (s *swarm) Vary(pop *population.Population, rng *utils.RandSource) []*population.Individual {
	s.observe(pop.Members)
	bounds := s.space.Bounds()

	offspring := make([]*population.Individual, 0, pop.Size())
	for i, particle := range pop.Members {
		x := particle.Parameters.Values()
		pbest := s.personal[i].Parameters.Values()
		gbest := s.global.Parameters.Values()

		var next [models.NumParameters]float64
		for j, b := range bounds {
			v := s.tuning.Inertia*s.velocities[i][j] +
				s.tuning.CognitivePull*rng.Float64()*(pbest[j]-x[j]) +
				s.tuning.SocialPull*rng.Float64()*(gbest[j]-x[j])

			limit := s.tuning.MaxVelocitySpan * b.Range()
			v = utils.ClampFloat64(v, -limit, limit)

			s.velocities[i][j] = v
			next[j] = utils.ClampFloat64(x[j]+v, b.Min, b.Max)
		}
		offspring = append(offspring, &population.Individual{Parameters: models.VectorFromValues(next)})
	}
	return offspring
}

// Merge adopts the evaluated offspring as the new particle positions and
// refreshes the personal and global bests from them.
func (s *swarm) Merge(parents *population.Population, offspring []*population.Individual, rng *utils.RandSource) *population.Population {
	s.observe(offspring)

	next := population.New(len(offspring))
	next.Members = append(next.Members, offspring...)
	return next
}

// observe updates the personal and global bests from an evaluated batch,
// lazily initializing the swarm state on the first generation.
func (s *swarm) observe(members []*population.Individual) {
	if s.velocities == nil {
		s.velocities = make([][models.NumParameters]float64, len(members))
		s.personal = make([]*population.Individual, len(members))
	}
	for i, m := range members {
		if !m.Evaluated {
			continue
		}
		if s.personal[i] == nil || m.Fitness > s.personal[i].Fitness {
			s.personal[i] = m.Clone()
		}
		if s.global == nil || m.Fitness > s.global.Fitness {
			s.global = m.Clone()
		}
	}
}
