package population

import (
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"github.com/lasercalc/optimization-core/internal/objective"
	"github.com/lasercalc/optimization-core/pkg/models"
	"github.com/lasercalc/optimization-core/pkg/utils"
)

// Individual is one candidate solution with its evaluation. Objectives and
// Fitness are meaningful only when Evaluated is true.
type Individual struct {
	Parameters models.ParameterVector
	Objectives models.ObjectiveVector
	Fitness    float64
	Evaluated  bool
}

// Clone returns a deep copy of the individual.
func (ind *Individual) Clone() *Individual {
	c := *ind
	return &c
}

// Population is one generation's set of individuals. The slice is owned by
// the population; callers mutate individuals only through the evolution loop.
type Population struct {
	Members []*Individual
}

// New creates an empty population with the given capacity.
func New(capacity int) *Population {
	return &Population{Members: make([]*Individual, 0, capacity)}
}

// Initialize draws size individuals uniformly from the parameter space. When
// seedPoint is non-nil its clamped copy replaces the first draw, so a known
// working setup always participates in generation zero.
func Initialize(space *objective.Space, size int, seedPoint *models.ParameterVector, rng *utils.RandSource) *Population {
	pop := New(size)
	bounds := space.Bounds()

	for i := 0; i < size; i++ {
		var v [models.NumParameters]float64
		for j, b := range bounds {
			v[j] = rng.UniformFloat64(b.Min, b.Max)
		}
		pop.Members = append(pop.Members, &Individual{Parameters: models.VectorFromValues(v)})
	}

	if seedPoint != nil && size > 0 {
		pop.Members[0] = &Individual{Parameters: space.Clamp(*seedPoint)}
	}
	return pop
}

// Clone returns a deep copy of the population.
func (p *Population) Clone() *Population {
	out := New(len(p.Members))
	for _, ind := range p.Members {
		out.Members = append(out.Members, ind.Clone())
	}
	return out
}

// Size returns the number of individuals.
func (p *Population) Size() int {
	return len(p.Members)
}

// Best returns the evaluated individual with the highest fitness, or nil if
// none is evaluated.
func (p *Population) Best() *Individual {
	var best *Individual
	for _, ind := range p.Members {
		if !ind.Evaluated {
			continue
		}
		if best == nil || ind.Fitness > best.Fitness {
			best = ind
		}
	}
	return best
}

// Fitnesses returns the fitness of every evaluated individual.
func (p *Population) Fitnesses() []float64 {
	out := make([]float64, 0, len(p.Members))
	for _, ind := range p.Members {
		if ind.Evaluated {
			out = append(out, ind.Fitness)
		}
	}
	return out
}

// AverageFitness returns the mean fitness over evaluated individuals.
func (p *Population) AverageFitness() float64 {
	f := p.Fitnesses()
	if len(f) == 0 {
		return 0
	}
	return stat.Mean(f, nil)
}

// EliteCount returns how many individuals elitism carries for a population
// size and fraction: at least one whenever the fraction is positive.
func EliteCount(size int, fraction float64) int {
	if fraction <= 0 || size == 0 {
		return 0
	}
	count := int(float64(size) * fraction)
	if count < 1 {
		count = 1
	}
	if count > size {
		count = size
	}
	return count
}

// Elites returns clones of the top fraction of the population by fitness,
// at least one individual when fraction is positive. Order is best first;
// ties keep the earlier member.
func (p *Population) Elites(fraction float64) []*Individual {
	count := EliteCount(len(p.Members), fraction)
	if count == 0 {
		return nil
	}

	idx := make([]int, len(p.Members))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return p.Members[idx[a]].Fitness > p.Members[idx[b]].Fitness
	})

	elites := make([]*Individual, 0, count)
	for _, i := range idx[:count] {
		elites = append(elites, p.Members[i].Clone())
	}
	return elites
}

// Diversity is the mean pairwise Euclidean distance between individuals in
// the normalized parameter space. Zero means a fully converged population.
func (p *Population) Diversity(space *objective.Space) float64 {
	n := len(p.Members)
	if n < 2 {
		return 0
	}

	points := make([][]float64, n)
	for i, ind := range p.Members {
		norm := space.Normalize(ind.Parameters)
		points[i] = norm[:]
	}

	total := 0.0
	pairs := 0
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			total += floats.Distance(points[i], points[j], 2)
			pairs++
		}
	}
	return total / float64(pairs)
}
