// Package pareto ranks populations by dominance and crowding for the
// multi-objective front reported on every result and for the NSGA-II
// selection pressure.
package pareto

import (
	"math"
	"sort"

	"github.com/lasercalc/optimization-core/internal/population"
	"github.com/lasercalc/optimization-core/pkg/models"
)

// BoundaryCrowding is the crowding distance assigned to the extreme
// solutions of each front. It stands in for infinity so the value survives
// JSON encoding.
const BoundaryCrowding = 1e9

// objectiveValues returns the objectives as a minimization vector: quality
// is negated so that smaller is uniformly better.
func objectiveValues(obj models.ObjectiveVector) [4]float64 {
	return [4]float64{obj.Cost, obj.Time, -obj.Quality, obj.Energy}
}

// Dominates reports whether a dominates b: no worse in every objective and
// strictly better in at least one.
func Dominates(a, b models.ObjectiveVector) bool {
	av := objectiveValues(a)
	bv := objectiveValues(b)

	strictlyBetter := false
	for i := range av {
		if av[i] > bv[i] {
			return false
		}
		if av[i] < bv[i] {
			strictlyBetter = true
		}
	}
	return strictlyBetter
}

// Ranked is an individual annotated with its dominance rank and crowding
// distance within that rank.
type Ranked struct {
	Individual *population.Individual
	Rank       int
	Crowding   float64
}

// Sort performs fast non-dominated sorting over evaluated individuals and
// computes crowding distances per front. Fronts are returned rank 0 first;
// within a front order follows descending crowding distance.
func Sort(members []*population.Individual) [][]Ranked {
	n := len(members)
	dominated := make([][]int, n) // indices each member dominates
	dominators := make([]int, n)  // how many members dominate it

	var firstFront []int
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j {
				continue
			}
			if Dominates(members[i].Objectives, members[j].Objectives) {
				dominated[i] = append(dominated[i], j)
			} else if Dominates(members[j].Objectives, members[i].Objectives) {
				dominators[i]++
			}
		}
		if dominators[i] == 0 {
			firstFront = append(firstFront, i)
		}
	}

	var frontIndices [][]int
	front := firstFront
	for len(front) > 0 {
		frontIndices = append(frontIndices, front)
		var next []int
		for _, i := range front {
			for _, j := range dominated[i] {
				dominators[j]--
				if dominators[j] == 0 {
					next = append(next, j)
				}
			}
		}
		front = next
	}

	fronts := make([][]Ranked, len(frontIndices))
	for rank, idx := range frontIndices {
		ranked := make([]Ranked, len(idx))
		for k, i := range idx {
			ranked[k] = Ranked{Individual: members[i], Rank: rank}
		}
		assignCrowding(ranked)
		sort.SliceStable(ranked, func(a, b int) bool {
			return ranked[a].Crowding > ranked[b].Crowding
		})
		fronts[rank] = ranked
	}
	return fronts
}

// Flatten returns the fronts as a single slice, rank 0 first.
func Flatten(fronts [][]Ranked) []Ranked {
	var out []Ranked
	for _, front := range fronts {
		out = append(out, front...)
	}
	return out
}

// assignCrowding computes the crowding distance of every member of one
// front. Boundary solutions per objective get BoundaryCrowding.
func assignCrowding(front []Ranked) {
	n := len(front)
	if n == 0 {
		return
	}
	if n <= 2 {
		for i := range front {
			front[i].Crowding = BoundaryCrowding
		}
		return
	}

	for m := 0; m < 4; m++ {
		idx := make([]int, n)
		for i := range idx {
			idx[i] = i
		}
		sort.SliceStable(idx, func(a, b int) bool {
			return objectiveValues(front[idx[a]].Individual.Objectives)[m] <
				objectiveValues(front[idx[b]].Individual.Objectives)[m]
		})

		lo := objectiveValues(front[idx[0]].Individual.Objectives)[m]
		hi := objectiveValues(front[idx[n-1]].Individual.Objectives)[m]

		front[idx[0]].Crowding = BoundaryCrowding
		front[idx[n-1]].Crowding = BoundaryCrowding

		span := hi - lo
		if span <= 0 {
			continue
		}
		for k := 1; k < n-1; k++ {
			i := idx[k]
			if front[i].Crowding >= BoundaryCrowding {
				continue
			}
			prev := objectiveValues(front[idx[k-1]].Individual.Objectives)[m]
			next := objectiveValues(front[idx[k+1]].Individual.Objectives)[m]
			front[i].Crowding += (next - prev) / span
		}
	}

	for i := range front {
		if math.IsInf(front[i].Crowding, 1) || front[i].Crowding > BoundaryCrowding {
			front[i].Crowding = BoundaryCrowding
		}
	}
}

// Front builds the ParetoEntry list reported to callers: every individual
// of the final population with its dominance rank and crowding distance,
// rank 0 first.
func Front(members []*population.Individual) []models.ParetoEntry {
	ranked := Flatten(Sort(members))
	out := make([]models.ParetoEntry, 0, len(ranked))
	for _, r := range ranked {
		out = append(out, models.ParetoEntry{
			Parameters:       r.Individual.Parameters,
			Objectives:       r.Individual.Objectives,
			DominanceRank:    r.Rank,
			CrowdingDistance: r.Crowding,
		})
	}
	return out
}
