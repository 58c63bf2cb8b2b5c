// Package evolution drives a search strategy through the generational loop:
// evaluate, vary, evaluate offspring, merge, check termination.
package evolution

import (
	"context"
	"time"

	"github.com/sourcegraph/conc/pool"

	"github.com/lasercalc/optimization-core/internal/objective"
	"github.com/lasercalc/optimization-core/internal/operators"
	"github.com/lasercalc/optimization-core/internal/population"
	"github.com/lasercalc/optimization-core/pkg/config"
	"github.com/lasercalc/optimization-core/pkg/logger"
	"github.com/lasercalc/optimization-core/pkg/models"
	"github.com/lasercalc/optimization-core/pkg/utils"
)

// Params configures one run of the loop.
type Params struct {
	PopulationSize int
	Generations    int
	Tolerance      float64

	// SeedPoint, when non-nil, joins generation zero after clamping.
	SeedPoint *models.ParameterVector
}

// Outcome is everything the loop learned during a run.
type Outcome struct {
	Final          *population.Population
	BestEver       *population.Individual
	GenerationsRun int
	Converged      bool
	Termination    models.TerminationReason
	History        []models.ConvergenceRecord
}

// Loop owns the generational state machine for one run. It is not safe for
// concurrent use; evaluation inside a generation is parallel.
type Loop struct {
	space     *objective.Space
	evaluator *objective.Evaluator
	strategy  operators.Strategy
	tuning    *config.Tuning
	rng       *utils.RandSource
}

// New creates a loop over a parameter space, evaluator and strategy.
func New(space *objective.Space, evaluator *objective.Evaluator, strategy operators.Strategy, tuning *config.Tuning, rng *utils.RandSource) *Loop {
	return &Loop{
		space:     space,
		evaluator: evaluator,
		strategy:  strategy,
		tuning:    tuning,
		rng:       rng,
	}
}

// Run executes the loop until convergence, the generation budget, or
// cancellation. Cancellation is not an error: the outcome carries the work
// done so far with a cancelled termination reason. An evaluation error
// aborts the whole run.
func (l *Loop) Run(ctx context.Context, params Params) (*Outcome, error) {
	start := time.Now()

	pop := population.Initialize(l.space, params.PopulationSize, params.SeedPoint, l.rng)
	if err := l.evaluate(ctx, pop.Members); err != nil {
		return nil, err
	}

	tracker := newConvergenceTracker(params.Tolerance, l.tuning.StagnationWindow)
	outcome := &Outcome{Termination: models.TerminationMaxGenerations}
	bestEver := pop.Best().Clone()

	l.record(outcome, 0, pop, start)
	tracker.Observe(pop.Best().Fitness)

	generation := 0
	for generation < params.Generations {
		if ctx.Err() != nil {
			outcome.Termination = models.TerminationCancelled
			break
		}

		offspring := l.strategy.Vary(pop, l.rng)
		if err := l.evaluate(ctx, offspring); err != nil {
			return nil, err
		}
		pop = l.strategy.Merge(pop, offspring, l.rng)
		generation++

		best := pop.Best()
		if best != nil && best.Fitness > bestEver.Fitness {
			bestEver = best.Clone()
		}

		l.record(outcome, generation, pop, start)

		if tracker.Observe(best.Fitness) {
			outcome.Converged = true
			outcome.Termination = models.TerminationConverged
			logger.Debug("search converged",
				"generation", generation,
				"bestFitness", best.Fitness,
			)
			break
		}
	}

	outcome.Final = pop
	outcome.BestEver = bestEver
	outcome.GenerationsRun = generation
	return outcome, nil
}

// evaluate fills in objectives and fitness for every unevaluated individual,
// fanned out over a bounded worker pool. The first error cancels the rest.
func (l *Loop) evaluate(ctx context.Context, members []*population.Individual) error {
	p := pool.New().
		WithErrors().
		WithContext(ctx).
		WithMaxGoroutines(l.tuning.MaxParallelEvaluations)

	for _, ind := range members {
		if ind.Evaluated {
			continue
		}
		ind := ind // capture per iteration; go directive is below 1.22
		p.Go(func(ctx context.Context) error {
			obj, fitness, err := l.evaluator.Evaluate(ind.Parameters)
			if err != nil {
				return err
			}
			ind.Objectives = obj
			ind.Fitness = fitness
			ind.Evaluated = true
			return nil
		})
	}
	return p.Wait()
}

// record appends one generation snapshot to the convergence history.
func (l *Loop) record(outcome *Outcome, generation int, pop *population.Population, start time.Time) {
	outcome.History = append(outcome.History, models.ConvergenceRecord{
		Generation:     generation,
		BestFitness:    pop.Best().Fitness,
		AverageFitness: pop.AverageFitness(),
		Diversity:      pop.Diversity(l.space),
		ElapsedSeconds: time.Since(start).Seconds(),
	})
}
