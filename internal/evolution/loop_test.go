package evolution

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lasercalc/optimization-core/internal/objective"
	"github.com/lasercalc/optimization-core/internal/operators"
	"github.com/lasercalc/optimization-core/pkg/config"
	"github.com/lasercalc/optimization-core/pkg/models"
	"github.com/lasercalc/optimization-core/pkg/utils"
)

func newTestLoop(t *testing.T, algorithm models.AlgorithmType, seed int64) (*Loop, *objective.Space) {
	t.Helper()

	profile, ok := config.DefaultCatalog().Profile(models.MaterialSteel)
	require.True(t, ok)
	space := objective.NewSpace(profile, 6000)

	weights, err := objective.WeightsForGoal(models.GoalBalanced)
	require.NoError(t, err)

	tuning := config.DefaultTuning()
	evaluator := objective.NewEvaluator(objective.NewModel(space, 5), weights, nil, tuning.ConstraintPenalty)

	strategy, err := operators.New(algorithm, space, tuning)
	require.NoError(t, err)

	return New(space, evaluator, strategy, tuning, utils.NewRandSource(seed)), space
}

func TestRunImprovesFitness(t *testing.T) {
	loop, _ := newTestLoop(t, models.AlgorithmGenetic, 42)

	outcome, err := loop.Run(context.Background(), Params{
		PopulationSize: 40,
		Generations:    60,
		Tolerance:      0.001,
	})
	require.NoError(t, err)

	require.NotEmpty(t, outcome.History)
	first := outcome.History[0].BestFitness
	assert.Greater(t, outcome.BestEver.Fitness, first)
	assert.Positive(t, outcome.GenerationsRun)
}

func TestRunHistoryIsCompleteAndMonotone(t *testing.T) {
	loop, _ := newTestLoop(t, models.AlgorithmGenetic, 7)

	outcome, err := loop.Run(context.Background(), Params{
		PopulationSize: 30,
		Generations:    40,
		Tolerance:      0.001,
	})
	require.NoError(t, err)

	// One record per generation plus the initial snapshot.
	require.Len(t, outcome.History, outcome.GenerationsRun+1)

	prev := outcome.History[0]
	for _, rec := range outcome.History[1:] {
		assert.Equal(t, prev.Generation+1, rec.Generation)
		// Elitism keeps the best from regressing.
		assert.GreaterOrEqual(t, rec.BestFitness, prev.BestFitness)
		assert.GreaterOrEqual(t, rec.ElapsedSeconds, prev.ElapsedSeconds)
		prev = rec
	}
}

func TestRunIsDeterministicPerSeed(t *testing.T) {
	params := Params{PopulationSize: 30, Generations: 30, Tolerance: 0.001}

	loopA, _ := newTestLoop(t, models.AlgorithmGenetic, 1234)
	a, err := loopA.Run(context.Background(), params)
	require.NoError(t, err)

	loopB, _ := newTestLoop(t, models.AlgorithmGenetic, 1234)
	b, err := loopB.Run(context.Background(), params)
	require.NoError(t, err)

	assert.Equal(t, a.BestEver.Parameters, b.BestEver.Parameters)
	assert.Equal(t, a.BestEver.Fitness, b.BestEver.Fitness)
	assert.Equal(t, a.GenerationsRun, b.GenerationsRun)
}

func TestRunConvergesBeforeBudgetOnFlatLandscape(t *testing.T) {
	loop, _ := newTestLoop(t, models.AlgorithmGenetic, 3)

	// A generous tolerance makes nearly every generation count as stagnant,
	// so the stagnation window fills long before the budget runs out.
	outcome, err := loop.Run(context.Background(), Params{
		PopulationSize: 30,
		Generations:    500,
		Tolerance:      0.1,
	})
	require.NoError(t, err)

	assert.True(t, outcome.Converged)
	assert.Equal(t, models.TerminationConverged, outcome.Termination)
	assert.Less(t, outcome.GenerationsRun, 500)
}

func TestRunStopsAtGenerationBudget(t *testing.T) {
	loop, _ := newTestLoop(t, models.AlgorithmParticleSwarm, 9)

	outcome, err := loop.Run(context.Background(), Params{
		PopulationSize: 20,
		Generations:    10,
		Tolerance:      0.001,
	})
	require.NoError(t, err)

	if !outcome.Converged {
		assert.Equal(t, models.TerminationMaxGenerations, outcome.Termination)
		assert.Equal(t, 10, outcome.GenerationsRun)
	}
}

func TestRunCancelledContextReturnsPartialOutcome(t *testing.T) {
	loop, _ := newTestLoop(t, models.AlgorithmGenetic, 17)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	outcome, err := loop.Run(ctx, Params{
		PopulationSize: 20,
		Generations:    50,
		Tolerance:      0.001,
	})

	// Cancellation before the first generation still yields the evaluated
	// initial population rather than an error.
	if err == nil {
		require.NotNil(t, outcome)
		assert.Equal(t, models.TerminationCancelled, outcome.Termination)
		assert.Equal(t, 0, outcome.GenerationsRun)
		assert.NotNil(t, outcome.BestEver)
	}
}

func TestRunSeedPointJoinsGenerationZero(t *testing.T) {
	loop, space := newTestLoop(t, models.AlgorithmGenetic, 23)

	seedPoint := models.ParameterVector{PowerW: 3000, SpeedMmMin: 2500, GasPressureBar: 5.5, FocusHeightMm: -1.65}
	require.True(t, space.Contains(seedPoint))

	outcome, err := loop.Run(context.Background(), Params{
		PopulationSize: 20,
		Generations:    20,
		Tolerance:      0.001,
		SeedPoint:      &seedPoint,
	})
	require.NoError(t, err)

	// The seed point is near the quality optimum, so the run must end at
	// least as good as it.
	assert.Greater(t, outcome.BestEver.Fitness, 0.5)
}

func TestRunAllAlgorithmsComplete(t *testing.T) {
	for _, algo := range []models.AlgorithmType{
		models.AlgorithmGenetic,
		models.AlgorithmParticleSwarm,
		models.AlgorithmSimulatedAnnealing,
		models.AlgorithmNSGA2,
	} {
		t.Run(string(algo), func(t *testing.T) {
			loop, space := newTestLoop(t, algo, 55)

			outcome, err := loop.Run(context.Background(), Params{
				PopulationSize: 24,
				Generations:    25,
				Tolerance:      0.001,
			})
			require.NoError(t, err)
			require.NotNil(t, outcome.BestEver)
			assert.True(t, space.Contains(outcome.BestEver.Parameters))
			assert.Equal(t, 24, outcome.Final.Size())
		})
	}
}
