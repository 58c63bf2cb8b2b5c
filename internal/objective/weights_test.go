package objective

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lasercalc/optimization-core/pkg/models"
)

func TestWeightsForGoalAllGoalsNormalized(t *testing.T) {
	goals := []models.OptimizationGoal{
		models.GoalCost, models.GoalTime, models.GoalQuality, models.GoalEnergy, models.GoalBalanced,
	}
	for _, goal := range goals {
		w, err := WeightsForGoal(goal)
		require.NoError(t, err, "goal %s", goal)
		assert.NoError(t, w.Validate(), "goal %s", goal)
	}
}

func TestWeightsForGoalEmphasizesItsObjective(t *testing.T) {
	w, err := WeightsForGoal(models.GoalQuality)
	require.NoError(t, err)
	assert.Greater(t, w.Quality, w.Cost)
	assert.Greater(t, w.Quality, w.Time)
	assert.Greater(t, w.Quality, w.Energy)
}

func TestWeightsForGoalUnknown(t *testing.T) {
	_, err := WeightsForGoal("cheapest")
	require.Error(t, err)

	var unknown *UnknownGoalError
	require.ErrorAs(t, err, &unknown)
	assert.Equal(t, "cheapest", unknown.Goal)
}

func TestFitnessBoundedAndMonotone(t *testing.T) {
	w, err := WeightsForGoal(models.GoalBalanced)
	require.NoError(t, err)

	good := models.ObjectiveVector{Cost: 0.5, Time: 15, Quality: 95, Energy: 0.02}
	bad := models.ObjectiveVector{Cost: 5, Time: 120, Quality: 40, Energy: 0.4}

	fGood := w.Fitness(good)
	fBad := w.Fitness(bad)

	assert.Greater(t, fGood, 0.0)
	assert.LessOrEqual(t, fGood, 1.0)
	assert.Greater(t, fGood, fBad)
}

func TestEvaluatorConstraintDampsFitness(t *testing.T) {
	space := NewSpace(steelProfile(t), 6000)
	model := NewModel(space, 5)
	w, err := WeightsForGoal(models.GoalBalanced)
	require.NoError(t, err)

	p := models.ParameterVector{PowerW: 3000, SpeedMmMin: 500, GasPressureBar: 5, FocusHeightMm: -1.5}

	free := NewEvaluator(model, w, nil, 0.5)
	_, unconstrained, err := free.Evaluate(p)
	require.NoError(t, err)

	// 1000 mm at 500 mm/min takes 120 s, far over a 30 s cap.
	maxTime := 30.0
	bound := NewEvaluator(model, w, &models.Constraints{MaxTime: &maxTime}, 0.5)
	obj, damped, err := bound.Evaluate(p)
	require.NoError(t, err)

	assert.Less(t, damped, unconstrained)
	assert.NotEmpty(t, bound.ConstraintWarnings(obj))
	assert.Empty(t, free.ConstraintWarnings(obj))
}

func TestEvaluatorSatisfiedConstraintLeavesFitnessAlone(t *testing.T) {
	space := NewSpace(steelProfile(t), 6000)
	model := NewModel(space, 5)
	w, err := WeightsForGoal(models.GoalBalanced)
	require.NoError(t, err)

	p := models.ParameterVector{PowerW: 3000, SpeedMmMin: 4000, GasPressureBar: 5, FocusHeightMm: -1.5}

	maxTime := 60.0
	bound := NewEvaluator(model, w, &models.Constraints{MaxTime: &maxTime}, 0.5)
	obj, fitness, err := bound.Evaluate(p)
	require.NoError(t, err)

	free := NewEvaluator(model, w, nil, 0.5)
	_, want, err := free.Evaluate(p)
	require.NoError(t, err)

	assert.Equal(t, want, fitness)
	assert.Empty(t, bound.ConstraintWarnings(obj))
}
