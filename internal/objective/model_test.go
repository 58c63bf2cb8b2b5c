package objective

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lasercalc/optimization-core/pkg/models"
)

func TestModelEvaluateObjectiveFormulas(t *testing.T) {
	profile := steelProfile(t)
	space := NewSpace(profile, 6000)
	model := NewModel(space, 5)

	p := models.ParameterVector{
		PowerW:         3000,
		SpeedMmMin:     2000,
		GasPressureBar: 5,
		FocusHeightMm:  -1.5,
	}

	obj, err := model.Evaluate(p)
	require.NoError(t, err)

	// 1000 mm at 2000 mm/min is 30 seconds.
	assert.InDelta(t, 30.0, obj.Time, 1e-9)

	// 3 kW for 30 s is 0.025 kWh.
	assert.InDelta(t, 0.025, obj.Energy, 1e-9)

	timeHours := 30.0 / 3600
	wantCost := profile.MachineRatePerHour*timeHours +
		profile.GasCostPerBarHour*5*timeHours +
		profile.ElectricityPerKWh*0.025
	assert.InDelta(t, wantCost, obj.Cost, 1e-9)

	assert.GreaterOrEqual(t, obj.Quality, 0.0)
	assert.LessOrEqual(t, obj.Quality, 100.0)
}

func TestModelQualityPeaksAtOptimalConditions(t *testing.T) {
	profile := steelProfile(t)
	space := NewSpace(profile, 6000)
	thickness := 5.0
	model := NewModel(space, thickness)

	_, optGas, optFocus, _ := profile.QualityTargets(thickness)

	// Pick speed so that power density lands exactly on the optimum.
	power := 3000.0
	speed := power / (thickness * profile.OptimalPowerDensity)
	ideal := models.ParameterVector{
		PowerW:         power,
		SpeedMmMin:     speed,
		GasPressureBar: optGas,
		FocusHeightMm:  optFocus,
	}
	require.True(t, space.Contains(ideal))

	obj, err := model.Evaluate(ideal)
	require.NoError(t, err)
	assert.InDelta(t, 100.0, obj.Quality, 1e-6)

	// Any deviation from the optimum loses points.
	offGas := ideal
	offGas.GasPressureBar = optGas + 3
	objOff, err := model.Evaluate(offGas)
	require.NoError(t, err)
	assert.Less(t, objOff.Quality, obj.Quality)
}

func TestModelPierceDeficitCrushesQuality(t *testing.T) {
	profile := steelProfile(t)
	// 300 W machine cutting 5 mm steel: pierce needs 1000 W.
	space := NewSpace(profile, 300)
	model := NewModel(space, 5)

	obj, err := model.Evaluate(space.Clamp(models.ParameterVector{
		PowerW:         300,
		SpeedMmMin:     250,
		GasPressureBar: 5.5,
		FocusHeightMm:  -1.65,
	}))
	require.NoError(t, err)

	// Deficit of 0.7 costs 63 quality points on top of any other penalty.
	assert.Less(t, obj.Quality, 40.0)
}

func TestModelEvaluateRejectsOutOfBounds(t *testing.T) {
	space := NewSpace(steelProfile(t), 6000)
	model := NewModel(space, 5)

	_, err := model.Evaluate(models.ParameterVector{
		PowerW:         7000,
		SpeedMmMin:     2000,
		GasPressureBar: 5,
		FocusHeightMm:  0,
	})
	require.Error(t, err)

	var invalid *InvalidParameterError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, models.ParamPower, invalid.Field)
}

func TestModelFasterCutIsCheaperAndLowerEnergy(t *testing.T) {
	space := NewSpace(steelProfile(t), 6000)
	model := NewModel(space, 5)

	slow, err := model.Evaluate(models.ParameterVector{PowerW: 3000, SpeedMmMin: 1000, GasPressureBar: 5, FocusHeightMm: -1.5})
	require.NoError(t, err)
	fast, err := model.Evaluate(models.ParameterVector{PowerW: 3000, SpeedMmMin: 4000, GasPressureBar: 5, FocusHeightMm: -1.5})
	require.NoError(t, err)

	assert.Less(t, fast.Time, slow.Time)
	assert.Less(t, fast.Cost, slow.Cost)
	assert.Less(t, fast.Energy, slow.Energy)
}
