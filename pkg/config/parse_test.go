package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lasercalc/optimization-core/pkg/models"
)

func TestParseCatalogYAMLString(t *testing.T) {
	yamlText := `
materials:
  - name: steel
    power_w: {min: 500, max: 6000}
    speed_mm_min: {min: 100, max: 8000}
    gas_pressure_bar: {min: 0.5, max: 20}
    focus_height_mm: {min: -5, max: 5}
    max_thickness_mm: 25
    optimal_power_density: 0.24
    pierce_threshold_w_per_mm: 200
    gas_base_bar: 1.5
    gas_per_mm_bar: 0.8
    focus_factor: 0.33
    machine_rate_per_hour: 55
    gas_cost_per_bar_hour: 0.9
    electricity_per_kwh: 0.25
`

	catalog, err := ParseCatalogYAMLString(yamlText)
	require.NoError(t, err)
	require.NotNil(t, catalog)

	profile, ok := catalog.Profile(models.MaterialSteel)
	require.True(t, ok)
	assert.Equal(t, 500.0, profile.Power.Min)
	assert.Equal(t, 6000.0, profile.Power.Max)
	assert.Equal(t, 0.24, profile.OptimalPowerDensity)
}

func TestParseCatalogRejectsInvertedBounds(t *testing.T) {
	yamlText := `
materials:
  - name: steel
    power_w: {min: 6000, max: 500}
    speed_mm_min: {min: 100, max: 8000}
    gas_pressure_bar: {min: 0.5, max: 20}
    focus_height_mm: {min: -5, max: 5}
    max_thickness_mm: 25
    optimal_power_density: 0.24
    machine_rate_per_hour: 55
`

	_, err := ParseCatalogYAMLString(yamlText)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "power_w")
}

func TestParseCatalogRejectsDuplicates(t *testing.T) {
	yamlText := `
materials:
  - name: steel
    power_w: {min: 500, max: 6000}
    speed_mm_min: {min: 100, max: 8000}
    gas_pressure_bar: {min: 0.5, max: 20}
    focus_height_mm: {min: -5, max: 5}
    max_thickness_mm: 25
    optimal_power_density: 0.24
    machine_rate_per_hour: 55
  - name: steel
    power_w: {min: 500, max: 6000}
    speed_mm_min: {min: 100, max: 8000}
    gas_pressure_bar: {min: 0.5, max: 20}
    focus_height_mm: {min: -5, max: 5}
    max_thickness_mm: 25
    optimal_power_density: 0.24
    machine_rate_per_hour: 55
`

	_, err := ParseCatalogYAMLString(yamlText)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate material")
}

func TestParseTuningFillsDefaults(t *testing.T) {
	tuning, err := ParseTuningYAML([]byte(`tournament_size: 5`))
	require.NoError(t, err)
	assert.Equal(t, 5, tuning.TournamentSize)
	assert.Equal(t, DefaultTuning().MutationRate, tuning.MutationRate)
	assert.Equal(t, DefaultTuning().StagnationWindow, tuning.StagnationWindow)
}

func TestParseTuningRejectsBadCooling(t *testing.T) {
	_, err := ParseTuningYAML([]byte(`cooling_rate: 1.5`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cooling_rate")
}

func TestDefaultCatalogIsValid(t *testing.T) {
	catalog := DefaultCatalog()
	require.NoError(t, validateCatalog(catalog))

	for _, material := range []models.MaterialType{
		models.MaterialSteel,
		models.MaterialStainlessSteel,
		models.MaterialAluminum,
		models.MaterialCopper,
		models.MaterialBrass,
		models.MaterialAcrylic,
	} {
		_, ok := catalog.Profile(material)
		assert.True(t, ok, "missing profile for %s", material)
	}
}

func TestDefaultTuningIsValid(t *testing.T) {
	require.NoError(t, validateTuning(DefaultTuning()))
}
