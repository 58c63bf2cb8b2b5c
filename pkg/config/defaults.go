package config

import "github.com/lasercalc/optimization-core/pkg/models"

// DefaultCatalog returns the built-in material profiles. Callers with their
// own process tables can load a catalog from YAML instead.
func DefaultCatalog() *Catalog {
	return &Catalog{
		Materials: []MaterialProfile{
			{
				Name:                  models.MaterialSteel,
				Power:                 Bounds{Min: 500, Max: 6000},
				Speed:                 Bounds{Min: 100, Max: 8000},
				GasPressure:           Bounds{Min: 0.5, Max: 20},
				FocusHeight:           Bounds{Min: -5, Max: 5},
				MaxThicknessMm:        25,
				OptimalPowerDensity:   0.24,
				PierceThresholdWPerMm: 200,
				GasBaseBar:            1.5,
				GasPerMmBar:           0.8,
				FocusFactor:           0.33,
				MachineRatePerHour:    55,
				GasCostPerBarHour:     0.9,
				ElectricityPerKWh:     0.25,
			},
			{
				Name:                  models.MaterialStainlessSteel,
				Power:                 Bounds{Min: 500, Max: 6000},
				Speed:                 Bounds{Min: 100, Max: 6000},
				GasPressure:           Bounds{Min: 4, Max: 25},
				FocusHeight:           Bounds{Min: -6, Max: 4},
				MaxThicknessMm:        20,
				OptimalPowerDensity:   0.30,
				PierceThresholdWPerMm: 250,
				GasBaseBar:            8,
				GasPerMmBar:           0.9,
				FocusFactor:           0.5,
				MachineRatePerHour:    60,
				GasCostPerBarHour:     1.4,
				ElectricityPerKWh:     0.25,
			},
			{
				Name:                  models.MaterialAluminum,
				Power:                 Bounds{Min: 800, Max: 6000},
				Speed:                 Bounds{Min: 200, Max: 10000},
				GasPressure:           Bounds{Min: 4, Max: 25},
				FocusHeight:           Bounds{Min: -5, Max: 5},
				MaxThicknessMm:        15,
				OptimalPowerDensity:   0.35,
				PierceThresholdWPerMm: 320,
				GasBaseBar:            7,
				GasPerMmBar:           1.0,
				FocusFactor:           0.4,
				MachineRatePerHour:    58,
				GasCostPerBarHour:     1.2,
				ElectricityPerKWh:     0.25,
			},
			{
				Name:                  models.MaterialCopper,
				Power:                 Bounds{Min: 1000, Max: 6000},
				Speed:                 Bounds{Min: 100, Max: 5000},
				GasPressure:           Bounds{Min: 5, Max: 25},
				FocusHeight:           Bounds{Min: -4, Max: 4},
				MaxThicknessMm:        10,
				OptimalPowerDensity:   0.45,
				PierceThresholdWPerMm: 450,
				GasBaseBar:            9,
				GasPerMmBar:           1.1,
				FocusFactor:           0.3,
				MachineRatePerHour:    65,
				GasCostPerBarHour:     1.5,
				ElectricityPerKWh:     0.25,
			},
			{
				Name:                  models.MaterialBrass,
				Power:                 Bounds{Min: 800, Max: 6000},
				Speed:                 Bounds{Min: 100, Max: 6000},
				GasPressure:           Bounds{Min: 5, Max: 25},
				FocusHeight:           Bounds{Min: -4, Max: 4},
				MaxThicknessMm:        12,
				OptimalPowerDensity:   0.40,
				PierceThresholdWPerMm: 380,
				GasBaseBar:            8,
				GasPerMmBar:           1.0,
				FocusFactor:           0.3,
				MachineRatePerHour:    62,
				GasCostPerBarHour:     1.4,
				ElectricityPerKWh:     0.25,
			},
			{
				Name:                  models.MaterialAcrylic,
				Power:                 Bounds{Min: 100, Max: 2000},
				Speed:                 Bounds{Min: 100, Max: 12000},
				GasPressure:           Bounds{Min: 0.2, Max: 3},
				FocusHeight:           Bounds{Min: -8, Max: 2},
				MaxThicknessMm:        30,
				OptimalPowerDensity:   0.08,
				PierceThresholdWPerMm: 40,
				GasBaseBar:            0.5,
				GasPerMmBar:           0.05,
				FocusFactor:           0.45,
				MachineRatePerHour:    40,
				GasCostPerBarHour:     0.3,
				ElectricityPerKWh:     0.25,
			},
		},
	}
}

// DefaultTuning returns the default algorithm knobs.
func DefaultTuning() *Tuning {
	return &Tuning{
		MutationRate:           0.1,
		MutationSpan:           0.1,
		TournamentSize:         3,
		EliteFraction:          0.1,
		StagnationWindow:       20,
		ConstraintPenalty:      0.5,
		Inertia:                0.72,
		CognitivePull:          1.49,
		SocialPull:             1.49,
		MaxVelocitySpan:        0.2,
		InitialTemperature:     0.1,
		CoolingRate:            0.95,
		MaxParallelEvaluations: 8,
	}
}

// ApplyDefaults fills zero-valued tuning fields from DefaultTuning.
func (t *Tuning) ApplyDefaults() {
	def := DefaultTuning()
	if t.MutationRate == 0 {
		t.MutationRate = def.MutationRate
	}
	if t.MutationSpan == 0 {
		t.MutationSpan = def.MutationSpan
	}
	if t.TournamentSize == 0 {
		t.TournamentSize = def.TournamentSize
	}
	if t.EliteFraction == 0 {
		t.EliteFraction = def.EliteFraction
	}
	if t.StagnationWindow == 0 {
		t.StagnationWindow = def.StagnationWindow
	}
	if t.ConstraintPenalty == 0 {
		t.ConstraintPenalty = def.ConstraintPenalty
	}
	if t.Inertia == 0 {
		t.Inertia = def.Inertia
	}
	if t.CognitivePull == 0 {
		t.CognitivePull = def.CognitivePull
	}
	if t.SocialPull == 0 {
		t.SocialPull = def.SocialPull
	}
	if t.MaxVelocitySpan == 0 {
		t.MaxVelocitySpan = def.MaxVelocitySpan
	}
	if t.InitialTemperature == 0 {
		t.InitialTemperature = def.InitialTemperature
	}
	if t.CoolingRate == 0 {
		t.CoolingRate = def.CoolingRate
	}
	if t.MaxParallelEvaluations == 0 {
		t.MaxParallelEvaluations = def.MaxParallelEvaluations
	}
}
