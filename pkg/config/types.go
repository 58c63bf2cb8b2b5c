package config

import "github.com/lasercalc/optimization-core/pkg/models"

// Bounds is a closed interval for one process parameter.
type Bounds struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// Range returns the width of the interval.
func (b Bounds) Range() float64 {
	return b.Max - b.Min
}

// Contains reports whether v lies inside the interval.
func (b Bounds) Contains(v float64) bool {
	return v >= b.Min && v <= b.Max
}

// MaterialProfile holds the parameter bounds and process coefficients for
// one material. The coefficients drive the objective model: cost and time
// follow the machine-rate terms, quality is a penalty model around the
// optimal power density, gas pressure and focus height.
type MaterialProfile struct {
	Name models.MaterialType `yaml:"name"`

	Power       Bounds `yaml:"power_w"`
	Speed       Bounds `yaml:"speed_mm_min"`
	GasPressure Bounds `yaml:"gas_pressure_bar"`
	FocusHeight Bounds `yaml:"focus_height_mm"`

	MaxThicknessMm float64 `yaml:"max_thickness_mm"`

	// Quality model. OptimalPowerDensity is power/(thickness*speed) in
	// W*min/mm^2 at which the cut is cleanest; PierceThresholdWPerMm is the
	// minimum power per mm of thickness below which the beam cannot fully
	// penetrate the material.
	OptimalPowerDensity   float64 `yaml:"optimal_power_density"`
	PierceThresholdWPerMm float64 `yaml:"pierce_threshold_w_per_mm"`
	GasBaseBar            float64 `yaml:"gas_base_bar"`
	GasPerMmBar           float64 `yaml:"gas_per_mm_bar"`
	FocusFactor           float64 `yaml:"focus_factor"` // optimal focus = -FocusFactor*thickness

	// Cost model.
	MachineRatePerHour float64 `yaml:"machine_rate_per_hour"`
	GasCostPerBarHour  float64 `yaml:"gas_cost_per_bar_hour"`
	ElectricityPerKWh  float64 `yaml:"electricity_per_kwh"`
}

// QualityTargets returns the optimal cut conditions for a thickness: the
// power density, gas pressure and focus height at which the quality penalty
// model peaks, plus the minimum pierce power for full penetration.
func (m *MaterialProfile) QualityTargets(thicknessMm float64) (optDensity, optGasBar, optFocusMm, pierceReqW float64) {
	optDensity = m.OptimalPowerDensity
	optGasBar = m.GasBaseBar + m.GasPerMmBar*thicknessMm
	optFocusMm = -m.FocusFactor * thicknessMm
	pierceReqW = m.PierceThresholdWPerMm * thicknessMm
	return optDensity, optGasBar, optFocusMm, pierceReqW
}

// Catalog is a set of material profiles keyed by material type.
type Catalog struct {
	Materials []MaterialProfile `yaml:"materials"`
}

// Profile returns the profile for a material, if present.
func (c *Catalog) Profile(material models.MaterialType) (*MaterialProfile, bool) {
	for i := range c.Materials {
		if c.Materials[i].Name == material {
			return &c.Materials[i], true
		}
	}
	return nil, false
}

// Tuning holds the algorithm-level knobs shared by the search strategies.
// Zero values are replaced by defaults at validation time.
type Tuning struct {
	// Shared genetic operators.
	MutationRate      float64 `yaml:"mutation_rate"`      // per-parameter probability
	MutationSpan      float64 `yaml:"mutation_span"`      // perturbation as fraction of bound range
	TournamentSize    int     `yaml:"tournament_size"`    // selection tournament k
	EliteFraction     float64 `yaml:"elite_fraction"`     // share of population carried unchanged
	StagnationWindow  int     `yaml:"stagnation_window"`  // generations without improvement before converged
	ConstraintPenalty float64 `yaml:"constraint_penalty"` // fitness damping per violated soft constraint

	// Particle swarm.
	Inertia          float64 `yaml:"inertia"`
	CognitivePull    float64 `yaml:"cognitive_pull"`
	SocialPull       float64 `yaml:"social_pull"`
	MaxVelocitySpan  float64 `yaml:"max_velocity_span"` // velocity cap as fraction of bound range

	// Simulated annealing.
	InitialTemperature float64 `yaml:"initial_temperature"`
	CoolingRate        float64 `yaml:"cooling_rate"` // geometric decay per generation

	// Evaluation.
	MaxParallelEvaluations int `yaml:"max_parallel_evaluations"`
}
