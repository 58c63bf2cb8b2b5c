package models

// MaterialType identifies a supported cutting material.
type MaterialType string

const (
	MaterialSteel          MaterialType = "steel"
	MaterialStainlessSteel MaterialType = "stainless_steel"
	MaterialAluminum       MaterialType = "aluminum"
	MaterialCopper         MaterialType = "copper"
	MaterialBrass          MaterialType = "brass"
	MaterialAcrylic        MaterialType = "acrylic"
)

// OptimizationGoal selects the objective weighting for a run.
type OptimizationGoal string

const (
	GoalCost     OptimizationGoal = "cost"
	GoalTime     OptimizationGoal = "time"
	GoalQuality  OptimizationGoal = "quality"
	GoalEnergy   OptimizationGoal = "energy"
	GoalBalanced OptimizationGoal = "balanced"
)

// AlgorithmType selects the search strategy for a run.
type AlgorithmType string

const (
	AlgorithmGenetic            AlgorithmType = "genetic"
	AlgorithmParticleSwarm      AlgorithmType = "particle_swarm"
	AlgorithmSimulatedAnnealing AlgorithmType = "simulated_annealing"
	AlgorithmNSGA2              AlgorithmType = "nsga2"
)

// TerminationReason reports why the evolution loop stopped.
type TerminationReason string

const (
	TerminationConverged      TerminationReason = "converged"
	TerminationMaxGenerations TerminationReason = "max_generations"
	TerminationCancelled      TerminationReason = "cancelled"
)

// NumParameters is the dimensionality of the process parameter space.
const NumParameters = 4

// Canonical parameter names, in vector order.
const (
	ParamPower       = "power"
	ParamSpeed       = "speed"
	ParamGasPressure = "gasPressure"
	ParamFocusHeight = "focusHeight"
)

// Positions of the parameters in canonical vector order.
const (
	ParamIndexPower = iota
	ParamIndexSpeed
	ParamIndexGasPressure
	ParamIndexFocusHeight
)

// ParameterNames returns the vector field names in canonical order.
func ParameterNames() [NumParameters]string {
	return [NumParameters]string{ParamPower, ParamSpeed, ParamGasPressure, ParamFocusHeight}
}

// ParameterVector is one candidate set of process parameters. The shape is
// fixed: every field is bounds-checked and clamped per material profile.
type ParameterVector struct {
	PowerW         float64 `json:"power"`       // laser power, W
	SpeedMmMin     float64 `json:"speed"`       // cutting speed, mm/min
	GasPressureBar float64 `json:"gasPressure"` // assist gas pressure, bar
	FocusHeightMm  float64 `json:"focusHeight"` // focus position relative to surface, mm
}

// Values returns the vector fields in canonical order.
func (p ParameterVector) Values() [NumParameters]float64 {
	return [NumParameters]float64{p.PowerW, p.SpeedMmMin, p.GasPressureBar, p.FocusHeightMm}
}

// VectorFromValues rebuilds a ParameterVector from values in canonical order.
func VectorFromValues(v [NumParameters]float64) ParameterVector {
	return ParameterVector{
		PowerW:         v[0],
		SpeedMmMin:     v[1],
		GasPressureBar: v[2],
		FocusHeightMm:  v[3],
	}
}

// ObjectiveVector holds the four competing objectives for one candidate.
// Cost, time and energy are minimized; quality is maximized.
type ObjectiveVector struct {
	Cost    float64 `json:"cost"`    // currency units per reference cut
	Time    float64 `json:"time"`    // seconds per reference cut
	Quality float64 `json:"quality"` // 0-100
	Energy  float64 `json:"energy"`  // kWh per reference cut
}

// Constraints are soft limits on the objectives. A violated constraint
// produces a warning on the result, never a failed run.
type Constraints struct {
	MaxTime    *float64 `json:"maxTime,omitempty"`
	MaxCost    *float64 `json:"maxCost,omitempty"`
	MinQuality *float64 `json:"minQuality,omitempty"`
	MaxEnergy  *float64 `json:"maxEnergy,omitempty"`
}

// OptimizeRequest is the input record supplied by the calculator layer.
type OptimizeRequest struct {
	MaterialType         MaterialType     `json:"materialType" validate:"required"`
	ThicknessMm          float64          `json:"thickness" validate:"gt=0,lte=100"`
	LaserPowerW          float64          `json:"laserPower" validate:"gt=0"`
	OptimizationGoal     OptimizationGoal `json:"optimizationGoal" validate:"required,oneof=cost time quality energy balanced"`
	Constraints          *Constraints     `json:"constraints,omitempty"`
	AlgorithmType        AlgorithmType    `json:"algorithmType" validate:"required,oneof=genetic particle_swarm simulated_annealing nsga2"`
	PopulationSize       int              `json:"populationSize" validate:"gte=10,lte=200"`
	Generations          int              `json:"generations" validate:"gte=10,lte=500"`
	ConvergenceTolerance float64          `json:"convergenceTolerance" validate:"gte=0.001,lte=0.1"`
	CurrentParameters    *ParameterVector `json:"currentParameters,omitempty"`

	// Seed makes a run reproducible. Zero picks a seed from the clock;
	// the seed actually used is echoed back in the summary.
	Seed int64 `json:"seed,omitempty"`
}

// OptimizationSummary describes how a run went.
type OptimizationSummary struct {
	RunID               string            `json:"runId"`
	Algorithm           AlgorithmType     `json:"algorithm"`
	Goal                OptimizationGoal  `json:"goal"`
	Seed                int64             `json:"seed"`
	GenerationsRun      int               `json:"generationsRun"`
	ConvergenceAchieved bool              `json:"convergenceAchieved"`
	Termination         TerminationReason `json:"termination"`
	ExecutionTimeSec    float64           `json:"executionTime"`
	FinalFitness        float64           `json:"finalFitness"`
	ImprovementPercent  float64           `json:"improvementPercent"`
}

// OptimalParameters is the best solution of the run with its evaluation.
type OptimalParameters struct {
	ParameterVector
	FitnessScore float64         `json:"fitnessScore"`
	Objectives   ObjectiveVector `json:"objectives"`
}

// ParetoEntry is one ranked solution of the final population.
// Rank 0 is the non-dominated front; within a rank a larger crowding
// distance means a more diverse, preferable solution.
type ParetoEntry struct {
	Parameters       ParameterVector `json:"parameters"`
	Objectives       ObjectiveVector `json:"objectives"`
	DominanceRank    int             `json:"dominanceRank"`
	CrowdingDistance float64         `json:"crowdingDistance"`
}

// ConvergenceRecord is one generation's snapshot of search progress.
type ConvergenceRecord struct {
	Generation     int     `json:"generation"`
	BestFitness    float64 `json:"bestFitness"`
	AverageFitness float64 `json:"averageFitness"`
	Diversity      float64 `json:"diversity"`
	ElapsedSeconds float64 `json:"elapsedSeconds"`
}

// AlternativeSolution is a human-facing alternative derived from the
// final population; it is not part of the evolving population.
type AlternativeSolution struct {
	Name                string          `json:"name"`
	Parameters          ParameterVector `json:"parameters"`
	PredictedObjectives ObjectiveVector `json:"predictedObjectives"`
	Tradeoffs           []string        `json:"tradeoffs"`
	SuitabilityScore    float64         `json:"suitabilityScore"`
}

// SensitivityLevel classifies how strongly a parameter moves fitness.
type SensitivityLevel string

const (
	SensitivityLow      SensitivityLevel = "low"
	SensitivityMedium   SensitivityLevel = "medium"
	SensitivityHigh     SensitivityLevel = "high"
	SensitivityCritical SensitivityLevel = "critical"
)

// ParameterSensitivity reports |Δfitness| per unit fractional parameter change.
type ParameterSensitivity struct {
	Parameter   string           `json:"parameter"`
	Sensitivity float64          `json:"sensitivity"`
	Level       SensitivityLevel `json:"level"`
}

// OptimizationInsights aggregates sensitivity findings and advice.
type OptimizationInsights struct {
	CriticalParameters   []string               `json:"criticalParameters"`
	ParameterSensitivity []ParameterSensitivity `json:"parameterSensitivity"`
	Recommendations      []string               `json:"recommendations"`
}

// OptimizeResult is the output bundle returned to the calculator layer.
type OptimizeResult struct {
	Summary              OptimizationSummary   `json:"optimizationSummary"`
	OptimalParameters    OptimalParameters     `json:"optimalParameters"`
	ParetoFront          []ParetoEntry         `json:"paretoFront"`
	ConvergenceHistory   []ConvergenceRecord   `json:"convergenceHistory"`
	AlternativeSolutions []AlternativeSolution `json:"alternativeSolutions"`
	Insights             OptimizationInsights  `json:"optimizationInsights"`
	Warnings             []string              `json:"warnings"`
}
