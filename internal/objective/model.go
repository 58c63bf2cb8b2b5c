package objective

import (
	"fmt"

	"github.com/lasercalc/optimization-core/pkg/config"
	"github.com/lasercalc/optimization-core/pkg/models"
	"github.com/lasercalc/optimization-core/pkg/utils"
)

// ReferenceCutLengthMm is the cut length all objective values are quoted
// against. Cost, time and energy scale linearly with it, so the relative
// ordering of candidates is independent of the actual job length.
const ReferenceCutLengthMm = 1000.0

// Quality penalty coefficients. The quality score starts at 100 and loses
// points for deviation from the material's optimal power density, gas
// pressure and focus height, and for insufficient pierce power.
const (
	powerDensityPenalty = 45.0
	gasPenalty          = 1.2
	focusPenalty        = 6.0
	piercePenalty       = 90.0
)

// Model maps a parameter vector to the four objectives for one material and
// thickness. Evaluate is pure: no state, no side effects, safe to call
// concurrently.
type Model struct {
	space       *Space
	thicknessMm float64
}

// NewModel creates an objective model over a parameter space.
func NewModel(space *Space, thicknessMm float64) *Model {
	return &Model{space: space, thicknessMm: thicknessMm}
}

// Evaluate computes the objective vector for an in-bounds parameter vector.
// Out-of-bound input is the caller's bug (operators clamp before calling)
// and yields an InvalidParameterError.
func (m *Model) Evaluate(p models.ParameterVector) (models.ObjectiveVector, error) {
	if err := m.checkBounds(p); err != nil {
		return models.ObjectiveVector{}, err
	}
	if p.SpeedMmMin <= 0 {
		return models.ObjectiveVector{}, &EvaluationError{Reason: "cutting speed must be positive"}
	}
	if m.thicknessMm <= 0 {
		return models.ObjectiveVector{}, &EvaluationError{Reason: "thickness must be positive"}
	}

	profile := m.space.Profile()

	timeSec := 60 * ReferenceCutLengthMm / p.SpeedMmMin
	timeHours := timeSec / 3600

	energyKWh := (p.PowerW / 1000) * timeHours

	cost := profile.MachineRatePerHour*timeHours +
		profile.GasCostPerBarHour*p.GasPressureBar*timeHours +
		profile.ElectricityPerKWh*energyKWh

	return models.ObjectiveVector{
		Cost:    cost,
		Time:    timeSec,
		Quality: m.quality(p, profile),
		Energy:  energyKWh,
	}, nil
}

// quality is a penalty model around the material's optimal cut conditions.
func (m *Model) quality(p models.ParameterVector, profile *config.MaterialProfile) float64 {
	optDensity, optGas, optFocus, pierceReq := profile.QualityTargets(m.thicknessMm)

	score := 100.0

	density := p.PowerW / (m.thicknessMm * p.SpeedMmMin)
	if optDensity > 0 {
		rel := (density - optDensity) / optDensity
		score -= powerDensityPenalty * rel * rel
	}

	gasDelta := p.GasPressureBar - optGas
	score -= gasPenalty * gasDelta * gasDelta

	focusDelta := p.FocusHeightMm - optFocus
	score -= focusPenalty * focusDelta * focusDelta

	if pierceReq > 0 && p.PowerW < pierceReq {
		deficit := (pierceReq - p.PowerW) / pierceReq
		score -= piercePenalty * deficit
	}

	return utils.ClampFloat64(score, 0, 100)
}

// checkBounds verifies every field against the space.
func (m *Model) checkBounds(p models.ParameterVector) error {
	names := models.ParameterNames()
	values := p.Values()
	for i, b := range m.space.Bounds() {
		if !b.Contains(values[i]) {
			return &InvalidParameterError{
				Field: names[i],
				Value: values[i],
				Min:   b.Min,
				Max:   b.Max,
			}
		}
	}
	return nil
}

// InvalidParameterError indicates a parameter vector outside the material
// bounds was handed directly to the objective model.
type InvalidParameterError struct {
	Field string
	Value float64
	Min   float64
	Max   float64
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("parameter %s=%.3f outside bounds [%.3f, %.3f]", e.Field, e.Value, e.Min, e.Max)
}

// EvaluationError indicates a structurally valid but numerically degenerate
// input. Any evaluation error aborts the whole optimization run.
type EvaluationError struct {
	Reason string
}

func (e *EvaluationError) Error() string {
	return "objective evaluation failed: " + e.Reason
}
