package objective

import (
	"github.com/lasercalc/optimization-core/pkg/config"
	"github.com/lasercalc/optimization-core/pkg/models"
	"github.com/lasercalc/optimization-core/pkg/utils"
)

// Space is the resolved parameter space for one run: the material profile's
// bounds with the power axis capped at the machine's laser power.
type Space struct {
	profile *config.MaterialProfile
	bounds  [models.NumParameters]config.Bounds
}

// NewSpace builds the parameter space for a material and machine power.
// When the machine cannot reach the material's usual minimum power the
// power interval collapses toward the machine limit rather than inverting.
func NewSpace(profile *config.MaterialProfile, laserPowerW float64) *Space {
	power := profile.Power
	if laserPowerW < power.Max {
		power.Max = laserPowerW
	}
	if power.Min > power.Max {
		power.Min = power.Max
	}

	return &Space{
		profile: profile,
		bounds: [models.NumParameters]config.Bounds{
			power,
			profile.Speed,
			profile.GasPressure,
			profile.FocusHeight,
		},
	}
}

// Profile returns the material profile behind this space.
func (s *Space) Profile() *config.MaterialProfile {
	return s.profile
}

// Bounds returns the per-parameter closed intervals in canonical order.
func (s *Space) Bounds() [models.NumParameters]config.Bounds {
	return s.bounds
}

// Clamp forces every field of a parameter vector into its bound.
func (s *Space) Clamp(p models.ParameterVector) models.ParameterVector {
	v := p.Values()
	for i, b := range s.bounds {
		v[i] = utils.ClampFloat64(v[i], b.Min, b.Max)
	}
	return models.VectorFromValues(v)
}

// Contains reports whether every field lies within its bound.
func (s *Space) Contains(p models.ParameterVector) bool {
	v := p.Values()
	for i, b := range s.bounds {
		if !b.Contains(v[i]) {
			return false
		}
	}
	return true
}

// Normalize maps a parameter vector onto the unit hypercube, scaling each
// coordinate to [0,1] by its bound.
func (s *Space) Normalize(p models.ParameterVector) [models.NumParameters]float64 {
	v := p.Values()
	var out [models.NumParameters]float64
	for i, b := range s.bounds {
		out[i] = utils.Normalize01(v[i], b.Min, b.Max)
	}
	return out
}
