package engine

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/lasercalc/optimization-core/pkg/models"
)

// ValidationError reports a request field that failed validation.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid request: %s %s", e.Field, e.Reason)
}

// UnknownMaterialError indicates a material absent from the catalog.
type UnknownMaterialError struct {
	Material string
}

func (e *UnknownMaterialError) Error() string {
	return "unknown material type: " + e.Material
}

// validateRequest checks the struct tags and the cross-field rules the tags
// cannot express.
func (e *Engine) validateRequest(req *models.OptimizeRequest) error {
	if req == nil {
		return &ValidationError{Field: "request", Reason: "must not be nil"}
	}

	if err := e.validate.Struct(req); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			first := fieldErrs[0]
			return &ValidationError{
				Field:  first.Field(),
				Reason: fmt.Sprintf("failed %q validation with value %v", first.Tag(), first.Value()),
			}
		}
		return fmt.Errorf("validating request: %w", err)
	}

	if c := req.Constraints; c != nil {
		for field, v := range map[string]*float64{
			"maxTime":    c.MaxTime,
			"maxCost":    c.MaxCost,
			"minQuality": c.MinQuality,
			"maxEnergy":  c.MaxEnergy,
		} {
			if v != nil && *v <= 0 {
				return &ValidationError{Field: field, Reason: "must be positive when set"}
			}
		}
		if c.MinQuality != nil && *c.MinQuality > 100 {
			return &ValidationError{Field: "minQuality", Reason: "must not exceed 100"}
		}
	}
	return nil
}
