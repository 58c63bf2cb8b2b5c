package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParseCatalogYAML parses a material catalog from YAML bytes and validates it.
// This is used by callers that keep process tables as payload rather than files.
func ParseCatalogYAML(data []byte) (*Catalog, error) {
	var catalog Catalog
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, fmt.Errorf("failed to parse catalog yaml: %w", err)
	}

	if err := validateCatalog(&catalog); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}

	return &catalog, nil
}

// ParseCatalogYAMLString parses a material catalog from a YAML string.
func ParseCatalogYAMLString(yamlText string) (*Catalog, error) {
	return ParseCatalogYAML([]byte(yamlText))
}

// ParseTuningYAML parses algorithm tuning from YAML bytes, fills defaults
// and validates the result.
func ParseTuningYAML(data []byte) (*Tuning, error) {
	var tuning Tuning
	if err := yaml.Unmarshal(data, &tuning); err != nil {
		return nil, fmt.Errorf("failed to parse tuning yaml: %w", err)
	}

	tuning.ApplyDefaults()
	if err := validateTuning(&tuning); err != nil {
		return nil, fmt.Errorf("invalid tuning: %w", err)
	}

	return &tuning, nil
}

// validateCatalog performs validation on a material catalog.
func validateCatalog(c *Catalog) error {
	if len(c.Materials) == 0 {
		return fmt.Errorf("at least one material must be defined")
	}

	names := make(map[string]bool)
	for _, m := range c.Materials {
		if m.Name == "" {
			return fmt.Errorf("material name cannot be empty")
		}
		if names[string(m.Name)] {
			return fmt.Errorf("duplicate material: %s", m.Name)
		}
		names[string(m.Name)] = true

		for _, b := range []struct {
			field  string
			bounds Bounds
		}{
			{"power_w", m.Power},
			{"speed_mm_min", m.Speed},
			{"gas_pressure_bar", m.GasPressure},
			{"focus_height_mm", m.FocusHeight},
		} {
			if b.bounds.Min > b.bounds.Max {
				return fmt.Errorf("material %s: %s min %.3f exceeds max %.3f", m.Name, b.field, b.bounds.Min, b.bounds.Max)
			}
		}
		if m.Power.Min <= 0 {
			return fmt.Errorf("material %s: power_w min must be positive", m.Name)
		}
		if m.Speed.Min <= 0 {
			return fmt.Errorf("material %s: speed_mm_min min must be positive", m.Name)
		}
		if m.MaxThicknessMm <= 0 {
			return fmt.Errorf("material %s: max_thickness_mm must be positive", m.Name)
		}
		if m.OptimalPowerDensity <= 0 {
			return fmt.Errorf("material %s: optimal_power_density must be positive", m.Name)
		}
		if m.PierceThresholdWPerMm < 0 {
			return fmt.Errorf("material %s: pierce_threshold_w_per_mm cannot be negative", m.Name)
		}
		if m.MachineRatePerHour <= 0 {
			return fmt.Errorf("material %s: machine_rate_per_hour must be positive", m.Name)
		}
	}

	return nil
}

// validateTuning performs validation on algorithm tuning.
func validateTuning(t *Tuning) error {
	if t.MutationRate <= 0 || t.MutationRate > 1 {
		return fmt.Errorf("mutation_rate must be in (0, 1], got %f", t.MutationRate)
	}
	if t.MutationSpan <= 0 || t.MutationSpan > 1 {
		return fmt.Errorf("mutation_span must be in (0, 1], got %f", t.MutationSpan)
	}
	if t.TournamentSize < 2 {
		return fmt.Errorf("tournament_size must be at least 2, got %d", t.TournamentSize)
	}
	if t.EliteFraction < 0 || t.EliteFraction >= 1 {
		return fmt.Errorf("elite_fraction must be in [0, 1), got %f", t.EliteFraction)
	}
	if t.StagnationWindow <= 0 {
		return fmt.Errorf("stagnation_window must be positive, got %d", t.StagnationWindow)
	}
	if t.CoolingRate <= 0 || t.CoolingRate >= 1 {
		return fmt.Errorf("cooling_rate must be in (0, 1), got %f", t.CoolingRate)
	}
	if t.InitialTemperature <= 0 {
		return fmt.Errorf("initial_temperature must be positive, got %f", t.InitialTemperature)
	}
	if t.MaxParallelEvaluations <= 0 {
		return fmt.Errorf("max_parallel_evaluations must be positive, got %d", t.MaxParallelEvaluations)
	}
	return nil
}
