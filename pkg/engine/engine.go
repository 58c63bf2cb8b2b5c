// Package engine is the public entry point: it validates an optimization
// request, assembles the search machinery for the requested material and
// algorithm, runs the evolution loop and packages the result.
package engine

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/lasercalc/optimization-core/internal/evolution"
	"github.com/lasercalc/optimization-core/internal/insights"
	"github.com/lasercalc/optimization-core/internal/objective"
	"github.com/lasercalc/optimization-core/internal/operators"
	"github.com/lasercalc/optimization-core/internal/pareto"
	"github.com/lasercalc/optimization-core/internal/population"
	"github.com/lasercalc/optimization-core/pkg/config"
	"github.com/lasercalc/optimization-core/pkg/logger"
	"github.com/lasercalc/optimization-core/pkg/models"
	"github.com/lasercalc/optimization-core/pkg/utils"
)

// Options configures an Engine. Nil fields fall back to the built-in
// defaults.
type Options struct {
	Catalog *config.Catalog
	Tuning  *config.Tuning
}

// Engine runs parameter optimizations. It is stateless between runs and
// safe for concurrent use.
type Engine struct {
	catalog  *config.Catalog
	tuning   *config.Tuning
	validate *validator.Validate
}

// New creates an engine. A nil options pointer uses the default material
// catalog and tuning.
func New(opts *Options) *Engine {
	catalog := config.DefaultCatalog()
	tuning := config.DefaultTuning()
	if opts != nil {
		if opts.Catalog != nil {
			catalog = opts.Catalog
		}
		if opts.Tuning != nil {
			t := *opts.Tuning
			t.ApplyDefaults()
			tuning = &t
		}
	}

	return &Engine{
		catalog:  catalog,
		tuning:   tuning,
		validate: validator.New(),
	}
}

// Optimize runs one optimization. Cancelling the context stops the search
// at the next generation boundary and returns the best result found so far;
// it is not an error.
func (e *Engine) Optimize(ctx context.Context, req *models.OptimizeRequest) (*models.OptimizeResult, error) {
	start := time.Now()

	if err := e.validateRequest(req); err != nil {
		return nil, err
	}

	profile, ok := e.catalog.Profile(req.MaterialType)
	if !ok {
		return nil, &UnknownMaterialError{Material: string(req.MaterialType)}
	}
	if req.ThicknessMm > profile.MaxThicknessMm {
		return nil, &ValidationError{
			Field:  "thickness",
			Reason: fmt.Sprintf("%.1f mm exceeds the %.1f mm limit for %s", req.ThicknessMm, profile.MaxThicknessMm, profile.Name),
		}
	}

	rng := utils.NewRandSource(req.Seed)
	runID := uuid.NewString()
	log := logger.With(
		"runId", runID,
		"material", req.MaterialType,
		"algorithm", req.AlgorithmType,
		"goal", req.OptimizationGoal,
		"seed", rng.Seed(),
	)

	space := objective.NewSpace(profile, req.LaserPowerW)
	model := objective.NewModel(space, req.ThicknessMm)

	weights, err := objective.WeightsForGoal(req.OptimizationGoal)
	if err != nil {
		return nil, err
	}
	evaluator := objective.NewEvaluator(model, weights, req.Constraints, e.tuning.ConstraintPenalty)

	strategy, err := operators.New(req.AlgorithmType, space, e.tuning)
	if err != nil {
		return nil, err
	}

	log.Info("optimization started",
		"populationSize", req.PopulationSize,
		"generations", req.Generations,
	)

	loop := evolution.New(space, evaluator, strategy, e.tuning, rng)
	outcome, err := loop.Run(ctx, evolution.Params{
		PopulationSize: req.PopulationSize,
		Generations:    req.Generations,
		Tolerance:      req.ConvergenceTolerance,
		SeedPoint:      req.CurrentParameters,
	})
	if err != nil {
		log.Error("optimization failed", "error", err)
		return nil, fmt.Errorf("optimization run %s: %w", runID, err)
	}

	result := e.buildResult(req, space, evaluator, outcome, runID, rng.Seed(), start)

	log.Info("optimization finished",
		"termination", result.Summary.Termination,
		"generationsRun", result.Summary.GenerationsRun,
		"finalFitness", result.Summary.FinalFitness,
		"executionTime", result.Summary.ExecutionTimeSec,
	)
	return result, nil
}

// buildResult packages the loop outcome into the full result bundle.
func (e *Engine) buildResult(req *models.OptimizeRequest, space *objective.Space, evaluator *objective.Evaluator, outcome *evolution.Outcome, runID string, seed int64, start time.Time) *models.OptimizeResult {
	best := outcome.BestEver

	sensitivities := insights.Sensitivity(space, evaluator, best.Parameters, best.Fitness)

	result := &models.OptimizeResult{
		Summary: models.OptimizationSummary{
			RunID:               runID,
			Algorithm:           req.AlgorithmType,
			Goal:                req.OptimizationGoal,
			Seed:                seed,
			GenerationsRun:      outcome.GenerationsRun,
			ConvergenceAchieved: outcome.Converged,
			Termination:         outcome.Termination,
			ExecutionTimeSec:    time.Since(start).Seconds(),
			FinalFitness:        best.Fitness,
			ImprovementPercent:  e.improvement(req, evaluator, space, outcome),
		},
		OptimalParameters: models.OptimalParameters{
			ParameterVector: best.Parameters,
			FitnessScore:    best.Fitness,
			Objectives:      best.Objectives,
		},
		ParetoFront:          pareto.Front(outcome.Final.Members),
		ConvergenceHistory:   outcome.History,
		AlternativeSolutions: insights.Alternatives(space, outcome.Final.Members, best),
		Insights:             insights.Build(sensitivities, outcome.Converged, outcome.GenerationsRun),
		Warnings:             e.warnings(req, space, evaluator, best),
	}
	return result
}

// improvement compares the final fitness against the baseline: the caller's
// current parameters when given, otherwise the best of generation zero.
func (e *Engine) improvement(req *models.OptimizeRequest, evaluator *objective.Evaluator, space *objective.Space, outcome *evolution.Outcome) float64 {
	baseline := 0.0
	if req.CurrentParameters != nil {
		if _, fitness, err := evaluator.Evaluate(space.Clamp(*req.CurrentParameters)); err == nil {
			baseline = fitness
		}
	}
	if baseline == 0 && len(outcome.History) > 0 {
		baseline = outcome.History[0].BestFitness
	}
	if baseline <= 0 {
		return 0
	}
	return utils.Round((outcome.BestEver.Fitness-baseline)/baseline*100, 2)
}

// warnings collects run-level advisories: violated soft constraints and a
// machine too weak for the material's usual operating window.
func (e *Engine) warnings(req *models.OptimizeRequest, space *objective.Space, evaluator *objective.Evaluator, best *population.Individual) []string {
	warnings := evaluator.ConstraintWarnings(best.Objectives)

	profile := space.Profile()
	if req.LaserPowerW < profile.Power.Min {
		warnings = append(warnings, fmt.Sprintf(
			"machine laser power %.0f W is below the usual %.0f W minimum for %s; parameters are pinned to the machine limit",
			req.LaserPowerW, profile.Power.Min, profile.Name))
	}
	return warnings
}
