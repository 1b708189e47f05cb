// Package fleet evaluates configured heat pump sites through the COP, power,
// and cost models and exposes the results for monitoring.
package fleet

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/heatgrid/heatpumpd/plugins/cop"
	"github.com/heatgrid/heatpumpd/plugins/costs"
	"github.com/heatgrid/heatpumpd/plugins/power"
)

// Evaluator runs the full sizing pipeline for a site: COP from the return and
// network temperatures, source power from the supply-return drop, delivered
// output, electrical input, and a capital cost estimate.
type Evaluator struct {
	model *cop.Model
	curve *costs.Curve
}

func NewEvaluator(model *cop.Model, curve *costs.Curve) (*Evaluator, error) {
	if model == nil {
		return nil, fmt.Errorf("cop model is required")
	}
	if curve == nil {
		return nil, fmt.Errorf("cost curve is required")
	}
	return &Evaluator{model: model, curve: curve}, nil
}

// Evaluate computes the operating point of one site.
func (e *Evaluator) Evaluate(site Site) (Evaluation, error) {
	result, err := e.model.Calculate(site.ReturnTempC, site.NetworkTempC)
	if err != nil {
		return Evaluation{}, fmt.Errorf("site %s: %w", site.ID, err)
	}

	sourceW, err := power.SourceThermalPower(site.SupplyTempC, site.ReturnTempC, site.MassFlowKgS)
	if err != nil {
		return Evaluation{}, fmt.Errorf("site %s: %w", site.ID, err)
	}

	outputW, err := power.OutputPower(result.COP, sourceW)
	if err != nil {
		return Evaluation{}, fmt.Errorf("site %s: %w", site.ID, err)
	}

	electricalW, err := power.ElectricalPower(outputW, result.COP)
	if err != nil {
		return Evaluation{}, fmt.Errorf("site %s: %w", site.ID, err)
	}

	// Ideal reverse-Carnot reference unless the site pins a quality factor.
	quality := site.QualityFactor
	if quality == 0 {
		quality = 1
	}
	carnotCOP := cop.Carnot(result.DeltaTK, result.SinkK, quality)

	eval := Evaluation{
		Site:             site,
		Class:            string(result.Class),
		COP:              result.COP,
		CarnotCOP:        carnotCOP,
		DeltaTK:          result.DeltaTK,
		SourcePowerW:     sourceW,
		OutputPowerW:     outputW,
		ElectricalPowerW: electricalW,
		SizeMW:           outputW / 1e6,
		Warnings:         result.Warnings,
		EvaluatedAt:      time.Now().UTC(),
	}

	specific, err := e.curve.SpecificCost(eval.SizeMW)
	if err != nil {
		eval.Warnings = append(eval.Warnings, fmt.Sprintf("capital cost unavailable: %v", err))
	} else {
		eval.SpecificCostEUR = specific
		eval.CapitalCostEUR = specific * eval.SizeMW
	}

	return eval, nil
}

// EvaluateAll evaluates every site, failing on the first invalid one.
func (e *Evaluator) EvaluateAll(sites []Site) ([]Evaluation, error) {
	evals := make([]Evaluation, 0, len(sites))
	for _, site := range sites {
		eval, err := e.Evaluate(site)
		if err != nil {
			return nil, err
		}
		evals = append(evals, eval)
	}
	return evals, nil
}

// BuildReport evaluates the fleet into an archivable snapshot.
func (e *Evaluator) BuildReport(sites []Site) (Report, error) {
	evals, err := e.EvaluateAll(sites)
	if err != nil {
		return Report{}, err
	}
	return Report{
		ID:          uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Sites:       evals,
	}, nil
}
