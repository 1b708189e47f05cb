package fleet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heatgrid/heatpumpd/plugins/cop"
	"github.com/heatgrid/heatpumpd/plugins/costs"
)

func newTestEvaluator(t *testing.T) *Evaluator {
	t.Helper()
	model, err := cop.NewModel(nil, 0)
	require.NoError(t, err)
	evaluator, err := NewEvaluator(model, costs.DefaultCurve())
	require.NoError(t, err)
	return evaluator
}

// geothermalSite mirrors a geothermal district heating setup: 70 degC supply
// reinjected at 40 degC, feeding a 90 degC network.
var geothermalSite = Site{
	ID:           "geo-1",
	Name:         "Geothermal plant",
	SupplyTempC:  70,
	ReturnTempC:  40,
	NetworkTempC: 90,
	MassFlowKgS:  100,
}

func TestEvaluateGeothermalSite(t *testing.T) {
	evaluator := newTestEvaluator(t)

	eval, err := evaluator.Evaluate(geothermalSite)
	require.NoError(t, err)

	assert.Equal(t, string(cop.ClassConventional), eval.Class)
	assert.InDelta(t, 3.1879849294524867, eval.COP, 1e-12)
	assert.InDelta(t, 7.263, eval.CarnotCOP, 1e-12)
	assert.InDelta(t, 12.561e6, eval.SourcePowerW, 1e-6)
	assert.InDelta(t, 16501106.455320435, eval.OutputPowerW, 1e-6)
	assert.InDelta(t, 5176030.257506386, eval.ElectricalPowerW, 1e-6)
	assert.InDelta(t, 16.501106455320436, eval.SizeMW, 1e-12)
	assert.InDelta(t, 579977.8708935913, eval.SpecificCostEUR, 1e-6)
	assert.InDelta(t, 9570276.589345241, eval.CapitalCostEUR, 1e-6)
	assert.Empty(t, eval.Warnings)
	assert.False(t, eval.EvaluatedAt.IsZero())
}

func TestEvaluateSiteQualityFactor(t *testing.T) {
	evaluator := newTestEvaluator(t)

	site := geothermalSite
	site.QualityFactor = 0.5
	eval, err := evaluator.Evaluate(site)
	require.NoError(t, err)
	assert.InDelta(t, 0.5*7.263, eval.CarnotCOP, 1e-12)
}

func TestEvaluateSmallSiteWarnsOnCost(t *testing.T) {
	evaluator := newTestEvaluator(t)

	site := geothermalSite
	site.MassFlowKgS = 1 // delivers well under the smallest cost anchor
	eval, err := evaluator.Evaluate(site)
	require.NoError(t, err)
	assert.Zero(t, eval.CapitalCostEUR)
	require.NotEmpty(t, eval.Warnings)
	assert.Contains(t, eval.Warnings[len(eval.Warnings)-1], "capital cost unavailable")
}

func TestEvaluateInvalidSite(t *testing.T) {
	evaluator := newTestEvaluator(t)

	site := geothermalSite
	site.NetworkTempC = 30 // below the return temperature
	_, err := evaluator.Evaluate(site)
	assert.Error(t, err)
}

func TestBuildReport(t *testing.T) {
	evaluator := newTestEvaluator(t)

	report, err := evaluator.BuildReport([]Site{geothermalSite})
	require.NoError(t, err)
	assert.NotEmpty(t, report.ID)
	assert.False(t, report.GeneratedAt.IsZero())
	require.Len(t, report.Sites, 1)
	assert.Equal(t, "geo-1", report.Sites[0].Site.ID)
}
