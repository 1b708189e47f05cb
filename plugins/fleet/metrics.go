package fleet

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// MetricsCollector evaluates the fleet on every scrape. The pipeline is pure
// arithmetic over static config, so no caching is needed.
type MetricsCollector struct {
	evaluator *Evaluator
	sites     []Site

	evalSuccess prometheus.Gauge
	lastEval    prometheus.Gauge
	cop         *prometheus.GaugeVec
	carnotCOP   *prometheus.GaugeVec
	sourceW     *prometheus.GaugeVec
	outputW     *prometheus.GaugeVec
	electricalW *prometheus.GaugeVec
	capitalEUR  *prometheus.GaugeVec
	warnings    *prometheus.GaugeVec
}

func NewMetricsCollector(evaluator *Evaluator, sites []Site) *MetricsCollector {
	labels := []string{"site_id", "name", "class"}
	return &MetricsCollector{
		evaluator: evaluator,
		sites:     sites,
		evalSuccess: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "heatpumpd_fleet_evaluation_success",
			Help: "Last fleet evaluation success (1=ok, 0=error)",
		}),
		lastEval: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "heatpumpd_fleet_last_evaluation_timestamp_seconds",
			Help: "Last successful fleet evaluation timestamp (epoch seconds)",
		}),
		cop: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "heatpumpd_fleet_cop",
			Help: "Coefficient of performance at the configured operating point",
		}, labels),
		carnotCOP: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "heatpumpd_fleet_carnot_cop",
			Help: "Carnot reference COP at the configured operating point",
		}, labels),
		sourceW: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "heatpumpd_fleet_source_power_watts",
			Help: "Thermal power available from the heat source",
		}, labels),
		outputW: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "heatpumpd_fleet_output_power_watts",
			Help: "Total delivered thermal power",
		}, labels),
		electricalW: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "heatpumpd_fleet_electrical_power_watts",
			Help: "Electrical input power",
		}, labels),
		capitalEUR: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "heatpumpd_fleet_capital_cost_eur",
			Help: "Estimated capital cost of the installation",
		}, labels),
		warnings: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "heatpumpd_fleet_model_warnings",
			Help: "Count of model range warnings at the configured operating point",
		}, labels),
	}
}

func (c *MetricsCollector) Describe(ch chan<- *prometheus.Desc) {
	c.evalSuccess.Describe(ch)
	c.lastEval.Describe(ch)
	c.cop.Describe(ch)
	c.carnotCOP.Describe(ch)
	c.sourceW.Describe(ch)
	c.outputW.Describe(ch)
	c.electricalW.Describe(ch)
	c.capitalEUR.Describe(ch)
	c.warnings.Describe(ch)
}

func (c *MetricsCollector) Collect(ch chan<- prometheus.Metric) {
	ok := true
	for _, site := range c.sites {
		eval, err := c.evaluator.Evaluate(site)
		if err != nil {
			ok = false
			continue
		}

		labels := prometheus.Labels{
			"site_id": site.ID,
			"name":    site.Name,
			"class":   eval.Class,
		}
		c.cop.With(labels).Set(eval.COP)
		c.carnotCOP.With(labels).Set(eval.CarnotCOP)
		c.sourceW.With(labels).Set(eval.SourcePowerW)
		c.outputW.With(labels).Set(eval.OutputPowerW)
		c.electricalW.With(labels).Set(eval.ElectricalPowerW)
		c.capitalEUR.With(labels).Set(eval.CapitalCostEUR)
		c.warnings.With(labels).Set(float64(len(eval.Warnings)))
	}

	if ok {
		c.evalSuccess.Set(1)
		c.lastEval.Set(float64(time.Now().Unix()))
	} else {
		c.evalSuccess.Set(0)
	}

	c.evalSuccess.Collect(ch)
	c.lastEval.Collect(ch)
	c.cop.Collect(ch)
	c.carnotCOP.Collect(ch)
	c.sourceW.Collect(ch)
	c.outputW.Collect(ch)
	c.electricalW.Collect(ch)
	c.capitalEUR.Collect(ch)
	c.warnings.Collect(ch)
}
