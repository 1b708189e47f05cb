package cop

import (
	"github.com/prometheus/client_golang/prometheus"
)

// ModelCollector exports the active regression parameter bands so dashboards
// can annotate which model produced a given COP series.
type ModelCollector struct {
	sinkLow  *prometheus.GaugeVec
	sinkHigh *prometheus.GaugeVec
	quality  prometheus.Gauge
}

func NewModelCollector(model *Model) *ModelCollector {
	labels := []string{"class"}
	c := &ModelCollector{
		sinkLow: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "heatpumpd_cop_model_sink_band_low_celsius",
			Help: "Lower sink outlet temperature bound of the regression band",
		}, labels),
		sinkHigh: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name: "heatpumpd_cop_model_sink_band_high_celsius",
			Help: "Upper sink outlet temperature bound of the regression band",
		}, labels),
		quality: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "heatpumpd_cop_carnot_quality_factor",
			Help: "Quality factor applied by the Carnot fallback model",
		}),
	}

	for _, class := range model.Classes() {
		p, ok := model.Params(class)
		if !ok {
			continue
		}
		c.sinkLow.WithLabelValues(string(class)).Set(p.SinkOutLowC)
		c.sinkHigh.WithLabelValues(string(class)).Set(p.SinkOutHighC)
	}
	c.quality.Set(model.QualityFactor())

	return c
}

func (c *ModelCollector) Describe(ch chan<- *prometheus.Desc) {
	c.sinkLow.Describe(ch)
	c.sinkHigh.Describe(ch)
	c.quality.Describe(ch)
}

func (c *ModelCollector) Collect(ch chan<- prometheus.Metric) {
	c.sinkLow.Collect(ch)
	c.sinkHigh.Collect(ch)
	c.quality.Collect(ch)
}
