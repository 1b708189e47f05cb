// Package cop calculates the coefficient of performance of large-scale heat
// pumps using the regression models of Jesper et al. (2021), "Large-scale heat
// pumps: Uptake and performance modelling of market-available devices",
// Renewable and Sustainable Energy Reviews 137, with a Carnot fallback for
// sink temperatures outside the fitted bands.
package cop

import (
	"fmt"
	"math"
)

// Class identifies a heat pump class by its delivered sink temperature band.
type Class string

const (
	ClassConventional        Class = "conventional"
	ClassVeryHighTemperature Class = "very_high_temperature"
	ClassCarnot              Class = "carnot"
)

const (
	// CelsiusToKelvin converts sink outlet temperatures for the regression terms.
	CelsiusToKelvin = 273.15

	// DefaultQualityFactor is the exergetic quality factor of the Carnot fallback.
	DefaultQualityFactor = 0.4
)

// Params holds one fitted parameter set: the sink outlet band it applies to
// and the regression coefficients a, b, c, d.
type Params struct {
	SinkOutLowC  float64
	SinkOutHighC float64
	A            float64
	B            float64
	C            float64
	D            float64
}

// classOrder fixes evaluation order; the later band wins on a shared
// boundary, so a 100 degC sink classifies as very high temperature.
var classOrder = []Class{ClassConventional, ClassVeryHighTemperature}

// DefaultParams returns the parameter table from the Jesper et al. paper.
func DefaultParams() map[Class]Params {
	return map[Class]Params{
		ClassConventional: {
			SinkOutLowC:  0,
			SinkOutHighC: 100,
			A:            1.4480e12,
			B:            88.730,
			C:            -4.9460,
			D:            0.0000,
		},
		ClassVeryHighTemperature: {
			SinkOutLowC:  100,
			SinkOutHighC: 160,
			A:            1.9118,
			B:            -0.89094,
			C:            0.67895,
			D:            0.044189,
		},
	}
}

// Result is a single COP evaluation.
type Result struct {
	COP      float64
	Class    Class
	DeltaTK  float64
	SinkK    float64
	Warnings []string
}

// Model evaluates COPs against a parameter table.
type Model struct {
	params        map[Class]Params
	qualityFactor float64
}

// NewModel builds a model from a parameter table. A nil table selects the
// built-in Jesper et al. parameters. Custom tables must cover every built-in
// class; partial overrides are rejected, matching the original validation.
func NewModel(params map[Class]Params, qualityFactor float64) (*Model, error) {
	if qualityFactor == 0 {
		qualityFactor = DefaultQualityFactor
	}
	if qualityFactor < 0 {
		return nil, fmt.Errorf("quality factor %g must be positive", qualityFactor)
	}

	if params == nil {
		params = DefaultParams()
	} else {
		for _, class := range classOrder {
			p, ok := params[class]
			if !ok {
				return nil, fmt.Errorf("parameter set for class %q is missing", class)
			}
			if p.SinkOutLowC >= p.SinkOutHighC {
				return nil, fmt.Errorf("class %q sink band [%g, %g] is empty", class, p.SinkOutLowC, p.SinkOutHighC)
			}
		}
	}

	return &Model{params: params, qualityFactor: qualityFactor}, nil
}

// Params returns the parameter set for a class.
func (m *Model) Params(class Class) (Params, bool) {
	p, ok := m.params[class]
	return p, ok
}

// Classes lists the regression classes in evaluation order.
func (m *Model) Classes() []Class {
	return append([]Class(nil), classOrder...)
}

// QualityFactor returns the Carnot quality factor of the model.
func (m *Model) QualityFactor() float64 {
	return m.qualityFactor
}

// Classify picks the heat pump class whose sink band contains the sink outlet
// temperature. The second return is false when no band matches and the Carnot
// fallback applies.
func (m *Model) Classify(sinkC float64) (Class, bool) {
	var found Class
	ok := false
	for _, class := range classOrder {
		p := m.params[class]
		if p.SinkOutLowC <= sinkC && sinkC <= p.SinkOutHighC {
			found = class
			ok = true
		}
	}
	return found, ok
}

// Conventional evaluates COP = a*(dT + 2b)^c * (Tsink + b)^d for sink outlet
// temperatures up to 100 degC. Temperatures in Kelvin.
func Conventional(deltaTK, sinkK float64, p Params) float64 {
	term1 := p.A * math.Pow(deltaTK+2*p.B, p.C)
	term2 := math.Pow(sinkK+p.B, p.D)
	return term1 * term2
}

// VeryHighTemperature evaluates COP = a*(dT + 2d)^b * (Tsink + d)^c for sink
// outlet temperatures between 100 and 160 degC. Temperatures in Kelvin.
func VeryHighTemperature(deltaTK, sinkK float64, p Params) float64 {
	term1 := p.A * math.Pow(deltaTK+2*p.D, p.B)
	term2 := math.Pow(sinkK+p.D, p.C)
	return term1 * term2
}

// Carnot evaluates the quality-factor-scaled Carnot COP
// COP = q * Tsink / dT with the sink temperature in Kelvin.
func Carnot(deltaTK, sinkK, qualityFactor float64) float64 {
	return qualityFactor * sinkK / deltaTK
}

// Calculate classifies the heat pump by its sink outlet temperature and
// evaluates the matching regression, or the Carnot fallback when the sink is
// outside every fitted band. Inputs in degC. Operating points outside the
// fitted ranges are reported as warnings on the result, not errors.
func (m *Model) Calculate(sourceC, sinkC float64) (Result, error) {
	deltaT := sinkC - sourceC
	if deltaT <= 0 {
		return Result{}, fmt.Errorf("temperature lift %g K must be positive (source %g degC, sink %g degC)", deltaT, sourceC, sinkC)
	}

	sinkK := sinkC + CelsiusToKelvin
	result := Result{DeltaTK: deltaT, SinkK: sinkK}

	class, ok := m.Classify(sinkC)
	if !ok {
		result.Class = ClassCarnot
		result.COP = Carnot(deltaT, sinkK, m.qualityFactor)
		result.Warnings = append(result.Warnings,
			fmt.Sprintf("sink temperature %g degC is outside every fitted band; falling back to the Carnot model", sinkC))
		return result, nil
	}

	p := m.params[class]
	result.Class = class
	switch class {
	case ClassConventional:
		result.COP = Conventional(deltaT, sinkK, p)
		result.Warnings = rangeWarnings(deltaT, sourceC, 10, 78, -10, 60)
	case ClassVeryHighTemperature:
		result.COP = VeryHighTemperature(deltaT, sinkK, p)
		result.Warnings = rangeWarnings(deltaT, sourceC, 25, 95, 25.1, 110.1)
	}

	return result, nil
}

func rangeWarnings(deltaT, sourceC, deltaLow, deltaHigh, sourceLow, sourceHigh float64) []string {
	var warnings []string
	if deltaT < deltaLow || deltaT > deltaHigh {
		warnings = append(warnings,
			fmt.Sprintf("temperature lift %g K is outside the fitted range [%g, %g] K", deltaT, deltaLow, deltaHigh))
	}
	if sourceC < sourceLow || sourceC > sourceHigh {
		warnings = append(warnings,
			fmt.Sprintf("source temperature %g degC is outside the fitted range [%g, %g] degC", sourceC, sourceLow, sourceHigh))
	}
	return warnings
}
