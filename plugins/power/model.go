// Package power calculates the thermal power available from a heat source and
// the total thermal output of a heat pump fed by it.
package power

import "fmt"

// WaterSpecificHeat is the specific heat capacity of water in J/(kg*K).
const WaterSpecificHeat = 4.187e3

// SourceThermalPower is the thermal power in watts extracted from a water
// source cooled from highC to lowC at the given mass flow in kg/s:
// P = cp * mdot * dT.
func SourceThermalPower(highC, lowC, massFlowKgS float64) (float64, error) {
	deltaT := highC - lowC
	if deltaT < 0 {
		return 0, fmt.Errorf("temperature drop %g - %g degC must be positive", highC, lowC)
	}
	if massFlowKgS < 0 {
		return 0, fmt.Errorf("mass flow rate %g kg/s must be positive", massFlowKgS)
	}

	return WaterSpecificHeat * massFlowKgS * deltaT, nil
}

// OutputPower is the total thermal output in watts of a heat pump with the
// given COP drawing sourceW from its heat source:
// P = (1 + COP) / COP * P_source.
func OutputPower(cop, sourceW float64) (float64, error) {
	if cop <= 0 {
		return 0, fmt.Errorf("coefficient of performance %g must be positive", cop)
	}
	if sourceW < 0 {
		return 0, fmt.Errorf("source thermal power %g W must be positive", sourceW)
	}

	return (1 + cop) * sourceW / cop, nil
}

// ElectricalPower is the electrical input in watts needed to deliver outputW
// at the given COP.
func ElectricalPower(outputW, cop float64) (float64, error) {
	if cop <= 0 {
		return 0, fmt.Errorf("coefficient of performance %g must be positive", cop)
	}
	if outputW < 0 {
		return 0, fmt.Errorf("output thermal power %g W must be positive", outputW)
	}

	return outputW / cop, nil
}
