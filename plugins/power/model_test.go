package power

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSourceThermalPower(t *testing.T) {
	// Geothermal loop cooled from 70 to 40 degC at 100 kg/s.
	watts, err := SourceThermalPower(70, 40, 100)
	require.NoError(t, err)
	assert.InDelta(t, 12.561e6, watts, 1e-6)
}

func TestSourceThermalPowerValidation(t *testing.T) {
	_, err := SourceThermalPower(40, 70, 100)
	assert.Error(t, err, "negative temperature drop")

	_, err = SourceThermalPower(70, 40, -1)
	assert.Error(t, err, "negative mass flow")

	watts, err := SourceThermalPower(70, 70, 100)
	require.NoError(t, err)
	assert.Zero(t, watts)
}

func TestOutputPower(t *testing.T) {
	watts, err := OutputPower(3.19, 12.56e6)
	require.NoError(t, err)
	assert.InDelta(t, 16497304.075235108, watts, 1e-6)
}

func TestOutputPowerValidation(t *testing.T) {
	_, err := OutputPower(0, 12.56e6)
	assert.Error(t, err, "zero COP would divide by zero")

	_, err = OutputPower(-3, 12.56e6)
	assert.Error(t, err)

	_, err = OutputPower(3, -1)
	assert.Error(t, err)
}

func TestElectricalPower(t *testing.T) {
	watts, err := ElectricalPower(16.5e6, 3.3)
	require.NoError(t, err)
	assert.InDelta(t, 5e6, watts, 1e-6)

	_, err = ElectricalPower(16.5e6, 0)
	assert.Error(t, err)
}
