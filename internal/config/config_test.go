package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadAppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
core: {}
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, DefaultHTTPAddr, cfg.Core.HTTPAddr)
	assert.Equal(t, DefaultDashboardDir, cfg.Core.DashboardDir)
	assert.Equal(t, DefaultRateLimitPerMinute, cfg.Core.RateLimitPerMinute)
	assert.Nil(t, cfg.MQTT)
	assert.Nil(t, cfg.Archive)
}

func TestLoadFullConfig(t *testing.T) {
	path := writeConfig(t, `
core:
  http_addr: "127.0.0.1:9090"
models:
  quality_factor: 0.5
sites:
  - id: geo-1
    name: Geothermal plant
    supply_temp_c: 70
    return_temp_c: 40
    network_temp_c: 90
    mass_flow_kg_s: 100
mqtt:
  broker: tcp://broker:1883
archive:
  dir: /tmp/heatpumpd
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9090", cfg.Core.HTTPAddr)
	assert.Equal(t, 0.5, cfg.Models.QualityFactor)
	require.Len(t, cfg.Sites, 1)
	assert.Equal(t, "geo-1", cfg.Sites[0].ID)
	require.NotNil(t, cfg.MQTT)
	assert.Equal(t, DefaultMQTTTopicPrefix, cfg.MQTT.TopicPrefix)
	assert.Equal(t, DefaultMQTTIntervalSeconds, cfg.MQTT.IntervalSeconds)
	require.NotNil(t, cfg.Archive)
	assert.Equal(t, DefaultArchivePrefix, cfg.Archive.Prefix)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestValidateSites(t *testing.T) {
	cases := map[string]string{
		"missing id": `
sites:
  - name: no id
    supply_temp_c: 70
    return_temp_c: 40
    network_temp_c: 90
    mass_flow_kg_s: 100
`,
		"duplicate id": `
sites:
  - {id: a, supply_temp_c: 70, return_temp_c: 40, network_temp_c: 90, mass_flow_kg_s: 100}
  - {id: a, supply_temp_c: 70, return_temp_c: 40, network_temp_c: 90, mass_flow_kg_s: 100}
`,
		"zero mass flow": `
sites:
  - {id: a, supply_temp_c: 70, return_temp_c: 40, network_temp_c: 90}
`,
		"network below return": `
sites:
  - {id: a, supply_temp_c: 70, return_temp_c: 40, network_temp_c: 30, mass_flow_kg_s: 100}
`,
	}

	for name, content := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, content))
			assert.Error(t, err)
		})
	}
}

func TestValidateCOPParameterOverrides(t *testing.T) {
	// An omitted coefficient must not decode to a silent zero.
	_, err := Load(writeConfig(t, `
models:
  cop_parameters:
    very_high_temperature:
      sink_out_low_c: 100
      sink_out_high_c: 160
      b: -0.89094
      c: 0.67895
      d: 0.044189
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "a is required")

	cfg, err := Load(writeConfig(t, `
models:
  cop_parameters:
    very_high_temperature:
      sink_out_low_c: 100
      sink_out_high_c: 160
      a: 1.9118
      b: -0.89094
      c: 0.67895
      d: 0.044189
`))
	require.NoError(t, err)
	p := cfg.Models.COPParameters["very_high_temperature"]
	require.NotNil(t, p.A)
	assert.Equal(t, 1.9118, *p.A)
}

func TestValidateMQTTAndArchive(t *testing.T) {
	_, err := Load(writeConfig(t, `
mqtt: {}
`))
	assert.Error(t, err, "mqtt without broker")

	_, err = Load(writeConfig(t, `
archive:
  endpoint: https://s3.example.com
  bucket: reports
`))
	assert.Error(t, err, "s3 archive without credentials")
}

func TestEnabledPlugins(t *testing.T) {
	enabled := EnabledPlugins(Default())
	assert.True(t, enabled["cop"])
	assert.True(t, enabled["power"])
	assert.True(t, enabled["costs"])
	assert.False(t, enabled["fleet"])

	cfg := Default()
	cfg.Sites = []SiteConfig{{ID: "a"}}
	assert.True(t, EnabledPlugins(cfg)["fleet"])
}
