package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultPath                = "/etc/heatpumpd/config.yaml"
	DefaultHTTPAddr            = "0.0.0.0:8080"
	DefaultDashboardDir        = "/var/lib/heatpumpd/dashboards"
	DefaultArchivePrefix       = "heatpumpd"
	DefaultMQTTTopicPrefix     = "heatpumpd"
	DefaultMQTTIntervalSeconds = 60
	DefaultRateLimitPerMinute  = 600
)

// Config is the full daemon configuration.
type Config struct {
	Core    CoreConfig     `yaml:"core"`
	Models  ModelsConfig   `yaml:"models"`
	Sites   []SiteConfig   `yaml:"sites"`
	MQTT    *MQTTConfig    `yaml:"mqtt"`
	Archive *ArchiveConfig `yaml:"archive"`
}

// CoreConfig covers the shared daemon surface.
type CoreConfig struct {
	HTTPAddr           string `yaml:"http_addr"`
	DashboardDir       string `yaml:"dashboard_dir"`
	RateLimitPerMinute int    `yaml:"rate_limit_per_minute"`
}

// ModelsConfig overrides the built-in model tables.
type ModelsConfig struct {
	QualityFactor float64                    `yaml:"quality_factor"`
	COPParameters map[string]COPParamsConfig `yaml:"cop_parameters"`
	CostCurve     map[float64]float64        `yaml:"cost_curve"`
}

// COPParamsConfig is one regression parameter set. All fields are pointers so
// an omitted coefficient is distinguishable from an explicit zero; a partial
// override is a config error.
type COPParamsConfig struct {
	SinkOutLowC  *float64 `yaml:"sink_out_low_c"`
	SinkOutHighC *float64 `yaml:"sink_out_high_c"`
	A            *float64 `yaml:"a"`
	B            *float64 `yaml:"b"`
	C            *float64 `yaml:"c"`
	D            *float64 `yaml:"d"`
}

// SiteConfig describes one monitored heat pump site.
type SiteConfig struct {
	ID            string  `yaml:"id"`
	Name          string  `yaml:"name"`
	SupplyTempC   float64 `yaml:"supply_temp_c"`
	ReturnTempC   float64 `yaml:"return_temp_c"`
	NetworkTempC  float64 `yaml:"network_temp_c"`
	MassFlowKgS   float64 `yaml:"mass_flow_kg_s"`
	QualityFactor float64 `yaml:"quality_factor"`
}

// MQTTConfig enables the fleet telemetry publisher.
type MQTTConfig struct {
	Broker          string `yaml:"broker"`
	TLS             bool   `yaml:"tls"`
	Username        string `yaml:"username"`
	PasswordFile    string `yaml:"password_file"`
	TopicPrefix     string `yaml:"topic_prefix"`
	IntervalSeconds int    `yaml:"interval_seconds"`
}

// ArchiveConfig enables the report archive. Either a local directory or an
// S3-compatible endpoint.
type ArchiveConfig struct {
	Dir           string `yaml:"dir"`
	Endpoint      string `yaml:"endpoint"`
	Bucket        string `yaml:"bucket"`
	Prefix        string `yaml:"prefix"`
	AccessKeyFile string `yaml:"access_key_file"`
	SecretKeyFile string `yaml:"secret_key_file"`
	Region        string `yaml:"region"`
}

// Load parses the YAML config file, applies defaults, and validates.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	applyDefaults(cfg)
	if err := Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Default returns a config with only the built-in defaults applied.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *Config) {
	if cfg.Core.HTTPAddr == "" {
		cfg.Core.HTTPAddr = DefaultHTTPAddr
	}
	if cfg.Core.DashboardDir == "" {
		cfg.Core.DashboardDir = DefaultDashboardDir
	}
	if cfg.Core.RateLimitPerMinute == 0 {
		cfg.Core.RateLimitPerMinute = DefaultRateLimitPerMinute
	}

	if cfg.MQTT != nil {
		if cfg.MQTT.TopicPrefix == "" {
			cfg.MQTT.TopicPrefix = DefaultMQTTTopicPrefix
		}
		if cfg.MQTT.IntervalSeconds == 0 {
			cfg.MQTT.IntervalSeconds = DefaultMQTTIntervalSeconds
		}
	}

	if cfg.Archive != nil && cfg.Archive.Prefix == "" {
		cfg.Archive.Prefix = DefaultArchivePrefix
	}
}

// Validate enforces required invariants beyond YAML typing.
func Validate(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config is required")
	}
	if cfg.Core.HTTPAddr == "" {
		return fmt.Errorf("core.http_addr is required")
	}
	if cfg.Core.RateLimitPerMinute < 0 {
		return fmt.Errorf("core.rate_limit_per_minute must not be negative")
	}

	for class, p := range cfg.Models.COPParameters {
		for name, value := range map[string]*float64{
			"sink_out_low_c":  p.SinkOutLowC,
			"sink_out_high_c": p.SinkOutHighC,
			"a":               p.A,
			"b":               p.B,
			"c":               p.C,
			"d":               p.D,
		} {
			if value == nil {
				return fmt.Errorf("models.cop_parameters.%s: %s is required", class, name)
			}
		}
	}

	seen := make(map[string]bool, len(cfg.Sites))
	for i, site := range cfg.Sites {
		if site.ID == "" {
			return fmt.Errorf("sites[%d].id is required", i)
		}
		if seen[site.ID] {
			return fmt.Errorf("duplicate site id %q", site.ID)
		}
		seen[site.ID] = true
		if site.MassFlowKgS <= 0 {
			return fmt.Errorf("site %q: mass_flow_kg_s must be positive", site.ID)
		}
		if site.SupplyTempC < site.ReturnTempC {
			return fmt.Errorf("site %q: supply_temp_c must not be below return_temp_c", site.ID)
		}
		if site.NetworkTempC <= site.ReturnTempC {
			return fmt.Errorf("site %q: network_temp_c must be above return_temp_c", site.ID)
		}
		if site.QualityFactor < 0 {
			return fmt.Errorf("site %q: quality_factor must not be negative", site.ID)
		}
	}

	if cfg.MQTT != nil {
		if cfg.MQTT.Broker == "" {
			return fmt.Errorf("mqtt.broker is required")
		}
		if cfg.MQTT.IntervalSeconds < 0 {
			return fmt.Errorf("mqtt.interval_seconds must not be negative")
		}
	}

	if cfg.Archive != nil && cfg.Archive.Dir == "" {
		if cfg.Archive.Endpoint == "" {
			return fmt.Errorf("archive.endpoint is required")
		}
		if cfg.Archive.Bucket == "" {
			return fmt.Errorf("archive.bucket is required")
		}
		if cfg.Archive.AccessKeyFile == "" {
			return fmt.Errorf("archive.access_key_file is required")
		}
		if cfg.Archive.SecretKeyFile == "" {
			return fmt.Errorf("archive.secret_key_file is required")
		}
	}

	return nil
}

// EnabledPlugins maps enabled plugin IDs based on config presence. The model
// plugins are always on; fleet needs at least one site.
func EnabledPlugins(cfg *Config) map[string]bool {
	enabled := map[string]bool{
		"cop":   true,
		"power": true,
		"costs": true,
	}
	if cfg != nil && len(cfg.Sites) > 0 {
		enabled["fleet"] = true
	}
	return enabled
}
