package main

import (
	"context"
	"errors"
	"flag"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/heatgrid/heatpumpd/internal/archive"
	"github.com/heatgrid/heatpumpd/internal/config"
	"github.com/heatgrid/heatpumpd/internal/core"
	"github.com/heatgrid/heatpumpd/internal/log"
	"github.com/heatgrid/heatpumpd/internal/router"
	"github.com/heatgrid/heatpumpd/internal/server"
	"github.com/heatgrid/heatpumpd/plugins/cop"
	"github.com/heatgrid/heatpumpd/plugins/costs"
	"github.com/heatgrid/heatpumpd/plugins/fleet"
	"github.com/heatgrid/heatpumpd/plugins/power"
)

func main() {
	configPath := flag.String("config", envOrDefault("HEATPUMPD_CONFIG", config.DefaultPath), "path to the config file")
	flag.Parse()

	log.Configure(log.Config{})
	logger := log.WithComponent("main")

	cfg, err := loadConfig(*configPath)
	if err != nil {
		logger.Fatal().Err(err).Msg("load config")
	}
	if addr := os.Getenv("HEATPUMPD_HTTP_ADDR"); addr != "" {
		cfg.Core.HTTPAddr = addr
	}

	model, curve, err := buildModels(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("build models")
	}

	plugins := []core.Plugin{
		cop.NewPlugin(model),
		power.Plugin{},
		costs.NewPlugin(curve),
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	enabled := config.EnabledPlugins(cfg)
	if enabled["fleet"] {
		fleetPlugin, publisher, err := buildFleet(ctx, cfg, model, curve)
		if err != nil {
			logger.Fatal().Err(err).Msg("build fleet plugin")
		}
		plugins = append(plugins, fleetPlugin)
		if publisher != nil {
			defer publisher.Close()
		}
	}

	metricsRegistry := core.MetricsRegistry(plugins)
	metricsRegistry.MustRegister(prometheus.NewGaugeFunc(prometheus.GaugeOpts{
		Name: "heatpumpd_build_info",
		Help: "Build information",
	}, func() float64 { return 1 }))

	if err := core.WriteDashboards(cfg.Core.DashboardDir, plugins); err != nil {
		logger.Warn().Err(err).Msg("write dashboards")
	}

	r := chi.NewRouter()
	r.Use(server.RequestLogger(log.WithComponent("http")))
	r.Get("/healthz", server.HealthHandler)
	r.Method(http.MethodGet, "/metrics", server.MetricsHandler(metricsRegistry))
	r.Handle("/dashboards/*", server.DashboardsHandler(core.DashboardsMap(plugins)))
	r.Group(func(r chi.Router) {
		r.Use(server.RateLimit(cfg.Core.RateLimitPerMinute))
		router.RegisterPlugins(r, plugins)
	})

	httpServer := server.NewHTTPServer(cfg.Core.HTTPAddr, r)
	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", cfg.Core.HTTPAddr).Msg("http listening")
		errCh <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("http serve")
		}
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("http shutdown")
		}
	}
}

// loadConfig falls back to built-in defaults when the default config path is
// absent, so the daemon can run with just the model endpoints.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if errors.Is(err, fs.ErrNotExist) && path == config.DefaultPath {
		return config.Default(), nil
	}
	return cfg, err
}

func buildModels(cfg *config.Config) (*cop.Model, *costs.Curve, error) {
	var params map[cop.Class]cop.Params
	if len(cfg.Models.COPParameters) > 0 {
		// Validate has already rejected overrides with missing coefficients.
		params = make(map[cop.Class]cop.Params, len(cfg.Models.COPParameters))
		for class, p := range cfg.Models.COPParameters {
			params[cop.Class(class)] = cop.Params{
				SinkOutLowC:  *p.SinkOutLowC,
				SinkOutHighC: *p.SinkOutHighC,
				A:            *p.A,
				B:            *p.B,
				C:            *p.C,
				D:            *p.D,
			}
		}
	}

	model, err := cop.NewModel(params, cfg.Models.QualityFactor)
	if err != nil {
		return nil, nil, err
	}

	curve := costs.DefaultCurve()
	if len(cfg.Models.CostCurve) > 0 {
		curve, err = costs.NewCurve(cfg.Models.CostCurve)
		if err != nil {
			return nil, nil, err
		}
	}

	return model, curve, nil
}

func buildFleet(ctx context.Context, cfg *config.Config, model *cop.Model, curve *costs.Curve) (fleet.Plugin, *fleet.Publisher, error) {
	evaluator, err := fleet.NewEvaluator(model, curve)
	if err != nil {
		return fleet.Plugin{}, nil, err
	}

	sites := make([]fleet.Site, 0, len(cfg.Sites))
	for _, s := range cfg.Sites {
		sites = append(sites, fleet.Site{
			ID:            s.ID,
			Name:          s.Name,
			SupplyTempC:   s.SupplyTempC,
			ReturnTempC:   s.ReturnTempC,
			NetworkTempC:  s.NetworkTempC,
			MassFlowKgS:   s.MassFlowKgS,
			QualityFactor: s.QualityFactor,
		})
	}

	var store archive.Store
	if cfg.Archive != nil {
		if cfg.Archive.Dir != "" {
			store, err = archive.NewFSStore(cfg.Archive.Dir)
		} else {
			store, err = archive.NewS3Store(cfg.Archive)
		}
		if err != nil {
			return fleet.Plugin{}, nil, err
		}
	}

	var publisher *fleet.Publisher
	if cfg.MQTT != nil {
		publisher, err = fleet.NewPublisher(cfg.MQTT, log.WithComponent("mqtt"))
		if err != nil {
			return fleet.Plugin{}, nil, err
		}
		go publisher.Run(ctx, evaluator, sites)
	}

	return fleet.NewPlugin(evaluator, sites, store), publisher, nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
