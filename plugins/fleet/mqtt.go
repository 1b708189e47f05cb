package fleet

import (
	"context"
	"crypto/rand"
	"crypto/tls"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog"

	"github.com/heatgrid/heatpumpd/internal/config"
)

// Publisher pushes site evaluations to an MQTT broker so downstream energy
// management systems can subscribe to them.
type Publisher struct {
	client      mqtt.Client
	topicPrefix string
	interval    time.Duration
	logger      zerolog.Logger
}

func NewPublisher(cfg *config.MQTTConfig, logger zerolog.Logger) (*Publisher, error) {
	if cfg == nil {
		return nil, fmt.Errorf("missing mqtt config")
	}

	opts := mqtt.NewClientOptions()
	opts.AddBroker(cfg.Broker)
	if cfg.TLS {
		opts.SetTLSConfig(&tls.Config{})
	}
	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
	}
	if cfg.PasswordFile != "" {
		password, err := os.ReadFile(cfg.PasswordFile)
		if err != nil {
			return nil, fmt.Errorf("read mqtt password: %w", err)
		}
		opts.SetPassword(strings.TrimSpace(string(password)))
	}
	opts.SetClientID(randomClientID())
	opts.SetAutoReconnect(true)
	opts.SetConnectRetry(true)
	opts.SetConnectTimeout(10 * time.Second)

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, token.Error()
	}

	return &Publisher{
		client:      client,
		topicPrefix: cfg.TopicPrefix,
		interval:    time.Duration(cfg.IntervalSeconds) * time.Second,
		logger:      logger,
	}, nil
}

// Run publishes every site on the configured interval until ctx is cancelled.
func (p *Publisher) Run(ctx context.Context, evaluator *Evaluator, sites []Site) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	p.publishAll(evaluator, sites)
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.publishAll(evaluator, sites)
		}
	}
}

func (p *Publisher) publishAll(evaluator *Evaluator, sites []Site) {
	for _, site := range sites {
		eval, err := evaluator.Evaluate(site)
		if err != nil {
			p.logger.Error().Err(err).Str("site_id", site.ID).Msg("evaluate site")
			continue
		}

		payload, err := json.Marshal(eval)
		if err != nil {
			p.logger.Error().Err(err).Str("site_id", site.ID).Msg("marshal evaluation")
			continue
		}

		topic := p.topicPrefix + "/sites/" + site.ID
		if token := p.client.Publish(topic, 0, false, payload); token.Wait() && token.Error() != nil {
			p.logger.Error().Err(token.Error()).Str("topic", topic).Msg("publish evaluation")
		}
	}
}

// Close disconnects from the broker, allowing in-flight messages to drain.
func (p *Publisher) Close() {
	p.client.Disconnect(250)
}

func randomClientID() string {
	buf := make([]byte, 9)
	if _, err := rand.Read(buf); err != nil {
		return "heatpumpd"
	}
	return "heatpumpd-" + base64.RawURLEncoding.EncodeToString(buf)
}
