// Package mqtt publishes sprinkler state-change events to an MQTT broker.
// Publishing is fire-and-forget: callers never wait for broker
// acknowledgment, and a lost event is not retried.
package mqtt

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/cenkalti/backoff/v4"
	paho "github.com/eclipse/paho.mqtt.golang"

	"github.com/greenhose/sprinklerd/internal/config"
	"github.com/greenhose/sprinklerd/internal/domain"
)

// Publisher sends state-change events to an MQTT broker at QoS 0.
type Publisher struct {
	client paho.Client
	topic  string
	log    *slog.Logger
}

// NewPublisher connects to the broker and returns a ready publisher.
// The initial connect is retried with exponential backoff for up to the
// configured connect timeout.
func NewPublisher(ctx context.Context, cfg config.MQTTConfig, log *slog.Logger) (*Publisher, error) {
	opts := paho.NewClientOptions().
		AddBroker(cfg.BrokerURL).
		SetClientID(cfg.ClientID).
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetConnectRetryInterval(5 * time.Second)

	client := paho.NewClient(opts)

	connect := func() error {
		token := client.Connect()
		if !token.WaitTimeout(cfg.ConnectTimeout) {
			return fmt.Errorf("connection timeout")
		}
		return token.Error()
	}

	bo := backoff.WithContext(backoff.NewExponentialBackOff(
		backoff.WithMaxElapsedTime(cfg.ConnectTimeout),
	), ctx)
	if err := backoff.Retry(connect, bo); err != nil {
		return nil, fmt.Errorf("connect to broker %s: %w", cfg.BrokerURL, err)
	}

	return &Publisher{
		client: client,
		topic:  cfg.Topic,
		log:    log.With("component", "mqtt"),
	}, nil
}

// PublishStateChange sends the event at QoS 0 without waiting on the token.
// Delivery failures surface only through the logged completion callback.
func (p *Publisher) PublishStateChange(ctx context.Context, evt domain.StateChangeEvent) error {
	payload, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("marshal state change: %w", err)
	}

	token := p.client.Publish(p.topic, 0, false, payload)
	go func() {
		token.Wait()
		if err := token.Error(); err != nil {
			p.log.WarnContext(ctx, "state change publish failed",
				slog.String("sprinkler_id", evt.SprinklerID.String()),
				slog.Any("error", err),
			)
		}
	}()

	return nil
}

// Connected reports whether the broker connection is currently up. The paho
// client reconnects on its own; while it is down, published events are
// dropped, not queued.
func (p *Publisher) Connected() bool {
	return p.client.IsConnected()
}

// Close disconnects from the broker, allowing in-flight messages a moment
// to drain.
func (p *Publisher) Close() {
	p.client.Disconnect(1000)
}
