package config

import (
	"fmt"
	"strings"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}

	if c.Database.MinConns > c.Database.MaxConns {
		return fmt.Errorf("database.min_conns (%d) must not exceed max_conns (%d)",
			c.Database.MinConns, c.Database.MaxConns)
	}

	if err := c.MQTT.validate(); err != nil {
		return fmt.Errorf("mqtt: %w", err)
	}

	if err := c.History.validate(); err != nil {
		return fmt.Errorf("history: %w", err)
	}

	return nil
}

func (m *MQTTConfig) validate() error {
	if m.BrokerURL == "" {
		return nil // publisher disabled
	}
	if !strings.Contains(m.BrokerURL, "://") {
		return fmt.Errorf("broker_url must include a scheme, e.g. tcp://host:1883 (got %q)", m.BrokerURL)
	}
	if strings.TrimSpace(m.ClientID) == "" {
		return fmt.Errorf("client_id must not be empty")
	}
	if strings.TrimSpace(m.Topic) == "" {
		return fmt.Errorf("topic must not be empty")
	}
	return nil
}

func (h *HistoryConfig) validate() error {
	if h.DefaultLimit <= 0 {
		return fmt.Errorf("default_limit must be > 0 (got %d)", h.DefaultLimit)
	}
	if h.MaxLimit < h.DefaultLimit {
		return fmt.Errorf("max_limit (%d) must be >= default_limit (%d)", h.MaxLimit, h.DefaultLimit)
	}
	return nil
}
