// Package config loads runtime configuration from the environment.
package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds everything the worker and starter read from the environment.
type Config struct {
	TemporalAddress string        `envconfig:"TEMPORAL_ADDRESS" default:"localhost:7233"`
	TaskQueue       string        `envconfig:"DELIVERY_TASK_QUEUE" default:"cookie-delivery-queue"`
	EncryptionKey   string        `envconfig:"ENCRYPTION_KEY"`
	OrderBackend    string        `envconfig:"ORDER_BACKEND" default:"memory"`
	CalendarID      string        `envconfig:"BUSINESS_CALENDAR_ID" default:"primary"`
	BusinessEmail   string        `envconfig:"BUSINESS_EMAIL" default:"deliveries@cookiebusiness.com"`
	Timezone        string        `envconfig:"BUSINESS_TIMEZONE" default:"America/Los_Angeles"`
	BufferWindow    time.Duration `envconfig:"STREAMING_BUFFER_WINDOW" default:"90m"`
}

// Load reads configuration from the environment.
func Load() (*Config, error) {
	var c Config
	if err := envconfig.Process("", &c); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return &c, nil
}

// Location resolves the configured business timezone.
func (c *Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid business timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// EncryptionKeyBytes decodes the configured hex encryption key. When no key
// is configured it generates a random 32-byte key for AES-256 and reports
// generated as true so callers can tell the operator to persist it.
func (c *Config) EncryptionKeyBytes() (key []byte, generated bool, err error) {
	if c.EncryptionKey != "" {
		key, err = hex.DecodeString(c.EncryptionKey)
		if err != nil {
			return nil, false, fmt.Errorf("failed to decode encryption key: %w", err)
		}
		return key, false, nil
	}

	key = make([]byte, 32)
	if _, err := rand.Read(key); err != nil {
		return nil, false, fmt.Errorf("failed to generate encryption key: %w", err)
	}
	return key, true, nil
}
