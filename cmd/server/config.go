package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

var ErrConfParamMissing = fmt.Errorf("configuration parameter missing")

type Config struct {
	ServiceName string `toml:"serviceName"`
	HTTPAddr    string `toml:"httpAddr"`
	LogLevel    string `toml:"logLevel"`

	PurgoMalumURL string `toml:"purgoMalumURL"`
	TimeoutSec    int    `toml:"timeoutSec"`
	AddWordsPath  string `toml:"addWordsPath"`

	KafkaAddr  string `toml:"kafkaAddr"`
	KafkaTopic string `toml:"kafkaTopic"`
	KafkaBatch int    `toml:"kafkaBatch"`
}

func loadConfig(path string) (*Config, error) {
	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.ServiceName == "" {
		return fmt.Errorf("%w: serviceName", ErrConfParamMissing)
	}
	if c.HTTPAddr == "" {
		return fmt.Errorf("%w: httpAddr", ErrConfParamMissing)
	}
	if c.TimeoutSec < 0 {
		return fmt.Errorf("invalid timeoutSec %d", c.TimeoutSec)
	}
	if (c.KafkaAddr == "") != (c.KafkaTopic == "") {
		return fmt.Errorf("%w: kafkaAddr and kafkaTopic must be set together", ErrConfParamMissing)
	}

	return nil
}

// Timeout returns the PurgoMalum request timeout, zero selects the client default.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.TimeoutSec) * time.Second
}

// KafkaEnabled reports whether request logs are shipped to Kafka.
func (c *Config) KafkaEnabled() bool {
	return c.KafkaAddr != "" && c.KafkaTopic != ""
}

func (c *Config) HasWordList() bool {
	return strings.TrimSpace(c.AddWordsPath) != ""
}
