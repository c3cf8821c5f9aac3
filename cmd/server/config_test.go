package main

import (
	"errors"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadConfig(t *testing.T) {
	cfg, err := loadConfig(filepath.Join("test_data", "config.toml"))
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	want := Config{
		ServiceName:   "censorship",
		HTTPAddr:      ":8055",
		LogLevel:      "debug",
		PurgoMalumURL: "http://localhost:8099",
		TimeoutSec:    2,
		AddWordsPath:  "words.json",
		KafkaAddr:     "localhost:9092",
		KafkaTopic:    "logs",
		KafkaBatch:    10,
	}
	if *cfg != want {
		t.Errorf("loadConfig() = %+v, want %+v", *cfg, want)
	}
	if cfg.Timeout() != 2*time.Second {
		t.Errorf("Timeout() = %v, want %v", cfg.Timeout(), 2*time.Second)
	}
	if !cfg.KafkaEnabled() {
		t.Error("KafkaEnabled() = false, want true")
	}
}

func TestLoadConfigDefault(t *testing.T) {
	cfg, err := loadConfig("config.toml")
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Validate() error = %v", err)
	}
	if cfg.KafkaEnabled() {
		t.Error("KafkaEnabled() = true, want false")
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{ServiceName: "censorship", HTTPAddr: ":8055"}

	tests := []struct {
		name    string
		modify  func(c *Config)
		wantErr bool
		missing bool
	}{
		{"valid config", func(c *Config) {}, false, false},
		{"empty service name", func(c *Config) { c.ServiceName = "" }, true, true},
		{"empty http address", func(c *Config) { c.HTTPAddr = "" }, true, true},
		{"negative timeout", func(c *Config) { c.TimeoutSec = -1 }, true, false},
		{"kafka topic without address", func(c *Config) { c.KafkaTopic = "logs" }, true, true},
		{"kafka fully configured", func(c *Config) { c.KafkaAddr, c.KafkaTopic = "localhost:9092", "logs" }, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.modify(&cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if errors.Is(err, ErrConfParamMissing) != tt.missing {
				t.Errorf("Validate() error = %v, want ErrConfParamMissing %v", err, tt.missing)
			}
		})
	}
}
