package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

type rawConfig struct {
	Server *struct {
		Address string `json:"address"`
	} `json:"server"`
	// Seconds a player may hold the turn before forfeiting by inactivity.
	ActionTimeoutSeconds int `json:"action_timeout_seconds"`
	// Seconds a public lobby stays listed while waiting for an opponent.
	PublicMatchTTLSeconds int `json:"public_match_ttl_seconds"`
	// Seconds between timeout scanner sweeps.
	ScanIntervalSeconds int `json:"scan_interval_seconds"`
}

// LoadedConfig carries the server bind address and match timing knobs.
type LoadedConfig struct {
	ServerAddress  string
	ActionTimeout  time.Duration
	PublicMatchTTL time.Duration
	ScanInterval   time.Duration
}

// LoadConfig reads the configuration file at path. Every key is optional;
// missing keys fall back to defaults that suit local development.
func LoadConfig(path string) (*LoadedConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	var rc rawConfig
	if err := json.Unmarshal(b, &rc); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	out := Defaults()
	if rc.Server != nil && rc.Server.Address != "" {
		out.ServerAddress = rc.Server.Address
	}
	if rc.ActionTimeoutSeconds < 0 || rc.PublicMatchTTLSeconds < 0 || rc.ScanIntervalSeconds < 0 {
		return nil, fmt.Errorf("config file %s: timing values must not be negative", path)
	}
	if rc.ActionTimeoutSeconds > 0 {
		out.ActionTimeout = time.Duration(rc.ActionTimeoutSeconds) * time.Second
	}
	if rc.PublicMatchTTLSeconds > 0 {
		out.PublicMatchTTL = time.Duration(rc.PublicMatchTTLSeconds) * time.Second
	}
	if rc.ScanIntervalSeconds > 0 {
		out.ScanInterval = time.Duration(rc.ScanIntervalSeconds) * time.Second
	}
	return out, nil
}

// Defaults returns the configuration used when no file is present.
func Defaults() *LoadedConfig {
	return &LoadedConfig{
		ServerAddress:  ":8080",
		ActionTimeout:  2 * time.Minute,
		PublicMatchTTL: 5 * time.Minute,
		ScanInterval:   5 * time.Second,
	}
}
