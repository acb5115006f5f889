// Package config provides runtime configuration values for the service.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Config holds configuration knobs for the HTTP server, storage, and
// session verification.
type Config struct {
	HTTPAddr        string
	ShutdownTimeout time.Duration
	DatabaseDSN     string
	SessionKey      string
	UploadKey       string
	UploadCredTTL   time.Duration
}

// fileConfig mirrors Config for the optional YAML overlay. Durations
// are plain seconds to keep the file format simple.
type fileConfig struct {
	HTTPAddr           string `yaml:"http_addr"`
	ShutdownTimeoutSec int    `yaml:"shutdown_timeout_sec"`
	DatabaseDSN        string `yaml:"database_dsn"`
	SessionKey         string `yaml:"session_key"`
	UploadKey          string `yaml:"upload_key"`
	UploadCredTTLSec   int    `yaml:"upload_cred_ttl_sec"`
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoienv(key string, def int) int {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func durenvs(key string, defSec int) time.Duration {
	sec := atoienv(key, defSec)
	return time.Duration(sec) * time.Second
}

// Load collects configuration from defaults, then the YAML file named
// by CONFIG_FILE (if set), then environment variables. Environment
// wins over the file.
func Load() (Config, error) {
	c := Config{
		HTTPAddr:        ":8080",
		ShutdownTimeout: 15 * time.Second,
		DatabaseDSN:     "pawlig.db",
		SessionKey:      "dev-insecure-session-key",
		UploadKey:       "dev-insecure-upload-key",
		UploadCredTTL:   15 * time.Minute,
	}
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
		var fc fileConfig
		if err := yaml.Unmarshal(b, &fc); err != nil {
			return Config{}, fmt.Errorf("parse config file: %w", err)
		}
		if fc.HTTPAddr != "" {
			c.HTTPAddr = fc.HTTPAddr
		}
		if fc.ShutdownTimeoutSec > 0 {
			c.ShutdownTimeout = time.Duration(fc.ShutdownTimeoutSec) * time.Second
		}
		if fc.DatabaseDSN != "" {
			c.DatabaseDSN = fc.DatabaseDSN
		}
		if fc.SessionKey != "" {
			c.SessionKey = fc.SessionKey
		}
		if fc.UploadKey != "" {
			c.UploadKey = fc.UploadKey
		}
		if fc.UploadCredTTLSec > 0 {
			c.UploadCredTTL = time.Duration(fc.UploadCredTTLSec) * time.Second
		}
	}
	c.HTTPAddr = getenv("HTTP_ADDR", c.HTTPAddr)
	c.ShutdownTimeout = durenvs("SHUTDOWN_TIMEOUT", int(c.ShutdownTimeout/time.Second))
	c.DatabaseDSN = getenv("DATABASE_DSN", c.DatabaseDSN)
	c.SessionKey = getenv("SESSION_KEY", c.SessionKey)
	c.UploadKey = getenv("UPLOAD_KEY", c.UploadKey)
	c.UploadCredTTL = durenvs("UPLOAD_CRED_TTL", int(c.UploadCredTTL/time.Second))
	return c, nil
}
