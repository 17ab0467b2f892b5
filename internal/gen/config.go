package gen

import (
	"os"
	"strconv"
)

// Config holds the generation-service settings. Generation is disabled by
// default; the planner form reports it as unavailable rather than erroring.
type Config struct {
	Enabled     bool
	Endpoint    string
	Model       string
	TimeoutMs   int
	Temperature float64
}

func DefaultConfig() Config {
	return Config{
		Enabled:     false,
		Endpoint:    "http://localhost:11434",
		Model:       "llama3.2",
		TimeoutMs:   30000,
		Temperature: 0.7,
	}
}

// LoadConfig reads generation settings from the environment, falling back
// to defaults for anything unset.
func LoadConfig() Config {
	cfg := DefaultConfig()
	if v := os.Getenv("STUDYD_GEN_ENABLED"); v != "" {
		cfg.Enabled, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("STUDYD_GEN_ENDPOINT"); v != "" {
		cfg.Endpoint = v
	}
	if v := os.Getenv("STUDYD_GEN_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("STUDYD_GEN_TIMEOUT_MS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.TimeoutMs = n
		}
	}
	if v := os.Getenv("STUDYD_GEN_TEMPERATURE"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f >= 0 && f <= 2 {
			cfg.Temperature = f
		}
	}
	return cfg
}
