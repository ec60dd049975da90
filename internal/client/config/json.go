package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/uniswap/internal/flagx"
	"github.com/dmitrijs2005/uniswap/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling.
// Intervals are timex.Duration so they can be written as "10s" or as
// integer nanoseconds. Zero values leave the corresponding Config field
// untouched.
type JsonConfig struct {
	APIBaseURL      string         `json:"api_base_url"`
	RequestTimeout  timex.Duration `json:"request_timeout"`
	DatabasePath    string         `json:"database_path"`
	CacheBackend    string         `json:"cache_backend"`
	RedisAddr       string         `json:"redis_addr"`
	RedisPassword   string         `json:"redis_password"`
	LogLevel        string         `json:"log_level"`
	SendGuardWindow timex.Duration `json:"send_guard_window"`
}

// parseJson overlays Config with values loaded from the JSON file named by
// -c or -config. Without either flag it does nothing. Read and unmarshal
// errors panic.
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.JsonConfigFlags()
	if jsonConfigFile == "" {
		return
	}

	var jc JsonConfig

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	setString(&cfg.APIBaseURL, jc.APIBaseURL)
	setString(&cfg.DatabasePath, jc.DatabasePath)
	setString(&cfg.CacheBackend, jc.CacheBackend)
	setString(&cfg.RedisAddr, jc.RedisAddr)
	setString(&cfg.RedisPassword, jc.RedisPassword)
	setString(&cfg.LogLevel, jc.LogLevel)
	if jc.RequestTimeout.Duration > 0 {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.SendGuardWindow.Duration > 0 {
		cfg.SendGuardWindow = jc.SendGuardWindow.Duration
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
