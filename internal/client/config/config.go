package config

import (
	"time"

	"github.com/dmitrijs2005/uniswap/internal/common"
)

// Cache backends accepted in CacheBackend.
const (
	CacheBackendSQLite = "sqlite"
	CacheBackendRedis  = "redis"
)

// Config holds runtime settings for the UniSwap CLI.
//
// Units: RequestTimeout and SendGuardWindow are time.Duration values.
type Config struct {
	APIBaseURL      string
	RequestTimeout  time.Duration
	DatabasePath    string
	CacheBackend    string
	RedisAddr       string
	RedisPassword   string
	LogLevel        string
	SendGuardWindow time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = common.DefaultAPIBaseURL
	c.RequestTimeout = 10 * time.Second
	c.DatabasePath = "uniswap.db"
	c.CacheBackend = CacheBackendSQLite
	c.RedisAddr = "localhost:6379"
	c.RedisPassword = ""
	c.LogLevel = "info"
	c.SendGuardWindow = time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment (after loading an optional .env file), a JSON file and
// command-line flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
