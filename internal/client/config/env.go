package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/uniswap/internal/flagx"
	"github.com/joho/godotenv"
)

const defaultEnvFile = ".env"

// parseEnv loads the dotenv file (path from -env, default ".env") into the
// process environment and then overlays Config with the UNISWAP_* variables.
//
// A missing dotenv file is ignored; a malformed one panics, in line with the
// other loaders. Variables already set in the environment are not
// overwritten by the file.
func parseEnv(cfg *Config) {
	path := flagx.EnvFileFlag()
	if path == "" {
		path = defaultEnvFile
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	cfg.APIBaseURL = getenv("UNISWAP_API_BASE_URL", cfg.APIBaseURL)
	cfg.RequestTimeout = getenvDuration("UNISWAP_REQUEST_TIMEOUT", cfg.RequestTimeout)
	cfg.DatabasePath = getenv("UNISWAP_DB_PATH", cfg.DatabasePath)
	cfg.CacheBackend = strings.ToLower(getenv("UNISWAP_CACHE_BACKEND", cfg.CacheBackend))
	cfg.RedisAddr = getenv("UNISWAP_REDIS_ADDR", cfg.RedisAddr)
	cfg.RedisPassword = getenv("UNISWAP_REDIS_PASSWORD", cfg.RedisPassword)
	cfg.LogLevel = getenv("UNISWAP_LOG_LEVEL", cfg.LogLevel)
}

func getenv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return def
}

// getenvDuration accepts Go duration strings ("15s") or a bare number of
// seconds. Unparseable values fall back to def.
func getenvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil {
		return time.Duration(n) * time.Second
	}
	return def
}
