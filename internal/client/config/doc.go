// Package config loads runtime configuration for the UniSwap CLI.
//
// Sources and precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. A dotenv file (-env, default ".env") loaded with godotenv, then the
//     UNISWAP_* environment variables.
//  3. Optional JSON file selected via -c or -config.
//  4. Command-line flags, which override everything else.
//
// Supported flags
//
//	-a string   backend base URL
//	-t int      request timeout (seconds)
//	-d string   sqlite database path
//	-l string   log level
//
// Environment
//
//	UNISWAP_API_BASE_URL, UNISWAP_REQUEST_TIMEOUT, UNISWAP_DB_PATH,
//	UNISWAP_CACHE_BACKEND, UNISWAP_REDIS_ADDR, UNISWAP_REDIS_PASSWORD,
//	UNISWAP_LOG_LEVEL
//
// # JSON schema
//
//	{
//	  "api_base_url": "http://localhost:8080",
//	  "request_timeout": "10s",
//	  "database_path": "uniswap.db",
//	  "cache_backend": "sqlite",
//	  "redis_addr": "localhost:6379",
//	  "log_level": "debug",
//	  "send_guard_window": "1s"
//	}
package config
