package config

import (
	"os"
	"strconv"
	"time"
)

// parseEnv overlays configuration values from environment variables.
// Unset variables leave the current value untouched; malformed numeric or
// duration values are ignored rather than aborting startup.
//
// Recognized variables:
//
//	ADDRESS           HTTP bind address
//	DATABASE_DSN      PostgreSQL DSN
//	REDIS_ADDR        Redis address (host:port)
//	REDIS_PASSWORD    Redis password
//	REDIS_DB          Redis database number
//	JWT_SECRET        HMAC secret for signing tokens
//	TOKEN_VALIDITY    token lifetime, e.g. "1h"
//	POSITIONS_API_URL upstream positions listing URL
func parseEnv(config *Config) {
	if v, ok := os.LookupEnv("ADDRESS"); ok {
		config.EndpointAddr = v
	}
	if v, ok := os.LookupEnv("DATABASE_DSN"); ok {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("REDIS_ADDR"); ok {
		config.RedisAddr = v
	}
	if v, ok := os.LookupEnv("REDIS_PASSWORD"); ok {
		config.RedisPassword = v
	}
	if v, ok := os.LookupEnv("REDIS_DB"); ok {
		if n, err := strconv.Atoi(v); err == nil {
			config.RedisDB = n
		}
	}
	if v, ok := os.LookupEnv("JWT_SECRET"); ok {
		config.SecretKey = v
	}
	if v, ok := os.LookupEnv("TOKEN_VALIDITY"); ok {
		if d, err := time.ParseDuration(v); err == nil {
			config.TokenValidity = d
		}
	}
	if v, ok := os.LookupEnv("POSITIONS_API_URL"); ok {
		config.PositionsAPIURL = v
	}
}
