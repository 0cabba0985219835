package cmd

import "time"

type Config struct {
	HTTPPort   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	RedisAddr  string
	CacheTTL   string

	// StoreTimeout bounds every store operation; parse failures fall back
	// to DefaultStoreTimeout.
	StoreTimeout string
}

// DefaultStoreTimeout is used when STORE_TIMEOUT is unset or unparseable.
const DefaultStoreTimeout = 5 * time.Second

// ParsedStoreTimeout returns the configured store timeout as a duration.
func (c Config) ParsedStoreTimeout() time.Duration {
	timeout, err := time.ParseDuration(c.StoreTimeout)
	if err != nil || timeout <= 0 {
		return DefaultStoreTimeout
	}
	return timeout
}
