package config

import "time"

// Default values for optional configuration fields.
const (
	DefaultBaseURL      = "https://api.elections.kalshi.com/trade-api/v2"
	DefaultSeriesTicker = "KXNFLGAME"
	DefaultAPITimeout   = 30 * time.Second
	DefaultMaxRetries   = 3
	DefaultRetryBackoff = 1 * time.Second

	DefaultFarInterval   = 60 * time.Minute
	DefaultNearInterval  = 15 * time.Minute
	DefaultLiveInterval  = 1 * time.Minute
	DefaultNearThreshold = 24 * time.Hour
	DefaultEventDuration = 3*time.Hour + 30*time.Minute

	DefaultRefreshInterval = 15 * time.Minute
	DefaultIdleSleep       = 15 * time.Minute
	DefaultMinSleep        = 1 * time.Second
	DefaultCollectTimeout  = 10 * time.Second

	DefaultBackend    = "sqlite"
	DefaultSQLitePath = "data/nfl_liquidity.db"
	DefaultDBPort     = 5432
	DefaultDBSSLMode  = "prefer"
	DefaultMaxConns   = 10
	DefaultMinConns   = 2

	DefaultHealthPort = 8080
)

func (c *Config) applyDefaults() {
	// API defaults
	if c.API.BaseURL == "" {
		c.API.BaseURL = DefaultBaseURL
	}
	if c.API.SeriesTicker == "" {
		c.API.SeriesTicker = DefaultSeriesTicker
	}
	if c.API.Timeout == 0 {
		c.API.Timeout = Duration(DefaultAPITimeout)
	}
	if c.API.MaxRetries == 0 {
		c.API.MaxRetries = DefaultMaxRetries
	}
	if c.API.RetryBackoff == 0 {
		c.API.RetryBackoff = Duration(DefaultRetryBackoff)
	}

	// Schedule defaults
	if c.Schedule.FarInterval == 0 {
		c.Schedule.FarInterval = Duration(DefaultFarInterval)
	}
	if c.Schedule.NearInterval == 0 {
		c.Schedule.NearInterval = Duration(DefaultNearInterval)
	}
	if c.Schedule.LiveInterval == 0 {
		c.Schedule.LiveInterval = Duration(DefaultLiveInterval)
	}
	if c.Schedule.NearThreshold == 0 {
		c.Schedule.NearThreshold = Duration(DefaultNearThreshold)
	}
	if c.Schedule.EventDuration == 0 {
		c.Schedule.EventDuration = Duration(DefaultEventDuration)
	}
	if c.Schedule.RefreshInterval == 0 {
		c.Schedule.RefreshInterval = Duration(DefaultRefreshInterval)
	}
	if c.Schedule.IdleSleep == 0 {
		c.Schedule.IdleSleep = Duration(DefaultIdleSleep)
	}
	if c.Schedule.MinSleep == 0 {
		c.Schedule.MinSleep = Duration(DefaultMinSleep)
	}
	if c.Schedule.CollectTimeout == 0 {
		c.Schedule.CollectTimeout = Duration(DefaultCollectTimeout)
	}

	// Database defaults
	if c.Database.Backend == "" {
		c.Database.Backend = DefaultBackend
	}
	if c.Database.SQLite.Path == "" {
		c.Database.SQLite.Path = DefaultSQLitePath
	}
	if c.Database.Postgres.Port == 0 {
		c.Database.Postgres.Port = DefaultDBPort
	}
	if c.Database.Postgres.SSLMode == "" {
		c.Database.Postgres.SSLMode = DefaultDBSSLMode
	}
	if c.Database.Postgres.MaxConns == 0 {
		c.Database.Postgres.MaxConns = DefaultMaxConns
	}
	if c.Database.Postgres.MinConns == 0 {
		c.Database.Postgres.MinConns = DefaultMinConns
	}

	// Health defaults
	if c.Health.Port == 0 {
		c.Health.Port = DefaultHealthPort
	}
}
