package config

// Config is the root configuration for a tracker instance.
type Config struct {
	API      APIConfig      `yaml:"api"`
	Schedule ScheduleConfig `yaml:"schedule"`
	Database DatabaseConfig `yaml:"database"`
	Health   HealthConfig   `yaml:"health"`
}

// APIConfig holds Kalshi API settings.
type APIConfig struct {
	BaseURL      string   `yaml:"base_url"`
	SeriesTicker string   `yaml:"series_ticker"`
	Timeout      Duration `yaml:"timeout"`
	MaxRetries   int      `yaml:"max_retries"`
	RetryBackoff Duration `yaml:"retry_backoff"`
}

// ScheduleConfig holds the adaptive polling cadence.
type ScheduleConfig struct {
	FarInterval   Duration `yaml:"far_interval"`   // >NearThreshold before kickoff
	NearInterval  Duration `yaml:"near_interval"`  // pregame window
	LiveInterval  Duration `yaml:"live_interval"`  // game in progress
	NearThreshold Duration `yaml:"near_threshold"` // far -> near boundary
	EventDuration Duration `yaml:"event_duration"` // assumed game length

	RefreshInterval Duration `yaml:"refresh_interval"` // discovery cadence
	IdleSleep       Duration `yaml:"idle_sleep"`       // sleep when nothing is tracked
	MinSleep        Duration `yaml:"min_sleep"`        // floor on the inter-tick sleep
	CollectTimeout  Duration `yaml:"collect_timeout"`  // per-collection deadline
}

// DatabaseConfig selects and configures the snapshot store backend.
type DatabaseConfig struct {
	Backend  string       `yaml:"backend"` // "sqlite" or "postgres"
	SQLite   SQLiteConfig `yaml:"sqlite"`
	Postgres DBConfig     `yaml:"postgres"`
}

// SQLiteConfig holds the file-backed store settings.
type SQLiteConfig struct {
	Path string `yaml:"path"`
}

// DBConfig holds a PostgreSQL connection.
type DBConfig struct {
	Host     string `yaml:"host"`
	Port     int    `yaml:"port"`
	Name     string `yaml:"name"`
	User     string `yaml:"user"`
	Password string `yaml:"password"`
	SSLMode  string `yaml:"ssl_mode"`
	MaxConns int    `yaml:"max_conns"`
	MinConns int    `yaml:"min_conns"`
}

// HealthConfig holds the health/debug HTTP endpoint settings.
type HealthConfig struct {
	Port int `yaml:"port"`
}
