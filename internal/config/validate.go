package config

import (
	"errors"
	"fmt"
)

// Validate checks that all required fields are set and values are valid.
func (c *Config) Validate() error {
	if c.API.BaseURL == "" {
		return errors.New("api.base_url is required")
	}
	if c.API.SeriesTicker == "" {
		return errors.New("api.series_ticker is required")
	}

	if err := c.Schedule.validate(); err != nil {
		return err
	}

	switch c.Database.Backend {
	case "sqlite":
		if c.Database.SQLite.Path == "" {
			return errors.New("database.sqlite.path is required")
		}
	case "postgres":
		if err := c.Database.Postgres.validate("database.postgres"); err != nil {
			return err
		}
	default:
		return fmt.Errorf("database.backend must be \"sqlite\" or \"postgres\", got %q", c.Database.Backend)
	}

	if c.Health.Port < 1 || c.Health.Port > 65535 {
		return fmt.Errorf("health.port must be between 1 and 65535, got %d", c.Health.Port)
	}

	return nil
}

func (s *ScheduleConfig) validate() error {
	if s.LiveInterval <= 0 {
		return errors.New("schedule.live_interval must be positive")
	}
	if s.NearInterval <= s.LiveInterval {
		return errors.New("schedule.near_interval must exceed schedule.live_interval")
	}
	if s.FarInterval <= s.NearInterval {
		return errors.New("schedule.far_interval must exceed schedule.near_interval")
	}
	if s.NearThreshold <= 0 {
		return errors.New("schedule.near_threshold must be positive")
	}
	if s.EventDuration <= 0 {
		return errors.New("schedule.event_duration must be positive")
	}
	if s.RefreshInterval <= 0 {
		return errors.New("schedule.refresh_interval must be positive")
	}
	if s.MinSleep <= 0 {
		return errors.New("schedule.min_sleep must be positive")
	}
	if s.CollectTimeout <= 0 {
		return errors.New("schedule.collect_timeout must be positive")
	}
	return nil
}

func (db *DBConfig) validate(prefix string) error {
	if db.Host == "" {
		return fmt.Errorf("%s.host is required", prefix)
	}
	if db.Name == "" {
		return fmt.Errorf("%s.name is required", prefix)
	}
	if db.User == "" {
		return fmt.Errorf("%s.user is required", prefix)
	}
	if db.Password == "" {
		return fmt.Errorf("%s.password is required", prefix)
	}
	if db.MaxConns < 1 {
		return fmt.Errorf("%s.max_conns must be >= 1", prefix)
	}
	if db.MinConns < 0 {
		return fmt.Errorf("%s.min_conns must be >= 0", prefix)
	}
	return nil
}
