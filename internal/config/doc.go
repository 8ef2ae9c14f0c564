// Package config handles YAML configuration loading with environment
// variable substitution.
//
// Config files support ${VAR} interpolation, and a .env file in the
// working directory is loaded first if present. Durations are written
// as Go duration strings ("15m", "24h").
package config
