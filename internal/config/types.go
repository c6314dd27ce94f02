// Package config assembles the run's configuration from layered sources —
// built-in defaults, an optional config file, environment variables, and
// CLI flags — via spf13/viper and spf13/pflag.
package config

import "slimechunkfinder/internal/tile"

const blockSize = 16

// SearchBounds is the half-open search region in block coordinates.
type SearchBounds struct {
	MinBX int64 `mapstructure:"min_bx"`
	MaxBX int64 `mapstructure:"max_bx"`
	MinBZ int64 `mapstructure:"min_bz"`
	MaxBZ int64 `mapstructure:"max_bz"`
}

// ToChunkBounds converts the block-coordinate search region to chunk
// coordinates by truncating division by 16, matching the legacy
// generator's rounding on negative bounds.
func (b SearchBounds) ToChunkBounds() tile.Bounds {
	return tile.Bounds{
		MinCX: b.MinBX / blockSize,
		MaxCX: b.MaxBX / blockSize,
		MinCZ: b.MinBZ / blockSize,
		MaxCZ: b.MaxBZ / blockSize,
	}
}

// Config is the run's fully resolved, read-only configuration.
type Config struct {
	WorldSeed        int64        `mapstructure:"world_seed"`
	MinRectDimension int          `mapstructure:"min_rect_dimension"`
	WorkUnitSize     int64        `mapstructure:"work_unit_size"`
	SearchBounds     SearchBounds `mapstructure:"search_bounds"`

	Workers              int    `mapstructure:"workers"`
	LogLevel             string `mapstructure:"log_level"`
	StatsPath            string `mapstructure:"stats_path"`
	StatsIntervalSeconds int    `mapstructure:"stats_interval_seconds"`
	StatsMaxSizeMB       int    `mapstructure:"stats_max_size_mb"`
	LogDir               string `mapstructure:"log_dir"`
}

// Defaults returns the built-in defaults (worldSeed 413563856,
// minRectDimension 3, workUnitSize 256, search bounds +/-3e7) plus ambient
// defaults for the logging/reporting surface.
func Defaults() Config {
	return Config{
		WorldSeed:        413563856,
		MinRectDimension: 3,
		WorkUnitSize:     256,
		SearchBounds: SearchBounds{
			MinBX: -30_000_000, MaxBX: 30_000_000,
			MinBZ: -30_000_000, MaxBZ: 30_000_000,
		},
		Workers:              0, // 0 means runtime.GOMAXPROCS(0)
		LogLevel:             "info",
		StatsPath:            "slimechunkfinder.txt",
		StatsIntervalSeconds: 5,
		StatsMaxSizeMB:       10,
		LogDir:               "logs",
	}
}
