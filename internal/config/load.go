package config

import (
	"fmt"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"slimechunkfinder/internal/diag"
)

// Flags defines the CLI surface, returning the flag set for the caller to
// parse against os.Args; Load binds the explicitly set flags into viper.
func Flags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("slimefinder", pflag.ContinueOnError)
	fs.Int64("world-seed", 0, "world seed for the slime predicate (overrides config)")
	fs.Int("min-rect-dimension", 0, "minimum rectangle width/height to report (overrides config)")
	fs.Int64("work-unit-size", 0, "chunk side length of one work unit (overrides config)")
	fs.Int64("min-bx", 0, "search region minimum block X")
	fs.Int64("max-bx", 0, "search region maximum block X")
	fs.Int64("min-bz", 0, "search region minimum block Z")
	fs.Int64("max-bz", 0, "search region maximum block Z")
	fs.Int("workers", 0, "worker count override (0 = GOMAXPROCS)")
	fs.String("log-level", "", "debug|info|warn|error")
	fs.String("stats-path", "", "path to the periodic stats snapshot file")
	fs.Int("stats-interval-seconds", 0, "seconds between stats snapshots")
	fs.Int("stats-max-size-mb", 0, "stats file rotation threshold in MB")
	fs.String("config", "", "path to a config file (json/yaml/toml)")
	fs.Bool("selfcheck", false, "run the built-in property/scenario self-check and exit")
	return fs
}

// Load builds the final Config: defaults, then an optional config file,
// then SLIMEFINDER_-prefixed environment variables (with a .env file in
// dir loaded first via godotenv, never overriding variables already set),
// then CLI flags — viper's own precedence order, highest last.
func Load(fs *pflag.FlagSet, dir string) (Config, error) {
	_ = godotenv.Load(dotenvPath(dir))

	v := viper.New()
	d := Defaults()
	v.SetDefault("world_seed", d.WorldSeed)
	v.SetDefault("min_rect_dimension", d.MinRectDimension)
	v.SetDefault("work_unit_size", d.WorkUnitSize)
	v.SetDefault("search_bounds.min_bx", d.SearchBounds.MinBX)
	v.SetDefault("search_bounds.max_bx", d.SearchBounds.MaxBX)
	v.SetDefault("search_bounds.min_bz", d.SearchBounds.MinBZ)
	v.SetDefault("search_bounds.max_bz", d.SearchBounds.MaxBZ)
	v.SetDefault("workers", d.Workers)
	v.SetDefault("log_level", d.LogLevel)
	v.SetDefault("stats_path", d.StatsPath)
	v.SetDefault("stats_interval_seconds", d.StatsIntervalSeconds)
	v.SetDefault("stats_max_size_mb", d.StatsMaxSizeMB)
	v.SetDefault("log_dir", d.LogDir)

	v.SetEnvPrefix("SLIMEFINDER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if cfgFile, _ := fs.GetString("config"); cfgFile != "" {
		v.SetConfigFile(cfgFile)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("%w: reading config file: %v", diag.ErrInvalidConfig, err)
		}
	}

	bindFlag(v, fs, "world-seed", "world_seed")
	bindFlag(v, fs, "min-rect-dimension", "min_rect_dimension")
	bindFlag(v, fs, "work-unit-size", "work_unit_size")
	bindFlag(v, fs, "min-bx", "search_bounds.min_bx")
	bindFlag(v, fs, "max-bx", "search_bounds.max_bx")
	bindFlag(v, fs, "min-bz", "search_bounds.min_bz")
	bindFlag(v, fs, "max-bz", "search_bounds.max_bz")
	bindFlag(v, fs, "workers", "workers")
	bindFlag(v, fs, "log-level", "log_level")
	bindFlag(v, fs, "stats-path", "stats_path")
	bindFlag(v, fs, "stats-interval-seconds", "stats_interval_seconds")
	bindFlag(v, fs, "stats-max-size-mb", "stats_max_size_mb")

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("%w: unmarshal: %v", diag.ErrInvalidConfig, err)
	}
	if err := Validate(cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// bindFlag binds a pflag into viper only when the flag was explicitly set
// on the command line — an unset flag must never shadow a config-file or
// environment value with its zero default.
func bindFlag(v *viper.Viper, fs *pflag.FlagSet, flagName, key string) {
	f := fs.Lookup(flagName)
	if f == nil || !f.Changed {
		return
	}
	_ = v.BindPFlag(key, f)
}

func dotenvPath(dir string) string {
	if dir == "" {
		return ".env"
	}
	return dir + "/.env"
}

// Validate checks the minimal invariants a run needs to start: a
// positive minimum rectangle dimension and work unit size, a
// non-inverted search region, and a positive stats interval.
func Validate(cfg Config) error {
	if cfg.MinRectDimension < 1 {
		return fmt.Errorf("%w: min_rect_dimension must be >= 1, got %d", diag.ErrInvalidConfig, cfg.MinRectDimension)
	}
	if cfg.WorkUnitSize < 1 {
		return fmt.Errorf("%w: work_unit_size must be >= 1, got %d", diag.ErrInvalidConfig, cfg.WorkUnitSize)
	}
	if cfg.SearchBounds.MaxBX < cfg.SearchBounds.MinBX || cfg.SearchBounds.MaxBZ < cfg.SearchBounds.MinBZ {
		return fmt.Errorf("%w: search bounds max must be >= min", diag.ErrInvalidConfig)
	}
	if cfg.StatsIntervalSeconds < 1 {
		return fmt.Errorf("%w: stats_interval_seconds must be >= 1, got %d", diag.ErrInvalidConfig, cfg.StatsIntervalSeconds)
	}
	return nil
}
