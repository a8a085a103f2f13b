package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/dense2d/array2d"
)

// Config holds the array2d tunables read from the --config file.
// Unset keys keep the library defaults.
type Config struct {
	CacheLineBytes    int  `toml:"cache_line_bytes"`
	ParallelThreshold *int `toml:"parallel_threshold"`
	MaxWorkers        int  `toml:"max_workers"`
}

var errConfig = errors.New("invalid config")

// loadConfig decodes path. An empty path yields the zero Config.
func loadConfig(path string) (Config, error) {
	var c Config
	if path == "" {
		return c, nil
	}
	md, err := toml.DecodeFile(path, &c)
	if err != nil {
		return c, fmt.Errorf("load config %s: %w", path, err)
	}
	if und := md.Undecoded(); len(und) > 0 {
		keys := make([]string, len(und))
		for i, k := range und {
			keys[i] = k.String()
		}
		return c, fmt.Errorf("%w: %s: unknown keys %s", errConfig, path, strings.Join(keys, ", "))
	}
	if err := c.validate(); err != nil {
		return c, fmt.Errorf("%s: %w", path, err)
	}

	return c, nil
}

func (c Config) validate() error {
	if c.CacheLineBytes < 0 {
		return fmt.Errorf("%w: cache_line_bytes must be positive", errConfig)
	}
	if c.ParallelThreshold != nil && *c.ParallelThreshold < 0 {
		return fmt.Errorf("%w: parallel_threshold must be non-negative", errConfig)
	}
	if c.MaxWorkers < 0 {
		return fmt.Errorf("%w: max_workers must be non-negative", errConfig)
	}

	return nil
}

// Options maps the config onto array2d options. Call validate first.
func (c Config) Options() []array2d.Option {
	var opts []array2d.Option
	if c.CacheLineBytes > 0 {
		opts = append(opts, array2d.WithCacheLineBytes(c.CacheLineBytes))
	}
	if c.ParallelThreshold != nil {
		opts = append(opts, array2d.WithParallelThreshold(*c.ParallelThreshold))
	}
	if c.MaxWorkers > 0 {
		opts = append(opts, array2d.WithMaxWorkers(c.MaxWorkers))
	}

	return opts
}

func withConfig(ctx context.Context, c Config) context.Context {
	return context.WithValue(ctx, configKey, c)
}

func configFromContext(ctx context.Context) Config {
	c, _ := ctx.Value(configKey).(Config)
	return c
}
