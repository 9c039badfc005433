package main

import (
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/b97tsk/fresh/interval"
)

const (
	_defaultInput   = "Day05.test"
	_defaultFormat  = "text"
	_defaultMerge   = "adjacent"
	_defaultWorkers = 1
	_envPrefix      = "FRESH"
)

type Config struct {
	Part    int    `mapstructure:"part"`
	Merge   string `mapstructure:"merge"`
	Workers int    `mapstructure:"workers"`
	Format  string `mapstructure:"format"`
	Verbose bool   `mapstructure:"verbose"`

	mergeRule interval.MergeRule
}

// _loadConfig layers flags over FRESH_* environment variables over the
// optional config file over defaults.
func _loadConfig(configFile string, flags *pflag.FlagSet) (cfg Config, err error) {
	v := viper.New()
	v.SetDefault("part", 0)
	v.SetDefault("merge", _defaultMerge)
	v.SetDefault("workers", _defaultWorkers)
	v.SetDefault("format", _defaultFormat)
	v.SetDefault("verbose", false)

	v.SetEnvPrefix(_envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if configFile != "" {
		v.SetConfigFile(configFile)
		if err = v.ReadInConfig(); err != nil {
			return cfg, errorf("reading config %s: %w", configFile, err)
		}
	}

	if flags != nil {
		if err = v.BindPFlags(flags); err != nil {
			return
		}
	}

	if err = v.Unmarshal(&cfg); err != nil {
		return cfg, errorf("decoding config: %w", err)
	}
	err = cfg.validate()
	return
}

func (c *Config) validate() (err error) {
	if c.Part < 0 || c.Part > 2 {
		return errorf("part must be 0, 1 or 2, not %d", c.Part)
	}
	if c.Workers < 0 {
		return errorf("workers must not be negative, not %d", c.Workers)
	}
	switch c.Format {
	case "text", "yaml":
	default:
		return errorf("unknown format %q", c.Format)
	}
	c.mergeRule, err = interval.ParseMergeRule(c.Merge)
	return
}
