// Package config loads a mining run's settings from a YAML/JSON/TOML file
// via viper, the way a deployed CLI loads its run configuration from disk
// rather than from flags alone.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/viper"

	"seqpat"
)

// ConstraintConfig is one constraint entry as it appears in a config file.
type ConstraintConfig struct {
	Kind  string `mapstructure:"kind"`
	Attr  string `mapstructure:"attr"`
	Limit int    `mapstructure:"limit"`
}

// Config is a mining run's full on-disk configuration.
type Config struct {
	Input       string             `mapstructure:"input"`
	Output      string             `mapstructure:"output"`
	Theta       float64            `mapstructure:"theta"`
	Attrs       []string           `mapstructure:"attrs"`
	Constraints []ConstraintConfig `mapstructure:"constraints"`
	LogLevel    string             `mapstructure:"log_level"`
	MetricsAddr string             `mapstructure:"metrics_addr"`
}

// Load reads and unmarshals the config file at path. The file format is
// inferred from its extension (yaml, yml, json, toml); a file without an
// extension is rejected by viper as an unsupported config type.
func Load(path string) (Config, error) {
	var cfg Config
	if _, err := os.Stat(path); err != nil {
		return cfg, errors.Wrapf(err, "config: cannot read %s", path)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetDefault("theta", 1.0)
	v.SetDefault("log_level", "info")

	if err := v.ReadInConfig(); err != nil {
		return cfg, errors.Wrapf(err, "config: error reading %s", path)
	}
	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, errors.Wrapf(err, "config: error unmarshalling %s", path)
	}
	return cfg, nil
}

var kindByName = map[string]seqpat.ConstraintKind{
	"lower-gap":     seqpat.LowerGap,
	"upper-gap":     seqpat.UpperGap,
	"lower-span":    seqpat.LowerSpan,
	"upper-span":    seqpat.UpperSpan,
	"lower-average": seqpat.LowerAverage,
	"upper-average": seqpat.UpperAverage,
	"lower-median":  seqpat.LowerMedian,
	"upper-median":  seqpat.UpperMedian,
}

// ParseKind resolves a config file's string constraint kind (e.g.
// "upper-gap") to its seqpat.ConstraintKind.
func ParseKind(s string) (seqpat.ConstraintKind, error) {
	kind, ok := kindByName[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("config: unknown constraint kind %q", s)
	}
	return kind, nil
}
