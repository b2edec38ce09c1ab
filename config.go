package census

import (
	"strings"

	"github.com/magiconair/properties"
	"github.com/pkg/errors"
)

// Config holds the settings shared by the charts. It is read from a properties file, for example:
//
//	census.target.column = income
//	census.target.label = >50K
//	census.output.dir = figures
//	census.output.format = svg
//	census.distribution.columns = capital-gain,capital-loss
//	census.cache.size = 16
//	census.naive.beta = 0.5
type Config struct {
	TargetColumn        string
	TargetLabel         string
	OutputDir           string
	Format              string
	DistributionColumns []string
	CacheSize           int
	Beta                float64
}

// DefaultConfig is the configuration of the census income exercise.
func DefaultConfig() Config {
	return Config{
		TargetColumn:        "income",
		TargetLabel:         ">50K",
		OutputDir:           ".",
		Format:              "png",
		DistributionColumns: []string{"capital-gain", "capital-loss"},
		CacheSize:           16,
		Beta:                0.5,
	}
}

// LoadConfig reads a properties file. Keys that are not set keep their default.
func LoadConfig(path string) (Config, error) {
	p, err := properties.LoadFile(path, properties.UTF8)
	if err != nil {
		return Config{}, errors.Wrapf(err, "loading %s", path)
	}
	return configFrom(p)
}

// ParseConfig reads properties from a string.
func ParseConfig(s string) (Config, error) {
	p, err := properties.LoadString(s)
	if err != nil {
		return Config{}, errors.Wrap(err, "parsing config")
	}
	return configFrom(p)
}

func configFrom(p *properties.Properties) (Config, error) {
	d := DefaultConfig()
	c := Config{
		TargetColumn: p.GetString("census.target.column", d.TargetColumn),
		TargetLabel:  p.GetString("census.target.label", d.TargetLabel),
		OutputDir:    p.GetString("census.output.dir", d.OutputDir),
		Format:       strings.ToLower(p.GetString("census.output.format", d.Format)),
		CacheSize:    p.GetInt("census.cache.size", d.CacheSize),
		Beta:         p.GetFloat64("census.naive.beta", d.Beta),
	}
	for _, column := range strings.Split(p.GetString("census.distribution.columns", strings.Join(d.DistributionColumns, ",")), ",") {
		c.DistributionColumns = append(c.DistributionColumns, strings.TrimSpace(column))
	}
	return c, c.Validate()
}

// Validate checks the settings can be used to draw the charts.
func (c Config) Validate() error {
	if len(c.DistributionColumns) != 2 {
		return errors.Errorf("census.distribution.columns needs two columns, got %d", len(c.DistributionColumns))
	}
	if c.CacheSize <= 0 {
		return errors.Errorf("census.cache.size must be positive, got %d", c.CacheSize)
	}
	if c.Beta <= 0 {
		return errors.Errorf("census.naive.beta must be positive, got %f", c.Beta)
	}
	return nil
}
