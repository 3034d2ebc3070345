package engine

import (
	"runtime"

	"github.com/spf13/afero"
	"github.com/wildfunctions/symbolics/pkg/errwrap"
	"github.com/wildfunctions/symbolics/pkg/numeric"
	"github.com/wildfunctions/symbolics/pkg/pool"
	"github.com/wildfunctions/symbolics/pkg/property"
	"gopkg.in/yaml.v2"
)

// Config holds all parameters for a property run or a batch.
type Config struct {
	Numeric  string   `yaml:"numeric" json:"numeric"` // "rational" or "float"
	Pool     string   `yaml:"pool" json:"pool"`
	Checks   []string `yaml:"checks" json:"checks"`
	Trees    int      `yaml:"trees" json:"trees"`
	MaxDepth int      `yaml:"maxdepth" json:"maxdepth"`
	Seed     int64    `yaml:"seed" json:"seed"`
	Workers  int      `yaml:"workers" json:"workers"`
	Format   string   `yaml:"format" json:"format"` // "text" or "json"
	Verbose  bool     `yaml:"verbose" json:"verbose"`

	// Logf is where progress messages go. It may be nil.
	Logf func(format string, v ...interface{}) `yaml:"-" json:"-"`
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Numeric:  string(numeric.RationalFacade),
		Pool:     "conservative",
		Checks:   property.Names(),
		Trees:    500,
		MaxDepth: 4,
		Seed:     0, // 0 = random
		Workers:  runtime.NumCPU(),
		Format:   "text",
		Verbose:  false,
	}
}

// LoadConfig reads a YAML file from fs and overlays it on the defaults. Keys
// the file does not mention keep their default value, and unknown keys are an
// error.
func LoadConfig(fs afero.Fs, path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return cfg, errwrap.Wrapf(err, "can't read config %s", path)
	}
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return cfg, errwrap.Wrapf(err, "can't parse config %s", path)
	}
	return cfg, nil
}

// Validate reports every problem with the config at once.
func (obj *Config) Validate() error {
	var reterr error
	if _, err := numeric.Lookup(obj.Numeric); err != nil {
		reterr = errwrap.Append(reterr, errwrap.Wrapf(ErrConfig, "%v", err))
	}
	if _, err := pool.Get(obj.Pool); err != nil {
		reterr = errwrap.Append(reterr, errwrap.Wrapf(ErrConfig, "%v", err))
	}
	known := property.Checks[float64]()
	for _, name := range obj.Checks {
		if _, exists := known[name]; !exists {
			reterr = errwrap.Append(reterr, errwrap.Wrapf(ErrConfig, "unknown check %s (available: %v)", name, property.Names()))
		}
	}
	if obj.Trees <= 0 {
		reterr = errwrap.Append(reterr, errwrap.Wrapf(ErrConfig, "trees must be positive, got %d", obj.Trees))
	}
	if obj.MaxDepth <= 0 {
		reterr = errwrap.Append(reterr, errwrap.Wrapf(ErrConfig, "maxdepth must be positive, got %d", obj.MaxDepth))
	}
	if obj.Workers <= 0 {
		reterr = errwrap.Append(reterr, errwrap.Wrapf(ErrConfig, "workers must be positive, got %d", obj.Workers))
	}
	if obj.Format != "text" && obj.Format != "json" {
		reterr = errwrap.Append(reterr, errwrap.Wrapf(ErrConfig, "unknown format %s", obj.Format))
	}
	return reterr
}
