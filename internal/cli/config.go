package cli

import (
	"errors"
	"fmt"
	"runtime"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/katalvlaran/rehexed/builder"
)

// ErrInvalidConfig is returned for config values out of range and for
// unknown keys in a config file.
var ErrInvalidConfig = errors.New("cli: invalid config")

// Config is the file form of every command's settings. Flags override it.
//
//	[mesh]
//	base = "icosahedron"
//	subdivisions = 3
//	shuffle_seed = 0       # 0 keeps the generated order
//
//	[build]
//	workers = 8
//	strict = false
//	min_degree = 0         # 0 picks the base solid's degree
//
//	[log]
//	level = "info"
type Config struct {
	Mesh  MeshConfig  `toml:"mesh"`
	Build BuildConfig `toml:"build"`
	Log   LogConfig   `toml:"log"`
}

// MeshConfig selects the input mesh.
type MeshConfig struct {
	Base         string `toml:"base"`
	Subdivisions int    `toml:"subdivisions"`
	ShuffleSeed  int64  `toml:"shuffle_seed"`
}

// BuildConfig maps onto rehex options.
type BuildConfig struct {
	Workers   int  `toml:"workers"`
	Strict    bool `toml:"strict"`
	MinDegree int  `toml:"min_degree"`
}

// LogConfig sets the log level: debug, info, warn or error.
type LogConfig struct {
	Level string `toml:"level"`
}

// DefaultConfig returns the settings used when no file is given.
func DefaultConfig() Config {
	return Config{
		Mesh:  MeshConfig{Base: "icosahedron", Subdivisions: 3},
		Build: BuildConfig{Workers: runtime.NumCPU()},
		Log:   LogConfig{Level: "info"},
	}
}

// LoadConfig reads path over DefaultConfig. Keys the file sets replace the
// defaults; unknown keys are an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("%w: %s: unknown keys %s",
			ErrInvalidConfig, path, strings.Join(keys, ", "))
	}
	return cfg, cfg.Validate()
}

// Validate checks every value.
func (c Config) Validate() error {
	if _, err := parseBase(c.Mesh.Base); err != nil {
		return err
	}
	if c.Mesh.Subdivisions < 0 {
		return fmt.Errorf("%w: subdivisions %d < 0", ErrInvalidConfig, c.Mesh.Subdivisions)
	}
	if c.Build.Workers < 1 {
		return fmt.Errorf("%w: workers %d < 1", ErrInvalidConfig, c.Build.Workers)
	}
	if d := c.Build.MinDegree; d != 0 && (d < 3 || d > 6) {
		return fmt.Errorf("%w: min_degree %d not in 3..6", ErrInvalidConfig, d)
	}
	if _, err := log.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	return nil
}

// baseDegrees is the vertex degree of each triangulated solid, which is the
// smallest ring its subdivisions contain.
var baseDegrees = map[builder.PlatonicName]int{
	builder.Tetrahedron: 3,
	builder.Octahedron:  4,
	builder.Icosahedron: 5,
}

// parseBase accepts a triangulated solid's name in any case.
func parseBase(s string) (builder.PlatonicName, error) {
	for name := range baseDegrees {
		if strings.EqualFold(name.String(), s) {
			return name, nil
		}
	}
	return 0, fmt.Errorf("%w: base %q is not tetrahedron, octahedron or icosahedron", ErrInvalidConfig, s)
}

// minDegree resolves min_degree 0 to the base solid's degree.
func (c Config) minDegree(base builder.PlatonicName) int {
	if c.Build.MinDegree != 0 {
		return c.Build.MinDegree
	}
	return baseDegrees[base]
}
