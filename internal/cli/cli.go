// Package cli implements the rehexed command-line interface.
//
// Every command generates a mesh (a subdivided Platonic solid, optionally
// shuffled), builds its per-vertex rings with rehex and reports on them.
// Settings come from an optional TOML file (--config) and are overridden by
// flags. --verbose (-v) turns on debug logging, including rehex's own phase
// lines. The logger travels in the command's context.
package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/rehexed/builder"
	"github.com/katalvlaran/rehexed/rehex"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	out        io.Writer
	configPath string
	verbose    bool
	cfg        Config
}

// New creates a CLI that prints results to out and logs to logw.
func New(out, logw io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(logw, level),
		out:    out,
		cfg:    DefaultConfig(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   "rehexed",
		Short: "rehexed orders the neighbours of every vertex of a triangle mesh",
		Long: `rehexed turns the triangle list of a subdivided sphere into one ring of
neighbours per vertex, in winding order: the hexagons and twelve pentagons of
the dual tiling.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.setup,
	}

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "TOML config file")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.buildCommand())
	root.AddCommand(c.neighborsCommand())
	root.AddCommand(c.ringCommand())
	root.AddCommand(c.pathCommand())
	return root
}

// setup loads the config file, settles the log level and attaches the
// logger to the command context.
func (c *CLI) setup(cmd *cobra.Command, _ []string) error {
	if c.configPath != "" {
		cfg, err := LoadConfig(c.configPath)
		if err != nil {
			return err
		}
		c.cfg = cfg
	}

	level, err := log.ParseLevel(c.cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if c.verbose {
		level = LogDebug
	}
	c.SetLogLevel(level)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	cmd.SetContext(withLogger(ctx, c.Logger))
	return nil
}

// meshFlags are shared by every command that builds tiles.
type meshFlags struct {
	base         string
	subdivisions int
	shuffleSeed  int64
	workers      int
	strict       bool
	minDegree    int
}

func (f *meshFlags) register(cmd *cobra.Command) {
	def := DefaultConfig()
	cmd.Flags().StringVar(&f.base, "base", def.Mesh.Base, "base solid: tetrahedron, octahedron, icosahedron")
	cmd.Flags().IntVarP(&f.subdivisions, "subdivisions", "n", def.Mesh.Subdivisions, "edge splits: each edge becomes n+1 segments")
	cmd.Flags().Int64Var(&f.shuffleSeed, "shuffle-seed", 0, "shuffle triangles with this seed (0: keep order)")
	cmd.Flags().IntVarP(&f.workers, "workers", "w", def.Build.Workers, "goroutines for the adjacency scan")
	cmd.Flags().BoolVar(&f.strict, "strict", false, "check facts that arrive after a ring closed")
	cmd.Flags().IntVar(&f.minDegree, "min-degree", 0, "smallest ring accepted (0: degree of the base solid)")
}

// resolve returns the CLI config with every flag the user set applied.
func (f *meshFlags) resolve(cmd *cobra.Command, cfg Config) (Config, error) {
	flags := cmd.Flags()
	if flags.Changed("base") {
		cfg.Mesh.Base = f.base
	}
	if flags.Changed("subdivisions") {
		cfg.Mesh.Subdivisions = f.subdivisions
	}
	if flags.Changed("shuffle-seed") {
		cfg.Mesh.ShuffleSeed = f.shuffleSeed
	}
	if flags.Changed("workers") {
		cfg.Build.Workers = f.workers
	}
	if flags.Changed("strict") {
		cfg.Build.Strict = f.strict
	}
	if flags.Changed("min-degree") {
		cfg.Build.MinDegree = f.minDegree
	}
	return cfg, cfg.Validate()
}

// generate produces the mesh described by cfg.
func generate(cfg Config) (builder.Mesh, builder.PlatonicName, error) {
	base, err := parseBase(cfg.Mesh.Base)
	if err != nil {
		return builder.Mesh{}, 0, err
	}
	solid, err := builder.Platonic(base)
	if err != nil {
		return builder.Mesh{}, 0, err
	}
	m, err := builder.Subdivide(solid, cfg.Mesh.Subdivisions+1)
	if err != nil {
		return builder.Mesh{}, 0, err
	}
	if cfg.Mesh.ShuffleSeed != 0 {
		m, err = builder.Shuffle(m, builder.WithSeed(cfg.Mesh.ShuffleSeed))
		if err != nil {
			return builder.Mesh{}, 0, err
		}
	}
	return m, base, nil
}

// buildTiles generates the mesh and runs rehex over it.
func buildTiles(ctx context.Context, cfg Config) (builder.Mesh, []rehex.Tile, error) {
	logger := loggerFromContext(ctx)

	m, base, err := generate(cfg)
	if err != nil {
		return builder.Mesh{}, nil, err
	}
	logger.Debug("generated mesh",
		"base", base, "subdivisions", cfg.Mesh.Subdivisions,
		"vertices", m.VertexCount, "triangles", m.TriangleCount(),
		"shuffled", cfg.Mesh.ShuffleSeed != 0)

	opts := []rehex.Option{
		rehex.WithContext(ctx),
		rehex.WithLogger(logger),
		rehex.WithWorkers(cfg.Build.Workers),
		rehex.WithMinDegree(cfg.minDegree(base)),
	}
	if cfg.Build.Strict {
		opts = append(opts, rehex.WithStrict())
	}
	tiles, err := rehex.BuildAdjacency(m.Triangles, m.VertexCount, opts...)
	if err != nil {
		return builder.Mesh{}, nil, fmt.Errorf("build adjacency: %w", err)
	}
	return m, tiles, nil
}
