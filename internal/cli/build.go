package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rehexed/tilegraph"
)

// summary is what the build command reports.
type summary struct {
	Vertices   int
	Triangles  int
	Pentagons  int
	Hexagons   int
	Edges      int
	Euler      int
	Components int
	Elapsed    time.Duration
}

// buildCommand creates the build command.
func (c *CLI) buildCommand() *cobra.Command {
	var flags meshFlags

	cmd := &cobra.Command{
		Use:   "build",
		Short: "Build the tiling of a subdivided solid and print a summary",
		Long: `Build generates the mesh, orders the neighbours of every vertex and
prints counts that let the result be checked at a glance: an icosphere of any
level has 12 pentagons, one component and Euler characteristic 2.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := flags.resolve(cmd, c.cfg)
			if err != nil {
				return err
			}
			s, err := runBuild(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			printSummary(c, s)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

func runBuild(ctx context.Context, cfg Config) (summary, error) {
	prog := newProgress(loggerFromContext(ctx))

	m, tiles, err := buildTiles(ctx, cfg)
	if err != nil {
		return summary{}, err
	}
	elapsed := prog.elapsed()

	tg, err := tilegraph.New(tiles)
	if err != nil {
		return summary{}, fmt.Errorf("check tiles: %w", err)
	}
	pentagons := len(tg.Pentagons())
	hexagons := 0
	for _, t := range tiles {
		if t.Len() == 6 {
			hexagons++
		}
	}
	prog.done(fmt.Sprintf("Built %d tiles", len(tiles)))

	return summary{
		Vertices:   m.VertexCount,
		Triangles:  m.TriangleCount(),
		Pentagons:  pentagons,
		Hexagons:   hexagons,
		Edges:      tg.EdgeCount(),
		Euler:      tg.EulerCharacteristic(),
		Components: len(tg.Components()),
		Elapsed:    elapsed,
	}, nil
}

func printSummary(c *CLI, s summary) {
	rows := []struct {
		key string
		val any
	}{
		{"vertices", s.Vertices},
		{"triangles", s.Triangles},
		{"pentagons", s.Pentagons},
		{"hexagons", s.Hexagons},
		{"edges", s.Edges},
		{"euler", s.Euler},
		{"components", s.Components},
		{"elapsed", s.Elapsed},
	}
	for _, r := range rows {
		fmt.Fprintf(c.out, "%-11s %v\n", r.key, r.val)
	}
}
