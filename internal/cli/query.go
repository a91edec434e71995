package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rehexed/tilegraph"
)

// neighborsCommand prints the canonical ring of each named vertex.
func (c *CLI) neighborsCommand() *cobra.Command {
	var flags meshFlags

	cmd := &cobra.Command{
		Use:   "neighbors VERTEX...",
		Short: "Print the neighbour ring of vertices, smallest neighbour first",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vertices, err := parseVertices(args)
			if err != nil {
				return err
			}
			tg, err := c.tileGraph(cmd, &flags)
			if err != nil {
				return err
			}
			for _, v := range vertices {
				t, err := tg.Tile(v)
				if err != nil {
					return err
				}
				fmt.Fprintf(c.out, "%d: %v\n", v, t.Canonical().Neighbors())
			}
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

// ringCommand prints the tiles at an exact distance from a vertex.
func (c *CLI) ringCommand() *cobra.Command {
	var (
		flags  meshFlags
		radius int
	)

	cmd := &cobra.Command{
		Use:   "ring VERTEX",
		Short: "Print the tiles exactly --radius steps from a vertex",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			vertices, err := parseVertices(args)
			if err != nil {
				return err
			}
			tg, err := c.tileGraph(cmd, &flags)
			if err != nil {
				return err
			}
			ring, err := tg.Ring(vertices[0], radius)
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "%d tiles at %d from %d: %v\n", len(ring), radius, vertices[0], ring)
			return nil
		},
	}
	flags.register(cmd)
	cmd.Flags().IntVarP(&radius, "radius", "r", 1, "distance in steps")
	return cmd
}

// pathCommand prints a shortest path between two vertices.
func (c *CLI) pathCommand() *cobra.Command {
	var flags meshFlags

	cmd := &cobra.Command{
		Use:   "path FROM TO",
		Short: "Print a path with the fewest steps between two vertices",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			vertices, err := parseVertices(args)
			if err != nil {
				return err
			}
			tg, err := c.tileGraph(cmd, &flags)
			if err != nil {
				return err
			}
			p, err := tg.ShortestPath(vertices[0], vertices[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(c.out, "%d steps: %v\n", len(p)-1, p)
			return nil
		},
	}
	flags.register(cmd)
	return cmd
}

// tileGraph resolves the config, builds the tiles and wraps them.
func (c *CLI) tileGraph(cmd *cobra.Command, flags *meshFlags) (*tilegraph.TileGraph, error) {
	cfg, err := flags.resolve(cmd, c.cfg)
	if err != nil {
		return nil, err
	}
	_, tiles, err := buildTiles(cmd.Context(), cfg)
	if err != nil {
		return nil, err
	}
	return tilegraph.New(tiles)
}

func parseVertices(args []string) ([]uint32, error) {
	out := make([]uint32, len(args))
	for i, a := range args {
		v, err := strconv.ParseUint(a, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("vertex %q: %w", a, err)
		}
		out[i] = uint32(v)
	}
	return out, nil
}
