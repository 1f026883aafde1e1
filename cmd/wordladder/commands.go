package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func (a *app) pathCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "path W1 W2",
		Short: "Print the shortest ladder between two words",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := a.proc.ShortestPath(args[0], args[1])
			if err != nil {
				return err
			}
			if len(path) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no ladder")
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(path, " -> "))

			return nil
		},
	}
}

func (a *app) distanceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "distance W1 W2",
		Short: "Print the number of steps between two words",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := a.proc.ShortestDistance(args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), d)

			return nil
		},
	}
}

func (a *app) neighborsCmd() *cobra.Command {
	var depth int
	cmd := &cobra.Command{
		Use:   "neighbors W",
		Short: "List words within --depth steps of W",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ws, err := a.proc.Neighborhood(cmd.Context(), args[0], depth)
			if err != nil {
				return err
			}
			for _, w := range ws {
				fmt.Fprintln(cmd.OutOrStdout(), w)
			}

			return nil
		},
	}
	cmd.Flags().IntVarP(&depth, "depth", "d", 1, "maximum steps; 0 for no limit")

	return cmd
}

func (a *app) islandsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "islands",
		Short: "List groups of mutually reachable words",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			comps, err := a.proc.Components(cmd.Context())
			if err != nil {
				return err
			}
			for _, comp := range comps {
				fmt.Fprintf(cmd.OutOrStdout(), "%d: %s\n", len(comp), strings.Join(comp, " "))
			}

			return nil
		},
	}
}

func (a *app) statsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print graph sizes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			comps, err := a.proc.Components(cmd.Context())
			if err != nil {
				return err
			}
			st := a.proc.Stats()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "words: %d\n", st.Vertices)
			fmt.Fprintf(out, "edges: %d\n", st.Edges)
			fmt.Fprintf(out, "islands: %d\n", len(comps))
			fmt.Fprintf(out, "generation: %d\n", st.Generation)

			return nil
		},
	}
}
