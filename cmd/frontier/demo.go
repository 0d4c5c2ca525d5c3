package main

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/frontier/digraph"
	"github.com/katalvlaran/frontier/graphio"
	"github.com/katalvlaran/frontier/sssp"
)

// sampleEdges is the five-vertex reference graph; from 0 it solves to [0, 7, 3, 9, 5].
var sampleEdges = []digraph.Edge{
	{From: 0, To: 1, Weight: 10},
	{From: 0, To: 2, Weight: 3},
	{From: 1, To: 2, Weight: 1},
	{From: 1, To: 3, Weight: 2},
	{From: 2, To: 1, Weight: 4},
	{From: 2, To: 3, Weight: 8},
	{From: 2, To: 4, Weight: 2},
	{From: 3, To: 4, Weight: 7},
	{From: 4, To: 3, Weight: 9},
}

func newDemoCommand(input *Input) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Solve the built-in five-vertex sample graph from vertex 0",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			g, err := digraph.FromEdges(5, sampleEdges)
			if err != nil {
				return err
			}

			var st sssp.Stats
			dist, err := sssp.ShortestPath(g, 0, append(input.EngineOptions(), sssp.WithStats(&st))...)
			if err != nil {
				return err
			}
			input.logger.WithFields(statsFields(st)).Debug("demo solved")

			return graphio.WriteDistances(cmd.OutOrStdout(), input.format, 0, dist)
		},
	}
}
