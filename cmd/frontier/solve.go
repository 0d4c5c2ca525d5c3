package main

import (
	"errors"
	"fmt"
	"slices"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/frontier/graphio"
	"github.com/katalvlaran/frontier/oracle"
	"github.com/katalvlaran/frontier/sssp"
)

// errMismatch reports a disagreement between the engine and the oracle.
var errMismatch = errors.New("distances differ from Bellman-Ford reference")

func newSolveCommand(input *Input) *cobra.Command {
	var source int
	var verify bool

	cmd := &cobra.Command{
		Use:   "solve FILE",
		Short: "Solve a YAML or JSON graph document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := graphio.ReadFile(args[0])
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("source") {
				doc.Source = source
			}
			g, err := doc.Graph()
			if err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			log := input.logger.WithFields(logrus.Fields{
				"file":     args[0],
				"vertices": g.VertexCount(),
				"edges":    g.EdgeCount(),
				"source":   doc.Source,
			})

			var st sssp.Stats
			dist, err := sssp.ShortestPath(g, doc.Source, append(input.EngineOptions(), sssp.WithStats(&st))...)
			if err != nil {
				return err
			}
			log.WithFields(statsFields(st)).Debug("solved")

			if verify {
				ref, err := oracle.BellmanFord(g, doc.Source)
				if err != nil {
					return err
				}
				if i := mismatch(dist, ref); i >= 0 {
					return fmt.Errorf("vertex %d: got %d, want %d: %w", i, dist[i], ref[i], errMismatch)
				}
				log.Info("verified against Bellman-Ford")
			}

			return graphio.WriteDistances(cmd.OutOrStdout(), input.format, doc.Source, dist)
		},
	}
	cmd.Flags().IntVarP(&source, "source", "s", 0, "source vertex (overrides the document)")
	cmd.Flags().BoolVar(&verify, "verify", false, "cross-check the result with Bellman-Ford")

	return cmd
}

// mismatch returns the first index where a and b differ, or -1.
func mismatch(a, b []int64) int {
	if slices.Equal(a, b) {
		return -1
	}
	for i := range a {
		if i >= len(b) || a[i] != b[i] {
			return i
		}
	}

	return len(a)
}
