package main

import (
	"fmt"
	"math/rand"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/frontier/digraph"
	"github.com/katalvlaran/frontier/graphio"
	"github.com/katalvlaran/frontier/oracle"
	"github.com/katalvlaran/frontier/sssp"
)

type randomOptions struct {
	vertices  int
	prob      float64
	extra     int
	maxWeight int64
	seed      int64
	source    int
	connected bool
	save      string
	quiet     bool
}

func newRandomCommand(input *Input) *cobra.Command {
	ro := &randomOptions{}

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Generate a seeded random graph and solve it with and without reduction",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runRandom(cmd, input, ro)
		},
	}
	cmd.Flags().IntVar(&ro.vertices, "vertices", 1000, "number of vertices")
	cmd.Flags().Float64Var(&ro.prob, "prob", 0.01, "arc probability per ordered pair")
	cmd.Flags().BoolVar(&ro.connected, "connected", false, "build a random out-tree from vertex 0 plus --extra arcs instead")
	cmd.Flags().IntVar(&ro.extra, "extra", 0, "extra arcs for --connected (default 4×vertices)")
	cmd.Flags().Int64Var(&ro.maxWeight, "max-weight", 100, "maximum arc weight")
	cmd.Flags().Int64Var(&ro.seed, "seed", 1, "random seed")
	cmd.Flags().IntVarP(&ro.source, "source", "s", 0, "source vertex")
	cmd.Flags().StringVar(&ro.save, "save", "", "write the generated graph to this .yaml or .json file")
	cmd.Flags().BoolVarP(&ro.quiet, "quiet", "q", false, "do not print the distances")

	return cmd
}

func runRandom(cmd *cobra.Command, input *Input, ro *randomOptions) error {
	rng := rand.New(rand.NewSource(ro.seed))

	var g *digraph.Graph
	var err error
	if ro.connected {
		extra := ro.extra
		if extra == 0 {
			extra = 4 * ro.vertices
		}
		g, err = digraph.RandomConnected(ro.vertices, extra, ro.maxWeight, rng)
	} else {
		g, err = digraph.RandomSparse(ro.vertices, ro.prob, ro.maxWeight, rng)
	}
	if err != nil {
		return err
	}

	log := input.logger.WithFields(logrus.Fields{
		"vertices": g.VertexCount(),
		"edges":    g.EdgeCount(),
		"seed":     ro.seed,
	})
	if ro.save != "" {
		if err = graphio.WriteFile(ro.save, graphio.FromGraph(g, ro.source)); err != nil {
			return err
		}
		log.WithField("path", ro.save).Info("graph saved")
	}

	var withStats, plainStats sssp.Stats
	dist, err := sssp.ShortestPath(g, ro.source, append(input.EngineOptions(), sssp.WithStats(&withStats))...)
	if err != nil {
		return err
	}
	plain, err := sssp.ShortestPath(g, ro.source, sssp.WithoutReduction(), sssp.WithStats(&plainStats))
	if err != nil {
		return err
	}
	if i := mismatch(dist, plain); i >= 0 {
		return fmt.Errorf("vertex %d: reduction gave %d, plain gave %d: %w", i, dist[i], plain[i], errMismatch)
	}

	hops, err := oracle.Hops(cmd.Context(), g, ro.source)
	if err != nil {
		return err
	}
	reachable := 0
	for _, h := range hops {
		if h != oracle.Unreached {
			reachable++
		}
	}
	if reachable != withStats.Finalized {
		return fmt.Errorf("%d vertices reachable, %d finalized: %w", reachable, withStats.Finalized, errMismatch)
	}

	log = log.WithField("reachable", reachable)
	log.WithFields(statsFields(withStats)).Info("configured run")
	log.WithFields(statsFields(plainStats)).Info("plain run")

	if ro.quiet {
		return nil
	}

	return graphio.WriteDistances(cmd.OutOrStdout(), input.format, ro.source, dist)
}
