package main

import (
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/frontier/graphio"
	"github.com/katalvlaran/frontier/sssp"
)

// Input contains the flag values shared by every command.
type Input struct {
	verbose     bool
	window      int64
	rounds      int
	noReduction bool
	output      string
	envFile     string

	logger *logrus.Logger
	format graphio.OutputFormat
}

// EngineOptions translates the flags into engine options.
func (i *Input) EngineOptions() []sssp.Option {
	opts := []sssp.Option{
		sssp.WithReduction(!i.noReduction),
		sssp.WithWindow(i.window),
		sssp.WithRounds(i.rounds),
	}
	if i.logger != nil {
		opts = append(opts, sssp.WithLogger(i.logger))
	}

	return opts
}

// statsFields flattens engine counters for structured logging.
func statsFields(st sssp.Stats) logrus.Fields {
	return logrus.Fields{
		"pops":        st.Pops,
		"stale":       st.StalePops,
		"finalized":   st.Finalized,
		"relaxations": st.Relaxations,
		"reductions":  st.Reductions,
		"skipped":     st.ReductionsSkipped,
		"rounds":      st.ReductionRounds,
		"peak":        st.PeakFrontier,
	}
}
