package main

import (
	"fmt"
	"maps"
	"slices"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/frontier/graphio"
	"github.com/katalvlaran/frontier/sssp"
)

// envFlags maps dotenv keys to the persistent flags they default.
var envFlags = map[string]string{
	"FRONTIER_WINDOW":       "window",
	"FRONTIER_ROUNDS":       "rounds",
	"FRONTIER_NO_REDUCTION": "no-reduction",
	"FRONTIER_OUTPUT":       "output",
}

func createRootCommand(input *Input, version string) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:               "frontier",
		Short:             "Single-source shortest paths with frontier reduction",
		Version:           version,
		SilenceUsage:      true,
		PersistentPreRunE: setup(input),
	}
	addEngineFlags(rootCmd.PersistentFlags(), input)

	rootCmd.AddCommand(
		newDemoCommand(input),
		newSolveCommand(input),
		newRandomCommand(input),
	)

	return rootCmd
}

func addEngineFlags(flags *pflag.FlagSet, input *Input) {
	flags.BoolVarP(&input.verbose, "verbose", "v", false, "verbose output")
	flags.Int64Var(&input.window, "window", sssp.DefaultWindow, "frontier reduction window W")
	flags.IntVar(&input.rounds, "rounds", 0, "reduction period and round cap k (0 = max(2, round(log2(V+1))))")
	flags.BoolVar(&input.noReduction, "no-reduction", false, "disable frontier reduction")
	flags.StringVarP(&input.output, "output", "o", string(graphio.OutputText), "output format: text, json or yaml")
	flags.StringVar(&input.envFile, "env-file", "", "dotenv file providing FRONTIER_* flag defaults")
}

// setup applies dotenv defaults, then configures logging and output.
func setup(input *Input) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, _ []string) error {
		if input.envFile != "" {
			if err := applyEnvFile(cmd.Flags(), input.envFile); err != nil {
				return err
			}
		}

		input.logger = logrus.New()
		input.logger.SetOutput(cmd.ErrOrStderr())
		input.logger.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
		if input.verbose {
			input.logger.SetLevel(logrus.DebugLevel)
		}

		format, err := graphio.ParseOutputFormat(input.output)
		if err != nil {
			return err
		}
		input.format = format

		return nil
	}
}

// applyEnvFile sets every flag named in the file that was not given
// explicitly. Keys are applied in sorted order.
func applyEnvFile(flags *pflag.FlagSet, path string) error {
	values, err := godotenv.Read(path)
	if err != nil {
		return fmt.Errorf("env-file %s: %w", path, err)
	}
	for _, key := range slices.Sorted(maps.Keys(envFlags)) {
		name := envFlags[key]
		val, ok := values[key]
		if !ok || flags.Lookup(name) == nil || flags.Changed(name) {
			continue
		}
		if err := flags.Set(name, val); err != nil {
			return fmt.Errorf("env-file %s: %s=%q: %w", path, key, val, err)
		}
	}

	return nil
}
