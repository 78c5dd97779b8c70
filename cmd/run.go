package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/admissibility-sim/admissibility-sim/engine"
	"github.com/admissibility-sim/admissibility-sim/engine/scenario"
	"github.com/admissibility-sim/admissibility-sim/engine/trace"
)

var (
	scenarioPath string // YAML scenario file
	reportJSON   string // optional floor-report output path
	traceLevel   string // decision-trace verbosity

	// Engine tunable overrides; negative values mean "use scenario/default".
	relaxEvery    int
	iterationCap  int
	maxPathLength int
	maxPathCount  int
	slackMargin   float64
)

// runCmd executes floor estimation for a scenario.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run floor estimation over a scenario's commitment stream",
	Run: func(cmd *cobra.Command, args []string) {
		if scenarioPath == "" {
			logrus.Fatalf("Scenario file not provided. Exiting.")
		}
		if !trace.IsValidLevel(traceLevel) {
			logrus.Fatalf("Invalid trace level %q", traceLevel)
		}

		spec, err := scenario.Load(scenarioPath)
		if err != nil {
			logrus.Fatalf("unable to read scenario: %v", err)
		}
		net, stream, cfg, err := spec.Build()
		if err != nil {
			logrus.Fatalf("invalid scenario: %v", err)
		}
		cfg = applyOverrides(cfg)

		logrus.Infof("Starting floor estimation: %d nodes, %d edges, %d commitments, relax every %d",
			len(net.Nodes()), len(net.Edges()), len(stream), cfg.RelaxEvery)

		estimator, err := engine.NewFloorEstimator(net, cfg)
		if err != nil {
			logrus.Fatalf("invalid configuration: %v", err)
		}

		var rt *trace.RunTrace
		if trace.Level(traceLevel) == trace.LevelDecisions {
			rt = trace.NewRunTrace(trace.LevelDecisions)
			estimator.AttachTrace(rt)
		}

		result, err := estimator.Run(stream)
		if err != nil {
			logrus.Fatalf("floor estimation failed: %v", err)
		}

		for _, report := range result.Reports {
			logrus.Info(report.String())
		}
		estimator.Metrics().Print()

		if rt != nil {
			printTraceSummary(trace.Summarize(rt))
		}
		if reportJSON != "" {
			f, err := os.Create(reportJSON)
			if err != nil {
				logrus.Fatalf("unable to create report file: %v", err)
			}
			defer f.Close()
			if err := result.WriteJSON(f); err != nil {
				logrus.Fatalf("unable to write report: %v", err)
			}
			logrus.Infof("Floor reports written to %s", reportJSON)
		}

		logrus.Info("Floor estimation complete.")
	},
}

// applyOverrides layers non-negative CLI flag values over the scenario config.
func applyOverrides(cfg engine.Config) engine.Config {
	if relaxEvery > 0 {
		cfg.RelaxEvery = relaxEvery
	}
	if iterationCap > 0 {
		cfg.IterationCap = iterationCap
	}
	if maxPathLength > 0 {
		cfg.MaxPathLength = maxPathLength
	}
	if maxPathCount > 0 {
		cfg.MaxPathCount = maxPathCount
	}
	if slackMargin > 0 {
		cfg.SlackMargin = slackMargin
	}
	return cfg
}

func printTraceSummary(s *trace.Summary) {
	logrus.Infof("trace: %d decisions (%d admitted, %d rejected), mean route cost %.3f, mean headroom %.3f",
		s.TotalDecisions, s.AdmittedCount, s.RejectedCount, s.MeanRouteCost, s.MeanMinHeadroom)
	logrus.Infof("trace: %d relaxation rounds (%d converged), %d reroutes, saved %.3f (mean %.3f, stddev %.3f)",
		s.RelaxationRounds, s.ConvergedRounds, s.TotalRerouted, s.TotalCostSaved, s.MeanCostSaved, s.StdDevCostSaved)
}

// init sets up CLI flags and attaches `run` to `root`
func init() {
	runCmd.Flags().StringVar(&scenarioPath, "scenario", "", "YAML scenario file (required)")
	runCmd.Flags().StringVar(&reportJSON, "report-json", "", "Write floor reports to this JSON file")
	runCmd.Flags().StringVar(&traceLevel, "trace", "none", "Decision trace level (none, decisions)")

	runCmd.Flags().IntVar(&relaxEvery, "relax-every", 0, "Relaxation interval in admissions (0 = scenario/default)")
	runCmd.Flags().IntVar(&iterationCap, "iteration-cap", 0, "Max coordinate-descent passes per relaxation (0 = scenario/default)")
	runCmd.Flags().IntVar(&maxPathLength, "max-path-length", 0, "Max candidate path length in edges (0 = scenario/default)")
	runCmd.Flags().IntVar(&maxPathCount, "max-path-count", 0, "Max candidate paths per admission (0 = scenario/default)")
	runCmd.Flags().Float64Var(&slackMargin, "slack-margin", 0, "Admissibility slack margin (0 = scenario/default)")

	rootCmd.AddCommand(runCmd)
}
