package cmd

import (
	"fmt"
	"math"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/admissibility-sim/admissibility-sim/engine"
	"github.com/admissibility-sim/admissibility-sim/engine/scenario"
)

var distanceScenarioPath string // YAML scenario file for the distance command

// distanceCmd prints the pairwise distance matrix (minimum admissible
// enforcement cost) of a scenario's unloaded network and verifies the metric
// axioms.
var distanceCmd = &cobra.Command{
	Use:   "distance",
	Short: "Print the distance matrix and verify metric axioms",
	Run: func(cmd *cobra.Command, args []string) {
		if distanceScenarioPath == "" {
			logrus.Fatalf("Scenario file not provided. Exiting.")
		}

		spec, err := scenario.Load(distanceScenarioPath)
		if err != nil {
			logrus.Fatalf("unable to read scenario: %v", err)
		}
		net, _, cfg, err := spec.Build()
		if err != nil {
			logrus.Fatalf("invalid scenario: %v", err)
		}

		admitter, err := engine.NewAdmissionController(net, cfg)
		if err != nil {
			logrus.Fatalf("invalid configuration: %v", err)
		}

		matrix, err := admitter.DistanceMatrix()
		if err != nil {
			logrus.Fatalf("distance matrix failed: %v", err)
		}
		printMatrix(net.Nodes(), matrix)

		violations, err := admitter.VerifyGeometry()
		if err != nil {
			logrus.Fatalf("geometry verification failed: %v", err)
		}
		if len(violations) == 0 {
			fmt.Println("All metric axioms satisfied (identity, symmetry, triangle inequality).")
			return
		}
		fmt.Printf("%d metric axiom violations:\n", len(violations))
		for _, v := range violations {
			fmt.Printf("  %s\n", v)
		}
	},
}

func printMatrix(nodes []string, matrix map[string]map[string]float64) {
	fmt.Printf("%8s", "")
	for _, v := range nodes {
		fmt.Printf("%10s", v)
	}
	fmt.Println()
	for _, u := range nodes {
		fmt.Printf("%8s", u)
		for _, v := range nodes {
			d := matrix[u][v]
			if math.IsInf(d, 1) {
				fmt.Printf("%10s", "inf")
			} else {
				fmt.Printf("%10.2f", d)
			}
		}
		fmt.Println()
	}
}

// init sets up CLI flags and attaches `distance` to `root`
func init() {
	distanceCmd.Flags().StringVar(&distanceScenarioPath, "scenario", "", "YAML scenario file (required)")
	rootCmd.AddCommand(distanceCmd)
}
