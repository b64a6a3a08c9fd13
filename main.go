// Command born-again loads a random forest from the tree-ensemble text
// format, runs the born-again optimization engine over it, and writes out
// the depth-optimal reborn tree in the same format.
package main

import (
	"os"
	"time"

	"github.com/pkg/profile"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/pedrosbmartins/born-again/bornagain"
	"github.com/pedrosbmartins/born-again/ensemble"
	"github.com/pedrosbmartins/born-again/featurespace"
	"github.com/pedrosbmartins/born-again/format"
)

var (
	inputPath   string
	outputPath  string
	datasetName string
	maxCells    int
	cpuProfile  bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "born-again",
		Short: "Reconstruct a minimum-depth decision tree equivalent to a random forest",
		RunE:  run,
	}

	flags := cmd.Flags()
	flags.StringVar(&inputPath, "input", "", "path to the input forest (tree-ensemble text format)")
	flags.StringVar(&outputPath, "output", "", "path to write the reborn tree")
	flags.StringVar(&datasetName, "dataset-name", "", "DATASET_NAME header written to the output file")
	flags.IntVar(&maxCells, "max-cells", featurespace.DefaultMaxCells, "reject forests whose induced grid exceeds this many cells")
	flags.BoolVar(&cpuProfile, "profile", false, "enable CPU profiling for the duration of the run")

	cmd.MarkFlagRequired("input")
	cmd.MarkFlagRequired("output")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	log := newLogger()

	if cpuProfile {
		defer profile.Start(profile.CPUProfile).Stop()
	}

	in, err := os.Open(inputPath)
	if err != nil {
		log.WithError(err).Fatal("born-again: could not open input")
	}
	defer in.Close()

	forest, err := format.Decode(in)
	if err != nil {
		log.WithError(err).Fatal("born-again: could not parse input forest")
	}

	fs, err := featurespace.New(forest, maxCells)
	if err != nil {
		log.WithError(err).Fatal("born-again: could not build feature space")
	}

	log.WithFields(logrus.Fields{
		"nb_cells":         fs.NbCells,
		"possible_regions": fs.PossibleRegions(),
	}).Info("born-again: feature space built")

	start := time.Now()

	opt := bornagain.NewOptimizer(fs)
	opt.Optimize(0, fs.NbCells-1)

	tree, err := bornagain.Materialize(fs, opt)
	if err != nil {
		log.WithError(err).Fatal("born-again: materialization failed")
	}

	elapsed := time.Since(start)

	out, err := os.Create(outputPath)
	if err != nil {
		log.WithError(err).Fatal("born-again: could not create output")
	}
	defer out.Close()

	outForest := forest
	outForest.Trees = []ensemble.Tree{tree}

	if err := format.Encode(out, outForest, datasetName, "BA"); err != nil {
		log.WithError(err).Fatal("born-again: could not write output")
	}

	log.WithFields(logrus.Fields{
		"input":    inputPath,
		"output":   outputPath,
		"depth":    tree.Depth(),
		"nb_nodes": len(tree.Nodes),
		"elapsed":  elapsed,
	}).Info("born-again: reborn tree written")

	return nil
}
