// Command soilcolumn computes the whole-column soil composition from the
// two-layer HWSD grids named in a configuration file.
package main

import (
	"log"
	"os"
	"sort"
	"strconv"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/coecms/soil-column/internal/config"
	"github.com/coecms/soil-column/pkg/pipeline/drawer"
	"github.com/coecms/soil-column/pkg/pipeline/measure"
	"github.com/coecms/soil-column/pkg/pipeline/model"
	"github.com/coecms/soil-column/pkg/soil"
)

var (
	configFile string
	fillValue  string
	graphFile  string
	timing     bool
)

var rootCmd = &cobra.Command{
	Use:   "soilcolumn",
	Short: "Process soil composition from HWSD data",
	Long: `soilcolumn reads the topsoil and subsoil HWSD grids named in the
configuration file, repairs implausible subsoil texture cells from the
topsoil, computes the depth-weighted whole-column composition and writes
the result to a single NetCDF file in the input directory.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		fill, err := strconv.ParseFloat(fillValue, 64)
		if err != nil {
			return errors.Wrapf(err, "invalid fill value %q", fillValue)
		}

		cfg, err := config.Load(configFile)
		if err != nil {
			return err
		}

		var opts []model.PipelineOption
		msr := measure.NewDefaultMeasure()
		if timing {
			opts = append(opts, measure.PipelineMeasure(msr))
		}
		if graphFile != "" {
			opts = append(opts, drawer.PipelineDrawer(drawer.NewDOTDrawer(graphFile)))
		}

		err = soil.Run(cmd.Context(), cfg, fill, opts...)
		if err != nil {
			return err
		}

		if timing {
			printTimings(msr)
		}

		return nil
	},
}

func printTimings(msr *measure.DefaultMeasure) {
	names := make([]string, 0, len(msr.Stages))
	for name := range msr.Stages {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		mt := msr.GetMetric(name)
		if mt.Duration() == 0 && mt.GetTotalDuration() == 0 {
			continue
		}
		log.Printf("%-24s %v", name, mt.Duration())
	}
	if total := msr.GetMetric(model.EndStage.Name); total != nil {
		log.Printf("%-24s %v", "total", total.GetTotalDuration())
	}
}

func init() {
	rootCmd.Flags().StringVar(&configFile, "config", "config.yaml", "path to the config file")
	rootCmd.Flags().StringVar(&fillValue, "fValue", "-9999.", "value for FillValue")
	rootCmd.Flags().StringVar(&graphFile, "graph", "", "write a DOT graph of the pipeline stages to this file")
	rootCmd.Flags().BoolVar(&timing, "timing", false, "print per-stage durations")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
