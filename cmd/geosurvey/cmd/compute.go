package cmd

import (
	"os"

	"github.com/spf13/cobra"

	geosurvey "github.com/arl/geosurvey"
)

var computeCfgPath string

// computeCmd represents the compute command.
var computeCmd = &cobra.Command{
	Use: "compute FILE",
	Short: "compute the area and volume of a polygon",
	Long: `Read polygon corners and a terrain-height description from
	FILE (YAML: radius, heightScale, corners, and either flatHeight or a
		heightGrid), run the engine, and print the resulting area, volumes, mesh
	segment count and bounding box.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		in, err := loadComputeInput(args[0])
		check(err)

		settings := geosurvey.DefaultSettings()
		if computeCfgPath != "" {
			settings, err = geosurvey.LoadSettings(computeCfgPath)
			check(err)
		}

		ctx := geosurvey.NewDefaultContext()
		res := geosurvey.Compute(in.corners3D(), cliBody{in: in}, settings, ctx)
		printResult(res)

		if res.Diagnostics != 0 {
			os.Exit(1)
		}
	},
}

func init() {
	RootCmd.AddCommand(computeCmd)
	computeCmd.Flags().StringVar(&computeCfgPath, "config", "", "settings YAML file (default: built-in defaults)")
}
