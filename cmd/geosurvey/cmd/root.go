package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands.
var RootCmd = &cobra.Command{
	Use: "geosurvey",
	Short: "polygon area/volume measurement on a spherical body",
	Long: `geosurvey computes the surface area and signed volume of a
	user-drawn polygon on a spherical body, using an adaptive Delaunay
	triangulation obtained from a sweep-line Voronoi construction:
	- compute FILE: run the engine on a corners + terrain-height input file
	- config FILE: write a prefilled settings YAML file`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately. Called once by main.main.
func Execute() {
	if err := RootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(-1)
	}
}
