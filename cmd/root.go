// Package cmd is for command line interactions with the mdarh application
package cmd

import (
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/RadostW/glm-mda-diffusion/config"
)

// stderr is for logging to Stderr (without an annoying timestamp)
var stderr = log.New(os.Stderr, "", 0)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "mdarh",
	Short: `Minimum dissipation approximation: a fast algorithm for the prediction
of diffusive properties of intrinsically disordered proteins`,
	Version: "1.0.0",
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	config.Setup()

	if err := rootCmd.Execute(); err != nil {
		log.Fatalf("%v", err)
	}
}
