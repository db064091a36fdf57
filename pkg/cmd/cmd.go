// Package cmd contains the command line applications for the project.
package cmd

import (
	"github.com/spf13/cobra"
)

var (
	configPath string
	debug      bool

	rootCmd = &cobra.Command{
		Use:   "foldervault",
		Short: "A typed folder and file storage service",
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config file")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug output")

	registerServeCommands()
	registerDBCommands()
	registerConfigsCommands()
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
