package cmd

import (
	"github.com/spf13/cobra"
)

// temperatureCmd represents the temperature command
var temperatureCmd = &cobra.Command{
	Use:     "temperature",
	Aliases: []string{"temp"},
	Short:   "Show CELL and RSX temperatures",
	Run:     cmdHandler.Console.Temperature,
}

func init() {
	RootCmd.AddCommand(temperatureCmd)
}
