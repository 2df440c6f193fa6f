package cmd

import (
	"github.com/spf13/cobra"
)

// ledCmd represents the led command
var ledCmd = &cobra.Command{
	Use:   "led <red|green> <off|on|blink>",
	Short: "Set the console LED color and status",
	Run:   cmdHandler.Console.SetLed,
}

func init() {
	RootCmd.AddCommand(ledCmd)
}
