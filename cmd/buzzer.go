package cmd

import (
	"github.com/spf13/cobra"
)

// buzzerCmd represents the buzzer command
var buzzerCmd = &cobra.Command{
	Use:   "buzzer <continuous|single|double|triple>",
	Short: "Ring the console buzzer",
	Run:   cmdHandler.Console.RingBuzzer,
}

func init() {
	RootCmd.AddCommand(buzzerCmd)
}
