package cmd

import (
	"github.com/spf13/cobra"
)

// firmwareCmd represents the firmware command
var firmwareCmd = &cobra.Command{
	Use:   "firmware",
	Short: "Show console firmware information",
	Run:   cmdHandler.Console.Firmware,
}

func init() {
	RootCmd.AddCommand(firmwareCmd)
}
