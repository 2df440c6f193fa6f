package cmd

import (
	"github.com/spf13/cobra"
)

// shutdownCmd represents the shutdown command
var shutdownCmd = &cobra.Command{
	Use:   "shutdown",
	Short: "Power off the console",
	Run:   cmdHandler.Console.Shutdown,
}

// restartCmd represents the restart command
var restartCmd = &cobra.Command{
	Use:   "restart [soft|hard]",
	Short: "Reboot the console (hard reboot by default)",
	Run:   cmdHandler.Console.Restart,
}

func init() {
	RootCmd.AddCommand(shutdownCmd)
	RootCmd.AddCommand(restartCmd)
}
