package cmd

import (
	"github.com/spf13/cobra"
)

// notifyCmd represents the notify command
var notifyCmd = &cobra.Command{
	Use:   "notify <icon> <message>",
	Short: "Display an on-screen notification",
	Run:   cmdHandler.Console.Notify,
}

func init() {
	RootCmd.AddCommand(notifyCmd)
}
