package cmd

import (
	"github.com/spf13/cobra"

	"github.com/rmg-x/consolectl/pkg/cmd/server"
)

// serveMonitorCmd represents the serve monitor command
var serveMonitorCmd = &cobra.Command{
	Use:   "monitor",
	Short: "Serve the console monitor instance",
	Run:   server.RunServeMonitor(c),
}

func init() {
	serveCmd.AddCommand(serveMonitorCmd)
}
