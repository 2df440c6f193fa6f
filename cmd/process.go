package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// processCmd represents the process command
var processCmd = &cobra.Command{
	Use:   "process",
	Short: "Parent command for process inspection",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(cmd.UsageString())
		os.Exit(2)
	},
}

// processListCmd represents the process list command
var processListCmd = &cobra.Command{
	Use:   "list",
	Short: "List running process identifiers",
	Run:   cmdHandler.Console.ProcessList,
}

// processNameCmd represents the process name command
var processNameCmd = &cobra.Command{
	Use:   "name <pid>",
	Short: "Show the name of a process",
	Run:   cmdHandler.Console.ProcessName,
}

// processMapCmd represents the process map command
var processMapCmd = &cobra.Command{
	Use:   "map",
	Short: "List running processes with their names",
	Run:   cmdHandler.Console.ProcessMap,
}

func init() {
	processCmd.AddCommand(processListCmd)
	processCmd.AddCommand(processNameCmd)
	processCmd.AddCommand(processMapCmd)
	RootCmd.AddCommand(processCmd)
}
