package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// memoryCmd represents the memory command
var memoryCmd = &cobra.Command{
	Use:   "memory",
	Short: "Parent command for process memory access",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(cmd.UsageString())
		os.Exit(2)
	},
}

// memoryReadCmd represents the memory read command
var memoryReadCmd = &cobra.Command{
	Use:   "read <pid> <addr> <size>",
	Short: "Read process memory and print a hex dump",
	Run:   cmdHandler.Console.MemoryRead,
}

func init() {
	memoryCmd.AddCommand(memoryReadCmd)
	RootCmd.AddCommand(memoryCmd)
}
