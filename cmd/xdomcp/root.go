package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "xdomcp",
	Short: "xdomcp is an MCP server for desktop automation via xdotool",
	Long: `xdomcp exposes mouse, keyboard, and window inspection as MCP tools.
Each tool call is translated into one synchronous xdotool invocation.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("log-level", "info", "Log level: debug, info, warn, error")
}
