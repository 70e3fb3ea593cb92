package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aretw0/xdomcp"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of xdomcp",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("xdomcp version %s\n", strings.TrimSpace(xdomcp.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
