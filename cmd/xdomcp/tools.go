package main

import (
	"fmt"

	"github.com/spf13/cobra"

	mcpadapter "github.com/aretw0/xdomcp/pkg/adapters/mcp"
	"github.com/aretw0/xdomcp/pkg/adapters/process"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the automation tools exposed by the MCP server",
	Run: func(cmd *cobra.Command, args []string) {
		srv := mcpadapter.NewServer(process.NewExecutor())
		for _, tool := range srv.Tools() {
			fmt.Printf("%-22s %s\n", tool.Name, tool.Description)
		}
	},
}

func init() {
	rootCmd.AddCommand(toolsCmd)
}
