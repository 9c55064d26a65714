package cmd

import (
	"github.com/pcorbett/jumplab/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the Jumplab MCP server",
	Long:  `Launch an MCP server that allows AI agents to extract jump metrics and run transfer modeling via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Stdio carries the protocol, so setup must not print to it.
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg, runManager)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
