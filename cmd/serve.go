package cmd

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/s0up4200/pokedex-mcp/mcpserver"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the Pokemon database over MCP on stdio",
	Long: `Run the MCP server on standard input and output.

Point an MCP client at this command to get Pokemon lookup, search,
analysis and comparison tools along with pokemon:// resources and
guided prompts.`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	server := mcpserver.New(client, version, logger)
	return server.Serve(ctx)
}
