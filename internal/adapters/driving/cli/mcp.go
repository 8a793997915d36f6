package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/topica/internal/adapters/driving/mcp"
)

var mcpAddr string

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Model Context Protocol integration",
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Expose topic modelling to MCP clients",
	Long: `Serve the model_topics tool and the topica://estimators and
topica://settings resources over the Model Context Protocol.

The server speaks JSON-RPC on stdin/stdout unless --addr is given, in which
case it serves the streamable HTTP transport on that address.

Examples:
  topica mcp serve
  topica mcp serve --addr 127.0.0.1:8081

Register the stdio server with a client by pointing its command at the
topica binary with the arguments ["mcp", "serve"].`,
	Args: cobra.NoArgs,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().StringVarP(&mcpAddr, "addr", "a", "", "HTTP listen address (empty = stdio)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	server, err := mcp.NewServer(&mcp.Ports{
		Topics:   topicService,
		Settings: settingsService,
	})
	if err != nil {
		return err
	}

	if mcpAddr == "" {
		return server.Run(cmd.Context())
	}

	// stdout stays clean for clients that capture it.
	cmd.PrintErrf("MCP server listening on http://%s\n", displayAddr(mcpAddr))
	return server.RunHTTP(cmd.Context(), mcpAddr)
}
