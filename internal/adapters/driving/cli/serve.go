package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/topica/internal/adapters/driving/web"
	"github.com/custodia-labs/topica/internal/core/domain"
	"github.com/custodia-labs/topica/internal/core/services"
)

// portSearchRange is how many ports --find-port tries after the configured one.
const portSearchRange = 20

var (
	serveAddr     string
	serveFindPort bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the upload web server",
	Long: `Start an HTTP server with an upload form.

Upload text or spreadsheet files, pick the number of topics and get the top
words of every topic with an interactive bar chart. The same upload can be
posted to /api/topics for a JSON response.

Examples:
  topica serve
  topica serve --addr 127.0.0.1:9000
  topica serve --find-port`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&serveAddr, "addr", "a", "", "listen address (default from server.addr)")
	serveCmd.Flags().BoolVar(&serveFindPort, "find-port", false, "use the next free port when the address is taken")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, _ []string) error {
	server, err := web.NewServer(&web.Ports{
		Topics:   topicService,
		Ingest:   ingestService,
		Settings: settingsService,
	})
	if err != nil {
		return err
	}

	addr := serveAddr
	if addr == "" {
		addr = domain.DefaultSettings().Server.Addr
		if settingsService != nil {
			if st, err := settingsService.Get(); err == nil && st.Server.Addr != "" {
				addr = st.Server.Addr
			}
		}
	}

	if serveFindPort {
		addr, err = services.FindAvailableAddr(addr, portSearchRange)
		if err != nil {
			return err
		}
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Serving on http://%s\n", displayAddr(addr))
	return server.Start(cmd.Context(), addr)
}

// displayAddr turns ":8080" into "localhost:8080".
func displayAddr(addr string) string {
	if len(addr) > 0 && addr[0] == ':' {
		return "localhost" + addr
	}
	return addr
}
