package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/dpoulsen/tracker/internal/config"
	"github.com/dpoulsen/tracker/internal/web"
)

// serveCmd implements 'tracker serve'.
func serveCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the HTTP API",
		Run: func(_ *cobra.Command, _ []string) {
			cfg, err := config.Load("")
			if err != nil {
				printError(err)
			}
			if addr == "" {
				addr = cfg.Addr
			}

			s, err := openStore()
			if err != nil {
				printError(err)
			}

			srv := web.NewServer(s)

			stop := make(chan os.Signal, 1)
			signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
			go func() {
				<-stop
				_ = srv.Shutdown()
			}()

			printOutput(formatter.FormatMessage(fmt.Sprintf("Serving on %s (data: %s)", addr, s.Path())))
			if err := srv.Listen(addr); err != nil {
				printError(err)
			}
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "Listen address (default from config)")
	return cmd
}
