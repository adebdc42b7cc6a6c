package cmd

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/abhiramvad/portfolio/internal/analytics"
	"github.com/abhiramvad/portfolio/internal/server"
)

var servePort string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the portfolio over HTTP",
	Long: `Serves the portfolio page, its assets, and live sessions on /live. With
track_visitors set, page views are counted by hashed address and exposed as
aggregate counts on /stats.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if servePort != "" {
			cfg.Port = servePort
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid config: %w", err)
			}
		}
		gin.SetMode(cfg.Mode)

		cat, err := loadCatalog(cfg)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		var store *analytics.Store
		if cfg.TrackVisitors {
			store, err = analytics.Open(cfg.DBPath)
			if err != nil {
				return fmt.Errorf("opening visitor database: %w", err)
			}
			defer store.Close()
			store.StartCleanup(ctx, cfg.RetentionMonths)
			log.Println("analytics: visitor tracking enabled with hashed IP addresses")
		}

		srv := server.New(cfg, cat, store, verbose)
		return srv.Run(ctx)
	},
}

func init() {
	serveCmd.Flags().StringVarP(&servePort, "port", "p", "", "port to listen on (overrides config)")
	rootCmd.AddCommand(serveCmd)
}
