package main

import (
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/pagecraft/backend/config"
	httpDelivery "github.com/pagecraft/backend/internal/delivery/http"
	"github.com/pagecraft/backend/internal/infrastructure/store"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the generated pages over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}

		log.Printf("[Serve] Environment: %s", cfg.Server.Environment)
		log.Printf("[Serve] Output dir: %s", cfg.Output.Dir)

		fileStore := store.NewFileStore(cfg.Output.Dir)
		handler := httpDelivery.NewHandler(fileStore)
		router := httpDelivery.SetupRouter(cfg, handler)

		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		log.Printf("[Serve] Listening on %s", addr)
		return router.Run(addr)
	},
}
