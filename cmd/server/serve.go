package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/GustavoFelipe17/projeto-livros-unisagrado/internal/catalog"
	"github.com/GustavoFelipe17/projeto-livros-unisagrado/internal/db"
	"github.com/GustavoFelipe17/projeto-livros-unisagrado/internal/repository"
	"github.com/GustavoFelipe17/projeto-livros-unisagrado/internal/server"
)

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}

	cmd.Flags().String("addr", "", "Listen address (default :8080)")
	_ = v.BindPFlag("APP_ADDR", cmd.Flags().Lookup("addr"))

	return cmd
}

func runServe(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	startTime := time.Now()

	gin.SetMode(cfg.GinMode)

	database, err := db.ConnectWithRetry(cfg)
	if err != nil {
		return err
	}

	if err := db.Migrate(database); err != nil {
		return err
	}

	if cfg.CatalogAPIKey == "" {
		warn("GOOGLE_BOOKS_API_KEY not set, using anonymous catalog quota")
	}

	router := server.NewRouter(server.Deps{
		DB:    database,
		Books: repository.NewGormBookRepository(database),
		Catalog: catalog.NewGoogleBooks(catalog.Options{
			BaseURL: cfg.CatalogBaseURL,
			APIKey:  cfg.CatalogAPIKey,
			Timeout: cfg.CatalogTimeout,
			RPS:     cfg.CatalogRPS,
		}),
		ReportDelimiter: cfg.ReportDelimiter,
		AllowedOrigins:  cfg.CORSAllowedOrigins,
		StartTime:       startTime,
		Version:         appVersion,
	})

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	ok("listening on %s (swagger at /swagger/index.html)", cfg.Addr)
	return server.Run(ctx, server.NewHTTPServer(cfg.Addr, router))
}
