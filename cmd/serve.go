package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/MokshaVS03/scam-url-detector/config"
	"github.com/MokshaVS03/scam-url-detector/internal/api"
	"github.com/MokshaVS03/scam-url-detector/internal/history"
	"github.com/MokshaVS03/scam-url-detector/internal/notify"
)

// serveCmd is the cobra command that starts the assessment API server
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "start the scam detection api server",
	Run: func(cmd *cobra.Command, _ []string) {
		err := serve(cmd.Context())
		cobra.CheckErr(err)
	},
}

// init registers the serve command on the root command
func init() {
	rootCmd.AddCommand(serveCmd)
}

// serve initializes dependencies and starts the assessment API server
func serve(ctx context.Context) error {
	cfg := config.New()

	a := setupAssessor(cfg)

	handlerOpts := []api.HandlerOption{}

	store, err := setupHistory(cfg)
	if err != nil {
		return fmt.Errorf("setting up history: %w", err)
	}

	if store != nil {
		defer func() { _ = store.Close() }()

		handlerOpts = append(handlerOpts, api.WithHistory(store))
	}

	if alerter := setupAlerter(cfg); alerter != nil {
		handlerOpts = append(handlerOpts, api.WithAlerter(alerter))
	}

	handler := api.NewRouter(api.NewHandler(a, handlerOpts...))

	srv := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      http.MaxBytesHandler(handler, cfg.MaxBodySize),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("server shutdown error")
		}
	}()

	log.Info().Str("port", cfg.Port).Msg("starting scam detection service")

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("listen: %w", err)
	}

	return nil
}

// setupHistory opens the assessment history store, returning nil when disabled
func setupHistory(cfg *config.Config) (*history.Store, error) {
	if cfg.HistoryPath == "" {
		log.Info().Msg("assessment history not configured, skipping")
		return nil, nil
	}

	store, err := history.Open(cfg.HistoryPath)
	if err != nil {
		return nil, err
	}

	log.Info().Str("path", cfg.HistoryPath).Msg("assessment history configured")

	return store, nil
}

// setupAlerter initializes the alert webhook client, returning nil when unconfigured
func setupAlerter(cfg *config.Config) *notify.Client {
	if cfg.AlertWebhookURL == "" {
		log.Info().Msg("high-risk alerts not configured, skipping")
		return nil
	}

	client, err := notify.New(cfg.AlertWebhookURL)
	if err != nil {
		log.Warn().Err(err).Msg("failed to initialize alert client")
		return nil
	}

	log.Info().Msg("high-risk alerts configured")

	return client
}
