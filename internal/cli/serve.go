package cli

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/taskflowhq/taskflow/internal/config"
	"github.com/taskflowhq/taskflow/internal/db"
	"github.com/taskflowhq/taskflow/internal/httpapi"
	"github.com/taskflowhq/taskflow/internal/identity"
	"github.com/taskflowhq/taskflow/internal/llm"
	"github.com/taskflowhq/taskflow/internal/repository"
	"github.com/taskflowhq/taskflow/internal/service"
)

func newServeCmd() *cobra.Command {
	var port int
	var dbPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Load()
			if port != 0 {
				cfg.Port = port
			}
			if dbPath != "" {
				cfg.DBPath = dbPath
			}
			return runServer(cfg)
		},
	}

	cmd.Flags().IntVar(&port, "port", 0, "listen port (overrides PORT)")
	cmd.Flags().StringVar(&dbPath, "db", "", "database path (overrides TASKFLOW_DB)")
	return cmd
}

func runServer(cfg config.Config) error {
	logger := newLogger()
	slog.SetDefault(logger)

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	uow := db.NewSQLiteUnitOfWork(database)
	userRepo := repository.NewSQLiteUserRepo(database)
	projectRepo := repository.NewSQLiteProjectRepo(database)
	nodeRepo := repository.NewSQLiteTaskNodeRepo(database)
	edgeRepo := repository.NewSQLiteTaskEdgeRepo(database)

	google := identity.NewGoogleClient(identity.Config{
		APIKey:        cfg.GoogleAPIKey,
		LookupBaseURL: cfg.IdentityBaseURL,
		TokenBaseURL:  cfg.SecureTokenBaseURL,
	})

	llmCfg := llm.DefaultConfig()
	if cfg.OllamaEndpoint != "" {
		llmCfg.Endpoint = cfg.OllamaEndpoint
	}
	if cfg.OllamaModel != "" {
		llmCfg.Model = cfg.OllamaModel
	}
	llmClient := llm.NewOllamaClient(llmCfg)

	server := httpapi.NewServer(httpapi.Options{
		Logger:         logger,
		Development:    cfg.Development(),
		AllowedOrigins: cfg.AllowedOrigins,
		Verifier:       google,
		Projects:       service.NewProjectService(uow, projectRepo, nodeRepo, edgeRepo),
		Auth:           service.NewAuthService(userRepo, google),
		Suggestions:    service.NewSuggestionService(projectRepo, llmClient, logger),
	})

	httpServer := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           server.Routes(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", httpServer.Addr, "env", cfg.Env)
		if err := httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return httpServer.Shutdown(shutdownCtx)
}

// newLogger picks a text handler on interactive terminals and JSON otherwise.
func newLogger() *slog.Logger {
	if isatty.IsTerminal(os.Stdout.Fd()) {
		return slog.New(slog.NewTextHandler(os.Stdout, nil))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, nil))
}
