package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bookmarks_backend/internal/handlers"
	"bookmarks_backend/internal/logger"
	"bookmarks_backend/internal/repository"
	"bookmarks_backend/internal/repository/db"
	"bookmarks_backend/internal/server"
	"bookmarks_backend/internal/service"
	"bookmarks_backend/internal/token"

	"github.com/spf13/viper"
)

const defaultTokenTTL = 15 * time.Minute

func main() {
	// init logger
	log := logger.Get(logger.InfoLevel)

	// load config.yml
	if err := loadConfig(); err != nil {
		log.Fatalw("error reading config", "err", err)
	}

	// open DB
	sqlDB, err := openDB(log)
	if err != nil {
		log.Fatalw("failed to init sqlite", "err", err)
	}
	defer func() {
		if cerr := sqlDB.Close(); cerr != nil {
			log.Errorw("failed to close sqlite", "err", cerr)
		}
	}()

	// token manager: a missing signing key is fatal here, never per request
	tokens, err := newTokenManager()
	if err != nil {
		log.Fatalw("failed to init token manager", "err", err)
	}

	// wire dependencies
	repos := repository.NewRepository(sqlDB)
	services := service.NewService(repos, tokens)
	apiHandler := handlers.NewHandler(services, log)

	// start HTTP server
	srv := &server.Server{}
	runHTTPServer(srv, viper.GetString("port"), apiHandler, log)

	// graceful shutdown
	waitForShutdown(srv, log)
}

func loadConfig() error {
	viper.AddConfigPath("configs") // configs/config.yml
	viper.SetConfigName("config")
	return viper.ReadInConfig()
}

// newTokenManager builds the JWT manager from configuration.
func newTokenManager() (*token.Manager, error) {
	ttl := viper.GetDuration("auth.token_ttl")
	if ttl == 0 {
		ttl = defaultTokenTTL
	}
	return token.NewManager(viper.GetString("auth.signing_key"), ttl)
}

// openDB initializes the SQLite database using configuration.
func openDB(log *logger.Logger) (*sql.DB, error) {
	dbPath := viper.GetString("db.path")
	if dbPath == "" {
		log.Infow("db.path not set in config; using default file", "default", "app.db")
		dbPath = "app.db"
	}
	return db.InitDB(dbPath)
}

// runHTTPServer runs the HTTP server in a separate goroutine.
func runHTTPServer(srv *server.Server, port string, handler *handlers.Handler, log *logger.Logger) {
	go func() {
		if port == "" {
			port = "8080"
		}
		if err := srv.Run(port, handler.InitRoutes()); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalw("error starting server", "err", err)
		}
	}()
}

// waitForShutdown listens for termination signals and performs graceful shutdown.
func waitForShutdown(srv *server.Server, log *logger.Logger) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Infow("shutting down server...")

	// allow in-flight requests to complete
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalw("server forced to shutdown", "err", err)
	}
}
