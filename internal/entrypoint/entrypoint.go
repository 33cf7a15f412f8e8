package entrypoint

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mrlokans/bookreviews/internal/config"
	"github.com/mrlokans/bookreviews/internal/database"
	"github.com/mrlokans/bookreviews/internal/database/books"
	"github.com/mrlokans/bookreviews/internal/database/reviews"
	http_controllers "github.com/mrlokans/bookreviews/internal/http"
)

// ShutdownFunc is called during graceful shutdown to clean up resources.
type ShutdownFunc func(ctx context.Context)

func Serve(router *gin.Engine, cfg *config.Config, onShutdown ShutdownFunc) {
	timeout := time.Duration(cfg.Global.ShutdownTimeoutInSeconds) * time.Second

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.HTTP.Host, cfg.HTTP.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Starting server at %s:%d", cfg.HTTP.Host, cfg.HTTP.Port)
		// service connections
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// Wait for SIGINT/SIGTERM, then give in-flight requests up to the
	// configured timeout to finish.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Printf("Shutdown Server, waiting %v before killing\n", timeout)

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Server Shutdown: %v", err)
	}

	if onShutdown != nil {
		onShutdown(ctx)
	}

	log.Println("Server exiting")
}

// NewRouterConfig wires the repositories of db into a router configuration.
func NewRouterConfig(cfg *config.Config, db *database.Database, version string) http_controllers.RouterConfig {
	return http_controllers.RouterConfig{
		Books:        books.NewRepository(db.DB),
		Reviews:      reviews.NewRepository(db.DB),
		Database:     db,
		ServeAPIDocs: cfg.IsDevelopment(),
		Version:      version,
	}
}

func Run(cfg *config.Config, version string) {
	log.Printf("Starting Book Reviews API v%s (%s)", version, cfg.Global.Environment)

	if !cfg.IsDevelopment() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := database.NewDatabase(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}

	router := http_controllers.NewRouter(NewRouterConfig(cfg, db, version))

	onShutdown := func(ctx context.Context) {
		if err := db.Close(); err != nil {
			log.Printf("Error closing database: %v", err)
		}
	}

	Serve(router, cfg, onShutdown)
}
