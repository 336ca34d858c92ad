// Package server wires the application together and runs it until a
// shutdown signal arrives.
package server

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	grpclib "google.golang.org/grpc"

	"github.com/terry1921/stickerstore/app/flows"
	"github.com/terry1921/stickerstore/app/repositories"
	"github.com/terry1921/stickerstore/app/routes"
	"github.com/terry1921/stickerstore/app/services"
	"github.com/terry1921/stickerstore/config"
	"github.com/terry1921/stickerstore/pkg/cache"
	"github.com/terry1921/stickerstore/pkg/database"
	"github.com/terry1921/stickerstore/pkg/grpcserver"
	"github.com/terry1921/stickerstore/pkg/logger"
	"github.com/terry1921/stickerstore/pkg/metrics"
	"github.com/terry1921/stickerstore/pkg/middleware"
	"github.com/terry1921/stickerstore/pkg/router"
	"github.com/terry1921/stickerstore/pkg/storage"
	"github.com/terry1921/stickerstore/pkg/ws"
)

// Start boots every subsystem, serves HTTP until SIGINT/SIGTERM, then
// drains connections before returning.
func Start() error {
	if err := config.Load(); err != nil {
		return err
	}

	ctx := context.Background()
	if err := database.Connect(ctx); err != nil {
		return err
	}
	defer database.Disconnect(context.Background())

	if logsCol := config.MongoLogs(); logsCol != "" {
		mh := logger.NewMongoHandler(logger.L.Handler(), database.DB.Collection(logsCol))
		logger.SetHandler(mh)
		defer mh.Close()
	}

	cache.Connect()
	storage.Connect()

	if err := database.EnsureIndexes(ctx); err != nil {
		logger.Warn("index creation failed", "error", err)
	}

	// Moderation event feed.
	feed := ws.NewHub()
	go feed.Run()

	// Services.
	var suggester flows.TopicSuggester
	if key := config.GeminiAPIKey(); key != "" {
		g, err := flows.NewGeminiSuggester(ctx, key, config.GeminiModel())
		if err != nil {
			logger.Warn("topic suggester disabled", "error", err)
		} else {
			suggester = g
		}
	}

	deps := routes.Deps{
		Auth: services.NewAuthService(
			repositories.NewUserRepository(),
			services.NewGoogleVerifier(config.GoogleClientID()),
		),
		Products: services.NewProductService(repositories.NewProductRepository()),
		Articles: services.NewArticleService(repositories.NewArticleRepository(), feed),
		Topics:   services.NewTopicService(suggester),
		Feed:     feed,
	}

	// Router and middleware chain, outermost first.
	r := router.New()
	r.Use(
		metrics.Middleware(),
		middleware.Recovery,
		middleware.RequestID,
		middleware.Logger,
		middleware.CORS(middleware.DefaultCORSOptions()),
		middleware.RateLimit(120, time.Minute),
	)
	routes.RegisterAPI(r, deps)
	r.HandleFunc("/metrics", metrics.Handler())

	// Optional gRPC listener for internal tooling.
	var grpcSrv *grpclib.Server
	if port := config.GRPCPort(); port != "" {
		srv, _, err := grpcserver.Start(port)
		if err != nil {
			return err
		}
		grpcSrv = srv
	}

	httpSrv := &http.Server{
		Addr:              ":" + config.AppPort(),
		Handler:           r.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server starting", "addr", httpSrv.Addr, "env", config.AppEnv())
		if err := httpSrv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		logger.Info("shutting down", "signal", sig.String())
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown failed", "error", err)
	}
	grpcserver.Stop(grpcSrv)

	return nil
}
