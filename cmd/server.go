package cmd

import (
	"context"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/consentvault/consentvault-backend/api"
	"github.com/consentvault/consentvault-backend/infra"
	"github.com/consentvault/consentvault-backend/repositories"
	"github.com/consentvault/consentvault-backend/usecases"
	"github.com/consentvault/consentvault-backend/utils"
)

func RunServer() error {
	apiConfig := api.Configuration{
		Env:                 utils.GetEnv("ENV", "development"),
		AppName:             "consentvault-backend",
		Port:                utils.GetRequiredEnv[string]("PORT"),
		ConsoleUrl:          utils.GetEnv("CONSOLE_URL", ""),
		RequestLoggingLevel: utils.GetEnv("REQUEST_LOGGING_LEVEL", "all"),
		DefaultTimeout:      time.Duration(utils.GetEnv("DEFAULT_TIMEOUT_SECOND", 5)) * time.Second,
	}
	jwtSigningSecret := utils.GetRequiredEnv[string]("AUTHENTICATION_JWT_SIGNING_SECRET")

	logger := utils.NewLogger(utils.GetEnv("LOGGING_FORMAT", "text"))
	ctx := utils.StoreLoggerInContext(context.Background(), logger)

	pool, err := infra.NewPostgresConnectionPool(ctx, pgConnectionString())
	if err != nil {
		return errors.Wrap(err, "failed to create connection pool")
	}

	repos := repositories.NewRepositories(pool)
	uc := usecases.NewUsecases(repos, repositories.NewJwtRepository(jwtSigningSecret))

	router := api.InitRouterMiddlewares(ctx, apiConfig)
	server := api.NewServer(router, apiConfig, uc, api.NewAuthentication(uc))

	notify, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		logger.InfoContext(ctx, "starting server", slog.String("port", apiConfig.Port))
		err := server.ListenAndServe()
		if !errors.Is(err, http.ErrServerClosed) {
			logger.ErrorContext(ctx, "error while serving the app", "error", err.Error())
		}
		logger.InfoContext(ctx, "server returned")
	}()

	<-notify.Done()
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		return errors.Wrap(err, "error while shutting down the server")
	}
	return nil
}
