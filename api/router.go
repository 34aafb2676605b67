package api

import (
	"context"
	"net/http"
	"net/url"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/consentvault/consentvault-backend/api/middleware"
	"github.com/consentvault/consentvault-backend/utils"
)

func corsOption(ctx context.Context, conf Configuration) cors.Config {
	logger := utils.LoggerFromContext(ctx)
	allowedOrigins := []string{}

	if conf.ConsoleUrl != "" {
		parsedUrl, err := url.Parse(conf.ConsoleUrl)
		switch {
		case err != nil:
			logger.Error("Failed to parse the console url for CORS. Requests made from the browser from this url to the API will be rejected.",
				"url", conf.ConsoleUrl)
		case !slices.Contains([]string{"http", "https"}, parsedUrl.Scheme):
			logger.Error("The console url does not contain a scheme (http or https), so it cannot be used for CORS.",
				"url", conf.ConsoleUrl)
		default:
			u := url.URL{
				Scheme: parsedUrl.Scheme,
				Host:   parsedUrl.Host,
			}
			allowedOrigins = append(allowedOrigins, u.String())
		}
	}

	if conf.Env == "development" {
		allowedOrigins = append(allowedOrigins,
			"http://localhost:3000", "http://localhost:5173")
	}

	return cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{
			http.MethodOptions, http.MethodHead, http.MethodGet,
			http.MethodPost, http.MethodDelete, http.MethodPatch,
		},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Api-Key"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}
}

func InitRouterMiddlewares(ctx context.Context, conf Configuration) *gin.Engine {
	if conf.Env != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	logger := utils.LoggerFromContext(ctx)

	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(cors.New(corsOption(ctx, conf)))
	r.Use(middleware.NewLogging(logger, middleware.WithIgnorePath([]string{"/liveness"})))
	r.Use(utils.StoreLoggerInContextMiddleware(logger))

	return r
}
