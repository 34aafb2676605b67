package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/consentvault/consentvault-backend/usecases"
)

func NewServer(
	router *gin.Engine,
	conf Configuration,
	uc usecases.Usecases,
	auth Authentication,
) *http.Server {
	addRoutes(router, uc, auth)

	// Add 5 seconds to the server timeout to gracefully handle the timeout in
	// our code.
	maxTimeout := conf.DefaultTimeout + 5*time.Second

	return &http.Server{
		Addr:         fmt.Sprintf("0.0.0.0:%s", conf.Port),
		WriteTimeout: maxTimeout,
		ReadTimeout:  maxTimeout,
		IdleTimeout:  maxTimeout,
		Handler:      h2c.NewHandler(router, &http2.Server{}),
	}
}
