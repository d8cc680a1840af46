package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"items-api/internal/api/middleware"
	"items-api/internal/api/routes"
	"items-api/internal/app"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type Server struct {
	router *gin.Engine
	http   *http.Server
	app    *app.Application
}

func NewServer(app *app.Application) *Server {
	if app.Config.Server.Mode != "" {
		gin.SetMode(app.Config.Server.Mode)
	}

	router := gin.New()
	router.Use(middleware.RequestID(), middleware.Logger(), gin.Recovery())

	logrus.WithField("origins", app.Config.CORS.AllowedOrigins).Info("Configuring CORS")
	corsConfig := cors.Config{
		AllowOriginFunc: func(origin string) bool {
			for _, allowed := range app.Config.CORS.AllowedOrigins {
				if allowed == "*" || allowed == origin {
					return true
				}
			}
			return false
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	router.Use(cors.New(corsConfig))

	router.SetTrustedProxies(nil) // Remove the gin warning about untrusted proxies

	routes.RegisterRoutes(router, app)

	addr := fmt.Sprintf("%s:%d", app.Config.Server.Host, app.Config.Server.Port)
	return &Server{
		router: router,
		app:    app,
		http: &http.Server{
			Addr:         addr,
			Handler:      router,
			ReadTimeout:  app.Config.Server.ReadTimeout,
			WriteTimeout: app.Config.Server.WriteTimeout,
		},
	}
}

// Handler exposes the configured engine, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start blocks serving HTTP until Shutdown is called. A clean shutdown
// returns nil.
func (s *Server) Start() error {
	logrus.WithField("addr", s.http.Addr).Info("Server starting")
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting connections and waits for in-flight requests
// until ctx expires.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.http.Shutdown(ctx)
}
