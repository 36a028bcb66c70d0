package fx

import (
	"context"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"searchlens/internal/config"
	"searchlens/internal/core"
	"searchlens/internal/scraper"
	"searchlens/internal/search"
	"searchlens/internal/server"

	"go.uber.org/fx"
)

// ServerModule starts the HTTP server
var ServerModule = fx.Module("server",
	fx.Invoke(StartServer),
)

// ServerParams groups dependencies for the HTTP server
type ServerParams struct {
	fx.In
	Lifecycle fx.Lifecycle
	Core      *core.CompareCore
	Registry  *search.Registry
	Scraper   *scraper.Scraper
	Config    config.Config
}

// StartServer wires the handler chain and manages the server lifecycle
func StartServer(p ServerParams) {
	services := server.Services{
		Core:     p.Core,
		Registry: p.Registry,
		Scraper:  p.Scraper,
	}

	apiHandler := server.CreateAPIHandler(services, p.Config)
	staticHandler := server.CreateStaticHandler()
	combined := server.CreateCombinedHandler(apiHandler, staticHandler)
	handler := server.CreateRecoveryHandler(server.CreateCORSHandler(combined))

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", p.Config.Port),
		Handler: handler,
	}

	p.Lifecycle.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			lis, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}

			go func() {
				log.Printf("[FX] HTTP Server listening on %s", srv.Addr)
				if err := srv.Serve(lis); err != nil && err != http.ErrServerClosed {
					log.Printf("[FX] HTTP Server error: %v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Printf("[FX] Shutting down server...")
			shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	})
}
