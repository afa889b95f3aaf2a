package app

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper-console/internal/config"
	"github.com/vancomm/minesweeper-console/internal/middleware"
	"github.com/vancomm/minesweeper-console/internal/session"
)

const shutdownTimeout = 30 * time.Second

type App struct {
	logger   *slog.Logger
	router   *http.ServeMux
	sessions *session.Registry
	ws       *config.WebSocket
	ttl      time.Duration
}

func New(logger *slog.Logger, sessions *session.Registry) (*App, error) {
	ws, err := config.NewWebSocket()
	if err != nil {
		return nil, err
	}
	ttl, err := config.SessionTTL()
	if err != nil {
		return nil, err
	}

	app := &App{
		logger:   logger,
		router:   http.NewServeMux(),
		sessions: sessions,
		ws:       ws,
		ttl:      ttl,
	}
	app.loadRoutes()

	return app, nil
}

// Handler is the router behind the middleware chain, mounted at
// [config.BasePath].
func (a *App) Handler() http.Handler {
	var h http.Handler = a.router
	if base := config.BasePath(); base != "" {
		h = http.StripPrefix(base, h)
	}
	return middleware.Wrap(
		h,
		middleware.Logging(a.logger),
		middleware.Cors(config.CorsOrigins()...),
	)
}

// Start serves until ctx is cancelled, then shuts the server down.
func (a *App) Start(ctx context.Context) error {
	addr := config.Addr()
	server := &http.Server{
		Addr:    addr,
		Handler: a.Handler(),
		BaseContext: func(l net.Listener) context.Context {
			return ctx
		},
	}

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.logger.Info("server listening", slog.String("addr", addr))
		err := server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	})
	g.Go(func() error {
		<-gCtx.Done()
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return server.Shutdown(ctx)
	})
	g.Go(func() error {
		a.prune(gCtx)
		return nil
	})

	return g.Wait()
}

// prune drops finished games older than the session TTL until ctx is done.
func (a *App) prune(ctx context.Context) {
	if a.ttl <= 0 {
		return
	}
	ticker := time.NewTicker(a.ttl / 2)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if n := a.sessions.Prune(now.Add(-a.ttl)); n > 0 {
				a.logger.Debug("pruned finished games", slog.Int("count", n))
			}
		}
	}
}
