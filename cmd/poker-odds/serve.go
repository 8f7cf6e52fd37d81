package main

import (
	"context"
	"time"

	"github.com/lox/pokerodds/internal/server"
)

// ServeCmd runs the WebSocket odds service
type ServeCmd struct {
	Addr string `help:"Listen address (default from config)"`
}

func (c *ServeCmd) Run(ctx context.Context, g *Globals) error {
	addr := c.Addr
	if addr == "" {
		addr = g.Config.Server.Address
	}

	srv := server.NewServer(addr, g.Logger,
		server.WithLimits(server.Limits{
			MaxHoles:      g.Config.Server.MaxHoles,
			MaxSampleSize: g.Config.Server.MaxSampleSize,
			MaxInFlight:   g.Config.Server.MaxInFlight,
		}),
		server.WithEquityOptions(g.Config.EquityOptions(nil)...),
	)

	serverErr := make(chan error, 1)
	go func() {
		serverErr <- srv.Start()
	}()

	select {
	case err := <-serverErr:
		return err
	case <-ctx.Done():
		g.Logger.Info("Shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}
