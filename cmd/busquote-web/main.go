// README: Entry point; wires config, quote client, comparison service and the HTTP front end.
package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"

	"go.uber.org/fx"

	"busquote/cmd/fx/comparison_fx"
	"busquote/cmd/fx/config_fx"
	"busquote/cmd/fx/quote_fx"
	"busquote/cmd/fx/server_fx"
	"busquote/internal/config"
)

func main() {
	app := fx.New(
		config_fx.Module,
		quote_fx.Module,
		comparison_fx.Module,
		server_fx.Module,

		fx.Invoke(StartServer),
	)

	app.Run()
}

func StartServer(lc fx.Lifecycle, cfg config.Config, server *http.Server) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", server.Addr)
			if err != nil {
				return err
			}
			log.Printf("[HTTP] action=start addr=%s quote_api=%s", server.Addr, cfg.Quote.BaseURL)
			go func() {
				if err := server.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatalf("[HTTP] action=serve error=%v", err)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Println("[HTTP] action=stop")
			return server.Shutdown(ctx)
		},
	})
}
