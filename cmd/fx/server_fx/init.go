package server_fx

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"busquote/internal/config"
	httptransport "busquote/internal/http"
	"busquote/internal/modules/comparison"
)

var Module = fx.Provide(provideHandler, provideHTTPServer)

func provideHandler(cfg config.Config, svc *comparison.Service) http.Handler {
	if cfg.HTTP.GinMode != "" {
		gin.SetMode(cfg.HTTP.GinMode)
	}
	return httptransport.NewServer(httptransport.ServerDeps{
		Comparison:  svc,
		CORSOrigins: cfg.HTTP.CORSOrigins,
	}).Routes()
}

func provideHTTPServer(cfg config.Config, handler http.Handler) *http.Server {
	return &http.Server{Addr: cfg.HTTP.Addr, Handler: handler}
}
