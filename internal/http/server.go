// README: HTTP front end; registers routes and delegates to the comparison service.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"busquote/internal/http/handlers"
	"busquote/internal/http/middleware"
	"busquote/internal/modules/comparison"
)

type ServerDeps struct {
	Comparison  *comparison.Service
	CORSOrigins []string
}

type Server struct {
	comparison  *comparison.Service
	corsOrigins []string
}

func NewServer(deps ServerDeps) *Server {
	return &Server{
		comparison:  deps.Comparison,
		corsOrigins: deps.CORSOrigins,
	}
}

func (s *Server) Routes() http.Handler {
	r := gin.New()
	r.Use(middleware.RequestID(), middleware.Logging(), middleware.Recovery())
	r.SetHTMLTemplate(handlers.Templates())

	compare := handlers.NewCompareHandler(s.comparison)
	r.GET("/", compare.Form)
	r.GET("/compare", compare.Page)
	r.GET("/compare.pdf", compare.PDF)

	api := r.Group("/api", middleware.CORS(s.corsOrigins))
	api.GET("/compare", compare.API)
	api.OPTIONS("/compare", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})
	return r
}
