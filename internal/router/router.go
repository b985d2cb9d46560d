package router

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/mesadeayuda/helpdesk-service/api"
	"github.com/mesadeayuda/helpdesk-service/internal/handler"
	"github.com/mesadeayuda/helpdesk-service/internal/model"
	"github.com/mesadeayuda/helpdesk-service/internal/session"
)

const (
	pathHealth  = "/health"
	pathReady   = "/ready"
	pathSwagger = "/swagger"
)

func New(resolver *session.Resolver, tickets *handler.TicketHandler, catalogs *handler.CatalogHandler) http.Handler {
	r := gin.New()
	r.Use(gin.Recovery())
	r.GET(pathHealth, handler.Health)
	r.GET(pathReady, handler.Ready)
	r.GET(pathSwagger, func(c *gin.Context) { c.Redirect(http.StatusFound, pathSwagger+"/") })
	r.GET(pathSwagger+"/*any", func(c *gin.Context) {
		if strings.TrimPrefix(c.Param("any"), "/") == "openapi.json" {
			c.Data(http.StatusOK, "application/json", api.OpenAPISpec)
			return
		}
		if strings.TrimPrefix(c.Param("any"), "/") == "" {
			c.Request.URL.Path = pathSwagger + "/index.html"
			c.Request.RequestURI = pathSwagger + "/index.html"
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/openapi.json"))(c)
	})

	v1 := r.Group("/api/v1")
	v1.Use(handler.SessionMiddleware(resolver))
	{
		v1.GET("/session", handler.CurrentSession)
		v1.GET("/access/resolve", handler.ResolveAccess)

		v1.GET("/areas", catalogs.Areas)
		v1.GET("/proyectos", catalogs.Proyectos)
		v1.GET("/tipos-problema", catalogs.TiposProblema)

		v1.POST("/tickets", tickets.Create)
		v1.GET("/tickets", tickets.List)
		v1.GET("/tickets/:id", tickets.Get)
		v1.POST("/tickets/:id/responses", tickets.Respond)

		manage := v1.Group("")
		manage.Use(handler.RequireRole(model.RoleTrabajador, model.RoleAdmin))
		manage.PUT("/tickets/:id/status", tickets.UpdateStatus)
	}

	return r
}
