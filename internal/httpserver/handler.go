package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	generationHTTP "gemini-gateway/internal/generation/delivery/http"
)

func (srv HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()

	if err := srv.registerDomainRoutes(); err != nil {
		return err
	}

	return nil
}

func (srv HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.mw.RequestID())

	srv.l.Infof(context.Background(), "Middlewares registered (env: %s)", srv.environment)
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes.
func (srv HTTPServer) registerDomainRoutes() error {
	ctx := context.Background()

	api := srv.gin.Group("/api/v1")
	srv.setupGenerationDomain(ctx, api)

	return nil
}

// setupGenerationDomain wires the generation domain and registers its routes
// under /api/v1/generation.
func (srv HTTPServer) setupGenerationDomain(ctx context.Context, api *gin.RouterGroup) {
	h := generationHTTP.New(srv.l, srv.generationUC)
	generationHTTP.RegisterRoutes(api.Group("/generation"), h, srv.mw)

	srv.l.Infof(ctx, "Generation domain registered")
}
