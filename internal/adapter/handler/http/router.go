package http

import (
	"net/http"

	"motor-rental-api/internal/config"
	"motor-rental-api/internal/core/ports"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "motor-rental-api/docs"
)

type Router struct {
	router *gin.Engine
}

func NewRouter(
	cfg *config.HTTP,
	storageCfg *config.Storage,
	tokenService ports.TokenService,
	motorbikeHandler *MotorbikeHandler,
) (*Router, error) {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// CORS
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{cfg.AllowedOrigins},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Stored avatar images
	router.Static("/images", storageCfg.Dir)

	// Motorbike routes
	motorbikes := router.Group("/motorbikes")
	motorbikes.Use(AuthMiddleware(tokenService))
	{
		motorbikes.POST("", motorbikeHandler.CreateMotorbike)
		motorbikes.GET("", motorbikeHandler.ListMotorbikes)
		motorbikes.GET("/:id", motorbikeHandler.GetMotorbike)
		motorbikes.PUT("/:id", motorbikeHandler.UpdateMotorbike)
		motorbikes.DELETE("/:id", motorbikeHandler.DeleteMotorbike)
	}

	return &Router{router: router}, nil
}

func (r *Router) Serve(addr string) error {
	return r.router.Run(addr)
}

func (r *Router) Engine() *gin.Engine {
	return r.router
}
