package server

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/molstack/scoreflow/handlers/scoring"
	"github.com/molstack/scoreflow/internal/middleware"
	"github.com/molstack/scoreflow/pkg/configs"
	"github.com/molstack/scoreflow/pkg/logger"
)

func InitServer(configs *configs.AppConfigs) {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(middleware.RecoveryMiddleware(), middleware.MetricsMiddleware())

	router.GET("/health/self", func(c *gin.Context) {
		c.String(http.StatusOK, "true")
	})
	router.POST("/score", scoring.ScoreHandler)

	address := fmt.Sprintf(":%d", configs.Configs.ApplicationPort)
	logger.Info(fmt.Sprintf("scoreflow started on port %s", address))
	if err := router.Run(address); err != nil {
		logger.Panic("Failed to start scoreflow application!", err)
	}
}
