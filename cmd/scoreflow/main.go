package main

import (
	"fmt"

	"github.com/spf13/viper"
	_ "go.uber.org/automaxprocs"

	handlerConfig "github.com/molstack/scoreflow/handlers/config"
	"github.com/molstack/scoreflow/handlers/scoring"
	"github.com/molstack/scoreflow/internal/middleware"
	"github.com/molstack/scoreflow/internal/server"
	"github.com/molstack/scoreflow/pkg/configs"
	"github.com/molstack/scoreflow/pkg/logger"
	"github.com/molstack/scoreflow/pkg/metrics"
)

var AppConfigs configs.AppConfigs

func main() {
	viper.AutomaticEnv()
	viper.SetConfigName("application") // file name without .env
	viper.SetConfigType("env")         // file type
	viper.AddConfigPath(".")           // directory

	err := viper.ReadInConfig()
	if err != nil {
		fmt.Println("Error reading config file")
	}
	configs.InitConfig(&AppConfigs)
	logger.InitLogger(&AppConfigs)
	metrics.InitMetrics(&AppConfigs)
	handlerConfig.InitPipelineConfig(&AppConfigs)
	middleware.InitHTTPMiddleware()
	scoring.InitScoringHandler(&AppConfigs)
	server.InitServer(&AppConfigs)
}
