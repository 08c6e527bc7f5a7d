package main

import (
	"petstay/config"
	"petstay/di"
	"petstay/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	consumer := di.InitializeStatsConsumer()
	consumer.Serve()
}
