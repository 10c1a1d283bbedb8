// @title Kanji Quiz API
// @version 1.0
// @description Backend for the kanji quiz game with a passcode-protected parent area.

// @host localhost:8080
// @BasePath /api
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization

package main

import (
	"log"

	"github.com/GinYoshida/kanji-quize/internal/app"
	"github.com/GinYoshida/kanji-quize/internal/config"
	"github.com/GinYoshida/kanji-quize/pkg/configwatcher"
	"github.com/GinYoshida/kanji-quize/pkg/logger"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	application := app.NewApp(cfg)
	defer logger.Log.Sync()

	go configwatcher.WatchConfig("configs/config.yaml", func(newCfg *config.Config) {
		*cfg = *newCfg
		logger.Log.Info("config reloaded")
	})

	application.Run()
}
