package main

import (
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/yesyese/Visitor-Portal/app"
	"github.com/yesyese/Visitor-Portal/config"
)

func main() {
	// A missing .env is fine; everything has a default.
	_ = godotenv.Load()

	cfg := config.Load()

	application, err := app.New(cfg)
	if err != nil {
		logrus.WithField("error", err).Fatal("failed to initialize application")
	}

	if err := application.Start(); err != nil {
		logrus.WithField("error", err).Fatal("server stopped")
	}
}
