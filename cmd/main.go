package main

import (
	"os"

	"github.com/sirupsen/logrus"

	"github.com/Designdill/nutri-manager-pro-81-sub001/config"
	"github.com/Designdill/nutri-manager-pro-81-sub001/routes"
)

func main() {
	config.InitDB()

	r := routes.SetupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	logrus.WithField("port", port).Info("starting server")
	if err := r.Run(":" + port); err != nil {
		logrus.Fatalf("server exited: %v", err)
	}
}
