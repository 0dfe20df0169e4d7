package main

import (
	"context"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"pharmanature-storefront/internal/config"
	"pharmanature-storefront/internal/database"
	"pharmanature-storefront/internal/logger"
	"pharmanature-storefront/internal/routes"
	"pharmanature-storefront/internal/seed"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("invalid configuration")
	}
	logger.Init(cfg.LogLevel)

	client, err := database.Connect(cfg.MongoURI)
	if err != nil {
		logrus.WithError(err).Fatal("could not connect to MongoDB")
	}
	defer database.Disconnect(client)

	db := client.Database(cfg.MongoDB)

	if cfg.Seed {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		if err := seed.Run(ctx, db); err != nil {
			cancel()
			logrus.WithError(err).Fatal("seeding failed")
		}
		cancel()
	}

	router := gin.Default()
	router.Use(cors.New(corsConfig(cfg.CORSOrigins)))
	routes.RegisterRoutes(router, db, time.Duration(cfg.CartTTLMinutes)*time.Minute)

	logrus.WithField("port", cfg.Port).Info("server running")
	if err := router.Run(":" + cfg.Port); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}

func corsConfig(origins string) cors.Config {
	c := cors.DefaultConfig()
	c.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	c.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "X-Cart-Session"}
	c.ExposeHeaders = []string{"X-Cart-Session"}
	if origins == "*" {
		c.AllowAllOrigins = true
		return c
	}
	c.AllowOrigins = strings.Split(origins, ",")
	return c
}
