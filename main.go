package main

import (
	"log"

	"github.com/UpekaFernando/tour-blog-info-final/config"
	"github.com/UpekaFernando/tour-blog-info-final/routes"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Sri Lanka Travel API
// @version 1.0
// @description REST backend for the Sri Lanka travel-information site.
// @BasePath /api
func main() {
	router := gin.Default()

	if err := config.LoadEnv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	config.ConnectDB()
	if err := config.Migrate(config.DB); err != nil {
		panic("Failed to migrate tables: " + err.Error())
	}

	if _, err := config.ConnectRedis(); err != nil {
		log.Printf("Redis unavailable, list caching disabled: %v", err)
	}

	configCors := cors.DefaultConfig()
	configCors.AddAllowHeaders("Authorization")
	configCors.AllowCredentials = true
	configCors.AllowAllOrigins = false
	configCors.AllowOriginFunc = func(origin string) bool {
		return true
	}
	router.Use(cors.New(configCors))

	routes.SetupRoutes(router)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.Run(":" + config.GetEnv("PORT", "5000"))
}
