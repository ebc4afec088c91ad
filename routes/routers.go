package routes

import (
	"github.com/UpekaFernando/tour-blog-info-final/config"
	"github.com/UpekaFernando/tour-blog-info-final/controllers"
	middlewares "github.com/UpekaFernando/tour-blog-info-final/middleware"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(router *gin.Engine) {

	// Uploaded media is served straight from the content directory.
	router.Static("/uploads", config.UploadDir())

	api := router.Group("/api")

	api.POST("/users", controllers.RegisterUser)
	api.POST("/users/login", controllers.Login)
	api.GET("/users/profile", middlewares.Protect(), controllers.GetUserProfile)
	api.PUT("/users/profile", middlewares.Protect(), controllers.UpdateUserProfile)

	api.GET("/districts", controllers.GetDistricts)
	api.GET("/districts/:id", controllers.GetDistrictByID)
	api.POST("/districts", middlewares.Protect(), middlewares.RequireAdmin(), controllers.CreateDistrict)
	api.PUT("/districts/:id", middlewares.Protect(), middlewares.RequireAdmin(), controllers.UpdateDistrict)
	api.DELETE("/districts/:id", middlewares.Protect(), middlewares.RequireAdmin(), controllers.DeleteDistrict)

	api.GET("/destinations", controllers.GetDestinations)
	api.GET("/destinations/:id", controllers.GetDestinationByID)
	api.POST("/destinations", middlewares.Protect(), controllers.CreateDestination)
	api.PUT("/destinations/:id", middlewares.Protect(), controllers.UpdateDestination)
	api.DELETE("/destinations/:id", middlewares.Protect(), controllers.DeleteDestination)
	api.DELETE("/destinations/:id/images/:imageIndex", middlewares.Protect(), controllers.RemoveDestinationImage)

	api.POST("/comments", middlewares.Protect(), controllers.CreateComment)
	api.GET("/comments/destination/:id", controllers.GetCommentsByDestination)
	api.PUT("/comments/:id", middlewares.Protect(), controllers.UpdateComment)
	api.DELETE("/comments/:id", middlewares.Protect(), controllers.DeleteComment)

	api.POST("/ratings", middlewares.Protect(), controllers.RateDestination)
	api.GET("/ratings/destination/:id", controllers.GetDestinationRatings)
	api.PUT("/ratings/:id", middlewares.Protect(), controllers.UpdateRating)
	api.DELETE("/ratings/:id", middlewares.Protect(), controllers.DeleteRating)

	api.GET("/local-services", controllers.GetLocalServices)
	api.GET("/local-services/:id", controllers.GetLocalServiceByID)
	api.POST("/local-services", middlewares.Protect(), controllers.CreateLocalService)
	api.PUT("/local-services/:id", middlewares.Protect(), controllers.UpdateLocalService)
	api.DELETE("/local-services/:id", middlewares.Protect(), controllers.DeleteLocalService)
	api.POST("/local-services/:id/rate", middlewares.Protect(), controllers.RateLocalService)

	api.GET("/travel-guides", controllers.GetTravelGuides)
	api.GET("/travel-guides/:id", controllers.GetTravelGuideByID)
	api.POST("/travel-guides", middlewares.Protect(), controllers.CreateTravelGuide)
	api.PUT("/travel-guides/:id", middlewares.Protect(), controllers.UpdateTravelGuide)
	api.DELETE("/travel-guides/:id", middlewares.Protect(), controllers.DeleteTravelGuide)
	api.POST("/travel-guides/:id/helpful", middlewares.Protect(), controllers.MarkGuideHelpful)

	api.GET("/weather/current/:city", controllers.GetCurrentWeather)
	api.GET("/weather/coordinates", controllers.GetWeatherByCoordinates)
	api.GET("/weather/forecast/:city", controllers.GetForecast)
	api.GET("/weather/sri-lanka", controllers.GetSriLankaWeather)
}
