package controllers

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/UpekaFernando/tour-blog-info-final/config"
	"github.com/UpekaFernando/tour-blog-info-final/services"

	"github.com/gin-gonic/gin"
)

// Weather responses are cached briefly so gallery pages do not hammer
// the upstream provider.
const weatherCacheTTL = 10 * time.Minute

func GetCurrentWeather(c *gin.Context) {
	city := c.Param("city")
	cacheKey := "weather:current:" + city

	rdb, err := config.ConnectRedis()
	if err == nil {
		var cached services.CurrentWeather
		if err := services.GetFromRedis(config.Ctx, rdb, cacheKey, &cached); err == nil && cached.Location != "" {
			c.JSON(http.StatusOK, gin.H{"code": 1, "mess": "Weather fetched from cache", "data": cached})
			return
		}
	}

	weather, err := services.GetCurrentWeather(city)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"code": 0, "mess": err.Error()})
		return
	}

	if rdb != nil {
		if err := services.SetToRedis(config.Ctx, rdb, cacheKey, weather, weatherCacheTTL); err != nil {
			log.Printf("Error caching weather: %v", err)
		}
	}

	c.JSON(http.StatusOK, gin.H{"code": 1, "mess": "Weather fetched", "data": weather})
}

func GetWeatherByCoordinates(c *gin.Context) {
	latStr := c.Query("lat")
	lonStr := c.Query("lon")
	if latStr == "" || lonStr == "" {
		c.JSON(http.StatusBadRequest, gin.H{"code": 0, "mess": "Latitude and longitude are required"})
		return
	}

	lat, latErr := strconv.ParseFloat(latStr, 64)
	lon, lonErr := strconv.ParseFloat(lonStr, 64)
	if latErr != nil || lonErr != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 0, "mess": "Invalid coordinates"})
		return
	}

	weather, err := services.GetWeatherByCoordinates(lat, lon)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"code": 0, "mess": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 1, "mess": "Weather fetched", "data": weather})
}

func GetForecast(c *gin.Context) {
	city := c.Param("city")
	cacheKey := "weather:forecast:" + city

	rdb, err := config.ConnectRedis()
	if err == nil {
		var cached []services.ForecastDay
		if err := services.GetFromRedis(config.Ctx, rdb, cacheKey, &cached); err == nil && len(cached) > 0 {
			c.JSON(http.StatusOK, gin.H{"code": 1, "mess": "Forecast fetched from cache", "data": cached})
			return
		}
	}

	forecast, err := services.GetForecast(city)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"code": 0, "mess": err.Error()})
		return
	}

	if rdb != nil {
		if err := services.SetToRedis(config.Ctx, rdb, cacheKey, forecast, weatherCacheTTL); err != nil {
			log.Printf("Error caching forecast: %v", err)
		}
	}

	c.JSON(http.StatusOK, gin.H{"code": 1, "mess": "Forecast fetched", "data": forecast})
}

func GetSriLankaWeather(c *gin.Context) {
	cacheKey := "weather:srilanka"

	rdb, err := config.ConnectRedis()
	if err == nil {
		var cached []services.CurrentWeather
		if err := services.GetFromRedis(config.Ctx, rdb, cacheKey, &cached); err == nil && len(cached) > 0 {
			c.JSON(http.StatusOK, gin.H{"code": 1, "mess": "Weather fetched from cache", "data": cached})
			return
		}
	}

	weather := services.GetSriLankaWeather()

	if rdb != nil {
		if err := services.SetToRedis(config.Ctx, rdb, cacheKey, weather, weatherCacheTTL); err != nil {
			log.Printf("Error caching Sri Lanka weather: %v", err)
		}
	}

	c.JSON(http.StatusOK, gin.H{"code": 1, "mess": "Weather fetched", "data": weather})
}
