package controllers

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/UpekaFernando/tour-blog-info-final/config"
	"github.com/UpekaFernando/tour-blog-info-final/models"
	"github.com/UpekaFernando/tour-blog-info-final/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const districtsCacheKey = "districts:all"

// GetDistricts godoc
// @Summary List all districts
// @Tags districts
// @Produce json
// @Success 200 {object} gin.H
// @Router /districts [get]
func GetDistricts(c *gin.Context) {
	var districts []models.District

	rdb, err := config.ConnectRedis()
	if err == nil {
		if err := services.GetFromRedis(config.Ctx, rdb, districtsCacheKey, &districts); err == nil && len(districts) > 0 {
			c.JSON(http.StatusOK, gin.H{"code": 1, "mess": "Districts fetched from cache", "data": districts})
			return
		}
	}

	if err := config.DB.Order("created_at asc").Find(&districts).Error; err != nil {
		log.Printf("Error fetching districts: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Server error"})
		return
	}

	if rdb != nil {
		if err := services.SetToRedis(config.Ctx, rdb, districtsCacheKey, districts, time.Hour); err != nil {
			log.Printf("Error caching districts: %v", err)
		}
	}

	c.JSON(http.StatusOK, gin.H{"code": 1, "mess": "Districts fetched", "data": districts})
}

func GetDistrictByID(c *gin.Context) {
	var district models.District
	if err := config.DB.First(&district, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"code": 0, "mess": "District not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 1, "mess": "District fetched", "data": district})
}

// CreateDistrict is admin only. Accepts multipart form data with an
// optional cover image under the "image" field.
func CreateDistrict(c *gin.Context) {
	name := c.PostForm("name")
	description := c.PostForm("description")
	province := c.PostForm("province")
	if name == "" || description == "" || province == "" {
		c.JSON(http.StatusBadRequest, gin.H{"code": 0, "mess": "Missing required fields"})
		return
	}

	var existing models.District
	if err := config.DB.Where("name = ?", name).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 0, "mess": "District already exists"})
		return
	}

	latitude, _ := strconv.ParseFloat(c.PostForm("latitude"), 64)
	longitude, _ := strconv.ParseFloat(c.PostForm("longitude"), 64)

	imageURL, err := services.SaveUploadedImage(c, "image")
	if err != nil {
		if errors.Is(err, services.ErrUnsupportedMediaType) || errors.Is(err, services.ErrPayloadTooLarge) {
			c.JSON(http.StatusBadRequest, gin.H{"code": 0, "mess": err.Error()})
			return
		}
		log.Printf("Error saving district image: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Server error"})
		return
	}

	district := models.District{
		Name:        name,
		Description: description,
		Latitude:    latitude,
		Longitude:   longitude,
		ImageURL:    imageURL,
		Province:    province,
	}
	if err := config.DB.Create(&district).Error; err != nil {
		log.Printf("Error creating district: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Server error"})
		return
	}

	invalidateDistrictCaches()

	c.JSON(http.StatusCreated, gin.H{"code": 1, "mess": "District created", "data": district})
}

func UpdateDistrict(c *gin.Context) {
	var district models.District
	if err := config.DB.First(&district, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"code": 0, "mess": "District not found"})
		return
	}

	if name := c.PostForm("name"); name != "" {
		district.Name = name
	}
	if description := c.PostForm("description"); description != "" {
		district.Description = description
	}
	if province := c.PostForm("province"); province != "" {
		district.Province = province
	}
	if lat := c.PostForm("latitude"); lat != "" {
		if parsed, err := strconv.ParseFloat(lat, 64); err == nil {
			district.Latitude = parsed
		}
	}
	if lon := c.PostForm("longitude"); lon != "" {
		if parsed, err := strconv.ParseFloat(lon, 64); err == nil {
			district.Longitude = parsed
		}
	}

	imageURL, err := services.SaveUploadedImage(c, "image")
	if err != nil {
		if errors.Is(err, services.ErrUnsupportedMediaType) || errors.Is(err, services.ErrPayloadTooLarge) {
			c.JSON(http.StatusBadRequest, gin.H{"code": 0, "mess": err.Error()})
			return
		}
		log.Printf("Error saving district image: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Server error"})
		return
	}
	if imageURL != "" {
		district.ImageURL = imageURL
	}

	if err := config.DB.Save(&district).Error; err != nil {
		log.Printf("Error updating district: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Server error"})
		return
	}

	invalidateDistrictCaches()

	c.JSON(http.StatusOK, gin.H{"code": 1, "mess": "District updated", "data": district})
}

// DeleteDistrict removes the district and cascades over its destinations
// and their comments and ratings in one transaction.
func DeleteDistrict(c *gin.Context) {
	var district models.District
	if err := config.DB.First(&district, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"code": 0, "mess": "District not found"})
		return
	}

	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var destinationIDs []uint
		if err := tx.Model(&models.Destination{}).
			Where("district_id = ?", district.ID).
			Pluck("id", &destinationIDs).Error; err != nil {
			return err
		}

		if len(destinationIDs) > 0 {
			if err := tx.Where("destination_id IN ?", destinationIDs).Delete(&models.Comment{}).Error; err != nil {
				return err
			}
			if err := tx.Where("destination_id IN ?", destinationIDs).Delete(&models.Rating{}).Error; err != nil {
				return err
			}
			if err := tx.Where("district_id = ?", district.ID).Delete(&models.Destination{}).Error; err != nil {
				return err
			}
		}

		return tx.Delete(&district).Error
	})
	if err != nil {
		log.Printf("Error deleting district: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Server error"})
		return
	}

	invalidateDistrictCaches()

	c.JSON(http.StatusOK, gin.H{"code": 1, "mess": "District removed"})
}

func invalidateDistrictCaches() {
	rdb, err := config.ConnectRedis()
	if err != nil {
		return
	}
	_ = services.DeleteFromRedis(config.Ctx, rdb, districtsCacheKey, destinationsCacheKey)
}
