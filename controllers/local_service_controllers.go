package controllers

import (
	"errors"
	"log"
	"net/http"
	"strings"

	"github.com/UpekaFernando/tour-blog-info-final/config"
	middlewares "github.com/UpekaFernando/tour-blog-info-final/middleware"
	"github.com/UpekaFernando/tour-blog-info-final/models"
	"github.com/UpekaFernando/tour-blog-info-final/services"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"gorm.io/gorm"
)

// jsonArrayField parses a form value holding a JSON string array. An
// empty value yields an empty array, malformed input an error.
func jsonArrayField(value string) (json.RawMessage, error) {
	if value == "" {
		return json.RawMessage("[]"), nil
	}
	var items []string
	if err := json.Unmarshal([]byte(value), &items); err != nil {
		return nil, err
	}
	return json.RawMessage(value), nil
}

// GetLocalServices godoc
// @Summary List local services with optional category, district and search filters
// @Tags local-services
// @Produce json
// @Param category query string false "Category"
// @Param district query string false "District name"
// @Param search query string false "Search term"
// @Success 200 {object} gin.H
// @Router /local-services [get]
func GetLocalServices(c *gin.Context) {
	tx := config.DB.Preload("User").Order("created_at asc")

	if category := c.Query("category"); category != "" {
		tx = tx.Where("category = ?", category)
	}
	if district := c.Query("district"); district != "" {
		tx = tx.Where("district = ?", district)
	}
	if search := c.Query("search"); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		tx = tx.Where(
			"LOWER(name) LIKE ? OR LOWER(description) LIKE ? OR LOWER(location) LIKE ?",
			pattern, pattern, pattern,
		)
	}

	var localServices []models.LocalService
	if err := tx.Find(&localServices).Error; err != nil {
		log.Printf("Error fetching local services: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 1, "mess": "Local services fetched", "data": localServices})
}

func GetLocalServiceByID(c *gin.Context) {
	var service models.LocalService
	if err := config.DB.Preload("User").First(&service, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"code": 0, "mess": "Local service not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 1, "mess": "Local service fetched", "data": service})
}

func CreateLocalService(c *gin.Context) {
	caller := middlewares.CurrentUser(c)

	service := models.LocalService{
		Name:        c.PostForm("name"),
		Category:    c.PostForm("category"),
		Subcategory: c.PostForm("subcategory"),
		Description: c.PostForm("description"),
		Location:    c.PostForm("location"),
		District:    c.PostForm("district"),
		Address:     c.PostForm("address"),
		Phone:       c.PostForm("phone"),
		Email:       c.PostForm("email"),
		Website:     c.PostForm("website"),
		PriceRange:  c.PostForm("priceRange"),
		OpenHours:   c.PostForm("openHours"),
		UserID:      caller.ID,
	}

	for _, field := range []struct {
		name string
		dest *json.RawMessage
	}{
		{"features", &service.Features},
		{"specialties", &service.Specialties},
		{"amenities", &service.Amenities},
		{"services", &service.Services},
	} {
		parsed, err := jsonArrayField(c.PostForm(field.name))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"code": 0, "mess": "Invalid " + field.name + " format"})
			return
		}
		*field.dest = parsed
	}

	if err := service.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 0, "mess": err.Error()})
		return
	}

	image, err := services.SaveUploadedImage(c, "image")
	if err != nil {
		if errors.Is(err, services.ErrUnsupportedMediaType) || errors.Is(err, services.ErrPayloadTooLarge) {
			c.JSON(http.StatusBadRequest, gin.H{"code": 0, "mess": err.Error()})
			return
		}
		log.Printf("Error saving local service image: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Server error"})
		return
	}
	service.Image = image

	if err := config.DB.Create(&service).Error; err != nil {
		log.Printf("Error creating local service: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Server error"})
		return
	}

	config.DB.Preload("User").First(&service, service.ID)

	c.JSON(http.StatusCreated, gin.H{"code": 1, "mess": "Local service created", "data": service})
}

func UpdateLocalService(c *gin.Context) {
	caller := middlewares.CurrentUser(c)

	var service models.LocalService
	if err := config.DB.First(&service, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"code": 0, "mess": "Local service not found"})
		return
	}

	if !services.CanMutate(caller, service.UserID) {
		c.JSON(http.StatusForbidden, gin.H{"code": 0, "mess": "Not authorized"})
		return
	}

	for field, dest := range map[string]*string{
		"name":        &service.Name,
		"category":    &service.Category,
		"subcategory": &service.Subcategory,
		"description": &service.Description,
		"location":    &service.Location,
		"district":    &service.District,
		"address":     &service.Address,
		"phone":       &service.Phone,
		"email":       &service.Email,
		"website":     &service.Website,
		"priceRange":  &service.PriceRange,
		"openHours":   &service.OpenHours,
	} {
		if value := c.PostForm(field); value != "" {
			*dest = value
		}
	}

	for _, field := range []struct {
		name string
		dest *json.RawMessage
	}{
		{"features", &service.Features},
		{"specialties", &service.Specialties},
		{"amenities", &service.Amenities},
		{"services", &service.Services},
	} {
		if value := c.PostForm(field.name); value != "" {
			parsed, err := jsonArrayField(value)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"code": 0, "mess": "Invalid " + field.name + " format"})
				return
			}
			*field.dest = parsed
		}
	}

	if err := service.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 0, "mess": err.Error()})
		return
	}

	image, err := services.SaveUploadedImage(c, "image")
	if err != nil {
		if errors.Is(err, services.ErrUnsupportedMediaType) || errors.Is(err, services.ErrPayloadTooLarge) {
			c.JSON(http.StatusBadRequest, gin.H{"code": 0, "mess": err.Error()})
			return
		}
		log.Printf("Error saving local service image: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Server error"})
		return
	}
	if image != "" {
		service.Image = image
	}

	if err := config.DB.Save(&service).Error; err != nil {
		log.Printf("Error updating local service: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Server error"})
		return
	}

	config.DB.Preload("User").First(&service, service.ID)

	c.JSON(http.StatusOK, gin.H{"code": 1, "mess": "Local service updated", "data": service})
}

func DeleteLocalService(c *gin.Context) {
	caller := middlewares.CurrentUser(c)

	var service models.LocalService
	if err := config.DB.First(&service, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"code": 0, "mess": "Local service not found"})
		return
	}

	if !services.CanMutate(caller, service.UserID) {
		c.JSON(http.StatusForbidden, gin.H{"code": 0, "mess": "Not authorized"})
		return
	}

	if err := config.DB.Delete(&service).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 1, "mess": "Local service removed"})
}

// RateLocalService folds a new rating into the running average with a
// single SQL update so concurrent ratings cannot lose counts.
func RateLocalService(c *gin.Context) {
	var input struct {
		Rating float64 `json:"rating" binding:"required,min=1,max=5"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 0, "mess": "Rating value must be between 1 and 5"})
		return
	}

	var service models.LocalService
	if err := config.DB.First(&service, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"code": 0, "mess": "Local service not found"})
		return
	}

	if err := config.DB.Model(&models.LocalService{}).
		Where("id = ?", service.ID).
		Updates(map[string]interface{}{
			"rating":       gorm.Expr("(rating * rating_count + ?) / (rating_count + 1)", input.Rating),
			"rating_count": gorm.Expr("rating_count + 1"),
		}).Error; err != nil {
		log.Printf("Error rating local service: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Server error"})
		return
	}

	config.DB.First(&service, service.ID)

	c.JSON(http.StatusOK, gin.H{"code": 1, "mess": "Rating saved", "data": service})
}
