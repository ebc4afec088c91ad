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
	"gorm.io/gorm"
)

func GetTravelGuides(c *gin.Context) {
	tx := config.DB.Preload("User").Order("created_at asc")

	if category := c.Query("category"); category != "" {
		tx = tx.Where("category = ?", category)
	}
	if search := c.Query("search"); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		tx = tx.Where(
			"LOWER(title) LIKE ? OR LOWER(content) LIKE ? OR LOWER(summary) LIKE ?",
			pattern, pattern, pattern,
		)
	}

	var guides []models.TravelGuide
	if err := tx.Find(&guides).Error; err != nil {
		log.Printf("Error fetching travel guides: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 1, "mess": "Travel guides fetched", "data": guides})
}

// GetTravelGuideByID also counts the view. The increment is a single SQL
// expression so concurrent reads all land.
func GetTravelGuideByID(c *gin.Context) {
	var guide models.TravelGuide
	if err := config.DB.Preload("User").First(&guide, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"code": 0, "mess": "Travel guide not found"})
		return
	}

	if err := config.DB.Model(&models.TravelGuide{}).
		Where("id = ?", guide.ID).
		UpdateColumn("view_count", gorm.Expr("view_count + 1")).Error; err != nil {
		log.Printf("Error incrementing view count: %v", err)
	}
	guide.ViewCount++

	c.JSON(http.StatusOK, gin.H{"code": 1, "mess": "Travel guide fetched", "data": guide})
}

func CreateTravelGuide(c *gin.Context) {
	caller := middlewares.CurrentUser(c)

	guide := models.TravelGuide{
		Title:    c.PostForm("title"),
		Category: c.PostForm("category"),
		Content:  c.PostForm("content"),
		Summary:  c.PostForm("summary"),
		UserID:   caller.ID,
	}

	tags, err := jsonArrayField(c.PostForm("tags"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 0, "mess": "Invalid tags format"})
		return
	}
	guide.Tags = tags

	// Only admins publish official guides.
	if caller.IsAdmin && c.PostForm("isOfficial") == "true" {
		guide.IsOfficial = true
	}

	if err := guide.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 0, "mess": err.Error()})
		return
	}

	image, err := services.SaveUploadedImage(c, "image")
	if err != nil {
		if errors.Is(err, services.ErrUnsupportedMediaType) || errors.Is(err, services.ErrPayloadTooLarge) {
			c.JSON(http.StatusBadRequest, gin.H{"code": 0, "mess": err.Error()})
			return
		}
		log.Printf("Error saving travel guide image: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Server error"})
		return
	}
	guide.Image = image

	if err := config.DB.Create(&guide).Error; err != nil {
		log.Printf("Error creating travel guide: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Server error"})
		return
	}

	config.DB.Preload("User").First(&guide, guide.ID)

	c.JSON(http.StatusCreated, gin.H{"code": 1, "mess": "Travel guide created", "data": guide})
}

func UpdateTravelGuide(c *gin.Context) {
	caller := middlewares.CurrentUser(c)

	var guide models.TravelGuide
	if err := config.DB.First(&guide, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"code": 0, "mess": "Travel guide not found"})
		return
	}

	if !services.CanMutate(caller, guide.UserID) {
		c.JSON(http.StatusForbidden, gin.H{"code": 0, "mess": "Not authorized"})
		return
	}

	if title := c.PostForm("title"); title != "" {
		guide.Title = title
	}
	if category := c.PostForm("category"); category != "" {
		guide.Category = category
	}
	if content := c.PostForm("content"); content != "" {
		guide.Content = content
	}
	if summary := c.PostForm("summary"); summary != "" {
		guide.Summary = summary
	}
	if tagsRaw := c.PostForm("tags"); tagsRaw != "" {
		tags, err := jsonArrayField(tagsRaw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"code": 0, "mess": "Invalid tags format"})
			return
		}
		guide.Tags = tags
	}

	if err := guide.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 0, "mess": err.Error()})
		return
	}

	image, err := services.SaveUploadedImage(c, "image")
	if err != nil {
		if errors.Is(err, services.ErrUnsupportedMediaType) || errors.Is(err, services.ErrPayloadTooLarge) {
			c.JSON(http.StatusBadRequest, gin.H{"code": 0, "mess": err.Error()})
			return
		}
		log.Printf("Error saving travel guide image: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Server error"})
		return
	}
	if image != "" {
		guide.Image = image
	}

	if err := config.DB.Save(&guide).Error; err != nil {
		log.Printf("Error updating travel guide: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Server error"})
		return
	}

	config.DB.Preload("User").First(&guide, guide.ID)

	c.JSON(http.StatusOK, gin.H{"code": 1, "mess": "Travel guide updated", "data": guide})
}

func DeleteTravelGuide(c *gin.Context) {
	caller := middlewares.CurrentUser(c)

	var guide models.TravelGuide
	if err := config.DB.First(&guide, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"code": 0, "mess": "Travel guide not found"})
		return
	}

	if !services.CanMutate(caller, guide.UserID) {
		c.JSON(http.StatusForbidden, gin.H{"code": 0, "mess": "Not authorized"})
		return
	}

	if err := config.DB.Delete(&guide).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 1, "mess": "Travel guide removed"})
}

// MarkGuideHelpful bumps the helpful counter atomically.
func MarkGuideHelpful(c *gin.Context) {
	var guide models.TravelGuide
	if err := config.DB.First(&guide, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"code": 0, "mess": "Travel guide not found"})
		return
	}

	if err := config.DB.Model(&models.TravelGuide{}).
		Where("id = ?", guide.ID).
		UpdateColumn("helpful_count", gorm.Expr("helpful_count + 1")).Error; err != nil {
		log.Printf("Error incrementing helpful count: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Server error"})
		return
	}
	guide.HelpfulCount++

	c.JSON(http.StatusOK, gin.H{"code": 1, "mess": "Marked as helpful", "data": guide})
}
