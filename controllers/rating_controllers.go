package controllers

import (
	"fmt"
	"net/http"

	"github.com/UpekaFernando/tour-blog-info-final/config"
	middlewares "github.com/UpekaFernando/tour-blog-info-final/middleware"
	"github.com/UpekaFernando/tour-blog-info-final/models"
	"github.com/UpekaFernando/tour-blog-info-final/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm/clause"
)

type RatingInput struct {
	Value         int  `json:"value" binding:"required"`
	DestinationID uint `json:"destinationId" binding:"required"`
}

type RatingStats struct {
	Average string `json:"average"`
	Total   int64  `json:"total"`
}

// RateDestination upserts the caller's rating for a destination. The
// unique index on (user_id, destination_id) plus ON CONFLICT keeps the
// operation atomic under concurrent requests.
func RateDestination(c *gin.Context) {
	caller := middlewares.CurrentUser(c)

	var input RatingInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 0, "mess": err.Error()})
		return
	}

	var destination models.Destination
	if err := config.DB.First(&destination, input.DestinationID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"code": 0, "mess": "Destination not found"})
		return
	}

	rating := models.Rating{
		Value:         input.Value,
		UserID:        caller.ID,
		DestinationID: input.DestinationID,
	}
	if err := rating.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 0, "mess": "Rating value must be between 1 and 5"})
		return
	}

	if err := config.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "destination_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
	}).Create(&rating).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Server error"})
		return
	}

	// The upsert path does not report the surviving row id; reload it.
	var saved models.Rating
	if err := config.DB.Where("user_id = ? AND destination_id = ?", caller.ID, input.DestinationID).
		First(&saved).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 1, "mess": "Rating saved", "data": saved})
}

// GetDestinationRatings returns all ratings for a destination together
// with the average and total.
func GetDestinationRatings(c *gin.Context) {
	var destination models.Destination
	if err := config.DB.First(&destination, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"code": 0, "mess": "Destination not found"})
		return
	}

	var ratings []models.Rating
	if err := config.DB.Preload("User").
		Where("destination_id = ?", destination.ID).
		Find(&ratings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Server error"})
		return
	}

	var average float64
	var total int64
	row := config.DB.Model(&models.Rating{}).
		Where("destination_id = ?", destination.ID).
		Select("COALESCE(AVG(value), 0), COUNT(id)").
		Row()
	if err := row.Scan(&average, &total); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 1, "mess": "Ratings fetched", "data": gin.H{
		"ratings": ratings,
		"stats": RatingStats{
			Average: fmt.Sprintf("%.1f", average),
			Total:   total,
		},
	}})
}

func UpdateRating(c *gin.Context) {
	caller := middlewares.CurrentUser(c)

	var input struct {
		Value int `json:"value" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 0, "mess": err.Error()})
		return
	}

	var rating models.Rating
	if err := config.DB.First(&rating, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"code": 0, "mess": "Rating not found"})
		return
	}

	if !services.CanMutate(caller, rating.UserID) {
		c.JSON(http.StatusForbidden, gin.H{"code": 0, "mess": "Not authorized"})
		return
	}

	rating.Value = input.Value
	if err := rating.Validate(); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 0, "mess": "Rating value must be between 1 and 5"})
		return
	}

	if err := config.DB.Save(&rating).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 1, "mess": "Rating updated", "data": rating})
}

func DeleteRating(c *gin.Context) {
	caller := middlewares.CurrentUser(c)

	var rating models.Rating
	if err := config.DB.First(&rating, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"code": 0, "mess": "Rating not found"})
		return
	}

	if !services.CanMutate(caller, rating.UserID) {
		c.JSON(http.StatusForbidden, gin.H{"code": 0, "mess": "Not authorized"})
		return
	}

	if err := config.DB.Delete(&rating).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 1, "mess": "Rating removed"})
}
