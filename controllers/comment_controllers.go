package controllers

import (
	"net/http"
	"time"

	"github.com/UpekaFernando/tour-blog-info-final/config"
	middlewares "github.com/UpekaFernando/tour-blog-info-final/middleware"
	"github.com/UpekaFernando/tour-blog-info-final/models"
	"github.com/UpekaFernando/tour-blog-info-final/services"

	"github.com/gin-gonic/gin"
)

type CommentInput struct {
	Content       string `json:"content" binding:"required"`
	DestinationID uint   `json:"destinationId" binding:"required"`
}

type CommentResponse struct {
	ID            uint          `json:"id"`
	Content       string        `json:"content"`
	DestinationID uint          `json:"destinationId"`
	CreatedAt     time.Time     `json:"createdAt"`
	User          AuthorSummary `json:"user"`
}

func commentResponse(comment models.Comment) CommentResponse {
	return CommentResponse{
		ID:            comment.ID,
		Content:       comment.Content,
		DestinationID: comment.DestinationID,
		CreatedAt:     comment.CreatedAt,
		User: AuthorSummary{
			ID:             comment.User.ID,
			Name:           comment.User.Name,
			ProfilePicture: comment.User.ProfilePicture,
		},
	}
}

func CreateComment(c *gin.Context) {
	caller := middlewares.CurrentUser(c)

	var input CommentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 0, "mess": err.Error()})
		return
	}

	var destination models.Destination
	if err := config.DB.First(&destination, input.DestinationID).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"code": 0, "mess": "Destination not found"})
		return
	}

	comment := models.Comment{
		Content:       input.Content,
		DestinationID: input.DestinationID,
		UserID:        caller.ID,
	}
	if err := config.DB.Create(&comment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Server error"})
		return
	}

	config.DB.Preload("User").First(&comment, comment.ID)

	c.JSON(http.StatusCreated, gin.H{"code": 1, "mess": "Comment created", "data": commentResponse(comment)})
}

func GetCommentsByDestination(c *gin.Context) {
	var destination models.Destination
	if err := config.DB.First(&destination, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"code": 0, "mess": "Destination not found"})
		return
	}

	var comments []models.Comment
	if err := config.DB.Preload("User").
		Where("destination_id = ?", destination.ID).
		Order("created_at desc").
		Find(&comments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Server error"})
		return
	}

	responses := make([]CommentResponse, 0, len(comments))
	for _, comment := range comments {
		responses = append(responses, commentResponse(comment))
	}

	c.JSON(http.StatusOK, gin.H{"code": 1, "mess": "Comments fetched", "data": responses})
}

func UpdateComment(c *gin.Context) {
	caller := middlewares.CurrentUser(c)

	var input struct {
		Content string `json:"content" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 0, "mess": err.Error()})
		return
	}

	var comment models.Comment
	if err := config.DB.First(&comment, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"code": 0, "mess": "Comment not found"})
		return
	}

	if !services.CanMutate(caller, comment.UserID) {
		c.JSON(http.StatusForbidden, gin.H{"code": 0, "mess": "Not authorized"})
		return
	}

	comment.Content = input.Content
	if err := config.DB.Save(&comment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Server error"})
		return
	}

	config.DB.Preload("User").First(&comment, comment.ID)

	c.JSON(http.StatusOK, gin.H{"code": 1, "mess": "Comment updated", "data": commentResponse(comment)})
}

func DeleteComment(c *gin.Context) {
	caller := middlewares.CurrentUser(c)

	var comment models.Comment
	if err := config.DB.First(&comment, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"code": 0, "mess": "Comment not found"})
		return
	}

	if !services.CanMutate(caller, comment.UserID) {
		c.JSON(http.StatusForbidden, gin.H{"code": 0, "mess": "Not authorized"})
		return
	}

	if err := config.DB.Delete(&comment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 1, "mess": "Comment removed"})
}
