package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/UpekaFernando/tour-blog-info-final/config"
	middlewares "github.com/UpekaFernando/tour-blog-info-final/middleware"
	"github.com/UpekaFernando/tour-blog-info-final/models"
	"github.com/UpekaFernando/tour-blog-info-final/services"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type ProfileResponse struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	IsAdmin        bool   `json:"isAdmin"`
	ProfilePicture string `json:"profilePicture"`
}

func profileResponse(user models.User) ProfileResponse {
	return ProfileResponse{
		ID:             user.ID,
		Name:           user.Name,
		Email:          user.Email,
		IsAdmin:        user.IsAdmin,
		ProfilePicture: user.ProfilePicture,
	}
}

func GetUserProfile(c *gin.Context) {
	user := middlewares.CurrentUser(c)
	c.JSON(http.StatusOK, gin.H{"code": 1, "mess": "Profile fetched", "data": profileResponse(user)})
}

// UpdateUserProfile accepts multipart form data so the avatar can be
// replaced together with the text fields. Omitted fields keep their
// previous values.
func UpdateUserProfile(c *gin.Context) {
	user := middlewares.CurrentUser(c)

	if name := c.PostForm("name"); name != "" {
		user.Name = name
	}
	if email := c.PostForm("email"); email != "" {
		user.Email = email
	}
	if password := c.PostForm("password"); password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			log.Printf("Error hashing password: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Server error"})
			return
		}
		user.Password = string(hashed)
	}

	avatar, err := services.SaveUploadedImage(c, "profilePicture")
	if err != nil {
		if errors.Is(err, services.ErrUnsupportedMediaType) || errors.Is(err, services.ErrPayloadTooLarge) {
			c.JSON(http.StatusBadRequest, gin.H{"code": 0, "mess": err.Error()})
			return
		}
		log.Printf("Error saving avatar: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Server error"})
		return
	}
	if avatar != "" {
		user.ProfilePicture = avatar
	}

	if err := config.DB.Save(&user).Error; err != nil {
		log.Printf("Error updating profile: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 1, "mess": "Profile updated", "data": profileResponse(user)})
}
