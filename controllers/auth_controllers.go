package controllers

import (
	"log"
	"net/http"

	"github.com/UpekaFernando/tour-blog-info-final/config"
	"github.com/UpekaFernando/tour-blog-info-final/models"
	"github.com/UpekaFernando/tour-blog-info-final/services"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type RegisterInput struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
}

type LoginInput struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	IsAdmin        bool   `json:"isAdmin"`
	ProfilePicture string `json:"profilePicture"`
	Token          string `json:"token"`
}

// RegisterUser godoc
// @Summary Register a new user
// @Tags users
// @Accept json
// @Produce json
// @Param registerInput body RegisterInput true "New account details"
// @Success 201 {object} gin.H
// @Failure 400 {object} gin.H
// @Router /users [post]
func RegisterUser(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 0, "mess": err.Error()})
		return
	}

	var existing models.User
	if err := config.DB.Where("email = ?", input.Email).First(&existing).Error; err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 0, "mess": "User already exists"})
		return
	}

	// The credential is hashed exactly once, here at creation.
	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Server error"})
		return
	}

	user := models.User{
		Name:     input.Name,
		Email:    input.Email,
		Password: string(hashed),
	}
	if err := config.DB.Create(&user).Error; err != nil {
		log.Printf("Error creating user: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Server error"})
		return
	}

	token, err := services.GenerateToken(user.ID)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Server error"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"code": 1, "mess": "Registration successful", "data": AuthResponse{
		ID:             user.ID,
		Name:           user.Name,
		Email:          user.Email,
		IsAdmin:        user.IsAdmin,
		ProfilePicture: user.ProfilePicture,
		Token:          token,
	}})
}

// Login godoc
// @Summary Authenticate a user
// @Tags users
// @Accept json
// @Produce json
// @Param loginInput body LoginInput true "Credentials"
// @Success 200 {object} gin.H
// @Failure 401 {object} gin.H
// @Router /users/login [post]
func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 0, "mess": err.Error()})
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", input.Email).First(&user).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"code": 0, "mess": "Invalid email or password"})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(input.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"code": 0, "mess": "Invalid email or password"})
		return
	}

	token, err := services.GenerateToken(user.ID)
	if err != nil {
		log.Printf("Error generating token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 1, "mess": "Login successful", "data": AuthResponse{
		ID:             user.ID,
		Name:           user.Name,
		Email:          user.Email,
		IsAdmin:        user.IsAdmin,
		ProfilePicture: user.ProfilePicture,
		Token:          token,
	}})
}
