package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/UpekaFernando/tour-blog-info-final/config"
	middlewares "github.com/UpekaFernando/tour-blog-info-final/middleware"
	"github.com/UpekaFernando/tour-blog-info-final/models"
	"github.com/UpekaFernando/tour-blog-info-final/services"

	"github.com/gin-gonic/gin"
	"github.com/goccy/go-json"
	"gorm.io/gorm"
)

const destinationsCacheKey = "destinations:all"

type DistrictSummary struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Province string `json:"province"`
}

type AuthorSummary struct {
	ID             uint   `json:"id"`
	Name           string `json:"name"`
	ProfilePicture string `json:"profilePicture"`
}

type DestinationResponse struct {
	ID              uint            `json:"id"`
	CreatedAt       time.Time       `json:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	Images          []string        `json:"images"`
	Latitude        float64         `json:"latitude"`
	Longitude       float64         `json:"longitude"`
	BestTimeToVisit string          `json:"bestTimeToVisit"`
	TravelTips      string          `json:"travelTips"`
	DistrictID      uint            `json:"districtId"`
	AuthorID        uint            `json:"authorId"`
	District        DistrictSummary `json:"district"`
	Author          AuthorSummary   `json:"author"`
}

func destinationResponse(d models.Destination) DestinationResponse {
	return DestinationResponse{
		ID:              d.ID,
		CreatedAt:       d.CreatedAt,
		UpdatedAt:       d.UpdatedAt,
		Title:           d.Title,
		Description:     d.Description,
		Images:          d.ImageList(),
		Latitude:        d.Latitude,
		Longitude:       d.Longitude,
		BestTimeToVisit: d.BestTimeToVisit,
		TravelTips:      d.TravelTips,
		DistrictID:      d.DistrictID,
		AuthorID:        d.AuthorID,
		District: DistrictSummary{
			ID:       d.District.ID,
			Name:     d.District.Name,
			Province: d.District.Province,
		},
		Author: AuthorSummary{
			ID:             d.Author.ID,
			Name:           d.Author.Name,
			ProfilePicture: d.Author.ProfilePicture,
		},
	}
}

func destinationCacheKey(districtFilter string) string {
	if districtFilter != "" {
		return fmt.Sprintf("destinations:district:%s", districtFilter)
	}
	return destinationsCacheKey
}

func invalidateDestinationCaches(districtIDs ...uint) {
	rdb, err := config.ConnectRedis()
	if err != nil {
		return
	}
	keys := []string{destinationsCacheKey}
	for _, id := range districtIDs {
		keys = append(keys, fmt.Sprintf("destinations:district:%d", id))
	}
	_ = services.DeleteFromRedis(config.Ctx, rdb, keys...)
}

func uploadStatus(err error) (int, bool) {
	if errors.Is(err, services.ErrUnsupportedMediaType) ||
		errors.Is(err, services.ErrPayloadTooLarge) ||
		errors.Is(err, services.ErrTooManyFiles) {
		return http.StatusBadRequest, true
	}
	return 0, false
}

// CreateDestination godoc
// @Summary Create a destination
// @Tags destinations
// @Accept mpfd
// @Produce json
// @Param title formData string true "Title"
// @Param description formData string true "Description"
// @Param districtId formData int true "District id"
// @Param bestTimeToVisit formData string true "Best time to visit"
// @Param travelTips formData string true "Travel tips"
// @Param images formData file true "Up to 10 images"
// @Success 201 {object} gin.H
// @Failure 400 {object} gin.H
// @Router /destinations [post]
func CreateDestination(c *gin.Context) {
	caller := middlewares.CurrentUser(c)

	title := c.PostForm("title")
	description := c.PostForm("description")
	districtIDStr := c.PostForm("districtId")
	bestTimeToVisit := c.PostForm("bestTimeToVisit")
	travelTips := c.PostForm("travelTips")

	if title == "" || description == "" || districtIDStr == "" || bestTimeToVisit == "" || travelTips == "" {
		c.JSON(http.StatusBadRequest, gin.H{"code": 0, "mess": "Missing required fields"})
		return
	}

	districtID, err := strconv.ParseUint(districtIDStr, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 0, "mess": "Invalid district id"})
		return
	}

	var district models.District
	if err := config.DB.First(&district, districtID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 0, "mess": "District does not exist"})
		return
	}

	latitude, _ := strconv.ParseFloat(c.PostForm("latitude"), 64)
	longitude, _ := strconv.ParseFloat(c.PostForm("longitude"), 64)

	images, err := services.SaveUploadedImages(c, "images")
	if err != nil {
		if status, ok := uploadStatus(err); ok {
			c.JSON(status, gin.H{"code": 0, "mess": err.Error()})
			return
		}
		log.Printf("Error saving destination images: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Server error"})
		return
	}
	if len(images) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"code": 0, "mess": "At least one image is required"})
		return
	}

	destination := models.Destination{
		Title:           title,
		Description:     description,
		Latitude:        latitude,
		Longitude:       longitude,
		BestTimeToVisit: bestTimeToVisit,
		TravelTips:      travelTips,
		DistrictID:      uint(districtID),
		AuthorID:        caller.ID,
	}
	destination.SetImageList(images)

	if err := config.DB.Create(&destination).Error; err != nil {
		// Uploaded files stay on disk; orphan risk is accepted.
		log.Printf("Error creating destination: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Server error"})
		return
	}

	if err := config.DB.Preload("District").Preload("Author").First(&destination, destination.ID).Error; err != nil {
		log.Printf("Error reloading destination: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Server error"})
		return
	}

	invalidateDestinationCaches(destination.DistrictID)

	c.JSON(http.StatusCreated, gin.H{"code": 1, "mess": "Destination created", "data": destinationResponse(destination)})
}

// GetDestinations godoc
// @Summary List destinations, optionally filtered by district
// @Tags destinations
// @Produce json
// @Param district query int false "District id filter"
// @Success 200 {object} gin.H
// @Router /destinations [get]
func GetDestinations(c *gin.Context) {
	districtFilter := c.Query("district")
	cacheKey := destinationCacheKey(districtFilter)

	var responses []DestinationResponse

	rdb, err := config.ConnectRedis()
	if err == nil {
		if err := services.GetFromRedis(config.Ctx, rdb, cacheKey, &responses); err == nil && len(responses) > 0 {
			c.JSON(http.StatusOK, gin.H{"code": 1, "mess": "Destinations fetched from cache", "data": responses})
			return
		}
	}

	tx := config.DB.Preload("District").Preload("Author").Order("created_at asc")
	if districtFilter != "" {
		if districtID, err := strconv.Atoi(districtFilter); err == nil {
			tx = tx.Where("district_id = ?", districtID)
		}
	}

	var destinations []models.Destination
	if err := tx.Find(&destinations).Error; err != nil {
		log.Printf("Error fetching destinations: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Server error"})
		return
	}

	responses = make([]DestinationResponse, 0, len(destinations))
	for _, destination := range destinations {
		responses = append(responses, destinationResponse(destination))
	}

	if rdb != nil {
		if err := services.SetToRedis(config.Ctx, rdb, cacheKey, responses, time.Hour); err != nil {
			log.Printf("Error caching destinations: %v", err)
		}
	}

	c.JSON(http.StatusOK, gin.H{"code": 1, "mess": "Destinations fetched", "data": responses})
}

func GetDestinationByID(c *gin.Context) {
	var destination models.Destination
	if err := config.DB.Preload("District").Preload("Author").First(&destination, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"code": 0, "mess": "Destination not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"code": 1, "mess": "Destination fetched", "data": destinationResponse(destination)})
}

// UpdateDestination applies a partial update. The final image list is the
// caller-supplied retained subset of the stored list followed by any
// freshly uploaded files. The read-merge-write runs inside a transaction
// so concurrent edits cannot drop each other's images.
func UpdateDestination(c *gin.Context) {
	caller := middlewares.CurrentUser(c)

	newImages, err := services.SaveUploadedImages(c, "images")
	if err != nil {
		if status, ok := uploadStatus(err); ok {
			c.JSON(status, gin.H{"code": 0, "mess": err.Error()})
			return
		}
		log.Printf("Error saving destination images: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Server error"})
		return
	}

	var destination models.Destination
	var oldDistrictID uint

	txErr := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&destination, c.Param("id")).Error; err != nil {
			return err
		}
		oldDistrictID = destination.DistrictID

		if !services.CanMutate(caller, destination.AuthorID) {
			return errForbidden
		}

		if title := c.PostForm("title"); title != "" {
			destination.Title = title
		}
		if description := c.PostForm("description"); description != "" {
			destination.Description = description
		}
		if districtIDStr := c.PostForm("districtId"); districtIDStr != "" {
			districtID, err := strconv.ParseUint(districtIDStr, 10, 32)
			if err != nil {
				return errValidation
			}
			var district models.District
			if err := tx.First(&district, districtID).Error; err != nil {
				return errValidation
			}
			destination.DistrictID = uint(districtID)
		}
		if bestTime := c.PostForm("bestTimeToVisit"); bestTime != "" {
			destination.BestTimeToVisit = bestTime
		}
		if tips := c.PostForm("travelTips"); tips != "" {
			destination.TravelTips = tips
		}
		if lat := c.PostForm("latitude"); lat != "" {
			if parsed, err := strconv.ParseFloat(lat, 64); err == nil {
				destination.Latitude = parsed
			}
		}
		if lon := c.PostForm("longitude"); lon != "" {
			if parsed, err := strconv.ParseFloat(lon, 64); err == nil {
				destination.Longitude = parsed
			}
		}

		images := destination.ImageList()
		if existingRaw := c.PostForm("existingImages"); existingRaw != "" {
			var requested []string
			if err := json.Unmarshal([]byte(existingRaw), &requested); err != nil {
				return errValidation
			}
			// Only paths already stored for this destination survive;
			// arbitrary client strings never enter the list.
			stored := make(map[string]bool, len(images))
			for _, path := range images {
				stored[path] = true
			}
			retained := make([]string, 0, len(requested))
			for _, path := range requested {
				if stored[path] {
					retained = append(retained, path)
				}
			}
			images = retained
		}
		images = append(images, newImages...)
		destination.SetImageList(images)

		return tx.Save(&destination).Error
	})
	if txErr != nil {
		respondDestinationError(c, txErr)
		return
	}

	if err := config.DB.Preload("District").Preload("Author").First(&destination, destination.ID).Error; err != nil {
		log.Printf("Error reloading destination: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Server error"})
		return
	}

	invalidateDestinationCaches(oldDistrictID, destination.DistrictID)

	c.JSON(http.StatusOK, gin.H{"code": 1, "mess": "Destination updated", "data": destinationResponse(destination)})
}

// DeleteDestination hard-deletes the row together with its comments and
// ratings. Uploaded files stay on disk.
func DeleteDestination(c *gin.Context) {
	caller := middlewares.CurrentUser(c)

	var destination models.Destination

	txErr := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&destination, c.Param("id")).Error; err != nil {
			return err
		}
		if !services.CanMutate(caller, destination.AuthorID) {
			return errForbidden
		}

		if err := tx.Where("destination_id = ?", destination.ID).Delete(&models.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("destination_id = ?", destination.ID).Delete(&models.Rating{}).Error; err != nil {
			return err
		}
		return tx.Delete(&destination).Error
	})
	if txErr != nil {
		respondDestinationError(c, txErr)
		return
	}

	invalidateDestinationCaches(destination.DistrictID)

	c.JSON(http.StatusOK, gin.H{"code": 1, "mess": "Destination removed"})
}

// RemoveDestinationImage drops the image at the given position. An
// out-of-range index is an error, not a no-op.
func RemoveDestinationImage(c *gin.Context) {
	caller := middlewares.CurrentUser(c)

	imageIndex, err := strconv.Atoi(c.Param("imageIndex"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": 0, "mess": "Invalid image index"})
		return
	}

	var destination models.Destination

	txErr := config.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&destination, c.Param("id")).Error; err != nil {
			return err
		}
		if !services.CanMutate(caller, destination.AuthorID) {
			return errForbidden
		}

		images := destination.ImageList()
		if imageIndex < 0 || imageIndex >= len(images) {
			return errImageIndex
		}

		images = append(images[:imageIndex], images[imageIndex+1:]...)
		destination.SetImageList(images)

		return tx.Save(&destination).Error
	})
	if txErr != nil {
		respondDestinationError(c, txErr)
		return
	}

	invalidateDestinationCaches(destination.DistrictID)

	c.JSON(http.StatusOK, gin.H{"code": 1, "mess": "Image removed", "data": destinationResponse(destination)})
}

var (
	errForbidden  = errors.New("not authorized")
	errValidation = errors.New("invalid request data")
	errImageIndex = errors.New("image index out of bounds")
)

func respondDestinationError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, gin.H{"code": 0, "mess": "Destination not found"})
	case errors.Is(err, errForbidden):
		c.JSON(http.StatusForbidden, gin.H{"code": 0, "mess": "Not authorized"})
	case errors.Is(err, errValidation):
		c.JSON(http.StatusBadRequest, gin.H{"code": 0, "mess": "Invalid request data"})
	case errors.Is(err, errImageIndex):
		c.JSON(http.StatusBadRequest, gin.H{"code": 0, "mess": "Image index out of bounds"})
	default:
		log.Printf("Destination operation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"code": 0, "mess": "Server error"})
	}
}
