package services

import (
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/UpekaFernando/tour-blog-info-final/config"

	"github.com/gin-gonic/gin"
)

const (
	MaxUploadFiles = 10
	MaxUploadSize  = 5 * 1024 * 1024 // 5MB per file
)

var (
	ErrUnsupportedMediaType = errors.New("images only: jpeg, jpg, png, gif, webp")
	ErrPayloadTooLarge      = errors.New("image exceeds the 5MB limit")
	ErrTooManyFiles         = errors.New("at most 10 images per request")
)

var allowedExtensions = map[string]bool{
	".jpeg": true,
	".jpg":  true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

var allowedMimeTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/webp": true,
}

// validateImage checks extension and reported MIME type. Both must pass;
// a .jpg carrying application/octet-stream is rejected.
func validateImage(file *multipart.FileHeader) error {
	if file.Size > MaxUploadSize {
		return ErrPayloadTooLarge
	}
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedExtensions[ext] {
		return ErrUnsupportedMediaType
	}
	if !allowedMimeTypes[file.Header.Get("Content-Type")] {
		return ErrUnsupportedMediaType
	}
	return nil
}

// storedName builds a collision-resistant file name from the form field,
// a nanosecond timestamp and the original extension.
func storedName(field string, file *multipart.FileHeader) string {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	return fmt.Sprintf("%s-%d%s", field, time.Now().UnixNano(), ext)
}

// SaveUploadedImages validates and persists every file under the given
// multipart field, returning one /uploads/... reference per file in input
// order. The whole set is rejected on the first invalid file. Files already
// written to disk are not removed when a later database write fails; that
// orphan risk is accepted.
func SaveUploadedImages(c *gin.Context, field string) ([]string, error) {
	form, err := c.MultipartForm()
	if err != nil {
		return []string{}, nil // no multipart body means no images
	}

	files := form.File[field]
	if len(files) == 0 {
		return []string{}, nil
	}
	if len(files) > MaxUploadFiles {
		return nil, ErrTooManyFiles
	}

	for _, file := range files {
		if err := validateImage(file); err != nil {
			return nil, err
		}
	}

	dir := config.UploadDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	var paths []string
	for _, file := range files {
		name := storedName(field, file)
		if err := c.SaveUploadedFile(file, filepath.Join(dir, name)); err != nil {
			return nil, err
		}
		paths = append(paths, "/uploads/"+name)
	}

	return paths, nil
}

// SaveUploadedImage persists a single optional file field. An absent field
// yields an empty path and no error.
func SaveUploadedImage(c *gin.Context, field string) (string, error) {
	file, err := c.FormFile(field)
	if err != nil {
		return "", nil
	}

	if err := validateImage(file); err != nil {
		return "", err
	}

	dir := config.UploadDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	name := storedName(field, file)
	if err := c.SaveUploadedFile(file, filepath.Join(dir, name)); err != nil {
		return "", err
	}

	return "/uploads/" + name, nil
}
