package services

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testFile struct {
	name        string
	contentType string
	content     []byte
}

func multipartBody(t *testing.T, field string, files []testFile) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	for _, f := range files {
		header := make(textproto.MIMEHeader)
		header.Set("Content-Disposition",
			fmt.Sprintf(`form-data; name="%s"; filename="%s"`, field, f.name))
		header.Set("Content-Type", f.contentType)
		part, err := writer.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(f.content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return &buf, writer.FormDataContentType()
}

func uploadContext(t *testing.T, field string, files []testFile) *gin.Context {
	t.Helper()
	body, contentType := multipartBody(t, field, files)
	req := httptest.NewRequest(http.MethodPost, "/", body)
	req.Header.Set("Content-Type", contentType)

	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = req
	return c
}

func TestSaveUploadedImagesPreservesOrder(t *testing.T) {
	t.Setenv("UPLOAD_DIR", t.TempDir())

	c := uploadContext(t, "images", []testFile{
		{"first.png", "image/png", []byte("png-bytes-1")},
		{"second.jpg", "image/jpeg", []byte("jpg-bytes-2")},
	})

	paths, err := SaveUploadedImages(c, "images")
	require.NoError(t, err)
	require.Len(t, paths, 2)

	assert.True(t, strings.HasPrefix(paths[0], "/uploads/images-"))
	assert.True(t, strings.HasSuffix(paths[0], ".png"))
	assert.True(t, strings.HasSuffix(paths[1], ".jpg"))
	assert.NotEqual(t, paths[0], paths[1])

	for _, p := range paths {
		onDisk := filepath.Join(os.Getenv("UPLOAD_DIR"), strings.TrimPrefix(p, "/uploads/"))
		_, err := os.Stat(onDisk)
		assert.NoError(t, err, "uploaded file should exist on disk")
	}
}

func TestSaveUploadedImagesRejectsDisguisedBinary(t *testing.T) {
	t.Setenv("UPLOAD_DIR", t.TempDir())

	// An .exe renamed to .jpg fails on the reported MIME type even
	// though the extension passes.
	c := uploadContext(t, "images", []testFile{
		{"malware.jpg", "application/octet-stream", []byte("MZ...")},
	})

	_, err := SaveUploadedImages(c, "images")
	assert.ErrorIs(t, err, ErrUnsupportedMediaType)
}

func TestSaveUploadedImagesRejectsBadExtension(t *testing.T) {
	t.Setenv("UPLOAD_DIR", t.TempDir())

	c := uploadContext(t, "images", []testFile{
		{"notes.txt", "image/png", []byte("hello")},
	})

	_, err := SaveUploadedImages(c, "images")
	assert.ErrorIs(t, err, ErrUnsupportedMediaType)
}

func TestSaveUploadedImagesRejectsWholeSetOnOneBadFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("UPLOAD_DIR", dir)

	c := uploadContext(t, "images", []testFile{
		{"good.png", "image/png", []byte("fine")},
		{"bad.bmp", "image/bmp", []byte("nope")},
	})

	_, err := SaveUploadedImages(c, "images")
	assert.ErrorIs(t, err, ErrUnsupportedMediaType)

	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	assert.Empty(t, entries, "no file may be written when the set is rejected")
}

func TestSaveUploadedImagesRejectsTooMany(t *testing.T) {
	t.Setenv("UPLOAD_DIR", t.TempDir())

	var files []testFile
	for i := 0; i < MaxUploadFiles+1; i++ {
		files = append(files, testFile{
			name:        fmt.Sprintf("img-%d.png", i),
			contentType: "image/png",
			content:     []byte("x"),
		})
	}

	c := uploadContext(t, "images", files)
	_, err := SaveUploadedImages(c, "images")
	assert.ErrorIs(t, err, ErrTooManyFiles)
}

func TestSaveUploadedImagesRejectsOversize(t *testing.T) {
	t.Setenv("UPLOAD_DIR", t.TempDir())

	c := uploadContext(t, "images", []testFile{
		{"huge.png", "image/png", make([]byte, MaxUploadSize+1)},
	})

	_, err := SaveUploadedImages(c, "images")
	assert.ErrorIs(t, err, ErrPayloadTooLarge)
}

func TestSaveUploadedImagesNoFiles(t *testing.T) {
	t.Setenv("UPLOAD_DIR", t.TempDir())

	c := uploadContext(t, "images", nil)
	paths, err := SaveUploadedImages(c, "images")
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestSaveUploadedImageSingle(t *testing.T) {
	t.Setenv("UPLOAD_DIR", t.TempDir())

	c := uploadContext(t, "image", []testFile{
		{"cover.webp", "image/webp", []byte("webp-bytes")},
	})

	path, err := SaveUploadedImage(c, "image")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(path, "/uploads/image-"))
	assert.True(t, strings.HasSuffix(path, ".webp"))
}
