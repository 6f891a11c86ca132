package handlers

import (
	"errors"
	"fmt"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"

	"github.com/camaradigital/gabinete-api/internal/storage/uploads"
)

// saveFormFiles stores every file uploaded under the given multipart field
// and returns their public paths. An absent field yields an empty slice.
func saveFormFiles(c *gin.Context, store uploads.Store, field string, maxSize int64) ([]string, error) {
	form, err := c.MultipartForm()
	if err != nil {
		if errors.Is(err, http.ErrNotMultipart) {
			return nil, nil
		}
		return nil, fmt.Errorf("invalid multipart form: %w", err)
	}

	paths := make([]string, 0, len(form.File[field]))
	for _, header := range form.File[field] {
		path, err := saveFile(c, store, header, maxSize)
		if err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}

	return paths, nil
}

// saveFormFile stores the single file uploaded under the given multipart
// field. An absent field yields an empty path.
func saveFormFile(c *gin.Context, store uploads.Store, field string, maxSize int64) (string, error) {
	header, err := c.FormFile(field)
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
			return "", nil
		}
		return "", fmt.Errorf("invalid file upload: %w", err)
	}

	return saveFile(c, store, header, maxSize)
}

func saveFile(c *gin.Context, store uploads.Store, header *multipart.FileHeader, maxSize int64) (string, error) {
	if maxSize > 0 && header.Size > maxSize {
		return "", fmt.Errorf("file %s exceeds the %d byte limit", header.Filename, maxSize)
	}

	file, err := header.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	path, err := store.Save(c.Request.Context(), header.Filename, file, header.Size, contentType)
	if err != nil {
		return "", fmt.Errorf("failed to store uploaded file: %w", err)
	}

	return path, nil
}

// serveStream writes a stored object to the response, deriving the content
// type from the object name
func serveStream(c *gin.Context, object string, r io.Reader) {
	contentType := mime.TypeByExtension(filepath.Ext(object))
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	c.Header("Content-Type", contentType)
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, r)
}
