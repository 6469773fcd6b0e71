package controller

import (
	"fmt"
	"mime/multipart"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// saveTempUpload writes a multipart file into the temp dir so services
// can stream it to object storage. Storage removes the file afterwards.
func saveTempUpload(c *gin.Context, file *multipart.FileHeader, tempDir string) (string, error) {
	ext := filepath.Ext(file.Filename)
	localPath := filepath.Join(tempDir, fmt.Sprintf("%s%s", uuid.New().String(), ext))
	if err := c.SaveUploadedFile(file, localPath); err != nil {
		return "", err
	}
	return localPath, nil
}
