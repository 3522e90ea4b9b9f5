package services

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/devfolio/backend/internal/models"
)

var ErrInvalidFileType = errors.New("invalid file type")

var allowedImageTypes = map[string]bool{
	"image/png":  true,
	"image/jpg":  true,
	"image/jpeg": true,
	"image/webp": true,
}

// UploadService writes uploaded files to local disk. Images land in
// <baseDir>/images, PDFs in <baseDir>/resume; both are served under /uploads.
// Replacing a file does not remove the previous one.
type UploadService struct {
	baseDir string
}

func NewUploadService(baseDir string) (*UploadService, error) {
	for _, sub := range []string{"images", "resume"} {
		if err := os.MkdirAll(filepath.Join(baseDir, sub), 0755); err != nil {
			return nil, err
		}
	}
	return &UploadService{baseDir: baseDir}, nil
}

// SaveImage stores a png/jpg/jpeg/webp upload and returns its public path.
func (s *UploadService) SaveImage(contentType, originalName string, file io.Reader) (*models.UploadResponse, error) {
	if !allowedImageTypes[contentType] {
		return nil, ErrInvalidFileType
	}
	return s.save("images", originalName, ".jpg", file)
}

// SavePDF stores a PDF upload and returns its public path.
func (s *UploadService) SavePDF(contentType, originalName string, file io.Reader) (*models.UploadResponse, error) {
	if contentType != "application/pdf" {
		return nil, ErrInvalidFileType
	}
	return s.save("resume", originalName, ".pdf", file)
}

func (s *UploadService) save(subdir, originalName, fallbackExt string, file io.Reader) (*models.UploadResponse, error) {
	ext := filepath.Ext(originalName)
	if ext == "" {
		ext = fallbackExt
	}

	// Timestamp plus random suffix keeps concurrent uploads from colliding.
	filename := fmt.Sprintf("%d-%d%s", time.Now().UnixMilli(), rand.Intn(1_000_000_000), ext)
	fullPath := filepath.Join(s.baseDir, subdir, filename)

	dst, err := os.Create(fullPath)
	if err != nil {
		return nil, fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, file); err != nil {
		os.Remove(fullPath)
		return nil, fmt.Errorf("failed to save file: %w", err)
	}

	return &models.UploadResponse{
		Path:     "/uploads/" + subdir + "/" + filename,
		Filename: filename,
	}, nil
}
