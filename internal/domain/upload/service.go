package upload

import (
	"context"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

const maxFileSize = 10 << 20 // 10 MB

var allowedMimeTypes = map[string]string{
	"image/jpeg":    ".jpg",
	"image/png":     ".png",
	"image/gif":     ".gif",
	"image/webp":    ".webp",
	"image/svg+xml": ".svg",
}

type RepositoryInterface interface {
	Create(ctx context.Context, img *Image) error
	GetByID(ctx context.Context, id string) (*Image, error)
	List(ctx context.Context) ([]*Image, error)
	Delete(ctx context.Context, id string) error
}

type Service struct {
	repo       RepositoryInterface
	uploadsDir string
	staticBase string
}

func NewService(repo RepositoryInterface, uploadsDir, staticBase string) *Service {
	return &Service{repo: repo, uploadsDir: uploadsDir, staticBase: staticBase}
}

// Save validates the file, writes it under a date directory and records it.
func (s *Service) Save(ctx context.Context, userID int64, header *multipart.FileHeader) (*Image, error) {
	if header.Size == 0 {
		return nil, ErrEmptyFile
	}
	if header.Size > maxFileSize {
		return nil, ErrFileTooLarge
	}

	mimeType := header.Header.Get("Content-Type")
	ext, ok := allowedMimeTypes[mimeType]
	if !ok {
		return nil, ErrInvalidMimeType
	}

	dateDir := time.Now().UTC().Format("2006/01/02")
	dir := filepath.Join(s.uploadsDir, dateDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	id := uuid.New().String()
	filename := id + ext
	dst := filepath.Join(dir, filename)
	if err := writeFile(header, dst); err != nil {
		return nil, err
	}

	img := &Image{
		ID:           id,
		UserID:       userID,
		OriginalName: header.Filename,
		FilePath:     dst,
		FileURL:      strings.TrimSuffix(s.staticBase, "/") + "/" + dateDir + "/" + filename,
		MimeType:     mimeType,
		Size:         header.Size,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, img); err != nil {
		os.Remove(dst)
		return nil, err
	}
	return img, nil
}

func (s *Service) List(ctx context.Context) ([]*Image, error) {
	return s.repo.List(ctx)
}

// Delete removes the record and best-effort removes the file from disk.
func (s *Service) Delete(ctx context.Context, id string) error {
	img, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	os.Remove(img.FilePath)
	return nil
}

func writeFile(header *multipart.FileHeader, dst string) error {
	src, err := header.Open()
	if err != nil {
		return fmt.Errorf("open uploaded file: %w", err)
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create file: %w", err)
	}
	defer out.Close()

	if _, err := out.ReadFrom(src); err != nil {
		return fmt.Errorf("write file: %w", err)
	}
	return nil
}
