package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/dto"
	"github.com/ahmetcoskunkizilkaya/ideahub-backend/internal/storage"
	"github.com/gabriel-vasile/mimetype"
)

// sniffLen bytes of the body decide its type; the declared Content-Type is only a first filter.
const sniffLen = 512

var allowedImageTypes = []string{"image/png", "image/jpeg", "image/webp", "image/gif"}

type UploadService struct {
	store   storage.Storage
	maxSize int64
}

// NewUploadService accepts a nil store; every upload then fails with ErrUploadsDisabled.
func NewUploadService(store storage.Storage, maxSize int64) *UploadService {
	return &UploadService{store: store, maxSize: maxSize}
}

func (s *UploadService) Enabled() bool {
	return s.store != nil
}

func (s *UploadService) UploadImage(ctx context.Context, fileName, contentType string, size int64, file io.Reader) (*dto.UploadResponse, error) {
	if s.store == nil {
		return nil, ErrUploadsDisabled
	}
	if !strings.HasPrefix(contentType, "image/") {
		return nil, invalid("image", "image must be an image file")
	}
	if size <= 0 {
		return nil, invalid("image", "image is required")
	}
	if s.maxSize > 0 && size > s.maxSize {
		return nil, invalid("image", fmt.Sprintf("image cannot exceed %d bytes", s.maxSize))
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(file, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	head = head[:n]

	detected := mimetype.Detect(head)
	if !mimetype.EqualsAny(detected.String(), allowedImageTypes...) {
		return nil, invalid("image", "image must be a PNG, JPEG, WebP or GIF file")
	}

	// The stored name and type follow the bytes, not what the client claimed.
	name := strings.TrimSuffix(fileName, filepath.Ext(fileName)) + detected.Extension()
	body := io.MultiReader(bytes.NewReader(head), file)

	objectName, url, err := s.store.UploadImage(ctx, name, detected.String(), body, size)
	if err != nil {
		return nil, fmt.Errorf("failed to store image: %w", err)
	}
	return &dto.UploadResponse{URL: url, ObjectName: objectName}, nil
}
