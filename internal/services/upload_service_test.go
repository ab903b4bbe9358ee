package services

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	pngBytes  = append([]byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR"), bytes.Repeat([]byte{0}, 32)...)
	jpegBytes = append([]byte("\xff\xd8\xff\xe0\x00\x10JFIF\x00"), bytes.Repeat([]byte{0}, 32)...)
)

func TestUploadImage(t *testing.T) {
	ctx := context.Background()

	t.Run("disabled without storage", func(t *testing.T) {
		_, err := NewUploadService(nil, 1024).UploadImage(ctx, "a.png", "image/png", 10, strings.NewReader("x"))
		assert.ErrorIs(t, err, ErrUploadsDisabled)
	})

	t.Run("rejects non-images and oversize files", func(t *testing.T) {
		store := new(mockStorage)
		svc := NewUploadService(store, 1024)

		_, err := svc.UploadImage(ctx, "a.pdf", "application/pdf", 10, strings.NewReader("x"))
		assert.Equal(t, "image must be an image file", validationMessage(t, err))

		_, err = svc.UploadImage(ctx, "a.png", "image/png", 2048, strings.NewReader("x"))
		assert.Equal(t, "image cannot exceed 1024 bytes", validationMessage(t, err))
		store.AssertNotCalled(t, "UploadImage", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("rejects markup labelled as an image", func(t *testing.T) {
		store := new(mockStorage)
		html := "<!DOCTYPE html><html><body><script>alert(1)</script></body></html>"

		_, err := NewUploadService(store, 1024).UploadImage(ctx, "a.png", "image/png", int64(len(html)), strings.NewReader(html))
		assert.Equal(t, "image must be a PNG, JPEG, WebP or GIF file", validationMessage(t, err))
		store.AssertNotCalled(t, "UploadImage", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("stores the image with the full body", func(t *testing.T) {
		store := new(mockStorage)
		var stored []byte
		store.On("UploadImage", mock.Anything, "a.png", "image/png", mock.Anything, int64(len(pngBytes))).
			Run(func(args mock.Arguments) {
				stored, _ = io.ReadAll(args.Get(3).(io.Reader))
			}).
			Return("ideas/2025/01/x.png", "http://minio/ideahub-images/ideas/2025/01/x.png", nil)

		resp, err := NewUploadService(store, 1024).UploadImage(ctx, "a.png", "image/png", int64(len(pngBytes)), bytes.NewReader(pngBytes))
		require.NoError(t, err)
		assert.Equal(t, "ideas/2025/01/x.png", resp.ObjectName)
		assert.Equal(t, pngBytes, stored)
		store.AssertExpectations(t)
	})

	t.Run("type and extension follow the content", func(t *testing.T) {
		store := new(mockStorage)
		store.On("UploadImage", mock.Anything, "photo.jpg", "image/jpeg", mock.Anything, int64(len(jpegBytes))).
			Return("ideas/2025/01/y.jpg", "http://minio/ideahub-images/ideas/2025/01/y.jpg", nil)

		_, err := NewUploadService(store, 1024).UploadImage(ctx, "photo.png", "image/png", int64(len(jpegBytes)), bytes.NewReader(jpegBytes))
		require.NoError(t, err)
		store.AssertExpectations(t)
	})
}
