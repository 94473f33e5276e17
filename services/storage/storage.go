package storage

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
)

// ErrNotConfigured is returned when no Cloudinary URL is set.
var ErrNotConfigured = errors.New("cloudinary is not configured")

// UploadResult describes a stored media asset.
type UploadResult struct {
	PublicID string `json:"publicId"`
	URL      string `json:"url"`
}

// MediaService stores images uploaded through the admin editor.
type MediaService interface {
	Upload(ctx context.Context, file multipart.File, folder string) (*UploadResult, error)
	Delete(ctx context.Context, publicID string) error
}

type CloudinaryMediaService struct {
	cld *cloudinary.Cloudinary
}

// NewMediaService connects to Cloudinary from a cloudinary:// URL.
func NewMediaService(cloudinaryURL string) (*CloudinaryMediaService, error) {
	if cloudinaryURL == "" {
		return nil, ErrNotConfigured
	}
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cloudinary: %w", err)
	}
	return &CloudinaryMediaService{cld: cld}, nil
}

// Upload stores the file in the given folder and returns its public URL.
func (s *CloudinaryMediaService) Upload(ctx context.Context, file multipart.File, folder string) (*UploadResult, error) {
	result, err := s.cld.Upload.Upload(ctx, file, uploader.UploadParams{Folder: folder})
	if err != nil {
		return nil, fmt.Errorf("failed to upload file: %w", err)
	}
	if result.PublicID == "" {
		return nil, errors.New("no public ID returned")
	}
	return &UploadResult{PublicID: result.PublicID, URL: result.SecureURL}, nil
}

// Delete removes an asset by its public ID.
func (s *CloudinaryMediaService) Delete(ctx context.Context, publicID string) error {
	if _, err := s.cld.Upload.Destroy(ctx, uploader.DestroyParams{PublicID: publicID}); err != nil {
		return fmt.Errorf("failed to delete file: %w", err)
	}
	return nil
}
