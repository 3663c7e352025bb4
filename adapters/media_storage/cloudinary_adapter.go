package media_storage

import (
	"context"
	"encoding/base64"
	"fmt"
	"path"
	"strings"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"

	"github.com/khoahotran/personal-portfolio/internal/application/service"
	"github.com/khoahotran/personal-portfolio/internal/config"
	"github.com/khoahotran/personal-portfolio/pkg/logger"
)

type cloudinaryAdapter struct {
	cld *cloudinary.Cloudinary
}

func NewCloudinaryAdapter(cfg config.Config, log logger.Logger) (service.BlobStore, error) {

	if cfg.Cloudinary.CloudName == "" {
		return nil, fmt.Errorf("cloudinary cloud_name has not config")
	}

	cld, err := cloudinary.NewFromParams(
		cfg.Cloudinary.CloudName,
		cfg.Cloudinary.ApiKey,
		cfg.Cloudinary.ApiSecret,
	)
	if err != nil {
		return nil, fmt.Errorf("cannot init cloudinary: %w", err)
	}
	cld.Config.URL.Secure = true

	log.Info("connect Cloudinary successfully.")
	return &cloudinaryAdapter{cld: cld}, nil
}

// publicID drops the file extension: Cloudinary keeps the format separately
// and serves it back when the extension is part of the delivery URL.
func publicID(key string) string {
	return strings.TrimSuffix(key, path.Ext(key))
}

// Upload sends data as a data URI so the declared content type travels with
// the bytes.
func (a *cloudinaryAdapter) Upload(ctx context.Context, key string, data []byte, contentType string) error {
	dataURI := "data:" + contentType + ";base64," + base64.StdEncoding.EncodeToString(data)
	uploadParams := uploader.UploadParams{
		PublicID:     publicID(key),
		ResourceType: "image",
	}
	if _, err := a.cld.Upload.Upload(ctx, dataURI, uploadParams); err != nil {
		return fmt.Errorf("failed to upload cloudinary: %w", err)
	}
	return nil
}

func (a *cloudinaryAdapter) PublicURL(key string) (string, error) {
	return a.TransformedURL(key, "")
}

func (a *cloudinaryAdapter) TransformedURL(key string, transformation string) (string, error) {
	img, err := a.cld.Image(key)
	if err != nil {
		return "", fmt.Errorf("failed to create cloudinary asset: %w", err)
	}
	img.Transformation = transformation
	url, err := img.String()
	if err != nil {
		return "", fmt.Errorf("failed to build cloudinary url: %w", err)
	}
	return url, nil
}

func (a *cloudinaryAdapter) Delete(ctx context.Context, key string) error {
	_, err := a.cld.Upload.Destroy(ctx, uploader.DestroyParams{
		PublicID: publicID(key),
	})
	if err != nil {
		return fmt.Errorf("failed to delete cloudinary: %w", err)
	}
	return nil
}
