package services

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"envportal/config"
	"envportal/internal/logger"
)

// StorageService is the blob store behind uploads (logos, recruitment
// documents). Files land under a local directory and are served back via a
// public URL path; names derive from the upload timestamp plus the original
// extension.
type StorageService struct {
	dir        string
	publicPath string
	publicURL  string
	log        logger.Logger
}

func NewStorageService(config config.Config) (*StorageService, error) {
	log := logger.New("StorageService")

	if err := os.MkdirAll(config.StorageDir, 0755); err != nil {
		return nil, log.Err("failed to create storage directory", err, "dir", config.StorageDir)
	}

	return &StorageService{
		dir:        config.StorageDir,
		publicPath: config.StoragePublicPath,
		publicURL:  strings.TrimRight(config.PublicURL, "/"),
		log:        log,
	}, nil
}

// Save writes data and returns the public URL for the stored file.
func (s *StorageService) Save(ctx context.Context, originalName string, data []byte) (string, error) {
	log := s.log.Function("Save")

	if len(data) == 0 {
		return "", log.Error("empty file", "originalName", originalName)
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	name := fmt.Sprintf("%d%s", time.Now().UnixNano(), ext)

	dest := filepath.Join(s.dir, name)
	if err := os.WriteFile(dest, data, 0644); err != nil {
		return "", log.Err("failed to write file", err, "dest", dest)
	}

	return s.publicURL + path.Join(s.publicPath, name), nil
}

// Dir exposes the storage root for the static file route.
func (s *StorageService) Dir() string {
	return s.dir
}

// PublicPath is the URL prefix uploads are served under.
func (s *StorageService) PublicPath() string {
	return s.publicPath
}
