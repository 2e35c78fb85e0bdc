package filesystem

import (
	"context"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
)

type fsStore struct {
	basePath string
}

// NewStore creates a new filesystem-based image store.
func NewStore(basePath string) *fsStore {
	if err := os.MkdirAll(basePath, 0755); err != nil {
		log.Fatalf("failed to create images directory: %v", err)
	}
	return &fsStore{basePath: basePath}
}

// path flattens name so a crafted filename cannot escape basePath.
func (s *fsStore) path(name string) string {
	return filepath.Join(s.basePath, filepath.Base(name))
}

func (s *fsStore) Save(ctx context.Context, name string, r io.Reader) error {
	filePath := s.path(name)
	log := logrus.WithField("file_path", filePath)

	f, err := os.Create(filePath)
	if err != nil {
		log.WithError(err).Error("Failed to create image file")
		return err
	}
	defer f.Close()

	n, err := io.Copy(f, r)
	if err != nil {
		log.WithError(err).Error("Failed to write image file")
		return err
	}

	log.WithField("bytes", n).Info("Image saved")
	return nil
}

func (s *fsStore) Remove(ctx context.Context, name string) error {
	filePath := s.path(name)
	log := logrus.WithField("file_path", filePath)

	err := os.Remove(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			log.Warn("Image file not found for deletion, considered successful.")
			return nil
		}
		log.WithError(err).Error("Failed to delete image file")
		return err
	}

	log.Info("Image deleted")
	return nil
}
