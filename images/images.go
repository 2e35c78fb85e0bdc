// Package images stores the uploaded image files referenced by content
// rows. Filenames are flat; the backing store decides where the bytes
// live.
package images

import (
	"context"
	"io"
	"os"

	"problemsdb-backend/images/aws"
	"problemsdb-backend/images/filesystem"

	"github.com/sirupsen/logrus"
)

type Store interface {
	// Save writes the image bytes under name, overwriting any previous
	// object with the same name.
	Save(ctx context.Context, name string, r io.Reader) error

	// Remove deletes a stored image. A missing image is not an error;
	// the goal state is reached either way.
	Remove(ctx context.Context, name string) error
}

func GetStore() Store {
	storageType := os.Getenv("IMAGE_STORAGE_TYPE")
	var store Store

	storageField := logrus.Fields{
		"imageStorageType": storageType,
	}

	switch storageType {
	case "s3":
		bucketName := os.Getenv("S3_BUCKET_NAME")
		if bucketName == "" {
			logrus.Fatal("S3_BUCKET_NAME environment variable must be set for s3 image storage type")
		}
		storageField["bucketName"] = bucketName
		store = aws.NewStore(bucketName)
	default:
		basePath := LocalDir()
		storageField["imageStorageType"] = "filesystem"
		storageField["basePath"] = basePath
		store = filesystem.NewStore(basePath)
	}
	logrus.WithFields(storageField).Info("Use image storage")
	return store
}

// LocalDir returns the directory uploaded images are written to, or ""
// when images live in S3 and there is nothing local to serve.
func LocalDir() string {
	if os.Getenv("IMAGE_STORAGE_TYPE") == "s3" {
		return ""
	}
	basePath := os.Getenv("IMAGES_PATH")
	if basePath == "" {
		basePath = "./images" // Default path
	}
	return basePath
}
