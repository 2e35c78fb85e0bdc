package stores

import (
	"io"
	"os"

	"problemsdb-backend/core"
	"problemsdb-backend/stores/memory"
	"problemsdb-backend/stores/postgres"
	"problemsdb-backend/stores/sqlite"

	"github.com/sirupsen/logrus"
)

// Store is a union interface that covers every entity the backend
// persists. All backends satisfy the whole thing so handlers can take
// a single dependency.
type Store interface {
	core.ProblemStore
	core.ConceptStore
	core.ResourceStore
	core.CourseStore
	core.ChapterStore
	core.TopicStore
	core.ContentStore
	io.Closer
}

func GetStore() Store {
	storageType := os.Getenv("STORAGE_TYPE")
	var store Store

	storageField := logrus.Fields{
		"storageType": storageType,
	}

	switch storageType {
	case "postgres":
		dbURL := os.Getenv("DB_URL")
		if dbURL == "" {
			logrus.Fatal("DB_URL environment variable must be set for postgres storage type")
		}
		store = postgres.NewStore(dbURL)
	case "sqlite":
		dataSourceName := os.Getenv("DATA_SOURCE_NAME")
		if dataSourceName == "" {
			dataSourceName = "problemsdb.db" // Default filename
		}
		storageField["dataSourceName"] = dataSourceName
		store = sqlite.NewStore(dataSourceName)
	default:
		store = memory.NewStore()
		storageField["storageType"] = "in-memory"
	}
	logrus.WithFields(storageField).Info("Use storage")
	return store
}
