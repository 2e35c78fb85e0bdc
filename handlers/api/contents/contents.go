// Package contents implements the upload endpoint and the content
// management routes. Content is the one entity whose lifecycle spans
// two stores: the database row and the image file it names. The file
// side effect always happens before the row write, so a failure leaves
// at worst an orphaned file, never a row pointing at nothing.
package contents

import (
	"errors"
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"time"

	"problemsdb-backend/core"
	"problemsdb-backend/images"
	"problemsdb-backend/stores"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/sirupsen/logrus"
)

type uploadResponse struct {
	Message  string `json:"message"`
	FileID   int64  `json:"fileId"`
	FileName string `json:"fileName"`
}

// imageFileName derives the stored name for an uploaded image:
// image_<epoch-ms><original extension>. Nothing user-controlled enters
// the name besides the extension. Two uploads landing in the same
// millisecond collide; accepted for this traffic.
func imageFileName(original string) string {
	return fmt.Sprintf("image_%d%s", time.Now().UnixMilli(), filepath.Ext(original))
}

func HandleUpload(store stores.Store, imageStore images.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		file, header, err := r.FormFile("image")
		if err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, map[string]string{"message": "Image file is required"})
			return
		}
		defer file.Close()

		exercise := r.FormValue("exercise")
		solution := r.FormValue("solution")
		topicIDStr := r.FormValue("topic_id")
		if exercise == "" || solution == "" || topicIDStr == "" {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, map[string]string{"message": "exercise, solution and topic_id are required"})
			return
		}
		topicID, err := strconv.ParseInt(topicIDStr, 10, 64)
		if err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, map[string]string{"message": "topic_id must be numeric"})
			return
		}

		fileName := imageFileName(header.Filename)
		if err := imageStore.Save(r.Context(), fileName, file); err != nil {
			logrus.WithFields(logrus.Fields{
				"error":    err,
				"fileName": fileName,
			}).Error("Failed to store uploaded image")
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, map[string]string{"message": "Failed to store image"})
			return
		}

		content := &core.Content{
			Image:    fileName,
			Exercise: exercise,
			Solution: solution,
			TopicID:  topicID,
		}
		id, err := store.CreateContent(r.Context(), content)
		if err != nil {
			// The written file stays behind; there is no rollback
			// spanning disk and database.
			logrus.WithFields(logrus.Fields{
				"error":    err,
				"fileName": fileName,
			}).Error("Failed to insert content row")
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, map[string]string{"message": "Failed to add content"})
			return
		}

		render.JSON(w, r, uploadResponse{
			Message:  "Image uploaded and content added",
			FileID:   id,
			FileName: fileName,
		})
	}
}

func HandleList(store stores.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		contents, err := store.ListContents(r.Context())
		if err != nil {
			logrus.WithField("error", err).Error("Failed to list contents")
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, map[string]string{"message": "Failed to fetch contents"})
			return
		}
		if contents == nil {
			contents = []*core.Content{}
		}
		render.JSON(w, r, contents)
	}
}

func HandleListByTopic(store stores.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		topicID, err := strconv.ParseInt(chi.URLParam(r, "topic_id"), 10, 64)
		if err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, map[string]string{"message": "topic_id must be numeric"})
			return
		}

		contents, err := store.ListContentsByTopic(r.Context(), topicID)
		if err != nil {
			logrus.WithFields(logrus.Fields{
				"error":   err,
				"topicID": topicID,
			}).Error("Failed to list contents by topic")
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, map[string]string{"message": "Failed to fetch contents"})
			return
		}
		if contents == nil {
			contents = []*core.Content{}
		}
		render.JSON(w, r, contents)
	}
}

func HandleUpdate(store stores.Store, imageStore images.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, map[string]string{"message": "Invalid content ID"})
			return
		}

		exercise := r.FormValue("exercise")
		solution := r.FormValue("solution")
		topicIDStr := r.FormValue("topic_id")
		if exercise == "" || solution == "" || topicIDStr == "" {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, map[string]string{"message": "exercise, solution and topic_id are required"})
			return
		}
		topicID, err := strconv.ParseInt(topicIDStr, 10, 64)
		if err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, map[string]string{"message": "topic_id must be numeric"})
			return
		}

		content := &core.Content{
			ID:       id,
			Exercise: exercise,
			Solution: solution,
			TopicID:  topicID,
		}

		file, header, err := r.FormFile("image")
		switch {
		case err == nil:
			defer file.Close()
			fileName := imageFileName(header.Filename)
			if err := imageStore.Save(r.Context(), fileName, file); err != nil {
				logrus.WithFields(logrus.Fields{
					"error":    err,
					"fileName": fileName,
				}).Error("Failed to store replacement image")
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, map[string]string{"message": "Failed to store image"})
				return
			}
			// The replaced file is left on disk; only delete cleans up.
			content.Image = fileName
		case errors.Is(err, http.ErrMissingFile):
			// No new image; the stored filename stays.
		default:
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, map[string]string{"message": "Invalid multipart form"})
			return
		}

		if err := store.UpdateContent(r.Context(), content); err != nil {
			if errors.Is(err, core.ErrNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, map[string]string{"message": "Content not found"})
				return
			}
			logrus.WithFields(logrus.Fields{
				"error":     err,
				"contentID": id,
			}).Error("Failed to update content")
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, map[string]string{"message": "Failed to update content"})
			return
		}

		render.JSON(w, r, map[string]string{"message": "Content updated"})
	}
}

func HandleDelete(store stores.Store, imageStore images.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, map[string]string{"message": "Invalid content ID"})
			return
		}

		content, err := store.GetContent(r.Context(), id)
		if err != nil {
			if errors.Is(err, core.ErrNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, map[string]string{"message": "Content not found"})
				return
			}
			logrus.WithFields(logrus.Fields{
				"error":     err,
				"contentID": id,
			}).Error("Failed to read content before delete")
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, map[string]string{"message": "Failed to delete content"})
			return
		}

		if content.Image != "" {
			if err := imageStore.Remove(r.Context(), content.Image); err != nil {
				logrus.WithFields(logrus.Fields{
					"error":     err,
					"contentID": id,
					"fileName":  content.Image,
				}).Error("Failed to delete image file")
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, map[string]string{"message": "Failed to delete image"})
				return
			}
		}

		if err := store.DeleteContent(r.Context(), id); err != nil {
			if errors.Is(err, core.ErrNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, map[string]string{"message": "Content not found"})
				return
			}
			logrus.WithFields(logrus.Fields{
				"error":     err,
				"contentID": id,
			}).Error("Failed to delete content row")
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, map[string]string{"message": "Failed to delete content"})
			return
		}

		render.JSON(w, r, map[string]string{"message": "Content deleted"})
	}
}
