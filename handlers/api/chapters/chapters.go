package chapters

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"problemsdb-backend/core"
	"problemsdb-backend/stores"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"
	"github.com/sirupsen/logrus"
)

type chapterRequest struct {
	CourseID int64  `json:"course_id"`
	Name     string `json:"name"`
}

func HandleList(store stores.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		chapters, err := store.ListChapters(r.Context())
		if err != nil {
			logrus.WithField("error", err).Error("Failed to list chapters")
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, map[string]string{"message": "Failed to fetch chapters"})
			return
		}
		if chapters == nil {
			chapters = []*core.Chapter{}
		}
		render.JSON(w, r, chapters)
	}
}

func HandleListByCourse(store stores.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		courseID, err := strconv.ParseInt(chi.URLParam(r, "course_id"), 10, 64)
		if err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, map[string]string{"message": "course_id must be numeric"})
			return
		}

		chapters, err := store.ListChaptersByCourse(r.Context(), courseID)
		if err != nil {
			logrus.WithFields(logrus.Fields{"error": err, "courseID": courseID}).Error("Failed to list chapters by course")
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, map[string]string{"message": "Failed to fetch chapters"})
			return
		}
		if chapters == nil {
			chapters = []*core.Chapter{}
		}
		render.JSON(w, r, chapters)
	}
}

func HandleCreate(store stores.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req chapterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, map[string]string{"message": "Invalid request body"})
			return
		}
		if req.Name == "" || req.CourseID == 0 {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, map[string]string{"message": "course_id and name are required"})
			return
		}

		id, err := store.CreateChapter(r.Context(), &core.Chapter{CourseID: req.CourseID, Name: req.Name})
		if err != nil {
			logrus.WithField("error", err).Error("Failed to add chapter")
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, map[string]string{"message": "Failed to add chapter"})
			return
		}

		render.JSON(w, r, map[string]any{"message": "Chapter added", "id": id})
	}
}

func HandleUpdate(store stores.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, map[string]string{"message": "Invalid chapter ID"})
			return
		}

		var req chapterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, map[string]string{"message": "Invalid request body"})
			return
		}
		if req.Name == "" || req.CourseID == 0 {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, map[string]string{"message": "course_id and name are required"})
			return
		}

		err = store.UpdateChapter(r.Context(), &core.Chapter{ID: id, CourseID: req.CourseID, Name: req.Name})
		if err != nil {
			if errors.Is(err, core.ErrNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, map[string]string{"message": "Chapter not found"})
				return
			}
			logrus.WithFields(logrus.Fields{"error": err, "chapterID": id}).Error("Failed to update chapter")
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, map[string]string{"message": "Failed to update chapter"})
			return
		}

		render.JSON(w, r, map[string]string{"message": "Chapter updated"})
	}
}

func HandleDelete(store stores.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, map[string]string{"message": "Invalid chapter ID"})
			return
		}

		if err := store.DeleteChapter(r.Context(), id); err != nil {
			if errors.Is(err, core.ErrNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, map[string]string{"message": "Chapter not found"})
				return
			}
			logrus.WithFields(logrus.Fields{"error": err, "chapterID": id}).Error("Failed to delete chapter")
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, map[string]string{"message": "Failed to delete chapter"})
			return
		}

		render.JSON(w, r, map[string]string{"message": "Chapter deleted"})
	}
}
