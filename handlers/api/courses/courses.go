package courses

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

type courseRequest struct {
	Name string `json:"name"`
}

func HandleList(store stores.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		courses, err := store.ListCourses(r.Context())
		if err != nil {
			logrus.WithField("error", err).Error("Failed to list courses")
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, map[string]string{"message": "Failed to fetch courses"})
			return
		}
		if courses == nil {
			courses = []*core.Course{}
		}
		render.JSON(w, r, courses)
	}
}

func HandleGet(store stores.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, map[string]string{"message": "Invalid course ID"})
			return
		}

		course, err := store.GetCourse(r.Context(), id)
		if err != nil {
			if errors.Is(err, core.ErrNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, map[string]string{"message": "Course not found"})
				return
			}
			logrus.WithFields(logrus.Fields{"error": err, "courseID": id}).Error("Failed to get course")
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, map[string]string{"message": "Failed to fetch course"})
			return
		}

		render.JSON(w, r, course)
	}
}

func HandleCreate(store stores.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req courseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, map[string]string{"message": "Invalid request body"})
			return
		}
		if req.Name == "" {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, map[string]string{"message": "name is required"})
			return
		}

		id, err := store.CreateCourse(r.Context(), &core.Course{Name: req.Name})
		if err != nil {
			logrus.WithField("error", err).Error("Failed to add course")
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, map[string]string{"message": "Failed to add course"})
			return
		}

		render.JSON(w, r, map[string]any{"message": "Course added", "id": id})
	}
}

func HandleUpdate(store stores.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, map[string]string{"message": "Invalid course ID"})
			return
		}

		var req courseRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, map[string]string{"message": "Invalid request body"})
			return
		}
		if req.Name == "" {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, map[string]string{"message": "name is required"})
			return
		}

		if err := store.UpdateCourse(r.Context(), &core.Course{ID: id, Name: req.Name}); err != nil {
			if errors.Is(err, core.ErrNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, map[string]string{"message": "Course not found"})
				return
			}
			logrus.WithFields(logrus.Fields{"error": err, "courseID": id}).Error("Failed to update course")
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, map[string]string{"message": "Failed to update course"})
			return
		}

		render.JSON(w, r, map[string]string{"message": "Course updated"})
	}
}

func HandleDelete(store stores.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, map[string]string{"message": "Invalid course ID"})
			return
		}

		if err := store.DeleteCourse(r.Context(), id); err != nil {
			if errors.Is(err, core.ErrNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, map[string]string{"message": "Course not found"})
				return
			}
			logrus.WithFields(logrus.Fields{"error": err, "courseID": id}).Error("Failed to delete course")
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, map[string]string{"message": "Failed to delete course"})
			return
		}

		render.JSON(w, r, map[string]string{"message": "Course deleted"})
	}
}
