package resources

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

type resourceRequest struct {
	Title string `json:"title"`
	Link  string `json:"link"`
	Topic string `json:"topic"`
}

func HandleList(store stores.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resources, err := store.ListResources(r.Context())
		if err != nil {
			logrus.WithField("error", err).Error("Failed to list resources")
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, map[string]string{"message": "Failed to fetch resources"})
			return
		}
		if resources == nil {
			resources = []*core.Resource{}
		}
		render.JSON(w, r, resources)
	}
}

func HandleCreate(store stores.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req resourceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, map[string]string{"message": "Invalid request body"})
			return
		}
		if req.Title == "" || req.Link == "" || req.Topic == "" {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, map[string]string{"message": "title, link and topic are required"})
			return
		}

		id, err := store.CreateResource(r.Context(), &core.Resource{
			Title: req.Title,
			Link:  req.Link,
			Topic: req.Topic,
		})
		if err != nil {
			logrus.WithField("error", err).Error("Failed to add resource")
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, map[string]string{"message": "Failed to add resource"})
			return
		}

		render.JSON(w, r, map[string]any{"message": "Resource added", "id": id})
	}
}

func HandleUpdate(store stores.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, map[string]string{"message": "Invalid resource ID"})
			return
		}

		var req resourceRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, map[string]string{"message": "Invalid request body"})
			return
		}
		if req.Title == "" || req.Link == "" || req.Topic == "" {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, map[string]string{"message": "title, link and topic are required"})
			return
		}

		err = store.UpdateResource(r.Context(), &core.Resource{
			ID:    id,
			Title: req.Title,
			Link:  req.Link,
			Topic: req.Topic,
		})
		if err != nil {
			if errors.Is(err, core.ErrNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, map[string]string{"message": "Resource not found"})
				return
			}
			logrus.WithFields(logrus.Fields{"error": err, "resourceID": id}).Error("Failed to update resource")
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, map[string]string{"message": "Failed to update resource"})
			return
		}

		render.JSON(w, r, map[string]string{"message": "Resource updated"})
	}
}

func HandleDelete(store stores.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, map[string]string{"message": "Invalid resource ID"})
			return
		}

		if err := store.DeleteResource(r.Context(), id); err != nil {
			if errors.Is(err, core.ErrNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, map[string]string{"message": "Resource not found"})
				return
			}
			logrus.WithFields(logrus.Fields{"error": err, "resourceID": id}).Error("Failed to delete resource")
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, map[string]string{"message": "Failed to delete resource"})
			return
		}

		render.JSON(w, r, map[string]string{"message": "Resource deleted"})
	}
}
