package problems

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

// problemRequest mirrors the wire format: capitalized keys, optional
// fields decode to "" when absent.
type problemRequest struct {
	Name        string `json:"Name"`
	Link        string `json:"Link"`
	Type        string `json:"Type"`
	TopicName   string `json:"TopicName"`
	Explanation string `json:"Explanation"`
	Code        string `json:"Code"`
	VideoLink   string `json:"Video_link"`
}

func HandleList(store stores.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		problems, err := store.ListProblems(r.Context())
		if err != nil {
			logrus.WithField("error", err).Error("Failed to list problems")
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, map[string]string{"message": "Failed to fetch problems"})
			return
		}
		if problems == nil {
			problems = []*core.Problem{}
		}
		render.JSON(w, r, problems)
	}
}

func HandleCreate(store stores.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req problemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, map[string]string{"message": "Invalid request body"})
			return
		}
		if req.Name == "" || req.Link == "" || req.Type == "" || req.TopicName == "" {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, map[string]string{"message": "Name, Link, Type and TopicName are required"})
			return
		}

		id, err := store.CreateProblem(r.Context(), &core.Problem{
			Name:        req.Name,
			Link:        req.Link,
			Type:        req.Type,
			TopicName:   req.TopicName,
			Explanation: req.Explanation,
			Code:        req.Code,
			VideoLink:   req.VideoLink,
		})
		if err != nil {
			logrus.WithField("error", err).Error("Failed to add problem")
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, map[string]string{"message": "Failed to add problem"})
			return
		}

		render.JSON(w, r, map[string]any{"message": "Problem added", "id": id})
	}
}

func HandleUpdate(store stores.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, map[string]string{"message": "Invalid problem ID"})
			return
		}

		var req problemRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, map[string]string{"message": "Invalid request body"})
			return
		}
		if req.Name == "" || req.Link == "" || req.Type == "" || req.TopicName == "" {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, map[string]string{"message": "Name, Link, Type and TopicName are required"})
			return
		}

		err = store.UpdateProblem(r.Context(), &core.Problem{
			ID:          id,
			Name:        req.Name,
			Link:        req.Link,
			Type:        req.Type,
			TopicName:   req.TopicName,
			Explanation: req.Explanation,
			Code:        req.Code,
			VideoLink:   req.VideoLink,
		})
		if err != nil {
			if errors.Is(err, core.ErrNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, map[string]string{"message": "Problem not found"})
				return
			}
			logrus.WithFields(logrus.Fields{"error": err, "problemID": id}).Error("Failed to update problem")
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, map[string]string{"message": "Failed to update problem"})
			return
		}

		render.JSON(w, r, map[string]string{"message": "Problem updated"})
	}
}

func HandleDelete(store stores.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, map[string]string{"message": "Invalid problem ID"})
			return
		}

		if err := store.DeleteProblem(r.Context(), id); err != nil {
			if errors.Is(err, core.ErrNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, map[string]string{"message": "Problem not found"})
				return
			}
			logrus.WithFields(logrus.Fields{"error": err, "problemID": id}).Error("Failed to delete problem")
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, map[string]string{"message": "Failed to delete problem"})
			return
		}

		render.JSON(w, r, map[string]string{"message": "Problem deleted"})
	}
}
