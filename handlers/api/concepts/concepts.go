package concepts

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

type conceptRequest struct {
	Topic              string `json:"topic"`
	ExplanationEnglish string `json:"explanationEnglish"`
	ExplanationBangla  string `json:"explanationBangla"`
	Code               string `json:"code"`
	Input              string `json:"input"`
	Output             string `json:"output"`
	SubTopic           string `json:"subTopic"`
}

func (req *conceptRequest) toConcept(id int64) *core.Concept {
	return &core.Concept{
		ID:                 id,
		Topic:              req.Topic,
		ExplanationEnglish: req.ExplanationEnglish,
		ExplanationBangla:  req.ExplanationBangla,
		Code:               req.Code,
		Input:              req.Input,
		Output:             req.Output,
		SubTopic:           req.SubTopic,
	}
}

func HandleList(store stores.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		concepts, err := store.ListConcepts(r.Context())
		if err != nil {
			logrus.WithField("error", err).Error("Failed to list concepts")
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, map[string]string{"message": "Failed to fetch concepts"})
			return
		}
		if concepts == nil {
			concepts = []*core.Concept{}
		}
		render.JSON(w, r, concepts)
	}
}

func HandleCreate(store stores.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req conceptRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, map[string]string{"message": "Invalid request body"})
			return
		}
		if req.Topic == "" {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, map[string]string{"message": "topic is required"})
			return
		}

		id, err := store.CreateConcept(r.Context(), req.toConcept(0))
		if err != nil {
			logrus.WithField("error", err).Error("Failed to add concept")
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, map[string]string{"message": "Failed to add concept"})
			return
		}

		render.JSON(w, r, map[string]any{"message": "Concept added", "id": id})
	}
}

func HandleUpdate(store stores.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, map[string]string{"message": "Invalid concept ID"})
			return
		}

		var req conceptRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, map[string]string{"message": "Invalid request body"})
			return
		}
		if req.Topic == "" {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, map[string]string{"message": "topic is required"})
			return
		}

		if err := store.UpdateConcept(r.Context(), req.toConcept(id)); err != nil {
			if errors.Is(err, core.ErrNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, map[string]string{"message": "Concept not found"})
				return
			}
			logrus.WithFields(logrus.Fields{"error": err, "conceptID": id}).Error("Failed to update concept")
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, map[string]string{"message": "Failed to update concept"})
			return
		}

		render.JSON(w, r, map[string]string{"message": "Concept updated"})
	}
}

func HandleDelete(store stores.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, map[string]string{"message": "Invalid concept ID"})
			return
		}

		if err := store.DeleteConcept(r.Context(), id); err != nil {
			if errors.Is(err, core.ErrNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, map[string]string{"message": "Concept not found"})
				return
			}
			logrus.WithFields(logrus.Fields{"error": err, "conceptID": id}).Error("Failed to delete concept")
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, map[string]string{"message": "Failed to delete concept"})
			return
		}

		render.JSON(w, r, map[string]string{"message": "Concept deleted"})
	}
}
