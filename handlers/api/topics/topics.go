package topics

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

type topicRequest struct {
	ChapterID   int64  `json:"chapter_id"`
	Name        string `json:"name"`
	Explanation string `json:"explanation"`
}

func HandleList(store stores.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		topics, err := store.ListTopics(r.Context())
		if err != nil {
			logrus.WithField("error", err).Error("Failed to list topics")
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, map[string]string{"message": "Failed to fetch topics"})
			return
		}
		if topics == nil {
			topics = []*core.Topic{}
		}
		render.JSON(w, r, topics)
	}
}

func HandleListByChapter(store stores.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		chapterID, err := strconv.ParseInt(chi.URLParam(r, "chapter_id"), 10, 64)
		if err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, map[string]string{"message": "chapter_id must be numeric"})
			return
		}

		topics, err := store.ListTopicsByChapter(r.Context(), chapterID)
		if err != nil {
			logrus.WithFields(logrus.Fields{"error": err, "chapterID": chapterID}).Error("Failed to list topics by chapter")
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, map[string]string{"message": "Failed to fetch topics"})
			return
		}
		if topics == nil {
			topics = []*core.Topic{}
		}
		render.JSON(w, r, topics)
	}
}

func HandleCreate(store stores.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req topicRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, map[string]string{"message": "Invalid request body"})
			return
		}
		if req.Name == "" || req.ChapterID == 0 {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, map[string]string{"message": "chapter_id and name are required"})
			return
		}

		id, err := store.CreateTopic(r.Context(), &core.Topic{
			ChapterID:   req.ChapterID,
			Name:        req.Name,
			Explanation: req.Explanation,
		})
		if err != nil {
			logrus.WithField("error", err).Error("Failed to add topic")
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, map[string]string{"message": "Failed to add topic"})
			return
		}

		render.JSON(w, r, map[string]any{"message": "Topic added", "id": id})
	}
}

func HandleUpdate(store stores.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, map[string]string{"message": "Invalid topic ID"})
			return
		}

		var req topicRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, map[string]string{"message": "Invalid request body"})
			return
		}
		if req.Name == "" || req.ChapterID == 0 {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, map[string]string{"message": "chapter_id and name are required"})
			return
		}

		err = store.UpdateTopic(r.Context(), &core.Topic{
			ID:          id,
			ChapterID:   req.ChapterID,
			Name:        req.Name,
			Explanation: req.Explanation,
		})
		if err != nil {
			if errors.Is(err, core.ErrNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, map[string]string{"message": "Topic not found"})
				return
			}
			logrus.WithFields(logrus.Fields{"error": err, "topicID": id}).Error("Failed to update topic")
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, map[string]string{"message": "Failed to update topic"})
			return
		}

		render.JSON(w, r, map[string]string{"message": "Topic updated"})
	}
}

func HandleDelete(store stores.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, map[string]string{"message": "Invalid topic ID"})
			return
		}

		if err := store.DeleteTopic(r.Context(), id); err != nil {
			if errors.Is(err, core.ErrNotFound) {
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, map[string]string{"message": "Topic not found"})
				return
			}
			logrus.WithFields(logrus.Fields{"error": err, "topicID": id}).Error("Failed to delete topic")
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, map[string]string{"message": "Failed to delete topic"})
			return
		}

		render.JSON(w, r, map[string]string{"message": "Topic deleted"})
	}
}
