package topics

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"problemsdb-backend/core"
	"problemsdb-backend/stores"
	"problemsdb-backend/stores/memory"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T) (*chi.Mux, stores.Store) {
	t.Helper()
	store := memory.NewStore()
	r := chi.NewRouter()
	r.Get("/api/topics", HandleList(store))
	r.Post("/api/topics", HandleCreate(store))
	r.Get("/api/topics/{chapter_id}", HandleListByChapter(store))
	r.Put("/api/topics/{id}", HandleUpdate(store))
	r.Delete("/api/topics/{id}", HandleDelete(store))
	return r, store
}

func doJSON(t *testing.T, r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestCreateDefaultsExplanation(t *testing.T) {
	r, _ := newServer(t)

	rec := doJSON(t, r, http.MethodPost, "/api/topics", `{"chapter_id":3,"name":"Recursion"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, r, http.MethodGet, "/api/topics", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got []*core.Topic
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	require.Equal(t, int64(3), got[0].ChapterID)
	require.Equal(t, "Recursion", got[0].Name)
	require.Equal(t, "", got[0].Explanation)
}

func TestListByChapterFiltersAndEmptyIsOK(t *testing.T) {
	r, _ := newServer(t)

	rec := doJSON(t, r, http.MethodPost, "/api/topics", `{"chapter_id":1,"name":"Loops"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	rec = doJSON(t, r, http.MethodPost, "/api/topics", `{"chapter_id":2,"name":"Pointers"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, r, http.MethodGet, "/api/topics/2", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var got []*core.Topic
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	require.Equal(t, "Pointers", got[0].Name)

	// A chapter with no topics is an empty array, not an error.
	rec = doJSON(t, r, http.MethodGet, "/api/topics/42", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestListByChapterNonNumeric(t *testing.T) {
	r, _ := newServer(t)

	rec := doJSON(t, r, http.MethodGet, "/api/topics/loops", "")
	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDeleteNotFound(t *testing.T) {
	r, _ := newServer(t)

	rec := doJSON(t, r, http.MethodDelete, "/api/topics/99999", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), "message")
}
