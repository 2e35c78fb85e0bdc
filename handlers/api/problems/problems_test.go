package problems

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
	r.Get("/api/problems", HandleList(store))
	r.Post("/api/problems", HandleCreate(store))
	r.Put("/api/problems/{id}", HandleUpdate(store))
	r.Delete("/api/problems/{id}", HandleDelete(store))
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

func listProblems(t *testing.T, r http.Handler) []*core.Problem {
	t.Helper()
	rec := doJSON(t, r, http.MethodGet, "/api/problems", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var got []*core.Problem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	return got
}

func TestCreateThenListRoundTrip(t *testing.T) {
	r, _ := newServer(t)

	// Optional fields omitted entirely.
	rec := doJSON(t, r, http.MethodPost, "/api/problems",
		`{"Name":"Two Sum","Link":"http://example.com/two-sum","Type":"Easy","TopicName":"Arrays"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Message string `json:"message"`
		ID      int64  `json:"id"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Equal(t, "Problem added", resp.Message)
	require.NotZero(t, resp.ID)

	got := listProblems(t, r)
	require.Len(t, got, 1)
	require.Equal(t, resp.ID, got[0].ID)
	require.Equal(t, "Two Sum", got[0].Name)
	require.Equal(t, "http://example.com/two-sum", got[0].Link)
	require.Equal(t, "Easy", got[0].Type)
	require.Equal(t, "Arrays", got[0].TopicName)
	// Omitted optional fields come back as empty strings, never null.
	require.Equal(t, "", got[0].Explanation)
	require.Equal(t, "", got[0].Code)
	require.Equal(t, "", got[0].VideoLink)
}

func TestCreateMissingRequiredField(t *testing.T) {
	r, _ := newServer(t)

	rec := doJSON(t, r, http.MethodPost, "/api/problems", `{"Name":"No link"}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "message")

	require.Empty(t, listProblems(t, r))
}

// Updates replace the whole row; optional fields not resent reset to "".
func TestUpdateResetsOmittedOptionalFields(t *testing.T) {
	r, _ := newServer(t)

	rec := doJSON(t, r, http.MethodPost, "/api/problems",
		`{"Name":"Old","Link":"http://old","Type":"Hard","TopicName":"DP","Explanation":"long text","Code":"code","Video_link":"http://video"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, r, http.MethodPut, "/api/problems/1",
		`{"Name":"X","Link":"http://x","Type":"T","TopicName":"Arrays"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	got := listProblems(t, r)
	require.Len(t, got, 1)
	require.Equal(t, "X", got[0].Name)
	require.Equal(t, "http://x", got[0].Link)
	require.Equal(t, "T", got[0].Type)
	require.Equal(t, "Arrays", got[0].TopicName)
	require.Equal(t, "", got[0].Explanation)
	require.Equal(t, "", got[0].Code)
	require.Equal(t, "", got[0].VideoLink)
}

func TestUpdateNotFound(t *testing.T) {
	r, _ := newServer(t)

	rec := doJSON(t, r, http.MethodPut, "/api/problems/42",
		`{"Name":"X","Link":"http://x","Type":"T","TopicName":"Arrays"}`)
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), "message")
}

func TestDeleteNotFound(t *testing.T) {
	r, _ := newServer(t)

	rec := doJSON(t, r, http.MethodDelete, "/api/problems/99999", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), "message")
}

func TestDelete(t *testing.T) {
	r, _ := newServer(t)

	rec := doJSON(t, r, http.MethodPost, "/api/problems",
		`{"Name":"N","Link":"http://l","Type":"T","TopicName":"X"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, r, http.MethodDelete, "/api/problems/1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	require.Empty(t, listProblems(t, r))
}
