package contents

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"problemsdb-backend/core"
	"problemsdb-backend/images/filesystem"
	"problemsdb-backend/stores"
	"problemsdb-backend/stores/memory"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
)

var storedNamePattern = regexp.MustCompile(`^image_\d+\.png$`)

func newServer(t *testing.T) (*chi.Mux, stores.Store, string) {
	t.Helper()
	dir := t.TempDir()
	store := memory.NewStore()
	imageStore := filesystem.NewStore(dir)

	r := chi.NewRouter()
	r.Post("/upload", HandleUpload(store, imageStore))
	r.Get("/contents", HandleList(store))
	r.Get("/contents/{topic_id}", HandleListByTopic(store))
	r.Put("/content/{id}", HandleUpdate(store, imageStore))
	r.Delete("/content/{id}", HandleDelete(store, imageStore))
	return r, store, dir
}

// multipartBody builds a multipart form with the given fields and, when
// fileName is non-empty, one image file part.
func multipartBody(t *testing.T, fields map[string]string, fileName string, fileData []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if fileName != "" {
		fw, err := w.CreateFormFile("image", fileName)
		require.NoError(t, err)
		_, err = fw.Write(fileData)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func dirEntries(t *testing.T, dir string) []string {
	t.Helper()
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	return names
}

func TestUploadCreatesFileAndRow(t *testing.T) {
	r, store, dir := newServer(t)

	body, contentType := multipartBody(t, map[string]string{
		"exercise": "Sum two numbers",
		"solution": "a + b",
		"topic_id": "7",
	}, "drawing.png", []byte("png bytes"))

	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Message  string `json:"message"`
		FileID   int64  `json:"fileId"`
		FileName string `json:"fileName"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotZero(t, resp.FileID)
	require.Regexp(t, storedNamePattern, resp.FileName)

	data, err := os.ReadFile(filepath.Join(dir, resp.FileName))
	require.NoError(t, err)
	require.Equal(t, "png bytes", string(data))

	contents, err := store.ListContents(context.Background())
	require.NoError(t, err)
	require.Len(t, contents, 1)
	require.Equal(t, resp.FileID, contents[0].ID)
	require.Equal(t, "Sum two numbers", contents[0].Exercise)
	require.Equal(t, "a + b", contents[0].Solution)
	require.Equal(t, int64(7), contents[0].TopicID)
	require.Equal(t, resp.FileName, contents[0].Image)
}

// The stored name must not depend on the original filename beyond its
// extension.
func TestUploadStoredNameIgnoresOriginalName(t *testing.T) {
	r, _, _ := newServer(t)

	body, contentType := multipartBody(t, map[string]string{
		"exercise": "x",
		"solution": "y",
		"topic_id": "1",
	}, "../../../etc/secret name!!.png", []byte("data"))

	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		FileName string `json:"fileName"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Regexp(t, storedNamePattern, resp.FileName)
}

func TestUploadMissingFieldWritesNothing(t *testing.T) {
	r, store, dir := newServer(t)

	// topic_id omitted
	body, contentType := multipartBody(t, map[string]string{
		"exercise": "Sum two numbers",
		"solution": "a + b",
	}, "drawing.png", []byte("png bytes"))

	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Contains(t, rec.Body.String(), "message")
	require.Empty(t, dirEntries(t, dir))

	contents, err := store.ListContents(context.Background())
	require.NoError(t, err)
	require.Empty(t, contents)
}

func TestUploadMissingFile(t *testing.T) {
	r, _, dir := newServer(t)

	body, contentType := multipartBody(t, map[string]string{
		"exercise": "x",
		"solution": "y",
		"topic_id": "1",
	}, "", nil)

	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Empty(t, dirEntries(t, dir))
}

func TestUploadNonNumericTopicID(t *testing.T) {
	r, _, dir := newServer(t)

	body, contentType := multipartBody(t, map[string]string{
		"exercise": "x",
		"solution": "y",
		"topic_id": "arrays",
	}, "a.png", []byte("data"))

	req := httptest.NewRequest(http.MethodPost, "/upload", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
	require.Empty(t, dirEntries(t, dir))
}

func TestListByTopicEmptyIsOK(t *testing.T) {
	r, _, _ := newServer(t)

	req := httptest.NewRequest(http.MethodGet, "/contents/42", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))
}

func TestListByTopicNonNumeric(t *testing.T) {
	r, _, _ := newServer(t)

	req := httptest.NewRequest(http.MethodGet, "/contents/arrays", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListByTopicFilters(t *testing.T) {
	r, store, _ := newServer(t)

	_, err := store.CreateContent(context.Background(), &core.Content{Exercise: "a", Solution: "b", TopicID: 1})
	require.NoError(t, err)
	_, err = store.CreateContent(context.Background(), &core.Content{Exercise: "c", Solution: "d", TopicID: 2})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/contents/2", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got []*core.Content
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	require.Equal(t, "c", got[0].Exercise)
}

func TestUpdateNotFound(t *testing.T) {
	r, _, _ := newServer(t)

	body, contentType := multipartBody(t, map[string]string{
		"exercise": "x",
		"solution": "y",
		"topic_id": "1",
	}, "", nil)

	req := httptest.NewRequest(http.MethodPut, "/content/999", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), "message")
}

func TestUpdateWithoutFileKeepsImage(t *testing.T) {
	r, store, _ := newServer(t)

	id, err := store.CreateContent(context.Background(), &core.Content{
		Image:    "image_1000.png",
		Exercise: "old exercise",
		Solution: "old solution",
		TopicID:  1,
	})
	require.NoError(t, err)

	body, contentType := multipartBody(t, map[string]string{
		"exercise": "new exercise",
		"solution": "new solution",
		"topic_id": "2",
	}, "", nil)

	req := httptest.NewRequest(http.MethodPut, "/content/1", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	got, err := store.GetContent(context.Background(), id)
	require.NoError(t, err)
	require.Equal(t, "new exercise", got.Exercise)
	require.Equal(t, "new solution", got.Solution)
	require.Equal(t, int64(2), got.TopicID)
	require.Equal(t, "image_1000.png", got.Image)
}

func TestUpdateWithFileReplacesImageName(t *testing.T) {
	r, store, dir := newServer(t)

	id, err := store.CreateContent(context.Background(), &core.Content{
		Image:    "image_1000.png",
		Exercise: "old",
		Solution: "old",
		TopicID:  1,
	})
	require.NoError(t, err)

	body, contentType := multipartBody(t, map[string]string{
		"exercise": "new",
		"solution": "new",
		"topic_id": "1",
	}, "replacement.png", []byte("new bytes"))

	req := httptest.NewRequest(http.MethodPut, "/content/1", body)
	req.Header.Set("Content-Type", contentType)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	got, err := store.GetContent(context.Background(), id)
	require.NoError(t, err)
	require.Regexp(t, storedNamePattern, got.Image)
	require.NotEqual(t, "image_1000.png", got.Image)

	// The replacement was written; the old file is not cleaned up here.
	_, err = os.Stat(filepath.Join(dir, got.Image))
	require.NoError(t, err)
}

func TestDeleteRemovesRowAndFile(t *testing.T) {
	r, store, dir := newServer(t)

	imagePath := filepath.Join(dir, "image_2000.png")
	require.NoError(t, os.WriteFile(imagePath, []byte("bytes"), 0644))

	id, err := store.CreateContent(context.Background(), &core.Content{
		Image:    "image_2000.png",
		Exercise: "e",
		Solution: "s",
		TopicID:  1,
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodDelete, "/content/1", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	_, err = os.Stat(imagePath)
	require.True(t, os.IsNotExist(err))

	_, err = store.GetContent(context.Background(), id)
	require.ErrorIs(t, err, core.ErrNotFound)
}

// A row whose file was already removed from disk must still delete
// cleanly.
func TestDeleteToleratesMissingFile(t *testing.T) {
	r, store, _ := newServer(t)

	id, err := store.CreateContent(context.Background(), &core.Content{
		Image:    "image_3000.png",
		Exercise: "e",
		Solution: "s",
		TopicID:  1,
	})
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodDelete, "/content/1", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	_, err = store.GetContent(context.Background(), id)
	require.ErrorIs(t, err, core.ErrNotFound)
}

func TestDeleteNotFound(t *testing.T) {
	r, _, _ := newServer(t)

	req := httptest.NewRequest(http.MethodDelete, "/content/99999", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	require.Contains(t, rec.Body.String(), "message")
}

func TestImageFileNameScheme(t *testing.T) {
	name := imageFileName("whatever the user said.png")
	require.Regexp(t, storedNamePattern, name)

	// Extension is the only user-controlled part.
	require.True(t, strings.HasPrefix(name, "image_"))
	require.Equal(t, ".png", filepath.Ext(name))
}
