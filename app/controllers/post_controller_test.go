package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"

	"pressroom/app/models"
	"pressroom/app/repositories/mock"
	"pressroom/app/services"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestPostController() (*PostController, *services.PostService) {
	postRepo := mock.NewPostRepository()
	revisionRepo := mock.NewRevisionRepository()
	postService := services.NewPostService(postRepo, revisionRepo)
	return NewPostController(postService), postService
}

func setupRouter(controller *PostController) *mux.Router {
	router := mux.NewRouter()

	router.HandleFunc("/posts", controller.Create).Methods("POST")
	router.HandleFunc("/posts", controller.Index).Methods("GET")
	router.HandleFunc("/posts/{id:[0-9]+}", controller.Show).Methods("GET")
	router.HandleFunc("/posts/{id:[0-9]+}", controller.Delete).Methods("DELETE")
	router.HandleFunc("/posts/{id:[0-9]+}/append", controller.Append).Methods("POST")
	router.HandleFunc("/posts/{id:[0-9]+}/review", controller.Review).Methods("POST")
	router.HandleFunc("/posts/{id:[0-9]+}/approve", controller.Approve).Methods("POST")
	router.HandleFunc("/posts/{id:[0-9]+}/content", controller.Content).Methods("GET")
	router.HandleFunc("/posts/{id:[0-9]+}/revisions", controller.Revisions).Methods("GET")

	return router
}

func doJSON(t *testing.T, router *mux.Router, method, path, payload string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if payload != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestPostController(t *testing.T) {
	controller, service := setupTestPostController()
	router := setupRouter(controller)

	t.Run("create post", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/posts", `{"title": "Salad Diary"}`)

		assert.Equal(t, http.StatusCreated, w.Code)

		var response struct {
			ID      int          `json:"id"`
			Title   string       `json:"title"`
			State   models.State `json:"state"`
			Content string       `json:"content"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.NotZero(t, response.ID)
		assert.Equal(t, "Salad Diary", response.Title)
		assert.Equal(t, models.StateDraft, response.State)
		assert.Empty(t, response.Content)
	})

	t.Run("create post with invalid title", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/posts", `{"title": ""}`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("create post with invalid JSON", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/posts", `{"title":`)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("append keeps content hidden", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/posts/1/append", `{"text": "I ate a salad for lunch today"}`)
		assert.Equal(t, http.StatusOK, w.Code)

		var response struct {
			State   models.State `json:"state"`
			Content string       `json:"content"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, models.StateDraft, response.State)
		assert.Empty(t, response.Content)

		w = doJSON(t, router, http.MethodGet, "/posts/1/content", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"content": ""}`, w.Body.String())
	})

	t.Run("review and approve publish the content", func(t *testing.T) {
		w := doJSON(t, router, http.MethodPost, "/posts/1/review", "")
		assert.Equal(t, http.StatusOK, w.Code)

		var response struct {
			State   models.State `json:"state"`
			Content string       `json:"content"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, models.StatePendingReview, response.State)
		assert.Empty(t, response.Content)

		w = doJSON(t, router, http.MethodPost, "/posts/1/approve", "")
		assert.Equal(t, http.StatusOK, w.Code)
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, models.StatePublished, response.State)
		assert.Equal(t, "I ate a salad for lunch today", response.Content)

		w = doJSON(t, router, http.MethodGet, "/posts/1/content", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `{"content": "I ate a salad for lunch today"}`, w.Body.String())
	})

	t.Run("show redacts unpublished posts", func(t *testing.T) {
		post := models.NewPost("Hidden Post")
		require.NoError(t, service.CreateDraft(post))
		_, err := service.AddText(post.ID, "secret draft text")
		require.NoError(t, err)

		w := doJSON(t, router, http.MethodGet, "/posts/"+strconv.Itoa(post.ID), "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.NotContains(t, w.Body.String(), "secret draft text")
	})

	t.Run("revisions", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/posts/1/revisions", "")
		assert.Equal(t, http.StatusOK, w.Code)

		var response struct {
			Revisions []models.Revision `json:"revisions"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		require.Len(t, response.Revisions, 1)
		assert.Equal(t, "I ate a salad for lunch today", response.Revisions[0].Text)
		assert.Len(t, response.Revisions[0].Digest, 64)
	})

	t.Run("list posts", func(t *testing.T) {
		w := doJSON(t, router, http.MethodGet, "/posts?page=1&per_page=10", "")
		assert.Equal(t, http.StatusOK, w.Code)

		var response struct {
			Page  int `json:"page"`
			Posts []struct {
				ID      int    `json:"id"`
				Content string `json:"content"`
			} `json:"posts"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, 1, response.Page)
		assert.Len(t, response.Posts, 2)
	})

	t.Run("missing post returns 404", func(t *testing.T) {
		for _, probe := range []struct {
			method string
			path   string
			body   string
		}{
			{http.MethodGet, "/posts/999", ""},
			{http.MethodPost, "/posts/999/append", `{"text": "x"}`},
			{http.MethodPost, "/posts/999/review", ""},
			{http.MethodPost, "/posts/999/approve", ""},
			{http.MethodGet, "/posts/999/content", ""},
			{http.MethodGet, "/posts/999/revisions", ""},
		} {
			w := doJSON(t, router, probe.method, probe.path, probe.body)
			assert.Equal(t, http.StatusNotFound, w.Code, "%s %s", probe.method, probe.path)
		}
	})

	t.Run("delete post", func(t *testing.T) {
		w := doJSON(t, router, http.MethodDelete, "/posts/1", "")
		assert.Equal(t, http.StatusNoContent, w.Code)

		w = doJSON(t, router, http.MethodGet, "/posts/1", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
