package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"pressroom/app/models"
	"pressroom/app/repositories"
	"pressroom/app/services"

	"github.com/dgraph-io/badger/v4"
	"github.com/gorilla/mux"
)

// PostController handles HTTP requests for the editorial workflow
type PostController struct {
	postService *services.PostService
}

// NewPostController creates a new PostController backed by the given service
func NewPostController(postService *services.PostService) *PostController {
	return &PostController{postService: postService}
}

// NewPostControllerWithDB creates a new PostController with a DB instance
func NewPostControllerWithDB(db *badger.DB) *PostController {
	postRepo := repositories.NewBadgerPostRepository(db)
	revisionRepo := repositories.NewBadgerRevisionRepository(db)
	return NewPostController(services.NewPostService(postRepo, revisionRepo))
}

type createPostRequest struct {
	Title string `json:"title"`
}

type appendTextRequest struct {
	Text string `json:"text"`
}

// postResponse is the API view of a post. The raw body never leaves
// the service; Content is populated through the visibility accessor,
// so it is empty unless the post is published.
type postResponse struct {
	ID        int          `json:"id"`
	Title     string       `json:"title"`
	State     models.State `json:"state"`
	Content   string       `json:"content"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

func newPostResponse(post *models.Post) postResponse {
	return postResponse{
		ID:        post.ID,
		Title:     post.Title,
		State:     post.State,
		Content:   post.Content(),
		CreatedAt: post.CreatedAt,
		UpdatedAt: post.UpdatedAt,
	}
}

// Create handles creating a new draft post
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	var req createPostRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pc.sendError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	post := models.NewPost(req.Title)
	if err := pc.postService.CreateDraft(post); err != nil {
		pc.sendError(w, "Failed to create post: "+err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(newPostResponse(post))
}

// Index handles listing posts
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	page := 1
	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			page = p
		}
	}

	perPage := 10
	if perPageStr := r.URL.Query().Get("per_page"); perPageStr != "" {
		if pp, err := strconv.Atoi(perPageStr); err == nil && pp > 0 {
			perPage = pp
		}
	}

	posts, err := pc.postService.ListPosts(page, perPage)
	if err != nil {
		pc.sendError(w, "Failed to fetch posts: "+err.Error(), http.StatusInternalServerError)
		return
	}

	responses := make([]postResponse, 0, len(posts))
	for _, post := range posts {
		responses = append(responses, newPostResponse(post))
	}

	pc.sendJSON(w, map[string]interface{}{
		"posts": responses,
		"page":  page,
	})
}

// Show handles displaying a single post
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := pc.postID(w, r)
	if !ok {
		return
	}

	post, err := pc.postService.GetPost(id)
	if err != nil {
		pc.sendServiceError(w, err)
		return
	}

	pc.sendJSON(w, newPostResponse(post))
}

// Append handles appending text to a post's body
func (pc *PostController) Append(w http.ResponseWriter, r *http.Request) {
	id, ok := pc.postID(w, r)
	if !ok {
		return
	}

	var req appendTextRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		pc.sendError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	post, err := pc.postService.AddText(id, req.Text)
	if err != nil {
		pc.sendServiceError(w, err)
		return
	}

	pc.sendJSON(w, newPostResponse(post))
}

// Review handles submitting a post for editorial review
func (pc *PostController) Review(w http.ResponseWriter, r *http.Request) {
	pc.applyTransition(w, r, pc.postService.RequestReview)
}

// Approve handles approving a post pending review
func (pc *PostController) Approve(w http.ResponseWriter, r *http.Request) {
	pc.applyTransition(w, r, pc.postService.Approve)
}

func (pc *PostController) applyTransition(w http.ResponseWriter, r *http.Request, transition func(int) (*models.Post, error)) {
	id, ok := pc.postID(w, r)
	if !ok {
		return
	}

	post, err := transition(id)
	if err != nil {
		pc.sendServiceError(w, err)
		return
	}

	pc.sendJSON(w, newPostResponse(post))
}

// Content handles reading a post's visible content
func (pc *PostController) Content(w http.ResponseWriter, r *http.Request) {
	id, ok := pc.postID(w, r)
	if !ok {
		return
	}

	content, err := pc.postService.Content(id)
	if err != nil {
		pc.sendServiceError(w, err)
		return
	}

	pc.sendJSON(w, map[string]string{"content": content})
}

// Revisions handles listing a post's revision history
func (pc *PostController) Revisions(w http.ResponseWriter, r *http.Request) {
	id, ok := pc.postID(w, r)
	if !ok {
		return
	}

	revisions, err := pc.postService.ListRevisions(id)
	if err != nil {
		pc.sendServiceError(w, err)
		return
	}
	if revisions == nil {
		revisions = []*models.Revision{}
	}

	pc.sendJSON(w, map[string]interface{}{"revisions": revisions})
}

// Delete handles deleting a post
func (pc *PostController) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pc.postID(w, r)
	if !ok {
		return
	}

	if err := pc.postService.DeletePost(id); err != nil {
		pc.sendServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Helper methods for consistent response handling

func (pc *PostController) postID(w http.ResponseWriter, r *http.Request) (int, bool) {
	vars := mux.Vars(r)
	id, err := strconv.Atoi(vars["id"])
	if err != nil {
		pc.sendError(w, "Invalid post ID", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func (pc *PostController) sendJSON(w http.ResponseWriter, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(data)
}

func (pc *PostController) sendServiceError(w http.ResponseWriter, err error) {
	if errors.Is(err, repositories.ErrNotFound) {
		pc.sendError(w, "Post not found", http.StatusNotFound)
		return
	}
	pc.sendError(w, err.Error(), http.StatusInternalServerError)
}

func (pc *PostController) sendError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
