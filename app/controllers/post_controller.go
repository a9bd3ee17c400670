package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"inkwell/app/middleware"
	"inkwell/app/models"
	"inkwell/app/services"

	"github.com/gorilla/mux"
)

// PostController handles HTTP requests for blog posts
type PostController struct {
	postService *services.PostService
	perPage     int
}

// NewPostController creates a new PostController. perPage is the default
// feed page size when the request carries no per_page parameter.
func NewPostController(postService *services.PostService, perPage int) *PostController {
	return &PostController{postService: postService, perPage: perPage}
}

// SetService sets the post service for testing
func (pc *PostController) SetService(service *services.PostService) {
	pc.postService = service
}

type postPayload struct {
	Title string `json:"title"`
	Text  string `json:"text"`
}

// Index handles the public feed of published posts
func (pc *PostController) Index(w http.ResponseWriter, r *http.Request) {
	page, perPage := parsePaging(r, pc.perPage)

	posts, err := pc.postService.PublicFeed(page, perPage)
	if err != nil {
		sendError(w, "Failed to fetch posts: "+err.Error(), http.StatusInternalServerError)
		return
	}

	sendJSON(w, http.StatusOK, map[string]interface{}{
		"posts": posts,
		"page":  page,
	})
}

// Show handles displaying a single published post
func (pc *PostController) Show(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}

	post, err := pc.postService.PublicPost(id)
	if err != nil {
		sendServiceError(w, err)
		return
	}

	sendJSON(w, http.StatusOK, post)
}

// ArchiveIndex handles the feed of archived posts
func (pc *PostController) ArchiveIndex(w http.ResponseWriter, r *http.Request) {
	page, perPage := parsePaging(r, pc.perPage)

	posts, err := pc.postService.ArchiveFeed(page, perPage)
	if err != nil {
		sendError(w, "Failed to fetch posts: "+err.Error(), http.StatusInternalServerError)
		return
	}

	sendJSON(w, http.StatusOK, map[string]interface{}{
		"posts": posts,
		"page":  page,
	})
}

// ArchiveShow handles displaying a single archived post
func (pc *PostController) ArchiveShow(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}

	post, err := pc.postService.ArchivedPost(id)
	if err != nil {
		sendServiceError(w, err)
		return
	}

	sendJSON(w, http.StatusOK, post)
}

// Create handles creating a new draft
func (pc *PostController) Create(w http.ResponseWriter, r *http.Request) {
	var payload postPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		sendError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	post, err := pc.postService.CreateDraft(middleware.Principal(r), payload.Title, payload.Text)
	if err != nil {
		sendServiceError(w, err)
		return
	}

	sendJSON(w, http.StatusCreated, post)
}

// Manage handles the owner's management view of a post
func (pc *PostController) Manage(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}

	post, err := pc.postService.ManagePost(middleware.Principal(r), id)
	if err != nil {
		sendServiceError(w, err)
		return
	}

	sendJSON(w, http.StatusOK, map[string]interface{}{
		"post":         post,
		"status_label": post.Status.Label(),
	})
}

// Update handles editing a post's title and text
func (pc *PostController) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}

	var payload postPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		sendError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	post, err := pc.postService.UpdateDraft(middleware.Principal(r), id, payload.Title, payload.Text)
	if err != nil {
		sendServiceError(w, err)
		return
	}

	sendJSON(w, http.StatusOK, post)
}

// Action handles lifecycle transitions (publish, archive, republish, delete)
func (pc *PostController) Action(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r, "id")
	if !ok {
		return
	}
	action := mux.Vars(r)["action"]

	result, err := pc.postService.Transition(middleware.Principal(r), id, action)
	if errors.Is(err, models.ErrUnknownAction) {
		// Lenient dispatcher: the post is untouched, the caller gets a
		// warning and the canonical URL to go back to.
		sendJSON(w, http.StatusOK, map[string]interface{}{
			"warning":  result.Warning,
			"redirect": result.RedirectURL,
		})
		return
	}
	if err != nil {
		sendServiceError(w, err)
		return
	}

	sendJSON(w, http.StatusOK, map[string]interface{}{
		"post":     result.Post,
		"redirect": result.RedirectURL,
	})
}

// MyPosts handles the owner's feed filtered by status
func (pc *PostController) MyPosts(w http.ResponseWriter, r *http.Request) {
	statusName := mux.Vars(r)["status"]
	page, perPage := parsePaging(r, pc.perPage)

	posts, err := pc.postService.OwnerFeed(middleware.Principal(r), statusName, page, perPage)
	if err != nil {
		sendServiceError(w, err)
		return
	}

	sendJSON(w, http.StatusOK, map[string]interface{}{
		"posts": posts,
		"page":  page,
	})
}

// Recent handles the recent-posts widget
func (pc *PostController) Recent(w http.ResponseWriter, r *http.Request) {
	posts, err := pc.postService.RecentPosts()
	if err != nil {
		sendError(w, "Failed to fetch posts: "+err.Error(), http.StatusInternalServerError)
		return
	}

	sendJSON(w, http.StatusOK, map[string]interface{}{"posts": posts})
}

func parseID(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(mux.Vars(r)[name])
	if err != nil {
		sendError(w, "Invalid post ID", http.StatusBadRequest)
		return 0, false
	}
	return id, true
}

func parsePaging(r *http.Request, defaultPerPage int) (page, perPage int) {
	page = 1
	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		if p, err := strconv.Atoi(pageStr); err == nil && p > 0 {
			page = p
		}
	}

	perPage = defaultPerPage
	if perPageStr := r.URL.Query().Get("per_page"); perPageStr != "" {
		if pp, err := strconv.Atoi(perPageStr); err == nil && pp > 0 {
			perPage = pp
		}
	}
	return page, perPage
}
