package controllers

import (
	"encoding/json"
	"net/http"

	"inkwell/app/services"
)

// CommentController handles HTTP requests for comments
type CommentController struct {
	commentService *services.CommentService
}

// NewCommentController creates a new CommentController
func NewCommentController(commentService *services.CommentService) *CommentController {
	return &CommentController{commentService: commentService}
}

// SetService sets the comment service for testing
func (cc *CommentController) SetService(service *services.CommentService) {
	cc.commentService = service
}

type commentPayload struct {
	Name string `json:"name"`
	Text string `json:"text"`
}

// Create handles attaching a new comment to a published post
func (cc *CommentController) Create(w http.ResponseWriter, r *http.Request) {
	postID, ok := parseID(w, r, "postId")
	if !ok {
		return
	}

	var payload commentPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		sendError(w, "Invalid JSON: "+err.Error(), http.StatusBadRequest)
		return
	}

	comment, redirect, err := cc.commentService.AddComment(postID, payload.Name, payload.Text)
	if err != nil {
		sendServiceError(w, err)
		return
	}

	sendJSON(w, http.StatusCreated, map[string]interface{}{
		"comment":  comment,
		"redirect": redirect,
	})
}

// Index handles listing a post's comments, newest first
func (cc *CommentController) Index(w http.ResponseWriter, r *http.Request) {
	postID, ok := parseID(w, r, "postId")
	if !ok {
		return
	}

	comments, err := cc.commentService.ListPostComments(postID)
	if err != nil {
		sendServiceError(w, err)
		return
	}

	sendJSON(w, http.StatusOK, map[string]interface{}{"comments": comments})
}

// Recent handles the recent-comments widget
func (cc *CommentController) Recent(w http.ResponseWriter, r *http.Request) {
	comments, err := cc.commentService.RecentComments()
	if err != nil {
		sendError(w, "Failed to fetch comments: "+err.Error(), http.StatusInternalServerError)
		return
	}

	sendJSON(w, http.StatusOK, map[string]interface{}{"comments": comments})
}
