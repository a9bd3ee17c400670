package services

import (
	"fmt"
	"time"

	"inkwell/app/models"
	"inkwell/app/repositories"
)

// CommentService attaches reader comments to published posts.
type CommentService struct {
	commentRepo repositories.CommentRepository
	postRepo    repositories.PostRepository
	now         func() time.Time
}

// NewCommentService creates a new CommentService
func NewCommentService(commentRepo repositories.CommentRepository, postRepo repositories.PostRepository) *CommentService {
	return &CommentService{
		commentRepo: commentRepo,
		postRepo:    postRepo,
		now:         time.Now,
	}
}

// SetClock replaces the time source for testing
func (s *CommentService) SetClock(now func() time.Time) {
	s.now = now
}

// AddComment attaches a new comment to a published post. Drafts and archived
// posts accept no comments and read as missing. Returns the created comment
// and the post's canonical URL for the post-submission redirect. The post
// record itself is untouched.
func (s *CommentService) AddComment(postID int, name, text string) (*models.Comment, string, error) {
	post, err := s.postRepo.GetByID(postID)
	if err != nil {
		return nil, "", err
	}
	if post.Status != models.StatusPublished {
		return nil, "", repositories.ErrNotFound
	}

	comment := &models.Comment{
		PostID:        postID,
		Name:          name,
		Text:          text,
		DatePublished: s.now(),
	}
	if err := comment.Validate(); err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if err := s.commentRepo.Create(comment); err != nil {
		return nil, "", err
	}
	return comment, post.CanonicalURL(), nil
}

// ListPostComments retrieves a readable post's comments, newest first.
func (s *CommentService) ListPostComments(postID int) ([]*models.Comment, error) {
	post, err := s.postRepo.GetByID(postID)
	if err != nil {
		return nil, err
	}
	if post.Status == models.StatusDraft {
		return nil, repositories.ErrNotFound
	}

	return s.commentRepo.ListByPost(postID)
}

// RecentComments returns the five most recent comments whose post is
// currently published.
func (s *CommentService) RecentComments() ([]*models.Comment, error) {
	comments, err := s.commentRepo.ListAll()
	if err != nil {
		return nil, err
	}

	var recent []*models.Comment
	for _, comment := range comments {
		post, err := s.postRepo.GetByID(comment.PostID)
		if err == repositories.ErrNotFound {
			continue
		}
		if err != nil {
			return nil, err
		}
		if post.Status != models.StatusPublished {
			continue
		}
		recent = append(recent, comment)
		if len(recent) == 5 {
			break
		}
	}
	return recent, nil
}
