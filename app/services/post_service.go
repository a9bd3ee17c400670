package services

import (
	"fmt"
	"time"

	"inkwell/app/models"
	"inkwell/app/repositories"
)

// PostService owns the post lifecycle and its authorization rules. Every
// operation takes the acting principal explicitly; nil means anonymous.
type PostService struct {
	postRepo    repositories.PostRepository
	commentRepo repositories.CommentRepository
	now         func() time.Time
}

// TransitionResult is the outcome of a lifecycle command. RedirectURL is the
// post's canonical location after the command (the index for delete).
// Warning carries the lenient-dispatcher message for unrecognized actions.
type TransitionResult struct {
	Post        *models.Post
	RedirectURL string
	Warning     string
}

// NewPostService creates a new PostService
func NewPostService(postRepo repositories.PostRepository, commentRepo repositories.CommentRepository) *PostService {
	return &PostService{
		postRepo:    postRepo,
		commentRepo: commentRepo,
		now:         time.Now,
	}
}

// SetClock replaces the time source for testing
func (s *PostService) SetClock(now func() time.Time) {
	s.now = now
}

// CreateDraft creates a new draft post owned by the author.
func (s *PostService) CreateDraft(author *models.User, title, text string) (*models.Post, error) {
	if author == nil {
		return nil, ErrForbidden
	}

	post := &models.Post{
		AuthorID: author.ID,
		Status:   models.StatusDraft,
		Title:    title,
		Text:     text,
	}
	post.Touch(s.now())

	if err := post.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if err := s.postRepo.Create(post); err != nil {
		return nil, err
	}
	return post, nil
}

// UpdateDraft replaces the title and text of the principal's post and
// refreshes its last-edited stamp.
func (s *PostService) UpdateDraft(principal *models.User, id int, title, text string) (*models.Post, error) {
	return s.postRepo.Mutate(id, func(post *models.Post) error {
		if err := authorizeOwner(principal, post); err != nil {
			return err
		}

		post.Title = title
		post.Text = text
		post.Touch(s.now())

		if err := post.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrValidation, err)
		}
		return nil
	})
}

// Transition performs the named lifecycle action on the principal's post.
// Unrecognized action names do not fail the operation: the post is left
// unchanged and the result still carries its canonical URL plus a warning,
// alongside models.ErrUnknownAction.
func (s *PostService) Transition(principal *models.User, id int, action string) (*TransitionResult, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := authorizeOwner(principal, post); err != nil {
		return nil, err
	}

	parsed, err := models.ParseAction(action)
	if err != nil {
		return &TransitionResult{
			Post:        post,
			RedirectURL: post.CanonicalURL(),
			Warning:     fmt.Sprintf("Action %q not found.", action),
		}, err
	}

	if parsed == models.ActionDelete {
		if err := s.commentRepo.DeleteByPost(id); err != nil {
			return nil, fmt.Errorf("failed to delete comments: %v", err)
		}
		if err := s.postRepo.Delete(id); err != nil {
			return nil, err
		}
		return &TransitionResult{RedirectURL: "/"}, nil
	}

	now := s.now()
	updated, err := s.postRepo.Mutate(id, func(post *models.Post) error {
		// The guard runs inside the store transaction: a concurrent
		// transition that already moved the post makes this one fail.
		var terr error
		switch parsed {
		case models.ActionPublish:
			terr = post.Publish(now)
		case models.ActionArchive:
			terr = post.Archive()
		case models.ActionRepublish:
			terr = post.Republish()
		}
		if terr != nil {
			return terr
		}
		post.Touch(now)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &TransitionResult{
		Post:        updated,
		RedirectURL: updated.CanonicalURL(),
	}, nil
}

// PublicPost retrieves a published post with its comments. Anything not
// published reads as missing.
func (s *PostService) PublicPost(id int) (*models.Post, error) {
	return s.visiblePost(id, models.StatusPublished)
}

// ArchivedPost retrieves an archived post with its comments.
func (s *PostService) ArchivedPost(id int) (*models.Post, error) {
	return s.visiblePost(id, models.StatusArchived)
}

func (s *PostService) visiblePost(id int, status models.Status) (*models.Post, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if post.Status != status {
		return nil, repositories.ErrNotFound
	}

	comments, err := s.commentRepo.ListByPost(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get comments: %v", err)
	}
	post.Comments = comments

	return post, nil
}

// ManagePost retrieves a post for its owner's management view, regardless of
// status.
func (s *PostService) ManagePost(principal *models.User, id int) (*models.Post, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := authorizeOwner(principal, post); err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.ListByPost(id)
	if err != nil {
		return nil, fmt.Errorf("failed to get comments: %v", err)
	}
	post.Comments = comments

	return post, nil
}

// PublicFeed retrieves a page of published posts, newest publication first.
func (s *PostService) PublicFeed(page, perPage int) ([]*models.Post, error) {
	limit, offset := pageWindow(page, perPage)
	return s.postRepo.ListByStatus(models.StatusPublished, limit, offset)
}

// ArchiveFeed retrieves a page of archived posts, newest publication first.
func (s *PostService) ArchiveFeed(page, perPage int) ([]*models.Post, error) {
	limit, offset := pageWindow(page, perPage)
	return s.postRepo.ListByStatus(models.StatusArchived, limit, offset)
}

// OwnerFeed retrieves a page of the principal's own posts in the status
// named in the URL, most recently edited first. An unknown status name reads
// as missing, matching the public URL space.
func (s *PostService) OwnerFeed(principal *models.User, statusName string, page, perPage int) ([]*models.Post, error) {
	if principal == nil {
		return nil, ErrForbidden
	}
	status, err := models.ParseStatus(statusName)
	if err != nil {
		return nil, repositories.ErrNotFound
	}

	limit, offset := pageWindow(page, perPage)
	return s.postRepo.ListByAuthorAndStatus(principal.ID, status, limit, offset)
}

// RecentPosts returns the five most recently published posts.
func (s *PostService) RecentPosts() ([]*models.Post, error) {
	return s.postRepo.ListByStatus(models.StatusPublished, 5, 0)
}

// authorizeOwner checks that the principal owns the post. Ownership-gated
// operations fail as forbidden for any non-owner; draft invisibility is
// handled by the read paths, which filter on status and answer not-found.
func authorizeOwner(principal *models.User, post *models.Post) error {
	if post.IsOwnedBy(principal) {
		return nil
	}
	return ErrForbidden
}

func pageWindow(page, perPage int) (limit, offset int) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}
	return perPage, (page - 1) * perPage
}
