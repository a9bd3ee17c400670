package repositories

import "inkwell/app/models"

// PostRepository defines the interface for post data access
type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id int) (*models.Post, error)
	// ListByStatus returns posts in the given status ordered by
	// DatePublished descending (drafts fall back to DateEdited).
	ListByStatus(status models.Status, limit, offset int) ([]*models.Post, error)
	// ListByAuthorAndStatus returns the author's posts in the given status
	// ordered by DateEdited descending.
	ListByAuthorAndStatus(authorID int, status models.Status, limit, offset int) ([]*models.Post, error)
	Update(post *models.Post) error
	// Mutate applies fn to the stored post inside a single store
	// transaction. The read, the guard inside fn and the write all commit
	// together, so two concurrent lifecycle transitions cannot both pass
	// the same precondition.
	Mutate(id int, fn func(*models.Post) error) (*models.Post, error)
	Delete(id int) error
	// ClearAuthor detaches all posts of a deleted author; the posts remain.
	ClearAuthor(authorID int) error
}

// CommentRepository defines the interface for comment data access
type CommentRepository interface {
	Create(comment *models.Comment) error
	GetByID(id int) (*models.Comment, error)
	// ListByPost returns a post's comments newest-first.
	ListByPost(postID int) ([]*models.Comment, error)
	// ListAll returns every comment newest-first.
	ListAll() ([]*models.Comment, error)
	Delete(id int) error
	// DeleteByPost removes all comments attached to the post.
	DeleteByPost(postID int) error
}

// UserRepository defines the interface for user account data access
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id int) (*models.User, error)
	GetByUsername(username string) (*models.User, error)
	Delete(id int) error
}

// SessionRepository maps session tokens to user IDs.
type SessionRepository interface {
	Create(token string, userID int) error
	Get(token string) (int, error)
	Delete(token string) error
}
