package services

import (
	"fmt"

	"inkwell/app/models"
	"inkwell/app/repositories"

	"github.com/google/uuid"
)

// UserService manages author accounts and their sessions. It backs the
// identity provider the rest of the core consumes.
type UserService struct {
	userRepo    repositories.UserRepository
	sessionRepo repositories.SessionRepository
	postRepo    repositories.PostRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repositories.UserRepository, sessionRepo repositories.SessionRepository, postRepo repositories.PostRepository) *UserService {
	return &UserService{
		userRepo:    userRepo,
		sessionRepo: sessionRepo,
		postRepo:    postRepo,
	}
}

// Register creates a new author account.
func (s *UserService) Register(username, password string) (*models.User, error) {
	if _, err := s.userRepo.GetByUsername(username); err == nil {
		return nil, fmt.Errorf("%w: username %q is taken", ErrValidation, username)
	} else if err != repositories.ErrNotFound {
		return nil, err
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("%w: password must be at least 8 characters", ErrValidation)
	}

	user := &models.User{Username: username}
	if err := user.SetPassword(password); err != nil {
		return nil, err
	}
	user.BeforeCreate()

	if err := user.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	if err := s.userRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Login verifies the credentials and opens a new session, returning the user
// and the session token.
func (s *UserService) Login(username, password string) (*models.User, string, error) {
	user, err := s.userRepo.GetByUsername(username)
	if err == repositories.ErrNotFound {
		return nil, "", ErrForbidden
	}
	if err != nil {
		return nil, "", err
	}
	if !user.CheckPassword(password) {
		return nil, "", ErrForbidden
	}

	token := uuid.NewString()
	if err := s.sessionRepo.Create(token, user.ID); err != nil {
		return nil, "", err
	}
	return user, token, nil
}

// Logout closes the session.
func (s *UserService) Logout(token string) error {
	return s.sessionRepo.Delete(token)
}

// CurrentUser resolves a session token to its user, or nil when the token is
// empty or stale. This is the "current principal, or none" capability.
func (s *UserService) CurrentUser(token string) (*models.User, error) {
	if token == "" {
		return nil, nil
	}
	userID, err := s.sessionRepo.Get(token)
	if err == repositories.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByID(userID)
	if err == repositories.ErrNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteAccount removes the principal's account. Their posts survive with
// the author reference cleared.
func (s *UserService) DeleteAccount(principal *models.User) error {
	if principal == nil {
		return ErrForbidden
	}
	if err := s.postRepo.ClearAuthor(principal.ID); err != nil {
		return fmt.Errorf("failed to detach posts: %v", err)
	}
	return s.userRepo.Delete(principal.ID)
}
