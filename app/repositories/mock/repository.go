package mock

import (
	"sort"
	"sync"
	"time"

	"inkwell/app/models"
	"inkwell/app/repositories"
)

type PostRepository struct {
	posts  map[int]*models.Post
	nextID int
	mutex  sync.RWMutex
}

type CommentRepository struct {
	comments map[int]*models.Comment
	nextID   int
	mutex    sync.RWMutex
}

type UserRepository struct {
	users  map[int]*models.User
	nextID int
	mutex  sync.RWMutex
}

type SessionRepository struct {
	sessions map[string]int
	mutex    sync.RWMutex
}

func NewPostRepository() *PostRepository {
	return &PostRepository{
		posts:  make(map[int]*models.Post),
		nextID: 1,
	}
}

func NewCommentRepository() *CommentRepository {
	return &CommentRepository{
		comments: make(map[int]*models.Comment),
		nextID:   1,
	}
}

func NewUserRepository() *UserRepository {
	return &UserRepository{
		users:  make(map[int]*models.User),
		nextID: 1,
	}
}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{
		sessions: make(map[string]int),
	}
}

// PostRepository implementation

func (m *PostRepository) Create(post *models.Post) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	post.ID = m.nextID
	m.nextID++
	m.posts[post.ID] = clonePost(post)
	return nil
}

func (m *PostRepository) GetByID(id int) (*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	post, exists := m.posts[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	return clonePost(post), nil
}

func (m *PostRepository) ListByStatus(status models.Status, limit, offset int) ([]*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var posts []*models.Post
	for _, post := range m.posts {
		if post.Status == status {
			posts = append(posts, clonePost(post))
		}
	}
	sort.Slice(posts, func(i, j int) bool {
		return pubStamp(posts[i]).After(pubStamp(posts[j]))
	})
	return slicePage(posts, limit, offset), nil
}

func (m *PostRepository) ListByAuthorAndStatus(authorID int, status models.Status, limit, offset int) ([]*models.Post, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var posts []*models.Post
	for _, post := range m.posts {
		if post.AuthorID == authorID && post.Status == status {
			posts = append(posts, clonePost(post))
		}
	}
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].DateEdited.After(posts[j].DateEdited)
	})
	return slicePage(posts, limit, offset), nil
}

func (m *PostRepository) Update(post *models.Post) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.posts[post.ID]; !exists {
		return repositories.ErrNotFound
	}
	m.posts[post.ID] = clonePost(post)
	return nil
}

func (m *PostRepository) Mutate(id int, fn func(*models.Post) error) (*models.Post, error) {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	post, exists := m.posts[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	working := clonePost(post)
	if err := fn(working); err != nil {
		return nil, err
	}
	m.posts[id] = clonePost(working)
	return working, nil
}

func (m *PostRepository) Delete(id int) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.posts[id]; !exists {
		return repositories.ErrNotFound
	}
	delete(m.posts, id)
	return nil
}

func (m *PostRepository) ClearAuthor(authorID int) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	for _, post := range m.posts {
		if post.AuthorID == authorID {
			post.AuthorID = 0
		}
	}
	return nil
}

// CommentRepository implementation

func (m *CommentRepository) Create(comment *models.Comment) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	comment.ID = m.nextID
	m.nextID++
	c := *comment
	m.comments[comment.ID] = &c
	return nil
}

func (m *CommentRepository) GetByID(id int) (*models.Comment, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	comment, exists := m.comments[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	c := *comment
	return &c, nil
}

func (m *CommentRepository) ListByPost(postID int) ([]*models.Comment, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var comments []*models.Comment
	for _, comment := range m.comments {
		if comment.PostID == postID {
			c := *comment
			comments = append(comments, &c)
		}
	}
	sortComments(comments)
	return comments, nil
}

func (m *CommentRepository) ListAll() ([]*models.Comment, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	var comments []*models.Comment
	for _, comment := range m.comments {
		c := *comment
		comments = append(comments, &c)
	}
	sortComments(comments)
	return comments, nil
}

func (m *CommentRepository) Delete(id int) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.comments[id]; !exists {
		return repositories.ErrNotFound
	}
	delete(m.comments, id)
	return nil
}

func (m *CommentRepository) DeleteByPost(postID int) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	for id, comment := range m.comments {
		if comment.PostID == postID {
			delete(m.comments, id)
		}
	}
	return nil
}

// UserRepository implementation

func (m *UserRepository) Create(user *models.User) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	user.ID = m.nextID
	m.nextID++
	u := *user
	m.users[user.ID] = &u
	return nil
}

func (m *UserRepository) GetByID(id int) (*models.User, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	user, exists := m.users[id]
	if !exists {
		return nil, repositories.ErrNotFound
	}
	u := *user
	return &u, nil
}

func (m *UserRepository) GetByUsername(username string) (*models.User, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	for _, user := range m.users {
		if user.Username == username {
			u := *user
			return &u, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (m *UserRepository) Delete(id int) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if _, exists := m.users[id]; !exists {
		return repositories.ErrNotFound
	}
	delete(m.users, id)
	return nil
}

// SessionRepository implementation

func (m *SessionRepository) Create(token string, userID int) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.sessions[token] = userID
	return nil
}

func (m *SessionRepository) Get(token string) (int, error) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	userID, exists := m.sessions[token]
	if !exists {
		return 0, repositories.ErrNotFound
	}
	return userID, nil
}

func (m *SessionRepository) Delete(token string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	delete(m.sessions, token)
	return nil
}

// helpers

func clonePost(post *models.Post) *models.Post {
	p := *post
	p.Comments = nil
	return &p
}

func pubStamp(p *models.Post) time.Time {
	if p.DatePublished != nil {
		return *p.DatePublished
	}
	return p.DateEdited
}

func slicePage(posts []*models.Post, limit, offset int) []*models.Post {
	if offset >= len(posts) {
		return nil
	}
	end := offset + limit
	if limit <= 0 || end > len(posts) {
		end = len(posts)
	}
	return posts[offset:end]
}

func sortComments(comments []*models.Comment) {
	sort.Slice(comments, func(i, j int) bool {
		if comments[i].DatePublished.Equal(comments[j].DatePublished) {
			return comments[i].ID > comments[j].ID
		}
		return comments[i].DatePublished.After(comments[j].DatePublished)
	})
}
