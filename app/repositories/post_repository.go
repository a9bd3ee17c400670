package repositories

import (
	"fmt"
	"sort"
	"time"

	"inkwell/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerPostRepository implements PostRepository using BadgerDB
type BadgerPostRepository struct {
	db *badger.DB
}

// NewBadgerPostRepository creates a new BadgerPostRepository
func NewBadgerPostRepository(db *badger.DB) *BadgerPostRepository {
	return &BadgerPostRepository{db: db}
}

func postKey(id int) []byte {
	return []byte(fmt.Sprintf("%s%d", PostKeyPrefix, id))
}

// Create creates a new post
func (r *BadgerPostRepository) Create(post *models.Post) error {
	return r.db.Update(func(txn *badger.Txn) error {
		// Get next ID
		id, err := getNextID(txn, PostSeqKey)
		if err != nil {
			return err
		}
		post.ID = id

		// Marshal post
		data, err := marshalEntity(post)
		if err != nil {
			return err
		}

		// Save post
		return txn.Set(postKey(post.ID), data)
	})
}

// GetByID retrieves a post by ID
func (r *BadgerPostRepository) GetByID(id int) (*models.Post, error) {
	var post models.Post

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(postKey(id))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return unmarshalEntity(val, &post)
		})
	})

	if err != nil {
		return nil, err
	}
	return &post, nil
}

// scan collects every post matching the filter.
func (r *BadgerPostRepository) scan(filter func(*models.Post) bool) ([]*models.Post, error) {
	var posts []*models.Post
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(PostKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var post models.Post
			err := item.Value(func(val []byte) error {
				return unmarshalEntity(val, &post)
			})
			if err != nil {
				return fmt.Errorf("failed to unmarshal post: %v", err)
			}
			if filter(&post) {
				posts = append(posts, &post)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return posts, nil
}

// ListByStatus retrieves a paginated list of posts in the given status,
// ordered by publication date descending. Drafts have no publication date
// and fall back to the last-edited stamp.
func (r *BadgerPostRepository) ListByStatus(status models.Status, limit, offset int) ([]*models.Post, error) {
	posts, err := r.scan(func(p *models.Post) bool { return p.Status == status })
	if err != nil {
		return nil, err
	}
	sort.Slice(posts, func(i, j int) bool {
		return pubStamp(posts[i]).After(pubStamp(posts[j]))
	})
	return paginate(posts, limit, offset), nil
}

// ListByAuthorAndStatus retrieves a paginated list of the author's posts in
// the given status, ordered by last edit descending.
func (r *BadgerPostRepository) ListByAuthorAndStatus(authorID int, status models.Status, limit, offset int) ([]*models.Post, error) {
	posts, err := r.scan(func(p *models.Post) bool {
		return p.AuthorID == authorID && p.Status == status
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(posts, func(i, j int) bool {
		return posts[i].DateEdited.After(posts[j].DateEdited)
	})
	return paginate(posts, limit, offset), nil
}

// Update updates an existing post
func (r *BadgerPostRepository) Update(post *models.Post) error {
	return r.db.Update(func(txn *badger.Txn) error {
		key := postKey(post.ID)

		// Verify post exists
		_, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		// Marshal and save updated post
		data, err := marshalEntity(post)
		if err != nil {
			return err
		}
		return txn.Set(key, data)
	})
}

// Mutate loads the post, applies fn and writes the result back, all inside
// one store transaction. If fn returns an error nothing is written.
func (r *BadgerPostRepository) Mutate(id int, fn func(*models.Post) error) (*models.Post, error) {
	var post models.Post
	err := r.db.Update(func(txn *badger.Txn) error {
		key := postKey(id)
		item, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		if err := item.Value(func(val []byte) error {
			return unmarshalEntity(val, &post)
		}); err != nil {
			return err
		}

		if err := fn(&post); err != nil {
			return err
		}

		data, err := marshalEntity(&post)
		if err != nil {
			return err
		}
		return txn.Set(key, data)
	})
	if err != nil {
		return nil, err
	}
	return &post, nil
}

// Delete deletes a post by ID
func (r *BadgerPostRepository) Delete(id int) error {
	return r.db.Update(func(txn *badger.Txn) error {
		key := postKey(id)

		// Verify post exists
		_, err := txn.Get(key)
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return txn.Delete(key)
	})
}

// ClearAuthor detaches every post of the given author. Posts survive the
// author's account.
func (r *BadgerPostRepository) ClearAuthor(authorID int) error {
	posts, err := r.scan(func(p *models.Post) bool { return p.AuthorID == authorID })
	if err != nil {
		return err
	}
	for _, post := range posts {
		post.AuthorID = 0
		if err := r.Update(post); err != nil {
			return fmt.Errorf("failed to detach post %d: %v", post.ID, err)
		}
	}
	return nil
}

// pubStamp is the feed-ordering timestamp for a post.
func pubStamp(p *models.Post) time.Time {
	if p.DatePublished != nil {
		return *p.DatePublished
	}
	return p.DateEdited
}
