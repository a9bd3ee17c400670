package repositories

import (
	"fmt"
	"sort"

	"inkwell/app/models"

	"github.com/dgraph-io/badger/v4"
)

// BadgerCommentRepository implements CommentRepository using BadgerDB
type BadgerCommentRepository struct {
	db *badger.DB
}

// NewBadgerCommentRepository creates a new BadgerCommentRepository
func NewBadgerCommentRepository(db *badger.DB) *BadgerCommentRepository {
	return &BadgerCommentRepository{db: db}
}

func commentKey(id int) []byte {
	return []byte(fmt.Sprintf("%s%d", CommentKeyPrefix, id))
}

// Create creates a new comment
func (r *BadgerCommentRepository) Create(comment *models.Comment) error {
	return r.db.Update(func(txn *badger.Txn) error {
		id, err := getNextID(txn, CommentSeqKey)
		if err != nil {
			return err
		}
		comment.ID = id

		data, err := marshalEntity(comment)
		if err != nil {
			return err
		}
		return txn.Set(commentKey(comment.ID), data)
	})
}

// GetByID retrieves a comment by ID
func (r *BadgerCommentRepository) GetByID(id int) (*models.Comment, error) {
	var comment models.Comment

	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(commentKey(id))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return unmarshalEntity(val, &comment)
		})
	})

	if err != nil {
		return nil, err
	}
	return &comment, nil
}

// scan collects every comment matching the filter.
func (r *BadgerCommentRepository) scan(filter func(*models.Comment) bool) ([]*models.Comment, error) {
	var comments []*models.Comment
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(CommentKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var comment models.Comment
			err := item.Value(func(val []byte) error {
				return unmarshalEntity(val, &comment)
			})
			if err != nil {
				return fmt.Errorf("failed to unmarshal comment: %v", err)
			}
			if filter(&comment) {
				comments = append(comments, &comment)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return comments, nil
}

// ListByPost retrieves a post's comments, newest first.
func (r *BadgerCommentRepository) ListByPost(postID int) ([]*models.Comment, error) {
	comments, err := r.scan(func(c *models.Comment) bool { return c.PostID == postID })
	if err != nil {
		return nil, err
	}
	sortNewestFirst(comments)
	return comments, nil
}

// ListAll retrieves every comment, newest first.
func (r *BadgerCommentRepository) ListAll() ([]*models.Comment, error) {
	comments, err := r.scan(func(*models.Comment) bool { return true })
	if err != nil {
		return nil, err
	}
	sortNewestFirst(comments)
	return comments, nil
}

// Delete deletes a comment by ID
func (r *BadgerCommentRepository) Delete(id int) error {
	return r.db.Update(func(txn *badger.Txn) error {
		key := commentKey(id)

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

// DeleteByPost removes all comments attached to the post.
func (r *BadgerCommentRepository) DeleteByPost(postID int) error {
	comments, err := r.scan(func(c *models.Comment) bool { return c.PostID == postID })
	if err != nil {
		return err
	}
	for _, comment := range comments {
		if err := r.Delete(comment.ID); err != nil {
			return fmt.Errorf("failed to delete comment %d: %v", comment.ID, err)
		}
	}
	return nil
}

func sortNewestFirst(comments []*models.Comment) {
	sort.Slice(comments, func(i, j int) bool {
		if comments[i].DatePublished.Equal(comments[j].DatePublished) {
			return comments[i].ID > comments[j].ID
		}
		return comments[i].DatePublished.After(comments[j].DatePublished)
	})
}
