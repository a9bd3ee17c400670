package repositories

import (
	"strconv"

	"github.com/dgraph-io/badger/v4"
)

// BadgerSessionRepository stores session tokens in BadgerDB.
type BadgerSessionRepository struct {
	db *badger.DB
}

// NewBadgerSessionRepository creates a new BadgerSessionRepository
func NewBadgerSessionRepository(db *badger.DB) *BadgerSessionRepository {
	return &BadgerSessionRepository{db: db}
}

func sessionKey(token string) []byte {
	return []byte(SessionKeyPrefix + token)
}

// Create stores a session token for the user
func (r *BadgerSessionRepository) Create(token string, userID int) error {
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Set(sessionKey(token), []byte(strconv.Itoa(userID)))
	})
}

// Get resolves a session token to a user ID
func (r *BadgerSessionRepository) Get(token string) (int, error) {
	var userID int
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(sessionKey(token))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			userID, err = strconv.Atoi(string(val))
			return err
		})
	})
	if err != nil {
		return 0, err
	}
	return userID, nil
}

// Delete removes a session token
func (r *BadgerSessionRepository) Delete(token string) error {
	return r.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(sessionKey(token))
	})
}
