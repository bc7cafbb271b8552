package storage

import (
	"encoding/json"

	"github.com/dgraph-io/badger/v4"
	"github.com/rs/zerolog"

	"saminams/app/models"
)

// BadgerStore keeps both records in a Badger key-value database.
type BadgerStore struct {
	db  *badger.DB
	log zerolog.Logger
}

// NewBadgerStore creates a BadgerStore on an open database.
func NewBadgerStore(db *badger.DB, log zerolog.Logger) *BadgerStore {
	return &BadgerStore{db: db, log: log}
}

// Open opens (or initializes) the Badger database at path.
func Open(path string) (*badger.DB, error) {
	opts := badger.DefaultOptions(path).
		WithLogger(nil).
		WithSyncWrites(false).
		WithNumVersionsToKeep(1).
		WithNumGoroutines(1)
	return badger.Open(opts)
}

// LoadPosts reads the posts record, returning an empty slice when the key is
// absent or the payload is corrupt.
func (s *BadgerStore) LoadPosts() []models.Post {
	var posts []models.Post
	if !s.loadRecord(PostsKey, &posts) || posts == nil {
		return []models.Post{}
	}
	return posts
}

// SavePosts overwrites the posts record with the full collection.
func (s *BadgerStore) SavePosts(posts []models.Post) {
	s.saveRecord(PostsKey, posts)
}

// LoadComments reads the thread map, returning an empty map when the key is
// absent or the payload is corrupt.
func (s *BadgerStore) LoadComments() map[string][]models.Comment {
	var threads map[string][]models.Comment
	if !s.loadRecord(CommentsKey, &threads) || threads == nil {
		return map[string][]models.Comment{}
	}
	return threads
}

// SaveComments overwrites the comments record with the full thread map.
func (s *BadgerStore) SaveComments(threads map[string][]models.Comment) {
	s.saveRecord(CommentsKey, threads)
}

func (s *BadgerStore) loadRecord(key string, out interface{}) bool {
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(key))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return json.Unmarshal(val, out)
		})
	})
	if err == badger.ErrKeyNotFound {
		return false
	}
	if err != nil {
		s.log.Warn().Err(err).Str("key", key).Msg("record unreadable, starting empty")
		return false
	}
	return true
}

func (s *BadgerStore) saveRecord(key string, record interface{}) {
	data, err := json.Marshal(record)
	if err != nil {
		s.log.Error().Err(err).Str("key", key).Msg("failed to marshal record")
		return
	}
	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
	if err != nil {
		s.log.Error().Err(err).Str("key", key).Msg("failed to write record")
	}
}
