// Package badgerstore is an embedded interaction log backed by BadgerDB.
package badgerstore

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"

	"github.com/nmchat/nmbot/internal"
	"github.com/nmchat/nmbot/pkg/models"
	"github.com/nmchat/nmbot/pkg/store"
)

var log = internal.GetLogger()

const keyPrefix = "interaction:"

var _ models.InteractionStore = (*InteractionStore)(nil)

type InteractionStore struct {
	db        *badger.DB
	listLimit int
}

// Open opens or creates the database at path.
func Open(path string, listLimit int) (*InteractionStore, error) {
	db, err := badger.Open(badger.DefaultOptions(path).WithLogger(log).WithLoggingLevel(badger.WARNING))
	if err != nil {
		return nil, store.NewStorageError("failed to open badger database "+path, err)
	}
	return NewInteractionStore(db, listLimit), nil
}

// NewInteractionStore wraps an open database. Close closes db.
func NewInteractionStore(db *badger.DB, listLimit int) *InteractionStore {
	return &InteractionStore{db: db, listLimit: listLimit}
}

// PutInteraction stores interaction under "interaction:{unix_nano_padded}:{uuid}"
// so keys sort chronologically. A missing UUID or timestamp is filled in.
func (s *InteractionStore) PutInteraction(_ context.Context, interaction *models.Interaction) error {
	if interaction.UUID == uuid.Nil {
		interaction.UUID = uuid.New()
	}
	if interaction.CreatedAt.IsZero() {
		interaction.CreatedAt = time.Now().UTC()
	}

	value, err := json.Marshal(interaction)
	if err != nil {
		return store.NewStorageError("failed to encode interaction", err)
	}
	key := fmt.Sprintf("%s%019d:%s", keyPrefix, interaction.CreatedAt.UnixNano(), interaction.UUID)

	err = s.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), value)
	})
	if err != nil {
		return store.NewStorageError("failed to put interaction", err)
	}
	return nil
}

// ListInteractions scans backwards from the newest key.
func (s *InteractionStore) ListInteractions(
	ctx context.Context,
	filter models.InteractionFilter,
) ([]models.Interaction, error) {
	limit := store.ClampLimit(filter.Limit, s.listLimit)
	interactions := make([]models.Interaction, 0, limit)

	err := s.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true
		opts.Prefix = []byte(keyPrefix)
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Seek([]byte(keyPrefix + "\xff")); it.ValidForPrefix(opts.Prefix); it.Next() {
			if err := ctx.Err(); err != nil {
				return err
			}
			var interaction models.Interaction
			err := it.Item().Value(func(value []byte) error {
				return json.Unmarshal(value, &interaction)
			})
			if err != nil {
				return err
			}
			if !store.Keep(&interaction, filter) {
				continue
			}
			interactions = append(interactions, interaction)
			if len(interactions) == limit {
				break
			}
		}
		return nil
	})
	if err != nil {
		return nil, store.NewStorageError("failed to list interactions", err)
	}
	return interactions, nil
}

func (s *InteractionStore) Close() error {
	return s.db.Close()
}
