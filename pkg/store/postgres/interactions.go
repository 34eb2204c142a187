// Package postgres is an interaction log backed by Postgres through bun.
package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"

	"github.com/nmchat/nmbot/internal"
	"github.com/nmchat/nmbot/pkg/models"
	"github.com/nmchat/nmbot/pkg/store"
)

var log = internal.GetLogger()

var _ models.InteractionStore = (*InteractionStore)(nil)

type InteractionStore struct {
	client    *bun.DB
	listLimit int
}

// NewInteractionStore returns a store over client after ensuring the schema exists.
func NewInteractionStore(ctx context.Context, client *bun.DB, listLimit int) (*InteractionStore, error) {
	if err := CreateSchema(ctx, client); err != nil {
		return nil, store.NewStorageError("failed to ensure postgres schema setup", err)
	}
	return &InteractionStore{client: client, listLimit: listLimit}, nil
}

// Open connects to dsn and returns a ready store.
func Open(ctx context.Context, dsn string, listLimit int) (*InteractionStore, error) {
	db, err := NewPostgresConn(dsn)
	if err != nil {
		return nil, store.NewStorageError("failed to connect to postgres", err)
	}
	SetUpDBLogging(db, log)

	s, err := NewInteractionStore(ctx, db, listLimit)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *InteractionStore) PutInteraction(ctx context.Context, interaction *models.Interaction) error {
	if interaction.UUID == uuid.Nil {
		interaction.UUID = uuid.New()
	}
	if interaction.CreatedAt.IsZero() {
		interaction.CreatedAt = time.Now().UTC()
	}

	_, err := s.client.NewInsert().
		Model(toSchema(interaction)).
		Exec(ctx)
	if err != nil {
		return store.NewStorageError("failed to put interaction", err)
	}
	return nil
}

func (s *InteractionStore) ListInteractions(
	ctx context.Context,
	filter models.InteractionFilter,
) ([]models.Interaction, error) {
	var rows []InteractionSchema
	query := s.client.NewSelect().
		Model(&rows).
		Order("id DESC").
		Limit(store.ClampLimit(filter.Limit, s.listLimit))
	if filter.UnmatchedOnly {
		query = query.Where("matched = ?", false)
	}
	if err := query.Scan(ctx); err != nil {
		return nil, store.NewStorageError("failed to list interactions", err)
	}

	interactions := make([]models.Interaction, len(rows))
	for i := range rows {
		interactions[i] = rows[i].toInteraction()
	}
	return interactions, nil
}

// DeleteAll removes every interaction.
func (s *InteractionStore) DeleteAll(ctx context.Context) error {
	_, err := s.client.NewDelete().
		Model((*InteractionSchema)(nil)).
		Where("1 = 1").
		Exec(ctx)
	if err != nil {
		return store.NewStorageError("failed to delete interactions", err)
	}
	return nil
}

func (s *InteractionStore) Close() error {
	return s.client.Close()
}
