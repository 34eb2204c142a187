package badgerstore

import (
	"context"
	"testing"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/nmchat/nmbot/pkg/models"
	"github.com/nmchat/nmbot/pkg/store"
)

func newTestStore(t *testing.T, listLimit int) *InteractionStore {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	s := NewInteractionStore(db, listLimit)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func seed(t *testing.T, s *InteractionStore) []models.Interaction {
	t.Helper()
	at := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	interactions := []models.Interaction{
		{Message: "hello", Intent: "greetings", Score: 1, Matched: true, CreatedAt: at},
		{Message: "xzqw", Score: 0, Matched: false, CreatedAt: at.Add(time.Minute)},
		{Message: "my order", Intent: "order", Score: 0.8, Matched: true, CreatedAt: at.Add(2 * time.Minute)},
		{Message: "blorp", Score: 0.1, Matched: false, CreatedAt: at.Add(3 * time.Minute)},
	}
	for i := range interactions {
		require.NoError(t, s.PutInteraction(context.Background(), &interactions[i]))
	}
	return interactions
}

func Test_List_Newest_First(t *testing.T) {
	req := require.New(t)
	s := newTestStore(t, 100)
	stored := seed(t, s)

	got, err := s.ListInteractions(context.Background(), models.InteractionFilter{})
	req.NoError(err)
	req.Len(got, len(stored))
	for i := range got {
		req.Equal(stored[len(stored)-1-i], got[i])
	}
}

func Test_Put_Fills_Identity(t *testing.T) {
	req := require.New(t)
	s := newTestStore(t, 100)

	interaction := models.Interaction{Message: "hi"}
	req.NoError(s.PutInteraction(context.Background(), &interaction))
	req.NotEqual(uuid.Nil, interaction.UUID)
	req.False(interaction.CreatedAt.IsZero())

	got, err := s.ListInteractions(context.Background(), models.InteractionFilter{Limit: 1})
	req.NoError(err)
	req.Len(got, 1)
	req.Equal(interaction.UUID, got[0].UUID)
}

func Test_List_Limit_And_Unmatched(t *testing.T) {
	req := require.New(t)
	s := newTestStore(t, 3)
	seed(t, s)

	got, err := s.ListInteractions(context.Background(), models.InteractionFilter{Limit: 2})
	req.NoError(err)
	req.Len(got, 2)
	req.Equal("blorp", got[0].Message)
	req.Equal("my order", got[1].Message)

	got, err = s.ListInteractions(context.Background(), models.InteractionFilter{Limit: 50})
	req.NoError(err)
	req.Len(got, 3, "limit is capped by the store")

	got, err = s.ListInteractions(context.Background(), models.InteractionFilter{UnmatchedOnly: true})
	req.NoError(err)
	req.Len(got, 2)
	for _, interaction := range got {
		req.False(interaction.Matched)
	}
}

func Test_List_Empty(t *testing.T) {
	req := require.New(t)
	s := newTestStore(t, 10)
	got, err := s.ListInteractions(context.Background(), models.InteractionFilter{})
	req.NoError(err)
	req.Empty(got)
}

func Test_List_Cancelled(t *testing.T) {
	req := require.New(t)
	s := newTestStore(t, 10)
	seed(t, s)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := s.ListInteractions(ctx, models.InteractionFilter{})
	var storageErr *store.StorageError
	req.ErrorAs(err, &storageErr)
	req.ErrorIs(err, context.Canceled)
}
