package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"runtime"
	"time"

	"github.com/failsafe-go/failsafe-go"
	"github.com/failsafe-go/failsafe-go/retrypolicy"
	"github.com/google/uuid"
	"github.com/oiime/logrusbun"
	"github.com/sirupsen/logrus"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/nmchat/nmbot/pkg/models"
)

type InteractionSchema struct {
	bun.BaseModel `bun:"table:interaction,alias:i" yaml:"-"`

	UUID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"                     yaml:"uuid"`
	// ID is used only for sorting as interactions may share a CreatedAt
	ID         int64     `bun:",autoincrement"                                     yaml:"id,omitempty"`
	CreatedAt  time.Time `bun:"type:timestamptz,notnull,default:current_timestamp" yaml:"created_at,omitempty"`
	Message    string    `bun:",notnull"                                           yaml:"message"`
	Normalized string    `bun:",notnull"                                           yaml:"normalized"`
	Intent     string    `bun:",nullzero"                                          yaml:"intent,omitempty"`
	Score      float64   `bun:",notnull"                                           yaml:"score"`
	Matched    bool      `bun:",notnull"                                           yaml:"matched"`
	Response   string    `bun:",notnull"                                           yaml:"response"`
	Language   string    `bun:",nullzero"                                          yaml:"language,omitempty"`
	RequestID  string    `bun:",nullzero"                                          yaml:"request_id,omitempty"`
}

var _ bun.BeforeAppendModelHook = (*InteractionSchema)(nil)

func (s *InteractionSchema) BeforeAppendModel(_ context.Context, query bun.Query) error {
	if _, ok := query.(*bun.InsertQuery); ok && s.CreatedAt.IsZero() {
		s.CreatedAt = time.Now().UTC()
	}
	return nil
}

var _ bun.AfterCreateTableHook = (*InteractionSchema)(nil)

func (*InteractionSchema) AfterCreateTable(
	ctx context.Context,
	query *bun.CreateTableQuery,
) error {
	_, err := query.DB().NewCreateIndex().
		Model((*InteractionSchema)(nil)).
		Index("interaction_matched_idx").
		Column("matched").
		IfNotExists().
		Exec(ctx)
	return err
}

func toSchema(interaction *models.Interaction) *InteractionSchema {
	return &InteractionSchema{
		UUID:       interaction.UUID,
		CreatedAt:  interaction.CreatedAt,
		Message:    interaction.Message,
		Normalized: interaction.Normalized,
		Intent:     interaction.Intent,
		Score:      interaction.Score,
		Matched:    interaction.Matched,
		Response:   interaction.Response,
		Language:   interaction.Language,
		RequestID:  interaction.RequestID,
	}
}

func (s *InteractionSchema) toInteraction() models.Interaction {
	return models.Interaction{
		UUID:       s.UUID,
		CreatedAt:  s.CreatedAt,
		Message:    s.Message,
		Normalized: s.Normalized,
		Intent:     s.Intent,
		Score:      s.Score,
		Matched:    s.Matched,
		Response:   s.Response,
		Language:   s.Language,
		RequestID:  s.RequestID,
	}
}

// CreateSchema creates the db schema if it does not exist.
func CreateSchema(ctx context.Context, db *bun.DB) error {
	_, err := db.NewCreateTable().
		Model((*InteractionSchema)(nil)).
		IfNotExists().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("error creating table for interaction: %w", err)
	}
	return nil
}

// NewPostgresConn creates a new bun.DB connection to a postgres database using the provided DSN.
// The connection is configured to pool connections based on the number of PROCs available.
func NewPostgresConn(dsn string) (*bun.DB, error) {
	if dsn == "" {
		return nil, fmt.Errorf("postgres dsn is empty")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	maxOpenConns := 4 * runtime.GOMAXPROCS(0)

	sqldb := sql.OpenDB(
		pgdriver.NewConnector(
			pgdriver.WithDSN(dsn),
			pgdriver.WithReadTimeout(30*time.Second),
		),
	)
	sqldb.SetMaxOpenConns(maxOpenConns)
	sqldb.SetMaxIdleConns(maxOpenConns)

	db := bun.NewDB(sqldb, pgdialect.New())

	// Postgres may still be starting, e.g. under docker compose
	pingRetryPolicy := retrypolicy.Builder[any]().
		WithBackoff(500*time.Millisecond, 5*time.Second).
		WithMaxRetries(5).
		Build()

	err := failsafe.Run(func() error {
		return db.PingContext(ctx)
	}, pingRetryPolicy)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("error connecting to postgres: %w", err)
	}
	return db, nil
}

// SetUpDBLogging logs queries at debug level and slow queries at warn level.
func SetUpDBLogging(db *bun.DB, log logrus.FieldLogger) {
	db.AddQueryHook(logrusbun.NewQueryHook(logrusbun.QueryHookOptions{
		LogSlow:         time.Second,
		Logger:          log,
		QueryLevel:      logrus.DebugLevel,
		ErrorLevel:      logrus.ErrorLevel,
		SlowLevel:       logrus.WarnLevel,
		MessageTemplate: "{{.Operation}}[{{.Duration}}]: {{.Query}}",
		ErrorTemplate:   "{{.Operation}}[{{.Duration}}]: {{.Query}}: {{.Error}}",
	}))
}
