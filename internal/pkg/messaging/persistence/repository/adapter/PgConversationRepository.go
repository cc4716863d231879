package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	messaging "go-parley/internal/pkg/messaging/application/domain"
	repository "go-parley/internal/pkg/messaging/persistence/repository/port"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgConversationRepository keeps the conversation as a JSONB document in a
// row that also carries the id, the canonical participant key (unique) and
// the version counter. The whole-document layout matches the other adapters;
// Postgres contributes the unique constraint and the guarded UPDATE.
//
// Expected schema:
//
//	CREATE TABLE conversation (
//	    id              uuid PRIMARY KEY,
//	    participant_key text NOT NULL UNIQUE,
//	    doc             jsonb NOT NULL,
//	    version         bigint NOT NULL DEFAULT 0
//	);
type PgConversationRepository struct {
	pool *pgxpool.Pool
}

func NewPgConversationRepository(pool *pgxpool.Pool) *PgConversationRepository {
	return &PgConversationRepository{pool: pool}
}

// Ensure interface compliance at compile time
var _ repository.ConversationRepository = (*PgConversationRepository)(nil)

func (r *PgConversationRepository) Create(ctx context.Context, c messaging.Conversation) error {
	if r == nil || r.pool == nil {
		return errors.New("PgConversationRepository: nil pool")
	}
	doc, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("postgres: encode conversation: %w", err)
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO conversation (id, participant_key, doc, version)
		VALUES ($1::uuid, $2, $3::jsonb, $4)
	`, c.ID, c.ParticipantKey(), doc, c.Version)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return repository.ErrDuplicateParticipants
	}
	if err != nil {
		return fmt.Errorf("postgres: insert conversation: %w", err)
	}
	return nil
}

func (r *PgConversationRepository) Get(ctx context.Context, id string) (*messaging.Conversation, error) {
	return r.findOne(ctx, "SELECT doc, version FROM conversation WHERE id = $1::uuid", id)
}

func (r *PgConversationRepository) FindByParticipants(ctx context.Context, userA, userB string) (*messaging.Conversation, error) {
	return r.findOne(ctx,
		"SELECT doc, version FROM conversation WHERE participant_key = $1",
		messaging.ParticipantKey(userA, userB))
}

func (r *PgConversationRepository) findOne(ctx context.Context, query string, arg any) (*messaging.Conversation, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgConversationRepository: nil pool")
	}
	var (
		doc     []byte
		version int64
	)
	err := r.pool.QueryRow(ctx, query, arg).Scan(&doc, &version)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("postgres: query conversation: %w", err)
	}
	return decodeConversation(doc, version)
}

func (r *PgConversationRepository) ListByParticipant(ctx context.Context, userID string) ([]messaging.Conversation, error) {
	if r == nil || r.pool == nil {
		return nil, errors.New("PgConversationRepository: nil pool")
	}
	rows, err := r.pool.Query(ctx, `
		SELECT doc, version
		FROM conversation
		WHERE doc->'participants' ? $1
		ORDER BY doc->>'created_at'
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("postgres: list conversations: %w", err)
	}
	defer rows.Close()

	var out []messaging.Conversation
	for rows.Next() {
		var (
			doc     []byte
			version int64
		)
		if err := rows.Scan(&doc, &version); err != nil {
			return nil, fmt.Errorf("postgres: scan conversation: %w", err)
		}
		c, err := decodeConversation(doc, version)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	if rows.Err() != nil {
		return nil, fmt.Errorf("postgres: iterate conversations: %w", rows.Err())
	}
	return out, nil
}

func (r *PgConversationRepository) Update(ctx context.Context, c messaging.Conversation) error {
	if r == nil || r.pool == nil {
		return errors.New("PgConversationRepository: nil pool")
	}
	doc, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("postgres: encode conversation: %w", err)
	}
	ct, err := r.pool.Exec(ctx, `
		UPDATE conversation
		SET doc = $3::jsonb, version = version + 1
		WHERE id = $1::uuid AND version = $2
	`, c.ID, c.Version, doc)
	if err != nil {
		return fmt.Errorf("postgres: update conversation: %w", err)
	}
	if ct.RowsAffected() == 0 {
		var exists bool
		if err := r.pool.QueryRow(ctx,
			"SELECT EXISTS (SELECT 1 FROM conversation WHERE id = $1::uuid)", c.ID,
		).Scan(&exists); err != nil {
			return fmt.Errorf("postgres: verify conversation: %w", err)
		}
		if !exists {
			return repository.ErrNotFound
		}
		return repository.ErrVersionConflict
	}
	return nil
}

func decodeConversation(doc []byte, version int64) (*messaging.Conversation, error) {
	var c messaging.Conversation
	if err := json.Unmarshal(doc, &c); err != nil {
		return nil, fmt.Errorf("postgres: decode conversation: %w", err)
	}
	c.Version = version
	return &c, nil
}
