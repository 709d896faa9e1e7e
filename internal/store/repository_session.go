package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

// sessionRepository is the PostgreSQL-backed implementation of
// [SessionRepository]. Sessions are created and deleted, never updated:
// the carried key material is fixed for the lifetime of the session.
type sessionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSessionRepository constructs a [SessionRepository] backed by the
// provided database connection and logger.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

// CreateSession persists a new session row and returns it with
// server-assigned fields (SessionID, CreatedAt).
func (r *sessionRepository) CreateSession(ctx context.Context, session models.Session) (models.Session, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createSession, session.UserID, session.Token, session.EncryptionKey, session.ExpiresAt)

	if err := row.Scan(&session.SessionID, &session.UserID, &session.Token, &session.EncryptionKey, &session.ExpiresAt, &session.CreatedAt); err != nil {
		// token is logged nowhere: it authenticates the session on its own
		log.Err(err).Str("func", "*sessionRepository.CreateSession").Int64("user_id", session.UserID).Msg("error: session insert failed")
		return models.Session{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return session, nil
}

// FindLiveSession retrieves the session matching token with expires_at after
// now. Expiry is enforced here, in the query, so callers never observe an
// expired session — the row simply stops matching.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrSessionNotFound] (unknown token and expired
//     session are indistinguishable).
func (r *sessionRepository) FindLiveSession(ctx context.Context, token string, now time.Time) (models.Session, error) {
	log := logger.FromContext(ctx)

	var session models.Session
	row := r.db.QueryRowContext(ctx, findLiveSession, token, now)

	if err := row.Scan(&session.SessionID, &session.UserID, &session.Token, &session.EncryptionKey, &session.ExpiresAt, &session.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Session{}, ErrSessionNotFound
		}

		log.Err(err).Str("func", "*sessionRepository.FindLiveSession").Msg("error: session lookup failed")
		return models.Session{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return session, nil
}

// DeleteSession removes the session row holding the given token. The delete
// is idempotent: an unknown token affects zero rows and returns nil.
func (r *sessionRepository) DeleteSession(ctx context.Context, token string) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, deleteSession, token); err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteSession").Msg("error: session delete failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}
