package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

var credentialColumns = []string{
	"password_id", "user_id", "website", "username",
	"encrypted_password", "category", "strength", "created_at", "updated_at",
}

// credentialRepository is the PostgreSQL-backed implementation of
// [CredentialRepository]. Queries are built with squirrel; every statement
// carries a user_id predicate, which is the authorization boundary of the
// whole storage layer.
type credentialRepository struct {
	logger  *logger.Logger
	db      *DB
	builder sq.StatementBuilderType
}

// NewCredentialRepository constructs a [CredentialRepository] backed by the
// provided database connection and logger.
func NewCredentialRepository(db *DB, logger *logger.Logger) CredentialRepository {
	logger.Debug().Msg("creating credential repository")
	return &credentialRepository{
		db:      db,
		logger:  logger,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

// Save persists a new sealed credential record and returns it with
// server-assigned fields. The encrypted_password column only ever receives
// blobs produced by the envelope cipher; the repository treats it as an
// opaque string.
func (r *credentialRepository) Save(ctx context.Context, credential models.Credential) (models.Credential, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Insert(credential.TableName()).
		Columns("user_id", "website", "username", "encrypted_password", "category", "strength").
		Values(credential.UserID, credential.Website, credential.Username,
			credential.EncryptedPassword, nullCategory(credential.Category), nullStrength(credential.Strength)).
		Suffix("RETURNING " + credentialReturning()).
		ToSql()
	if err != nil {
		return models.Credential{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	saved, err := scanCredential(row)
	if err != nil {
		log.Err(err).Str("func", "*credentialRepository.Save").Int64("user_id", credential.UserID).Msg("error: credential insert failed")
		return models.Credential{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return saved, nil
}

// GetAll returns all credential records owned by userID in storage order.
func (r *credentialRepository) GetAll(ctx context.Context, userID int64) ([]models.Credential, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select(credentialColumns...).
		From(models.Credential{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*credentialRepository.GetAll").Int64("user_id", userID).Msg("error: credential select failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var credentials []models.Credential
	for rows.Next() {
		credential, err := scanCredential(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		credentials = append(credentials, credential)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return credentials, nil
}

// GetByID returns the record with the given id if owned by userID.
// A record that does not exist and a record owned by someone else both
// produce [ErrCredentialNotFound].
func (r *credentialRepository) GetByID(ctx context.Context, id, userID int64) (models.Credential, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select(credentialColumns...).
		From(models.Credential{}.TableName()).
		Where(sq.Eq{"password_id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return models.Credential{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	credential, err := scanCredential(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Credential{}, ErrCredentialNotFound
		}

		log.Err(err).Str("func", "*credentialRepository.GetByID").Int64("user_id", userID).Msg("error: credential lookup failed")
		return models.Credential{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return credential, nil
}

// Update rewrites the mutable fields of the record owned by
// credential.UserID and refreshes updated_at. The ownership predicate rides
// in the WHERE clause, so a foreign record behaves exactly like an absent one.
func (r *credentialRepository) Update(ctx context.Context, credential models.Credential) (models.Credential, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Update(credential.TableName()).
		Set("website", credential.Website).
		Set("username", credential.Username).
		Set("encrypted_password", credential.EncryptedPassword).
		Set("category", nullCategory(credential.Category)).
		Set("strength", nullStrength(credential.Strength)).
		Set("updated_at", sq.Expr("NOW()")).
		Where(sq.Eq{"password_id": credential.CredentialID, "user_id": credential.UserID}).
		Suffix("RETURNING " + credentialReturning()).
		ToSql()
	if err != nil {
		return models.Credential{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	updated, err := scanCredential(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Credential{}, ErrCredentialNotFound
		}

		log.Err(err).Str("func", "*credentialRepository.Update").Int64("user_id", credential.UserID).Msg("error: credential update failed")
		return models.Credential{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return updated, nil
}

// Delete removes the record if owned by userID. Zero affected rows (absent
// or foreign record) is not an error: delete is idempotent.
func (r *credentialRepository) Delete(ctx context.Context, id, userID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Delete(models.Credential{}.TableName()).
		Where(sq.Eq{"password_id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*credentialRepository.Delete").Int64("user_id", userID).Msg("error: credential delete failed")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}

// rowScanner covers *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanCredential(row rowScanner) (models.Credential, error) {
	var credential models.Credential
	var category sql.NullString
	var strength sql.NullInt64

	err := row.Scan(
		&credential.CredentialID, &credential.UserID, &credential.Website, &credential.Username,
		&credential.EncryptedPassword, &category, &strength,
		&credential.CreatedAt, &credential.UpdatedAt,
	)
	if err != nil {
		return models.Credential{}, err
	}

	credential.Category = category.String
	if strength.Valid {
		score := int(strength.Int64)
		credential.Strength = &score
	}

	return credential, nil
}

func credentialReturning() string {
	return "password_id, user_id, website, username, encrypted_password, category, strength, created_at, updated_at"
}

func nullCategory(category string) sql.NullString {
	return sql.NullString{String: category, Valid: category != ""}
}

func nullStrength(strength *int) sql.NullInt64 {
	if strength == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*strength), Valid: true}
}
