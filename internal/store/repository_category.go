package store

import (
	"context"
	"database/sql"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/go-pass-vault/internal/logger"
	"github.com/MKhiriev/go-pass-vault/models"
)

// categoryRepository is the PostgreSQL-backed implementation of
// [CategoryRepository].
type categoryRepository struct {
	logger  *logger.Logger
	db      *DB
	builder sq.StatementBuilderType
}

// NewCategoryRepository constructs a [CategoryRepository] backed by the
// provided database connection and logger.
func NewCategoryRepository(db *DB, logger *logger.Logger) CategoryRepository {
	logger.Debug().Msg("creating category repository")
	return &categoryRepository{
		db:      db,
		logger:  logger,
		builder: sq.StatementBuilder.PlaceholderFormat(sq.Dollar),
	}
}

func (r *categoryRepository) Save(ctx context.Context, category models.Category) (models.Category, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Insert(category.TableName()).
		Columns("user_id", "name", "color").
		Values(category.UserID, category.Name, sql.NullString{String: category.Color, Valid: category.Color != ""}).
		Suffix("RETURNING category_id, user_id, name, color").
		ToSql()
	if err != nil {
		return models.Category{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var color sql.NullString
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Scan(&category.CategoryID, &category.UserID, &category.Name, &color); err != nil {
		log.Err(err).Str("func", "*categoryRepository.Save").Int64("user_id", category.UserID).Msg("error: category insert failed")
		return models.Category{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	category.Color = color.String

	return category, nil
}

func (r *categoryRepository) GetAll(ctx context.Context, userID int64) ([]models.Category, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Select("category_id", "user_id", "name", "color").
		From(models.Category{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*categoryRepository.GetAll").Int64("user_id", userID).Msg("error: category select failed")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var category models.Category
		var color sql.NullString
		if err := rows.Scan(&category.CategoryID, &category.UserID, &category.Name, &color); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		category.Color = color.String
		categories = append(categories, category)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return categories, nil
}

func (r *categoryRepository) Delete(ctx context.Context, id, userID int64) error {
	log := logger.FromContext(ctx)

	query, args, err := r.builder.
		Delete(models.Category{}.TableName()).
		Where(sq.Eq{"category_id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*categoryRepository.Delete").Int64("user_id", userID).Msg("error: category delete failed")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return nil
}
