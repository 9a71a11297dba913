package repository

import (
	"context"
	"fmt"

	"keeps/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

var documentColumns = []string{
	"id", "user_id", "policy_id", "doc_type", "filename", "content_type", "file_size", "object_key",
	"extraction_status", "extracted_text", "extraction_error", "created_at", "updated_at",
}

type DocumentRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewDocumentRepository(db *pgxpool.Pool, logger *zap.Logger) *DocumentRepository {
	return &DocumentRepository{
		db:     db,
		logger: logger,
	}
}

func (r *DocumentRepository) Create(ctx context.Context, doc *models.Document) error {
	sql, args, err := psql.Insert("documents").
		Columns(documentColumns...).
		Values(doc.ID, doc.UserID, doc.PolicyID, doc.DocType, doc.Filename, doc.ContentType, doc.FileSize, doc.ObjectKey,
			doc.ExtractionStatus, doc.ExtractedText, doc.ExtractionError, doc.CreatedAt, doc.UpdatedAt).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := r.db.Exec(ctx, sql, args...); err != nil {
		return fmt.Errorf("insert document: %w", err)
	}
	return nil
}

// GetByID loads a document owned by userID.
func (r *DocumentRepository) GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Document, error) {
	sql, args, err := psql.Select(documentColumns...).
		From("documents").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var doc models.Document
	if err := scanDocument(r.db.QueryRow(ctx, sql, args...), &doc); err != nil {
		return nil, notFound(err)
	}
	return &doc, nil
}

// UpdateExtraction records the outcome of an extraction attempt.
func (r *DocumentRepository) UpdateExtraction(ctx context.Context, id uuid.UUID, status models.ExtractionStatus, text, extractionErr string) error {
	sql, args, err := psql.Update("documents").
		Set("extraction_status", status).
		Set("extracted_text", text).
		Set("extraction_error", extractionErr).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return err
	}

	tag, err := r.db.Exec(ctx, sql, args...)
	if err != nil {
		return fmt.Errorf("update document extraction: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *DocumentRepository) ListByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*models.Document, error) {
	sql, args, err := psql.Select(documentColumns...).
		From("documents").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("created_at DESC").
		Limit(uint64(limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("query documents: %w", err)
	}
	defer rows.Close()

	documents := make([]*models.Document, 0)
	for rows.Next() {
		var doc models.Document
		if err := scanDocument(rows, &doc); err != nil {
			return nil, err
		}
		documents = append(documents, &doc)
	}
	return documents, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(row rowScanner, doc *models.Document) error {
	return row.Scan(
		&doc.ID, &doc.UserID, &doc.PolicyID, &doc.DocType, &doc.Filename, &doc.ContentType, &doc.FileSize, &doc.ObjectKey,
		&doc.ExtractionStatus, &doc.ExtractedText, &doc.ExtractionError, &doc.CreatedAt, &doc.UpdatedAt,
	)
}
