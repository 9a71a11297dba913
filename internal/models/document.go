package models

import (
	"time"

	"github.com/google/uuid"
)

type ExtractionStatus string

const (
	ExtractionUploaded  ExtractionStatus = "uploaded"
	ExtractionPending   ExtractionStatus = "pending"
	ExtractionExtracted ExtractionStatus = "extracted"
	ExtractionFailed    ExtractionStatus = "failed"
)

type Document struct {
	ID               uuid.UUID        `db:"id"`
	UserID           uuid.UUID        `db:"user_id"`
	PolicyID         uuid.UUID        `db:"policy_id"`
	DocType          string           `db:"doc_type"`
	Filename         string           `db:"filename"`
	ContentType      string           `db:"content_type"`
	FileSize         int64            `db:"file_size"`
	ObjectKey        string           `db:"object_key"`
	ExtractionStatus ExtractionStatus `db:"extraction_status"`
	ExtractedText    string           `db:"extracted_text"`
	ExtractionError  string           `db:"extraction_error"`
	CreatedAt        time.Time        `db:"created_at"`
	UpdatedAt        time.Time        `db:"updated_at"`
}
