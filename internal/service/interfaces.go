package service

import (
	"context"
	"io"
	"time"

	"keeps/internal/models"
	"keeps/internal/repository"

	"github.com/google/uuid"
)

// Storage contracts. The pgx repositories implement them in production;
// tests use in-memory fakes.

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

type PolicyStore interface {
	Create(ctx context.Context, p *models.Policy) error
	Update(ctx context.Context, p *models.Policy) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Policy, error)
	List(ctx context.Context, userID uuid.UUID, filter repository.PolicyFilter) ([]*models.Policy, error)
	UpcomingRenewals(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*models.Policy, error)
	AddDetail(ctx context.Context, d *models.PolicyDetail) error
	DeleteDetail(ctx context.Context, policyID, detailID uuid.UUID) error
	AddContact(ctx context.Context, c *models.PolicyContact) error
	DeleteContact(ctx context.Context, policyID, contactID uuid.UUID) error
}

type ClaimStore interface {
	Create(ctx context.Context, c *models.Claim) error
	Update(ctx context.Context, c *models.Claim) error
	Delete(ctx context.Context, policyID, id uuid.UUID) error
	GetByID(ctx context.Context, policyID, id uuid.UUID) (*models.Claim, error)
	ListByPolicy(ctx context.Context, policyID uuid.UUID) ([]*models.Claim, error)
}

type PremiumStore interface {
	Create(ctx context.Context, p *models.Premium) error
	Update(ctx context.Context, p *models.Premium) error
	Delete(ctx context.Context, policyID, id uuid.UUID) error
	GetByID(ctx context.Context, policyID, id uuid.UUID) (*models.Premium, error)
	ListByPolicy(ctx context.Context, policyID uuid.UUID) ([]*models.Premium, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Premium, error)
}

type ProfileStore interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*models.UserProfile, error)
	Upsert(ctx context.Context, p *models.UserProfile) error
}

type DocumentStore interface {
	Create(ctx context.Context, doc *models.Document) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Document, error)
	UpdateExtraction(ctx context.Context, id uuid.UUID, status models.ExtractionStatus, text, extractionErr string) error
	ListByUserID(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*models.Document, error)
}

type ObjectStore interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	Remove(ctx context.Context, key string) error
}

// TextGenerator answers a prompt under a system instruction.
type TextGenerator interface {
	Generate(ctx context.Context, systemInstruction, prompt string) (string, error)
}

// TextExtractor pulls plain text out of an uploaded file.
type TextExtractor interface {
	ExtractText(data []byte, contentType string) (string, error)
}
