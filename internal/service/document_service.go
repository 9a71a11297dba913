package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"keeps/internal/coverage"
	"keeps/internal/dto"
	"keeps/internal/models"
	"keeps/internal/repository"
	"keeps/pkg/config"
	"keeps/pkg/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultDocType = "policy"

// UploadInput describes one multipart upload.
type UploadInput struct {
	PolicyID    *uuid.UUID
	DocType     string
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

type DocumentService struct {
	docs      DocumentStore
	policies  PolicyStore
	objects   ObjectStore
	extractor TextExtractor
	llm       TextGenerator
	cfg       config.ExtractionConfig
	logger    *zap.Logger
	now       func() time.Time
}

func NewDocumentService(
	docs DocumentStore,
	policies PolicyStore,
	objects ObjectStore,
	extractor TextExtractor,
	llm TextGenerator,
	cfg config.ExtractionConfig,
	logger *zap.Logger,
) *DocumentService {
	return &DocumentService{
		docs:      docs,
		policies:  policies,
		objects:   objects,
		extractor: extractor,
		llm:       llm,
		cfg:       cfg,
		logger:    logger,
		now:       time.Now,
	}
}

// Upload stores the file in object storage and records it. Without a policy id
// a placeholder policy is created for extraction to fill in later.
func (s *DocumentService) Upload(ctx context.Context, userID uuid.UUID, in UploadInput) (*dto.DocumentResponse, error) {
	if in.Size <= 0 {
		return nil, fmt.Errorf("%w: empty file", ErrInvalidInput)
	}
	if s.cfg.MaxUploadBytes > 0 && in.Size > s.cfg.MaxUploadBytes {
		return nil, fmt.Errorf("%w: file exceeds %d bytes", ErrInvalidInput, s.cfg.MaxUploadBytes)
	}

	now := s.now()
	var policyID uuid.UUID
	if in.PolicyID != nil {
		if _, err := s.policies.GetByID(ctx, userID, *in.PolicyID); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return nil, ErrForbidden
			}
			return nil, fmt.Errorf("load policy: %w", err)
		}
		policyID = *in.PolicyID
	} else {
		placeholder := &models.Policy{
			ID:         uuid.New(),
			UserID:     userID,
			PolicyType: "other",
			Carrier:    coverage.PendingExtractionCarrier,
			Status:     models.PolicyStatusActive,
			CreatedAt:  now,
			UpdatedAt:  now,
		}
		if err := s.policies.Create(ctx, placeholder); err != nil {
			return nil, fmt.Errorf("create placeholder policy: %w", err)
		}
		policyID = placeholder.ID
		s.logger.Info("Placeholder policy created for upload", zap.String("policy_id", policyID.String()))
	}

	contentType := in.ContentType
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	docType := strings.TrimSpace(in.DocType)
	if docType == "" {
		docType = defaultDocType
	}

	key := storage.ObjectKey(policyID, in.Filename)
	if err := s.objects.Put(ctx, key, in.Body, in.Size, contentType); err != nil {
		return nil, fmt.Errorf("store document: %w", err)
	}

	doc := &models.Document{
		ID:               uuid.New(),
		UserID:           userID,
		PolicyID:         policyID,
		DocType:          docType,
		Filename:         in.Filename,
		ContentType:      contentType,
		FileSize:         in.Size,
		ObjectKey:        key,
		ExtractionStatus: models.ExtractionUploaded,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.docs.Create(ctx, doc); err != nil {
		if rmErr := s.objects.Remove(ctx, key); rmErr != nil {
			s.logger.Warn("Failed to remove orphaned object", zap.String("key", key), zap.Error(rmErr))
		}
		return nil, fmt.Errorf("create document record: %w", err)
	}

	s.logger.Info("Document uploaded",
		zap.String("document_id", doc.ID.String()),
		zap.String("policy_id", policyID.String()),
		zap.Int64("size", in.Size),
	)
	resp := toDocumentResponse(doc)
	return &resp, nil
}

func (s *DocumentService) List(ctx context.Context, userID uuid.UUID, limit, offset int) ([]dto.DocumentResponse, error) {
	docs, err := s.docs.ListByUserID(ctx, userID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}
	out := make([]dto.DocumentResponse, 0, len(docs))
	for _, d := range docs {
		out = append(out, toDocumentResponse(d))
	}
	return out, nil
}

// Download opens the stored object. The caller closes the reader.
func (s *DocumentService) Download(ctx context.Context, userID, id uuid.UUID) (io.ReadCloser, *dto.DocumentResponse, error) {
	doc, err := s.load(ctx, userID, id)
	if err != nil {
		return nil, nil, err
	}
	body, err := s.objects.Get(ctx, doc.ObjectKey)
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return nil, nil, ErrDocumentNotFound
		}
		return nil, nil, fmt.Errorf("open document: %w", err)
	}
	resp := toDocumentResponse(doc)
	return body, &resp, nil
}

// Extract reads the document text, asks the LLM for structured policy fields
// and merges them into the linked policy.
func (s *DocumentService) Extract(ctx context.Context, userID, id uuid.UUID) (*dto.ExtractDocumentResponse, error) {
	doc, err := s.load(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	policy, err := s.policies.GetByID(ctx, userID, doc.PolicyID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrPolicyNotFound
		}
		return nil, fmt.Errorf("load policy: %w", err)
	}

	if err := s.docs.UpdateExtraction(ctx, doc.ID, models.ExtractionPending, "", ""); err != nil {
		return nil, fmt.Errorf("mark document pending: %w", err)
	}

	text, err := s.extract(ctx, doc, policy)
	if err != nil {
		s.logger.Warn("Document extraction failed",
			zap.String("document_id", doc.ID.String()),
			zap.Error(err),
		)
		if upErr := s.docs.UpdateExtraction(ctx, doc.ID, models.ExtractionFailed, text, err.Error()); upErr != nil {
			s.logger.Error("Failed to record extraction failure", zap.Error(upErr))
		}
		return nil, fmt.Errorf("%w: %v", ErrExtractionFailed, err)
	}

	if err := s.docs.UpdateExtraction(ctx, doc.ID, models.ExtractionExtracted, text, ""); err != nil {
		return nil, fmt.Errorf("mark document extracted: %w", err)
	}
	doc.ExtractionStatus = models.ExtractionExtracted
	doc.ExtractedText = text

	s.logger.Info("Document extracted",
		zap.String("document_id", doc.ID.String()),
		zap.String("policy_id", policy.ID.String()),
		zap.String("policy_type", policy.PolicyType),
	)
	return &dto.ExtractDocumentResponse{
		Document: toDocumentResponse(doc),
		Policy:   toPolicyResponse(policy),
	}, nil
}

// extract runs the read/parse/apply pipeline and returns the text it read so
// a failure can still record it.
func (s *DocumentService) extract(ctx context.Context, doc *models.Document, policy *models.Policy) (string, error) {
	body, err := s.objects.Get(ctx, doc.ObjectKey)
	if err != nil {
		return "", fmt.Errorf("open document: %w", err)
	}
	defer body.Close()

	limit := s.cfg.MaxUploadBytes
	if limit <= 0 {
		limit = doc.FileSize
	}
	data, err := io.ReadAll(io.LimitReader(body, limit+1))
	if err != nil {
		return "", fmt.Errorf("read document: %w", err)
	}
	if int64(len(data)) > limit {
		return "", fmt.Errorf("document exceeds %d bytes", limit)
	}

	text, err := s.extractor.ExtractText(data, doc.ContentType)
	if err != nil {
		return "", err
	}
	text = truncateRunes(text, s.cfg.MaxTextChars)
	if strings.TrimSpace(text) == "" {
		return "", errors.New("document contains no text")
	}

	raw, err := s.llm.Generate(ctx, extractionSystemPrompt, "Policy document text:\n\n"+text)
	if err != nil {
		return text, err
	}
	result, err := parseExtraction(raw)
	if err != nil {
		return text, err
	}

	now := s.now()
	details, contacts := applyExtraction(policy, result, now)
	if err := s.policies.Update(ctx, policy); err != nil {
		return text, fmt.Errorf("update policy: %w", err)
	}
	for i := range details {
		if err := s.policies.AddDetail(ctx, &details[i]); err != nil {
			return text, fmt.Errorf("add detail: %w", err)
		}
	}
	for i := range contacts {
		if err := s.policies.AddContact(ctx, &contacts[i]); err != nil {
			return text, fmt.Errorf("add contact: %w", err)
		}
	}
	policy.Details = append(policy.Details, details...)
	policy.Contacts = append(policy.Contacts, contacts...)
	return text, nil
}

func (s *DocumentService) load(ctx context.Context, userID, id uuid.UUID) (*models.Document, error) {
	doc, err := s.docs.GetByID(ctx, userID, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrDocumentNotFound
		}
		return nil, fmt.Errorf("load document: %w", err)
	}
	return doc, nil
}
