package service

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"keeps/internal/coverage"
	"keeps/internal/models"
	"keeps/internal/repository"
	"keeps/internal/service/servicetest"
	"keeps/pkg/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type documentFixture struct {
	svc      *DocumentService
	docs     *servicetest.Documents
	policies *servicetest.Policies
	objects  *servicetest.Objects
	llm      *servicetest.LLM
}

func newDocumentFixture() *documentFixture {
	f := &documentFixture{
		docs:     servicetest.NewDocuments(),
		policies: servicetest.NewPolicies(),
		objects:  servicetest.NewObjects(),
		llm:      &servicetest.LLM{},
	}
	f.svc = NewDocumentService(f.docs, f.policies, f.objects, servicetest.PlainText{}, f.llm,
		config.ExtractionConfig{MaxUploadBytes: 1 << 10, MaxTextChars: 5000}, zap.NewNop())
	f.svc.now = func() time.Time { return time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC) }
	return f
}

func upload(body string) UploadInput {
	return UploadInput{
		Filename:    "declarations.txt",
		ContentType: "text/plain",
		Size:        int64(len(body)),
		Body:        strings.NewReader(body),
	}
}

func TestDocumentService_UploadCreatesPlaceholderPolicy(t *testing.T) {
	f := newDocumentFixture()
	ctx := context.Background()
	userID := uuid.New()

	doc, err := f.svc.Upload(ctx, userID, upload("policy text"))
	require.NoError(t, err)

	assert.Equal(t, string(models.ExtractionUploaded), doc.ExtractionStatus)
	assert.Equal(t, defaultDocType, doc.DocType)
	assert.Equal(t, int64(len("policy text")), doc.FileSize)

	policyID := uuid.MustParse(doc.PolicyID)
	p, err := f.policies.GetByID(ctx, userID, policyID)
	require.NoError(t, err)
	assert.Equal(t, "other", p.PolicyType)
	assert.Equal(t, coverage.PendingExtractionCarrier, p.Carrier)

	require.Len(t, f.objects.Objects, 1)
	for key, data := range f.objects.Objects {
		assert.True(t, strings.HasPrefix(key, "policies/"+policyID.String()+"/"))
		assert.True(t, strings.HasSuffix(key, "-declarations.txt"))
		assert.Equal(t, "policy text", string(data))
	}
}

func TestDocumentService_UploadToExistingPolicy(t *testing.T) {
	f := newDocumentFixture()
	ctx := context.Background()
	userID := uuid.New()
	p := &models.Policy{ID: uuid.New(), UserID: userID, PolicyType: "home", Status: models.PolicyStatusActive}
	require.NoError(t, f.policies.Create(ctx, p))

	in := upload("declarations")
	in.PolicyID = &p.ID
	in.DocType = "declarations"
	doc, err := f.svc.Upload(ctx, userID, in)
	require.NoError(t, err)
	assert.Equal(t, p.ID.String(), doc.PolicyID)
	assert.Equal(t, "declarations", doc.DocType)

	all, err := f.policies.List(ctx, userID, repository.PolicyFilter{})
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestDocumentService_UploadRejects(t *testing.T) {
	f := newDocumentFixture()
	ctx := context.Background()

	other := &models.Policy{ID: uuid.New(), UserID: uuid.New(), PolicyType: "auto"}
	require.NoError(t, f.policies.Create(ctx, other))

	in := upload("text")
	in.PolicyID = &other.ID
	_, err := f.svc.Upload(ctx, uuid.New(), in)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = f.svc.Upload(ctx, uuid.New(), upload(strings.Repeat("x", 2048)))
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = f.svc.Upload(ctx, uuid.New(), upload(""))
	assert.ErrorIs(t, err, ErrInvalidInput)

	assert.Empty(t, f.objects.Objects)
}

func TestDocumentService_DownloadAndList(t *testing.T) {
	f := newDocumentFixture()
	ctx := context.Background()
	userID := uuid.New()

	doc, err := f.svc.Upload(ctx, userID, upload("policy text"))
	require.NoError(t, err)
	id := uuid.MustParse(doc.ID)

	body, meta, err := f.svc.Download(ctx, userID, id)
	require.NoError(t, err)
	defer body.Close()
	data, err := io.ReadAll(body)
	require.NoError(t, err)
	assert.Equal(t, "policy text", string(data))
	assert.Equal(t, "declarations.txt", meta.Filename)

	_, _, err = f.svc.Download(ctx, uuid.New(), id)
	assert.ErrorIs(t, err, ErrDocumentNotFound)

	list, err := f.svc.List(ctx, userID, 50, 0)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, doc.ID, list[0].ID)
}

func TestDocumentService_Extract(t *testing.T) {
	f := newDocumentFixture()
	ctx := context.Background()
	userID := uuid.New()

	doc, err := f.svc.Upload(ctx, userID, upload("GEICO auto policy GA-77 limit 300,000"))
	require.NoError(t, err)

	f.llm.Reply = "```json\n" + `{
  "carrier": "GEICO",
  "policy_number": "GA-77",
  "policy_type": "auto",
  "coverage_amount": 300000,
  "premium_amount": "1,450",
  "renewal_date": "2027-04-01",
  "contacts": [{"role": "claims", "phone": "800-841-3000"}],
  "exclusions": [{"description": "Rideshare use"}]
}` + "\n```"

	resp, err := f.svc.Extract(ctx, userID, uuid.MustParse(doc.ID))
	require.NoError(t, err)

	assert.Equal(t, string(models.ExtractionExtracted), resp.Document.ExtractionStatus)
	assert.Equal(t, "GEICO", resp.Policy.Carrier)
	assert.Equal(t, "auto", resp.Policy.PolicyType)
	assert.Equal(t, "GA-77", resp.Policy.PolicyNumber)
	require.NotNil(t, resp.Policy.PremiumAmount)
	assert.Equal(t, int64(1450), *resp.Policy.PremiumAmount)
	require.Len(t, resp.Policy.Contacts, 1)
	require.Len(t, resp.Policy.Details, 1)
	assert.Equal(t, "exclusion", resp.Policy.Details[0].FieldName)

	require.Len(t, f.llm.Prompts, 1)
	assert.Contains(t, f.llm.Prompts[0], "GEICO auto policy GA-77")
	assert.Equal(t, extractionSystemPrompt, f.llm.SystemInstructions[0])

	stored, err := f.policies.GetByID(ctx, userID, uuid.MustParse(resp.Policy.ID))
	require.NoError(t, err)
	assert.Equal(t, "GEICO", stored.Carrier)
	assert.Len(t, stored.Contacts, 1)
	assert.Len(t, stored.Details, 1)

	storedDoc, err := f.docs.GetByID(ctx, userID, uuid.MustParse(doc.ID))
	require.NoError(t, err)
	assert.Equal(t, models.ExtractionExtracted, storedDoc.ExtractionStatus)
	assert.Contains(t, storedDoc.ExtractedText, "GA-77")
}

func TestDocumentService_ExtractFailure(t *testing.T) {
	f := newDocumentFixture()
	ctx := context.Background()
	userID := uuid.New()

	doc, err := f.svc.Upload(ctx, userID, upload("some policy"))
	require.NoError(t, err)
	id := uuid.MustParse(doc.ID)

	f.llm.Err = errors.New("upstream unavailable")
	_, err = f.svc.Extract(ctx, userID, id)
	assert.ErrorIs(t, err, ErrExtractionFailed)

	stored, err := f.docs.GetByID(ctx, userID, id)
	require.NoError(t, err)
	assert.Equal(t, models.ExtractionFailed, stored.ExtractionStatus)
	assert.Contains(t, stored.ExtractionError, "upstream unavailable")

	f.llm.Err = nil
	f.llm.Reply = "Sorry, I cannot help with that."
	_, err = f.svc.Extract(ctx, userID, id)
	assert.ErrorIs(t, err, ErrExtractionFailed)

	_, err = f.svc.Extract(ctx, userID, uuid.New())
	assert.ErrorIs(t, err, ErrDocumentNotFound)
}

func TestDocumentService_ExtractRejectsOversizedObject(t *testing.T) {
	f := newDocumentFixture()
	ctx := context.Background()
	userID := uuid.New()

	doc, err := f.svc.Upload(ctx, userID, upload("small policy"))
	require.NoError(t, err)
	id := uuid.MustParse(doc.ID)

	stored, err := f.docs.GetByID(ctx, userID, id)
	require.NoError(t, err)
	f.objects.Objects[stored.ObjectKey] = []byte(strings.Repeat("x", 1<<10+1))

	_, err = f.svc.Extract(ctx, userID, id)
	assert.ErrorIs(t, err, ErrExtractionFailed)
	assert.Contains(t, err.Error(), "document exceeds 1024 bytes")

	stored, err = f.docs.GetByID(ctx, userID, id)
	require.NoError(t, err)
	assert.Equal(t, models.ExtractionFailed, stored.ExtractionStatus)
	assert.Empty(t, f.llm.Prompts)
}
