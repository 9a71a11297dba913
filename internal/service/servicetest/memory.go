// Package servicetest provides in-memory implementations of the service
// storage and LLM contracts for tests.
package servicetest

import (
	"bytes"
	"context"
	"io"
	"sort"
	"sync"
	"time"

	"keeps/internal/models"
	"keeps/internal/repository"
	"keeps/pkg/storage"

	"github.com/google/uuid"
)

type Users struct {
	mu    sync.Mutex
	users map[uuid.UUID]*models.User
}

func NewUsers() *Users {
	return &Users{users: make(map[uuid.UUID]*models.User)}
}

func (s *Users) Create(_ context.Context, user *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u := *user
	s.users[user.ID] = &u
	return nil
}

func (s *Users) GetByEmail(_ context.Context, email string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			c := *u
			return &c, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *Users) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	c := *u
	return &c, nil
}

// Policies keeps policies with their details and contacts. Reads return copies.
type Policies struct {
	mu       sync.Mutex
	policies map[uuid.UUID]*models.Policy
	order    []uuid.UUID
}

func NewPolicies() *Policies {
	return &Policies{policies: make(map[uuid.UUID]*models.Policy)}
}

func (s *Policies) Create(_ context.Context, p *models.Policy) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.policies[p.ID] = clonePolicy(p)
	s.order = append(s.order, p.ID)
	return nil
}

func (s *Policies) Update(_ context.Context, p *models.Policy) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.policies[p.ID]
	if !ok || cur.UserID != p.UserID {
		return repository.ErrNotFound
	}
	next := clonePolicy(p)
	next.Details = cur.Details
	next.Contacts = cur.Contacts
	s.policies[p.ID] = next
	return nil
}

func (s *Policies) Delete(_ context.Context, userID, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.policies[id]
	if !ok || cur.UserID != userID {
		return repository.ErrNotFound
	}
	delete(s.policies, id)
	return nil
}

func (s *Policies) GetByID(_ context.Context, userID, id uuid.UUID) (*models.Policy, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.policies[id]
	if !ok || p.UserID != userID {
		return nil, repository.ErrNotFound
	}
	return clonePolicy(p), nil
}

func (s *Policies) List(_ context.Context, userID uuid.UUID, filter repository.PolicyFilter) ([]*models.Policy, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*models.Policy
	for _, id := range s.order {
		p, ok := s.policies[id]
		if !ok || p.UserID != userID {
			continue
		}
		if filter.Status != "" && p.Status != filter.Status {
			continue
		}
		if filter.BusinessName != "" && p.BusinessName != filter.BusinessName {
			continue
		}
		out = append(out, clonePolicy(p))
	}
	return out, nil
}

func (s *Policies) UpcomingRenewals(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]*models.Policy, error) {
	all, _ := s.List(ctx, userID, repository.PolicyFilter{})
	var out []*models.Policy
	for _, p := range all {
		if p.RenewalDate == nil || p.RenewalDate.Before(from) || p.RenewalDate.After(to) {
			continue
		}
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].RenewalDate.Before(*out[j].RenewalDate)
	})
	return out, nil
}

func (s *Policies) AddDetail(_ context.Context, d *models.PolicyDetail) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.policies[d.PolicyID]
	if !ok {
		return repository.ErrNotFound
	}
	p.Details = append(p.Details, *d)
	return nil
}

func (s *Policies) DeleteDetail(_ context.Context, policyID, detailID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.policies[policyID]
	if !ok {
		return repository.ErrNotFound
	}
	for i, d := range p.Details {
		if d.ID == detailID {
			p.Details = append(p.Details[:i], p.Details[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (s *Policies) AddContact(_ context.Context, c *models.PolicyContact) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.policies[c.PolicyID]
	if !ok {
		return repository.ErrNotFound
	}
	p.Contacts = append(p.Contacts, *c)
	return nil
}

func (s *Policies) DeleteContact(_ context.Context, policyID, contactID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.policies[policyID]
	if !ok {
		return repository.ErrNotFound
	}
	for i, c := range p.Contacts {
		if c.ID == contactID {
			p.Contacts = append(p.Contacts[:i], p.Contacts[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

func clonePolicy(p *models.Policy) *models.Policy {
	c := *p
	c.Details = append([]models.PolicyDetail(nil), p.Details...)
	c.Contacts = append([]models.PolicyContact(nil), p.Contacts...)
	return &c
}

// Claims keeps claims keyed by id.
type Claims struct {
	mu     sync.Mutex
	claims map[uuid.UUID]*models.Claim
}

func NewClaims() *Claims {
	return &Claims{claims: make(map[uuid.UUID]*models.Claim)}
}

func (s *Claims) Create(_ context.Context, c *models.Claim) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *c
	s.claims[c.ID] = &cp
	return nil
}

func (s *Claims) Update(_ context.Context, c *models.Claim) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.claims[c.ID]
	if !ok || cur.PolicyID != c.PolicyID {
		return repository.ErrNotFound
	}
	cp := *c
	s.claims[c.ID] = &cp
	return nil
}

func (s *Claims) Delete(_ context.Context, policyID, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.claims[id]
	if !ok || cur.PolicyID != policyID {
		return repository.ErrNotFound
	}
	delete(s.claims, id)
	return nil
}

func (s *Claims) GetByID(_ context.Context, policyID, id uuid.UUID) (*models.Claim, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.claims[id]
	if !ok || c.PolicyID != policyID {
		return nil, repository.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (s *Claims) ListByPolicy(_ context.Context, policyID uuid.UUID) ([]*models.Claim, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*models.Claim
	for _, c := range s.claims {
		if c.PolicyID == policyID {
			cp := *c
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DateFiled.After(out[j].DateFiled) })
	return out, nil
}

// Premiums keeps premium payments. ListByUser resolves ownership through the
// policies fake it was built with.
type Premiums struct {
	mu       sync.Mutex
	premiums map[uuid.UUID]*models.Premium
	policies *Policies
}

func NewPremiums(policies *Policies) *Premiums {
	return &Premiums{premiums: make(map[uuid.UUID]*models.Premium), policies: policies}
}

func (s *Premiums) Create(_ context.Context, p *models.Premium) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cp := *p
	s.premiums[p.ID] = &cp
	return nil
}

func (s *Premiums) Update(_ context.Context, p *models.Premium) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.premiums[p.ID]
	if !ok || cur.PolicyID != p.PolicyID {
		return repository.ErrNotFound
	}
	cp := *p
	s.premiums[p.ID] = &cp
	return nil
}

func (s *Premiums) Delete(_ context.Context, policyID, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cur, ok := s.premiums[id]
	if !ok || cur.PolicyID != policyID {
		return repository.ErrNotFound
	}
	delete(s.premiums, id)
	return nil
}

func (s *Premiums) GetByID(_ context.Context, policyID, id uuid.UUID) (*models.Premium, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.premiums[id]
	if !ok || p.PolicyID != policyID {
		return nil, repository.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (s *Premiums) ListByPolicy(_ context.Context, policyID uuid.UUID) ([]*models.Premium, error) {
	return s.filter(func(p *models.Premium) bool { return p.PolicyID == policyID }), nil
}

func (s *Premiums) ListByUser(ctx context.Context, userID uuid.UUID) ([]*models.Premium, error) {
	owned := make(map[uuid.UUID]bool)
	policies, _ := s.policies.List(ctx, userID, repository.PolicyFilter{})
	for _, p := range policies {
		owned[p.ID] = true
	}
	return s.filter(func(p *models.Premium) bool { return owned[p.PolicyID] }), nil
}

func (s *Premiums) filter(keep func(*models.Premium) bool) []*models.Premium {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*models.Premium
	for _, p := range s.premiums {
		if keep(p) {
			cp := *p
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DueDate.After(out[j].DueDate) })
	return out
}

type Profiles struct {
	mu       sync.Mutex
	profiles map[uuid.UUID]*models.UserProfile
}

func NewProfiles() *Profiles {
	return &Profiles{profiles: make(map[uuid.UUID]*models.UserProfile)}
}

func (s *Profiles) GetByUserID(_ context.Context, userID uuid.UUID) (*models.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.profiles[userID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	c := *p
	return &c, nil
}

func (s *Profiles) Upsert(_ context.Context, p *models.UserProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := *p
	s.profiles[p.UserID] = &c
	return nil
}

type Documents struct {
	mu   sync.Mutex
	docs map[uuid.UUID]*models.Document
}

func NewDocuments() *Documents {
	return &Documents{docs: make(map[uuid.UUID]*models.Document)}
}

func (s *Documents) Create(_ context.Context, doc *models.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := *doc
	s.docs[doc.ID] = &c
	return nil
}

func (s *Documents) GetByID(_ context.Context, userID, id uuid.UUID) (*models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.docs[id]
	if !ok || d.UserID != userID {
		return nil, repository.ErrNotFound
	}
	c := *d
	return &c, nil
}

func (s *Documents) UpdateExtraction(_ context.Context, id uuid.UUID, status models.ExtractionStatus, text, extractionErr string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.docs[id]
	if !ok {
		return repository.ErrNotFound
	}
	d.ExtractionStatus = status
	d.ExtractedText = text
	d.ExtractionError = extractionErr
	return nil
}

func (s *Documents) ListByUserID(_ context.Context, userID uuid.UUID, limit, offset int) ([]*models.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []*models.Document
	for _, d := range s.docs {
		if d.UserID == userID {
			c := *d
			out = append(out, &c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit > 0 && limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

// Objects is an in-memory object store keyed like the MinIO bucket.
type Objects struct {
	mu      sync.Mutex
	Objects map[string][]byte
}

func NewObjects() *Objects {
	return &Objects{Objects: make(map[string][]byte)}
}

func (s *Objects) Put(_ context.Context, key string, r io.Reader, _ int64, _ string) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.Objects[key] = data
	return nil
}

func (s *Objects) Get(_ context.Context, key string) (io.ReadCloser, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.Objects[key]
	if !ok {
		return nil, storage.ErrObjectNotFound
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

func (s *Objects) Remove(_ context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.Objects, key)
	return nil
}

// LLM returns a canned reply and records what it was asked.
type LLM struct {
	Reply string
	Err   error

	SystemInstructions []string
	Prompts            []string
}

func (l *LLM) Generate(_ context.Context, systemInstruction, prompt string) (string, error) {
	l.SystemInstructions = append(l.SystemInstructions, systemInstruction)
	l.Prompts = append(l.Prompts, prompt)
	return l.Reply, l.Err
}

// PlainText treats every upload as UTF-8 text.
type PlainText struct{}

func (PlainText) ExtractText(data []byte, _ string) (string, error) {
	return string(data), nil
}
