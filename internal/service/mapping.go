package service

import (
	"fmt"
	"strings"
	"time"

	"keeps/internal/coverage"
	"keeps/internal/dto"
	"keeps/internal/models"
)

const (
	dateLayout      = "2006-01-02"
	timestampLayout = "2006-01-02T15:04:05"
)

// CoveragePolicy reshapes a stored policy into the engine's input record.
func CoveragePolicy(p *models.Policy) coverage.Policy {
	cp := coverage.Policy{
		ID:             p.ID.String(),
		PolicyType:     p.PolicyType,
		CoverageAmount: p.CoverageAmount,
		PremiumAmount:  p.PremiumAmount,
		Carrier:        p.Carrier,
		Notes:          p.Notes,
		Details:        make([]coverage.Detail, 0, len(p.Details)),
		Contacts:       make([]coverage.Contact, 0, len(p.Contacts)),
	}
	if p.RenewalDate != nil {
		cp.RenewalDate = p.RenewalDate.Format(dateLayout)
	}
	if !p.CreatedAt.IsZero() {
		cp.CreatedAt = p.CreatedAt.Format(timestampLayout)
	}
	for _, d := range p.Details {
		cp.Details = append(cp.Details, coverage.Detail{FieldName: d.FieldName, FieldValue: d.FieldValue})
	}
	for _, c := range p.Contacts {
		cp.Contacts = append(cp.Contacts, coverage.Contact{Role: c.Role, Phone: c.Phone})
	}
	return cp
}

func coveragePolicies(policies []*models.Policy) []coverage.Policy {
	out := make([]coverage.Policy, 0, len(policies))
	for _, p := range policies {
		out = append(out, CoveragePolicy(p))
	}
	return out
}

// UserContext turns a stored profile into the engine's context flags. A nil
// profile is the empty context.
func UserContext(p *models.UserProfile) coverage.UserContext {
	if p == nil {
		return coverage.UserContext{}
	}
	return coverage.UserContext{
		HasVehicle:    p.HasVehicle,
		IsHomeowner:   p.IsHomeowner,
		IsRenter:      p.IsRenter,
		HasDependents: p.HasDependents,
		HighNetWorth:  p.HighNetWorth,
		OwnsBusiness:  p.OwnsBusiness,
	}
}

func toPolicyResponse(p *models.Policy) dto.PolicyResponse {
	resp := dto.PolicyResponse{
		ID:             p.ID.String(),
		PolicyType:     p.PolicyType,
		Carrier:        p.Carrier,
		PolicyNumber:   p.PolicyNumber,
		Nickname:       p.Nickname,
		BusinessName:   p.BusinessName,
		Status:         string(p.Status),
		CoverageAmount: p.CoverageAmount,
		Deductible:     p.Deductible,
		PremiumAmount:  p.PremiumAmount,
		Notes:          p.Notes,
		Details:        make([]dto.DetailResponse, 0, len(p.Details)),
		Contacts:       make([]dto.ContactResponse, 0, len(p.Contacts)),
		CreatedAt:      p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      p.UpdatedAt.Format(time.RFC3339),
	}
	if p.RenewalDate != nil {
		d := p.RenewalDate.Format(dateLayout)
		resp.RenewalDate = &d
	}
	for _, d := range p.Details {
		resp.Details = append(resp.Details, dto.DetailResponse{
			ID:         d.ID.String(),
			FieldName:  d.FieldName,
			FieldValue: d.FieldValue,
		})
	}
	for _, c := range p.Contacts {
		resp.Contacts = append(resp.Contacts, toContactResponse(c))
	}
	return resp
}

func toContactResponse(c models.PolicyContact) dto.ContactResponse {
	return dto.ContactResponse{
		ID:      c.ID.String(),
		Role:    c.Role,
		Name:    c.Name,
		Company: c.Company,
		Phone:   c.Phone,
		Email:   c.Email,
	}
}

func toDocumentResponse(d *models.Document) dto.DocumentResponse {
	return dto.DocumentResponse{
		ID:               d.ID.String(),
		PolicyID:         d.PolicyID.String(),
		DocType:          d.DocType,
		Filename:         d.Filename,
		ContentType:      d.ContentType,
		FileSize:         d.FileSize,
		ExtractionStatus: string(d.ExtractionStatus),
		ExtractionError:  d.ExtractionError,
		CreatedAt:        d.CreatedAt.Format(time.RFC3339),
	}
}

func toProfileResponse(p *models.UserProfile) dto.ProfileResponse {
	return dto.ProfileResponse{
		FullName:      p.FullName,
		Phone:         p.Phone,
		IsHomeowner:   p.IsHomeowner,
		IsRenter:      p.IsRenter,
		HasDependents: p.HasDependents,
		HasVehicle:    p.HasVehicle,
		OwnsBusiness:  p.OwnsBusiness,
		HighNetWorth:  p.HighNetWorth,
	}
}

// parseDate accepts YYYY-MM-DD; an empty string means "not set".
func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func toClaimResponse(c *models.Claim) dto.ClaimResponse {
	return dto.ClaimResponse{
		ID:            c.ID.String(),
		PolicyID:      c.PolicyID.String(),
		ClaimNumber:   c.ClaimNumber,
		Status:        string(c.Status),
		DateFiled:     c.DateFiled.Format(dateLayout),
		DateResolved:  optionalDate(c.DateResolved),
		AmountClaimed: c.AmountClaimed,
		AmountPaid:    c.AmountPaid,
		Description:   c.Description,
		Notes:         c.Notes,
		CreatedAt:     c.CreatedAt.Format(time.RFC3339),
	}
}

func toPremiumResponse(p *models.Premium) dto.PremiumResponse {
	return dto.PremiumResponse{
		ID:            p.ID.String(),
		PolicyID:      p.PolicyID.String(),
		Amount:        p.Amount,
		Frequency:     string(p.Frequency),
		DueDate:       p.DueDate.Format(dateLayout),
		PaidDate:      optionalDate(p.PaidDate),
		PaymentMethod: p.PaymentMethod,
		Notes:         p.Notes,
		CreatedAt:     p.CreatedAt.Format(time.RFC3339),
	}
}

func optionalDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

// requiredDate parses a YYYY-MM-DD value that must be present.
func requiredDate(field, s string) (time.Time, error) {
	t, err := parseDate(strings.TrimSpace(s))
	if err != nil || t == nil {
		return time.Time{}, fmt.Errorf("%w: %s must be YYYY-MM-DD", ErrInvalidInput, field)
	}
	return *t, nil
}

func optionalDateField(field, s string) (*time.Time, error) {
	t, err := parseDate(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("%w: %s must be YYYY-MM-DD", ErrInvalidInput, field)
	}
	return t, nil
}
