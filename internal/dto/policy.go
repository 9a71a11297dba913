package dto

// PolicyRequest is used for both create and update. Amounts are whole dollars,
// renewal_date is YYYY-MM-DD.
type PolicyRequest struct {
	PolicyType     string           `json:"policy_type" validate:"required"`
	Carrier        string           `json:"carrier"`
	PolicyNumber   string           `json:"policy_number"`
	Nickname       string           `json:"nickname"`
	BusinessName   string           `json:"business_name"`
	Status         string           `json:"status" validate:"omitempty,oneof=active expired archived"`
	CoverageAmount *int64           `json:"coverage_amount"`
	Deductible     *int64           `json:"deductible"`
	PremiumAmount  *int64           `json:"premium_amount"`
	RenewalDate    string           `json:"renewal_date"`
	Notes          string           `json:"notes"`
	Details        []DetailRequest  `json:"details"`
	Contacts       []ContactRequest `json:"contacts"`
}

type DetailRequest struct {
	FieldName  string `json:"field_name" validate:"required"`
	FieldValue string `json:"field_value"`
}

type ContactRequest struct {
	Role    string `json:"role" validate:"required"`
	Name    string `json:"name"`
	Company string `json:"company"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
}

type PolicyResponse struct {
	ID             string            `json:"id"`
	PolicyType     string            `json:"policy_type"`
	Carrier        string            `json:"carrier"`
	PolicyNumber   string            `json:"policy_number"`
	Nickname       string            `json:"nickname,omitempty"`
	BusinessName   string            `json:"business_name,omitempty"`
	Status         string            `json:"status"`
	CoverageAmount *int64            `json:"coverage_amount"`
	Deductible     *int64            `json:"deductible"`
	PremiumAmount  *int64            `json:"premium_amount"`
	RenewalDate    *string           `json:"renewal_date"`
	Notes          string            `json:"notes,omitempty"`
	Details        []DetailResponse  `json:"details"`
	Contacts       []ContactResponse `json:"contacts"`
	CreatedAt      string            `json:"created_at"`
	UpdatedAt      string            `json:"updated_at"`
}

type DetailResponse struct {
	ID         string `json:"id"`
	FieldName  string `json:"field_name"`
	FieldValue string `json:"field_value"`
}

type ContactResponse struct {
	ID      string `json:"id"`
	Role    string `json:"role"`
	Name    string `json:"name,omitempty"`
	Company string `json:"company,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Email   string `json:"email,omitempty"`
}

type RenewalResponse struct {
	ID             string `json:"id"`
	Carrier        string `json:"carrier"`
	PolicyType     string `json:"policy_type"`
	PolicyNumber   string `json:"policy_number"`
	Nickname       string `json:"nickname,omitempty"`
	RenewalDate    string `json:"renewal_date"`
	DaysUntil      int    `json:"days_until"`
	CoverageAmount *int64 `json:"coverage_amount"`
}
