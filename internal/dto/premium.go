package dto

// Premium amounts are cents.
type PremiumRequest struct {
	Amount        int64  `json:"amount" validate:"min=0"`
	Frequency     string `json:"frequency" validate:"required,oneof=monthly quarterly semi_annual annual"`
	DueDate       string `json:"due_date" validate:"required"`
	PaidDate      string `json:"paid_date"`
	PaymentMethod string `json:"payment_method" validate:"max=50"`
	Notes         string `json:"notes"`
}

// PremiumUpdateRequest changes only the fields that are present.
type PremiumUpdateRequest struct {
	Amount        *int64  `json:"amount" validate:"omitempty,min=0"`
	Frequency     *string `json:"frequency" validate:"omitempty,oneof=monthly quarterly semi_annual annual"`
	DueDate       *string `json:"due_date"`
	PaidDate      *string `json:"paid_date"`
	PaymentMethod *string `json:"payment_method" validate:"omitempty,max=50"`
	Notes         *string `json:"notes"`
}

type PremiumResponse struct {
	ID            string  `json:"id"`
	PolicyID      string  `json:"policy_id"`
	Amount        int64   `json:"amount"`
	Frequency     string  `json:"frequency"`
	DueDate       string  `json:"due_date"`
	PaidDate      *string `json:"paid_date"`
	PaymentMethod string  `json:"payment_method,omitempty"`
	Notes         string  `json:"notes,omitempty"`
	CreatedAt     string  `json:"created_at"`
}

type AnnualSpendResponse struct {
	AnnualSpendCents int64 `json:"annual_spend_cents"`
}
