package dto

// Claim amounts are cents.
type ClaimRequest struct {
	ClaimNumber   string `json:"claim_number" validate:"required,max=80"`
	Status        string `json:"status" validate:"required,oneof=open in_progress closed denied"`
	DateFiled     string `json:"date_filed" validate:"required"`
	DateResolved  string `json:"date_resolved"`
	AmountClaimed *int64 `json:"amount_claimed" validate:"omitempty,min=0"`
	AmountPaid    *int64 `json:"amount_paid" validate:"omitempty,min=0"`
	Description   string `json:"description" validate:"required"`
	Notes         string `json:"notes"`
}

// ClaimUpdateRequest changes only the fields that are present.
type ClaimUpdateRequest struct {
	ClaimNumber   *string `json:"claim_number" validate:"omitempty,min=1,max=80"`
	Status        *string `json:"status" validate:"omitempty,oneof=open in_progress closed denied"`
	DateFiled     *string `json:"date_filed"`
	DateResolved  *string `json:"date_resolved"`
	AmountClaimed *int64  `json:"amount_claimed" validate:"omitempty,min=0"`
	AmountPaid    *int64  `json:"amount_paid" validate:"omitempty,min=0"`
	Description   *string `json:"description"`
	Notes         *string `json:"notes"`
}

type ClaimResponse struct {
	ID            string  `json:"id"`
	PolicyID      string  `json:"policy_id"`
	ClaimNumber   string  `json:"claim_number"`
	Status        string  `json:"status"`
	DateFiled     string  `json:"date_filed"`
	DateResolved  *string `json:"date_resolved"`
	AmountClaimed *int64  `json:"amount_claimed"`
	AmountPaid    *int64  `json:"amount_paid"`
	Description   string  `json:"description"`
	Notes         string  `json:"notes,omitempty"`
	CreatedAt     string  `json:"created_at"`
}
