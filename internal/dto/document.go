package dto

type DocumentResponse struct {
	ID               string `json:"id"`
	PolicyID         string `json:"policy_id"`
	DocType          string `json:"doc_type"`
	Filename         string `json:"filename"`
	ContentType      string `json:"content_type"`
	FileSize         int64  `json:"file_size"`
	ExtractionStatus string `json:"extraction_status"`
	ExtractionError  string `json:"extraction_error,omitempty"`
	CreatedAt        string `json:"created_at"`
}

type ExtractDocumentResponse struct {
	Document DocumentResponse `json:"document"`
	Policy   PolicyResponse   `json:"policy"`
}

type ChatRequest struct {
	Message string `json:"message" validate:"required"`
}

type ChatResponse struct {
	Reply string `json:"reply"`
}
