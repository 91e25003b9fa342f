package dto

type SubmitVerificationRequest struct {
	DocumentType string `json:"document_type"`
	DocumentRef  string `json:"document_ref"`
}

type ReviewVerificationRequest struct {
	Status string `json:"status"`
}
