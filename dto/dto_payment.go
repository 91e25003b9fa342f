package dto

type CreatePaymentRequest struct {
	CarpoolID     string `json:"carpool_id"`
	RideRequestID string `json:"ride_request_id,omitempty"`
	Amount        int64  `json:"amount"`
	Currency      string `json:"currency,omitempty"`
}
