package dto

import "carpool-backend/internal/models"

type CreateFeedbackRequest struct {
	CarpoolID string `json:"carpool_id"`
	GivenTo   string `json:"given_to"`
	Rating    int    `json:"rating"`
	Comments  string `json:"comments,omitempty"`
}

type FeedbackList struct {
	Ratings []models.Feedback `json:"ratings"`
	Average float64           `json:"average"`
}
