package dto

type CreateChatRequest struct {
	CarpoolID     string `json:"carpool_id"`
	ParticipantID string `json:"participant_id"`
}

type SendMessageRequest struct {
	Content string `json:"content"`
}
