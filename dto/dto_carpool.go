package dto

import "time"

type CreateCarpoolRequest struct {
	StartLocation  string    `json:"start_location"`
	EndLocation    string    `json:"end_location"`
	DepartureTime  time.Time `json:"departure_time"`
	AvailableSeats int       `json:"available_seats"`
	Price          float64   `json:"price"`
}

type UpdateRequestStatus struct {
	Status string `json:"status"`
}
