package client

import (
	"time"

	"carpool-backend/dto"
)

// SearchDraft holds the ride-search form fields while the user types.
// Purely in-memory session state.
type SearchDraft struct {
	From string
	To   string
	Date time.Time
}

func (d *SearchDraft) SetFrom(v string)    { d.From = v }
func (d *SearchDraft) SetTo(v string)      { d.To = v }
func (d *SearchDraft) SetDate(v time.Time) { d.Date = v }
func (d *SearchDraft) Reset()              { *d = SearchDraft{} }

// OfferDraft holds the ride-offer form fields plus an append-only history
// of offers submitted this session.
type OfferDraft struct {
	StartLocation  string
	EndLocation    string
	DepartureTime  time.Time
	AvailableSeats int
	Price          float64

	Submitted []dto.CreateCarpoolRequest
}

func (d *OfferDraft) SetStartLocation(v string)    { d.StartLocation = v }
func (d *OfferDraft) SetEndLocation(v string)      { d.EndLocation = v }
func (d *OfferDraft) SetDepartureTime(v time.Time) { d.DepartureTime = v }
func (d *OfferDraft) SetAvailableSeats(v int)      { d.AvailableSeats = v }
func (d *OfferDraft) SetPrice(v float64)           { d.Price = v }

// Build snapshots the current fields as a request payload.
func (d *OfferDraft) Build() dto.CreateCarpoolRequest {
	return dto.CreateCarpoolRequest{
		StartLocation:  d.StartLocation,
		EndLocation:    d.EndLocation,
		DepartureTime:  d.DepartureTime,
		AvailableSeats: d.AvailableSeats,
		Price:          d.Price,
	}
}

// MarkSubmitted appends the offer to the session history and clears the
// form fields.
func (d *OfferDraft) MarkSubmitted(req dto.CreateCarpoolRequest) {
	submitted := append(d.Submitted, req)
	*d = OfferDraft{Submitted: submitted}
}
