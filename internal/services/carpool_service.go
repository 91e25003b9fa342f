package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"carpool-backend/internal/models"
	"carpool-backend/observability"
)

type CarpoolStore interface {
	FindByID(ctx context.Context, id bson.ObjectID) (*models.Carpool, error)
	ClaimSeat(ctx context.Context, id bson.ObjectID) (bool, error)
	ReleaseSeat(ctx context.Context, id bson.ObjectID) error
	SetStatus(ctx context.Context, id bson.ObjectID, status models.CarpoolStatus) error
}

type RequestStore interface {
	Insert(ctx context.Context, req *models.RideRequest) (bson.ObjectID, error)
	FindByID(ctx context.Context, id bson.ObjectID) (*models.RideRequest, error)
	FindActive(ctx context.Context, carpoolID, riderID bson.ObjectID) (*models.RideRequest, error)
	ListAccepted(ctx context.Context, carpoolID bson.ObjectID) ([]models.RideRequest, error)
	UpdateStatus(ctx context.Context, id bson.ObjectID, status models.RequestStatus) (*models.RideRequest, error)
}

// CarpoolService owns the seat accounting rules: a join claims exactly one
// seat atomically, a cancel gives it back, and the count never goes
// negative.
type CarpoolService struct {
	Carpools CarpoolStore
	Requests RequestStore
	Notify   Notifier
}

func (s *CarpoolService) Join(ctx context.Context, carpoolID, riderID bson.ObjectID) (*models.RideRequest, error) {
	cp, err := s.Carpools.FindByID(ctx, carpoolID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if cp.DriverID == riderID {
		return nil, ErrOwnRide
	}
	if cp.Status != models.CarpoolActive {
		return nil, ErrRideClosed
	}
	if _, err := s.Requests.FindActive(ctx, carpoolID, riderID); err == nil {
		return nil, ErrAlreadyJoined
	} else if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, err
	}

	claimed, err := s.Carpools.ClaimSeat(ctx, carpoolID)
	if err != nil {
		return nil, err
	}
	if !claimed {
		return nil, ErrRideFull
	}

	now := time.Now().UTC()
	req := &models.RideRequest{
		RiderID:   riderID,
		CarpoolID: carpoolID,
		Status:    models.RequestAccepted,
		CreatedAt: now,
		UpdatedAt: now,
	}
	id, err := s.Requests.Insert(ctx, req)
	if err != nil {
		// give the claimed seat back so the count stays honest
		_ = s.Carpools.ReleaseSeat(ctx, carpoolID)
		return nil, err
	}
	req.ID = id
	observability.SeatsBooked.Inc()

	_ = s.Notify.Push(ctx, cp.DriverID, models.NotifyRideRequest,
		fmt.Sprintf("A rider joined your carpool %s → %s", cp.StartLocation, cp.EndLocation),
		models.Ref{Entity: "ride_request", ID: id})

	return req, nil
}

// CancelRequest is rider-initiated. Cancelling an accepted request restores
// the seat; cancelling twice is a no-op.
func (s *CarpoolService) CancelRequest(ctx context.Context, requestID, riderID bson.ObjectID) (*models.RideRequest, error) {
	req, err := s.Requests.FindByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if req.RiderID != riderID {
		return nil, ErrNotFound
	}
	if req.Status == models.RequestCancelled {
		return req, nil
	}
	wasAccepted := req.Status == models.RequestAccepted

	updated, err := s.Requests.UpdateStatus(ctx, requestID, models.RequestCancelled)
	if err != nil {
		return nil, err
	}
	if wasAccepted {
		if err := s.Carpools.ReleaseSeat(ctx, req.CarpoolID); err != nil {
			return nil, err
		}
	}
	return updated, nil
}

// Cancel is driver-initiated and notifies every accepted rider.
func (s *CarpoolService) Cancel(ctx context.Context, carpoolID, driverID bson.ObjectID) (*models.Carpool, error) {
	cp, err := s.Carpools.FindByID(ctx, carpoolID)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if cp.DriverID != driverID {
		return nil, ErrNotFound
	}
	if cp.Status == models.CarpoolCancelled {
		return cp, nil
	}

	if err := s.Carpools.SetStatus(ctx, carpoolID, models.CarpoolCancelled); err != nil {
		return nil, err
	}
	cp.Status = models.CarpoolCancelled

	riders, err := s.Requests.ListAccepted(ctx, carpoolID)
	if err != nil {
		return cp, nil
	}
	msg := fmt.Sprintf("Carpool %s → %s was cancelled by the driver", cp.StartLocation, cp.EndLocation)
	for _, r := range riders {
		_ = s.Notify.Push(ctx, r.RiderID, models.NotifyCancellation, msg,
			models.Ref{Entity: "carpool", ID: carpoolID})
	}
	return cp, nil
}
