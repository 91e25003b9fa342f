package services

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"carpool-backend/internal/models"
)

type fakeCarpoolStore struct {
	carpool  *models.Carpool
	claims   int
	releases int
}

func (f *fakeCarpoolStore) FindByID(ctx context.Context, id bson.ObjectID) (*models.Carpool, error) {
	if f.carpool == nil || f.carpool.ID != id {
		return nil, mongo.ErrNoDocuments
	}
	cp := *f.carpool
	return &cp, nil
}

func (f *fakeCarpoolStore) ClaimSeat(ctx context.Context, id bson.ObjectID) (bool, error) {
	if f.carpool.AvailableSeats <= 0 {
		return false, nil
	}
	f.carpool.AvailableSeats--
	f.claims++
	return true, nil
}

func (f *fakeCarpoolStore) ReleaseSeat(ctx context.Context, id bson.ObjectID) error {
	f.carpool.AvailableSeats++
	f.releases++
	return nil
}

func (f *fakeCarpoolStore) SetStatus(ctx context.Context, id bson.ObjectID, status models.CarpoolStatus) error {
	f.carpool.Status = status
	return nil
}

type fakeRequestStore struct {
	requests  map[bson.ObjectID]*models.RideRequest
	insertErr error
}

func newFakeRequestStore() *fakeRequestStore {
	return &fakeRequestStore{requests: map[bson.ObjectID]*models.RideRequest{}}
}

func (f *fakeRequestStore) Insert(ctx context.Context, req *models.RideRequest) (bson.ObjectID, error) {
	if f.insertErr != nil {
		return bson.NilObjectID, f.insertErr
	}
	id := bson.NewObjectID()
	req.ID = id
	copied := *req
	f.requests[id] = &copied
	return id, nil
}

func (f *fakeRequestStore) FindByID(ctx context.Context, id bson.ObjectID) (*models.RideRequest, error) {
	req, ok := f.requests[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	copied := *req
	return &copied, nil
}

func (f *fakeRequestStore) FindActive(ctx context.Context, carpoolID, riderID bson.ObjectID) (*models.RideRequest, error) {
	for _, req := range f.requests {
		if req.CarpoolID == carpoolID && req.RiderID == riderID &&
			(req.Status == models.RequestPending || req.Status == models.RequestAccepted) {
			copied := *req
			return &copied, nil
		}
	}
	return nil, mongo.ErrNoDocuments
}

func (f *fakeRequestStore) ListAccepted(ctx context.Context, carpoolID bson.ObjectID) ([]models.RideRequest, error) {
	out := []models.RideRequest{}
	for _, req := range f.requests {
		if req.CarpoolID == carpoolID && req.Status == models.RequestAccepted {
			out = append(out, *req)
		}
	}
	return out, nil
}

func (f *fakeRequestStore) UpdateStatus(ctx context.Context, id bson.ObjectID, status models.RequestStatus) (*models.RideRequest, error) {
	req, ok := f.requests[id]
	if !ok {
		return nil, mongo.ErrNoDocuments
	}
	req.Status = status
	copied := *req
	return &copied, nil
}

type recordingNotifier struct {
	pushes []models.NotificationType
}

func (n *recordingNotifier) Push(ctx context.Context, userID bson.ObjectID, typ models.NotificationType, message string, ref models.Ref) error {
	n.pushes = append(n.pushes, typ)
	return nil
}

func newTestService(seats int) (*CarpoolService, *fakeCarpoolStore, *fakeRequestStore, *recordingNotifier, bson.ObjectID, bson.ObjectID) {
	carpoolID := bson.NewObjectID()
	driverID := bson.NewObjectID()
	carpools := &fakeCarpoolStore{carpool: &models.Carpool{
		ID:             carpoolID,
		DriverID:       driverID,
		StartLocation:  "Uptown",
		EndLocation:    "Campus",
		AvailableSeats: seats,
		Status:         models.CarpoolActive,
	}}
	requests := newFakeRequestStore()
	notify := &recordingNotifier{}
	svc := &CarpoolService{Carpools: carpools, Requests: requests, Notify: notify}
	return svc, carpools, requests, notify, carpoolID, driverID
}

func TestJoinDecrementsExactlyOneSeat(t *testing.T) {
	svc, carpools, _, notify, carpoolID, _ := newTestService(2)
	rider := bson.NewObjectID()

	req, err := svc.Join(context.Background(), carpoolID, rider)
	if err != nil {
		t.Fatalf("join: %v", err)
	}
	if req.Status != models.RequestAccepted {
		t.Fatalf("expected accepted request, got %s", req.Status)
	}
	if carpools.carpool.AvailableSeats != 1 {
		t.Fatalf("expected 1 seat left, got %d", carpools.carpool.AvailableSeats)
	}
	if len(notify.pushes) != 1 || notify.pushes[0] != models.NotifyRideRequest {
		t.Fatalf("driver not notified: %v", notify.pushes)
	}
}

func TestJoinFullRideNeverGoesNegative(t *testing.T) {
	svc, carpools, _, _, carpoolID, _ := newTestService(1)

	if _, err := svc.Join(context.Background(), carpoolID, bson.NewObjectID()); err != nil {
		t.Fatalf("first join: %v", err)
	}
	if _, err := svc.Join(context.Background(), carpoolID, bson.NewObjectID()); !errors.Is(err, ErrRideFull) {
		t.Fatalf("expected ErrRideFull, got %v", err)
	}
	if carpools.carpool.AvailableSeats != 0 {
		t.Fatalf("seat count went to %d", carpools.carpool.AvailableSeats)
	}
}

func TestJoinOwnRideRejected(t *testing.T) {
	svc, _, _, _, carpoolID, driverID := newTestService(3)
	if _, err := svc.Join(context.Background(), carpoolID, driverID); !errors.Is(err, ErrOwnRide) {
		t.Fatalf("expected ErrOwnRide, got %v", err)
	}
}

func TestJoinTwiceRejected(t *testing.T) {
	svc, carpools, _, _, carpoolID, _ := newTestService(3)
	rider := bson.NewObjectID()

	if _, err := svc.Join(context.Background(), carpoolID, rider); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Join(context.Background(), carpoolID, rider); !errors.Is(err, ErrAlreadyJoined) {
		t.Fatalf("expected ErrAlreadyJoined, got %v", err)
	}
	if carpools.carpool.AvailableSeats != 2 {
		t.Fatalf("second attempt claimed a seat: %d left", carpools.carpool.AvailableSeats)
	}
}

func TestJoinReleasesSeatOnInsertFailure(t *testing.T) {
	svc, carpools, requests, _, carpoolID, _ := newTestService(2)
	requests.insertErr = errors.New("write failed")

	if _, err := svc.Join(context.Background(), carpoolID, bson.NewObjectID()); err == nil {
		t.Fatal("expected error")
	}
	if carpools.carpool.AvailableSeats != 2 {
		t.Fatalf("seat not returned, %d left", carpools.carpool.AvailableSeats)
	}
}

func TestCancelRequestRestoresSeatOnce(t *testing.T) {
	svc, carpools, _, _, carpoolID, _ := newTestService(2)
	rider := bson.NewObjectID()

	req, err := svc.Join(context.Background(), carpoolID, rider)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.CancelRequest(context.Background(), req.ID, rider); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if carpools.carpool.AvailableSeats != 2 {
		t.Fatalf("seat not restored, %d left", carpools.carpool.AvailableSeats)
	}

	// cancelling again must not mint extra seats
	if _, err := svc.CancelRequest(context.Background(), req.ID, rider); err != nil {
		t.Fatalf("second cancel: %v", err)
	}
	if carpools.carpool.AvailableSeats != 2 {
		t.Fatalf("double restore, %d seats", carpools.carpool.AvailableSeats)
	}
}

func TestCancelCarpoolNotifiesAcceptedRiders(t *testing.T) {
	svc, carpools, _, notify, carpoolID, driverID := newTestService(3)

	if _, err := svc.Join(context.Background(), carpoolID, bson.NewObjectID()); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Join(context.Background(), carpoolID, bson.NewObjectID()); err != nil {
		t.Fatal(err)
	}
	notify.pushes = nil

	cp, err := svc.Cancel(context.Background(), carpoolID, driverID)
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if cp.Status != models.CarpoolCancelled {
		t.Fatalf("status not cancelled: %s", cp.Status)
	}
	if carpools.carpool.Status != models.CarpoolCancelled {
		t.Fatal("store status not updated")
	}
	if len(notify.pushes) != 2 {
		t.Fatalf("expected 2 cancellation notices, got %d", len(notify.pushes))
	}
	for _, typ := range notify.pushes {
		if typ != models.NotifyCancellation {
			t.Fatalf("wrong notification type %s", typ)
		}
	}
}
