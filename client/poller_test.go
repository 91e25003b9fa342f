package client

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"carpool-backend/internal/models"
)

func ridesServer(t *testing.T, hits *atomic.Int64) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/carpools/mine" {
			http.NotFound(w, r)
			return
		}
		hits.Add(1)
		json.NewEncoder(w).Encode([]models.Carpool{{StartLocation: "Campus", EndLocation: "Downtown"}})
	}))
}

func TestPollerFetchesImmediatelyAndOnTicks(t *testing.T) {
	var hits atomic.Int64
	srv := ridesServer(t, &hits)
	defer srv.Close()

	got := make(chan []models.Carpool, 16)
	p := &Poller{
		Client:   New(srv.URL),
		Interval: 200 * time.Millisecond,
		OnRides:  func(rides []models.Carpool) { got <- rides },
	}
	p.Start()
	defer p.Stop()

	// first delivery happens without waiting a full interval
	select {
	case rides := <-got:
		if len(rides) != 1 || rides[0].StartLocation != "Campus" {
			t.Fatalf("unexpected rides: %+v", rides)
		}
	case <-time.After(100 * time.Millisecond):
		t.Fatal("no immediate fetch")
	}

	// then it keeps refreshing
	select {
	case <-got:
	case <-time.After(time.Second):
		t.Fatal("no fetch after interval")
	}
}

func TestPollerStopHaltsRequests(t *testing.T) {
	var hits atomic.Int64
	srv := ridesServer(t, &hits)
	defer srv.Close()

	p := &Poller{
		Client:   New(srv.URL),
		Interval: 10 * time.Millisecond,
	}
	p.Start()
	time.Sleep(35 * time.Millisecond)
	p.Stop()

	settled := hits.Load()
	if settled == 0 {
		t.Fatal("poller never fetched")
	}
	time.Sleep(50 * time.Millisecond)
	if after := hits.Load(); after != settled {
		t.Fatalf("fetches continued after Stop: %d -> %d", settled, after)
	}

	// Stop twice is fine
	p.Stop()
}

func TestPollerReportsErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"message": "Internal Server Error"})
	}))
	defer srv.Close()

	errs := make(chan error, 16)
	p := &Poller{
		Client:   New(srv.URL),
		Interval: 20 * time.Millisecond,
		OnError:  func(err error) { errs <- err },
	}
	p.Start()
	defer p.Stop()

	select {
	case err := <-errs:
		if err == nil {
			t.Fatal("nil error delivered")
		}
	case <-time.After(time.Second):
		t.Fatal("error never surfaced")
	}
}

func TestPollerStopBeforeStart(t *testing.T) {
	p := &Poller{Client: New("http://unused"), Interval: time.Second}
	p.Stop() // must not panic or block
}
