package client

import (
	"context"
	"sync"
	"time"

	"carpool-backend/internal/models"
)

// Poller refreshes the caller's ride list on a fixed interval. Failures go
// to OnError instead of tearing the loop down, and Stop cancels the timer
// deterministically so no goroutine outlives the owner.
type Poller struct {
	Client   *Client
	Interval time.Duration
	OnRides  func([]models.Carpool)
	OnError  func(error)

	stopOnce sync.Once
	stop     chan struct{}
	done     chan struct{}
}

// Start fetches once immediately, then ticks. It returns right away.
func (p *Poller) Start() {
	p.stop = make(chan struct{})
	p.done = make(chan struct{})

	go func() {
		defer close(p.done)

		ticker := time.NewTicker(p.Interval)
		defer ticker.Stop()

		p.fetch()
		for {
			select {
			case <-ticker.C:
				p.fetch()
			case <-p.stop:
				return
			}
		}
	}()
}

// Stop cancels the loop and waits for it to exit. Safe to call twice.
func (p *Poller) Stop() {
	if p.stop == nil {
		return
	}
	p.stopOnce.Do(func() { close(p.stop) })
	<-p.done
}

func (p *Poller) fetch() {
	ctx, cancel := context.WithTimeout(context.Background(), p.Interval)
	defer cancel()

	rides, err := p.Client.MyCarpools(ctx)
	if err != nil {
		if p.OnError != nil {
			p.OnError(err)
		}
		return
	}
	if p.OnRides != nil {
		p.OnRides(rides)
	}
}
