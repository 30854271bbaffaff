// Package poller provides an embedded automation trigger that periodically
// scans for work and fires the matching action. Deployments relying on an
// external automation service simply never start it.
package poller

import (
	"context"
	"sync"
	"time"
)

const errorQueueMaxSize = 10

// Target is the predicate/action pair the poller drives. Check returns the
// ids eligible for an action, Perform runs the action for one of them.
type Target interface {
	Check(ctx context.Context) ([]string, error)
	Perform(ctx context.Context, id string) error
}

// Service manages the lifecycle of the polling loop.
type Service interface {
	Start()
	Stop()
}

// Opts defines the parameters needed for creating a poller service with the
// NewService method.
type Opts struct {
	Target                 Target
	IntervalInMilliseconds int
	ErrorHandler           func(err error)
}

type upkeepPoller struct {
	interval     int
	target       Target
	errChan      chan error
	quitChan     chan struct{}
	errorHandler func(err error)
	mutex        *sync.Mutex
	wg           *sync.WaitGroup
	started      bool
}

// NewService returns a poller ready to watch over the given target. Use the
// Start and Stop methods to manage it.
func NewService(opts Opts) Service {
	return &upkeepPoller{
		interval:     opts.IntervalInMilliseconds,
		target:       opts.Target,
		errChan:      make(chan error, errorQueueMaxSize),
		quitChan:     make(chan struct{}),
		errorHandler: opts.ErrorHandler,
		mutex:        &sync.Mutex{},
		wg:           &sync.WaitGroup{},
	}
}

// Start spawns the polling loop which periodically scans the target for
// pending work.
func (p *upkeepPoller) Start() {
	p.mutex.Lock()
	if p.started {
		p.mutex.Unlock()
		return
	}
	p.started = true
	p.mutex.Unlock()

	p.wg.Add(1)
	go p.pollLoop()

	for err := range p.errChan {
		go p.errorHandler(err)
	}
}

// Stop stops the polling loop and waits for the in-flight scan to terminate.
func (p *upkeepPoller) Stop() {
	p.mutex.Lock()
	defer p.mutex.Unlock()
	if !p.started {
		return
	}
	p.started = false
	close(p.quitChan)
	p.wg.Wait()
	close(p.errChan)
}

func (p *upkeepPoller) pollLoop() {
	defer p.wg.Done()

	ticker := time.NewTicker(time.Duration(p.interval) * time.Millisecond)
	defer ticker.Stop()

	for {
		select {
		case <-p.quitChan:
			return
		case <-ticker.C:
			p.pollOnce()
		}
	}
}

func (p *upkeepPoller) pollOnce() {
	ctx := context.Background()

	ids, err := p.target.Check(ctx)
	if err != nil {
		p.pushError(err)
		return
	}

	for _, id := range ids {
		if err := p.target.Perform(ctx, id); err != nil {
			p.pushError(err)
		}
	}
}

func (p *upkeepPoller) pushError(err error) {
	select {
	case p.errChan <- err:
	default:
	}
}
