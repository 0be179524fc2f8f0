package filter

import (
	"context"
	"sync"

	"github.com/mtmgroup/dashboards-ui/internal/app/types"
	"github.com/mtmgroup/dashboards-ui/metric"
)

// Fetcher loads the dashboards for a query.
type Fetcher func(ctx context.Context, q types.DashboardsQuery) (types.Dashboards, error)

// Request is one fetch to perform. Only the latest generation may publish.
type Request struct {
	Generation uint64
	Query      types.DashboardsQuery
}

type Snapshot struct {
	State      State
	Dashboards types.Dashboards
	Err        error
	Loading    bool
	Generation uint64
}

type Engine struct {
	fetch Fetcher

	mu         sync.Mutex
	state      State
	generation uint64
	cancel     context.CancelFunc
	dashboards types.Dashboards
	err        error
	loading    bool
}

func NewEngine(fetch Fetcher) *Engine {
	return &Engine{fetch: fetch}
}

// Dispatch applies ev. It returns a request to run when the state changed.
func (e *Engine) Dispatch(ev Event) (Request, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()

	next := Reduce(e.state, ev)
	if next == e.state {
		return Request{}, false
	}
	e.state = next
	return e.nextRequestLocked(), true
}

// Refresh re-fetches with the current state.
func (e *Engine) Refresh() Request {
	e.mu.Lock()
	defer e.mu.Unlock()

	return e.nextRequestLocked()
}

func (e *Engine) nextRequestLocked() Request {
	e.generation++
	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}
	e.loading = true
	return Request{
		Generation: e.generation,
		Query:      e.state.Query(),
	}
}

// Run performs req and publishes the result unless a newer request was
// issued meanwhile. It reports whether the result was published.
func (e *Engine) Run(ctx context.Context, req Request) bool {
	e.mu.Lock()
	if req.Generation != e.generation {
		e.mu.Unlock()
		metric.FilterStaleResponses.Inc()
		return false
	}
	ctx, cancel := context.WithCancel(ctx)
	e.cancel = cancel
	e.mu.Unlock()
	defer cancel()

	metric.FilterFetches.Inc()
	items, err := e.fetch(ctx, req.Query)
	return e.Apply(req, items, err)
}

// Apply publishes a fetch result if req is still the latest request.
func (e *Engine) Apply(req Request, items types.Dashboards, err error) bool {
	e.mu.Lock()
	defer e.mu.Unlock()

	if req.Generation != e.generation {
		metric.FilterStaleResponses.Inc()
		return false
	}

	e.loading = false
	e.cancel = nil
	if err != nil {
		e.err = err
		return true
	}
	e.err = nil
	e.dashboards = items
	return true
}

func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	return Snapshot{
		State:      e.state,
		Dashboards: e.dashboards,
		Err:        e.err,
		Loading:    e.loading,
		Generation: e.generation,
	}
}
