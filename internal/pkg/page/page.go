package page

import (
	"context"
	"fmt"
	"sync"

	"github.com/mtmgroup/dashboards-ui/internal/app/types"
	"github.com/mtmgroup/dashboards-ui/internal/pkg/filter"
	"github.com/mtmgroup/dashboards-ui/internal/pkg/form"
	"github.com/mtmgroup/dashboards-ui/internal/pkg/notify"
	"github.com/mtmgroup/dashboards-ui/internal/pkg/service"
	"github.com/mtmgroup/dashboards-ui/logger"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type Params struct {
	Service  service.Service
	Identity types.Identity
	Notifier notify.Notifier
	Forms    form.Options
}

// Page is the dashboards page: the filtered list, the option suggestions
// and the two dialogs. A successful write re-fetches the list once.
type Page struct {
	svc      service.Service
	identity types.Identity
	engine   *filter.Engine
	create   *form.CreateController
	update   *form.UpdateController

	mu      sync.Mutex
	options types.OptionSet
	pending *filter.Request
}

func New(p Params) *Page {
	pg := &Page{
		svc:      p.Service,
		identity: p.Identity,
	}
	pg.engine = filter.NewEngine(p.Service.ListDashboards)

	id := p.Identity
	pg.create = form.NewCreateController(p.Service, p.Notifier, &id, p.Forms, pg.recordChanged)
	pg.update = form.NewUpdateController(p.Service, p.Notifier, p.Forms, pg.recordChanged)
	return pg
}

func (p *Page) Identity() types.Identity {
	return p.identity
}

// Load fetches the options and the unfiltered list concurrently.
// A failure to load options only leaves the suggestions empty.
func (p *Page) Load(ctx context.Context) error {
	req := p.engine.Refresh()

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		opts, err := p.svc.GetOptions(gCtx)
		if err != nil {
			logger.Warn("failed to load options", zap.Error(err))
			return nil
		}
		p.mu.Lock()
		p.options = opts
		p.mu.Unlock()
		return nil
	})
	g.Go(func() error {
		p.engine.Run(gCtx, req)
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	if err := p.engine.Snapshot().Err; err != nil {
		return fmt.Errorf("load dashboards: %w", err)
	}
	return nil
}

func (p *Page) Options() types.OptionSet {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.options
}

// Dispatch applies a filter event and returns the fetch to run, if any.
func (p *Page) Dispatch(ev filter.Event) (filter.Request, bool) {
	return p.engine.Dispatch(ev)
}

// Fetch runs req; see filter.Engine.Run.
func (p *Page) Fetch(ctx context.Context, req filter.Request) bool {
	return p.engine.Run(ctx, req)
}

// SetFilter applies the change and waits for the fetch it triggers.
func (p *Page) SetFilter(ctx context.Context, f filter.Field, value string) bool {
	req, ok := p.engine.Dispatch(filter.SetFilter{Field: f, Value: value})
	if !ok {
		return false
	}
	p.engine.Run(ctx, req)
	return true
}

func (p *Page) ClearFilters(ctx context.Context) bool {
	req, ok := p.engine.Dispatch(filter.ClearFilters{})
	if !ok {
		return false
	}
	p.engine.Run(ctx, req)
	return true
}

func (p *Page) Refresh(ctx context.Context) {
	p.engine.Run(ctx, p.engine.Refresh())
}

func (p *Page) Snapshot() filter.Snapshot {
	return p.engine.Snapshot()
}

func (p *Page) CreateDialog() *form.CreateController {
	return p.create
}

func (p *Page) UpdateDialog() *form.UpdateController {
	return p.update
}

func (p *Page) OpenCreate() {
	p.create.Open()
}

// OpenUpdate opens the update dialog for a dashboard of the current list.
func (p *Page) OpenUpdate(id types.DashboardID) error {
	d, ok := p.engine.Snapshot().Dashboards.Find(id)
	if !ok {
		return types.NewErrNotFound(fmt.Sprintf("dashboard %s", id))
	}
	p.update.Open(d)
	return nil
}

func (p *Page) SubmitCreate(ctx context.Context) form.Outcome {
	o := p.create.Submit(ctx)
	p.runPending(ctx)
	return o
}

func (p *Page) SubmitUpdate(ctx context.Context) form.Outcome {
	o := p.update.Submit(ctx)
	p.runPending(ctx)
	return o
}

// PendingFetch returns the re-fetch requested by a successful write.
// Callers that drive dialogs directly run it themselves.
func (p *Page) PendingFetch() (filter.Request, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.pending == nil {
		return filter.Request{}, false
	}
	req := *p.pending
	p.pending = nil
	return req, true
}

func (p *Page) recordChanged() {
	req := p.engine.Refresh()

	p.mu.Lock()
	defer p.mu.Unlock()
	p.pending = &req
}

func (p *Page) runPending(ctx context.Context) {
	if req, ok := p.PendingFetch(); ok {
		p.engine.Run(ctx, req)
	}
}
