package form

import (
	"context"
	"errors"
	"sync"

	"github.com/mtmgroup/dashboards-ui/internal/app/types"
	"github.com/mtmgroup/dashboards-ui/internal/pkg/notify"
	"github.com/mtmgroup/dashboards-ui/logger"
	"github.com/mtmgroup/dashboards-ui/metric"
	"go.uber.org/zap"
)

const (
	MsgNetworkError = "Network error. Please try again."

	MsgUpdateFailed    = "Failed to update dashboard"
	MsgUpdateSucceeded = "Dashboard updated successfully!"

	MsgCreateFailed      = "Failed to add dashboard"
	MsgCreateSucceeded   = "Dashboard added successfully!"
	MsgFillRequiredToast = "Please fill all required fields"
)

const (
	formCreate = "create"
	formUpdate = "update"
)

type Outcome int

const (
	// OutcomeIgnored means the dialog was not open or a submit was in flight.
	OutcomeIgnored Outcome = iota
	OutcomeInvalid
	OutcomeFailed
	OutcomeSucceeded
)

func (o Outcome) String() string {
	switch o {
	case OutcomeIgnored:
		return "ignored"
	case OutcomeInvalid:
		return "invalid"
	case OutcomeFailed:
		return "failed"
	case OutcomeSucceeded:
		return "succeeded"
	default:
		return "unknown"
	}
}

type Creator interface {
	CreateDashboard(context.Context, types.CreateDashboardRequest) (types.DashboardID, error)
}

type Updater interface {
	UpdateDashboard(context.Context, types.UpdateDashboardRequest) error
}

// failureMessages returns the inline message and the toast for a failed write.
func failureMessages(err error, fallback, networkToast string, toastInline bool) (string, string) {
	if errors.Is(err, types.ErrNetwork) {
		return MsgNetworkError, networkToast
	}
	inline := types.ServerMessage(err, fallback)
	if toastInline {
		return inline, inline
	}
	return inline, fallback
}

func observe(form string, o Outcome) {
	metric.FormSubmissions.WithLabelValues(form, o.String()).Inc()
}

// UpdateController drives the update dialog of an existing dashboard.
type UpdateController struct {
	updater   Updater
	notifier  notify.Notifier
	opts      Options
	onChanged func()

	mu     sync.Mutex
	dialog Dialog[UpdateDraft]
}

// NewUpdateController creates a controller. onChanged is called after every
// successful write and may be nil.
func NewUpdateController(u Updater, n notify.Notifier, opts Options, onChanged func()) *UpdateController {
	return &UpdateController{
		updater:   u,
		notifier:  n,
		opts:      opts,
		onChanged: onChanged,
	}
}

func (c *UpdateController) Open(d types.Dashboard) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dialog = c.dialog.Open(NewUpdateDraft(d))
}

func (c *UpdateController) Edit(field, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	draft, err := c.dialog.Draft.With(field, value)
	if err != nil {
		return err
	}
	c.dialog = c.dialog.Edit(draft)
	return nil
}

// Cancel reports whether the dialog was closed.
func (c *UpdateController) Cancel() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dialog = c.dialog.Cancel()
	return !c.dialog.IsOpen()
}

func (c *UpdateController) State() Dialog[UpdateDraft] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dialog
}

func (c *UpdateController) Submit(ctx context.Context) Outcome {
	c.mu.Lock()
	if c.dialog.Phase != PhaseOpen {
		c.mu.Unlock()
		return OutcomeIgnored
	}
	req, err := ValidateUpdate(c.dialog.Draft, c.opts)
	if err != nil {
		c.dialog = c.dialog.Reject(err.Error())
		c.mu.Unlock()
		observe(formUpdate, OutcomeInvalid)
		return OutcomeInvalid
	}
	c.dialog, _ = c.dialog.BeginSubmit()
	c.mu.Unlock()

	err = c.updater.UpdateDashboard(ctx, req)

	c.mu.Lock()
	if err != nil {
		inline, toast := failureMessages(err, MsgUpdateFailed, MsgUpdateFailed, false)
		c.dialog = c.dialog.Reject(inline)
		c.mu.Unlock()

		logger.Warn("update dashboard failed", zap.String("id", req.ID.String()), zap.Error(err))
		c.notifier.Notify(notify.Error(toast))
		observe(formUpdate, OutcomeFailed)
		return OutcomeFailed
	}
	c.dialog = c.dialog.Succeed()
	c.mu.Unlock()

	c.notifier.Notify(notify.Success(MsgUpdateSucceeded))
	observe(formUpdate, OutcomeSucceeded)
	if c.onChanged != nil {
		c.onChanged()
	}
	return OutcomeSucceeded
}

// CreateController drives the add-dashboard dialog.
type CreateController struct {
	creator   Creator
	notifier  notify.Notifier
	identity  *types.Identity
	opts      Options
	onChanged func()

	mu     sync.Mutex
	dialog Dialog[CreateDraft]
	lastID types.DashboardID
}

func NewCreateController(cr Creator, n notify.Notifier, id *types.Identity, opts Options, onChanged func()) *CreateController {
	return &CreateController{
		creator:   cr,
		notifier:  n,
		identity:  id,
		opts:      opts,
		onChanged: onChanged,
	}
}

// Open starts with an empty draft.
func (c *CreateController) Open() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dialog = c.dialog.Open(CreateDraft{})
}

func (c *CreateController) Edit(field, value string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	draft, err := c.dialog.Draft.With(field, value)
	if err != nil {
		return err
	}
	c.dialog = c.dialog.Edit(draft)
	return nil
}

func (c *CreateController) Cancel() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.dialog = c.dialog.Cancel()
	return !c.dialog.IsOpen()
}

func (c *CreateController) State() Dialog[CreateDraft] {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.dialog
}

// LastCreatedID is the id returned by the latest successful submit.
func (c *CreateController) LastCreatedID() types.DashboardID {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastID
}

func (c *CreateController) Submit(ctx context.Context) Outcome {
	c.mu.Lock()
	if c.dialog.Phase != PhaseOpen {
		c.mu.Unlock()
		return OutcomeIgnored
	}
	req, err := ValidateCreate(c.dialog.Draft, c.identity, c.opts)
	if err != nil {
		c.dialog = c.dialog.Reject(err.Error())
		c.mu.Unlock()
		toast := err.Error()
		if toast == MsgFillAllFields {
			toast = MsgFillRequiredToast
		}
		c.notifier.Notify(notify.Error(toast))
		observe(formCreate, OutcomeInvalid)
		return OutcomeInvalid
	}
	c.dialog, _ = c.dialog.BeginSubmit()
	c.mu.Unlock()

	id, err := c.creator.CreateDashboard(ctx, req)

	c.mu.Lock()
	if err != nil {
		inline, toast := failureMessages(err, MsgCreateFailed, MsgNetworkError, true)
		c.dialog = c.dialog.Reject(inline)
		c.mu.Unlock()

		logger.Warn("create dashboard failed", zap.String("topic", req.Topic), zap.Error(err))
		c.notifier.Notify(notify.Error(toast))
		observe(formCreate, OutcomeFailed)
		return OutcomeFailed
	}
	c.dialog = c.dialog.Succeed()
	c.lastID = id
	c.mu.Unlock()

	c.notifier.Notify(notify.Success(MsgCreateSucceeded))
	observe(formCreate, OutcomeSucceeded)
	if c.onChanged != nil {
		c.onChanged()
	}
	return OutcomeSucceeded
}
