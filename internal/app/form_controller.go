package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jsamuelsen11/disaster-response-web/internal/domain"
	"github.com/jsamuelsen11/disaster-response-web/internal/domain/form"
	"github.com/jsamuelsen11/disaster-response-web/internal/domain/resource"
	"github.com/jsamuelsen11/disaster-response-web/internal/platform/telemetry"
	"github.com/jsamuelsen11/disaster-response-web/internal/ports"
)

// Messages shown above a form.
const (
	MsgNotConfigured = "URL da API não configurada."
	MsgCheckFields   = "Verifique os campos destacados."
	MsgReadOnlyForm  = "Este recurso não pode ser editado."
)

var (
	// ErrSubmitInFlight is returned by Submit while a previous submission of
	// the same controller has not finished.
	ErrSubmitInFlight = errors.New("form submission already in progress")

	// ErrLoadInFlight is returned by Start while the record is being fetched.
	ErrLoadInFlight = errors.New("form load already in progress")

	// ErrNotReady is returned by Submit before the form data has loaded or
	// after the load failed. The load error, if any, is left in place.
	ErrNotReady = errors.New("form data not loaded")
)

// LoadState tracks the initial data of a form.
type LoadState int

const (
	LoadIdle LoadState = iota
	Loading
	Ready
	LoadFailed
)

func (s LoadState) String() string {
	switch s {
	case Loading:
		return "loading"
	case Ready:
		return "ready"
	case LoadFailed:
		return "load_error"
	default:
		return "idle"
	}
}

// SubmitState tracks the latest submission of a form.
type SubmitState int

const (
	SubmitIdle SubmitState = iota
	Submitting
	SubmitSucceeded
	SubmitFailed
)

func (s SubmitState) String() string {
	switch s {
	case Submitting:
		return "submitting"
	case SubmitSucceeded:
		return "success"
	case SubmitFailed:
		return "error"
	default:
		return "idle"
	}
}

// Navigation is the action requested after a successful submission: go to
// Path once Delay has elapsed. The controller never waits itself.
type Navigation struct {
	Path  string
	Delay time.Duration
}

// SubmissionRecorder counts form submissions. *telemetry.Metrics satisfies it.
type SubmissionRecorder interface {
	RecordFormSubmission(ctx context.Context, resource, mode, result string)
}

// FormDeps are the collaborators shared by every FormController.
type FormDeps struct {
	Service ports.ResourceService
	// Configured is false when no API base URL is set.
	Configured    bool
	RedirectDelay time.Duration
	Recorder      SubmissionRecorder
	Logger        *slog.Logger
}

// FormView is a snapshot of a controller for rendering.
type FormView struct {
	Resource    *resource.Resource
	Mode        resource.Mode
	ID          int64
	Load        LoadState
	Submit      SubmitState
	State       *form.State
	Error       string
	FieldErrors map[string]string
	Success     string
	// Err is the cause behind Error, for callers choosing a status code.
	Err error
}

// FormController drives one create or edit form. It is created per page
// request and owns its FormState; load and submit are each guarded by a busy
// flag so at most one of each is in flight.
type FormController struct {
	deps   FormDeps
	res    *resource.Resource
	mode   resource.Mode
	schema *form.Schema
	id     int64
	idOK   bool

	onSuccess func(Navigation)

	mu          sync.Mutex
	load        LoadState
	submit      SubmitState
	state       *form.State
	errMsg      string
	err         error
	fieldErrors map[string]string
	success     string
}

// NewFormController creates a controller for res in mode. rawID is the id
// path segment of edit pages and is ignored for create. onSuccess, if set,
// receives the post-success navigation.
//
// It returns domain.ErrReadOnly when res has no form for mode.
func NewFormController(deps FormDeps, res *resource.Resource, mode resource.Mode, rawID string, onSuccess func(Navigation)) (*FormController, error) {
	schema := res.Schema(mode)
	if schema == nil {
		return nil, fmt.Errorf("%s %s form: %w", res.Slug, mode, domain.ErrReadOnly)
	}
	if deps.Logger == nil {
		deps.Logger = slog.New(slog.DiscardHandler)
	}

	c := &FormController{
		deps:      deps,
		res:       res,
		mode:      mode,
		schema:    schema,
		onSuccess: onSuccess,
		state:     schema.Defaults(),
	}
	if mode == resource.ModeEdit {
		c.id, c.idOK = form.ParseID(rawID)
	}
	return c, nil
}

// Start loads the initial form data: schema defaults for create, the stored
// record for edit. Failures leave the controller in LoadFailed with a display
// message; Start only returns an error when a load is already running.
func (c *FormController) Start(ctx context.Context) error {
	c.mu.Lock()
	if c.load == Loading {
		c.mu.Unlock()
		return ErrLoadInFlight
	}
	c.errMsg = ""
	c.err = nil

	switch {
	case c.mode == resource.ModeCreate:
		c.state = c.schema.Defaults()
		c.load = Ready
		c.mu.Unlock()
		return nil
	case !c.idOK:
		c.failLoad(c.res.InvalidIDMessage(), c.invalidIDError())
		c.mu.Unlock()
		return nil
	case !c.deps.Configured:
		c.failLoad(MsgNotConfigured, domain.ErrNotConfigured)
		c.mu.Unlock()
		return nil
	}
	c.load = Loading
	c.mu.Unlock()

	rec, err := c.deps.Service.Get(ctx, c.res, c.id)

	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.failLoad(c.loadErrorMessage(ctx, err), err)
		return nil
	}
	c.state = form.StateFromRecord(c.schema, rec)
	c.load = Ready
	return nil
}

// Hydrate replaces the form state with st, typically rebuilt from posted
// form values, and marks the form Ready.
func (c *FormController) Hydrate(st *form.State) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state = st.Clone()
	c.load = Ready
	if c.mode == resource.ModeEdit && !c.idOK {
		c.failLoad(c.res.InvalidIDMessage(), c.invalidIDError())
	}
}

// Submit normalizes the current state and sends it to the API. The checks
// run in order, each stopping the submission: busy flag, load state, edit id,
// configuration, validation. A validation failure makes no network call.
//
// On success the state is reset to defaults (create only), the success
// message is stored and the post-success navigation is handed to the
// callback. The returned error is nil on success.
func (c *FormController) Submit(ctx context.Context) error {
	c.mu.Lock()
	if c.submit == Submitting {
		c.mu.Unlock()
		return ErrSubmitInFlight
	}
	if c.load != Ready {
		c.mu.Unlock()
		return ErrNotReady
	}
	c.submit = Submitting
	c.errMsg = ""
	c.err = nil
	c.fieldErrors = nil
	c.success = ""
	st := c.state.Clone()
	c.mu.Unlock()

	if c.mode == resource.ModeEdit && !c.idOK {
		return c.finishFailed(c.res.InvalidIDMessage(), nil, c.invalidIDError())
	}
	if !c.deps.Configured {
		return c.finishFailed(MsgNotConfigured, nil, domain.ErrNotConfigured)
	}

	payload, err := form.Normalize(c.schema, st)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			c.record(ctx, telemetry.ResultValidationError)
			return c.finishFailed(MsgCheckFields, verr.Fields, err)
		}
		return c.finishFailed(c.res.UnknownErrorMessage(c.mode), nil, err)
	}

	var rec domain.Record
	if c.mode == resource.ModeEdit {
		rec, err = c.deps.Service.Update(ctx, c.res, c.id, payload)
	} else {
		rec, err = c.deps.Service.Create(ctx, c.res, payload)
	}
	if err != nil {
		c.record(ctx, telemetry.ResultError)
		msg, fields := c.submitErrorMessage(ctx, err)
		return c.finishFailed(msg, fields, err)
	}

	c.record(ctx, telemetry.ResultSuccess)
	c.finishSucceeded(c.successMessage(rec, payload))
	if c.onSuccess != nil {
		c.onSuccess(Navigation{Path: c.res.Path(), Delay: c.deps.RedirectDelay})
	}
	return nil
}

// View returns a snapshot of the controller.
func (c *FormController) View() FormView {
	c.mu.Lock()
	defer c.mu.Unlock()

	return FormView{
		Resource:    c.res,
		Mode:        c.mode,
		ID:          c.id,
		Load:        c.load,
		Submit:      c.submit,
		State:       c.state.Clone(),
		Error:       c.errMsg,
		FieldErrors: c.fieldErrors,
		Success:     c.success,
		Err:         c.err,
	}
}

// failLoad must be called with c.mu held.
func (c *FormController) failLoad(msg string, err error) {
	c.load = LoadFailed
	c.errMsg = msg
	c.err = err
}

func (c *FormController) invalidIDError() error {
	return fmt.Errorf("%s: invalid id in url: %w", c.res.Slug, domain.ErrValidation)
}

func (c *FormController) finishFailed(msg string, fields map[string]string, err error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.submit = SubmitFailed
	c.errMsg = msg
	c.err = err
	c.fieldErrors = fields
	return err
}

func (c *FormController) finishSucceeded(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.submit = SubmitSucceeded
	c.success = msg
	if c.mode == resource.ModeCreate {
		c.state = c.schema.Defaults()
	}
}

func (c *FormController) loadErrorMessage(ctx context.Context, err error) string {
	if errors.Is(err, domain.ErrNotConfigured) {
		return MsgNotConfigured
	}
	if detail, ok := domain.DetailOf(err); ok {
		return c.res.LoadFailedMessage(detail)
	}
	c.deps.Logger.ErrorContext(ctx, "unexpected form load error",
		slog.String("operation", "FormController.Start"),
		slog.String("resource", c.res.Slug),
		slog.Int64("id", c.id),
		slog.Any("error", err),
	)
	return c.res.LoadUnknownErrorMessage()
}

func (c *FormController) submitErrorMessage(ctx context.Context, err error) (string, map[string]string) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return MsgCheckFields, verr.Fields
	case errors.Is(err, domain.ErrNotConfigured):
		return MsgNotConfigured, nil
	case errors.Is(err, domain.ErrReadOnly):
		return MsgReadOnlyForm, nil
	}
	if detail, ok := domain.DetailOf(err); ok {
		return detail, nil
	}
	c.deps.Logger.ErrorContext(ctx, "unexpected form submit error",
		slog.String("operation", "FormController.Submit"),
		slog.String("resource", c.res.Slug),
		slog.String("mode", c.mode.String()),
		slog.Any("error", err),
	)
	return c.res.UnknownErrorMessage(c.mode), nil
}

// successMessage names the saved record. The API may answer an update
// without a body, so the title and id fall back to what was submitted.
func (c *FormController) successMessage(rec domain.Record, payload form.Payload) string {
	id, ok := c.res.RecordID(rec)
	if !ok {
		id = c.id
	}
	title := c.res.RecordTitle(rec, domain.Record(payload), domain.Record{c.res.IDField: id})

	if c.mode == resource.ModeEdit {
		return c.res.UpdatedMessage(title, id)
	}
	return c.res.CreatedMessage(title, id)
}

func (c *FormController) record(ctx context.Context, result string) {
	if c.deps.Recorder == nil {
		return
	}
	c.deps.Recorder.RecordFormSubmission(ctx, c.res.Slug, c.mode.String(), result)
}
