package wizard

import (
	"context"
	"fmt"
	"math/rand/v2"
	"slices"
	"sync"
	"time"

	"github.com/probikes/probikes-backend/internal/catalog"
)

const (
	// DefaultSubmitDelay emulates the round trip of a real booking API.
	DefaultSubmitDelay = 1500 * time.Millisecond

	referencePrefix = "BP-"
)

// NewReference produces a booking reference: a fixed prefix followed by a
// uniform 5-digit number.
func NewReference() string {
	return fmt.Sprintf("%s%d", referencePrefix, 10000+rand.IntN(90000))
}

// Option configures a Wizard.
type Option func(*Wizard)

// WithSubmitDelay overrides the simulated confirmation delay.
func WithSubmitDelay(d time.Duration) Option {
	return func(w *Wizard) { w.delay = d }
}

// WithReferenceFunc overrides reference generation, for deterministic tests.
func WithReferenceFunc(fn func() string) Option {
	return func(w *Wizard) { w.newRef = fn }
}

// Wizard drives the four-step booking flow: service, date, time, details.
// Each step's selection is a precondition for the next; out-of-order calls
// are contract violations and come back as AppErrors. All state lives in
// memory for the lifetime of the session.
type Wizard struct {
	mu        sync.Mutex
	catalog   *catalog.Provider
	lifecycle context.Context

	step         Step
	draft        Draft
	busy         bool
	confirmation *Confirmation
	observers    []func(Snapshot)

	delay  time.Duration
	newRef func() string
}

// New creates a Wizard at the service-selection step. The context bounds the
// in-flight submission task: cancelling it abandons a pending confirmation,
// which only happens on process shutdown.
func New(ctx context.Context, cat *catalog.Provider, opts ...Option) *Wizard {
	if ctx == nil {
		ctx = context.Background()
	}
	w := &Wizard{
		catalog:   cat,
		lifecycle: ctx,
		step:      StepService,
		delay:     DefaultSubmitDelay,
		newRef:    NewReference,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Subscribe registers an observer invoked synchronously on every transition
// and exactly once on submission completion.
func (w *Wizard) Subscribe(fn func(Snapshot)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.observers = append(w.observers, fn)
}

// Snapshot returns the current state as an independent copy.
func (w *Wizard) Snapshot() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.snapshotLocked()
}

// SelectService records the chosen service and advances to date selection.
func (w *Wizard) SelectService(serviceID string) (Snapshot, error) {
	w.mu.Lock()
	if w.step != StepService {
		w.mu.Unlock()
		return Snapshot{}, ErrStepOrder
	}
	svc, ok := w.catalog.ServiceByID(serviceID)
	if !ok {
		w.mu.Unlock()
		return Snapshot{}, ErrUnknownService
	}
	w.draft.Service = &svc
	w.step = StepDate
	return w.commit(), nil
}

// SelectDate records the chosen date and advances to time selection.
// The value is a YYYY-MM-DD string resolved against the current date window.
func (w *Wizard) SelectDate(value string) (Snapshot, error) {
	w.mu.Lock()
	if w.step != StepDate {
		w.mu.Unlock()
		return Snapshot{}, ErrStepOrder
	}
	date, ok := w.catalog.DateByValue(value)
	if !ok {
		w.mu.Unlock()
		return Snapshot{}, ErrUnknownDate
	}
	w.draft.Date = &date
	w.step = StepTime
	return w.commit(), nil
}

// SelectTime records the chosen slot and advances to contact details.
func (w *Wizard) SelectTime(label string) (Snapshot, error) {
	w.mu.Lock()
	if w.step != StepTime {
		w.mu.Unlock()
		return Snapshot{}, ErrStepOrder
	}
	if !w.catalog.HasTimeSlot(label) {
		w.mu.Unlock()
		return Snapshot{}, ErrUnknownTime
	}
	w.draft.TimeSlot = label
	w.step = StepDetails
	return w.commit(), nil
}

// GoBack returns to an earlier step. Selections made beyond the target step
// are preserved and stay in place until explicitly re-chosen.
func (w *Wizard) GoBack(target Step) (Snapshot, error) {
	w.mu.Lock()
	if w.busy {
		w.mu.Unlock()
		return Snapshot{}, ErrSubmitting
	}
	if target < StepService || target > StepTime || w.step == StepConfirmed || w.step <= target {
		w.mu.Unlock()
		return Snapshot{}, ErrStepOrder
	}
	w.step = target
	return w.commit(), nil
}

// UpdateField sets a single contact field and clears any stale error for it,
// independent of full revalidation.
func (w *Wizard) UpdateField(field, value string) (Snapshot, error) {
	w.mu.Lock()
	if w.step != StepDetails {
		w.mu.Unlock()
		return Snapshot{}, ErrStepOrder
	}
	if w.busy {
		w.mu.Unlock()
		return Snapshot{}, ErrSubmitting
	}
	switch field {
	case "name":
		w.draft.Contact.Name = value
	case "email":
		w.draft.Contact.Email = value
	case "phone":
		w.draft.Contact.Phone = value
	case "notes":
		w.draft.Contact.Notes = value
	default:
		w.mu.Unlock()
		return Snapshot{}, ErrUnknownField
	}
	delete(w.draft.FieldErrors, field)
	return w.commit(), nil
}

// SubmitDetails validates the contact details and, when they pass, starts the
// simulated confirmation. While the submission is in flight the wizard is
// busy and re-submission is rejected; completion transitions to Confirmed.
// A validation failure keeps the wizard at the details step, with the failing
// fields reported both in the returned snapshot and as ErrValidation.
func (w *Wizard) SubmitDetails(details ContactDetails) (Snapshot, error) {
	w.mu.Lock()
	if w.step != StepDetails {
		w.mu.Unlock()
		return Snapshot{}, ErrStepOrder
	}
	if w.busy {
		w.mu.Unlock()
		return Snapshot{}, ErrSubmitting
	}

	w.draft.Contact = details

	if errs := Validate(details); len(errs) > 0 {
		w.draft.FieldErrors = errs
		return w.commit(), ErrValidation
	}

	w.draft.FieldErrors = nil
	w.busy = true
	go w.completeAfterDelay(w.lifecycle)
	return w.commit(), nil
}

// Reset leaves the confirmed state, clearing the draft and the confirmation.
func (w *Wizard) Reset() (Snapshot, error) {
	w.mu.Lock()
	if w.step != StepConfirmed {
		w.mu.Unlock()
		return Snapshot{}, ErrNotConfirmed
	}
	w.draft = Draft{}
	w.confirmation = nil
	w.step = StepService
	return w.commit(), nil
}

// completeAfterDelay is the submission simulator: after a fixed delay the
// booking unconditionally succeeds with a freshly generated reference.
func (w *Wizard) completeAfterDelay(ctx context.Context) {
	timer := time.NewTimer(w.delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return
	case <-timer.C:
	}

	w.mu.Lock()
	w.confirmation = &Confirmation{
		Reference: w.newRef(),
		Service:   *w.draft.Service,
		Date:      *w.draft.Date,
		TimeSlot:  w.draft.TimeSlot,
		Email:     w.draft.Contact.Email,
	}
	w.busy = false
	w.step = StepConfirmed
	w.commit()
}

// commit builds a snapshot, releases the lock, and notifies observers.
// Callers must hold w.mu.
func (w *Wizard) commit() Snapshot {
	snap := w.snapshotLocked()
	observers := slices.Clone(w.observers)
	w.mu.Unlock()

	for _, fn := range observers {
		fn(snap)
	}
	return snap
}

// snapshotLocked deep-copies the current state. Callers must hold w.mu.
func (w *Wizard) snapshotLocked() Snapshot {
	snap := Snapshot{
		Step: w.step,
		Busy: w.busy,
		Draft: Draft{
			TimeSlot: w.draft.TimeSlot,
			Contact:  w.draft.Contact,
		},
	}
	if w.draft.Service != nil {
		svc := *w.draft.Service
		snap.Draft.Service = &svc
	}
	if w.draft.Date != nil {
		d := *w.draft.Date
		snap.Draft.Date = &d
	}
	if len(w.draft.FieldErrors) > 0 {
		snap.Draft.FieldErrors = make(map[string]string, len(w.draft.FieldErrors))
		for k, v := range w.draft.FieldErrors {
			snap.Draft.FieldErrors[k] = v
		}
	}
	if w.confirmation != nil {
		conf := *w.confirmation
		snap.Confirmation = &conf
	}
	return snap
}
