package wizard

import (
	"context"
	"fmt"
	"regexp"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/probikes/probikes-backend/internal/catalog"
)

// Monday 2026-02-02: the date window starts at Tue Feb 3.
func testClock() time.Time {
	return time.Date(2026, 2, 2, 10, 0, 0, 0, time.UTC)
}

func newTestWizard(opts ...Option) *Wizard {
	cat := catalog.NewProvider(testClock)
	return New(context.Background(), cat, opts...)
}

func validDetails() ContactDetails {
	return ContactDetails{Name: "Jo Rider", Email: "jo@example.com", Phone: "(555) 123-4567"}
}

// advanceToDetails walks a wizard through the first three steps.
func advanceToDetails(t *testing.T, w *Wizard) {
	t.Helper()
	_, err := w.SelectService("basic-tune")
	require.NoError(t, err)
	_, err = w.SelectDate("2026-02-03")
	require.NoError(t, err)
	_, err = w.SelectTime("9:30")
	require.NoError(t, err)
}

func confirm(t *testing.T, w *Wizard) Snapshot {
	t.Helper()
	require.Eventually(t, func() bool {
		return w.Snapshot().Step == StepConfirmed
	}, time.Second, 5*time.Millisecond)
	return w.Snapshot()
}

func TestHappyPath(t *testing.T) {
	w := newTestWizard(WithSubmitDelay(10 * time.Millisecond))

	snap := w.Snapshot()
	assert.Equal(t, StepService, snap.Step)
	assert.Nil(t, snap.Draft.Service)

	snap, err := w.SelectService("full-service")
	require.NoError(t, err)
	assert.Equal(t, StepDate, snap.Step)
	require.NotNil(t, snap.Draft.Service)
	assert.Equal(t, 129, snap.Draft.Service.Price)

	snap, err = w.SelectDate("2026-02-04")
	require.NoError(t, err)
	assert.Equal(t, StepTime, snap.Step)
	require.NotNil(t, snap.Draft.Date)
	assert.Equal(t, "Wed, Feb 4", snap.Draft.Date.Label)

	snap, err = w.SelectTime("13:00")
	require.NoError(t, err)
	assert.Equal(t, StepDetails, snap.Step)
	assert.Equal(t, "13:00", snap.Draft.TimeSlot)

	snap, err = w.SubmitDetails(validDetails())
	require.NoError(t, err)
	assert.True(t, snap.Busy)
	assert.Nil(t, snap.Confirmation)

	final := confirm(t, w)
	assert.False(t, final.Busy)
	require.NotNil(t, final.Confirmation)
	assert.Equal(t, "full-service", final.Confirmation.Service.ID)
	assert.Equal(t, "13:00", final.Confirmation.TimeSlot)
	assert.Equal(t, "jo@example.com", final.Confirmation.Email)
	assert.Regexp(t, regexp.MustCompile(`^BP-\d{5}$`), final.Confirmation.Reference)
}

func TestStepPreconditions(t *testing.T) {
	w := newTestWizard()

	// Nothing past step 1 is reachable without the earlier selections.
	_, err := w.SelectDate("2026-02-03")
	assert.ErrorIs(t, err, ErrStepOrder)
	_, err = w.SelectTime("9:00")
	assert.ErrorIs(t, err, ErrStepOrder)
	_, err = w.SubmitDetails(validDetails())
	assert.ErrorIs(t, err, ErrStepOrder)
	_, err = w.Reset()
	assert.ErrorIs(t, err, ErrNotConfirmed)
	_, err = w.GoBack(StepService)
	assert.ErrorIs(t, err, ErrStepOrder)

	// The details step is only reachable with all three selections made.
	advanceToDetails(t, w)
	snap := w.Snapshot()
	require.Equal(t, StepDetails, snap.Step)
	assert.NotNil(t, snap.Draft.Service)
	assert.NotNil(t, snap.Draft.Date)
	assert.NotEmpty(t, snap.Draft.TimeSlot)
}

func TestUnknownSelectionsRejected(t *testing.T) {
	w := newTestWizard()

	_, err := w.SelectService("rocket-polish")
	assert.ErrorIs(t, err, ErrUnknownService)

	_, err = w.SelectService("basic-tune")
	require.NoError(t, err)

	// Sunday Feb 8 is inside the window but never offered.
	_, err = w.SelectDate("2026-02-08")
	assert.ErrorIs(t, err, ErrUnknownDate)

	_, err = w.SelectDate("2026-02-03")
	require.NoError(t, err)

	_, err = w.SelectTime("12:00")
	assert.ErrorIs(t, err, ErrUnknownTime)
}

func TestGoBackPreservesLaterSelections(t *testing.T) {
	w := newTestWizard()
	advanceToDetails(t, w)

	snap, err := w.GoBack(StepService)
	require.NoError(t, err)
	assert.Equal(t, StepService, snap.Step)

	// Selections beyond the target step stay until explicitly re-chosen.
	require.NotNil(t, snap.Draft.Service)
	require.NotNil(t, snap.Draft.Date)
	assert.Equal(t, "9:30", snap.Draft.TimeSlot)

	// Re-choosing the service walks forward again over the kept values.
	snap, err = w.SelectService("suspension")
	require.NoError(t, err)
	assert.Equal(t, StepDate, snap.Step)
	assert.Equal(t, "suspension", snap.Draft.Service.ID)
	assert.Equal(t, "9:30", snap.Draft.TimeSlot)
}

func TestValidationFailureStaysOnDetails(t *testing.T) {
	w := newTestWizard()
	advanceToDetails(t, w)

	snap, err := w.SubmitDetails(ContactDetails{Name: "Jo", Email: "not-an-email", Phone: "12345"})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, StepDetails, snap.Step)
	assert.False(t, snap.Busy)
	assert.Equal(t, map[string]string{
		"email": "Email is invalid",
		"phone": "Phone number must be 10 digits",
	}, snap.Draft.FieldErrors)

	// A second failing pass replaces the error set instead of accumulating.
	snap, err = w.SubmitDetails(ContactDetails{Email: "jo@example.com", Phone: "5551234567"})
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, map[string]string{"name": "Name is required"}, snap.Draft.FieldErrors)
}

func TestUpdateFieldClearsItsError(t *testing.T) {
	w := newTestWizard()
	advanceToDetails(t, w)

	_, err := w.SubmitDetails(ContactDetails{})
	require.ErrorIs(t, err, ErrValidation)

	snap, err := w.UpdateField("email", "jo@example.com")
	require.NoError(t, err)

	// Only the edited field's error clears; no revalidation happened.
	assert.NotContains(t, snap.Draft.FieldErrors, "email")
	assert.Contains(t, snap.Draft.FieldErrors, "name")
	assert.Contains(t, snap.Draft.FieldErrors, "phone")
	assert.Equal(t, "jo@example.com", snap.Draft.Contact.Email)

	_, err = w.UpdateField("shoe-size", "44")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestDoubleSubmitProducesOneConfirmation(t *testing.T) {
	w := newTestWizard(WithSubmitDelay(30 * time.Millisecond))
	advanceToDetails(t, w)

	var mu sync.Mutex
	confirmations := 0
	w.Subscribe(func(snap Snapshot) {
		if snap.Step == StepConfirmed {
			mu.Lock()
			confirmations++
			mu.Unlock()
		}
	})

	snap, err := w.SubmitDetails(validDetails())
	require.NoError(t, err)
	require.True(t, snap.Busy)

	// Rapid re-submission while busy is rejected outright.
	_, err = w.SubmitDetails(validDetails())
	assert.ErrorIs(t, err, ErrSubmitting)
	_, err = w.GoBack(StepService)
	assert.ErrorIs(t, err, ErrSubmitting)
	_, err = w.UpdateField("name", "someone else")
	assert.ErrorIs(t, err, ErrSubmitting)

	confirm(t, w)
	time.Sleep(20 * time.Millisecond) // would catch a stray second completion

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, 1, confirmations)
}

func TestResetClearsEverything(t *testing.T) {
	refs := 0
	w := newTestWizard(
		WithSubmitDelay(5*time.Millisecond),
		WithReferenceFunc(func() string {
			refs++
			return fmt.Sprintf("BP-%05d", 10000+refs)
		}),
	)

	advanceToDetails(t, w)
	_, err := w.SubmitDetails(validDetails())
	require.NoError(t, err)
	first := confirm(t, w)

	snap, err := w.Reset()
	require.NoError(t, err)
	assert.Equal(t, StepService, snap.Step)
	assert.Nil(t, snap.Draft.Service)
	assert.Nil(t, snap.Draft.Date)
	assert.Empty(t, snap.Draft.TimeSlot)
	assert.Equal(t, ContactDetails{}, snap.Draft.Contact)
	assert.Empty(t, snap.Draft.FieldErrors)
	assert.Nil(t, snap.Confirmation)

	// A second full booking generates a fresh reference.
	advanceToDetails(t, w)
	_, err = w.SubmitDetails(validDetails())
	require.NoError(t, err)
	second := confirm(t, w)

	assert.NotEqual(t, first.Confirmation.Reference, second.Confirmation.Reference)
	assert.Equal(t, 2, refs)
}

func TestObserversFireSynchronouslyPerTransition(t *testing.T) {
	w := newTestWizard()

	var steps []Step
	w.Subscribe(func(snap Snapshot) {
		steps = append(steps, snap.Step)
	})

	advanceToDetails(t, w)

	// One notification per transition, in order, on the calling goroutine.
	assert.Equal(t, []Step{StepDate, StepTime, StepDetails}, steps)
}

func TestNewReferenceRange(t *testing.T) {
	pattern := regexp.MustCompile(`^BP-(\d{5})$`)
	for range 1000 {
		ref := NewReference()
		m := pattern.FindStringSubmatch(ref)
		require.NotNil(t, m, "reference %q does not match the expected shape", ref)
	}
}
