package wizard

import (
	"net/http"

	"github.com/probikes/probikes-backend/internal/catalog"
	"github.com/probikes/probikes-backend/internal/pkg/apperror"
)

var (
	ErrSessionNotFound = apperror.New(http.StatusNotFound, "booking session not found")
	ErrStepOrder       = apperror.New(http.StatusConflict, "step is not available yet")
	ErrSubmitting      = apperror.New(http.StatusConflict, "a submission is already in progress")
	ErrNotConfirmed    = apperror.New(http.StatusConflict, "no confirmed booking to reset")
	ErrValidation      = apperror.New(http.StatusUnprocessableEntity, "contact details failed validation")
	ErrUnknownService  = apperror.New(http.StatusBadRequest, "unknown service")
	ErrUnknownDate     = apperror.New(http.StatusBadRequest, "date is not available")
	ErrUnknownTime     = apperror.New(http.StatusBadRequest, "time slot is not available")
	ErrUnknownField    = apperror.New(http.StatusBadRequest, "unknown contact field")
)

// Step identifies the wizard's current position in the booking flow.
type Step int

const (
	StepService Step = iota + 1
	StepDate
	StepTime
	StepDetails
	StepConfirmed
)

func (s Step) String() string {
	switch s {
	case StepService:
		return "service"
	case StepDate:
		return "date"
	case StepTime:
		return "time"
	case StepDetails:
		return "details"
	case StepConfirmed:
		return "confirmed"
	default:
		return "unknown"
	}
}

// ContactDetails is the customer input collected at the final step.
type ContactDetails struct {
	Name  string
	Email string
	Phone string
	Notes string
}

// Draft is the in-progress booking. It is owned exclusively by the Wizard
// and reset to empty on completion or explicit restart.
type Draft struct {
	Service     *catalog.ServiceOffering
	Date        *catalog.DateOption
	TimeSlot    string
	Contact     ContactDetails
	FieldErrors map[string]string
}

// Confirmation is the read-only record produced by a successful submission.
type Confirmation struct {
	Reference string
	Service   catalog.ServiceOffering
	Date      catalog.DateOption
	TimeSlot  string
	Email     string
}

// Snapshot is an immutable view of the wizard handed to observers and the
// HTTP layer. Maps and pointers are copies; mutating a snapshot has no effect.
type Snapshot struct {
	Step         Step
	Draft        Draft
	Busy         bool
	Confirmation *Confirmation
}
