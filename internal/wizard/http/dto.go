package http

import (
	"github.com/probikes/probikes-backend/internal/wizard"
)

// ServiceView is the wizard's view of a selected offering.
type ServiceView struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Duration string `json:"duration"`
	Price    int    `json:"price"`
}

// DateView pairs the machine value with the display label.
type DateView struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

type ContactView struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Notes string `json:"notes"`
}

type ConfirmationView struct {
	Reference   string `json:"reference"`
	ServiceName string `json:"service_name"`
	Price       int    `json:"price"`
	DateLabel   string `json:"date_label"`
	Time        string `json:"time"`
	Email       string `json:"email"`
}

// SnapshotResponse is the full wizard state returned after every command.
type SnapshotResponse struct {
	Step         string            `json:"step"`
	Busy         bool              `json:"busy"`
	Service      *ServiceView      `json:"service,omitempty"`
	Date         *DateView         `json:"date,omitempty"`
	Time         string            `json:"time,omitempty"`
	Contact      ContactView       `json:"contact"`
	FieldErrors  map[string]string `json:"field_errors,omitempty"`
	Confirmation *ConfirmationView `json:"confirmation,omitempty"`
}

func NewSnapshotResponse(snap wizard.Snapshot) SnapshotResponse {
	resp := SnapshotResponse{
		Step: snap.Step.String(),
		Busy: snap.Busy,
		Time: snap.Draft.TimeSlot,
		Contact: ContactView{
			Name:  snap.Draft.Contact.Name,
			Email: snap.Draft.Contact.Email,
			Phone: snap.Draft.Contact.Phone,
			Notes: snap.Draft.Contact.Notes,
		},
		FieldErrors: snap.Draft.FieldErrors,
	}

	if svc := snap.Draft.Service; svc != nil {
		resp.Service = &ServiceView{
			ID:       svc.ID,
			Name:     svc.Name,
			Duration: svc.Duration,
			Price:    svc.Price,
		}
	}
	if d := snap.Draft.Date; d != nil {
		resp.Date = &DateView{
			Value: d.Date.Format("2006-01-02"),
			Label: d.Label,
		}
	}
	if conf := snap.Confirmation; conf != nil {
		resp.Confirmation = &ConfirmationView{
			Reference:   conf.Reference,
			ServiceName: conf.Service.Name,
			Price:       conf.Service.Price,
			DateLabel:   conf.Date.Label,
			Time:        conf.TimeSlot,
			Email:       conf.Email,
		}
	}

	return resp
}

// CreateSessionResponse returns the new session's ID with its initial state.
type CreateSessionResponse struct {
	ID       string           `json:"id"`
	Snapshot SnapshotResponse `json:"snapshot"`
}

type SelectServiceRequest struct {
	ServiceID string `json:"service_id" binding:"required"`
}

type SelectDateRequest struct {
	Date string `json:"date" binding:"required,datetime=2006-01-02"`
}

type SelectTimeRequest struct {
	Time string `json:"time" binding:"required"`
}

type GoBackRequest struct {
	Step int `json:"step" binding:"required,min=1,max=3"`
}

type UpdateFieldRequest struct {
	Field string `json:"field" binding:"required,oneof=name email phone notes"`
	Value string `json:"value"`
}

// SubmitRequest intentionally carries no binding rules: the wizard's own
// validator owns the per-field messages.
type SubmitRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Notes string `json:"notes"`
}
