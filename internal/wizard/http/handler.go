package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/probikes/probikes-backend/internal/observability/metrics"
	"github.com/probikes/probikes-backend/internal/pkg/request"
	"github.com/probikes/probikes-backend/internal/pkg/response"
	"github.com/probikes/probikes-backend/internal/wizard"
)

type Handler struct {
	store   *wizard.Store
	metrics *metrics.SiteMetrics
}

func NewHandler(store *wizard.Store, m *metrics.SiteMetrics) *Handler {
	return &Handler{
		store:   store,
		metrics: m,
	}
}

// session resolves the wizard for the :id path parameter, writing the error
// response itself when the session cannot be found.
func (h *Handler) session(c *gin.Context) (*wizard.Wizard, bool) {
	var req request.ByIDRequest
	if err := c.ShouldBindUri(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request", "details": err.Error()})
		return nil, false
	}

	w, err := h.store.Get(req.ID)
	if err != nil {
		response.Error(c, err)
		return nil, false
	}
	return w, true
}

func (h *Handler) Create(c *gin.Context) {
	id, snap := h.store.Create()
	c.JSON(http.StatusCreated, CreateSessionResponse{
		ID:       id,
		Snapshot: NewSnapshotResponse(snap),
	})
}

func (h *Handler) Get(c *gin.Context) {
	w, ok := h.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, NewSnapshotResponse(w.Snapshot()))
}

func (h *Handler) SelectService(c *gin.Context) {
	w, ok := h.session(c)
	if !ok {
		return
	}

	var body SelectServiceRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	snap, err := w.SelectService(body.ServiceID)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewSnapshotResponse(snap))
}

func (h *Handler) SelectDate(c *gin.Context) {
	w, ok := h.session(c)
	if !ok {
		return
	}

	var body SelectDateRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	snap, err := w.SelectDate(body.Date)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewSnapshotResponse(snap))
}

func (h *Handler) SelectTime(c *gin.Context) {
	w, ok := h.session(c)
	if !ok {
		return
	}

	var body SelectTimeRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	snap, err := w.SelectTime(body.Time)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewSnapshotResponse(snap))
}

func (h *Handler) GoBack(c *gin.Context) {
	w, ok := h.session(c)
	if !ok {
		return
	}

	var body GoBackRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	snap, err := w.GoBack(wizard.Step(body.Step))
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewSnapshotResponse(snap))
}

func (h *Handler) UpdateField(c *gin.Context) {
	w, ok := h.session(c)
	if !ok {
		return
	}

	var body UpdateFieldRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	snap, err := w.UpdateField(body.Field, body.Value)
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewSnapshotResponse(snap))
}

// Submit runs validation and starts the simulated confirmation. Validation
// failures come back as 422 with the per-field messages in the snapshot;
// success returns 202 and the client polls the session until it confirms.
func (h *Handler) Submit(c *gin.Context) {
	w, ok := h.session(c)
	if !ok {
		return
	}

	var body SubmitRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	snap, err := w.SubmitDetails(wizard.ContactDetails{
		Name:  body.Name,
		Email: body.Email,
		Phone: body.Phone,
		Notes: body.Notes,
	})
	if err != nil {
		if errors.Is(err, wizard.ErrValidation) {
			h.metrics.ValidationFailed()
			c.JSON(http.StatusUnprocessableEntity, NewSnapshotResponse(snap))
			return
		}
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusAccepted, NewSnapshotResponse(snap))
}

func (h *Handler) Reset(c *gin.Context) {
	w, ok := h.session(c)
	if !ok {
		return
	}

	snap, err := w.Reset()
	if err != nil {
		response.Error(c, err)
		return
	}
	c.JSON(http.StatusOK, NewSnapshotResponse(snap))
}
