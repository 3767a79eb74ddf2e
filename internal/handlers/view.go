package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	dom "Calendar/internal/domain"
	"Calendar/internal/dto"
	"Calendar/internal/service"
	"Calendar/internal/session"

	"github.com/gin-gonic/gin"
)

// ViewService is the part of service.ViewService the handlers use.
type ViewService interface {
	View(ctx context.Context, sessionID string) (service.Snapshot, error)
	SelectPreset(ctx context.Context, sessionID, key string) (service.Snapshot, error)
	SelectCustomEndpoint(ctx context.Context, sessionID, which string, value *time.Time) (service.Snapshot, error)
	Reset(ctx context.Context, sessionID string) error
	Ranges(ctx context.Context, sessionID string) ([]service.RangeOption, error)
}

type ViewHandler struct {
	svc ViewService
	loc *time.Location
}

// NewViewHandler returns a ViewHandler. Dates without a zone are read in loc.
func NewViewHandler(svc ViewService, loc *time.Location) *ViewHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &ViewHandler{svc: svc, loc: loc}
}

// Get godoc
// @Summary      Current range and filtered records
// @Tags         view
// @Produce      json
// @Success      200  {object}  dto.ViewResponse
// @Failure      502  {object}  map[string]string
// @Router       /view [get]
func (h *ViewHandler) Get(c *gin.Context) {
	snap, err := h.svc.View(c.Request.Context(), session.IDFromContext(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, h.viewToResponse(snap))
}

// SelectPreset godoc
// @Summary      Select a named range
// @Tags         view
// @Accept       json
// @Produce      json
// @Param        body  body      dto.SelectPresetRequest  true  "Range key"
// @Success      200   {object}  dto.ViewResponse
// @Failure      400   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Router       /view/preset [post]
func (h *ViewHandler) SelectPreset(c *gin.Context) {
	var req dto.SelectPresetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	snap, err := h.svc.SelectPreset(c.Request.Context(), session.IDFromContext(c), req.Key)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, h.viewToResponse(snap))
}

// SelectCustom godoc
// @Summary      Set one end of a custom range
// @Description  Filtering is withheld until both ends are set. A date-only end covers the whole day.
// @Tags         view
// @Accept       json
// @Produce      json
// @Param        body  body      dto.SelectCustomRequest  true  "Endpoint"
// @Success      200   {object}  dto.ViewResponse
// @Failure      400   {object}  map[string]string
// @Failure      502   {object}  map[string]string
// @Router       /view/custom [post]
func (h *ViewHandler) SelectCustom(c *gin.Context) {
	var req dto.SelectCustomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	value := req.Value.In(h.loc, req.Which == "end")
	snap, err := h.svc.SelectCustomEndpoint(c.Request.Context(), session.IDFromContext(c), req.Which, value)
	if err != nil {
		h.fail(c, err)
		return
	}
	c.JSON(http.StatusOK, h.viewToResponse(snap))
}

// Reset godoc
// @Summary      Forget the current selection
// @Tags         view
// @Success      204
// @Failure      500  {object}  map[string]string
// @Router       /view [delete]
func (h *ViewHandler) Reset(c *gin.Context) {
	if err := h.svc.Reset(c.Request.Context(), session.IDFromContext(c)); err != nil {
		h.fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// Ranges godoc
// @Summary      List the available ranges
// @Tags         view
// @Produce      json
// @Success      200  {object}  dto.ListRangesResponse
// @Failure      502  {object}  map[string]string
// @Router       /ranges [get]
func (h *ViewHandler) Ranges(c *gin.Context) {
	opts, err := h.svc.Ranges(c.Request.Context(), session.IDFromContext(c))
	if err != nil {
		h.fail(c, err)
		return
	}
	out := make([]dto.RangeResponse, len(opts))
	for i, o := range opts {
		out[i] = dto.RangeResponse{
			Key:       o.Key.String(),
			Label:     o.Label,
			Available: o.Available,
			Selected:  o.Selected,
		}
		if o.Boundary != nil {
			out[i].StartDate = o.Boundary.StartDate
			out[i].EndDate = o.Boundary.EndDate
		}
	}
	c.JSON(http.StatusOK, dto.ListRangesResponse{Items: out})
}

func (h *ViewHandler) fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrUnknownRange), errors.Is(err, service.ErrInvalidEndpoint):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrRangeUnavailable):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrSourceFailed):
		log.Printf("view: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "records unavailable"})
	default:
		log.Printf("view: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func (h *ViewHandler) viewToResponse(s service.Snapshot) dto.ViewResponse {
	resp := dto.ViewResponse{
		Boundary: dto.BoundaryResponse{
			StartDate: s.Boundary.StartDate,
			EndDate:   s.Boundary.EndDate,
			Key:       s.Boundary.Key.String(),
		},
		PendingCustom:    s.PendingCustom,
		AllTimeAvailable: s.AllTimeAvailable,
		Count:            len(s.Items),
		Items:            h.recordsToResponses(s.Items),
	}
	if s.ActivePreset != "" {
		k := s.ActivePreset.String()
		resp.ActivePreset = &k
	}
	if s.Extent != nil {
		resp.Extent = &dto.ExtentResponse{Earliest: s.Extent.Earliest, Latest: s.Extent.Latest}
	}
	return resp
}

func (h *ViewHandler) recordsToResponses(list []dom.Record) []dto.RecordResponse {
	out := make([]dto.RecordResponse, len(list))
	for i, r := range list {
		out[i] = dto.RecordResponse{
			ID:        r.ID,
			Name:      r.Name,
			CreatedAt: r.CreatedAt,
			Date:      r.CreatedAt.In(h.loc).Format("2006-01-02"),
		}
	}
	return out
}
