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

	"github.com/gin-gonic/gin"
)

// RecordService is the part of service.ViewService that manages the dataset.
type RecordService interface {
	Reload(ctx context.Context) error
	CreateRecord(ctx context.Context, id, name string, createdAt time.Time) (dom.Record, error)
}

type RecordHandler struct {
	svc RecordService
	loc *time.Location
}

func NewRecordHandler(svc RecordService, loc *time.Location) *RecordHandler {
	if loc == nil {
		loc = time.UTC
	}
	return &RecordHandler{svc: svc, loc: loc}
}

// Reload godoc
// @Summary      Reload records from the source
// @Tags         records
// @Success      204
// @Failure      500  {object}  map[string]string
// @Router       /records/reload [post]
func (h *RecordHandler) Reload(c *gin.Context) {
	if err := h.svc.Reload(c.Request.Context()); err != nil {
		log.Printf("records reload: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "reload failed"})
		return
	}
	c.Status(http.StatusNoContent)
}

// Create godoc
// @Summary      Add a record
// @Tags         records
// @Accept       json
// @Produce      json
// @Param        body  body      dto.CreateRecordRequest  true  "Record"
// @Success      201   {object}  dto.RecordResponse
// @Failure      400   {object}  map[string]string
// @Failure      405   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /records [post]
func (h *RecordHandler) Create(c *gin.Context) {
	var req dto.CreateRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	createdAt := req.CreatedAt.In(h.loc, false)
	if createdAt == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "createdAt is required"})
		return
	}
	r, err := h.svc.CreateRecord(c.Request.Context(), req.ID, req.Name, *createdAt)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidRecord):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrReadOnlySource):
			c.JSON(http.StatusMethodNotAllowed, gin.H{"error": err.Error()})
		case errors.Is(err, service.ErrDuplicateRecord):
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		default:
			log.Printf("records create: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		}
		return
	}
	c.JSON(http.StatusCreated, dto.RecordResponse{
		ID:        r.ID,
		Name:      r.Name,
		CreatedAt: r.CreatedAt,
		Date:      r.CreatedAt.In(h.loc).Format("2006-01-02"),
	})
}
