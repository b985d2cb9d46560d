package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mesadeayuda/helpdesk-service/internal/errs"
	"github.com/mesadeayuda/helpdesk-service/internal/model"
	"github.com/mesadeayuda/helpdesk-service/internal/service"
)

type TicketHandler struct {
	svc service.TicketServicer
}

func NewTicketHandler(svc service.TicketServicer) *TicketHandler {
	return &TicketHandler{svc: svc}
}

type createTicketRequest struct {
	NombreUsuario  string `json:"nombre_usuario"`
	Asunto         string `json:"asunto" binding:"required"`
	Descripcion    string `json:"descripcion"`
	TipoProblemaID int64  `json:"tipo_problema_id" binding:"required"`
	ProyectoID     *int64 `json:"proyecto_id"`
	AreaID         *int64 `json:"area_id"`
	Priority       string `json:"priority"`
}

func (h *TicketHandler) Create(c *gin.Context) {
	var req createTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	t := &model.Ticket{
		NombreUsuario:  req.NombreUsuario,
		Asunto:         req.Asunto,
		Descripcion:    req.Descripcion,
		TipoProblemaID: req.TipoProblemaID,
		ProyectoID:     req.ProyectoID,
		AreaID:         req.AreaID,
		Priority:       model.Priority(req.Priority),
	}
	if err := h.svc.Create(c.Request.Context(), sessionFrom(c), t); err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, t)
}

func (h *TicketHandler) List(c *gin.Context) {
	items, err := h.svc.List(c.Request.Context(), sessionFrom(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to list tickets"})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"tickets": items,
		"total":   len(items),
	})
}

func (h *TicketHandler) Get(c *gin.Context) {
	s := sessionFrom(c)
	t, err := h.svc.GetByID(c.Request.Context(), s, c.Param("id"))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	// Opening the detail view is what flips the one-way visto flag.
	if s.Role.CanManageTickets() && !t.Visto {
		if err := h.svc.MarkSeen(c.Request.Context(), s, t.ID); err == nil {
			t.Visto = true
		}
	}
	c.JSON(http.StatusOK, t)
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (h *TicketHandler) UpdateStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	t, err := h.svc.SetStatus(c.Request.Context(), sessionFrom(c), c.Param("id"), model.TicketStatus(req.Status))
	if err != nil {
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, t)
}

type respondRequest struct {
	Mensaje string `json:"mensaje" binding:"required"`
}

func (h *TicketHandler) Respond(c *gin.Context) {
	var req respondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	resp, err := h.svc.AppendResponse(c.Request.Context(), sessionFrom(c), c.Param("id"), req.Mensaje)
	if err != nil {
		// The response may already be durable even when the follow-up
		// transition failed; tell the client to refresh either way.
		writeServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errs.ErrTicketNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "ticket not found"})
	case errors.Is(err, errs.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
	case errors.Is(err, errs.ErrEmptyAsunto),
		errors.Is(err, errs.ErrEmptyMensaje),
		errors.Is(err, errs.ErrMissingTipo),
		errors.Is(err, errs.ErrInvalidStatus),
		errors.Is(err, errs.ErrInvalidPriority),
		errors.Is(err, errs.ErrInvalidTransition):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
