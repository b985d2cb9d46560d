package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/mesadeayuda/helpdesk-service/internal/errs"
	"github.com/mesadeayuda/helpdesk-service/internal/events"
	"github.com/mesadeayuda/helpdesk-service/internal/model"
	"github.com/mesadeayuda/helpdesk-service/internal/session"
)

// TicketServicer is the interface handlers depend on (and tests fake).
type TicketServicer interface {
	Create(ctx context.Context, actor *session.Session, t *model.Ticket) error
	List(ctx context.Context, actor *session.Session) ([]model.Ticket, error)
	GetByID(ctx context.Context, actor *session.Session, id string) (*model.Ticket, error)
	SetStatus(ctx context.Context, actor *session.Session, id string, status model.TicketStatus) (*model.Ticket, error)
	AppendResponse(ctx context.Context, actor *session.Session, ticketID, mensaje string) (*model.TicketResponse, error)
	MarkSeen(ctx context.Context, actor *session.Session, id string) error
}

type TicketService struct {
	db       *gorm.DB
	producer events.TicketEventProducer
}

func NewTicketService(db *gorm.DB, producer events.TicketEventProducer) *TicketService {
	return &TicketService{db: db, producer: producer}
}

func validateNewTicket(t *model.Ticket) error {
	t.Asunto = strings.TrimSpace(t.Asunto)
	if t.Asunto == "" {
		return errs.ErrEmptyAsunto
	}
	if t.TipoProblemaID == 0 {
		return errs.ErrMissingTipo
	}
	if t.Priority == "" {
		t.Priority = model.PriorityLow
	}
	if !t.Priority.Valid() {
		return errs.ErrInvalidPriority
	}
	return nil
}

func (s *TicketService) Create(ctx context.Context, actor *session.Session, t *model.Ticket) error {
	if err := validateNewTicket(t); err != nil {
		return err
	}
	t.ID = uuid.NewString()
	t.UserID = actor.UserID
	t.Status = model.TicketStatusOpen
	t.Visto = false
	if err := s.db.WithContext(ctx).Create(t).Error; err != nil {
		return fmt.Errorf("create ticket: %w", err)
	}
	s.producer.ProduceTicketEvent(ctx, events.TicketCreated, events.TicketPayload(t))
	return nil
}

// canView implements visibility scoping: users see their own tickets,
// trabajadores additionally see their area's, admins see everything.
func canView(actor *session.Session, t *model.Ticket) bool {
	switch actor.Role {
	case model.RoleAdmin:
		return true
	case model.RoleTrabajador:
		if t.UserID == actor.UserID {
			return true
		}
		return actor.AreaID != nil && t.AreaID != nil && *actor.AreaID == *t.AreaID
	default:
		return t.UserID == actor.UserID
	}
}

func (s *TicketService) scoped(ctx context.Context, actor *session.Session) *gorm.DB {
	tx := s.db.WithContext(ctx).Model(&model.Ticket{})
	switch actor.Role {
	case model.RoleAdmin:
		return tx
	case model.RoleTrabajador:
		if actor.AreaID != nil {
			return tx.Where("area_id = ? OR user_id = ?", *actor.AreaID, actor.UserID)
		}
		return tx.Where("user_id = ?", actor.UserID)
	default:
		return tx.Where("user_id = ?", actor.UserID)
	}
}

func (s *TicketService) List(ctx context.Context, actor *session.Session) ([]model.Ticket, error) {
	var items []model.Ticket
	err := s.scoped(ctx, actor).
		Preload("Responses", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		Order("created_at DESC").
		Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	return items, nil
}

func (s *TicketService) GetByID(ctx context.Context, actor *session.Session, id string) (*model.Ticket, error) {
	var t model.Ticket
	err := s.db.WithContext(ctx).
		Preload("Responses", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		First(&t, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.ErrTicketNotFound
		}
		return nil, err
	}
	if !canView(actor, &t) {
		return nil, errs.ErrTicketNotFound
	}
	return &t, nil
}

// SetStatus applies a manual transition. Transitions never move backward
// through open → in_progress → closed; repeating the current status is an
// idempotent no-op.
func (s *TicketService) SetStatus(ctx context.Context, actor *session.Session, id string, status model.TicketStatus) (*model.Ticket, error) {
	if !actor.Role.CanManageTickets() {
		return nil, errs.ErrForbidden
	}
	if !status.Valid() {
		return nil, errs.ErrInvalidStatus
	}
	t, err := s.GetByID(ctx, actor, id)
	if err != nil {
		return nil, err
	}
	if t.Status == status {
		return t, nil
	}
	if !t.Status.CanTransitionTo(status) {
		return nil, errs.ErrInvalidTransition
	}
	if err := s.db.WithContext(ctx).Model(t).Update("status", status).Error; err != nil {
		return nil, fmt.Errorf("update status: %w", err)
	}
	t.Status = status
	s.producer.ProduceTicketEvent(ctx, events.TicketStatusChanged, events.TicketPayload(t))
	return t, nil
}

// AppendResponse records the response first, then transitions an open
// ticket to in_progress. The two writes are deliberately separate: a
// transition failure must never lose the response, and re-running the flow
// is safe because the transition is guarded on current status.
func (s *TicketService) AppendResponse(ctx context.Context, actor *session.Session, ticketID, mensaje string) (*model.TicketResponse, error) {
	mensaje = strings.TrimSpace(mensaje)
	if mensaje == "" {
		return nil, errs.ErrEmptyMensaje
	}
	t, err := s.GetByID(ctx, actor, ticketID)
	if err != nil {
		return nil, err
	}
	resp := &model.TicketResponse{
		ID:       uuid.NewString(),
		TicketID: t.ID,
		UserID:   actor.UserID,
		Mensaje:  mensaje,
	}
	if err := s.db.WithContext(ctx).Create(resp).Error; err != nil {
		return nil, fmt.Errorf("create response: %w", err)
	}
	s.producer.ProduceTicketEvent(ctx, events.TicketResponseAdded, map[string]interface{}{
		"ticket_id":   t.ID,
		"response_id": resp.ID,
		"user_id":     actor.UserID,
	})

	now := time.Now()
	if err := s.db.WithContext(ctx).Model(&model.Ticket{}).
		Where("id = ?", t.ID).Update("responded_at", now).Error; err != nil {
		return resp, fmt.Errorf("update responded_at: %w", err)
	}
	if t.Status == model.TicketStatusOpen {
		res := s.db.WithContext(ctx).Model(&model.Ticket{}).
			Where("id = ? AND status = ?", t.ID, model.TicketStatusOpen).
			Update("status", model.TicketStatusInProgress)
		if res.Error != nil {
			// The response is already durable; the caller refreshes and
			// may retry, the status guard makes that safe.
			return resp, fmt.Errorf("transition to in_progress: %w", res.Error)
		}
		if res.RowsAffected > 0 {
			t.Status = model.TicketStatusInProgress
			s.producer.ProduceTicketEvent(ctx, events.TicketStatusChanged, events.TicketPayload(t))
		}
	}
	return resp, nil
}

// MarkSeen sets the one-way visto flag. Only worker/admin views count.
func (s *TicketService) MarkSeen(ctx context.Context, actor *session.Session, id string) error {
	if !actor.Role.CanManageTickets() {
		return errs.ErrForbidden
	}
	t, err := s.GetByID(ctx, actor, id)
	if err != nil {
		return err
	}
	if t.Visto {
		return nil
	}
	err = s.db.WithContext(ctx).Model(&model.Ticket{}).
		Where("id = ? AND visto = FALSE", id).
		Update("visto", true).Error
	if err != nil {
		return fmt.Errorf("mark seen: %w", err)
	}
	return nil
}
