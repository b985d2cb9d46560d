package model

import "time"

type TicketStatus string

const (
	TicketStatusOpen       TicketStatus = "open"
	TicketStatusInProgress TicketStatus = "in_progress"
	TicketStatusClosed     TicketStatus = "closed"
)

// statusRank orders the lifecycle; transitions never move to a lower rank.
var statusRank = map[TicketStatus]int{
	TicketStatusOpen:       0,
	TicketStatusInProgress: 1,
	TicketStatusClosed:     2,
}

func (s TicketStatus) Valid() bool {
	_, ok := statusRank[s]
	return ok
}

// CanTransitionTo reports whether moving from s to next is legal.
// Same-state moves are allowed; callers treat them as no-ops.
func (s TicketStatus) CanTransitionTo(next TicketStatus) bool {
	from, ok := statusRank[s]
	if !ok {
		return false
	}
	to, ok := statusRank[next]
	if !ok {
		return false
	}
	return to >= from
}

type Priority string

const (
	PriorityLow    Priority = "low"
	PriorityMedium Priority = "medium"
	PriorityHigh   Priority = "high"
)

func (p Priority) Valid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

type Ticket struct {
	ID             string       `gorm:"type:uuid;primaryKey" json:"id"`
	UserID         string       `gorm:"type:uuid;index;not null" json:"user_id"`
	NombreUsuario  string       `gorm:"type:varchar(255)" json:"nombre_usuario,omitempty"`
	Asunto         string       `gorm:"type:varchar(255);not null" json:"asunto"`
	Descripcion    string       `gorm:"type:text" json:"descripcion,omitempty"`
	TipoProblemaID int64        `gorm:"index;not null" json:"tipo_problema_id"`
	ProyectoID     *int64       `gorm:"index" json:"proyecto_id,omitempty"`
	AreaID         *int64       `gorm:"index" json:"area_id,omitempty"`
	Status         TicketStatus `gorm:"type:varchar(32);index;not null" json:"status"`
	Priority       Priority     `gorm:"type:varchar(32);index" json:"priority,omitempty"`
	Visto          bool         `gorm:"not null;default:false" json:"visto"`

	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	RespondedAt *time.Time `json:"responded_at,omitempty"`

	Responses []TicketResponse `gorm:"foreignKey:TicketID" json:"ticket_responses,omitempty"`
}

func (Ticket) TableName() string { return "tickets" }

// TicketResponse is immutable once created; display order is insertion order.
type TicketResponse struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	TicketID  string    `gorm:"type:uuid;index;not null" json:"ticket_id"`
	UserID    string    `gorm:"type:uuid;not null" json:"user_id"`
	Mensaje   string    `gorm:"type:text;not null" json:"mensaje"`
	CreatedAt time.Time `json:"created_at"`
}

func (TicketResponse) TableName() string { return "ticket_responses" }
