package event

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/crediflow/calc-service/internal/domain/model"
)

// DomainEvent is the interface all domain events implement.
type DomainEvent interface {
	EventID() string
	EventType() string
	OccurredAt() time.Time
}

// BaseEvent provides the common identity fields of a domain event.
type BaseEvent struct {
	ID   string    `json:"event_id"`
	Type string    `json:"event_type"`
	At   time.Time `json:"occurred_at"`
}

// NewBaseEvent creates a BaseEvent with a generated UUID and the current time.
func NewBaseEvent(eventType string) BaseEvent {
	return BaseEvent{
		ID:   uuid.New().String(),
		Type: eventType,
		At:   time.Now().UTC(),
	}
}

// EventID returns the unique identifier of this event.
func (e BaseEvent) EventID() string { return e.ID }

// EventType returns the type name of this event.
func (e BaseEvent) EventType() string { return e.Type }

// OccurredAt returns the time at which this event occurred.
func (e BaseEvent) OccurredAt() time.Time { return e.At }

// CalculationPerformed is raised after every successful repayment
// calculation. It carries the headline figures only, not the schedule.
type CalculationPerformed struct {
	BaseEvent
	CreditType     string          `json:"credit_type"`
	LoanAmount     decimal.Decimal `json:"loan_amount"`
	LoanPeriodDays int             `json:"loan_period_days"`
	TotalRepayment decimal.Decimal `json:"total_repayment"`
}

// NewCalculationPerformed builds the event from a finished calculation.
func NewCalculationPerformed(result model.CalculationResult) CalculationPerformed {
	return CalculationPerformed{
		BaseEvent:      NewBaseEvent("calc.calculation.performed"),
		CreditType:     result.CreditType,
		LoanAmount:     result.LoanAmount,
		LoanPeriodDays: result.LoanPeriodDays,
		TotalRepayment: result.TotalRepayment,
	}
}
