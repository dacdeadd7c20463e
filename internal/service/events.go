package service

import (
	"sync"

	"fintrack/internal/models"

	"go.uber.org/zap"
)

// ExpenseEvent is emitted after an expense has been stored.
type ExpenseEvent struct {
	Expense models.Expense
}

// ExpenseObserver receives expense events. Notification is synchronous and
// in recording order; observers must not block.
type ExpenseObserver interface {
	ExpenseRecorded(event ExpenseEvent)
}

// ExpensePublisher fans expense events out to registered observers.
type ExpensePublisher struct {
	mu        sync.RWMutex
	observers []ExpenseObserver
}

func NewExpensePublisher() *ExpensePublisher {
	return &ExpensePublisher{}
}

func (p *ExpensePublisher) Subscribe(observer ExpenseObserver) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.observers = append(p.observers, observer)
}

func (p *ExpensePublisher) Publish(event ExpenseEvent) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	for _, observer := range p.observers {
		observer.ExpenseRecorded(event)
	}
}

// AuditObserver writes one structured log line per recorded expense.
type AuditObserver struct {
	logger *zap.Logger
}

func NewAuditObserver(logger *zap.Logger) *AuditObserver {
	return &AuditObserver{logger: logger}
}

func (o *AuditObserver) ExpenseRecorded(event ExpenseEvent) {
	o.logger.Info("Expense recorded",
		zap.String("expense_id", event.Expense.ID.String()),
		zap.String("user_id", event.Expense.UserID.String()),
		zap.String("amount", event.Expense.Amount.String()),
		zap.String("category", string(event.Expense.Category)),
		zap.Bool("micro", event.Expense.Micro),
	)
}

// LimitAlertObserver warns when a micro expense exceeds the daily ceiling
// recorded with it. Recording is never blocked; the ceiling is advisory.
type LimitAlertObserver struct {
	logger *zap.Logger
}

func NewLimitAlertObserver(logger *zap.Logger) *LimitAlertObserver {
	return &LimitAlertObserver{logger: logger}
}

func (o *LimitAlertObserver) ExpenseRecorded(event ExpenseEvent) {
	if !event.Expense.Micro {
		return
	}
	if event.Expense.Amount.GreaterThan(event.Expense.DailyCeiling) {
		o.logger.Warn("Micro expense exceeds daily ceiling",
			zap.String("expense_id", event.Expense.ID.String()),
			zap.String("user_id", event.Expense.UserID.String()),
			zap.String("amount", event.Expense.Amount.String()),
			zap.String("ceiling", event.Expense.DailyCeiling.String()),
		)
	}
}
