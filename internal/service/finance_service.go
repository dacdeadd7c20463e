package service

import (
	"context"
	"errors"
	"time"

	"fintrack/internal/dto"
	"fintrack/internal/limits"
	"fintrack/internal/models"
	"fintrack/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrInvalidAmount   = errors.New("amount must be a positive decimal")
	ErrInvalidCategory = errors.New("unknown expense category")
	ErrExpenseNotFound = errors.New("expense not found")
)

// FinanceService is the single entry point for recording and reading
// expenses. It coordinates the expense store, the spending limit policy and
// the event publisher behind one interface so handlers stay thin.
type FinanceService struct {
	expenseRepo repository.ExpenseRepository
	limitPolicy limits.Policy
	publisher   *ExpensePublisher
	logger      *zap.Logger
}

func NewFinanceService(
	expenseRepo repository.ExpenseRepository,
	limitPolicy limits.Policy,
	publisher *ExpensePublisher,
	logger *zap.Logger,
) *FinanceService {
	return &FinanceService{
		expenseRepo: expenseRepo,
		limitPolicy: limitPolicy,
		publisher:   publisher,
		logger:      logger,
	}
}

func (s *FinanceService) CreateExpense(ctx context.Context, userID uuid.UUID, req *dto.CreateExpenseRequest) (*dto.ExpenseResponse, error) {
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil || !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	category := req.Category
	if category == "" {
		category = string(models.CategoryOther)
	}
	if !models.ValidCategory(category) {
		return nil, ErrInvalidCategory
	}

	occurredAt := time.Now().UTC().Truncate(24 * time.Hour)
	if req.Date != "" {
		occurredAt, err = time.Parse("2006-01-02", req.Date)
		if err != nil {
			return nil, errors.New("date must be YYYY-MM-DD")
		}
	}

	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}

	now := time.Now()
	expense := &models.Expense{
		ID:          uuid.New(),
		UserID:      userID,
		Description: req.Description,
		Category:    models.ExpenseCategory(category),
		Amount:      amount,
		Currency:    currency,
		Micro:       req.Micro,
		OccurredAt:  occurredAt,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	// For micro expenses the active policy is consulted exactly once and
	// its answer stored with the expense. The ceiling is not enforced here.
	if req.Micro {
		ceiling, err := s.limitPolicy.LimitFor(userID.String())
		if err != nil {
			return nil, err
		}
		expense.DailyCeiling = ceiling
	}

	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		return nil, err
	}

	s.publisher.Publish(ExpenseEvent{Expense: *expense})

	return toExpenseResponse(expense), nil
}

func (s *FinanceService) ListExpenses(ctx context.Context, userID uuid.UUID) (*dto.ExpenseListResponse, error) {
	expenses, err := s.expenseRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	resp := &dto.ExpenseListResponse{
		Expenses: make([]dto.ExpenseResponse, 0, len(expenses)),
		Total:    len(expenses),
	}
	for i := range expenses {
		resp.Expenses = append(resp.Expenses, *toExpenseResponse(&expenses[i]))
	}
	return resp, nil
}

func (s *FinanceService) GetExpense(ctx context.Context, userID, expenseID uuid.UUID) (*dto.ExpenseResponse, error) {
	expense, err := s.expenseRepo.GetByID(ctx, expenseID)
	if err != nil {
		return nil, ErrExpenseNotFound
	}
	if expense.UserID != userID {
		return nil, ErrExpenseNotFound
	}
	return toExpenseResponse(expense), nil
}

func toExpenseResponse(expense *models.Expense) *dto.ExpenseResponse {
	resp := &dto.ExpenseResponse{
		ID:          expense.ID.String(),
		Description: expense.Description,
		Category:    string(expense.Category),
		Amount:      expense.Amount.String(),
		Currency:    expense.Currency,
		Micro:       expense.Micro,
		Date:        expense.OccurredAt.Format("2006-01-02"),
		CreatedAt:   expense.CreatedAt.Format(time.RFC3339),
	}
	if expense.Micro {
		resp.DailyCeiling = expense.DailyCeiling.String()
	}
	return resp
}
