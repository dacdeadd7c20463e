package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"fintrack/internal/advisor"
	"fintrack/internal/dto"
	"fintrack/internal/models"
	"fintrack/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// AdviceService summarizes a user's spending and asks the configured
// advisor for recommendations.
type AdviceService struct {
	advisor     advisor.Advisor
	expenseRepo repository.ExpenseRepository
	logger      *zap.Logger
}

func NewAdviceService(adv advisor.Advisor, expenseRepo repository.ExpenseRepository, logger *zap.Logger) *AdviceService {
	return &AdviceService{
		advisor:     adv,
		expenseRepo: expenseRepo,
		logger:      logger,
	}
}

func (s *AdviceService) Advise(ctx context.Context, userID uuid.UUID) (*dto.AdviceResponse, error) {
	expenses, err := s.expenseRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	prompt := buildSpendingPrompt(expenses)
	lines, err := s.advisor.Advise(ctx, prompt)
	if err != nil {
		return nil, err
	}

	return &dto.AdviceResponse{Recommendations: lines}, nil
}

// buildSpendingPrompt condenses expenses into per-category totals so the
// model sees a short summary instead of raw records.
func buildSpendingPrompt(expenses []models.Expense) string {
	if len(expenses) == 0 {
		return "I have not recorded any expenses yet. Give me general advice on starting a personal budget."
	}

	totals := make(map[string]decimal.Decimal)
	overall := decimal.Zero
	for _, expense := range expenses {
		key := string(expense.Category)
		totals[key] = totals[key].Add(expense.Amount)
		overall = overall.Add(expense.Amount)
	}

	categories := make([]string, 0, len(totals))
	for category := range totals {
		categories = append(categories, category)
	}
	sort.Strings(categories)

	var b strings.Builder
	b.WriteString("My recorded spending by category: ")
	for i, category := range categories {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%s %s", category, totals[category])
	}
	fmt.Fprintf(&b, ". Total spent: %s over %d expenses. How can I reduce my spending?", overall, len(expenses))
	return b.String()
}
