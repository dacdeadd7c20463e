package service

import (
	"context"
	"strconv"
	"time"

	"fintrack/internal/dto"
	"fintrack/internal/ledger"
	"fintrack/internal/models"
	"fintrack/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ReportService assembles period rollup trees from stored expenses and
// renders their recursive totals.
type ReportService struct {
	expenseRepo repository.ExpenseRepository
	logger      *zap.Logger
}

func NewReportService(expenseRepo repository.ExpenseRepository, logger *zap.Logger) *ReportService {
	return &ReportService{
		expenseRepo: expenseRepo,
		logger:      logger,
	}
}

// YearRollup builds the year → month → day tree for one user and year.
func (s *ReportService) YearRollup(ctx context.Context, userID uuid.UUID, year int) (*dto.RollupResponse, error) {
	from := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(1, 0, 0)

	expenses, err := s.expenseRepo.ListByUserBetween(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	root, err := ledger.BuildYearRollup(year, toEntries(expenses))
	if err != nil {
		return nil, err
	}

	return &dto.RollupResponse{
		Period: strconv.Itoa(year),
		Rollup: toRollupNode(root),
	}, nil
}

// WeekRollup builds the week → day tree for the ISO week containing anchor.
func (s *ReportService) WeekRollup(ctx context.Context, userID uuid.UUID, anchor time.Time) (*dto.RollupResponse, error) {
	from := startOfISOWeek(anchor)
	to := from.AddDate(0, 0, 7)

	expenses, err := s.expenseRepo.ListByUserBetween(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}

	root, err := ledger.BuildWeekRollup(anchor, toEntries(expenses))
	if err != nil {
		return nil, err
	}

	return &dto.RollupResponse{
		Period: root.Name(),
		Rollup: toRollupNode(root),
	}, nil
}

// startOfISOWeek returns midnight UTC of the Monday opening t's ISO week.
func startOfISOWeek(t time.Time) time.Time {
	day := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
	weekday := int(day.Weekday())
	if weekday == 0 {
		weekday = 7
	}
	return day.AddDate(0, 0, 1-weekday)
}

func toEntries(expenses []models.Expense) []ledger.Entry {
	entries := make([]ledger.Entry, 0, len(expenses))
	for _, expense := range expenses {
		entries = append(entries, ledger.Entry{
			Date:   expense.OccurredAt,
			Amount: expense.Amount,
		})
	}
	return entries
}

func toRollupNode(node ledger.Node) dto.RollupNode {
	out := dto.RollupNode{Total: node.Total().String()}
	if group, ok := node.(*ledger.Group); ok {
		out.Name = group.Name()
		for _, child := range group.Children() {
			out.Children = append(out.Children, toRollupNode(child))
		}
	}
	return out
}
