package service

import (
	"context"
	"testing"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func TestYearRollup(t *testing.T) {
	repo := repository.NewMemoryExpenseRepository()
	svc := NewReportService(repo, zap.NewNop())
	ctx := context.Background()
	userID := uuid.New()

	add := func(day string, amount string) {
		occurred, err := time.Parse("2006-01-02", day)
		if err != nil {
			t.Fatalf("parse %s: %v", day, err)
		}
		err = repo.Create(ctx, &models.Expense{
			ID:         uuid.New(),
			UserID:     userID,
			Amount:     decimal.RequireFromString(amount),
			OccurredAt: occurred,
		})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	add("2026-01-15", "100")
	add("2026-01-15", "200")
	add("2026-02-01", "50")
	add("2025-12-31", "999") // previous year, must not appear

	resp, err := svc.YearRollup(ctx, userID, 2026)
	if err != nil {
		t.Fatalf("rollup: %v", err)
	}

	if resp.Period != "2026" {
		t.Errorf("period = %q", resp.Period)
	}
	if resp.Rollup.Total != "350" {
		t.Errorf("year total = %q, want 350", resp.Rollup.Total)
	}
	if len(resp.Rollup.Children) != 2 {
		t.Fatalf("month groups = %d, want 2", len(resp.Rollup.Children))
	}

	jan := resp.Rollup.Children[0]
	if jan.Name != "2026-01" || jan.Total != "300" {
		t.Errorf("january = %+v, want name 2026-01 total 300", jan)
	}
}

func TestWeekRollup(t *testing.T) {
	repo := repository.NewMemoryExpenseRepository()
	svc := NewReportService(repo, zap.NewNop())
	ctx := context.Background()
	userID := uuid.New()

	add := func(day string, amount string) {
		occurred, err := time.Parse("2006-01-02", day)
		if err != nil {
			t.Fatalf("parse %s: %v", day, err)
		}
		err = repo.Create(ctx, &models.Expense{
			ID:         uuid.New(),
			UserID:     userID,
			Amount:     decimal.RequireFromString(amount),
			OccurredAt: occurred,
		})
		if err != nil {
			t.Fatalf("create: %v", err)
		}
	}

	// 2026-01-12 is a Monday, so its ISO week runs through 2026-01-18.
	add("2026-01-12", "10")
	add("2026-01-14", "15.50")
	add("2026-01-19", "100") // following week, must not appear

	anchor, err := time.Parse("2006-01-02", "2026-01-13")
	if err != nil {
		t.Fatalf("parse anchor: %v", err)
	}

	resp, err := svc.WeekRollup(ctx, userID, anchor)
	if err != nil {
		t.Fatalf("rollup: %v", err)
	}

	if resp.Period != "2026-W3" {
		t.Errorf("period = %q, want 2026-W3", resp.Period)
	}
	if resp.Rollup.Total != "25.5" {
		t.Errorf("week total = %q, want 25.5", resp.Rollup.Total)
	}
	if len(resp.Rollup.Children) != 2 {
		t.Fatalf("day groups = %d, want 2", len(resp.Rollup.Children))
	}
	if resp.Rollup.Children[0].Name != "2026-01-12" {
		t.Errorf("first day = %q, want 2026-01-12", resp.Rollup.Children[0].Name)
	}
}

func TestYearRollupNoExpenses(t *testing.T) {
	svc := NewReportService(repository.NewMemoryExpenseRepository(), zap.NewNop())

	resp, err := svc.YearRollup(context.Background(), uuid.New(), 2026)
	if err != nil {
		t.Fatalf("rollup: %v", err)
	}
	if resp.Rollup.Total != "0" {
		t.Errorf("empty year total = %q, want 0", resp.Rollup.Total)
	}
}
