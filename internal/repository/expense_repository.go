package repository

import (
	"context"
	"time"

	"fintrack/internal/models"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

// ExpenseRepository persists recorded expenses.
type ExpenseRepository interface {
	Create(ctx context.Context, expense *models.Expense) error
	GetByID(ctx context.Context, id uuid.UUID) (*models.Expense, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Expense, error)
	ListByUserBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]models.Expense, error)
}

type PostgresExpenseRepository struct {
	db     *pgxpool.Pool
	logger *zap.Logger
}

func NewPostgresExpenseRepository(db *pgxpool.Pool, logger *zap.Logger) *PostgresExpenseRepository {
	return &PostgresExpenseRepository{
		db:     db,
		logger: logger,
	}
}

var expenseColumns = []string{
	"id", "user_id", "description", "category", "amount", "currency",
	"micro", "daily_ceiling", "occurred_at", "created_at", "updated_at",
}

func (r *PostgresExpenseRepository) Create(ctx context.Context, expense *models.Expense) error {
	query := squirrel.Insert("expenses").
		Columns(expenseColumns...).
		Values(
			expense.ID, expense.UserID, expense.Description, expense.Category,
			expense.Amount, expense.Currency, expense.Micro, expense.DailyCeiling,
			expense.OccurredAt, expense.CreatedAt, expense.UpdatedAt,
		).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.db.Exec(ctx, sql, args...)
	return err
}

func (r *PostgresExpenseRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Expense, error) {
	query := squirrel.Select(expenseColumns...).
		From("expenses").
		Where(squirrel.Eq{"id": id}).
		PlaceholderFormat(squirrel.Dollar)

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var expense models.Expense
	err = r.db.QueryRow(ctx, sql, args...).Scan(
		&expense.ID, &expense.UserID, &expense.Description, &expense.Category,
		&expense.Amount, &expense.Currency, &expense.Micro, &expense.DailyCeiling,
		&expense.OccurredAt, &expense.CreatedAt, &expense.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &expense, nil
}

func (r *PostgresExpenseRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.Expense, error) {
	query := squirrel.Select(expenseColumns...).
		From("expenses").
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("occurred_at ASC").
		PlaceholderFormat(squirrel.Dollar)

	return r.list(ctx, query)
}

func (r *PostgresExpenseRepository) ListByUserBetween(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]models.Expense, error) {
	query := squirrel.Select(expenseColumns...).
		From("expenses").
		Where(squirrel.Eq{"user_id": userID}).
		Where(squirrel.GtOrEq{"occurred_at": from}).
		Where(squirrel.Lt{"occurred_at": to}).
		OrderBy("occurred_at ASC").
		PlaceholderFormat(squirrel.Dollar)

	return r.list(ctx, query)
}

func (r *PostgresExpenseRepository) list(ctx context.Context, query squirrel.SelectBuilder) ([]models.Expense, error) {
	sql, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var expenses []models.Expense
	for rows.Next() {
		var expense models.Expense
		if err := rows.Scan(
			&expense.ID, &expense.UserID, &expense.Description, &expense.Category,
			&expense.Amount, &expense.Currency, &expense.Micro, &expense.DailyCeiling,
			&expense.OccurredAt, &expense.CreatedAt, &expense.UpdatedAt,
		); err != nil {
			return nil, err
		}
		expenses = append(expenses, expense)
	}

	return expenses, rows.Err()
}
