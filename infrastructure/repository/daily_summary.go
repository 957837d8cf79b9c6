package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/team6/sales-report-api/infrastructure/database/postgres"
	"github.com/team6/sales-report-api/internal/domain"
)

const (
	dailySummariesTable = "daily_summaries ds"
)

type DailySummaryRepository interface {
	GetByDateRange(ctx context.Context, locationID *int, startDate, endDate time.Time) ([]*domain.DailySummary, error)
	SaveOrUpdate(ctx context.Context, summary *domain.DailySummary) error
	DeleteOlderThan(ctx context.Context, days int) (int64, error)
}

type dailySummaryRepository struct {
	conn postgres.Conn
}

func NewDailySummaryRepository(conn postgres.Conn) DailySummaryRepository {
	return &dailySummaryRepository{
		conn: conn,
	}
}

func (r *dailySummaryRepository) GetByDateRange(ctx context.Context, locationID *int, startDate, endDate time.Time) ([]*domain.DailySummary, error) {
	builder := squirrel.
		Select("ds.id, ds.location_id, ds.date, ds.total_amount, ds.report_count, ds.created_at, ds.updated_at").
		From(dailySummariesTable).
		Where(squirrel.GtOrEq{"ds.date": startDate.Format(time.DateOnly)}).
		Where(squirrel.LtOrEq{"ds.date": endDate.Format(time.DateOnly)}).
		OrderBy("ds.date ASC, ds.location_id ASC").
		PlaceholderFormat(squirrel.Dollar)

	if locationID != nil {
		builder = builder.Where(squirrel.Eq{"ds.location_id": *locationID})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to build query: %w", err)
	}

	rows, err := r.conn.Query(ctx, query, args...)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to run query: %w", err)
	}
	defer rows.Close()

	summaries := make([]*domain.DailySummary, 0)
	for rows.Next() {
		summary, err := r.scanSummaryRows(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan daily summaries: %w", err)
		}
		summaries = append(summaries, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("failed while iterating rows: %w", err)
	}

	return summaries, nil
}

func (r *dailySummaryRepository) SaveOrUpdate(ctx context.Context, summary *domain.DailySummary) error {
	query := squirrel.StatementBuilder.
		Insert("daily_summaries").
		Columns("location_id", "date", "total_amount", "report_count").
		Values(
			summary.LocationID,
			summary.Date,
			summary.TotalAmount,
			summary.ReportCount,
		).
		Suffix(`
			ON CONFLICT (location_id, date) DO UPDATE SET
				total_amount = EXCLUDED.total_amount,
				report_count = EXCLUDED.report_count,
				updated_at = NOW()
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("failed to build query: %w", err)
	}

	_, err = r.conn.Exec(ctx, sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("failed to run query: %w", err)
	}

	return nil
}

func (r *dailySummaryRepository) DeleteOlderThan(ctx context.Context, days int) (int64, error) {
	cutoffDate := time.Now().AddDate(0, 0, -days).Format(time.DateOnly)

	query, args, err := squirrel.
		Delete("daily_summaries").
		Where(squirrel.Lt{"date": cutoffDate}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("failed to build query: %w", err)
	}

	result, err := r.conn.Exec(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("failed to run query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read affected rows: %w", err)
	}

	return rowsAffected, nil
}

func (r *dailySummaryRepository) scanSummaryRows(rows *sql.Rows) (*domain.DailySummary, error) {
	summary := &domain.DailySummary{}
	var date time.Time

	err := rows.Scan(
		&summary.ID,
		&summary.LocationID,
		&date,
		&summary.TotalAmount,
		&summary.ReportCount,
		&summary.CreatedAt,
		&summary.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	summary.Date = date.Format(time.DateOnly)
	return summary, nil
}
