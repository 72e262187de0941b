package postgresql

import (
	"context"

	"github.com/cmlabs-hris/hris-portal-go/internal/domain/timelog"
	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/database"
	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/datekey"
	"github.com/shopspring/decimal"
)

type timeLogRepositoryImpl struct {
	db *database.DB
}

// TotalLoggedHours implements timelog.TimeLogRepository.
func (r *timeLogRepositoryImpl) TotalLoggedHours(ctx context.Context, employeeID string, date datekey.Key) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COALESCE(SUM(hours), 0)::text
		FROM time_logs
		WHERE employee_id = $1 AND log_date = $2::date
	`

	var total string
	if err := q.QueryRow(ctx, query, employeeID, date.String()).Scan(&total); err != nil {
		return decimal.Zero, err
	}

	return decimalOrZero(total), nil
}

// SummaryByTask implements timelog.TimeLogRepository.
func (r *timeLogRepositoryImpl) SummaryByTask(ctx context.Context, employeeID string, from, to datekey.Key) ([]timelog.TaskSummary, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT t.id::text, t.name, p.name, SUM(l.hours)::text, COUNT(*)
		FROM time_logs l
		JOIN project_tasks t ON t.id = l.task_id
		JOIN projects p ON p.id = t.project_id
		WHERE l.employee_id = $1
		  AND l.log_date BETWEEN $2::date AND $3::date
		GROUP BY t.id, t.name, p.name
		ORDER BY SUM(l.hours) DESC, t.name
	`

	rows, err := q.Query(ctx, query, employeeID, from.String(), to.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := make([]timelog.TaskSummary, 0)
	for rows.Next() {
		var (
			s     timelog.TaskSummary
			hours string
		)
		if err := rows.Scan(&s.TaskID, &s.TaskName, &s.ProjectName, &hours, &s.Entries); err != nil {
			return nil, err
		}
		s.Hours = decimalOrZero(hours)
		summaries = append(summaries, s)
	}

	return summaries, rows.Err()
}

func NewTimeLogRepository(db *database.DB) timelog.TimeLogRepository {
	return &timeLogRepositoryImpl{db: db}
}
