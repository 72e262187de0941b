package sqlite

import (
	"context"
	"database/sql"
	"sort"

	"github.com/cmlabs-hris/hris-portal-go/internal/domain/timelog"
	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/datekey"
	"github.com/shopspring/decimal"
)

// Hours are stored as decimal text and summed in Go; SQLite's SUM would
// round them through float64.
type timeLogRepository struct {
	db *sql.DB
}

func (r *timeLogRepository) TotalLoggedHours(ctx context.Context, employeeID string, date datekey.Key) (decimal.Decimal, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT hours FROM time_logs WHERE employee_id = ? AND log_date = ?`, employeeID, date.String())
	if err != nil {
		return decimal.Zero, err
	}
	defer rows.Close()

	total := decimal.Zero
	for rows.Next() {
		var hours string
		if err := rows.Scan(&hours); err != nil {
			return decimal.Zero, err
		}
		d, err := decimal.NewFromString(hours)
		if err != nil {
			return decimal.Zero, err
		}
		total = total.Add(d)
	}

	return total, rows.Err()
}

func (r *timeLogRepository) SummaryByTask(ctx context.Context, employeeID string, from, to datekey.Key) ([]timelog.TaskSummary, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT t.id, t.name, p.name, l.hours
		FROM time_logs l
		JOIN project_tasks t ON t.id = l.task_id
		JOIN projects p ON p.id = t.project_id
		WHERE l.employee_id = ? AND l.log_date BETWEEN ? AND ?`,
		employeeID, from.String(), to.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	byTask := make(map[string]*timelog.TaskSummary)
	for rows.Next() {
		var (
			s     timelog.TaskSummary
			hours string
		)
		if err := rows.Scan(&s.TaskID, &s.TaskName, &s.ProjectName, &hours); err != nil {
			return nil, err
		}
		d, err := decimal.NewFromString(hours)
		if err != nil {
			return nil, err
		}
		acc, ok := byTask[s.TaskID]
		if !ok {
			acc = &s
			byTask[s.TaskID] = acc
		}
		acc.Hours = acc.Hours.Add(d)
		acc.Entries++
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	summaries := make([]timelog.TaskSummary, 0, len(byTask))
	for _, s := range byTask {
		summaries = append(summaries, *s)
	}
	sort.Slice(summaries, func(i, j int) bool {
		if c := summaries[i].Hours.Cmp(summaries[j].Hours); c != 0 {
			return c > 0
		}
		return summaries[i].TaskName < summaries[j].TaskName
	})

	return summaries, nil
}
