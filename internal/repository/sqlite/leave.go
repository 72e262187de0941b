package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/cmlabs-hris/hris-portal-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/datekey"
	"github.com/shopspring/decimal"
)

type leaveRepository struct {
	db *sql.DB
}

func (r *leaveRepository) ListApprovedByEmployeeRange(ctx context.Context, employeeID string, from, to datekey.Key) ([]leave.Record, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, employee_id, leave_type, day_type, start_date, end_date
		FROM leaves
		WHERE employee_id = ?
		  AND status = 'approved'
		  AND start_date <= ?
		  AND end_date >= ?
		ORDER BY start_date, id`, employeeID, to.String(), from.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]leave.Record, 0)
	for rows.Next() {
		var (
			rec                leave.Record
			leaveType, dayType string
			startDate, endDate string
		)
		if err := rows.Scan(&rec.ID, &rec.EmployeeID, &leaveType, &dayType, &startDate, &endDate); err != nil {
			return nil, err
		}
		rec.Type = leave.LeaveType(leaveType)
		rec.DayType = leave.DayType(dayType)
		rec.StartDate = datekey.Key(startDate)
		rec.EndDate = datekey.Key(endDate)
		records = append(records, rec)
	}

	return records, rows.Err()
}

type balanceRepository struct {
	db *sql.DB
}

func (r *balanceRepository) GetBalances(ctx context.Context, employeeID string) (leave.Balance, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT leave_type, available FROM leave_balances WHERE employee_id = ?`, employeeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	balance := make(leave.Balance)
	for rows.Next() {
		var leaveType, available string
		if err := rows.Scan(&leaveType, &available); err != nil {
			return nil, err
		}
		d, err := decimal.NewFromString(available)
		if err != nil {
			return nil, err
		}
		balance[leave.LeaveType(leaveType)] = d
	}

	return balance, rows.Err()
}

func (r *balanceRepository) GetBalance(ctx context.Context, employeeID string, leaveType leave.LeaveType) (decimal.Decimal, error) {
	var available string
	err := r.db.QueryRowContext(ctx, `
		SELECT available FROM leave_balances WHERE employee_id = ? AND leave_type = ?`,
		employeeID, string(leaveType)).Scan(&available)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return decimal.Zero, leave.ErrBalanceNotFound
		}
		return decimal.Zero, err
	}

	return decimal.NewFromString(available)
}
