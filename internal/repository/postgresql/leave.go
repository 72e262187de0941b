package postgresql

import (
	"context"
	"errors"

	"github.com/cmlabs-hris/hris-portal-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/database"
	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/datekey"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

type leaveRepositoryImpl struct {
	db *database.DB
}

// ListApprovedByEmployeeRange implements leave.LeaveRepository.
func (r *leaveRepositoryImpl) ListApprovedByEmployeeRange(ctx context.Context, employeeID string, from, to datekey.Key) ([]leave.Record, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id::text, employee_id::text, leave_type, day_type,
			   to_char(start_date, 'YYYY-MM-DD'), to_char(end_date, 'YYYY-MM-DD')
		FROM leaves
		WHERE employee_id = $1
		  AND status = 'approved'
		  AND start_date <= $3::date
		  AND end_date >= $2::date
		ORDER BY start_date, id
	`

	rows, err := q.Query(ctx, query, employeeID, from.String(), to.String())
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
		rec.StartDate = keyOrZero(startDate)
		rec.EndDate = keyOrZero(endDate)
		records = append(records, rec)
	}

	return records, rows.Err()
}

func NewLeaveRepository(db *database.DB) leave.LeaveRepository {
	return &leaveRepositoryImpl{db: db}
}

type balanceRepositoryImpl struct {
	db *database.DB
}

// GetBalances implements leave.BalanceRepository.
func (r *balanceRepositoryImpl) GetBalances(ctx context.Context, employeeID string) (leave.Balance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT leave_type, available::text
		FROM leave_balances
		WHERE employee_id = $1
	`

	rows, err := q.Query(ctx, query, employeeID)
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
		balance[leave.LeaveType(leaveType)] = decimalOrZero(available)
	}

	return balance, rows.Err()
}

// GetBalance implements leave.BalanceRepository.
func (r *balanceRepositoryImpl) GetBalance(ctx context.Context, employeeID string, leaveType leave.LeaveType) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT available::text
		FROM leave_balances
		WHERE employee_id = $1 AND leave_type = $2
	`

	var available string
	if err := q.QueryRow(ctx, query, employeeID, string(leaveType)).Scan(&available); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, leave.ErrBalanceNotFound
		}
		return decimal.Zero, err
	}

	return decimalOrZero(available), nil
}

func NewBalanceRepository(db *database.DB) leave.BalanceRepository {
	return &balanceRepositoryImpl{db: db}
}
