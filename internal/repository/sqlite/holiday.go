package sqlite

import (
	"context"
	"database/sql"

	"github.com/cmlabs-hris/hris-portal-go/internal/domain/calendar"
	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/datekey"
)

type holidayRepository struct {
	db *sql.DB
}

func (r *holidayRepository) ListByRange(ctx context.Context, from, to datekey.Key) ([]calendar.Holiday, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT id, holiday_date, name
		FROM holidays
		WHERE holiday_date BETWEEN ? AND ?
		ORDER BY holiday_date, name`, from.String(), to.String())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	holidays := make([]calendar.Holiday, 0)
	for rows.Next() {
		var (
			h    calendar.Holiday
			date string
		)
		if err := rows.Scan(&h.ID, &date, &h.Name); err != nil {
			return nil, err
		}
		h.Date = datekey.Key(date)
		holidays = append(holidays, h)
	}

	return holidays, rows.Err()
}
