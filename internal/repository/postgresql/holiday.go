package postgresql

import (
	"context"

	"github.com/cmlabs-hris/hris-portal-go/internal/domain/calendar"
	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/database"
	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/datekey"
)

type holidayRepositoryImpl struct {
	db *database.DB
}

// ListByRange implements calendar.HolidayRepository.
func (r *holidayRepositoryImpl) ListByRange(ctx context.Context, from, to datekey.Key) ([]calendar.Holiday, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id::text, to_char(holiday_date, 'YYYY-MM-DD'), name
		FROM holidays
		WHERE holiday_date BETWEEN $1::date AND $2::date
		ORDER BY holiday_date, name
	`

	rows, err := q.Query(ctx, query, from.String(), to.String())
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
		h.Date = keyOrZero(date)
		holidays = append(holidays, h)
	}

	return holidays, rows.Err()
}

func NewHolidayRepository(db *database.DB) calendar.HolidayRepository {
	return &holidayRepositoryImpl{db: db}
}
