package calendar

import (
	"testing"
	"time"

	"github.com/cmlabs-hris/hris-portal-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-portal-go/internal/domain/calendar"
	"github.com/cmlabs-hris/hris-portal-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/datekey"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildMonthGridShape(t *testing.T) {
	for year := 2023; year <= 2025; year++ {
		for m := time.January; m <= time.December; m++ {
			cells := BuildMonthGrid(year, m, calendar.Overlays{}, "")

			require.Zero(t, len(cells)%7, "%d-%02d", year, m)

			days := 0
			for _, c := range cells {
				if !c.IsPadding {
					days++
				}
			}
			assert.Equal(t, datekey.DaysInMonth(year, m), days, "%d-%02d", year, m)
		}
	}
}

func TestBuildMonthGridPadding(t *testing.T) {
	// June 2024 starts on a Saturday and ends on a Sunday.
	cells := BuildMonthGrid(2024, time.June, calendar.Overlays{}, "")
	require.Len(t, cells, 42)

	lead := cells[:6]
	for i, c := range lead {
		assert.True(t, c.IsPadding)
		assert.Equal(t, 26+i, c.DayNumber)
		assert.Equal(t, time.May, c.Date.Month())
	}
	assert.Equal(t, datekey.Key("2024-06-01"), cells[6].Date)
	assert.False(t, cells[6].IsPadding)

	trail := cells[36:]
	for i, c := range trail {
		assert.True(t, c.IsPadding)
		assert.Equal(t, i+1, c.DayNumber)
		assert.Equal(t, time.July, c.Date.Month())
	}
}

func TestBuildMonthGridNoTrailingWhenAligned(t *testing.T) {
	// February 2015 starts on Sunday and has 28 days.
	cells := BuildMonthGrid(2015, time.February, calendar.Overlays{}, "")
	assert.Len(t, cells, 28)
	assert.False(t, cells[0].IsPadding)
	assert.False(t, cells[27].IsPadding)
}

func TestBuildMonthGridFlags(t *testing.T) {
	cells := BuildMonthGrid(2024, time.June, calendar.Overlays{}, "2024-06-12")

	var today, sundays int
	for _, c := range cells {
		if c.IsToday {
			today++
			assert.Equal(t, datekey.Key("2024-06-12"), c.Date)
		}
		if c.IsWeekend {
			sundays++
			assert.Equal(t, time.Sunday, c.Date.Weekday())
			assert.False(t, c.IsPadding)
		}
	}
	assert.Equal(t, 1, today)
	assert.Equal(t, 5, sundays)
}

func TestOverlayPrecedence(t *testing.T) {
	key := datekey.Key("2024-03-08")
	overlays := calendar.Overlays{
		Holidays:   map[datekey.Key]calendar.Holiday{key: {Date: key, Name: "Holi"}},
		Leaves:     map[datekey.Key]leave.Record{key: {Type: leave.LeaveTypeCasual}, "2024-03-09": {Type: leave.LeaveTypeSick, DayType: leave.DayTypeHalf}},
		Attendance: map[datekey.Key]attendance.Attendance{key: {Status: "Present"}, "2024-03-09": {Status: "Present"}, "2024-03-11": {Status: "Half Day", WorkHours: "4:10"}},
	}

	holiday := ResolveOverlay(overlays, key)
	assert.Equal(t, calendar.OverlayHoliday, holiday.Kind)
	assert.Equal(t, "Holi", holiday.Label)

	lv := ResolveOverlay(overlays, "2024-03-09")
	assert.Equal(t, calendar.OverlayLeave, lv.Kind)
	assert.Equal(t, "Sick Leave - Half Day", lv.Label)

	att := ResolveOverlay(overlays, "2024-03-11")
	assert.Equal(t, calendar.OverlayAttendance, att.Kind)
	assert.Equal(t, "Half Day", att.Label)
	assert.Equal(t, "4:10", att.Hours)
	assert.Equal(t, "status-half-day", att.Badge)

	assert.Equal(t, calendar.OverlayNone, ResolveOverlay(overlays, "2024-03-12").Kind)
	assert.Equal(t, calendar.OverlayNone, ResolveOverlay(calendar.Overlays{}, key).Kind)
}

func TestAttendanceOverlayLabels(t *testing.T) {
	total := decimalFromString(t, "7.5")
	overlays := calendar.Overlays{
		Attendance: map[datekey.Key]attendance.Attendance{
			"2024-03-01": {},
			"2024-03-04": {Status: "On Leave", WorkHours: "8:00"},
			"2024-03-05": {Status: "Present", TotalHoursWorked: &total},
			"2024-03-06": {Status: "Absent"},
		},
	}

	empty := ResolveOverlay(overlays, "2024-03-01")
	assert.Equal(t, "Present", empty.Label)
	assert.Equal(t, "status-present", empty.Badge)

	onLeave := ResolveOverlay(overlays, "2024-03-04")
	assert.Empty(t, onLeave.Hours)
	assert.Equal(t, "status-leave", onLeave.Badge)

	assert.Equal(t, "7.5 Hrs", ResolveOverlay(overlays, "2024-03-05").Hours)
	assert.Equal(t, "status-absent", ResolveOverlay(overlays, "2024-03-06").Badge)
}

func TestUnnamedHolidayAndUntypedLeave(t *testing.T) {
	overlays := calendar.Overlays{
		Holidays: map[datekey.Key]calendar.Holiday{"2024-01-01": {Date: "2024-01-01"}},
		Leaves:   map[datekey.Key]leave.Record{"2024-01-02": {}},
	}
	assert.Equal(t, "Holiday", ResolveOverlay(overlays, "2024-01-01").Label)
	assert.Equal(t, "Leave", ResolveOverlay(overlays, "2024-01-02").Label)
}

func TestPaddingCellsHaveNoOverlay(t *testing.T) {
	overlays := calendar.Overlays{
		Holidays: map[datekey.Key]calendar.Holiday{"2024-05-31": {Name: "Spill"}},
	}
	cells := BuildMonthGrid(2024, time.June, overlays, "")
	for _, c := range cells {
		if c.IsPadding {
			assert.Equal(t, calendar.OverlayNone, c.Overlay.Kind)
		}
	}
}

func TestExpandLeavesAcrossMonths(t *testing.T) {
	rec := leave.Record{ID: "l1", Type: leave.LeaveTypeCasual, StartDate: "2024-01-30", EndDate: "2024-02-02"}

	days, truncated := ExpandLeaves([]leave.Record{rec})

	assert.False(t, truncated)
	require.Len(t, days, 4)
	for _, k := range []datekey.Key{"2024-01-30", "2024-01-31", "2024-02-01", "2024-02-02"} {
		assert.Equal(t, "l1", days[k].ID, k)
	}
}

func TestExpandLeavesFirstWins(t *testing.T) {
	first := leave.Record{ID: "first", StartDate: "2024-04-01", EndDate: "2024-04-03"}
	second := leave.Record{ID: "second", StartDate: "2024-04-03", EndDate: "2024-04-04"}

	days, _ := ExpandLeaves([]leave.Record{first, second})

	assert.Equal(t, "first", days["2024-04-03"].ID)
	assert.Equal(t, "second", days["2024-04-04"].ID)
}

func TestExpandLeavesMalformed(t *testing.T) {
	days, truncated := ExpandLeaves([]leave.Record{
		{ID: "backwards", StartDate: "2024-04-05", EndDate: "2024-04-01"},
		{ID: "open", StartDate: "2024-04-05"},
	})
	assert.Empty(t, days)
	assert.False(t, truncated)

	days, truncated = ExpandLeaves([]leave.Record{{ID: "long", StartDate: "2020-01-01", EndDate: "2023-01-01"}})
	assert.True(t, truncated)
	assert.Len(t, days, MaxLeaveSpanDays)
	assert.Contains(t, days, datekey.Key("2020-01-01"))
	assert.NotContains(t, days, datekey.Key("2023-01-01"))

	days, truncated = ExpandLeaves([]leave.Record{{ID: "exact", StartDate: "2024-01-01", EndDate: "2024-12-31"}})
	assert.False(t, truncated)
	assert.Len(t, days, 366)
}

func TestBuildMonthGridIdempotent(t *testing.T) {
	leaves, _ := ExpandLeaves([]leave.Record{{ID: "l", Type: leave.LeaveTypeSick, StartDate: "2024-02-27", EndDate: "2024-03-02"}})
	overlays := calendar.Overlays{
		Holidays: map[datekey.Key]calendar.Holiday{"2024-02-14": {Name: "Day"}},
		Leaves:   leaves,
	}
	a := BuildMonthGrid(2024, time.February, overlays, "2024-02-20")
	b := BuildMonthGrid(2024, time.February, overlays, "2024-02-20")
	assert.Equal(t, a, b)
}
