package timelog

import "github.com/shopspring/decimal"

type Period string

const (
	PeriodMonth Period = "month"
	PeriodWeek  Period = "week"
)

type Week string

const (
	WeekThis Week = "this"
	WeekLast Week = "last"
)

// TaskSummary is the logged time of one task over a period.
type TaskSummary struct {
	TaskID      string          `json:"task_id"`
	TaskName    string          `json:"task_name"`
	ProjectName string          `json:"project_name"`
	Hours       decimal.Decimal `json:"hours"`
	Entries     int             `json:"entries"`
}
