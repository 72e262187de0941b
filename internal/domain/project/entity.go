package project

import (
	"github.com/cmlabs-hris/hris-portal-go/internal/pkg/datekey"
	"github.com/shopspring/decimal"
)

type Project struct {
	ID        string
	Name      string
	Status    string
	StartDate datekey.Key
	EndDate   datekey.Key
	Tasks     []Task
}

// Task is a project task. Subtasks hang off their parent task and have no
// children of their own.
type Task struct {
	ID             string
	ProjectID      string
	ParentTaskID   string
	Name           string
	Status         string
	AssignedToName string
	DueDate        datekey.Key
	EstimatedHours decimal.Decimal
	ActualHours    decimal.Decimal
	SubTasks       []Task
}

type RowType string

const (
	RowProject RowType = "project"
	RowTask    RowType = "task"
	RowSubtask RowType = "subtask"
)

type StatusBucket string

const (
	StatusCompleted  StatusBucket = "completed"
	StatusInProgress StatusBucket = "in_progress"
	StatusOverdue    StatusBucket = "overdue"
	StatusNotStarted StatusBucket = "not_started"
)

// Row is one visible line of the flattened tree.
type Row struct {
	ID             string          `json:"id"`
	ParentID       string          `json:"parent_id,omitempty"`
	Name           string          `json:"name"`
	Type           RowType         `json:"type"`
	Level          int             `json:"level"`
	HasChildren    bool            `json:"has_children"`
	IsExpanded     bool            `json:"is_expanded"`
	Status         string          `json:"status"`
	StatusBucket   StatusBucket    `json:"status_bucket"`
	AssignedToName string          `json:"assigned_to_name,omitempty"`
	Initials       string          `json:"initials,omitempty"`
	StartDate      datekey.Key     `json:"start_date,omitempty"`
	EndDate        datekey.Key     `json:"end_date,omitempty"`
	DueDate        datekey.Key     `json:"due_date,omitempty"`
	EstimatedHours decimal.Decimal `json:"estimated_hours"`
	ActualHours    decimal.Decimal `json:"actual_hours"`
}
