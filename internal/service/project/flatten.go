package project

import (
	"strings"
	"unicode"

	"github.com/cmlabs-hris/hris-portal-go/internal/domain/project"
)

// Flatten walks the project tree depth first and emits the visible rows.
// Children of a project or task appear only when its id is in expanded.
func Flatten(projects []project.Project, expanded map[string]bool) []project.Row {
	var rows []project.Row

	for _, p := range projects {
		open := expanded[p.ID]
		rows = append(rows, project.Row{
			ID:           p.ID,
			Name:         p.Name,
			Type:         project.RowProject,
			Level:        0,
			HasChildren:  len(p.Tasks) > 0,
			IsExpanded:   open,
			Status:       p.Status,
			StatusBucket: BucketStatus(p.Status),
			StartDate:    p.StartDate,
			EndDate:      p.EndDate,
		})
		if !open {
			continue
		}

		for _, t := range p.Tasks {
			taskOpen := expanded[t.ID]
			row := taskRow(t, project.RowTask, 1, p.ID)
			row.HasChildren = len(t.SubTasks) > 0
			row.IsExpanded = taskOpen
			rows = append(rows, row)
			if !taskOpen {
				continue
			}

			for _, sub := range t.SubTasks {
				rows = append(rows, taskRow(sub, project.RowSubtask, 2, t.ID))
			}
		}
	}

	return rows
}

func taskRow(t project.Task, typ project.RowType, level int, parentID string) project.Row {
	return project.Row{
		ID:             t.ID,
		ParentID:       parentID,
		Name:           t.Name,
		Type:           typ,
		Level:          level,
		Status:         t.Status,
		StatusBucket:   BucketStatus(t.Status),
		AssignedToName: t.AssignedToName,
		Initials:       Initials(t.AssignedToName),
		DueDate:        t.DueDate,
		EstimatedHours: t.EstimatedHours,
		ActualHours:    t.ActualHours,
	}
}

// BucketStatus groups free text statuses by keyword.
func BucketStatus(status string) project.StatusBucket {
	s := strings.ToLower(status)
	switch {
	case s == "":
		return project.StatusNotStarted
	case containsAny(s, "completed", "closed", "done", "won"):
		return project.StatusCompleted
	case containsAny(s, "progress", "working", "active"):
		return project.StatusInProgress
	case containsAny(s, "overdue", "blocked"):
		return project.StatusOverdue
	default:
		return project.StatusNotStarted
	}
}

func containsAny(s string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}

// Initials takes the first letter of the first two words. Unassigned rows
// get "UA".
func Initials(name string) string {
	if name == "" {
		return "UA"
	}
	var b []rune
	for _, part := range strings.Split(name, " ") {
		if part == "" {
			continue
		}
		b = append(b, []rune(part)[0])
		if len(b) == 2 {
			break
		}
	}
	return strings.Map(unicode.ToUpper, string(b))
}
