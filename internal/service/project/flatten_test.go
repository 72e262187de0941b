package project

import (
	"context"
	"testing"

	"github.com/cmlabs-hris/hris-portal-go/internal/domain/project"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleTree() []project.Project {
	return []project.Project{
		{
			ID: "p1", Name: "Portal", Status: "Active",
			Tasks: []project.Task{
				{ID: "t1", Name: "Calendar", Status: "In Progress", AssignedToName: "asha rao",
					SubTasks: []project.Task{{ID: "s1", Name: "Grid", Status: "Done"}}},
				{ID: "t2", Name: "Timeline", Status: "Blocked"},
			},
		},
		{ID: "p2", Name: "Payroll", Status: "Closed Won"},
	}
}

func ids(rows []project.Row) []string {
	out := make([]string, 0, len(rows))
	for _, r := range rows {
		out = append(out, r.ID)
	}
	return out
}

func TestFlattenCollapsed(t *testing.T) {
	rows := Flatten(sampleTree(), nil)

	assert.Equal(t, []string{"p1", "p2"}, ids(rows))
	assert.True(t, rows[0].HasChildren)
	assert.False(t, rows[0].IsExpanded)
	assert.False(t, rows[1].HasChildren)
}

func TestFlattenExpanded(t *testing.T) {
	rows := Flatten(sampleTree(), map[string]bool{"p1": true})
	assert.Equal(t, []string{"p1", "t1", "t2", "p2"}, ids(rows))

	rows = Flatten(sampleTree(), map[string]bool{"p1": true, "t1": true})
	require.Equal(t, []string{"p1", "t1", "s1", "t2", "p2"}, ids(rows))

	sub := rows[2]
	assert.Equal(t, project.RowSubtask, sub.Type)
	assert.Equal(t, 2, sub.Level)
	assert.Equal(t, "t1", sub.ParentID)
	assert.False(t, sub.HasChildren)
	assert.Equal(t, "UA", sub.Initials)
	assert.Equal(t, "AR", rows[1].Initials)
}

func TestFlattenTaskExpandedUnderCollapsedProject(t *testing.T) {
	rows := Flatten(sampleTree(), map[string]bool{"t1": true})
	assert.Equal(t, []string{"p1", "p2"}, ids(rows))
}

func TestBucketStatus(t *testing.T) {
	cases := map[string]project.StatusBucket{
		"":            project.StatusNotStarted,
		"Completed":   project.StatusCompleted,
		"Closed Won":  project.StatusCompleted,
		"In Progress": project.StatusInProgress,
		"Working":     project.StatusInProgress,
		"Active":      project.StatusInProgress,
		"Overdue":     project.StatusOverdue,
		"Blocked":     project.StatusOverdue,
		"Planned":     project.StatusNotStarted,
	}
	for in, want := range cases {
		assert.Equal(t, want, BucketStatus(in), in)
	}
}

func TestInitials(t *testing.T) {
	assert.Equal(t, "UA", Initials(""))
	assert.Equal(t, "JD", Initials("John Doe"))
	assert.Equal(t, "MA", Initials("mary ann smith"))
	assert.Equal(t, "C", Initials("Cher"))
	assert.Equal(t, "JD", Initials("  John  Doe"))
}

type fakeProjects struct{ projects []project.Project }

func (f *fakeProjects) ListHierarchy(ctx context.Context, employeeID string) ([]project.Project, error) {
	return f.projects, nil
}

func TestServiceHierarchy(t *testing.T) {
	svc := NewProjectService(&fakeProjects{projects: sampleTree()})

	resp, err := svc.Hierarchy(context.Background(), project.HierarchyRequest{
		EmployeeID: "emp-1",
		Expanded:   project.ParseExpanded("p1, t1,,"),
	})
	require.NoError(t, err)
	assert.Len(t, resp.Rows, 5)

	resp, err = svc.Hierarchy(context.Background(), project.HierarchyRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)
	assert.Len(t, resp.Rows, 2)

	empty, err := NewProjectService(&fakeProjects{}).Hierarchy(context.Background(), project.HierarchyRequest{EmployeeID: "emp-1"})
	require.NoError(t, err)
	assert.NotNil(t, empty.Rows)
}
