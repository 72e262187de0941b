package project

// BuildTree attaches tasks to their projects and subtasks to their parent
// task. Tasks keep their input order. A task whose parent is unknown, or is
// itself a subtask, is attached to the project directly.
func BuildTree(projects []Project, tasks []Task) []Project {
	index := make(map[string]int, len(projects))
	for i := range projects {
		index[projects[i].ID] = i
		projects[i].Tasks = nil
	}

	byID := make(map[string]Task, len(tasks))
	for _, t := range tasks {
		byID[t.ID] = t
	}

	subtasks := make(map[string][]Task)
	var roots []Task
	for _, t := range tasks {
		parent, ok := byID[t.ParentTaskID]
		if t.ParentTaskID != "" && ok && parent.ParentTaskID == "" && parent.ProjectID == t.ProjectID {
			subtasks[t.ParentTaskID] = append(subtasks[t.ParentTaskID], t)
			continue
		}
		roots = append(roots, t)
	}

	for _, t := range roots {
		i, ok := index[t.ProjectID]
		if !ok {
			continue
		}
		t.SubTasks = subtasks[t.ID]
		projects[i].Tasks = append(projects[i].Tasks, t)
	}

	return projects
}
