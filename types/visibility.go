package types

// Visible is implemented by every entity that carries a visibility set.
type Visible interface {
	VisibleTo(profile string) bool
}

// FilterVisible returns the items the viewer may see, order preserved.
// Management bypasses the filter entirely.
func FilterVisible[T Visible](items []T, viewer *User) []T {
	if viewer == nil {
		return nil
	}
	if viewer.Profile == PROFILE_MANAGEMENT {
		return items
	}
	visible := make([]T, 0, len(items))
	for _, item := range items {
		if item.VisibleTo(viewer.Profile) {
			visible = append(visible, item)
		}
	}
	return visible
}

// FilterAssignedTasks applies the task variant of the visibility contract:
// management sees every task, everyone else only the tasks assigned to them.
func FilterAssignedTasks(tasks []*Task, viewer *User) []*Task {
	if viewer == nil {
		return nil
	}
	if viewer.Profile == PROFILE_MANAGEMENT {
		return tasks
	}
	visible := make([]*Task, 0, len(tasks))
	for _, t := range tasks {
		if t.AssignedToUser(viewer.ID) {
			visible = append(visible, t)
		}
	}
	return visible
}
