package memory

import (
	"context"

	"github.com/contempsico/portal-be/types"
)

func cloneTask(task *types.Task) *types.Task {
	clone := *task
	if task.AssignedTo != nil {
		clone.AssignedTo = append([]string(nil), task.AssignedTo...)
	}
	if task.Subtasks != nil {
		clone.Subtasks = append([]types.Subtask(nil), task.Subtasks...)
	}
	return &clone
}

func (s *Store) CreateTask(ctx context.Context, task *types.Task) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	// Newest first, the way the board lists them.
	s.tasks = append([]*types.Task{cloneTask(task)}, s.tasks...)
	return nil
}

func (s *Store) GetTask(ctx context.Context, id string) (*types.Task, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, task := range s.tasks {
		if task.ID == id {
			return cloneTask(task), nil
		}
	}
	return nil, types.ErrNotFound
}

func (s *Store) ListTasks(ctx context.Context) ([]*types.Task, error) {
	if err := s.wait(ctx); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	tasks := make([]*types.Task, 0, len(s.tasks))
	for _, task := range s.tasks {
		tasks = append(tasks, cloneTask(task))
	}
	return tasks, nil
}

func (s *Store) UpdateTask(ctx context.Context, task *types.Task) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.tasks {
		if existing.ID == task.ID {
			s.tasks[i] = cloneTask(task)
			return nil
		}
	}
	return types.ErrNotFound
}

func (s *Store) DeleteTask(ctx context.Context, id string) error {
	if err := s.wait(ctx); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.tasks {
		if existing.ID == id {
			s.tasks = append(s.tasks[:i], s.tasks[i+1:]...)
			return nil
		}
	}
	return types.ErrNotFound
}
