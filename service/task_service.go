package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/contempsico/portal-be/repository"
	"github.com/contempsico/portal-be/types"
	"github.com/google/uuid"
)

type TaskService interface {
	ListTasks(ctx context.Context, viewer *types.User) ([]types.TaskView, error)
	GetTask(ctx context.Context, viewer *types.User, id string) (*types.TaskView, error)
	CreateTask(ctx context.Context, requester *types.User, req *types.CreateTaskRequest) (*types.Task, error)
	UpdateTask(ctx context.Context, viewer *types.User, id string, req *types.UpdateTaskRequest) (*types.Task, error)
	ChangeStatus(ctx context.Context, viewer *types.User, id, status string) (*types.Task, error)
	ToggleSubtask(ctx context.Context, viewer *types.User, taskID, subtaskID string) (*types.Task, error)
	DeleteTask(ctx context.Context, viewer *types.User, id string) error
	PendingCount(ctx context.Context, viewer *types.User) (int, error)
}

// taskService keeps a local cache of the task board in front of the
// repository. Mutations are applied to the cache first and rolled back to
// the exact prior object when the repository rejects them, so a failed
// remote call never leaves a half-applied task behind.
type taskService struct {
	repo     repository.TaskRepo
	notifier Notifier
	now      func() time.Time

	mu    sync.RWMutex
	cache map[string]*types.Task
}

func NewTaskService(repo repository.TaskRepo, notifier Notifier) TaskService {
	return &taskService{
		repo:     repo,
		notifier: notifier,
		now:      time.Now,
		cache:    make(map[string]*types.Task),
	}
}

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

func (s *taskService) view(task *types.Task) types.TaskView {
	return types.TaskView{
		Task:          task,
		Overdue:       task.Overdue(s.now()),
		CompletedLate: task.CompletedLate(),
	}
}

// canTouch decides whether the viewer may read or mutate the task:
// management always, everyone else only when assigned.
func canTouch(viewer *types.User, task *types.Task) bool {
	if viewer.Profile == types.PROFILE_MANAGEMENT {
		return true
	}
	perms := types.ResolvePermissions(viewer.Profile, types.MODULE_TASKS)
	return perms.CanEdit && task.AssignedToUser(viewer.ID)
}

func (s *taskService) refreshCache(tasks []*types.Task) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache = make(map[string]*types.Task, len(tasks))
	for _, task := range tasks {
		s.cache[task.ID] = cloneTask(task)
	}
}

// cached returns the cached copy of a task, falling back to the repository
// on a cache miss.
func (s *taskService) cached(ctx context.Context, id string) (*types.Task, error) {
	s.mu.RLock()
	task, ok := s.cache[id]
	s.mu.RUnlock()
	if ok {
		return cloneTask(task), nil
	}
	task, err := s.repo.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}
	s.mu.Lock()
	s.cache[id] = cloneTask(task)
	s.mu.Unlock()
	return cloneTask(task), nil
}

func (s *taskService) storeInCache(task *types.Task) {
	s.mu.Lock()
	s.cache[task.ID] = cloneTask(task)
	s.mu.Unlock()
}

func (s *taskService) dropFromCache(id string) {
	s.mu.Lock()
	delete(s.cache, id)
	s.mu.Unlock()
}

// ListTasks returns the tasks the viewer may see, newest first, with the
// derived overdue/late flags attached.
func (s *taskService) ListTasks(ctx context.Context, viewer *types.User) ([]types.TaskView, error) {
	tasks, err := s.repo.ListTasks(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(tasks, func(i, j int) bool {
		return tasks[i].CreationDate > tasks[j].CreationDate
	})
	s.refreshCache(tasks)

	visible := types.FilterAssignedTasks(tasks, viewer)
	views := make([]types.TaskView, 0, len(visible))
	for _, task := range visible {
		views = append(views, s.view(task))
	}
	return views, nil
}

func (s *taskService) GetTask(ctx context.Context, viewer *types.User, id string) (*types.TaskView, error) {
	task, err := s.cached(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canTouch(viewer, task) {
		return nil, types.ErrForbidden
	}
	view := s.view(task)
	return &view, nil
}

func (s *taskService) CreateTask(ctx context.Context, requester *types.User, req *types.CreateTaskRequest) (*types.Task, error) {
	perms := types.ResolvePermissions(requester.Profile, types.MODULE_TASKS)
	if !perms.CanCreate {
		return nil, types.ErrForbidden
	}
	if !types.ValidTaskType(req.Type) {
		return nil, types.ErrInvalidType
	}
	priority := req.Priority
	if priority == "" {
		priority = types.TASK_PRIORITY_MEDIUM
	}
	if !types.ValidTaskPriority(priority) {
		return nil, types.ErrInvalidPriority
	}

	task := &types.Task{
		ID:           uuid.NewString(),
		Title:        req.Title,
		Description:  req.Description,
		Type:         req.Type,
		Status:       types.TASK_STATUS_PENDING,
		Priority:     priority,
		Requester:    requester.Name,
		AssignedTo:   req.AssignedTo,
		CreationDate: s.now().Unix(),
		StartDate:    req.StartDate,
		EndDate:      req.EndDate,
		FolderURL:    req.FolderURL,
	}
	// The patient name only applies to patient document tasks.
	if req.Type == types.TASK_TYPE_PATIENT_DOCUMENTS {
		task.PatientName = req.PatientName
	}
	for _, title := range req.Subtasks {
		task.Subtasks = append(task.Subtasks, types.Subtask{ID: uuid.NewString(), Title: title})
	}
	if err := task.ValidateDates(); err != nil {
		return nil, err
	}
	if err := s.repo.CreateTask(ctx, task); err != nil {
		return nil, err
	}
	s.storeInCache(task)
	s.notifier.Broadcast(EventTaskCreated, task)
	return task, nil
}

func (s *taskService) UpdateTask(ctx context.Context, viewer *types.User, id string, req *types.UpdateTaskRequest) (*types.Task, error) {
	snapshot, err := s.cached(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canTouch(viewer, snapshot) {
		return nil, types.ErrForbidden
	}

	updated := cloneTask(snapshot)
	if req.Title != "" {
		updated.Title = req.Title
	}
	if req.Description != "" {
		updated.Description = req.Description
	}
	if req.Priority != "" {
		if !types.ValidTaskPriority(req.Priority) {
			return nil, types.ErrInvalidPriority
		}
		updated.Priority = req.Priority
	}
	if req.AssignedTo != nil {
		updated.AssignedTo = req.AssignedTo
	}
	if req.StartDate != "" {
		updated.StartDate = req.StartDate
	}
	if req.EndDate != "" {
		updated.EndDate = req.EndDate
	}
	if req.AttachmentURL != "" {
		updated.AttachmentURL = req.AttachmentURL
	}
	if req.FolderURL != "" {
		updated.FolderURL = req.FolderURL
	}
	if req.ConclusionNotes != "" {
		updated.ConclusionNotes = req.ConclusionNotes
	}
	if err := updated.ValidateDates(); err != nil {
		return nil, err
	}

	s.storeInCache(updated)
	if err := s.repo.UpdateTask(ctx, updated); err != nil {
		s.storeInCache(snapshot)
		return nil, err
	}
	return updated, nil
}

// ChangeStatus moves a task to any status; the graph is deliberately
// permissive. Completing a task stamps its conclusion date, leaving the
// completed state clears it again.
func (s *taskService) ChangeStatus(ctx context.Context, viewer *types.User, id, status string) (*types.Task, error) {
	if !types.ValidTaskStatus(status) {
		return nil, types.ErrInvalidStatus
	}
	snapshot, err := s.cached(ctx, id)
	if err != nil {
		return nil, err
	}
	if !canTouch(viewer, snapshot) {
		return nil, types.ErrForbidden
	}

	updated := cloneTask(snapshot)
	updated.Status = status
	if status == types.TASK_STATUS_COMPLETED {
		if updated.ConclusionDate == 0 {
			updated.ConclusionDate = s.now().Unix()
		}
	} else if snapshot.ConclusionDate != 0 && status != types.TASK_STATUS_ARCHIVED {
		updated.ConclusionDate = 0
	}

	s.storeInCache(updated)
	if err := s.repo.UpdateTask(ctx, updated); err != nil {
		s.storeInCache(snapshot)
		return nil, err
	}
	s.notifier.Broadcast(EventTaskStatusChanged, updated)
	return updated, nil
}

// ToggleSubtask flips one subtask's completed flag. The parent task status
// never changes automatically.
func (s *taskService) ToggleSubtask(ctx context.Context, viewer *types.User, taskID, subtaskID string) (*types.Task, error) {
	snapshot, err := s.cached(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if !canTouch(viewer, snapshot) {
		return nil, types.ErrForbidden
	}

	updated := cloneTask(snapshot)
	found := false
	for i := range updated.Subtasks {
		if updated.Subtasks[i].ID == subtaskID {
			updated.Subtasks[i].Completed = !updated.Subtasks[i].Completed
			found = true
			break
		}
	}
	if !found {
		return nil, types.ErrSubtaskNotFound
	}

	s.storeInCache(updated)
	if err := s.repo.UpdateTask(ctx, updated); err != nil {
		s.storeInCache(snapshot)
		return nil, err
	}
	return updated, nil
}

func (s *taskService) DeleteTask(ctx context.Context, viewer *types.User, id string) error {
	perms := types.ResolvePermissions(viewer.Profile, types.MODULE_TASKS)
	if !perms.CanDelete {
		return types.ErrForbidden
	}
	if err := s.repo.DeleteTask(ctx, id); err != nil {
		return err
	}
	s.dropFromCache(id)
	s.notifier.Broadcast(EventTaskDeleted, id)
	return nil
}

// PendingCount backs the "my tasks" widget: how many pending tasks are
// assigned to the viewer. Management gets zero, matching the board it does
// not appear on.
func (s *taskService) PendingCount(ctx context.Context, viewer *types.User) (int, error) {
	if viewer.Profile == types.PROFILE_MANAGEMENT {
		return 0, nil
	}
	tasks, err := s.repo.ListTasks(ctx)
	if err != nil {
		return 0, err
	}
	count := 0
	for _, task := range tasks {
		if task.Status == types.TASK_STATUS_PENDING && task.AssignedToUser(viewer.ID) {
			count++
		}
	}
	return count, nil
}
