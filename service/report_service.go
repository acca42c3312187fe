package service

import (
	"context"

	"github.com/contempsico/portal-be/repository"
	"github.com/contempsico/portal-be/types"
)

type ReportService interface {
	ProductivityReport(ctx context.Context) ([]types.ProductivityRow, error)
}

type reportService struct {
	taskRepo repository.TaskRepo
	userRepo repository.UserRepo
}

func NewReportService(taskRepo repository.TaskRepo, userRepo repository.UserRepo) ReportService {
	return &reportService{taskRepo: taskRepo, userRepo: userRepo}
}

// ProductivityReport produces one row per non-management user, counting
// their assigned, completed, late-completed and error-report tasks. A plain
// reduction over the task board; nothing is stored.
func (s *reportService) ProductivityReport(ctx context.Context) ([]types.ProductivityRow, error) {
	tasks, err := s.taskRepo.ListTasks(ctx)
	if err != nil {
		return nil, err
	}
	users, err := s.userRepo.ListUsers(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]types.ProductivityRow, 0, len(users))
	for _, user := range users {
		if user.Profile == types.PROFILE_MANAGEMENT {
			continue
		}
		row := types.ProductivityRow{
			UserID:  user.ID,
			Name:    user.Name,
			Profile: user.Profile,
		}
		for _, task := range tasks {
			if !task.AssignedToUser(user.ID) {
				continue
			}
			row.TotalAssigned++
			if task.Status == types.TASK_STATUS_COMPLETED {
				row.TotalCompleted++
				if task.CompletedLate() {
					row.CompletedLate++
				}
			}
			switch task.Type {
			case types.TASK_TYPE_PROCEDURE_ERROR:
				row.ErrorTasks++
			case types.TASK_TYPE_RECURRENT_ERROR:
				row.RecurrentErrorTasks++
			}
		}
		rows = append(rows, row)
	}
	return rows, nil
}
