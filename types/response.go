package types

type DataResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type PaginateResponse struct {
	Total    int64       `json:"total"`
	Elements interface{} `json:"elements"`
	Page     int64       `json:"page"`
	Limit    int64       `json:"limit"`
}

type LoginResponse struct {
	AccessToken string `json:"access_token"`
	User        *User  `json:"user"`
}

// TaskView is a task plus the flags derived at read time. The flags are
// never stored.
type TaskView struct {
	*Task
	Overdue       bool `json:"overdue"`
	CompletedLate bool `json:"completed_late"`
}

// ProductivityRow is one line of the per-user productivity report.
type ProductivityRow struct {
	UserID              string `json:"user_id"`
	Name                string `json:"name"`
	Profile             string `json:"profile"`
	TotalAssigned       int    `json:"total_assigned"`
	TotalCompleted      int    `json:"total_completed"`
	CompletedLate       int    `json:"completed_late"`
	ErrorTasks          int    `json:"error_tasks"`
	RecurrentErrorTasks int    `json:"recurrent_error_tasks"`
}

type PendingTasksResponse struct {
	Pending int `json:"pending"`
}
