package types

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateUserRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Profile  string `json:"profile"`
}

type UpdateUserRequest struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateAnnouncementRequest struct {
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	Visibility []string `json:"visibility"`
}

type CreateEventRequest struct {
	Date      string `json:"date"`
	Title     string `json:"title"`
	Status    string `json:"status"`
	IsHoliday bool   `json:"is_holiday"`
}

type CreateTaskRequest struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Type        string   `json:"type"`
	Priority    string   `json:"priority"`
	AssignedTo  []string `json:"assigned_to"`
	StartDate   string   `json:"start_date"`
	EndDate     string   `json:"end_date"`
	Subtasks    []string `json:"subtasks"`
	PatientName string   `json:"patient_name"`
	FolderURL   string   `json:"folder_url"`
}

type UpdateTaskStatusRequest struct {
	Status string `json:"status"`
}

type UpdateTaskRequest struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Priority        string   `json:"priority"`
	AssignedTo      []string `json:"assigned_to"`
	StartDate       string   `json:"start_date"`
	EndDate         string   `json:"end_date"`
	AttachmentURL   string   `json:"attachment_url"`
	FolderURL       string   `json:"folder_url"`
	ConclusionNotes string   `json:"conclusion_notes"`
}
