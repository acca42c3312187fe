package types

import (
	"time"
)

const (
	TASK_STATUS_PENDING     = "pending"
	TASK_STATUS_IN_PROGRESS = "in_progress"
	TASK_STATUS_COMPLETED   = "completed"
	TASK_STATUS_ARCHIVED    = "archived"
)

const (
	TASK_PRIORITY_LOW    = "low"
	TASK_PRIORITY_MEDIUM = "medium"
	TASK_PRIORITY_HIGH   = "high"
)

const (
	TASK_TYPE_PATIENT_DOCUMENTS      = "patient_document_management"
	TASK_TYPE_COLLABORATOR_DOCUMENTS = "collaborator_document_management"
	TASK_TYPE_PROFESSIONAL_DOCUMENTS = "professional_document_request"
	TASK_TYPE_SUGGEST_IMPROVEMENT    = "suggest_procedure_improvement"
	TASK_TYPE_PROCEDURE_ERROR        = "point_out_procedure_error"
	TASK_TYPE_RECURRENT_ERROR        = "point_out_recurrent_procedure_error"
	TASK_TYPE_NEW_TASK_REQUEST       = "request_new_task"
	TASK_TYPE_ROUTINE                = "execute_routine_task"
)

var TaskStatuses = []string{
	TASK_STATUS_PENDING,
	TASK_STATUS_IN_PROGRESS,
	TASK_STATUS_COMPLETED,
	TASK_STATUS_ARCHIVED,
}

func ValidTaskStatus(s string) bool {
	for _, known := range TaskStatuses {
		if s == known {
			return true
		}
	}
	return false
}

var TaskTypes = []string{
	TASK_TYPE_PATIENT_DOCUMENTS,
	TASK_TYPE_COLLABORATOR_DOCUMENTS,
	TASK_TYPE_PROFESSIONAL_DOCUMENTS,
	TASK_TYPE_SUGGEST_IMPROVEMENT,
	TASK_TYPE_PROCEDURE_ERROR,
	TASK_TYPE_RECURRENT_ERROR,
	TASK_TYPE_NEW_TASK_REQUEST,
	TASK_TYPE_ROUTINE,
}

func ValidTaskType(t string) bool {
	for _, known := range TaskTypes {
		if t == known {
			return true
		}
	}
	return false
}

func ValidTaskPriority(p string) bool {
	return p == TASK_PRIORITY_LOW || p == TASK_PRIORITY_MEDIUM || p == TASK_PRIORITY_HIGH
}

type Subtask struct {
	ID        string `json:"id" bson:"id"`
	Title     string `json:"title" bson:"title"`
	Completed bool   `json:"completed" bson:"completed"`
}

// Task is the unit of work tracked by the portal. StartDate and EndDate are
// calendar days (YYYY-MM-DD); CreationDate and ConclusionDate are unix
// timestamps stamped by the server.
type Task struct {
	ID              string    `json:"id" bson:"_id,omitempty"`
	Title           string    `json:"title" bson:"title"`
	Description     string    `json:"description" bson:"description"`
	Type            string    `json:"type" bson:"type"`
	Status          string    `json:"status" bson:"status"`
	Priority        string    `json:"priority" bson:"priority"`
	Requester       string    `json:"requester" bson:"requester"`
	AssignedTo      []string  `json:"assigned_to" bson:"assigned_to"`
	CreationDate    int64     `json:"creation_date" bson:"creation_date"`
	StartDate       string    `json:"start_date,omitempty" bson:"start_date,omitempty"`
	EndDate         string    `json:"end_date,omitempty" bson:"end_date,omitempty"`
	ConclusionDate  int64     `json:"conclusion_date,omitempty" bson:"conclusion_date,omitempty"`
	Subtasks        []Subtask `json:"subtasks,omitempty" bson:"subtasks,omitempty"`
	PatientName     string    `json:"patient_name,omitempty" bson:"patient_name,omitempty"`
	AttachmentURL   string    `json:"attachment_url,omitempty" bson:"attachment_url,omitempty"`
	FolderURL       string    `json:"folder_url,omitempty" bson:"folder_url,omitempty"`
	ConclusionNotes string    `json:"conclusion_notes,omitempty" bson:"conclusion_notes,omitempty"`
}

func (t Task) AssignedToUser(userID string) bool {
	return containsString(t.AssignedTo, userID)
}

// Overdue reports whether the task slipped past its end date without being
// completed. Archived tasks count as overdue too when their end date passed;
// completion is the only state that clears the flag.
func (t Task) Overdue(now time.Time) bool {
	if t.EndDate == "" || t.Status == TASK_STATUS_COMPLETED {
		return false
	}
	end, err := time.Parse("2006-01-02", t.EndDate)
	if err != nil {
		return false
	}
	// Compare against the start of today so a task due today is not overdue.
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return end.Before(today)
}

// CompletedLate reports whether the task was concluded after its end date.
// False whenever either date is missing.
func (t Task) CompletedLate() bool {
	if t.Status != TASK_STATUS_COMPLETED || t.ConclusionDate == 0 || t.EndDate == "" {
		return false
	}
	end, err := time.Parse("2006-01-02", t.EndDate)
	if err != nil {
		return false
	}
	return time.Unix(t.ConclusionDate, 0).UTC().After(end)
}

// ValidateDates enforces the only structural date invariant: the end date
// may not precede the start date.
func (t Task) ValidateDates() error {
	if t.StartDate == "" || t.EndDate == "" {
		return nil
	}
	start, err := time.Parse("2006-01-02", t.StartDate)
	if err != nil {
		return ErrInvalidDate
	}
	end, err := time.Parse("2006-01-02", t.EndDate)
	if err != nil {
		return ErrInvalidDate
	}
	if end.Before(start) {
		return ErrEndBeforeStart
	}
	return nil
}

// CompletedSubtasks counts the checked-off subtasks.
func (t Task) CompletedSubtasks() int {
	n := 0
	for _, st := range t.Subtasks {
		if st.Completed {
			n++
		}
	}
	return n
}
