package memory

import (
	"context"
	"time"

	"github.com/contempsico/portal-be/types"
	"golang.org/x/crypto/bcrypt"
)

// FixtureSet is the demo dataset the portal ships with. The memory store
// seeds itself from it, and the seed command loads it into Mongo.
type FixtureSet struct {
	Users         []*types.User
	Announcements []*types.Announcement
	Events        []*types.CalendarEvent
	Tasks         []*types.Task
	Trainings     []*types.TrainingMaterial
	Regulations   []*types.RegulationSection
	Links         []*types.UsefulLink
	Services      []*types.ServicePrice
	Psychologists []*types.Psychologist
}

// DemoFixtures builds the demo dataset. Every demo account logs in with
// password "123".
func DemoFixtures(now time.Time) *FixtureSet {
	password, err := bcrypt.GenerateFromPassword([]byte("123"), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	staffVisibility := []string{types.PROFILE_COLLABORATOR, types.PROFILE_PSYCHOLOGIST}
	yesterday := now.AddDate(0, 0, -1).Format("2006-01-02")

	return &FixtureSet{
		Users: []*types.User{
			{ID: "user-management-1", Name: "Maria Manager", Email: "management@contempsico.com", Password: string(password), Profile: types.PROFILE_MANAGEMENT, CreateAt: now.Unix(), UpdateAt: now.Unix()},
			{ID: "user-collab-1", Name: "John Collaborator", Email: "collab@contempsico.com", Password: string(password), Profile: types.PROFILE_COLLABORATOR, CreateAt: now.Unix(), UpdateAt: now.Unix()},
			{ID: "user-psi-1", Name: "Dr. Ana Silva", Email: "ana.silva@contempsico.com", Password: string(password), Profile: types.PROFILE_PSYCHOLOGIST, CreateAt: now.Unix(), UpdateAt: now.Unix()},
			{ID: "user-psi-2", Name: "Dr. Bruno Costa", Email: "bruno.costa@contempsico.com", Password: string(password), Profile: types.PROFILE_PSYCHOLOGIST, CreateAt: now.Unix(), UpdateAt: now.Unix()},
		},
		Announcements: []*types.Announcement{
			{
				ID:         "ann-1",
				Title:      "General Team Meeting",
				Content:    "There will be a mandatory general meeting next Friday at 10am to discuss next quarter's goals.",
				Author:     "Board",
				Date:       now.AddDate(0, 0, -5).Unix(),
				Visibility: staffVisibility,
			},
			{
				ID:         "ann-2",
				Title:      "New Session Protocol",
				Content:    "Psychologists, please review the new session protocol available under Resources > Trainings.",
				Author:     "Coordination",
				Date:       now.AddDate(0, 0, -7).Unix(),
				Visibility: []string{types.PROFILE_PSYCHOLOGIST},
			},
		},
		Events: []*types.CalendarEvent{
			{ID: "evt-1", Date: now.AddDate(0, 0, 9).Format("2006-01-02"), Title: "System Maintenance", Status: types.EVENT_STATUS_NORMAL},
			{ID: "evt-2", Date: now.AddDate(0, 0, 12).Format("2006-01-02"), Title: "Holiday Bridge", Status: types.EVENT_STATUS_CLOSED, IsHoliday: true},
		},
		Tasks: []*types.Task{
			{
				ID:           "task-1",
				Title:        "Verify patient X's appointment",
				Description:  "Patient reported not receiving next week's appointment confirmation.",
				Type:         types.TASK_TYPE_PATIENT_DOCUMENTS,
				Status:       types.TASK_STATUS_PENDING,
				Priority:     types.TASK_PRIORITY_HIGH,
				Requester:    "Dr. Ana Silva",
				AssignedTo:   []string{"user-collab-1"},
				CreationDate: now.AddDate(0, 0, -3).Unix(),
				StartDate:    now.AddDate(0, 0, -2).Format("2006-01-02"),
				EndDate:      yesterday,
				PatientName:  "Patient X",
				FolderURL:    "https://example.com/docs/patient-x",
			},
			{
				ID:           "task-2",
				Title:        "Update onboarding material",
				Description:  "Include the new benefit policies in the onboarding material for new collaborators.",
				Type:         types.TASK_TYPE_ROUTINE,
				Status:       types.TASK_STATUS_IN_PROGRESS,
				Priority:     types.TASK_PRIORITY_MEDIUM,
				Requester:    "Maria Manager",
				AssignedTo:   []string{"user-management-1", "user-collab-1"},
				CreationDate: now.AddDate(0, 0, -6).Unix(),
				StartDate:    now.AddDate(0, 0, -5).Format("2006-01-02"),
				EndDate:      yesterday,
				Subtasks: []types.Subtask{
					{ID: "sub-1", Title: "Review current policies", Completed: true},
					{ID: "sub-2", Title: "Draft benefits section", Completed: true},
					{ID: "sub-3", Title: "Add health plan information", Completed: false},
					{ID: "sub-4", Title: "Send for board approval", Completed: false},
				},
			},
			{
				ID:              "task-3",
				Title:           "Monthly session report",
				Description:     "Prepare the report with the total sessions held last month.",
				Type:            types.TASK_TYPE_PROFESSIONAL_DOCUMENTS,
				Status:          types.TASK_STATUS_COMPLETED,
				Priority:        types.TASK_PRIORITY_MEDIUM,
				Requester:       "Maria Manager",
				AssignedTo:      []string{"user-psi-1", "user-psi-2"},
				CreationDate:    now.AddDate(0, 0, -14).Unix(),
				ConclusionDate:  now.AddDate(0, 0, -1).Unix(),
				AttachmentURL:   "https://example.com/report.pdf",
				ConclusionNotes: "Report finished and sent to the board. All data consolidated.",
			},
			{
				ID:           "task-4",
				Title:        "Organize old files",
				Description:  "Archive records of patients discharged more than 5 years ago.",
				Type:         types.TASK_TYPE_COLLABORATOR_DOCUMENTS,
				Status:       types.TASK_STATUS_ARCHIVED,
				Priority:     types.TASK_PRIORITY_MEDIUM,
				Requester:    "Maria Manager",
				AssignedTo:   []string{"user-collab-1"},
				CreationDate: now.AddDate(0, -1, 0).Unix(),
			},
		},
		Trainings: []*types.TrainingMaterial{
			{ID: "trn-1", Title: "New Collaborator Onboarding", Description: "Full welcome process video.", Type: types.MATERIAL_TYPE_VIDEO, Category: "Integration", URL: "https://example.com/onboarding"},
			{ID: "trn-2", Title: "Internal System Manual", Description: "PDF document covering every feature.", Type: types.MATERIAL_TYPE_PDF, Category: "Tools", URL: "https://example.com/manual.pdf"},
		},
		Regulations: []*types.RegulationSection{
			{ID: "reg-1", Title: "Code of Conduct", Content: "Detailed content about the code of conduct.", Visibility: staffVisibility},
			{ID: "reg-2", Title: "Vacation Policy", Content: "Detailed content about the vacation policy.", Visibility: staffVisibility},
		},
		Links: []*types.UsefulLink{
			{ID: "lnk-1", Category: "Tools", Title: "Scheduling System", URL: "https://example.com/scheduler", Visibility: staffVisibility},
			{ID: "lnk-2", Category: "Benefits", Title: "Health Plan Portal", URL: "https://example.com/health", Visibility: staffVisibility},
			{ID: "lnk-3", Category: "Help", Title: "How to use the portal", URL: "https://example.com/help", Visibility: staffVisibility},
		},
		Services: []*types.ServicePrice{
			{ID: "svc-1", ServiceName: "Individual Psychotherapy Session", Description: "50 minute session.", Value: 150.00, Visibility: staffVisibility},
			{ID: "svc-2", ServiceName: "Couples Therapy", Description: "80 minute session for couples.", Value: 250.00, Visibility: staffVisibility},
			{ID: "svc-3", ServiceName: "Neuropsychological Assessment", Description: "Complete assessment package with feedback.", Value: 1200.00, Visibility: []string{types.PROFILE_MANAGEMENT}},
		},
		Psychologists: []*types.Psychologist{
			{
				ID: "psi-1", Name: "Dr. Ana Silva", CRP: "06/123456", Phone: "(11) 98765-4321",
				Email: "ana.silva@contempsico.com", Specialty: "Cognitive Behavioral Therapy", CPF: "123.456.789-00",
				GraduationUniversity: "University of Sao Paulo", SpecializationUniversity: "Institute of Psychiatry",
				TheoreticalApproach: "Focus on cognitive restructuring for anxiety and depression treatment.",
			},
			{
				ID: "psi-2", Name: "Dr. Bruno Costa", CRP: "06/654321", Phone: "(11) 91234-5678",
				Email: "bruno.costa@contempsico.com", Specialty: "Psychoanalysis", CPF: "987.654.321-99",
				GraduationUniversity: "Pontifical Catholic University", SpecializationUniversity: "Sedes Sapientiae Institute",
				TheoreticalApproach: "Psychoanalytic approach centered on the exploration of the unconscious.",
			},
		},
	}
}

// Seed loads the demo dataset into the store.
func (s *Store) Seed(ctx context.Context) error {
	fixtures := DemoFixtures(time.Now())
	for _, user := range fixtures.Users {
		if err := s.CreateUser(ctx, user); err != nil {
			return err
		}
	}
	for _, announcement := range fixtures.Announcements {
		if err := s.CreateAnnouncement(ctx, announcement); err != nil {
			return err
		}
	}
	for _, event := range fixtures.Events {
		if err := s.CreateEvent(ctx, event); err != nil {
			return err
		}
	}
	for _, task := range fixtures.Tasks {
		if err := s.CreateTask(ctx, task); err != nil {
			return err
		}
	}
	for _, training := range fixtures.Trainings {
		if err := s.CreateTraining(ctx, training); err != nil {
			return err
		}
	}
	for _, section := range fixtures.Regulations {
		if err := s.CreateRegulation(ctx, section); err != nil {
			return err
		}
	}
	for _, link := range fixtures.Links {
		if err := s.CreateLink(ctx, link); err != nil {
			return err
		}
	}
	for _, service := range fixtures.Services {
		if err := s.CreateService(ctx, service); err != nil {
			return err
		}
	}
	for _, psychologist := range fixtures.Psychologists {
		if err := s.CreatePsychologist(ctx, psychologist); err != nil {
			return err
		}
	}
	return nil
}
