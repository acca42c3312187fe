package types

const (
	PROFILE_MANAGEMENT   = "management"
	PROFILE_COLLABORATOR = "collaborator"
	PROFILE_PSYCHOLOGIST = "psychologist"
)

const (
	EVENT_STATUS_CLOSED = "closed"
	EVENT_STATUS_NORMAL = "normal_operation"
)

const (
	MATERIAL_TYPE_VIDEO = "video"
	MATERIAL_TYPE_PDF   = "pdf"
)

// Profiles lists every valid role profile.
var Profiles = []string{PROFILE_MANAGEMENT, PROFILE_COLLABORATOR, PROFILE_PSYCHOLOGIST}

func ValidProfile(p string) bool {
	for _, known := range Profiles {
		if p == known {
			return true
		}
	}
	return false
}

type User struct {
	ID       string `json:"id" bson:"_id,omitempty"`
	Name     string `json:"name" bson:"name"`
	Email    string `json:"email" bson:"email"`
	Password string `json:"-" bson:"password"`
	Profile  string `json:"profile" bson:"profile"`
	CreateAt int64  `json:"created_at" bson:"created_at"`
	UpdateAt int64  `json:"updated_at" bson:"updated_at"`
}

type Announcement struct {
	ID         string   `json:"id" bson:"_id,omitempty"`
	Title      string   `json:"title" bson:"title"`
	Content    string   `json:"content" bson:"content"`
	Author     string   `json:"author" bson:"author"`
	Date       int64    `json:"date" bson:"date"`
	Visibility []string `json:"visibility" bson:"visibility"`
}

func (a Announcement) VisibleTo(profile string) bool {
	return containsString(a.Visibility, profile)
}

// CalendarEvent marks a calendar day as closed or open for normal
// operation. Date is the calendar day in YYYY-MM-DD form; the portal keeps
// at most one event per day but nothing here enforces that.
type CalendarEvent struct {
	ID        string `json:"id" bson:"_id,omitempty"`
	Date      string `json:"date" bson:"date"`
	Title     string `json:"title" bson:"title"`
	Status    string `json:"status" bson:"status"`
	IsHoliday bool   `json:"is_holiday,omitempty" bson:"is_holiday,omitempty"`
}

type ServicePrice struct {
	ID          string   `json:"id" bson:"_id,omitempty"`
	ServiceName string   `json:"service_name" bson:"service_name"`
	Description string   `json:"description" bson:"description"`
	Value       float64  `json:"value" bson:"value"`
	Visibility  []string `json:"visibility" bson:"visibility"`
}

func (s ServicePrice) VisibleTo(profile string) bool {
	return containsString(s.Visibility, profile)
}

type Psychologist struct {
	ID                       string `json:"id" bson:"_id,omitempty"`
	Name                     string `json:"name" bson:"name"`
	CRP                      string `json:"crp" bson:"crp"`
	Phone                    string `json:"phone" bson:"phone"`
	Email                    string `json:"email" bson:"email"`
	Specialty                string `json:"specialty" bson:"specialty"`
	CPF                      string `json:"cpf" bson:"cpf"`
	GraduationUniversity     string `json:"graduation_university" bson:"graduation_university"`
	SpecializationUniversity string `json:"specialization_university" bson:"specialization_university"`
	TheoreticalApproach      string `json:"theoretical_approach" bson:"theoretical_approach"`
}

type TrainingMaterial struct {
	ID          string `json:"id" bson:"_id,omitempty"`
	Title       string `json:"title" bson:"title"`
	Description string `json:"description" bson:"description"`
	Type        string `json:"type" bson:"type"`
	URL         string `json:"url" bson:"url"`
	Category    string `json:"category" bson:"category"`
}

type RegulationSection struct {
	ID         string   `json:"id" bson:"_id,omitempty"`
	Title      string   `json:"title" bson:"title"`
	Content    string   `json:"content" bson:"content"`
	Visibility []string `json:"visibility" bson:"visibility"`
}

func (r RegulationSection) VisibleTo(profile string) bool {
	return containsString(r.Visibility, profile)
}

type UsefulLink struct {
	ID         string   `json:"id" bson:"_id,omitempty"`
	Title      string   `json:"title" bson:"title"`
	URL        string   `json:"url" bson:"url"`
	Category   string   `json:"category" bson:"category"`
	Visibility []string `json:"visibility" bson:"visibility"`
}

func (l UsefulLink) VisibleTo(profile string) bool {
	return containsString(l.Visibility, profile)
}

func containsString(set []string, s string) bool {
	for _, v := range set {
		if v == s {
			return true
		}
	}
	return false
}
