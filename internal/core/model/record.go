package model

import (
	"time"

	"github.com/rs/xid"
)

type Kind string

const (
	KindIntern       Kind = "interns"
	KindEmployee     Kind = "employees"
	KindApplicant    Kind = "applicants"
	KindNotification Kind = "notifications"
)

var Kinds = []Kind{KindIntern, KindEmployee, KindApplicant, KindNotification}

func (k Kind) Valid() bool {
	switch k {
	case KindIntern, KindEmployee, KindApplicant, KindNotification:
		return true
	default:
		return false
	}
}

// Label returns the french label displayed in the admin console.
func (k Kind) Label() string {
	switch k {
	case KindIntern:
		return "Stagiaires"
	case KindEmployee:
		return "Employés"
	case KindApplicant:
		return "Candidats"
	case KindNotification:
		return "Notifications"
	default:
		return string(k)
	}
}

func NewID() string {
	return xid.New().String()
}

type InternStatus string

const (
	InternStatusActive     InternStatus = "active"
	InternStatusOnboarding InternStatus = "onboarding"
	InternStatusAlumni     InternStatus = "alumni"
)

type Intern struct {
	ID        string       `yaml:"id" json:"id"`
	Name      string       `yaml:"name" json:"name"`
	Email     string       `yaml:"email" json:"email"`
	School    string       `yaml:"school" json:"school"`
	Track     string       `yaml:"track" json:"track"`
	Mentor    string       `yaml:"mentor" json:"mentor"`
	StartDate time.Time    `yaml:"startDate" json:"startDate"`
	Status    InternStatus `yaml:"status" json:"status"`
	Score     int          `yaml:"score" json:"score"`
}

type EmployeeStatus string

const (
	EmployeeStatusActive EmployeeStatus = "active"
	EmployeeStatusLeave  EmployeeStatus = "leave"
)

type Employee struct {
	ID         string         `yaml:"id" json:"id"`
	Name       string         `yaml:"name" json:"name"`
	Email      string         `yaml:"email" json:"email"`
	Role       string         `yaml:"role" json:"role"`
	Department string         `yaml:"department" json:"department"`
	HiredAt    time.Time      `yaml:"hiredAt" json:"hiredAt"`
	Status     EmployeeStatus `yaml:"status" json:"status"`
}

type ApplicantStage string

const (
	ApplicantStageNew       ApplicantStage = "new"
	ApplicantStageScreening ApplicantStage = "screening"
	ApplicantStageInterview ApplicantStage = "interview"
	ApplicantStageOffer     ApplicantStage = "offer"
	ApplicantStageRejected  ApplicantStage = "rejected"
)

// Open reports whether the application still awaits a decision.
func (s ApplicantStage) Open() bool {
	return s != ApplicantStageOffer && s != ApplicantStageRejected
}

type Applicant struct {
	ID        string         `yaml:"id" json:"id"`
	Name      string         `yaml:"name" json:"name"`
	Email     string         `yaml:"email" json:"email"`
	Position  string         `yaml:"position" json:"position"`
	AppliedAt time.Time      `yaml:"appliedAt" json:"appliedAt"`
	Stage     ApplicantStage `yaml:"stage" json:"stage"`
}

type NotificationKind string

const (
	NotificationKindInfo    NotificationKind = "info"
	NotificationKindWarning NotificationKind = "warning"
	NotificationKindSuccess NotificationKind = "success"
)

type Notification struct {
	ID        string           `yaml:"id" json:"id"`
	Title     string           `yaml:"title" json:"title"`
	Body      string           `yaml:"body" json:"body"`
	Kind      NotificationKind `yaml:"kind" json:"kind"`
	CreatedAt time.Time        `yaml:"createdAt" json:"createdAt"`
	Read      bool             `yaml:"read" json:"read"`
}
