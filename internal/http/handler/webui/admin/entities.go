package admin

import (
	"strconv"
	"time"

	"github.com/bornholm/vitrine/internal/core/model"
	"github.com/bornholm/vitrine/internal/core/service"
	"github.com/bornholm/vitrine/internal/http/handler/webui/admin/component"
)

const dateLayout = "02/01/2006"

func formatDate(t time.Time) string {
	if t.IsZero() {
		return "-"
	}
	return t.Format(dateLayout)
}

func yesNo(v bool) string {
	if v {
		return "Oui"
	}
	return "Non"
}

var internEntity = entity[model.Intern]{
	Kind:      model.KindIntern,
	Selector:  service.Interns,
	Accessors: service.InternAccessors,
	Columns:   []string{"Nom", "École", "Parcours", "Arrivée", "Statut", "Score"},
	Cells: func(i model.Intern) []component.Cell {
		return []component.Cell{
			{Text: i.Name},
			{Text: i.School},
			{Text: i.Track},
			{Text: formatDate(i.StartDate)},
			{Text: i.Status.Label(), Tag: internStatusTag(i.Status)},
			{Text: strconv.Itoa(i.Score)},
		}
	},
	Fields: func(i model.Intern) []component.DetailField {
		return []component.DetailField{
			{Label: "Email", Value: i.Email},
			{Label: "École", Value: i.School},
			{Label: "Parcours", Value: i.Track},
			{Label: "Tuteur", Value: i.Mentor},
			{Label: "Arrivée", Value: formatDate(i.StartDate)},
			{Label: "Statut", Value: i.Status.Label()},
			{Label: "Score", Value: strconv.Itoa(i.Score)},
			{Label: "Mention", Value: string(service.GradeOf(i.Score))},
		}
	},
}

func internStatusTag(s model.InternStatus) string {
	switch s {
	case model.InternStatusActive:
		return "success"
	case model.InternStatusOnboarding:
		return "info"
	default:
		return "default"
	}
}

var employeeEntity = entity[model.Employee]{
	Kind:      model.KindEmployee,
	Selector:  service.Employees,
	Accessors: service.EmployeeAccessors,
	Columns:   []string{"Nom", "Poste", "Service", "Embauche", "Statut"},
	Cells: func(e model.Employee) []component.Cell {
		tag := "success"
		if e.Status == model.EmployeeStatusLeave {
			tag = "warning"
		}

		return []component.Cell{
			{Text: e.Name},
			{Text: e.Role},
			{Text: e.Department},
			{Text: formatDate(e.HiredAt)},
			{Text: e.Status.Label(), Tag: tag},
		}
	},
	Fields: func(e model.Employee) []component.DetailField {
		return []component.DetailField{
			{Label: "Email", Value: e.Email},
			{Label: "Poste", Value: e.Role},
			{Label: "Service", Value: e.Department},
			{Label: "Embauche", Value: formatDate(e.HiredAt)},
			{Label: "Statut", Value: e.Status.Label()},
		}
	},
}

var applicantEntity = entity[model.Applicant]{
	Kind:      model.KindApplicant,
	Selector:  service.Applicants,
	Accessors: service.ApplicantAccessors,
	Columns:   []string{"Nom", "Poste visé", "Candidature", "Étape"},
	Cells: func(a model.Applicant) []component.Cell {
		return []component.Cell{
			{Text: a.Name},
			{Text: a.Position},
			{Text: formatDate(a.AppliedAt)},
			{Text: a.Stage.Label(), Tag: applicantStageTag(a.Stage)},
		}
	},
	Fields: func(a model.Applicant) []component.DetailField {
		return []component.DetailField{
			{Label: "Email", Value: a.Email},
			{Label: "Poste visé", Value: a.Position},
			{Label: "Candidature", Value: formatDate(a.AppliedAt)},
			{Label: "Étape", Value: a.Stage.Label()},
			{Label: "En cours", Value: yesNo(a.Stage.Open())},
		}
	},
}

func applicantStageTag(s model.ApplicantStage) string {
	switch s {
	case model.ApplicantStageOffer:
		return "success"
	case model.ApplicantStageRejected:
		return "danger"
	default:
		return "info"
	}
}

var notificationEntity = entity[model.Notification]{
	Kind:      model.KindNotification,
	Selector:  service.Notifications,
	Accessors: service.NotificationAccessors,
	Columns:   []string{"Titre", "Type", "Date", "Lue"},
	Cells: func(n model.Notification) []component.Cell {
		return []component.Cell{
			{Text: n.Title},
			{Text: n.Kind.Label(), Tag: notificationKindTag(n.Kind)},
			{Text: formatDate(n.CreatedAt)},
			{Text: yesNo(n.Read)},
		}
	},
	Fields: func(n model.Notification) []component.DetailField {
		return []component.DetailField{
			{Label: "Message", Value: n.Body},
			{Label: "Type", Value: n.Kind.Label()},
			{Label: "Date", Value: n.CreatedAt.Format("02/01/2006 15:04")},
			{Label: "Lue", Value: yesNo(n.Read)},
		}
	},
}

func notificationKindTag(k model.NotificationKind) string {
	switch k {
	case model.NotificationKindWarning:
		return "warning"
	case model.NotificationKindSuccess:
		return "success"
	default:
		return "info"
	}
}
