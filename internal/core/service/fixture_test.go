package service

import (
	"context"
	"time"

	"github.com/bornholm/vitrine/internal/core/model"
	"github.com/bornholm/vitrine/internal/core/port"
)

func testSources() port.RecordSources {
	day := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)

	return port.RecordSources{
		Interns: port.RecordSourceFunc[model.Intern](func(ctx context.Context) ([]model.Intern, error) {
			return []model.Intern{
				{ID: "int-1", Name: "Alice Martin", Track: "Data", Status: model.InternStatusActive, Score: 92, StartDate: day},
				{ID: "int-2", Name: "Bruno Petit", Track: "Data", Status: model.InternStatusOnboarding, Score: 70, StartDate: day},
				{ID: "int-3", Name: "Chloé Roux", Track: "Web", Status: model.InternStatusActive, Score: 70, StartDate: day},
				{ID: "int-4", Name: "David Noël", Track: "Cloud", Status: model.InternStatusAlumni, Score: 40, StartDate: day},
			}, nil
		}),
		Employees: port.RecordSourceFunc[model.Employee](func(ctx context.Context) ([]model.Employee, error) {
			return []model.Employee{
				{ID: "emp-1", Name: "Emma Blanc", Department: "Tech", Status: model.EmployeeStatusActive, HiredAt: day},
				{ID: "emp-2", Name: "Félix Garnier", Department: "RH", Status: model.EmployeeStatusLeave, HiredAt: day},
			}, nil
		}),
		Applicants: port.RecordSourceFunc[model.Applicant](func(ctx context.Context) ([]model.Applicant, error) {
			return []model.Applicant{
				{ID: "app-1", Name: "Gabriel Faure", Stage: model.ApplicantStageNew, AppliedAt: day},
				{ID: "app-2", Name: "Hugo Lemaire", Stage: model.ApplicantStageOffer, AppliedAt: day},
				{ID: "app-3", Name: "Inès Moreau", Stage: model.ApplicantStageInterview, AppliedAt: day},
			}, nil
		}),
		Notifications: port.RecordSourceFunc[model.Notification](func(ctx context.Context) ([]model.Notification, error) {
			return []model.Notification{
				{ID: "ntf-1", Title: "Nouvelle candidature", Kind: model.NotificationKindInfo, CreatedAt: day},
				{ID: "ntf-2", Title: "Évaluation terminée", Kind: model.NotificationKindSuccess, CreatedAt: day, Read: true},
			}, nil
		}),
	}
}
