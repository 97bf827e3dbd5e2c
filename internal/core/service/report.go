package service

import (
	"io"

	"github.com/bornholm/vitrine/internal/core/model"
	"github.com/bornholm/vitrine/internal/core/port"
	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

const reportDateLayout = "02/01/2006"

// Report is a tabular export of one record kind.
type Report struct {
	Kind    model.Kind
	Headers []string
	Rows    [][]any
}

func InternsReport(interns []model.Intern) Report {
	report := Report{
		Kind:    model.KindIntern,
		Headers: []string{"Identifiant", "Nom", "Email", "École", "Parcours", "Tuteur", "Arrivée", "Statut", "Score"},
	}

	for _, i := range interns {
		report.Rows = append(report.Rows, []any{
			i.ID, i.Name, i.Email, i.School, i.Track, i.Mentor,
			i.StartDate.Format(reportDateLayout), i.Status.Label(), i.Score,
		})
	}

	return report
}

func EmployeesReport(employees []model.Employee) Report {
	report := Report{
		Kind:    model.KindEmployee,
		Headers: []string{"Identifiant", "Nom", "Email", "Poste", "Service", "Embauche", "Statut"},
	}

	for _, e := range employees {
		report.Rows = append(report.Rows, []any{
			e.ID, e.Name, e.Email, e.Role, e.Department,
			e.HiredAt.Format(reportDateLayout), e.Status.Label(),
		})
	}

	return report
}

func ApplicantsReport(applicants []model.Applicant) Report {
	report := Report{
		Kind:    model.KindApplicant,
		Headers: []string{"Identifiant", "Nom", "Email", "Poste visé", "Candidature", "Étape"},
	}

	for _, a := range applicants {
		report.Rows = append(report.Rows, []any{
			a.ID, a.Name, a.Email, a.Position,
			a.AppliedAt.Format(reportDateLayout), a.Stage.Label(),
		})
	}

	return report
}

func NotificationsReport(notifications []model.Notification) Report {
	report := Report{
		Kind:    model.KindNotification,
		Headers: []string{"Identifiant", "Titre", "Message", "Type", "Date", "Lue"},
	}

	for _, n := range notifications {
		report.Rows = append(report.Rows, []any{
			n.ID, n.Title, n.Body, n.Kind.Label(),
			n.CreatedAt.Format(reportDateLayout), yesNo(n.Read),
		})
	}

	return report
}

// WorkspaceReport builds the report of one kind from the visitor workspace.
func WorkspaceReport(w *Workspace, kind model.Kind) (Report, error) {
	switch kind {
	case model.KindIntern:
		return InternsReport(Snapshot(w, Interns)), nil
	case model.KindEmployee:
		return EmployeesReport(Snapshot(w, Employees)), nil
	case model.KindApplicant:
		return ApplicantsReport(Snapshot(w, Applicants)), nil
	case model.KindNotification:
		return NotificationsReport(Snapshot(w, Notifications)), nil
	default:
		return Report{}, errors.Wrapf(port.ErrUnknownKind, "kind '%s'", kind)
	}
}

// WriteXLSX writes the report as a single sheet spreadsheet.
func (r Report) WriteXLSX(w io.Writer) error {
	file := excelize.NewFile()
	defer file.Close()

	sheet := r.Kind.Label()

	index, err := file.NewSheet(sheet)
	if err != nil {
		return errors.WithStack(err)
	}

	file.SetActiveSheet(index)

	if err := file.DeleteSheet("Sheet1"); err != nil {
		return errors.WithStack(err)
	}

	headers := make([]any, 0, len(r.Headers))
	for _, h := range r.Headers {
		headers = append(headers, h)
	}

	if err := file.SetSheetRow(sheet, "A1", &headers); err != nil {
		return errors.WithStack(err)
	}

	for idx, row := range r.Rows {
		cell, err := excelize.CoordinatesToCellName(1, idx+2)
		if err != nil {
			return errors.WithStack(err)
		}

		if err := file.SetSheetRow(sheet, cell, &row); err != nil {
			return errors.WithStack(err)
		}
	}

	if err := file.SetPanes(sheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return errors.WithStack(err)
	}

	if _, err := file.WriteTo(w); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

func yesNo(v bool) string {
	if v {
		return "Oui"
	}
	return "Non"
}
