package component

import (
	"embed"
	"html/template"

	"github.com/a-h/templ"
	"github.com/bornholm/vitrine/internal/core/model"
	"github.com/bornholm/vitrine/internal/core/service"
	common "github.com/bornholm/vitrine/internal/http/handler/webui/common/component"
)

//go:embed templates/*.gohtml
var templatesFS embed.FS

var templates = common.ParseTemplates(templatesFS, template.FuncMap{
	"breakdown":  newBreakdown,
	"gradeClass": gradeClass,
	"field":      newFormField,
}, "templates/*.gohtml")

type breakdown struct {
	Title   string
	Buckets []service.Bucket
	Total   int
}

func newBreakdown(title string, buckets []service.Bucket, total int) breakdown {
	return breakdown{Title: title, Buckets: buckets, Total: total}
}

func gradeClass(grade service.Grade) string {
	switch grade {
	case service.GradeA:
		return "is-success"
	case service.GradeB:
		return "is-info"
	case service.GradeC:
		return "is-warning"
	default:
		return "is-danger"
	}
}

type formField struct {
	Name  string
	Label string
	Type  string
	Value string
	Error string
}

func newFormField(name, label, fieldType string, values map[string]string, errors map[string]string) formField {
	return formField{
		Name:  name,
		Label: label,
		Type:  fieldType,
		Value: values[name],
		Error: errors[name],
	}
}

func page(layout common.AdminLayoutVModel, name string, vmodel any) templ.Component {
	return common.AdminLayout(layout, common.Template(templates, name, vmodel))
}

type DashboardPageVModel struct {
	Layout         common.AdminLayoutVModel
	Stats          service.Stats
	Reference      service.Stats
	Events         []model.CalendarEvent
	Today          string
	Goals          []model.Goal
	GoalsDone      int
	Notifications  []model.Notification
	CalendarError  string
	WorkspaceReset bool
}

func DashboardPage(vmodel DashboardPageVModel) templ.Component {
	return page(vmodel.Layout, "dashboard_page", vmodel)
}

type AnalyticsPageVModel struct {
	Layout     common.AdminLayoutVModel
	Stats      service.Stats
	Breakdowns service.Breakdowns
}

func AnalyticsPage(vmodel AnalyticsPageVModel) templ.Component {
	return page(vmodel.Layout, "analytics_page", vmodel)
}

type EvaluationPageVModel struct {
	Layout      common.AdminLayoutVModel
	Evaluations []service.Evaluation
	Grades      []service.Bucket
}

func EvaluationPage(vmodel EvaluationPageVModel) templ.Component {
	return page(vmodel.Layout, "evaluation_page", vmodel)
}

type ReportItem struct {
	Kind  model.Kind
	Label string
	Count int
}

type ReportsPageVModel struct {
	Layout  common.AdminLayoutVModel
	Reports []ReportItem
}

func ReportsPage(vmodel ReportsPageVModel) templ.Component {
	return page(vmodel.Layout, "reports_page", vmodel)
}

type ProfilePageVModel struct {
	Layout        common.AdminLayoutVModel
	Profile       model.Profile
	Values        map[string]string
	Errors        map[string]string
	Saved         bool
	MaxAvatarSize int64
}

func ProfilePage(vmodel ProfilePageVModel) templ.Component {
	return page(vmodel.Layout, "profile_page", vmodel)
}

type NotificationsPanelVModel struct {
	Notifications []model.Notification
	Unread        int
}

func NotificationsPanel(vmodel NotificationsPanelVModel) templ.Component {
	return common.Template(templates, "notifications_panel", vmodel)
}
