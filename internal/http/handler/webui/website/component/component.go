package component

import (
	"embed"
	"html/template"

	"github.com/a-h/templ"
	"github.com/bornholm/vitrine/internal/core/model"
	common "github.com/bornholm/vitrine/internal/http/handler/webui/common/component"
)

//go:embed templates/*.gohtml
var templatesFS embed.FS

var templates = common.ParseTemplates(templatesFS, template.FuncMap{
	"icon": icon,
}, "templates/*.gohtml")

var icons = map[string]string{
	"database": "🗄️",
	"chart":    "📊",
	"brain":    "🧠",
	"shield":   "🛡️",
}

func icon(name string) string {
	if glyph, exists := icons[name]; exists {
		return glyph
	}

	return "•"
}

type ServiceItem struct {
	Slug        string
	Title       string
	Icon        string
	Description template.HTML
}

type HomePageVModel struct {
	Layout   common.SiteLayoutVModel
	Tagline  string
	Pitch    string
	Services []ServiceItem
	Figures  []model.Figure
}

func HomePage(vmodel HomePageVModel) templ.Component {
	return common.SiteLayout(vmodel.Layout, common.Template(templates, "home_page", vmodel))
}
