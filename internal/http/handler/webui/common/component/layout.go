package component

import (
	"context"
	"html/template"
	"io"

	"github.com/a-h/templ"
	"github.com/bornholm/vitrine/internal/core/model"
	"github.com/pkg/errors"
)

type LinkItem struct {
	URL   string
	Label string
}

type NavbarVModel struct {
	Profile             model.Profile
	UnreadNotifications int
}

type AdminLayoutVModel struct {
	Title  string
	Navbar NavbarVModel
}

type adminLayoutData struct {
	AdminLayoutVModel
	Content template.HTML
}

// AdminLayout wraps the content in the back-office chrome.
func AdminLayout(vmodel AdminLayoutVModel, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		html, err := templ.ToGoHTML(ctx, content)
		if err != nil {
			return errors.WithStack(err)
		}

		return Template(layouts, "admin_layout", adminLayoutData{vmodel, html}).Render(ctx, w)
	})
}

type SiteLayoutVModel struct {
	Title   string
	Company model.Company
	Footer  model.Footer
}

type siteLayoutData struct {
	SiteLayoutVModel
	Content template.HTML
}

// SiteLayout wraps the content in the public website chrome.
func SiteLayout(vmodel SiteLayoutVModel, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		html, err := templ.ToGoHTML(ctx, content)
		if err != nil {
			return errors.WithStack(err)
		}

		return Template(layouts, "site_layout", siteLayoutData{vmodel, html}).Render(ctx, w)
	})
}

type ErrorPageVModel struct {
	StatusCode int
	Message    string
	Links      []LinkItem
}

func ErrorPage(vmodel ErrorPageVModel) templ.Component {
	return Template(layouts, "error_page", vmodel)
}
