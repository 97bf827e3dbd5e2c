package website

import (
	"context"
	"net/http"

	"github.com/a-h/templ"
	"github.com/bornholm/vitrine/internal/core/model"
	"github.com/bornholm/vitrine/internal/core/service"
	"github.com/bornholm/vitrine/internal/http/handler/webui/common"
	commonComp "github.com/bornholm/vitrine/internal/http/handler/webui/common/component"
	"github.com/bornholm/vitrine/internal/http/handler/webui/website/component"
	"github.com/bornholm/vitrine/internal/markdown"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
)

func (h *Handler) getHomePage(w http.ResponseWriter, r *http.Request) {
	vmodel, err := h.fillHomePageViewModel(r)
	if err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	homePage := component.HomePage(*vmodel)

	templ.Handler(homePage).ServeHTTP(w, r)
}

func (h *Handler) fillHomePageViewModel(r *http.Request) (*component.HomePageVModel, error) {
	vmodel := &component.HomePageVModel{}

	ctx := r.Context()

	err := common.FillViewModel(
		ctx,
		vmodel, r,
		h.fillHomePageVModelContent,
		h.fillHomePageVModelFigures,
	)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return vmodel, nil
}

func (h *Handler) fillHomePageVModelContent(ctx context.Context, vmodel *component.HomePageVModel, r *http.Request) error {
	content, err := h.content.SiteContent(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	vmodel.Layout = commonComp.SiteLayoutVModel{
		Title:   content.Company.Name,
		Company: content.Company,
		Footer:  content.Footer,
	}

	vmodel.Tagline = content.Company.Tagline
	vmodel.Pitch = content.Company.Pitch

	vmodel.Services = make([]component.ServiceItem, 0, len(content.Services))
	for _, s := range content.Services {
		description, err := markdown.ToHTML(s.Description)
		if err != nil {
			return errors.Wrapf(err, "could not render description of service '%s'", s.Slug)
		}

		vmodel.Services = append(vmodel.Services, component.ServiceItem{
			Slug:        s.Slug,
			Title:       s.Title,
			Icon:        s.Icon,
			Description: description,
		})
	}

	vmodel.Figures = append(vmodel.Figures, content.Figures...)

	return nil
}

func (h *Handler) fillHomePageVModelFigures(ctx context.Context, vmodel *component.HomePageVModel, r *http.Request) error {
	stats, err := h.stats.Compute(ctx)
	if err != nil {
		return errors.WithStack(err)
	}

	vmodel.Figures = append(vmodel.Figures, statsFigures(*stats)...)

	return nil
}

func statsFigures(stats service.Stats) []model.Figure {
	return []model.Figure{
		{Label: "stagiaires accompagnés", Value: humanize.Comma(int64(stats.Interns))},
		{Label: "collaborateurs", Value: humanize.Comma(int64(stats.Employees))},
		{Label: "candidatures en cours", Value: humanize.Comma(int64(stats.OpenApplications))},
	}
}
