package common

import (
	"log/slog"
	"net/http"

	"github.com/a-h/templ"
	"github.com/bornholm/vitrine/internal/http/handler/webui/common/component"
	"github.com/getsentry/sentry-go"
	"github.com/pkg/errors"
)

type HTTPError interface {
	error
	StatusCode() int
}

type UserFacingError interface {
	error
	UserMessage() string
}

type WithErrorLinks interface {
	error
	Links() []component.LinkItem
}

func HandleError(w http.ResponseWriter, r *http.Request, err error) {
	ctx := r.Context()

	vmodel := component.ErrorPageVModel{}

	statusCode := http.StatusInternalServerError

	var httpErr HTTPError
	if errors.As(err, &httpErr) {
		statusCode = httpErr.StatusCode()
	}

	vmodel.StatusCode = statusCode

	var userFacingErr UserFacingError
	if errors.As(err, &userFacingErr) {
		vmodel.Message = userFacingErr.UserMessage()
	} else {
		vmodel.Message = http.StatusText(statusCode)
	}

	var errLinks WithErrorLinks
	if errors.As(err, &errLinks) {
		vmodel.Links = errLinks.Links()
	}

	if len(vmodel.Links) == 0 {
		vmodel.Links = []component.LinkItem{
			{URL: string(component.BaseURL(ctx, component.WithPath("/admin/"))), Label: "Retour au tableau de bord"},
		}
	}

	if httpErr == nil && userFacingErr == nil {
		slog.ErrorContext(ctx, "unexpected error", slog.Any("error", errors.WithStack(err)))

		if hub := sentry.GetHubFromContext(ctx); hub != nil {
			hub.CaptureException(err)
		} else {
			sentry.CaptureException(err)
		}
	}

	errorPage := component.ErrorPage(vmodel)

	templ.Handler(errorPage, templ.WithStatus(statusCode)).ServeHTTP(w, r)
}
