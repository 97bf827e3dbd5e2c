package admin

import (
	"context"
	"encoding/base64"
	"io"
	"log/slog"
	"net/http"
	"net/mail"
	"strings"

	"github.com/a-h/templ"
	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/go-x/templx/form"
	formx "github.com/bornholm/go-x/templx/form"
	"github.com/bornholm/go-x/templx/form/renderer/bulma"
	"github.com/bornholm/vitrine/internal/core/model"
	httpCtx "github.com/bornholm/vitrine/internal/http/context"
	"github.com/bornholm/vitrine/internal/http/handler/webui/admin/component"
	"github.com/bornholm/vitrine/internal/http/handler/webui/common"
	commonComp "github.com/bornholm/vitrine/internal/http/handler/webui/common/component"
	"github.com/gabriel-vasile/mimetype"
	"github.com/pkg/errors"
)

const maxAvatarSize int64 = 2 << 20

var profileFields = []string{"display_name", "title", "email", "phone", "bio"}

func (h *Handler) getProfilePage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	profile := h.widgets.Profile.Load(ctx, httpCtx.SessionID(ctx))

	vmodel, err := h.newProfilePageViewModel(ctx, profile, profileValues(profile), nil)
	if err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	vmodel.Saved = r.URL.Query().Has("saved")

	templ.Handler(component.ProfilePage(*vmodel)).ServeHTTP(w, r)
}

func (h *Handler) handleProfileUpdate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	scope := httpCtx.SessionID(ctx)

	r.Body = http.MaxBytesReader(w, r.Body, maxAvatarSize+(1<<20))

	if err := r.ParseMultipartForm(maxAvatarSize); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		common.HandleError(w, r, common.NewBadRequestError(err, "Le formulaire est invalide ou trop volumineux."))
		return
	}

	profileForm := newProfileForm()
	if err := profileForm.Handle(r); err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	current := h.widgets.Profile.Load(ctx, scope)

	values := map[string]string{}
	for _, name := range profileFields {
		value, _ := profileForm.GetFieldValue(name)
		values[name] = strings.TrimSpace(value)
	}

	validationErrors := map[string]string{}

	if !profileForm.IsValid(ctx) || values["display_name"] == "" {
		validationErrors["display_name"] = "Ce champ est obligatoire."
	}

	if values["email"] != "" {
		if _, err := mail.ParseAddress(values["email"]); err != nil {
			validationErrors["email"] = "L'adresse email est invalide."
		}
	}

	avatar := current.Avatar
	if r.PostFormValue("remove_avatar") == "true" {
		avatar = ""
	}

	dataURL, err := readAvatar(r)
	switch {
	case err != nil:
		var userFacing common.UserFacingError
		if !errors.As(err, &userFacing) {
			common.HandleError(w, r, errors.WithStack(err))
			return
		}
		validationErrors["avatar"] = userFacing.UserMessage()
	case dataURL != "":
		avatar = dataURL
	}

	if len(validationErrors) > 0 {
		vmodel, err := h.newProfilePageViewModel(ctx, current, values, validationErrors)
		if err != nil {
			common.HandleError(w, r, errors.WithStack(err))
			return
		}

		w.WriteHeader(http.StatusUnprocessableEntity)
		templ.Handler(component.ProfilePage(*vmodel)).ServeHTTP(w, r)

		return
	}

	profile := model.Profile{
		DisplayName: values["display_name"],
		Title:       values["title"],
		Email:       values["email"],
		Phone:       values["phone"],
		Bio:         values["bio"],
		Avatar:      avatar,
	}

	if err := h.widgets.Profile.Save(ctx, scope, profile); err != nil {
		common.HandleError(w, r, errors.WithStack(err))
		return
	}

	slog.DebugContext(ctx, "profile saved", slog.Bool("avatar", profile.Avatar != ""))

	redirectURL := commonComp.BaseURL(ctx, commonComp.WithPath("/admin/profile"), commonComp.WithValues("saved", "1"))
	http.Redirect(w, r, string(redirectURL), http.StatusSeeOther)
}

var errInvalidAvatar = common.NewError("invalid avatar", "L'avatar doit être une image.", http.StatusBadRequest)
var errAvatarTooLarge = common.NewError("avatar too large", "L'avatar dépasse la taille maximale autorisée.", http.StatusBadRequest)

// readAvatar returns the uploaded avatar as a data URL, or an empty string
// when no file was sent.
func readAvatar(r *http.Request) (string, error) {
	file, _, err := r.FormFile("avatar")
	if errors.Is(err, http.ErrMissingFile) || errors.Is(err, http.ErrNotMultipart) {
		return "", nil
	}
	if err != nil {
		return "", errors.WithStack(err)
	}

	defer func() {
		if err := file.Close(); err != nil {
			slog.ErrorContext(r.Context(), "could not close avatar file", slogx.Error(err))
		}
	}()

	data, err := io.ReadAll(io.LimitReader(file, maxAvatarSize+1))
	if err != nil {
		return "", errors.WithStack(err)
	}

	if len(data) == 0 {
		return "", nil
	}

	if int64(len(data)) > maxAvatarSize {
		return "", errors.WithStack(errAvatarTooLarge)
	}

	mime := mimetype.Detect(data)
	if !strings.HasPrefix(mime.String(), "image/") {
		return "", errors.WithStack(errInvalidAvatar)
	}

	return "data:" + mime.String() + ";base64," + base64.StdEncoding.EncodeToString(data), nil
}

func (h *Handler) newProfilePageViewModel(ctx context.Context, profile model.Profile, values map[string]string, validationErrors map[string]string) (*component.ProfilePageVModel, error) {
	layout, err := h.newLayout(ctx, "Profil")
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &component.ProfilePageVModel{
		Layout:        layout,
		Profile:       profile,
		Values:        values,
		Errors:        validationErrors,
		MaxAvatarSize: maxAvatarSize,
	}, nil
}

func profileValues(p model.Profile) map[string]string {
	return map[string]string{
		"display_name": p.DisplayName,
		"title":        p.Title,
		"email":        p.Email,
		"phone":        p.Phone,
		"bio":          p.Bio,
	}
}

func newProfileForm() *form.Form {
	return formx.New([]form.Field{
		formx.NewField("display_name",
			formx.WithLabel("Nom affiché"),
			formx.WithRequired(true),
		),
		formx.NewField("title",
			formx.WithLabel("Fonction"),
		),
		formx.NewField("email",
			formx.WithLabel("Email"),
			formx.WithType("email"),
		),
		formx.NewField("phone",
			formx.WithLabel("Téléphone"),
			formx.WithType("tel"),
		),
		formx.NewField("bio",
			formx.WithLabel("Présentation"),
			formx.WithType("textarea"),
		),
	}, form.WithDefaultRenderer(bulma.NewFieldRenderer()))
}
