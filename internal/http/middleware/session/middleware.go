package session

import (
	"log/slog"
	"net/http"

	"github.com/bornholm/go-x/slogx"
	httpCtx "github.com/bornholm/vitrine/internal/http/context"
	"github.com/gorilla/sessions"
	"github.com/rs/xid"
)

const keySessionID = "id"

// Middleware ensures every request carries a visitor session id. The id is
// stored in a signed cookie and exposed through the request context.
func Middleware(store sessions.Store, cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			sess, err := store.Get(r, cookieName)
			if err != nil {
				// Invalid or rotated signing keys: start over with a fresh session
				slog.DebugContext(ctx, "could not decode session, creating a new one", slogx.Error(err))
				sess, err = store.New(r, cookieName)
				if err != nil && sess == nil {
					slog.ErrorContext(ctx, "could not create session", slogx.Error(err))
					http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
					return
				}
			}

			sessionID, _ := sess.Values[keySessionID].(string)
			if sessionID == "" {
				sessionID = xid.New().String()
				sess.Values[keySessionID] = sessionID

				if err := sess.Save(r, w); err != nil {
					slog.ErrorContext(ctx, "could not save session", slogx.Error(err))
					http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
					return
				}
			}

			ctx = httpCtx.SetSessionID(ctx, sessionID)
			ctx = slogx.WithAttrs(ctx, slog.String("session", sessionID))

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
