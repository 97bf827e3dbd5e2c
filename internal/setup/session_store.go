package setup

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/bornholm/vitrine/internal/config"
	"github.com/gorilla/sessions"
	"github.com/pkg/errors"
)

var getSessionStoreFromConfig = createFromConfigOnce(func(ctx context.Context, conf *config.Config) (sessions.Store, error) {
	keyPairs := make([][]byte, 0, len(conf.HTTP.Session.Keys))

	for _, k := range conf.HTTP.Session.Keys {
		keyPairs = append(keyPairs, []byte(k))
	}

	if len(keyPairs) == 0 {
		slog.WarnContext(ctx, "no session keys configured, using a random key: visitor workspaces will not survive a restart")

		key, err := getRandomBytes(32)
		if err != nil {
			return nil, errors.Wrap(err, "could not generate cookie signing key")
		}

		keyPairs = append(keyPairs, key)
	}

	cookie := conf.HTTP.Session.Cookie

	sessionStore := sessions.NewCookieStore(keyPairs...)

	sessionStore.MaxAge(int(cookie.MaxAge.Seconds()))
	sessionStore.Options.Path = cookie.Path
	sessionStore.Options.HttpOnly = cookie.HTTPOnly
	sessionStore.Options.Secure = cookie.Secure
	sessionStore.Options.SameSite = http.SameSiteLaxMode

	return sessionStore, nil
})
