package context

import "context"

const keySessionID contextKey = "sessionID"

// SessionID returns the visitor session id, or an empty string when the
// request did not go through the session middleware.
func SessionID(ctx context.Context) string {
	sessionID, ok := ctx.Value(keySessionID).(string)
	if !ok {
		return ""
	}

	return sessionID
}

func SetSessionID(ctx context.Context, sessionID string) context.Context {
	return context.WithValue(ctx, keySessionID, sessionID)
}
