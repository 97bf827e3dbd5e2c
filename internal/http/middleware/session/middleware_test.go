package session

import (
	"net/http"
	"net/http/httptest"
	"testing"

	httpCtx "github.com/bornholm/vitrine/internal/http/context"
	"github.com/gorilla/sessions"
)

func TestMiddlewareKeepsSessionID(t *testing.T) {
	store := sessions.NewCookieStore([]byte("0123456789abcdef0123456789abcdef"))

	var seen []string

	handler := Middleware(store, "vitrine_session")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = append(seen, httpCtx.SessionID(r.Context()))
	}))

	first := httptest.NewRecorder()
	handler.ServeHTTP(first, httptest.NewRequest(http.MethodGet, "/", nil))

	cookies := first.Result().Cookies()
	if e, g := 1, len(cookies); e != g {
		t.Fatalf("len(cookies): expected %v, got %v", e, g)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])

	second := httptest.NewRecorder()
	handler.ServeHTTP(second, req)

	if e, g := 0, len(second.Result().Cookies()); e != g {
		t.Errorf("len(second.Cookies()): expected %v, got %v", e, g)
	}

	if e, g := 2, len(seen); e != g {
		t.Fatalf("len(seen): expected %v, got %v", e, g)
	}

	if seen[0] == "" {
		t.Errorf("expected session id to be set")
	}

	if e, g := seen[0], seen[1]; e != g {
		t.Errorf("session id: expected %v, got %v", e, g)
	}
}

func TestMiddlewareRecoversFromInvalidCookie(t *testing.T) {
	store := sessions.NewCookieStore([]byte("0123456789abcdef0123456789abcdef"))

	var sessionID string

	handler := Middleware(store, "vitrine_session")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID = httpCtx.SessionID(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: "vitrine_session", Value: "garbage"})

	res := httptest.NewRecorder()
	handler.ServeHTTP(res, req)

	if e, g := http.StatusOK, res.Code; e != g {
		t.Errorf("res.Code: expected %v, got %v", e, g)
	}

	if sessionID == "" {
		t.Errorf("expected a fresh session id")
	}
}
