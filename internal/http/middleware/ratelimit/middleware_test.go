package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func TestMiddleware(t *testing.T) {
	handler := Middleware(
		WithLimit(time.Hour, 2),
		WithTrustHeaders(true),
	)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	send := func(forwardedFor string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("X-Forwarded-For", forwardedFor)
		res := httptest.NewRecorder()
		handler.ServeHTTP(res, req)
		return res
	}

	for i := 0; i < 2; i++ {
		if e, g := http.StatusNoContent, send("10.0.0.1").Code; e != g {
			t.Fatalf("request #%d: expected %v, got %v", i, e, g)
		}
	}

	res := send("10.0.0.1, 192.168.0.1")
	if e, g := http.StatusTooManyRequests, res.Code; e != g {
		t.Errorf("res.Code: expected %v, got %v", e, g)
	}

	if res.Header().Get("Retry-After") == "" {
		t.Error("expected Retry-After header")
	}

	// Other clients keep their own bucket
	if e, g := http.StatusNoContent, send("10.0.0.2").Code; e != g {
		t.Errorf("res.Code: expected %v, got %v", e, g)
	}
}
