package http

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	httpCtx "github.com/bornholm/vitrine/internal/http/context"
	"github.com/pkg/errors"
)

func TestServerHandler(t *testing.T) {
	admin := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "admin:"+r.URL.Path)
	})

	public := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "public:"+httpCtx.BaseURL(r.Context()).String())
	})

	server := NewServer(
		WithBaseURL("http://localhost:3003"),
		WithMount("/admin/", admin),
		WithMount("/", public),
		WithBasicAuth("admin", "secret", "/admin/"),
	)

	handler, err := server.Handler()
	if err != nil {
		t.Fatalf("%+v", errors.WithStack(err))
	}

	type testCase struct {
		Path         string
		Username     string
		Password     string
		ExpectedCode int
		ExpectedBody string
	}

	testCases := []testCase{
		{Path: "/", ExpectedCode: http.StatusOK, ExpectedBody: "public:http://localhost:3003"},
		{Path: "/admin/interns", ExpectedCode: http.StatusUnauthorized},
		{Path: "/admin/interns", Username: "admin", Password: "wrong", ExpectedCode: http.StatusUnauthorized},
		{Path: "/admin/interns", Username: "admin", Password: "secret", ExpectedCode: http.StatusOK, ExpectedBody: "admin:/interns"},
	}

	for _, tc := range testCases {
		req := httptest.NewRequest(http.MethodGet, tc.Path, nil)
		if tc.Username != "" {
			req.SetBasicAuth(tc.Username, tc.Password)
		}

		res := httptest.NewRecorder()
		handler.ServeHTTP(res, req)

		if e, g := tc.ExpectedCode, res.Code; e != g {
			t.Errorf("%s: res.Code: expected %v, got %v", tc.Path, e, g)
		}

		if tc.ExpectedBody == "" {
			continue
		}

		if e, g := tc.ExpectedBody, res.Body.String(); e != g {
			t.Errorf("%s: res.Body: expected %v, got %v", tc.Path, e, g)
		}
	}
}
