package admin_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"intern-portal/internal/bootstrap"
	"intern-portal/internal/shared/config"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	app, err := bootstrap.Build(context.Background(), config.Config{
		Env:             "dev",
		CORSAllowOrigin: "http://localhost:5173",
		AdminUsername:   "admin",
		AdminPassword:   "s3cret",
		StoreTimeout:    time.Second,
	}, nil)
	require.NoError(t, err)
	return app.Router
}

func login(router http.Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/auth/admin/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestAdminLogin(t *testing.T) {
	router := newTestRouter(t)

	tests := []struct {
		name   string
		body   string
		status int
		want   string
	}{
		{
			name:   "success",
			body:   `{"username":"admin","password":"s3cret"}`,
			status: http.StatusOK,
			want:   `{"success":true,"message":"Login successful!"}`,
		},
		{
			name:   "wrong password",
			body:   `{"username":"admin","password":"nope"}`,
			status: http.StatusUnauthorized,
			want:   `{"success":false,"message":"Invalid username or password."}`,
		},
		{
			name:   "wrong username",
			body:   `{"username":"root","password":"s3cret"}`,
			status: http.StatusUnauthorized,
			want:   `{"success":false,"message":"Invalid username or password."}`,
		},
		{
			name:   "missing username",
			body:   `{"password":"s3cret"}`,
			status: http.StatusBadRequest,
			want:   `{"success":false,"errors":[{"path":"username","msg":"Username is required","location":"body"}]}`,
		},
		{
			name:   "empty body",
			body:   ``,
			status: http.StatusBadRequest,
			want: `{"success":false,"errors":[` +
				`{"path":"username","msg":"Username is required","location":"body"},` +
				`{"path":"password","msg":"Password is required","location":"body"}]}`,
		},
		{
			name:   "malformed body",
			body:   `{"username":`,
			status: http.StatusBadRequest,
			want:   `{"success":false,"errors":[{"path":"body","msg":"Request body must be a valid JSON object","location":"body"}]}`,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			resp := login(router, tc.body)
			assert.Equal(t, tc.status, resp.Code)
			assert.JSONEq(t, tc.want, resp.Body.String())
		})
	}
}
