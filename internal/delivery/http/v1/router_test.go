package v1_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/starkspartacus/job-sub000/config"
	v1 "github.com/starkspartacus/job-sub000/internal/delivery/http/v1"
	"github.com/starkspartacus/job-sub000/internal/domain"
	"github.com/starkspartacus/job-sub000/pkg/auth"
	"github.com/starkspartacus/job-sub000/pkg/security"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type testServer struct {
	router     *gin.Engine
	tokens     *auth.TokenIssuer
	auth       *MockAuthUC
	candidates *MockCandidateUC
	employers  *MockEmployerUC
	jobs       *MockJobUC
	uploads    *MockUploadUC
	dashboard  *MockDashboardUC
}

var testUsers = map[string]*domain.User{
	domain.RoleCandidate: {ID: "u-1", Email: "awa@example.ci", Role: domain.RoleCandidate},
	domain.RoleEmployer:  {ID: "emp-1", Email: "rh@hotel-ivoire.ci", Role: domain.RoleEmployer},
}

func newTestServer(t *testing.T, health v1.HealthChecker) *testServer {
	t.Helper()
	if health == nil {
		health = stubHealth{status: map[string]string{"status": "ok", "database": "ok"}, ok: true}
	}
	s := &testServer{
		tokens:     auth.NewTokenIssuer("test-secret", time.Hour),
		auth:       new(MockAuthUC),
		candidates: new(MockCandidateUC),
		employers:  new(MockEmployerUC),
		jobs:       new(MockJobUC),
		uploads:    new(MockUploadUC),
		dashboard:  new(MockDashboardUC),
	}
	for _, u := range testUsers {
		s.auth.On("GetCurrentUser", mock.Anything, u.ID).Return(u, nil).Maybe()
	}

	cfg := &config.Config{
		Environment:              "development",
		AllowedOrigins:           []string{"http://localhost:3000"},
		CookieName:               "auth_token",
		RateLimitWindowSeconds:   60,
		RateLimitLoginThreshold:  3,
		RateLimitGlobalThreshold: 1000,
		UploadMaxBytes:           1 << 20,
	}
	s.router = v1.NewRouter(v1.RouterDeps{
		AuthUC:      s.auth,
		CandidateUC: s.candidates,
		EmployerUC:  s.employers,
		JobUC:       s.jobs,
		UploadUC:    s.uploads,
		DashboardUC: s.dashboard,
		Health:      health,
		Tokens:      s.tokens,
		Counters:    security.NewMemoryStore(),
		SecLogger:   security.NopSecurityLogger(),
		Config:      cfg,
	})
	return s
}

func (s *testServer) token(t *testing.T, role string) string {
	t.Helper()
	u := testUsers[role]
	token, _, err := s.tokens.Issue(u.ID, u.Email, u.Role)
	require.NoError(t, err)
	return token
}

// do sends body as JSON unless it is already a reader.
func (s *testServer) do(method, path string, body interface{}, token string) *httptest.ResponseRecorder {
	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case io.Reader:
		reader = b
	case string:
		reader = bytes.NewBufferString(b)
	default:
		raw, _ := json.Marshal(b)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

type envelope struct {
	Success   bool              `json:"success"`
	Message   string            `json:"message"`
	Data      json.RawMessage   `json:"data"`
	Error     map[string]string `json:"error"`
	RequestID string            `json:"request_id"`
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env), rec.Body.String())
	return env
}

func decodeData(t *testing.T, rec *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(decode(t, rec).Data, v))
}

func assertStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, rec.Code, rec.Body.String())
}

func newRequest(method, path string) *http.Request {
	return httptest.NewRequest(method, path, nil)
}

func serve(s *testServer, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}
