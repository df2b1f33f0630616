// Package testutils provides an end-to-end suite that drives the real Fiber
// app over a private in-memory database.
package testutils

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/amirasaad/pocketpilot/infra/cache"
	infrarepo "github.com/amirasaad/pocketpilot/infra/repository"
	"github.com/amirasaad/pocketpilot/internal/fixtures"
	"github.com/amirasaad/pocketpilot/pkg/app"
	"github.com/amirasaad/pocketpilot/pkg/config"
	"github.com/amirasaad/pocketpilot/pkg/metrics"
	"github.com/amirasaad/pocketpilot/webapi"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

const testPassword = "password123"

// TestUser is an account created through the API.
type TestUser struct {
	ID       uuid.UUID
	Username string
	Email    string
	Password string
}

// E2ETestSuite builds a fresh app and database for every test.
type E2ETestSuite struct {
	suite.Suite
	App    *app.App
	Fiber  *fiber.App
	Config *config.App
}

// TestConfig returns a configuration for a private in-memory database.
func TestConfig() *config.App {
	return &config.App{
		Env:    "test",
		Server: &config.Server{Scheme: "http", Host: "localhost", Port: 0},
		Log:    &config.Log{Format: "text"},
		DB:     &config.DB{Url: fixtures.MemoryDSN()},
		Auth: &config.Auth{Jwt: &config.Jwt{
			Secret: "e2e-secret",
			Expiry: 24 * time.Hour,
		}},
		Redis:     &config.Redis{SessionTTL: 10 * time.Minute},
		RateLimit: &config.RateLimit{MaxRequests: 100000, Window: time.Minute},
		Savings:   &config.Savings{SMSDuplicateWindow: 60 * time.Second},
	}
}

// NewApp wires the services over db the way the server does.
func NewApp(cfg *config.App, db *infrarepo.UoW) *app.App {
	return app.New(&app.Deps{
		Uow:      db,
		Sessions: cache.NewMemorySessionStore(cfg.Redis.SessionTTL),
		Metrics:  metrics.New(),
		Logger:   fixtures.Logger(),
	}, cfg)
}

func (s *E2ETestSuite) SetupTest() {
	s.Config = TestConfig()
	uow := infrarepo.NewUoW(fixtures.NewDB(s.T()))
	s.App = NewApp(s.Config, uow)
	s.Fiber = webapi.SetupApp(s.App)
}

// MakeRequest is a helper for making HTTP requests in tests
func (s *E2ETestSuite) MakeRequest(method, path, body, token string) *http.Response {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := s.Fiber.Test(req, -1)
	s.Require().NoError(err)
	return resp
}

// DecodeJSON reads the response body into out and closes it.
func (s *E2ETestSuite) DecodeJSON(resp *http.Response, out any) {
	defer resp.Body.Close() //nolint: errcheck
	raw, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)
	s.Require().NoError(json.Unmarshal(raw, out), "body: %s", raw)
}

// Do sends a request, asserts the status and decodes the body when out is
// not nil.
func (s *E2ETestSuite) Do(method, path, body, token string, wantStatus int, out any) {
	resp := s.MakeRequest(method, path, body, token)
	if resp.StatusCode != wantStatus {
		raw, _ := io.ReadAll(resp.Body)
		_ = resp.Body.Close()
		s.Require().Equal(wantStatus, resp.StatusCode, "%s %s: %s", method, path, raw)
	}
	if out == nil {
		_ = resp.Body.Close()
		return
	}
	s.DecodeJSON(resp, out)
}

// CreateTestUser signs up a unique user through POST /auth/signup.
func (s *E2ETestSuite) CreateTestUser() *TestUser {
	suffix := uuid.NewString()[:8]
	u := &TestUser{
		Username: "user_" + suffix,
		Email:    fmt.Sprintf("user_%s@example.com", suffix),
		Password: testPassword,
	}
	body := fmt.Sprintf(`{"username":%q,"email":%q,"password":%q}`, u.Username, u.Email, u.Password)

	var created struct {
		User struct {
			ID uuid.UUID `json:"id"`
		} `json:"user"`
	}
	s.Do(http.MethodPost, "/auth/signup", body, "", fiber.StatusCreated, &created)
	u.ID = created.User.ID
	return u
}

// LoginUser logs in through POST /auth/login and returns the JWT.
func (s *E2ETestSuite) LoginUser(u *TestUser) string {
	body := fmt.Sprintf(`{"identity":%q,"password":%q}`, u.Username, u.Password)
	var out struct {
		Token string `json:"token"`
	}
	s.Do(http.MethodPost, "/auth/login", body, "", fiber.StatusOK, &out)
	s.Require().NotEmpty(out.Token)
	return out.Token
}

// CreateDomain adds a domain through the API and returns its id.
func (s *E2ETestSuite) CreateDomain(token, name string, expected float64) string {
	var out struct {
		ID string `json:"id"`
	}
	body := fmt.Sprintf(`{"name":%q,"expected_amount":%v}`, name, expected)
	s.Do(http.MethodPost, "/finance/domains", body, token, fiber.StatusCreated, &out)
	return out.ID
}
