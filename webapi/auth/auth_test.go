package auth_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/amirasaad/pocketpilot/webapi/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/suite"
)

type AuthTestSuite struct {
	testutils.E2ETestSuite
	testUser *testutils.TestUser
}

func (s *AuthTestSuite) SetupTest() {
	s.E2ETestSuite.SetupTest()
	s.testUser = s.CreateTestUser()
}

func (s *AuthTestSuite) TestSignupVariants() {
	testCases := []struct {
		desc       string
		body       string
		wantStatus int
	}{
		{"success", `{"username":"newuser","email":"new@example.com","password":"secret1"}`, fiber.StatusCreated},
		{"invalid body", `{"username":123}`, fiber.StatusBadRequest},
		{"short username", `{"username":"ab","email":"ab@example.com","password":"secret1"}`, fiber.StatusBadRequest},
		{"bad email", `{"username":"someone","email":"nope","password":"secret1"}`, fiber.StatusBadRequest},
		{"short password", `{"username":"someone","email":"s@example.com","password":"12345"}`, fiber.StatusBadRequest},
	}
	for _, tc := range testCases {
		s.Run(tc.desc, func() {
			resp := s.MakeRequest(http.MethodPost, "/auth/signup", tc.body, "")
			defer resp.Body.Close() //nolint: errcheck
			s.Equal(tc.wantStatus, resp.StatusCode)
		})
	}
}

func (s *AuthTestSuite) TestSignup_Duplicate() {
	body := fmt.Sprintf(`{"username":%q,"email":"other@example.com","password":"secret1"}`, s.testUser.Username)
	var out struct {
		Error string `json:"error"`
	}
	s.Do(http.MethodPost, "/auth/signup", body, "", fiber.StatusBadRequest, &out)
	s.Equal("Username or email already exists", out.Error)
}

func (s *AuthTestSuite) TestLoginRoute_BadRequest() {
	resp := s.MakeRequest(http.MethodPost, "/auth/login", `{"identity":123}`, "")
	defer resp.Body.Close() //nolint: errcheck
	s.Equal(fiber.StatusBadRequest, resp.StatusCode)
}

func (s *AuthTestSuite) TestLoginRoute_Unauthorized() {
	var out struct {
		Error string `json:"error"`
	}
	s.Do(http.MethodPost, "/auth/login",
		`{"identity":"nonexistent@example.com","password":"password"}`, "",
		fiber.StatusUnauthorized, &out)
	s.Equal("Invalid credentials", out.Error)
}

func (s *AuthTestSuite) TestLoginRoute_InvalidPassword() {
	body := fmt.Sprintf(`{"identity":%q,"password":"wrongpassword"}`, s.testUser.Email)
	resp := s.MakeRequest(http.MethodPost, "/auth/login", body, "")
	defer resp.Body.Close() //nolint: errcheck
	s.Equal(fiber.StatusUnauthorized, resp.StatusCode)
}

func (s *AuthTestSuite) TestLoginRoute_Success() {
	testCases := []struct {
		desc string
		body string
	}{
		{"by email", fmt.Sprintf(`{"identity":%q,"password":%q}`, s.testUser.Email, s.testUser.Password)},
		{"by identity username", fmt.Sprintf(`{"identity":%q,"password":%q}`, s.testUser.Username, s.testUser.Password)},
		{"by username field", fmt.Sprintf(`{"username":%q,"password":%q}`, s.testUser.Username, s.testUser.Password)},
	}
	for _, tc := range testCases {
		s.Run(tc.desc, func() {
			var out struct {
				Token string `json:"token"`
				User  struct {
					ID       string `json:"id"`
					Username string `json:"username"`
					Language string `json:"language"`
					Theme    string `json:"theme"`
				} `json:"user"`
			}
			s.Do(http.MethodPost, "/auth/login", tc.body, "", fiber.StatusOK, &out)
			s.Require().NotEmpty(out.Token)
			s.Equal(s.testUser.ID.String(), out.User.ID)
			s.Equal(s.testUser.Username, out.User.Username)
			s.Equal("en", out.User.Language)
			s.Equal("light", out.User.Theme)

			claims := jwt.MapClaims{}
			_, err := jwt.ParseWithClaims(out.Token, claims, func(*jwt.Token) (any, error) {
				return []byte(s.Config.Auth.Jwt.Secret), nil
			})
			s.Require().NoError(err)
			s.Equal(s.testUser.ID.String(), claims["user_id"])
			s.Equal(s.testUser.Username, claims["username"])
			exp, err := claims.GetExpirationTime()
			s.Require().NoError(err)
			s.WithinDuration(time.Now().Add(24*time.Hour), exp.Time, time.Minute)
		})
	}
}

func (s *AuthTestSuite) TestLoginRoute_APIPrefix() {
	body := fmt.Sprintf(`{"identity":%q,"password":%q}`, s.testUser.Email, s.testUser.Password)
	resp := s.MakeRequest(http.MethodPost, "/api/auth/login", body, "")
	defer resp.Body.Close() //nolint: errcheck
	s.Equal(fiber.StatusOK, resp.StatusCode)
}

func TestAuthTestSuite(t *testing.T) {
	suite.Run(t, new(AuthTestSuite))
}
