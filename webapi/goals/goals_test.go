package goals_test

import (
	"net/http"
	"testing"

	"github.com/amirasaad/pocketpilot/webapi/testutils"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/suite"
)

type GoalsTestSuite struct {
	testutils.E2ETestSuite
	token string
}

func (s *GoalsTestSuite) SetupTest() {
	s.E2ETestSuite.SetupTest()
	s.token = s.LoginUser(s.CreateTestUser())
}

func (s *GoalsTestSuite) TestCreateAndList() {
	var created struct {
		ID      string `json:"id"`
		Message string `json:"message"`
	}
	s.Do(http.MethodPost, "/goals", `{"name":"Laptop","target_amount":1000,"months":3}`, s.token,
		fiber.StatusCreated, &created)
	s.NotEmpty(created.ID)
	s.Equal("Goal created successfully", created.Message)
	s.Do(http.MethodPost, "/api/goals", `{"name":"Trip","target_amount":3000,"months":1}`, s.token,
		fiber.StatusCreated, nil)

	var goals []struct {
		ID             string  `json:"id"`
		Name           string  `json:"name"`
		TargetAmount   float64 `json:"target_amount"`
		Months         int     `json:"months"`
		MonthlySavings float64 `json:"monthly_savings"`
		DailySavings   float64 `json:"daily_savings"`
	}
	s.Do(http.MethodGet, "/goals", "", s.token, fiber.StatusOK, &goals)
	s.Require().Len(goals, 2)
	s.Equal("Trip", goals[0].Name, "newest first")
	s.InDelta(3000, goals[0].MonthlySavings, 0.001)
	s.InDelta(100, goals[0].DailySavings, 0.001)
	s.Equal(created.ID, goals[1].ID)
	s.InDelta(333.33, goals[1].MonthlySavings, 0.001)
	s.InDelta(11.11, goals[1].DailySavings, 0.001)
}

func (s *GoalsTestSuite) TestCreate_Validation() {
	testCases := []struct {
		desc string
		body string
	}{
		{"missing name", `{"target_amount":1000,"months":3}`},
		{"zero target", `{"name":"x","target_amount":0,"months":3}`},
		{"negative target", `{"name":"x","target_amount":-5,"months":3}`},
		{"zero months", `{"name":"x","target_amount":100,"months":0}`},
		{"not json", `months=3`},
	}
	for _, tc := range testCases {
		s.Run(tc.desc, func() {
			resp := s.MakeRequest(http.MethodPost, "/goals", tc.body, s.token)
			defer resp.Body.Close() //nolint: errcheck
			s.Equal(fiber.StatusBadRequest, resp.StatusCode)
		})
	}
}

func (s *GoalsTestSuite) TestGoalsArePrivate() {
	s.Do(http.MethodPost, "/goals", `{"name":"Laptop","target_amount":1000,"months":3}`, s.token,
		fiber.StatusCreated, nil)
	other := s.LoginUser(s.CreateTestUser())
	var goals []map[string]any
	s.Do(http.MethodGet, "/goals", "", other, fiber.StatusOK, &goals)
	s.Empty(goals)
}

func TestGoalsTestSuite(t *testing.T) {
	suite.Run(t, new(GoalsTestSuite))
}
