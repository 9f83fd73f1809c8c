//go:build e2e

package auth_test

import (
	"net/http"
	"testing"

	"parking-occupancy/internal/domain/operator"
	"parking-occupancy/internal/handler/dto/request"
	resdto "parking-occupancy/internal/handler/dto/response"
	"parking-occupancy/tests/common/authtest"
	"parking-occupancy/tests/common/dbtest"
	"parking-occupancy/tests/common/httptest"
	"parking-occupancy/tests/e2e"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	loginURL  = "/api/auth/login"
	logoutURL = "/api/auth/logout"
	meURL     = "/api/auth/me"
)

type authSuite struct {
	e2e.SharedSuite
	jwt *authtest.JWTHelper

	adminID     uuid.UUID
	attendantID uuid.UUID
	inactiveID  uuid.UUID
}

func TestAuthSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(authSuite))
}

func (s *authSuite) SetupSuite() {
	s.SharedSuite.SetupSuite()
	s.jwt = authtest.NewJWTHelper(s.Config.JWT)
}

func (s *authSuite) SetupSubTest() {
	s.SharedSuite.SetupSubTest()

	s.adminID = dbtest.CreateTestOperator(s.T(), s.DB, "admin@example.com", string(operator.RoleAdmin))
	s.attendantID = dbtest.CreateTestOperator(s.T(), s.DB, "attendant@example.com", string(operator.RoleAttendant))
	s.inactiveID = dbtest.CreateTestOperator(s.T(), s.DB, "inactive@example.com", string(operator.RoleAttendant))
	dbtest.DeactivateOperator(s.T(), s.DB, s.inactiveID)
}

func (s *authSuite) TestLogin() {
	tests := []struct {
		name       string
		email      string
		password   string
		expectCode int
		expectMsg  string
		expectRole string
	}{
		{name: "success: admin", email: "admin@example.com", password: dbtest.TestPassword, expectCode: http.StatusOK, expectRole: "admin"},
		{name: "success: email is case insensitive", email: "Attendant@Example.com", password: dbtest.TestPassword, expectCode: http.StatusOK, expectRole: "attendant"},
		{name: "error: unknown email", email: "nobody@example.com", password: dbtest.TestPassword, expectCode: http.StatusUnauthorized, expectMsg: "Invalid email or password"},
		{name: "error: wrong password", email: "admin@example.com", password: "wrongpassword", expectCode: http.StatusUnauthorized, expectMsg: "Invalid email or password"},
		{name: "error: inactive operator", email: "inactive@example.com", password: dbtest.TestPassword, expectCode: http.StatusForbidden, expectMsg: "Account is inactive"},
		{name: "error: short password fails binding", email: "admin@example.com", password: "short", expectCode: http.StatusBadRequest, expectMsg: "Invalid request"},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, loginURL,
				request.LoginRequest{Email: tt.email, Password: tt.password}, "")

			if tt.expectCode != http.StatusOK {
				httptest.AssertErrorResponse(s.T(), w, tt.expectCode, tt.expectMsg)
				s.Nil(httptest.ExtractCookie(w, "access_token"))
				return
			}

			var res resdto.LoginResponse
			httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
			s.NotEmpty(res.AccessToken)
			s.Equal("Bearer", res.TokenType)
			s.Equal(tt.expectRole, res.Role)

			cookie := httptest.ExtractCookie(w, "access_token")
			s.Require().NotNil(cookie)
			s.Equal(res.AccessToken, cookie.Value)
			s.True(cookie.HttpOnly)
		})
	}

	s.Run("success: last login is recorded", func() {
		authtest.LoginOperator(s.T(), s.Router, "admin@example.com", dbtest.TestPassword)

		var recorded bool
		err := s.DB.QueryRow(s.T().Context(),
			"SELECT last_login_at IS NOT NULL FROM operators WHERE id = $1", s.adminID).Scan(&recorded)
		s.Require().NoError(err)
		s.True(recorded)
	})
}

func (s *authSuite) TestMe() {
	s.Run("success: cookie session", func() {
		token := authtest.LoginOperator(s.T(), s.Router, "attendant@example.com", dbtest.TestPassword)
		w := httptest.PerformRequestWithCookies(s.T(), s.Router, http.MethodGet, meURL, nil,
			[]*http.Cookie{{Name: "access_token", Value: token}}, "")

		var res resdto.OperatorResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		s.Equal(s.attendantID, res.ID)
		s.Equal("attendant@example.com", res.Email)
		s.Equal("attendant", res.Role)
		s.NotNil(res.LastLoginAt)
	})

	s.Run("success: freshly created operator", func() {
		token := authtest.CreateAndLogin(s.T(), s.DB, s.Router, "night.shift@example.com", string(operator.RoleAttendant))
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, token)

		var res resdto.OperatorResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		s.Equal("night.shift@example.com", res.Email)
	})

	s.Run("success: bearer token", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil,
			s.jwt.GenerateToken(s.T(), s.adminID, operator.RoleAdmin))

		var res resdto.OperatorResponse
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &res)
		s.Equal(s.adminID, res.ID)
	})

	tokenCases := []struct {
		name       string
		token      func() string
		expectCode int
		expectMsg  string
	}{
		{name: "error: no token", token: func() string { return "" }, expectCode: http.StatusUnauthorized, expectMsg: "Access token required"},
		{name: "error: expired token", token: func() string {
			return s.jwt.CreateExpiredToken(s.T(), s.adminID, operator.RoleAdmin)
		}, expectCode: http.StatusUnauthorized, expectMsg: "Invalid or expired token"},
		{name: "error: foreign signature", token: func() string {
			return s.jwt.CreateForeignToken(s.T(), s.adminID, operator.RoleAdmin)
		}, expectCode: http.StatusUnauthorized, expectMsg: "Invalid or expired token"},
		{name: "error: operator deleted after token issue", token: func() string {
			return s.jwt.GenerateToken(s.T(), uuid.New(), operator.RoleAdmin)
		}, expectCode: http.StatusNotFound, expectMsg: "operator not found"},
		{name: "error: operator deactivated after token issue", token: func() string {
			return s.jwt.GenerateToken(s.T(), s.inactiveID, operator.RoleAttendant)
		}, expectCode: http.StatusForbidden, expectMsg: "Account is inactive"},
	}
	for _, tc := range tokenCases {
		s.Run(tc.name, func() {
			w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, tc.token())
			httptest.AssertErrorResponse(s.T(), w, tc.expectCode, tc.expectMsg)
		})
	}
}

func (s *authSuite) TestLogout() {
	s.Run("success: cookie is cleared", func() {
		token := authtest.LoginOperator(s.T(), s.Router, "admin@example.com", dbtest.TestPassword)
		cookies := []*http.Cookie{{Name: "access_token", Value: token}}

		w := httptest.PerformRequestWithCookies(s.T(), s.Router, http.MethodPost, logoutURL, nil, cookies, "")
		require.Equal(s.T(), http.StatusNoContent, w.Code)

		cleared := httptest.ExtractCookie(w, "access_token")
		s.Require().NotNil(cleared)
		s.Empty(cleared.Value)
		s.Less(cleared.MaxAge, 0)
	})

	s.Run("success: stateless tokens stay valid until expiry", func() {
		token := authtest.LoginOperator(s.T(), s.Router, "admin@example.com", dbtest.TestPassword)
		authtest.LogoutOperator(s.T(), s.Router, []*http.Cookie{{Name: "access_token", Value: token}})

		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, meURL, nil, token)
		s.Equal(http.StatusOK, w.Code)
	})

	s.Run("error: logout requires authentication", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodPost, logoutURL, nil, "")
		httptest.AssertErrorResponse(s.T(), w, http.StatusUnauthorized, "Access token required")
	})
}

func (s *authSuite) TestRoleGuards() {
	tests := []struct {
		name       string
		role       operator.Role
		method     string
		path       string
		body       any
		expectCode int
	}{
		{name: "success: attendant reads spots", role: operator.RoleAttendant, method: http.MethodGet, path: "/api/spots", expectCode: http.StatusOK},
		{name: "success: admin creates spots", role: operator.RoleAdmin, method: http.MethodPost, path: "/api/spots",
			body: map[string]any{"label": "G-01", "class": "car"}, expectCode: http.StatusCreated},
		{name: "error: attendant cannot create spots", role: operator.RoleAttendant, method: http.MethodPost, path: "/api/spots",
			body: map[string]any{"label": "G-01", "class": "car"}, expectCode: http.StatusForbidden},
		{name: "error: attendant cannot edit tariffs", role: operator.RoleAttendant, method: http.MethodPut, path: "/api/tariffs/" + uuid.NewString(),
			body: map[string]any{"tolerance_minutes": 5}, expectCode: http.StatusForbidden},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			id := s.attendantID
			if tt.role == operator.RoleAdmin {
				id = s.adminID
			}
			w := httptest.PerformRequest(s.T(), s.Router, tt.method, tt.path, tt.body, s.jwt.GenerateToken(s.T(), id, tt.role))
			s.Equal(tt.expectCode, w.Code, w.Body.String())
		})
	}
}

func (s *authSuite) TestHealth() {
	s.Run("success: health needs no token", func() {
		w := httptest.PerformRequest(s.T(), s.Router, http.MethodGet, "/health", nil, "")
		var body map[string]string
		httptest.AssertSuccessResponse(s.T(), w, http.StatusOK, &body)
		s.Equal("ok", body["status"])
	})
}
