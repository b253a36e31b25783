//go:build unit

package api_test

import (
	"net/http"
	"testing"
	"time"

	"seatbook/internal/handler/api"
	resdto "seatbook/internal/handler/dto/response"
	"seatbook/internal/handler/middleware"
	"seatbook/internal/pkg/errs"
	"seatbook/internal/pkg/jwt"
	"seatbook/internal/usecase"
	"seatbook/tests/common/builder"
	"seatbook/tests/common/httptest"
	usecasemock "seatbook/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type AdminHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockAdmin    *usecasemock.MockAdminCommands
	tokenService *jwt.Service
	handler      *api.AdminHandler
}

func (s *AdminHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockAdmin = usecasemock.NewMockAdminCommands(s.mockCtrl)
	s.tokenService = jwt.NewService("test-secret", time.Hour)
	s.handler = api.NewAdminHandler(s.mockAdmin, s.tokenService)

	adminMW := middleware.NewAdminMiddleware(s.tokenService)
	s.router.POST("/api/admin/login", s.handler.Login)
	gated := s.router.Group("", adminMW.RequireAdmin())
	gated.POST("/api/admin/logout", s.handler.Logout)
	gated.GET("/api/admin/bookings", s.handler.ListBookings)
	gated.POST("/api/admin/courses", s.handler.AddCourse)
	gated.POST("/api/admin/study-hall/resize", s.handler.ResizeStudyHall)
	gated.POST("/api/admin/reset", s.handler.ResetAll)
}

func (s *AdminHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestAdminHandlerSuite(t *testing.T) {
	suite.Run(t, new(AdminHandlerTestSuite))
}

func (s *AdminHandlerTestSuite) adminToken() string {
	token, err := s.tokenService.GenerateAdminToken()
	s.Require().NoError(err)
	return token
}

func (s *AdminHandlerTestSuite) TestLogin() {
	url := "/api/admin/login"

	s.Run("success: returns a token for the correct secret", func() {
		s.mockAdmin.EXPECT().Login("admin123").Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"secret": "admin123"}, "")

		var response resdto.AdminLoginResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.NotEmpty(response.Token)

		_, err := s.tokenService.ValidateToken(response.Token)
		s.NoError(err)
	})

	s.Run("error: 401 on a wrong secret", func() {
		s.mockAdmin.EXPECT().Login("letmein").Return(errs.ErrInvalidCredentials).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"secret": "letmein"}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Invalid credentials")
	})

	s.Run("error: 400 on a missing secret", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *AdminHandlerTestSuite) TestGatedRoutesRequireToken() {
	cases := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/admin/logout"},
		{http.MethodGet, "/api/admin/bookings"},
		{http.MethodPost, "/api/admin/courses"},
		{http.MethodPost, "/api/admin/study-hall/resize"},
		{http.MethodPost, "/api/admin/reset"},
	}

	for _, tc := range cases {
		s.Run(tc.path, func() {
			rec := httptest.PerformRequest(s.T(), s.router, tc.method, tc.path, nil, "")
			s.Equal(http.StatusUnauthorized, rec.Code)

			rec = httptest.PerformRequest(s.T(), s.router, tc.method, tc.path, nil, "not-a-token")
			s.Equal(http.StatusUnauthorized, rec.Code)
		})
	}
}

func (s *AdminHandlerTestSuite) TestListBookings() {
	url := "/api/admin/bookings"

	s.Run("success: renders the history most recent first", func() {
		study := builder.NewBookingBuilder().WithRequester("Ravi Singh").AsStudyHall(4).BuildView()
		course := builder.NewBookingBuilder().BuildView()
		s.mockAdmin.EXPECT().Bookings(gomock.Any()).
			Return([]*usecase.BookingView{study, course}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, s.adminToken())

		var response []*resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Require().Len(response, 2)
		s.Equal(study.ID, response[0].ID)
		s.Equal(course.ID, response[1].ID)
		s.Equal("Digital Literacy (1 month)", response[1].CourseTitle)
	})

	s.Run("error: 401 when the controller session is gone", func() {
		s.mockAdmin.EXPECT().Bookings(gomock.Any()).
			Return(nil, errs.ErrUnauthorized).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, s.adminToken())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Admin login required")
	})
}

func (s *AdminHandlerTestSuite) TestAddCourse() {
	url := "/api/admin/courses"
	body := map[string]any{"title": "Tally Basics", "fee": 2000, "seats": 8}

	s.Run("success: returns the new course id", func() {
		s.mockAdmin.EXPECT().
			AddCourse(gomock.Any(), "Tally Basics", int64(2000), 8).
			Return(int64(4), nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, s.adminToken())

		var response resdto.AddCourseResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(int64(4), response.ID)
	})

	s.Run("error: 422 on a domain rejection", func() {
		s.mockAdmin.EXPECT().
			AddCourse(gomock.Any(), "Tally Basics", int64(2000), 8).
			Return(int64(0), errs.ErrDomainValidation).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, body, s.adminToken())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "Domain validation failed")
	})

	s.Run("error: 400 on a missing title", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"fee": 2000, "seats": 8}, s.adminToken())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *AdminHandlerTestSuite) TestResizeStudyHall() {
	url := "/api/admin/study-hall/resize"

	s.Run("success: 204 on resize", func() {
		s.mockAdmin.EXPECT().ResizeStudyHall(gomock.Any(), -5).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"delta": -5}, s.adminToken())
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 on a missing delta", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{}, s.adminToken())
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request format")
	})
}

func (s *AdminHandlerTestSuite) TestResetAll() {
	s.mockAdmin.EXPECT().ResetAll(gomock.Any()).Return(nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/admin/reset", nil, s.adminToken())
	s.Equal(http.StatusNoContent, rec.Code)
}

func (s *AdminHandlerTestSuite) TestLogout() {
	s.mockAdmin.EXPECT().Logout().Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/api/admin/logout", nil, s.adminToken())
	s.Equal(http.StatusNoContent, rec.Code)
}
