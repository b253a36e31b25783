//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"seatbook/internal/handler/api"
	resdto "seatbook/internal/handler/dto/response"
	"seatbook/internal/usecase"
	"seatbook/tests/common/httptest"
	usecasemock "seatbook/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type CatalogHandlerTestSuite struct {
	suite.Suite
	router      *gin.Engine
	mockCtrl    *gomock.Controller
	mockQueries *usecasemock.MockInventoryQueries
	handler     *api.CatalogHandler
}

func (s *CatalogHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockQueries = usecasemock.NewMockInventoryQueries(s.mockCtrl)
	s.handler = api.NewCatalogHandler(s.mockQueries)

	s.router.GET("/api/courses", s.handler.ListCourses)
	s.router.GET("/api/study-hall", s.handler.StudyHall)
}

func (s *CatalogHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestCatalogHandlerSuite(t *testing.T) {
	suite.Run(t, new(CatalogHandlerTestSuite))
}

func (s *CatalogHandlerTestSuite) TestListCourses() {
	s.mockQueries.EXPECT().ListCourses(gomock.Any()).
		Return([]*usecase.CourseView{
			{ID: 1, Title: "Digital Literacy (1 month)", Fee: 1500, Seats: 20},
			{ID: 2, Title: "DCA (6 months)", Fee: 6000, Seats: 15},
		}).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/courses", nil, "")

	var response []*resdto.CourseResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Require().Len(response, 2)
	s.Equal("Digital Literacy (1 month)", response[0].Title)
	s.Equal(int64(1500), response[0].Fee)
	s.Equal(20, response[0].Seats)
}

func (s *CatalogHandlerTestSuite) TestStudyHall() {
	s.mockQueries.EXPECT().StudyHall(gomock.Any()).
		Return(usecase.StudyHallView{AvailableSeats: 42}).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/study-hall", nil, "")

	var response resdto.StudyHallResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
	s.Equal(42, response.AvailableSeats)
}
