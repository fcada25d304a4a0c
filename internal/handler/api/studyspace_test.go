//go:build unit

package api_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"studyspot/internal/handler/api"
	resdto "studyspot/internal/handler/dto/response"
	"studyspot/internal/infra/memstore"
	"studyspot/internal/pkg/clock"
	"studyspot/internal/usecase/queries"
	"studyspot/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
)

var testTime = time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC)

type StudySpaceHandlerTestSuite struct {
	suite.Suite
	router  *gin.Engine
	store   *memstore.Store
	handler *api.StudySpaceHandler
}

func (s *StudySpaceHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	// The store is in-memory, so handler tests run against the real thing.
	s.store = memstore.New(clock.NewMockClock(testTime))
	s.Require().NoError(s.store.Seed(context.Background()))

	s.handler = api.NewStudySpaceHandler(queries.NewStudySpaceQueries(s.store))

	s.router.GET("/api/study-spaces", s.handler.Search)
	s.router.GET("/api/study-spaces/:id", s.handler.Get)
}

func TestStudySpaceHandlerSuite(t *testing.T) {
	suite.Run(t, new(StudySpaceHandlerTestSuite))
}

func (s *StudySpaceHandlerTestSuite) TestSearch() {
	s.Run("success: no parameters returns the whole catalog", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/study-spaces", nil, "")

		var response []resdto.DecoratedStudySpaceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 6)
		s.Equal("Central Library", response[0].Name)
		s.Len(response[0].Amenities, 3)
		s.InDelta(4.2, response[0].AverageRating, 0.0001)
		s.Equal(5, response[0].TotalReviews)
	})

	s.Run("success: query narrows by name or address", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/study-spaces?query=library", nil, "")

		var response []resdto.DecoratedStudySpaceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal("Central Library", response[0].Name)
	})

	s.Run("success: comma-separated filters must all match", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet,
			"/api/study-spaces?filters=Quiet+Zone,Historical", nil, "")

		var response []resdto.DecoratedStudySpaceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
		s.Equal("City Museum Reading Room", response[0].Name)
	})

	s.Run("success: no match yields empty array, not an error", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/study-spaces?filters=Nonexistent", nil, "")

		var response []resdto.DecoratedStudySpaceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Empty(response)
		s.Equal("[]", rec.Body.String())
	})
}

func (s *StudySpaceHandlerTestSuite) TestGet() {
	s.Run("success: returns 200 OK with decorated space", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/study-spaces/1", nil, "")

		var response resdto.DecoratedStudySpaceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(int64(1), response.ID)
		s.Equal("Central Library", response.Name)
		s.Equal(120, response.TotalSeats)
		s.Equal(76, response.AvailableSeats)
	})

	s.Run("error: 404 Not Found for missing space", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/study-spaces/999", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Study space not found")
	})

	s.Run("error: 400 Bad Request for non-numeric id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/api/study-spaces/abc", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid study space id")
	})
}
